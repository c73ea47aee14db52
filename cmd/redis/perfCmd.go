package redis

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	vmetrics "github.com/VictoriaMetrics/metrics"
	gometrics "github.com/rcrowley/go-metrics"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sandboxhq/redisgate/cmd/util"
)

var (
	perfTestCmd = &cobra.Command{
		Use:     "perf",
		Short:   "Performance testing tool for remote redis stores",
		RunE:    runPerf,
		PreRunE: processPerfConfig,
	}
	perfKeyPrefix  = "__perf"
	perfIterations = 1000
	perfKeySpread  = 100
	perfSkip       = make([]string, 0)
)

func init() {
	// add flags
	key := "skip"
	perfTestCmd.Flags().String(key, "", util.WrapString("Workloads to skip (comma separated - e.g. set,get)"))
	key = "iterations"
	perfTestCmd.Flags().Int(key, 1000, util.WrapString("Number of operations per workload"))
	key = "keys"
	perfTestCmd.Flags().Int(key, 100, util.WrapString("How many different keys to use for the workloads"))
	key = "csv"
	perfTestCmd.Flags().String(key, "", util.WrapString("Optional path to save benchmark results as CSV"))
	key = "dump-metrics"
	perfTestCmd.Flags().Bool(key, false, util.WrapString("Print the process metrics in Prometheus format after the run"))
}

func processPerfConfig(cmd *cobra.Command, _ []string) error {
	if err := viper.BindPFlags(cmd.Flags()); err != nil {
		return err
	}

	// Read the configuration from the command line flags and environment variables
	perfIterations = viper.GetInt("iterations")
	perfKeySpread = viper.GetInt("keys")
	if skip := viper.GetString("skip"); skip != "" {
		perfSkip = strings.Split(skip, ",")
	}

	return nil
}

func runPerf(cmd *cobra.Command, _ []string) error {

	fmt.Println("Performance testing tool for remote redis stores")

	// Print configuration
	fmt.Println()
	fmt.Println("Configuration:")
	fmt.Println(util.GetClientConfig().String())
	fmt.Printf("Iterations: %d\n", perfIterations)
	fmt.Println()

	fmt.Println("starting workloads...")

	registry := gometrics.NewRegistry()
	workloads := []struct {
		name string
		op   func(key string) error
	}{
		{"set", func(key string) error {
			return host.Set(cmd.Context(), session, key, []byte("test"))
		}},
		{"get", func(key string) error {
			_, _, err := host.Get(cmd.Context(), session, key)
			return err
		}},
		{"incr", func(key string) error {
			_, err := host.Incr(cmd.Context(), session, key+"-counter")
			return err
		}},
		{"del", func(key string) error {
			_, err := host.Del(cmd.Context(), session, key)
			return err
		}},
	}

	for _, workload := range workloads {
		if shouldSkip(workload.name) {
			fmt.Printf("%-10sskipped\n", workload.name)
			continue
		}

		timer := gometrics.NewRegisteredTimer(workload.name, registry)
		errCount := 0
		for i := 0; i < perfIterations; i++ {
			key := fmt.Sprintf("%s-%s-%d", perfKeyPrefix, workload.name, i%perfKeySpread)
			timer.Time(func() {
				if err := workload.op(key); err != nil {
					errCount++
				}
			})
		}

		printResult(workload.name, timer, errCount)
	}

	// cleanup the perf keys
	for _, workload := range workloads {
		for i := 0; i < perfKeySpread; i++ {
			key := fmt.Sprintf("%s-%s-%d", perfKeyPrefix, workload.name, i)
			_, _ = host.Del(cmd.Context(), session, key, key+"-counter")
		}
	}

	// Write results to csv if specified
	if csvPath := viper.GetString("csv"); csvPath != "" {
		fmt.Printf("\nExporting results to CSV: %s\n", csvPath)
		if err := writeResultsToCSV(csvPath, registry); err != nil {
			return fmt.Errorf("failed to export results to CSV: %v", err)
		}
		fmt.Println("Export complete")
	}

	// Dump the process metrics (command counters, open connections)
	if viper.GetBool("dump-metrics") {
		fmt.Println()
		vmetrics.WritePrometheus(os.Stdout, false)
	}

	return nil
}

// --------------------------------------------------------------------------
// Helper
// --------------------------------------------------------------------------

func shouldSkip(workload string) bool {
	// Check if the workload is in the skip list
	for _, skip := range perfSkip {
		if workload == skip {
			return true
		}
	}
	return false
}

// printResult prints the timer statistics of one workload in a formatted way
func printResult(workload string, timer gometrics.Timer, errCount int) {
	snapshot := timer.Snapshot()
	percentiles := snapshot.Percentiles([]float64{0.5, 0.95, 0.99})

	fmt.Printf("%-10s%8d ops\t%12s mean\t%12s p50\t%12s p95\t%12s p99\t%.0f ops/sec\t%d errors\n",
		workload,
		snapshot.Count(),
		time.Duration(snapshot.Mean()),
		time.Duration(percentiles[0]),
		time.Duration(percentiles[1]),
		time.Duration(percentiles[2]),
		snapshot.RateMean(),
		errCount,
	)
}

// writeResultsToCSV writes the timer statistics to a CSV file
func writeResultsToCSV(csvPath string, registry gometrics.Registry) error {
	file, err := os.Create(csvPath)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %v", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	// Write header
	header := []string{
		"Workload", "Count", "MeanNs", "P50Ns", "P95Ns", "P99Ns", "OpsPerSec",
		"Address", "Iterations", "Keys",
	}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %v", err)
	}

	var writeErr error
	registry.Each(func(name string, metric interface{}) {
		timer, ok := metric.(gometrics.Timer)
		if !ok {
			return
		}
		snapshot := timer.Snapshot()
		percentiles := snapshot.Percentiles([]float64{0.5, 0.95, 0.99})

		row := []string{
			name,
			strconv.FormatInt(snapshot.Count(), 10),
			fmt.Sprintf("%.0f", snapshot.Mean()),
			fmt.Sprintf("%.0f", percentiles[0]),
			fmt.Sprintf("%.0f", percentiles[1]),
			fmt.Sprintf("%.0f", percentiles[2]),
			fmt.Sprintf("%.0f", snapshot.RateMean()),
			util.GetAddress(),
			strconv.Itoa(perfIterations),
			strconv.Itoa(perfKeySpread),
		}
		if err := writer.Write(row); err != nil && writeErr == nil {
			writeErr = fmt.Errorf("failed to write row for workload %s: %v", name, err)
		}
	})

	return writeErr
}
