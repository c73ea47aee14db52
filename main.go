package main

import (
	"github.com/sandboxhq/redisgate/cmd"
)

func main() {
	cmd.Execute()
}
