package resp

import (
	redigo "github.com/gomodule/redigo/redis"

	"github.com/sandboxhq/redisgate/lib/redis"
)

// toValue converts a redigo reply into the wire-independent reply tree.
//
// redigo decodes integer replies to int64, bulk strings to []byte, status
// replies to string, arrays to []interface{} and absent values to nil.
// The "OK" status becomes the dedicated OK marker so the flattener can
// drop it. An error reply nested inside an array (top-level error replies
// fail the whole call instead) is surfaced as a status message.
func toValue(reply interface{}) redis.Value {
	switch r := reply.(type) {
	case nil:
		return redis.NilValue()
	case int64:
		return redis.IntValue(r)
	case []byte:
		return redis.BytesValue(r)
	case string:
		if r == "OK" {
			return redis.OKValue()
		}
		return redis.StatusValue(r)
	case []interface{}:
		elems := make([]redis.Value, 0, len(r))
		for _, e := range r {
			elems = append(elems, toValue(e))
		}
		return redis.ArrayValue(elems...)
	case redigo.Error:
		return redis.StatusValue(string(r))
	default:
		// redigo produces no other reply types; treat anything
		// unexpected as absent rather than inventing a value
		return redis.NilValue()
	}
}
