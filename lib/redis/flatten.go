package redis

// Flatten reduces a reply tree to an ordered flat list of typed scalars.
//
// The reduction is depth-first and order-preserving:
//   - nil and OK-marker values contribute nothing
//   - integer values contribute one Int64 result
//   - byte-string values contribute one Binary result
//   - status-message values contribute one Status result
//   - array values recurse into each element in order, concatenating
//     their contributions
//
// A nested array is therefore indistinguishable from its leaves in the
// output. That structural loss is part of the compatibility contract of
// the generic command surface and must not be changed.
func Flatten(value Value) []Result {
	results := make([]Result, 0, 1)
	return appendFlattened(results, value)
}

func appendFlattened(results []Result, value Value) []Result {
	switch value.Kind {
	case ValueNil, ValueOK:
		return results
	case ValueInt:
		return append(results, Int64Result(value.Int))
	case ValueBytes:
		return append(results, BinaryResult(value.Bytes))
	case ValueStatus:
		return append(results, StatusResult(value.Status))
	case ValueArray:
		for _, elem := range value.Array {
			results = appendFlattened(results, elem)
		}
		return results
	default:
		return results
	}
}
