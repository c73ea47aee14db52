package redis

import (
	"fmt"
)

// --------------------------------------------------------------------------
// Reply Values
// --------------------------------------------------------------------------

// ValueKind discriminates the variants of a reply Value.
type ValueKind uint8

const (
	ValueNil    ValueKind = iota // absent value
	ValueOK                      // the "OK" status marker
	ValueInt                     // signed 64-bit integer
	ValueBytes                   // byte string
	ValueStatus                  // status message other than "OK"
	ValueArray                   // ordered list of nested values
)

// Value is one node of a reply tree as received from the store.
// Exactly the field selected by Kind is meaningful.
type Value struct {
	Kind   ValueKind
	Int    int64
	Bytes  []byte
	Status string
	Array  []Value
}

func NilValue() Value { return Value{Kind: ValueNil} }
func OKValue() Value { return Value{Kind: ValueOK} }
func IntValue(v int64) Value { return Value{Kind: ValueInt, Int: v} }
func BytesValue(b []byte) Value { return Value{Kind: ValueBytes, Bytes: b} }
func StatusValue(s string) Value { return Value{Kind: ValueStatus, Status: s} }
func ArrayValue(vs ...Value) Value { return Value{Kind: ValueArray, Array: vs} }

// IsNil reports whether the value is the absent-value marker.
func (v Value) IsNil() bool {
	return v.Kind == ValueNil
}

// AsInt64 interprets the value as an integer reply.
func (v Value) AsInt64() (int64, error) {
	if v.Kind != ValueInt {
		return 0, fmt.Errorf("unexpected reply type for integer result: %v", v.Kind)
	}
	return v.Int, nil
}

// AsBytes interprets the value as a byte-string reply. A nil reply is
// reported through the second return value so callers can distinguish
// "no value" from an explicit empty byte string.
func (v Value) AsBytes() ([]byte, bool, error) {
	switch v.Kind {
	case ValueNil:
		return nil, false, nil
	case ValueBytes:
		if v.Bytes == nil {
			return []byte{}, true, nil
		}
		return v.Bytes, true, nil
	default:
		return nil, false, fmt.Errorf("unexpected reply type for bulk result: %v", v.Kind)
	}
}

// AsStrings interprets the value as an array of byte-string replies.
func (v Value) AsStrings() ([]string, error) {
	if v.Kind != ValueArray {
		return nil, fmt.Errorf("unexpected reply type for array result: %v", v.Kind)
	}
	out := make([]string, 0, len(v.Array))
	for _, elem := range v.Array {
		if elem.Kind != ValueBytes {
			return nil, fmt.Errorf("unexpected reply type for array element: %v", elem.Kind)
		}
		out = append(out, string(elem.Bytes))
	}
	return out, nil
}

// --------------------------------------------------------------------------
// Command Parameters (generic command path)
// --------------------------------------------------------------------------

// ParameterKind discriminates the variants of a Parameter.
type ParameterKind uint8

const (
	ParameterInt64  ParameterKind = iota // signed 64-bit integer argument
	ParameterBinary                      // raw byte-sequence argument
)

// Parameter is one positional argument of a generic command. Integers and
// byte sequences are both valid positions; there is no coercion between them.
type Parameter struct {
	Kind  ParameterKind
	Int   int64
	Bytes []byte
}

func Int64Parameter(v int64) Parameter { return Parameter{Kind: ParameterInt64, Int: v} }
func BinaryParameter(b []byte) Parameter { return Parameter{Kind: ParameterBinary, Bytes: b} }

// --------------------------------------------------------------------------
// Flat Results (generic command path)
// --------------------------------------------------------------------------

// ResultKind discriminates the variants of a Result.
type ResultKind uint8

const (
	ResultInt64  ResultKind = iota // signed 64-bit integer
	ResultBinary                   // raw byte sequence
	ResultStatus                   // status string
)

// Result is one flat, typed scalar produced by flattening a reply tree.
type Result struct {
	Kind   ResultKind
	Int    int64
	Bytes  []byte
	Status string
}

func Int64Result(v int64) Result { return Result{Kind: ResultInt64, Int: v} }
func BinaryResult(b []byte) Result { return Result{Kind: ResultBinary, Bytes: b} }
func StatusResult(s string) Result { return Result{Kind: ResultStatus, Status: s} }

// String renders a result for diagnostics and CLI output.
func (r Result) String() string {
	switch r.Kind {
	case ResultInt64:
		return fmt.Sprintf("int64(%d)", r.Int)
	case ResultBinary:
		return fmt.Sprintf("binary(%q)", r.Bytes)
	case ResultStatus:
		return fmt.Sprintf("status(%q)", r.Status)
	default:
		return fmt.Sprintf("unknown(%d)", r.Kind)
	}
}
