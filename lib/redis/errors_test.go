package redis

import (
	"errors"
	"fmt"
	"testing"
)

// TestErrorFormatting tests the code names in the rendered error message
func TestErrorFormatting(t *testing.T) {
	tests := []struct {
		code RetCode
		want string
	}{
		{RetCInvalidAddress, "RedisError (code InvalidAddress): boom"},
		{RetCTooManyConnections, "RedisError (code TooManyConnections): boom"},
		{RetCTypeError, "RedisError (code TypeError): boom"},
		{RetCOther, "RedisError (code Other): boom"},
	}

	for _, tt := range tests {
		got := NewError(tt.code, "boom").Error()
		if got != tt.want {
			t.Errorf("Error() = %q, want %q", got, tt.want)
		}
	}

	if got := NewError(RetCTypeError, "").Error(); got != "RedisError (code TypeError)" {
		t.Errorf("Error() without message = %q", got)
	}
}

// TestCodeOf tests code extraction, including through wrapping
func TestCodeOf(t *testing.T) {
	if CodeOf(nil) != RetCSuccess {
		t.Error("CodeOf(nil) should be RetCSuccess")
	}
	if CodeOf(NewError(RetCInvalidAddress, "denied")) != RetCInvalidAddress {
		t.Error("CodeOf should extract RetCInvalidAddress")
	}
	wrapped := fmt.Errorf("while opening: %w", NewError(RetCTooManyConnections, "full"))
	if CodeOf(wrapped) != RetCTooManyConnections {
		t.Error("CodeOf should see through error wrapping")
	}
	if CodeOf(errors.New("some transport failure")) != RetCOther {
		t.Error("CodeOf of a foreign error should be RetCOther")
	}
}

// TestOtherError tests that the underlying message is preserved
func TestOtherError(t *testing.T) {
	err := OtherError(errors.New("connection reset by peer"))
	if err.Code != RetCOther {
		t.Errorf("OtherError code = %v, want RetCOther", err.Code)
	}
	if err.Msg != "connection reset by peer" {
		t.Errorf("OtherError msg = %q", err.Msg)
	}
}

// TestIsWrongType tests the WRONGTYPE server-reply classification
func TestIsWrongType(t *testing.T) {
	if !IsWrongType(errors.New("WRONGTYPE Operation against a key holding the wrong kind of value")) {
		t.Error("WRONGTYPE reply should be classified as a type mismatch")
	}
	if IsWrongType(errors.New("ERR unknown command")) {
		t.Error("generic server error should not be a type mismatch")
	}
	if IsWrongType(nil) {
		t.Error("nil error should not be a type mismatch")
	}
}
