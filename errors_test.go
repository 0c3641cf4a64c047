package swc

import (
	"errors"
	"fmt"
	"testing"
)

func TestAsStatusError(t *testing.T) {
	err := fmt.Errorf("call failed: %w", &StatusError{StatusCode: 503})
	se, ok := AsStatusError(err)
	if !ok || se.StatusCode != 503 {
		t.Fatalf("AsStatusError = %v, %v", se, ok)
	}
	if _, ok := AsStatusError(errors.New("other")); ok {
		t.Fatal("unexpected StatusError match")
	}
}

func TestAsTransportError(t *testing.T) {
	err := fmt.Errorf("call failed: %w", &TransportError{Err: errors.New("connection refused")})
	te, ok := AsTransportError(err)
	if !ok || te.Err == nil {
		t.Fatalf("AsTransportError = %v, %v", te, ok)
	}
	if _, ok := AsTransportError(&StatusError{StatusCode: 500}); ok {
		t.Fatal("unexpected TransportError match")
	}
}
