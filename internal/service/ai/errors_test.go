package ai

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestClassifyErrDeadline(t *testing.T) {
	err := classifyErr(fmt.Errorf("invoke: %w", context.DeadlineExceeded))
	if err.Kind != KindTimeout {
		t.Fatalf("expected timeout kind, got %s", err.Kind)
	}
}

func TestClassifyErrCanceled(t *testing.T) {
	err := classifyErr(fmt.Errorf("invoke: %w", context.Canceled))
	if err.Kind != KindCanceled {
		t.Fatalf("expected canceled kind, got %s", err.Kind)
	}
}

func TestClassifyErrByMessage(t *testing.T) {
	cases := []struct {
		msg  string
		want ErrorKind
	}{
		{"request failed: 401 Unauthorized", KindAuth},
		{"incorrect API key provided", KindAuth},
		{"429 Too Many Requests", KindRateLimit},
		{"you exceeded your current quota", KindRateLimit},
		{"failed to unmarshal completion body", KindMalformed},
		{"dial tcp: connection refused", KindNetwork},
	}

	for _, tc := range cases {
		got := classifyErr(errors.New(tc.msg))
		if got.Kind != tc.want {
			t.Fatalf("classifyErr(%q) kind = %s, want %s", tc.msg, got.Kind, tc.want)
		}
	}
}

func TestErrorUnwrap(t *testing.T) {
	inner := errors.New("boom")
	wrapped := &Error{Kind: KindNetwork, Err: inner}

	if !errors.Is(wrapped, inner) {
		t.Fatal("expected wrapped error to match inner")
	}

	var aiErr *Error
	if !errors.As(fmt.Errorf("turn failed: %w", wrapped), &aiErr) {
		t.Fatal("expected errors.As to recover *Error")
	}
	if aiErr.Kind != KindNetwork {
		t.Fatalf("unexpected kind %s", aiErr.Kind)
	}
}
