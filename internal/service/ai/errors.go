package ai

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
)

// ErrorKind distinguishes upstream failure modes. The HTTP layer folds them
// all into a model-unavailable response but logs the kind.
type ErrorKind string

const (
	KindTimeout   ErrorKind = "timeout"
	KindCanceled  ErrorKind = "canceled"
	KindAuth      ErrorKind = "auth"
	KindRateLimit ErrorKind = "rate_limit"
	KindNetwork   ErrorKind = "network"
	KindMalformed ErrorKind = "malformed_response"
)

// Error wraps a model-provider failure with its classified kind. The wrapped
// error is kept for logs only; handler responses must not leak it, since the
// provider may echo credential material back in error bodies.
type Error struct {
	Kind ErrorKind
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("model provider error (%s)", e.Kind)
	}
	return fmt.Sprintf("model provider error (%s): %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// classifyErr buckets a chain failure into an ErrorKind. The eino openai
// component surfaces provider errors as opaque wrapped errors, so status
// classification falls back to message inspection.
func classifyErr(err error) *Error {
	if errors.Is(err, context.DeadlineExceeded) {
		return &Error{Kind: KindTimeout, Err: err}
	}
	// Client went away mid-turn; not a provider outage.
	if errors.Is(err, context.Canceled) {
		return &Error{Kind: KindCanceled, Err: err}
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		if netErr.Timeout() {
			return &Error{Kind: KindTimeout, Err: err}
		}
		return &Error{Kind: KindNetwork, Err: err}
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "timeout") || strings.Contains(msg, "deadline"):
		return &Error{Kind: KindTimeout, Err: err}
	case strings.Contains(msg, "401") || strings.Contains(msg, "invalid api key") || strings.Contains(msg, "unauthorized") || strings.Contains(msg, "incorrect api key"):
		return &Error{Kind: KindAuth, Err: err}
	case strings.Contains(msg, "429") || strings.Contains(msg, "rate limit") || strings.Contains(msg, "quota"):
		return &Error{Kind: KindRateLimit, Err: err}
	case strings.Contains(msg, "unmarshal") || strings.Contains(msg, "unexpected end") || strings.Contains(msg, "decode"):
		return &Error{Kind: KindMalformed, Err: err}
	default:
		return &Error{Kind: KindNetwork, Err: err}
	}
}
