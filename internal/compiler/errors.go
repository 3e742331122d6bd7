package compiler

import (
	"errors"
	"fmt"
	"strings"
)

// ErrServiceFailed marks a service reply with succeeded=false.
var ErrServiceFailed = errors.New("compiler service reported failure")

// ServiceError carries the messages of a failed service reply.
type ServiceError struct {
	Op       string
	Messages []Message
}

func (e *ServiceError) Error() string {
	if len(e.Messages) == 0 {
		return fmt.Sprintf("%s: %v", e.Op, ErrServiceFailed)
	}
	parts := make([]string, 0, len(e.Messages))
	for _, m := range e.Messages {
		parts = append(parts, fmt.Sprintf("%d:%d %s", m.Location.Line, m.Location.Col, m.Message))
	}
	return fmt.Sprintf("%s: %v: %s", e.Op, ErrServiceFailed, strings.Join(parts, "; "))
}

func (e *ServiceError) Unwrap() error { return ErrServiceFailed }

// PanicError wraps a value recovered from a service call.
type PanicError struct {
	Op    string
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("%s: service panicked: %v", e.Op, e.Value)
}
