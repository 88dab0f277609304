package grpcapi

import (
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/f-coded/omotanwa-aesthetics-glow/common"
)

// ClientError represents errors from client operations.
type ClientError struct {
	Kind    ErrorKind
	Message string
	Cause   error
}

// ErrorKind categorizes client errors.
type ErrorKind int

const (
	// ErrTransport indicates the connection could not be set up.
	ErrTransport ErrorKind = iota
	// ErrGRPC indicates a gRPC error from the server.
	ErrGRPC
)

func (e *ClientError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *ClientError) Unwrap() error {
	return e.Cause
}

// Code returns the gRPC status code if this is a gRPC error.
func (e *ClientError) Code() codes.Code {
	if st := e.Status(); st != nil {
		return st.Code()
	}
	return codes.Unknown
}

// Status returns the gRPC Status if this is a gRPC error.
func (e *ClientError) Status() *status.Status {
	if e.Kind != ErrGRPC || e.Cause == nil {
		return nil
	}
	s, _ := status.FromError(e.Cause)
	return s
}

// Violations returns the per-field validation failures sent by the server.
func (e *ClientError) Violations() []common.FieldViolation {
	if st := e.Status(); st != nil {
		return common.ViolationsFromStatus(st)
	}
	return nil
}

// IsNotFound returns true if this is a "not found" error.
func (e *ClientError) IsNotFound() bool {
	return e.Code() == codes.NotFound
}

// IsPreconditionFailed returns true if this is a "precondition failed" error.
func (e *ClientError) IsPreconditionFailed() bool {
	return e.Code() == codes.FailedPrecondition
}

// IsInvalidArgument returns true if this is an "invalid argument" error.
func (e *ClientError) IsInvalidArgument() bool {
	return e.Code() == codes.InvalidArgument
}

// TransportError wraps a transport error.
func TransportError(err error) *ClientError {
	return &ClientError{Kind: ErrTransport, Message: "transport error", Cause: err}
}

// GRPCError wraps a gRPC error.
func GRPCError(err error) *ClientError {
	return &ClientError{Kind: ErrGRPC, Message: "grpc error", Cause: err}
}

// AsClientError extracts a ClientError from an error chain.
func AsClientError(err error) *ClientError {
	var clientErr *ClientError
	if errors.As(err, &clientErr) {
		return clientErr
	}
	return nil
}
