package common

import (
	"context"
	"errors"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// MapCommandError converts a CommandError to a gRPC status error.
// Field violations travel as a BadRequest detail. Context errors keep their
// meaning; anything else is wrapped as Internal.
func MapCommandError(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}

	var cmdErr *CommandError
	if errors.As(err, &cmdErr) {
		st := status.New(grpcCode(cmdErr.Code), cmdErr.Message)
		if len(cmdErr.Violations) == 0 {
			return st.Err()
		}
		br := &errdetails.BadRequest{}
		for _, v := range cmdErr.Violations {
			br.FieldViolations = append(br.FieldViolations, &errdetails.BadRequest_FieldViolation{
				Field:       v.Field,
				Description: v.Description,
			})
		}
		if detailed, derr := st.WithDetails(br); derr == nil {
			return detailed.Err()
		}
		return st.Err()
	}

	switch {
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	}
	return status.Errorf(codes.Internal, "internal error: %v", err)
}

// ViolationsFromStatus extracts field violations from a status BadRequest detail.
func ViolationsFromStatus(st *status.Status) []FieldViolation {
	var out []FieldViolation
	for _, d := range st.Details() {
		br, ok := d.(*errdetails.BadRequest)
		if !ok {
			continue
		}
		for _, fv := range br.GetFieldViolations() {
			out = append(out, FieldViolation{Field: fv.GetField(), Description: fv.GetDescription()})
		}
	}
	return out
}

func grpcCode(code StatusCode) codes.Code {
	switch code {
	case StatusInvalidArgument:
		return codes.InvalidArgument
	case StatusFailedPrecondition:
		return codes.FailedPrecondition
	case StatusNotFound:
		return codes.NotFound
	default:
		return codes.Unknown
	}
}
