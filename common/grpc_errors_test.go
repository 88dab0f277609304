package common

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestMapCommandError_Nil(t *testing.T) {
	assert.NoError(t, MapCommandError(nil))
}

func TestMapCommandError_Codes(t *testing.T) {
	tests := []struct {
		err  error
		want codes.Code
	}{
		{NewInvalidArgument("bad"), codes.InvalidArgument},
		{NewFailedPrecondition("not yet"), codes.FailedPrecondition},
		{NewNotFound("gone"), codes.NotFound},
		{fmt.Errorf("wrapped: %w", NewNotFound("gone")), codes.NotFound},
		{context.Canceled, codes.Canceled},
		{fmt.Errorf("slow: %w", context.DeadlineExceeded), codes.DeadlineExceeded},
		{errors.New("boom"), codes.Internal},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			st, ok := status.FromError(MapCommandError(tt.err))
			require.True(t, ok)
			assert.Equal(t, tt.want, st.Code())
		})
	}
}

func TestMapCommandError_KeepsMessage(t *testing.T) {
	st := status.Convert(MapCommandError(NewNotFound("Product not found")))
	assert.Equal(t, "Product not found", st.Message())
}

func TestMapCommandError_PassesStatusThrough(t *testing.T) {
	original := status.Error(codes.ResourceExhausted, "slow down")
	assert.Equal(t, original, MapCommandError(original))
}

func TestMapCommandError_Violations(t *testing.T) {
	violations := []FieldViolation{
		{Field: "email", Description: "Invalid email address"},
		{Field: "zipCode", Description: "ZIP code must be at least 5 characters"},
	}
	err := MapCommandError(NewValidationError("Invalid checkout details", violations))

	st := status.Convert(err)
	assert.Equal(t, codes.InvalidArgument, st.Code())
	assert.Equal(t, violations, ViolationsFromStatus(st))
}

func TestViolationsFromStatus_NoDetails(t *testing.T) {
	assert.Empty(t, ViolationsFromStatus(status.New(codes.NotFound, "gone")))
}
