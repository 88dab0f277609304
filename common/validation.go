package common

// RequirePresent checks that a required input field was supplied.
func RequirePresent(field, errMsg string) *CommandError {
	if field == "" {
		return NewInvalidArgument(errMsg)
	}
	return nil
}

// RequirePositive checks that a value is greater than zero.
func RequirePositive(value int, errMsg string) *CommandError {
	if value <= 0 {
		return NewInvalidArgument(errMsg)
	}
	return nil
}

// RequireNonNegative checks that a value is zero or greater.
func RequireNonNegative(value int, errMsg string) *CommandError {
	if value < 0 {
		return NewInvalidArgument(errMsg)
	}
	return nil
}

// RequireNotEmpty checks that a slice has at least one element.
func RequireNotEmpty[T any](items []T, errMsg string) *CommandError {
	if len(items) == 0 {
		return NewFailedPrecondition(errMsg)
	}
	return nil
}

// FirstError returns the first non-nil CommandError, or nil.
//
// Lets callers chain Require* checks without an if per line:
//
//	if err := common.FirstError(
//	    common.RequirePresent(name, ErrMsgNameRequired),
//	    common.RequireNonNegative(stock, ErrMsgStockNegative),
//	); err != nil {
//	    return err
//	}
func FirstError(errs ...*CommandError) *CommandError {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
