package errors

import "regexp"

// orderSpecRegex matches a comma-separated list of non-negative integers,
// with optional spaces after commas (e.g. "0,2,1" or "0, 2, 1").
var orderSpecRegex = regexp.MustCompile(`^\d+(, ?\d+)*$`)

// ValidateOrderSpec validates the textual form of a vertex order before
// parsing. It checks shape only; membership and permutation checks happen at
// the copy-line factory.
func ValidateOrderSpec(spec string) error {
	if spec == "" {
		return New(ErrCodeInvalidOrder, "vertex order cannot be empty")
	}
	if !orderSpecRegex.MatchString(spec) {
		return New(ErrCodeInvalidOrder, "vertex order must be comma-separated vertex IDs: %q", spec)
	}
	return nil
}

// ValidatePadding validates a grid padding amount.
func ValidatePadding(padding int) error {
	if padding < 0 {
		return New(ErrCodeInvalidInput, "padding must be non-negative, got %d", padding)
	}
	return nil
}

// ValidateRadius validates a unit-disk radius.
func ValidateRadius(radius float64) error {
	if radius <= 0 {
		return New(ErrCodeInvalidInput, "radius must be positive, got %g", radius)
	}
	return nil
}
