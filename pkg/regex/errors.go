package regex

import "github.com/pkg/errors"

// ErrMalformedPattern is the sentinel cause wrapped by every pattern
// compilation failure. Callers test for it with errors.Is or errors.Cause.
var ErrMalformedPattern = errors.New("malformed pattern")

func malformedf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrMalformedPattern, format, args...)
}
