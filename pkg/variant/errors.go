package variant

import "github.com/cockroachdb/errors"

// The two error kinds the engine surfaces. Check with errors.Is; everything
// else wraps one of these. An empty result set is not an error.
var (
	// ErrConfiguration marks operations invoked out of lifecycle order:
	// querying before build, building twice, mutating a frozen store.
	ErrConfiguration = errors.New("configuration error")

	// ErrInvalidInput marks empty or unnormalizable query input.
	ErrInvalidInput = errors.New("invalid input")
)

func configErrorf(format string, args ...any) error {
	return errors.Mark(errors.Newf(format, args...), ErrConfiguration)
}

func inputErrorf(format string, args ...any) error {
	return errors.Mark(errors.Newf(format, args...), ErrInvalidInput)
}
