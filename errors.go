package frontier

import (
	"errors"
	"fmt"

	"github.com/hupe1980/frontier/queue"
)

var (
	// ErrEmptyFrontier is returned by Pop when no states remain. Callers are
	// expected to check IsEmpty first; popping an empty frontier is a contract
	// violation, not a recoverable condition.
	ErrEmptyFrontier = errors.New("frontier is empty")

	// ErrNotPrepared is returned by Add and Pop when Prepare has not been
	// called. A frontier must be prepared once per search before use.
	ErrNotPrepared = errors.New("frontier not prepared")
)

// translateError maps queue-level errors to frontier sentinels. The original
// underlying error remains accessible via errors.Is/errors.Unwrap.
func translateError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, queue.ErrEmptyQueue) {
		return fmt.Errorf("%w: %w", ErrEmptyFrontier, err)
	}

	return err
}
