package repositories

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
)

// Store error taxonomy. Handlers translate these into flash messages
// and redirects; none of them surface as a raw server error.
var (
	// ErrNotFound means the referenced document does not exist.
	ErrNotFound = errors.New("document not found")
	// ErrDuplicate means a unique key (email) is already taken.
	ErrDuplicate = errors.New("duplicate key")
	// ErrUnavailable means the store could not be reached in time.
	ErrUnavailable = errors.New("store unavailable")
)

// translate maps driver errors onto the store taxonomy.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return ErrNotFound
	case mongo.IsDuplicateKeyError(err):
		return ErrDuplicate
	case errors.Is(err, context.DeadlineExceeded), mongo.IsTimeout(err), mongo.IsNetworkError(err):
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	default:
		return err
	}
}
