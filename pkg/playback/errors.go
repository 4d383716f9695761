package playback

import (
	"fmt"
	"time"
)

// QueryError is returned by every failed attempt to retrieve a Snapshot.
type QueryError struct {
	Op  string
	Err error

	// Retryable reports whether the same query might succeed if it is
	// issued again later.
	Retryable bool
	// RetryAfter is the minimum delay before a retry, if the service told
	// us so.
	RetryAfter time.Duration
}

func (this *QueryError) Error() string {
	if this.Err == nil {
		return fmt.Sprintf("cannot %s", this.Op)
	}
	return fmt.Sprintf("cannot %s: %v", this.Op, this.Err)
}

func (this *QueryError) Unwrap() error {
	return this.Err
}
