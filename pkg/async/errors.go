package async

import "errors"

var (
	// ErrTimeout is returned when AwaitWithTimeout exceeds its duration before the future completes.
	ErrTimeout = errors.New("async: await timed out")
	// ErrNoFutures is returned when WaitAny or ExecAny is called with no futures.
	ErrNoFutures = errors.New("async: no futures provided")
)
