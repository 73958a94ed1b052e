package workers

import "errors"

var ErrWorkerPanicked = errors.New("worker panicked")
