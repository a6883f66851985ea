package engine

import (
	"errors"
	"fmt"
	"sync"
	"time"
)

// EvalTimeout is the hard limit for a single evaluation.
const EvalTimeout = 5 * time.Second

// ErrSuperseded is returned when a newer Evaluate call started before this
// one finished.
var ErrSuperseded = errors.New("engine: evaluation superseded by newer request")

type evalResult struct {
	commands []Command
	errors   []EvalError
	err      error
}

// waitWithTimeout waits for a result from ch, giving up after EvalTimeout.
// A result whose generation is no longer current is discarded.
//
// On timeout the goroutine may still be running; the generation check
// drops its result when it eventually completes.
func waitWithTimeout(
	ch <-chan evalResult,
	gen uint64,
	mu *sync.Mutex,
	currentGen *uint64,
) ([]Command, []EvalError, error) {
	timer := time.NewTimer(EvalTimeout)
	defer timer.Stop()

	select {
	case res := <-ch:
		mu.Lock()
		current := *currentGen
		mu.Unlock()

		if gen != current {
			return nil, nil, ErrSuperseded
		}
		return res.commands, res.errors, res.err

	case <-timer.C:
		return nil, nil, fmt.Errorf("engine: evaluation timed out after %s", EvalTimeout)
	}
}
