// Package fetch provides the joined-read pattern every view uses: issue
// all of a screen's reads concurrently, wait for the whole batch, and
// report failures per read so one broken section never blanks the view.
package fetch

import (
	"context"
	"sync"

	"github.com/earnnest/earnnest-web/internal/pkg/logger"
)

// Task is a single named read. The closure stores its result through its
// own captured pointer; Join only tracks completion and errors.
type Task func(ctx context.Context) error

// Join runs all tasks concurrently and waits for every one to settle.
// The returned map holds an entry per failed task, keyed by task name;
// successful tasks have no entry. A canceled context surfaces as the
// context error on every task still in flight.
func Join(ctx context.Context, tasks map[string]Task) map[string]error {
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs = make(map[string]error)
	)

	for name, task := range tasks {
		wg.Add(1)
		go func(name string, task Task) {
			defer wg.Done()

			if err := ctx.Err(); err != nil {
				mu.Lock()
				errs[name] = err
				mu.Unlock()
				return
			}

			if err := task(ctx); err != nil {
				logger.Warn("View section fetch failed",
					logger.String("section", name),
					logger.Err(err))
				mu.Lock()
				errs[name] = err
				mu.Unlock()
			}
		}(name, task)
	}

	wg.Wait()

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// Messages converts a Join error map into the per-section message map
// rendered in view models
func Messages(errs map[string]error) map[string]string {
	if len(errs) == 0 {
		return nil
	}

	messages := make(map[string]string, len(errs))
	for name, err := range errs {
		messages[name] = err.Error()
	}
	return messages
}
