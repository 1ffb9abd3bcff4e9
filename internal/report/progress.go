package report

import (
	"context"
	"sync"
	"time"
)

// StepKeys are the translation keys of the analysis stages, in order.
var StepKeys = []string{
	"report.step.extract",
	"report.step.validate",
	"report.step.crossReference",
	"report.step.insights",
	"report.step.finalize",
}

// LastStep is the index of the final stage. The step counter never goes
// past it. It must stay equal to len(StepKeys)-1.
const LastStep = 4

// startStepper advances the flow's step counter every interval until the
// returned stop func is called or ctx ends. stop blocks until the goroutine
// has exited, so no advance can land after it returns. It is safe to call
// more than once.
func (f *Flow) startStepper(ctx context.Context) (stop func()) {
	done := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()
		ticker := time.NewTicker(f.opts.StepInterval)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ctx.Done():
				return
			case <-ticker.C:
				f.advanceStep()
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			close(done)
			wg.Wait()
		})
	}
}

func (f *Flow) advanceStep() {
	f.mu.Lock()
	if f.closed || f.state != StateSubmitting || f.step >= LastStep {
		f.mu.Unlock()
		return
	}
	f.step++
	f.mu.Unlock()
	f.notify()
}
