package service

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

type autoLockJob struct {
	onIdle func()

	lastActivity atomic.Int64

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewAutoLockJob creates an AutoLockJob that calls onIdle once the idle
// period passes without a Touch. The job is idle until Start is called.
//
// onIdle runs on the job's goroutine after the job has disarmed itself, so
// it may call Stop or Start without deadlocking.
func NewAutoLockJob(onIdle func()) AutoLockJob {
	return &autoLockJob{onIdle: onIdle}
}

// Start implements AutoLockJob. It stops any previously running timer and
// arms a new one. A non-positive idle disables auto-lock.
func (j *autoLockJob) Start(idle time.Duration) {
	j.Stop()
	if idle <= 0 {
		return
	}

	j.Touch()

	j.mu.Lock()
	ctx, cancel := context.WithCancel(context.Background())
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		fire := j.wait(ctx, idle)
		j.wg.Done()
		if fire {
			j.onIdle()
		}
	}()
}

// wait blocks until idle has elapsed since the last activity or ctx is
// cancelled. It reports true only if it disarmed the job itself.
func (j *autoLockJob) wait(ctx context.Context, idle time.Duration) bool {
	t := time.NewTimer(idle)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return false
		case <-t.C:
			elapsed := time.Since(time.Unix(0, j.lastActivity.Load()))
			if elapsed < idle {
				t.Reset(idle - elapsed)
				continue
			}

			j.mu.Lock()
			if ctx.Err() != nil {
				j.mu.Unlock()
				return false
			}
			j.cancel()
			j.cancel = nil
			j.mu.Unlock()
			return true
		}
	}
}

// Touch implements AutoLockJob.
func (j *autoLockJob) Touch() {
	j.lastActivity.Store(time.Now().UnixNano())
}

// Stop implements AutoLockJob. It blocks until the timer goroutine has
// exited or handed off to onIdle. Safe to call when the job is not running.
func (j *autoLockJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
