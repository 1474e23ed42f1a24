package pipeline

import "sync"

// Update is one completed pipeline pass delivered to the display host.
// Err is non-nil when the run failed; Result is then zero.
type Update struct {
	Result Result
	Err    error
}

// LiveRunner runs pipeline passes for a stream of configuration
// snapshots with last-write-wins semantics: a newer snapshot supersedes
// an in-flight run, and a result that is stale by the time it would be
// delivered is discarded instead. Updates therefore always arrive in
// submission order and the final update always reflects the newest
// submitted config.
type LiveRunner struct {
	runner  *Runner
	pending chan Config
	updates chan Update

	closeOnce sync.Once
}

// NewLiveRunner starts a worker goroutine over the given runner.
// Callers must eventually Close the LiveRunner and drain Updates.
func NewLiveRunner(r *Runner) *LiveRunner {
	l := &LiveRunner{
		runner:  r,
		pending: make(chan Config, 1),
		updates: make(chan Update),
	}
	go l.loop()
	return l
}

// Submit hands a new configuration snapshot to the worker without
// blocking. A snapshot that has not started running yet is replaced by
// the newer one. Submit must not be called after Close.
func (l *LiveRunner) Submit(cfg Config) {
	for {
		select {
		case l.pending <- cfg:
			return
		default:
		}

		// Slot full: evict the superseded snapshot and retry.
		select {
		case <-l.pending:
		default:
		}
	}
}

// Updates returns the delivery channel. It is closed after Close once
// the update for the newest submitted config has been delivered.
func (l *LiveRunner) Updates() <-chan Update {
	return l.updates
}

// Close stops the worker. Snapshots superseded before Close are still
// coalesced away, but the result of the newest submitted config is
// always delivered before Updates closes.
func (l *LiveRunner) Close() {
	l.closeOnce.Do(func() {
		close(l.pending)
	})
}

func (l *LiveRunner) loop() {
	defer close(l.updates)

	cfg, ok := <-l.pending
	for ok {
		res, err := l.runner.Run(cfg)

		// A snapshot that arrived while running supersedes this result.
		// Close is not a supersession: the newest result still goes out.
		select {
		case next, more := <-l.pending:
			if more {
				cfg = next
				continue
			}
			l.updates <- Update{Result: res, Err: err}
			return
		default:
		}

		select {
		case l.updates <- Update{Result: res, Err: err}:
			cfg, ok = <-l.pending
		case next, more := <-l.pending:
			if more {
				// Superseded while waiting on the consumer; the stale
				// result is dropped, never delivered out of order.
				cfg = next
				continue
			}
			l.updates <- Update{Result: res, Err: err}
			return
		}
	}
}
