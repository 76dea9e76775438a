// Package progress defines the byte-level progress observation contract for
// transfers, with determinate, indeterminate, silent and fan-out reporters.
//
// Reporting is purely observational. A reporter must never affect transfer
// correctness, and the engine works identically against the silent no-op
// implementation.
package progress

// Reporter receives byte-count updates during a transfer.
// Progress is called once per chunk with the chunk length; Finish exactly
// once on successful completion.
type Reporter interface {
	Progress(delta int64)
	Finish()
}

// Factory builds a reporter for one transfer attempt. The engine passes the
// declared content length, or zero when the remote does not declare one.
type Factory func(total int64) Reporter

// Silent is the no-op reporter used when output is disabled.
type Silent struct{}

func (Silent) Progress(int64) {}
func (Silent) Finish()        {}

// Multi fans every update out to each wrapped reporter in order.
type Multi struct {
	reporters []Reporter
}

// NewMulti combines several reporters into one.
func NewMulti(reporters ...Reporter) *Multi {
	return &Multi{reporters: reporters}
}

func (m *Multi) Progress(delta int64) {
	for _, r := range m.reporters {
		r.Progress(delta)
	}
}

func (m *Multi) Finish() {
	for _, r := range m.reporters {
		r.Finish()
	}
}

// Console builds the default terminal reporter factory: a proportional bar
// when the total byte count is known, a heartbeat spinner otherwise.
func Console() Factory {
	return func(total int64) Reporter {
		if total > 0 {
			return NewBar(total)
		}
		return NewSpinner()
	}
}

// Discard builds a factory producing silent reporters.
func Discard() Factory {
	return func(int64) Reporter {
		return Silent{}
	}
}
