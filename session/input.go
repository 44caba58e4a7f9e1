package session

import (
	"sync/atomic"

	cfg "github.com/cozypark/cozypark/config"
)

type InputKind int

const (
	KeyDown InputKind = iota
	KeyUp
	Blur
	Resize
	Click
	FerrisConfirm
	FerrisCancel
	FerrisExit
)

// InputEvent is one input edge. Key events carry Action; Click carries a
// world-space point in X/Y; Resize carries the window size in X/Y.
type InputEvent struct {
	Kind   InputKind
	Action cfg.ActionID
	X, Y   float64
}

// InputQueue buffers input events between ticks. Push never blocks; when the
// buffer is full the event is dropped and the next Drain reports overflow.
type InputQueue struct {
	ch       chan InputEvent
	overflow atomic.Bool
}

func NewInputQueue(size int) *InputQueue {
	return &InputQueue{ch: make(chan InputEvent, size)}
}

func (q *InputQueue) Push(ev InputEvent) {
	select {
	case q.ch <- ev:
	default:
		q.overflow.Store(true)
	}
}

// Drain returns every pending event, non-blocking, and whether any event was
// dropped since the previous Drain.
func (q *InputQueue) Drain() ([]InputEvent, bool) {
	overflowed := q.overflow.Swap(false)
	return drainChan(q.ch), overflowed
}

func drainChan[T any](ch chan T) []T {
	var out []T
	for {
		select {
		case v := <-ch:
			out = append(out, v)
		default:
			return out
		}
	}
}
