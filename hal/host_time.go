//go:build !tinygo

package hal

// hostTime emits one tick per host frame. The runners drive it, so the tick
// rate follows -hz (headless, terminal) or the ebiten TPS (window).
type hostTime struct {
	ch  chan uint64
	seq uint64
}

func newHostTime() *hostTime {
	return &hostTime{ch: make(chan uint64, 64)}
}

func (t *hostTime) Ticks() <-chan uint64 { return t.ch }

// tick publishes the next sequence number. Ticks nobody drained are dropped.
func (t *hostTime) tick() uint64 {
	t.seq++
	select {
	case t.ch <- t.seq:
	default:
	}
	return t.seq
}
