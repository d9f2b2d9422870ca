package starfall

// syntheticPointerEvent represents a single injected pointer sample in
// screen coordinates. present=false is a pointer leaving the window.
type syntheticPointerEvent struct {
	screenX, screenY float64
	present          bool
}

// InjectMove queues a pointer move to the given screen coordinates. The event
// is consumed on the next frame's Update.
func (h *Hero) InjectMove(x, y float64) {
	h.injectQueue = append(h.injectQueue, syntheticPointerEvent{
		screenX: x, screenY: y,
		present: true,
	})
}

// InjectLeave queues the pointer leaving the window.
func (h *Hero) InjectLeave() {
	h.injectQueue = append(h.injectQueue, syntheticPointerEvent{})
}

// InjectSweep queues a pointer moving from (fromX, fromY) to (toX, toY) over
// the given number of frames, inclusive of both ends. Minimum frames is 2.
func (h *Hero) InjectSweep(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	for i := 0; i < frames; i++ {
		t := float64(i) / float64(frames-1)
		h.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
}

// processInjectedInput pops one event from the inject queue and applies it.
// Returns true if an event was consumed (real pointer input should be skipped).
func (h *Hero) processInjectedInput() bool {
	if len(h.injectQueue) == 0 {
		return false
	}
	evt := h.injectQueue[0]
	copy(h.injectQueue, h.injectQueue[1:])
	h.injectQueue = h.injectQueue[:len(h.injectQueue)-1]

	h.handlePointer(evt.screenX, evt.screenY, evt.present)
	return true
}
