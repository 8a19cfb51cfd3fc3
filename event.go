package rowan

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// EventType identifies a kind of input or window event.
type EventType uint8

const (
	EventQuit      EventType = iota // the host window was asked to close
	EventKeyDown                    // a key was pressed this frame
	EventKeyUp                      // a key was released this frame
	EventMouseDown                  // a mouse button was pressed this frame
	EventMouseUp                    // a mouse button was released this frame
	EventMouseMove                  // the pointer moved
)

// Event is a single input or window event. Key is valid for key events,
// Button for mouse button events, and X/Y for all mouse events.
type Event struct {
	Type   EventType
	Key    Key
	Button MouseButton
	X, Y   float64
}

// pollButtons maps the engine's button codes to ebiten's for polling.
var pollButtons = [mouseButtonCount]ebiten.MouseButton{
	MouseButtonLeft:   ebiten.MouseButtonLeft,
	MouseButtonRight:  ebiten.MouseButtonRight,
	MouseButtonMiddle: ebiten.MouseButtonMiddle,
}

// pollEvents synthesizes this frame's event list from ebiten's polled input
// state plus at most one injected event. The returned slice is reused across
// frames and MUST NOT be retained.
func (e *Engine) pollEvents() []Event {
	e.events = e.events[:0]

	// Injected events are consumed one per frame so that a synthetic press
	// and release land on distinct frames, like real input.
	if len(e.injectQueue) > 0 {
		ev := e.injectQueue[0]
		copy(e.injectQueue, e.injectQueue[1:])
		e.injectQueue = e.injectQueue[:len(e.injectQueue)-1]
		e.events = append(e.events, ev)
	}

	if ebiten.IsWindowBeingClosed() {
		e.events = append(e.events, Event{Type: EventQuit})
	}

	e.keyBuf = inpututil.AppendJustPressedKeys(e.keyBuf[:0])
	for _, k := range e.keyBuf {
		e.events = append(e.events, Event{Type: EventKeyDown, Key: k})
	}
	e.keyBuf = inpututil.AppendJustReleasedKeys(e.keyBuf[:0])
	for _, k := range e.keyBuf {
		e.events = append(e.events, Event{Type: EventKeyUp, Key: k})
	}

	mx, my := ebiten.CursorPosition()
	fx, fy := float64(mx), float64(my)
	for btn, ebtn := range pollButtons {
		if inpututil.IsMouseButtonJustPressed(ebtn) {
			e.events = append(e.events, Event{Type: EventMouseDown, Button: MouseButton(btn), X: fx, Y: fy})
		}
		if inpututil.IsMouseButtonJustReleased(ebtn) {
			e.events = append(e.events, Event{Type: EventMouseUp, Button: MouseButton(btn), X: fx, Y: fy})
		}
	}
	if fx != e.lastMouseX || fy != e.lastMouseY {
		e.events = append(e.events, Event{Type: EventMouseMove, X: fx, Y: fy})
		e.lastMouseX, e.lastMouseY = fx, fy
	}

	return e.events
}

// InjectEvent queues a synthetic event. It is consumed by a following frame's
// poll exactly as if the host had produced it, which makes interaction
// sequences scriptable in headless tests.
func (e *Engine) InjectEvent(ev Event) {
	e.injectQueue = append(e.injectQueue, ev)
}

// InjectClick queues a left-button press followed by a release at the given
// screen coordinates. Consumes two frames.
func (e *Engine) InjectClick(x, y float64) {
	e.InjectEvent(Event{Type: EventMouseDown, Button: MouseButtonLeft, X: x, Y: y})
	e.InjectEvent(Event{Type: EventMouseUp, Button: MouseButtonLeft, X: x, Y: y})
}
