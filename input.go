package rowan

// Input is the rolling per-frame input snapshot. Keys and mouse buttons are
// tracked in three tiers: held (level-triggered, true for the whole hold),
// down (edge-triggered, true only on the press frame), and up (edge-triggered,
// true only on the release frame).
//
// The engine calls BeginFrame then Fold for each polled event, so the
// edge-triggered queries are true for exactly one frame per press/release.
type Input struct {
	keysHeld map[Key]struct{}
	keysDown map[Key]struct{}
	keysUp   map[Key]struct{}

	mouseHeld [mouseButtonCount]bool
	mouseDown [mouseButtonCount]bool
	mouseUp   [mouseButtonCount]bool

	mouseX, mouseY float64
}

// NewInput creates an empty input snapshot.
func NewInput() *Input {
	return &Input{
		keysHeld: make(map[Key]struct{}),
		keysDown: make(map[Key]struct{}),
		keysUp:   make(map[Key]struct{}),
	}
}

// BeginFrame clears the edge-triggered (this-frame) sets. Held state carries
// over until a matching release event is folded.
func (in *Input) BeginFrame() {
	clear(in.keysDown)
	clear(in.keysUp)
	in.mouseDown = [mouseButtonCount]bool{}
	in.mouseUp = [mouseButtonCount]bool{}
}

// Fold merges one event into the snapshot. Mouse events also update the
// last-known pointer position.
func (in *Input) Fold(ev Event) {
	switch ev.Type {
	case EventKeyDown:
		in.keysHeld[ev.Key] = struct{}{}
		in.keysDown[ev.Key] = struct{}{}
	case EventKeyUp:
		delete(in.keysHeld, ev.Key)
		in.keysUp[ev.Key] = struct{}{}
	case EventMouseDown:
		if ev.Button < mouseButtonCount {
			in.mouseHeld[ev.Button] = true
			in.mouseDown[ev.Button] = true
		}
		in.mouseX, in.mouseY = ev.X, ev.Y
	case EventMouseUp:
		if ev.Button < mouseButtonCount {
			in.mouseHeld[ev.Button] = false
			in.mouseUp[ev.Button] = true
		}
		in.mouseX, in.mouseY = ev.X, ev.Y
	case EventMouseMove:
		in.mouseX, in.mouseY = ev.X, ev.Y
	}
}

// IsKeyPressed reports whether the key is currently held.
func (in *Input) IsKeyPressed(k Key) bool {
	_, ok := in.keysHeld[k]
	return ok
}

// IsKeyDown reports whether the key was pressed this frame.
func (in *Input) IsKeyDown(k Key) bool {
	_, ok := in.keysDown[k]
	return ok
}

// IsKeyUp reports whether the key was released this frame.
func (in *Input) IsKeyUp(k Key) bool {
	_, ok := in.keysUp[k]
	return ok
}

// IsMouseButtonPressed reports whether the button is currently held.
func (in *Input) IsMouseButtonPressed(b MouseButton) bool {
	return b < mouseButtonCount && in.mouseHeld[b]
}

// IsMouseButtonDown reports whether the button was pressed this frame.
func (in *Input) IsMouseButtonDown(b MouseButton) bool {
	return b < mouseButtonCount && in.mouseDown[b]
}

// IsMouseButtonUp reports whether the button was released this frame.
func (in *Input) IsMouseButtonUp(b MouseButton) bool {
	return b < mouseButtonCount && in.mouseUp[b]
}

// MousePosition returns the last-known pointer position.
func (in *Input) MousePosition() (x, y float64) {
	return in.mouseX, in.mouseY
}
