package rowan

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// borderWidth is the fixed stroke width for widget borders.
const borderWidth = 2

// textLineSpacing is the line spacing factor for widget text.
const textLineSpacing = 1.2

// Widget is a retained-mode UI tree node. A single flat struct covers all
// widget types; Type selects behavior through the event/render tables below.
// Positions are local to the parent and anchored at the widget's center; a
// widget with no parent is already in absolute coordinates.
type Widget struct {
	Name string
	Type WidgetType

	Parent   *Widget
	children []*Widget
	iterBuf  []*Widget // reused snapshot for traversal under mutation

	X, Y          float64 // local position of the widget center
	Width, Height float64
	Padding       float64
	Background    *Color // nil = no fill and no border
	Border        Color
	Enabled       bool
	Visible       bool

	// Text fields (WidgetButton, WidgetLabel)
	Text      string
	TextColor Color
	FontName  string // resource table lookup; "" = built-in default font

	// Button fields
	HoverColor   Color
	PressedColor Color
	hovered      bool
	pressed      bool
	OnClick      func()

	// Panel fields
	Layout Layout

	// Optional per-frame callback, run during the scene's update pass.
	OnUpdate func(*Widget, *Frame)
}

// widgetDefaults sets the common default field values shared by all constructors.
func widgetDefaults(w *Widget) {
	w.Enabled = true
	w.Visible = true
	w.Padding = 5
	w.Border = RGB(100, 100, 100)
	w.TextColor = RGB(255, 255, 255)
	w.Layout.Spacing = defaultLayoutSpacing
}

// NewPanel creates a container widget with a background, border, and optional
// layout.
func NewPanel(name string, width, height float64) *Widget {
	bg := RGB(50, 50, 50)
	w := &Widget{Name: name, Type: WidgetPanel, Width: width, Height: height, Background: &bg}
	widgetDefaults(w)
	return w
}

// NewButton creates a clickable button with the given caption.
func NewButton(name, caption string, width, height float64) *Widget {
	bg := RGB(50, 50, 50)
	w := &Widget{Name: name, Type: WidgetButton, Text: caption, Width: width, Height: height, Background: &bg}
	widgetDefaults(w)
	w.HoverColor = RGB(70, 70, 70)
	w.PressedColor = RGB(30, 30, 30)
	return w
}

// NewLabel creates a text widget. Its width and height are outputs, recomputed
// from the rendered text extents every frame; they are zero until the first
// render.
func NewLabel(name, caption string) *Widget {
	w := &Widget{Name: name, Type: WidgetLabel, Text: caption}
	widgetDefaults(w)
	return w
}

// --- Tree manipulation ---

// AddChild appends child to this widget's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is an ancestor of this widget (cycle).
func (w *Widget) AddChild(child *Widget) {
	if child == nil {
		panic("rowan: cannot add nil child")
	}
	if isWidgetAncestor(child, w) {
		panic("rowan: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = w
	w.children = append(w.children, child)
}

// RemoveChild detaches child from this widget.
// Panics if child.Parent != w.
func (w *Widget) RemoveChild(child *Widget) {
	if child.Parent != w {
		panic("rowan: child's parent is not this widget")
	}
	w.removeChildByPtr(child)
	child.Parent = nil
}

// RemoveFromParent detaches this widget from its parent.
// No-op if this widget has no parent.
func (w *Widget) RemoveFromParent() {
	if w.Parent == nil {
		return
	}
	w.Parent.RemoveChild(w)
}

// Children returns the child list. The returned slice MUST NOT be mutated by
// the caller.
func (w *Widget) Children() []*Widget {
	return w.children
}

// NumChildren returns the number of children.
func (w *Widget) NumChildren() int {
	return len(w.children)
}

// isWidgetAncestor reports whether candidate is an ancestor of widget.
func isWidgetAncestor(candidate, widget *Widget) bool {
	for p := widget; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from w.children without clearing child.Parent.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (w *Widget) removeChildByPtr(child *Widget) {
	for i, c := range w.children {
		if c == child {
			copy(w.children[i:], w.children[i+1:])
			w.children[len(w.children)-1] = nil
			w.children = w.children[:len(w.children)-1]
			return
		}
	}
}

// snapshotChildren copies the current child list into the reused traversal
// buffer. Every child present at snapshot time is visited exactly once even
// if a callback mutates the tree; structural changes land on the next pass.
func (w *Widget) snapshotChildren() []*Widget {
	w.iterBuf = append(w.iterBuf[:0], w.children...)
	return w.iterBuf
}

// --- Geometry ---

// AbsolutePosition sums local positions up the parent chain to the root.
func (w *Widget) AbsolutePosition() (x, y float64) {
	x, y = w.X, w.Y
	for p := w.Parent; p != nil; p = p.Parent {
		x += p.X
		y += p.Y
	}
	return x, y
}

// absRect returns the widget's absolute bounding box.
func (w *Widget) absRect() Rect {
	ax, ay := w.AbsolutePosition()
	return RectAround(ax, ay, w.Width, w.Height)
}

// ContainsPoint hit-tests the absolute bounding box with inclusive edges.
func (w *Widget) ContainsPoint(x, y float64) bool {
	return w.absRect().Contains(x, y)
}

// IsHovered reports whether the pointer was over the button at the last
// delivered event.
func (w *Widget) IsHovered() bool {
	return w.hovered
}

// IsPressed reports whether the button is currently armed by a press.
func (w *Widget) IsPressed() bool {
	return w.pressed
}

// --- Behavior dispatch ---

var widgetEventFuncs = [widgetTypeCount]func(*Widget, Event, *Frame){
	WidgetPanel:  widgetEventNone,
	WidgetButton: buttonHandleEvent,
	WidgetLabel:  widgetEventNone,
}

var widgetRenderFuncs [widgetTypeCount]func(*Widget, *ebiten.Image, *Frame)

// Populated in init to break the initialization cycle between
// widgetRenderFuncs, renderPanel, and Widget.Render.
func init() {
	widgetRenderFuncs = [widgetTypeCount]func(*Widget, *ebiten.Image, *Frame){
		WidgetPanel:  renderPanel,
		WidgetButton: renderButton,
		WidgetLabel:  renderLabel,
	}
}

func widgetEventNone(w *Widget, ev Event, f *Frame) {}

// HandleEvent delivers one raw event to this widget, then to a snapshot of
// its children in list order.
func (w *Widget) HandleEvent(ev Event, f *Frame) {
	widgetEventFuncs[w.Type](w, ev, f)
	for _, c := range w.snapshotChildren() {
		c.HandleEvent(ev, f)
	}
}

// update runs per-frame callbacks over the tree.
func (w *Widget) update(f *Frame) {
	if w.OnUpdate != nil {
		w.OnUpdate(w, f)
	}
	for _, c := range w.snapshotChildren() {
		c.update(f)
	}
}

// buttonHandleEvent recomputes hover from the live pointer position on every
// delivered event, then runs the press/click state machine: a left press
// while hovered arms the button; a left release fires OnClick only when the
// button is both pressed and hovered, and always disarms it.
func buttonHandleEvent(w *Widget, ev Event, f *Frame) {
	if !w.Enabled {
		return
	}
	mx, my := f.Input.MousePosition()
	w.hovered = w.ContainsPoint(mx, my)

	switch {
	case ev.Type == EventMouseDown && ev.Button == MouseButtonLeft:
		if w.hovered {
			w.pressed = true
		}
	case ev.Type == EventMouseUp && ev.Button == MouseButtonLeft:
		if w.pressed && w.hovered && w.OnClick != nil {
			w.OnClick()
		}
		w.pressed = false
	}
}

// Render draws this widget onto dst. Only panels render their children, so
// the subtree order is panel background, layout, then children in list order.
func (w *Widget) Render(dst *ebiten.Image, f *Frame) {
	if !w.Visible {
		return
	}
	widgetRenderFuncs[w.Type](w, dst, f)
}

func renderPanel(w *Widget, dst *ebiten.Image, f *Frame) {
	if w.Background != nil {
		r := w.absRect()
		fillRect(dst, r, *w.Background)
		strokeRect(dst, r, w.Border)
	}

	// Layout runs at render time, so it always reflects the latest child set.
	applyLayout(w)

	for _, c := range w.snapshotChildren() {
		c.Render(dst, f)
	}
}

func renderButton(w *Widget, dst *ebiten.Image, f *Frame) {
	bg := w.Background
	switch {
	case w.pressed:
		bg = &w.PressedColor
	case w.hovered:
		bg = &w.HoverColor
	}
	r := w.absRect()
	if bg != nil {
		fillRect(dst, r, *bg)
	}
	strokeRect(dst, r, w.Border)

	ax, ay := w.AbsolutePosition()
	drawTextCentered(dst, w.Text, w.font(f), ax, ay, w.TextColor)
}

func renderLabel(w *Widget, dst *ebiten.Image, f *Frame) {
	fnt := w.font(f)
	if fnt == nil {
		return
	}

	// Size is an output: adopt the rendered text extents every frame.
	tw, th := text.Measure(w.Text, fnt.Face(), fnt.Size*textLineSpacing)
	w.Width, w.Height = tw, th

	if w.Background != nil {
		fillRect(dst, w.absRect(), *w.Background)
	}

	ax, ay := w.AbsolutePosition()
	drawTextCentered(dst, w.Text, fnt, ax, ay, w.TextColor)
}

// font resolves the widget's font from the resource table, falling back to
// the built-in default.
func (w *Widget) font(f *Frame) *Font {
	if f.Resources == nil {
		return nil
	}
	if w.FontName != "" {
		if fnt := f.Resources.Font(w.FontName); fnt != nil {
			return fnt
		}
	}
	return f.Resources.DefaultFont()
}

// --- Draw helpers ---

func fillRect(dst *ebiten.Image, r Rect, c Color) {
	vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), c.toNRGBA(), false)
}

func strokeRect(dst *ebiten.Image, r Rect, c Color) {
	vector.StrokeRect(dst, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), borderWidth, c.toNRGBA(), false)
}

func drawTextCentered(dst *ebiten.Image, s string, fnt *Font, cx, cy float64, c Color) {
	if fnt == nil || s == "" {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(cx, cy)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	op.LineSpacing = fnt.Size * textLineSpacing
	op.ColorScale.ScaleWithColor(c.toNRGBA())
	text.Draw(dst, s, fnt.Face(), op)
}
