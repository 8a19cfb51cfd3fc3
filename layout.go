package rowan

// defaultLayoutSpacing is the gap between consecutive children.
const defaultLayoutSpacing = 5

// Layout positions a panel's children before they render. It is stateless
// beyond its spacing parameter; the algorithm is selected by Kind.
type Layout struct {
	Kind    LayoutKind
	Spacing float64
}

// layoutFuncs is indexed by LayoutKind. LayoutNone has no entry: children
// keep their own positions.
var layoutFuncs = [layoutKindCount]func(children []*Widget, spacing float64){
	LayoutVertical:   layoutVertical,
	LayoutHorizontal: layoutHorizontal,
}

// applyLayout recomputes the local positions of the panel's children.
// Runs every render, so it always reflects the latest child set and sizes.
// Children with not-yet-measured sizes (a label before its first render)
// contribute zero extent and are mis-positioned until measured.
func applyLayout(w *Widget) {
	fn := layoutFuncs[w.Layout.Kind]
	if fn == nil || len(w.children) == 0 {
		return
	}
	fn(w.children, w.Layout.Spacing)
}

// layoutVertical stacks children along Y in list order, keeping the whole
// stack centered on the panel's local origin.
func layoutVertical(children []*Widget, spacing float64) {
	var total float64
	for _, c := range children {
		total += c.Height
	}
	totalSpacing := spacing * float64(len(children)-1)

	cur := -total/2 - totalSpacing/2
	for _, c := range children {
		c.X = 0
		c.Y = cur + c.Height/2
		cur += c.Height + spacing
	}
}

// layoutHorizontal is the X-axis mirror of layoutVertical.
func layoutHorizontal(children []*Widget, spacing float64) {
	var total float64
	for _, c := range children {
		total += c.Width
	}
	totalSpacing := spacing * float64(len(children)-1)

	cur := -total/2 - totalSpacing/2
	for _, c := range children {
		c.X = cur + c.Width/2
		c.Y = 0
		cur += c.Width + spacing
	}
}
