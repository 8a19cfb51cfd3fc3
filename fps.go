package rowan

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// NewFPSLabel creates a Label that displays the current FPS and TPS.
// The text refreshes every ~0.5 seconds. Attach it to a scene's UI root.
func NewFPSLabel() *Widget {
	w := NewLabel("fps_label", "")

	var sinceUpdate float64

	w.OnUpdate = func(w *Widget, f *Frame) {
		sinceUpdate += f.DT
		if sinceUpdate < 0.5 && w.Text != "" {
			return
		}
		sinceUpdate = 0
		w.Text = fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS())
	}

	return w
}
