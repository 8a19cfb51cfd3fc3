package rowan

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// SetTexture assigns a texture directly, bypassing the resource table.
// The entity adopts the texture's size.
func (e *Entity) SetTexture(img *ebiten.Image) {
	e.texture = img
	if img != nil {
		b := img.Bounds()
		e.Width = float64(b.Dx())
		e.Height = float64(b.Dy())
	}
}

// Texture returns the resolved texture, or nil if it has not been resolved yet.
func (e *Entity) Texture() *ebiten.Image {
	return e.texture
}

// resolveTexture looks the entity's texture up in the resource table by name.
// A miss is silent; resolution is retried on the next render. On the first
// hit the entity adopts the texture's size.
func (e *Entity) resolveTexture(res *Resources) {
	if e.texture != nil || e.TextureName == "" || res == nil {
		return
	}
	if img := res.Texture(e.TextureName); img != nil {
		e.SetTexture(img)
	}
}

// renderSprite draws a sprite entity onto dst. The pipeline order is fixed:
// crop to SrcRect, scale, rotate (of the already-scaled image), flip,
// multiply tint, alpha, then blit centered at the entity position rounded to
// the nearest device pixel.
func renderSprite(e *Entity, dst *ebiten.Image, f *Frame) {
	e.resolveTexture(f.Resources)
	if !e.Visible || e.texture == nil {
		return
	}

	img := e.texture
	if e.SrcRect != nil {
		img = img.SubImage(*e.SrcRect).(*ebiten.Image)
	}

	b := img.Bounds()
	w := float64(b.Dx())
	h := float64(b.Dy())

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-w/2, -h/2)
	if e.Scale != 1 {
		op.GeoM.Scale(e.Scale, e.Scale)
	}
	if e.Rotation != 0 {
		// Degrees counter-clockwise; ebiten rotates clockwise in screen space.
		op.GeoM.Rotate(-e.Rotation * math.Pi / 180)
	}
	if e.FlipX || e.FlipY {
		fx, fy := 1.0, 1.0
		if e.FlipX {
			fx = -1
		}
		if e.FlipY {
			fy = -1
		}
		op.GeoM.Scale(fx, fy)
	}
	op.GeoM.Translate(math.Round(e.X), math.Round(e.Y))

	op.ColorScale.Scale(
		float32(e.ColorMod.R)/255,
		float32(e.ColorMod.G)/255,
		float32(e.ColorMod.B)/255,
		1,
	)
	op.ColorScale.ScaleAlpha(float32(e.Alpha) / 255)

	dst.DrawImage(img, op)
}
