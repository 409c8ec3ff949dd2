// Package render draws a session frame with ebiten vector shapes.
package render

import (
	"image/color"

	"github.com/automoto/cross/components"
	cfg "github.com/automoto/cross/config"
	"github.com/automoto/cross/shared/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// DrawLevel outlines every solid in screen space. Solids listed in
// touching use the touching color.
func DrawLevel(screen *ebiten.Image, solids []gamemath.Rect, cam components.CameraData, touching []int) {
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	view := gamemath.Rect{X: 0, Y: 0, W: width, H: height}

	hit := make(map[int]bool, len(touching))
	for _, i := range touching {
		hit[i] = true
	}

	for i, solid := range solids {
		r := solid.Offset(cam.X, cam.Y)
		if !r.Touches(view) {
			continue
		}
		c := cfg.HUD.OutlineColor
		if hit[i] {
			c = cfg.HUD.TouchingColor
		}
		strokeRect(screen, r, c)
	}
}

// DrawFloor draws the baseline plane the integrator clamps to.
func DrawFloor(screen *ebiten.Image, cam components.CameraData) {
	y := cfg.Physics.FloorY + cam.Y
	if y < 0 || y >= screen.Bounds().Dy() {
		return
	}
	vector.FillRect(screen, 0, float32(y), float32(screen.Bounds().Dx()), 1, cfg.HUD.FloorColor, false)
}

func strokeRect(screen *ebiten.Image, r gamemath.Rect, c color.Color) {
	x, y := float32(r.X), float32(r.Y)
	w, h := float32(r.W), float32(r.H)
	vector.FillRect(screen, x, y, w, 1, c, false)     // Top
	vector.FillRect(screen, x, y+h-1, w, 1, c, false) // Bottom
	vector.FillRect(screen, x, y, 1, h, c, false)     // Left
	vector.FillRect(screen, x+w-1, y, 1, h, c, false) // Right
}
