package render

import (
	"image/color"

	cfg "github.com/automoto/cross/config"
	"github.com/automoto/cross/session"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Placeholder fill per pose until sprites exist.
var poseColors = map[cfg.PoseID]color.RGBA{
	cfg.Idle: cfg.White,
	cfg.Walk: cfg.LightBlue,
	cfg.Spin: cfg.Magenta,
	cfg.Jump: cfg.LightGreen,
	cfg.Fall: cfg.Orange,
}

// DrawPlayer draws the placeholder sprite for frame and returns the pose it
// drew, which the caller feeds back into the next step.
func DrawPlayer(screen *ebiten.Image, frame session.Frame, outline bool) cfg.PoseID {
	r := frame.Screen
	c, ok := poseColors[frame.Pose]
	if !ok {
		return cfg.PoseNone
	}

	x, y := float32(r.X), float32(r.Y)
	w, h := float32(r.W), float32(r.H)
	vector.FillRect(screen, x, y, w, h, c, false)

	// Frame progress along the bottom edge for animated poses.
	if count := cfg.Animations[frame.Pose].FrameCount; count > 0 {
		progress := w * float32(frame.Frame+1) / float32(count)
		vector.FillRect(screen, x, y+h-2, progress, 2, cfg.Grey, false)
	}

	// Eye on the facing side.
	eyeX := x + w - 4
	if frame.FacingLeft {
		eyeX = x + 2
	}
	vector.FillRect(screen, eyeX, y+3, 2, 2, cfg.Grey, false)

	if outline {
		strokeRect(screen, r, cfg.HUD.OutlineColor)
	}
	return frame.Pose
}
