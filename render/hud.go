package render

import (
	"fmt"

	cfg "github.com/automoto/cross/config"
	"github.com/automoto/cross/fonts"
	"github.com/automoto/cross/session"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
)

// DrawHUD prints the frame's position, camera and pose in the top-left
// corner.
func DrawHUD(screen *ebiten.Image, frame session.Frame, profile cfg.PhysicsProfile) {
	face := fonts.HUD.Get()
	lineHeight := face.Metrics().Height.Ceil()
	margin := int(cfg.HUD.Margin)

	lines := []string{
		fmt.Sprintf("pos %d,%d cam %d,%d", frame.Body.X, frame.Body.Y, frame.Camera.X, frame.Camera.Y),
		fmt.Sprintf("%s %d", frame.Pose, frame.Frame),
	}
	if profile != cfg.ProfilePlatformer {
		lines = append(lines, profile.String())
	}

	for i, line := range lines {
		text.Draw(screen, line, face, margin, margin+lineHeight*(i+1), cfg.HUD.TextColor)
	}
}
