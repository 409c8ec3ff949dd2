package systems

import (
	"github.com/automoto/cross/components"
	"github.com/automoto/cross/config"
	"github.com/automoto/cross/shared/gamemath"
	"github.com/automoto/cross/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func UpdateCamera(ecs *ecs.ECS) {
	w := ecs.World
	tags.Player.Each(w, func(e *donburi.Entry) {
		Follow(components.Camera.Get(e), components.Body.Get(e))
	})
}

// Follow nudges the camera offset so the body drifts back into the
// deadzone. Each axis moves by 1 + 10% of the distance from the deadzone
// midpoint per tick, so the camera lags fast motion and catches up faster
// the further off-center the body is. Inside the deadzone nothing moves.
func Follow(cam *components.CameraData, body *components.BodyData) {
	c := config.Camera

	screenX := body.X + cam.X
	screenY := body.Y + cam.Y

	// Distance is taken from the raw screen position on both axes; only the
	// vertical bounds check uses the lowered anchor.
	distX := gamemath.AbsInt(screenX - gamemath.Midpoint(c.DeadzoneMinX, c.DeadzoneMaxX))
	distY := gamemath.AbsInt(screenY - gamemath.Midpoint(c.DeadzoneMinY, c.DeadzoneMaxY))
	speedX := 1 + int(float64(distX)*c.SpeedScale)
	speedY := 1 + int(float64(distY)*c.SpeedScale)

	if screenX > c.DeadzoneMaxX {
		cam.X -= speedX
	} else if screenX < c.DeadzoneMinX {
		cam.X += speedX
	}

	anchorY := screenY + (body.H - c.AnchorInset)
	if anchorY < c.DeadzoneMinY {
		cam.Y += speedY
	} else if anchorY > c.DeadzoneMaxY {
		cam.Y -= speedY
	}
}
