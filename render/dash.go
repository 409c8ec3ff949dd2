package render

import (
	cfg "github.com/automoto/cross/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// DashIndicator is a square in the top-right corner that bounces in when
// the dash re-arms and disappears when it is spent.
type DashIndicator struct {
	tween *gween.Tween
	ready bool
	size  float32
}

func NewDashIndicator() *DashIndicator {
	return &DashIndicator{}
}

// Update advances the indicator by dt seconds given the current dash state.
func (d *DashIndicator) Update(dt float32, ready bool) {
	if ready && !d.ready {
		d.tween = gween.New(0, float32(cfg.HUD.DashIndicatorSize), cfg.HUD.DashIndicatorDuration, ease.OutBounce)
	}
	if !ready {
		d.tween = nil
		d.size = 0
	}
	d.ready = ready

	if d.tween != nil {
		size, finished := d.tween.Update(dt)
		d.size = size
		if finished {
			d.tween = nil
		}
	}
}

// Size returns the current edge length.
func (d *DashIndicator) Size() float32 {
	return d.size
}

func (d *DashIndicator) Draw(screen *ebiten.Image) {
	if d.size <= 0 {
		return
	}
	margin := float32(cfg.HUD.Margin)
	full := float32(cfg.HUD.DashIndicatorSize)
	cx := float32(screen.Bounds().Dx()) - margin - full/2
	cy := margin + full/2
	vector.FillRect(screen, cx-d.size/2, cy-d.size/2, d.size, d.size, cfg.LightBlue, false)
}
