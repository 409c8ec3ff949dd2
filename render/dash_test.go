package render

import (
	"math"
	"testing"

	cfg "github.com/automoto/cross/config"
)

func TestDashIndicatorBouncesInWhenArmed(t *testing.T) {
	d := NewDashIndicator()

	d.Update(0.1, false)
	if d.Size() != 0 {
		t.Fatalf("size = %v while unarmed", d.Size())
	}

	d.Update(0, true)
	if d.Size() != 0 {
		t.Fatalf("size = %v at the start of the bounce", d.Size())
	}

	for i := 0; i < 20; i++ {
		d.Update(0.05, true)
	}
	if want := float32(cfg.HUD.DashIndicatorSize); math.Abs(float64(d.Size()-want)) > 0.01 {
		t.Errorf("size = %v after the bounce, want %v", d.Size(), want)
	}

	d.Update(0.05, false)
	if d.Size() != 0 {
		t.Errorf("size = %v after the dash was spent", d.Size())
	}
}
