package fonts

import "testing"

func TestLoadDefaults(t *testing.T) {
	if err := LoadDefaults(); err != nil {
		t.Fatalf("LoadDefaults: %v", err)
	}
	face := HUD.Get()
	if face == nil {
		t.Fatalf("nil face")
	}
	if h := face.Metrics().Height; h <= 0 {
		t.Errorf("line height = %v", h)
	}
}

func TestLoadRejectsGarbage(t *testing.T) {
	if err := LoadFontWithSize("broken", []byte("not a font"), 8); err == nil {
		t.Errorf("expected parse error")
	}
}

func TestGetUnknownPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic")
		}
	}()
	FontName("missing").Get()
}
