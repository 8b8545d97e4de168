package game

import "testing"

func TestLoadFontCaching(t *testing.T) {
	rm := NewResourceManager()

	face1, err := rm.LoadFont(FontDisplay, 24)
	if err != nil {
		t.Fatalf("LoadFont() error: %v", err)
	}
	face2, err := rm.LoadFont(FontDisplay, 24)
	if err != nil {
		t.Fatalf("LoadFont() error: %v", err)
	}
	if face1 != face2 {
		t.Error("same kind and size should return the cached face")
	}

	if rm.Font(FontMono, 24) == nil {
		t.Fatal("Font() returned nil for a bundled font")
	}
	mono, err := rm.LoadFont(FontMono, 24)
	if err != nil {
		t.Fatalf("LoadFont() error: %v", err)
	}
	if mono == face1 || mono.Source == face1.Source {
		t.Error("mono and display fonts must use different sources")
	}
	if face1.Size != 24 {
		t.Errorf("Size: got %v, want 24", face1.Size)
	}
}
