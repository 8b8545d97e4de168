package scroll

import (
	"errors"
	"math"
	"testing"
)

func TestNewWordSanitizesHints(t *testing.T) {
	tests := []struct {
		name         string
		fontSize     float64
		offset       float64
		wantFontSize float64
		wantOffset   float64
	}{
		{"正常值", 48, 80, 48, 80},
		{"负偏移归零", 48, -20, 48, 0},
		{"NaN 偏移归零", 48, math.NaN(), 48, 0},
		{"负字号归零", -1, 0, 0, 0},
		{"Inf 字号归零", math.Inf(1), 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, err := NewWord("STACK", tt.fontSize, 40, tt.offset)
			if err != nil {
				t.Fatalf("NewWord() error: %v", err)
			}
			if w.FontSize() != tt.wantFontSize || w.Offset() != tt.wantOffset {
				t.Errorf("got fontSize=%v offset=%v, want %v %v", w.FontSize(), w.Offset(), tt.wantFontSize, tt.wantOffset)
			}
		})
	}
}

func TestNewWordThresholdError(t *testing.T) {
	for _, th := range []float64{0, -5, math.NaN(), math.Inf(1)} {
		if _, err := NewWord("X", 10, th, 0); !errors.Is(err, ErrInvalidThreshold) {
			t.Errorf("threshold %v: got %v, want ErrInvalidThreshold", th, err)
		}
	}
}

func TestWordUnitsAreRunes(t *testing.T) {
	w := MustWord("ÉTÉ", 10, 1, 0)
	if w.Len() != 3 {
		t.Errorf("Len: got %d, want 3", w.Len())
	}
	if w.Text() != "ÉTÉ" {
		t.Errorf("Text: got %q", w.Text())
	}
}

func TestMustWordPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustWord with zero threshold should panic")
		}
	}()
	MustWord("X", 10, 0, 0)
}
