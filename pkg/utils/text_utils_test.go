package utils

import (
	"strings"
	"testing"
)

// monoMeasure 每个字符 10 像素
func monoMeasure(s string) float64 {
	return float64(len([]rune(s))) * 10
}

// TestWrapText 测试文本换行功能
func TestWrapText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxWidth float64
		want     []string
	}{
		{
			name:     "短文本不换行",
			input:    "BRUTAL",
			maxWidth: 1000,
			want:     []string{"BRUTAL"},
		},
		{
			name:     "长文本自动换行",
			input:    "BRUTALIST DESIGN MEETS INTERACTIVE MOTION",
			maxWidth: 200,
			want:     []string{"BRUTALIST DESIGN", "MEETS INTERACTIVE", "MOTION"},
		},
		{
			name:     "超长单词单独成行",
			input:    "A SUPERCALIFRAGILISTIC WORD",
			maxWidth: 100,
			want:     []string{"A", "SUPERCALIFRAGILISTIC", "WORD"},
		},
		{
			name:     "空文本",
			input:    "",
			maxWidth: 100,
			want:     []string{""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WrapText(tt.input, monoMeasure, tt.maxWidth)
			if strings.Join(got, "|") != strings.Join(tt.want, "|") {
				t.Errorf("WrapText(%q, %v) = %q, 期望 %q", tt.input, tt.maxWidth, got, tt.want)
			}
		})
	}
}

func TestWrapTextNilMeasure(t *testing.T) {
	got := WrapText("KEEP SCROLLING", nil, 10)
	if len(got) != 1 || got[0] != "KEEP SCROLLING" {
		t.Errorf("nil measure: got %q", got)
	}
}

func TestPointInRect(t *testing.T) {
	if !PointInRect(5, 5, 0, 0, 10, 10) {
		t.Error("point inside rect not detected")
	}
	if PointInRect(10, 5, 0, 0, 10, 10) {
		t.Error("right edge is exclusive")
	}
}
