package utils

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// MeasureFunc 测量一行文本宽度（像素）
type MeasureFunc func(s string) float64

// WrapText 将文本按指定宽度自动换行
//
// 参数:
//   - textStr: 要换行的文本
//   - measure: 宽度测量函数
//   - maxWidth: 最大宽度（像素）
//
// 换行规则:
//   - 在空格处断行
//   - 单个单词超宽时单独成行，不拆分
func WrapText(textStr string, measure MeasureFunc, maxWidth float64) []string {
	if textStr == "" || measure == nil || maxWidth <= 0 {
		return []string{textStr}
	}

	words := strings.Fields(textStr)
	if len(words) == 0 {
		return []string{""}
	}

	var lines []string
	current := words[0]
	for _, w := range words[1:] {
		candidate := current + " " + w
		if measure(candidate) > maxWidth {
			lines = append(lines, current)
			current = w
			continue
		}
		current = candidate
	}
	lines = append(lines, current)
	return lines
}

// WrapTextFace 使用字体测量的 WrapText
func WrapTextFace(textStr string, face text.Face, maxWidth float64) []string {
	if face == nil {
		return []string{textStr}
	}
	return WrapText(textStr, func(s string) float64 {
		w, _ := text.Measure(s, face, 0)
		return w
	}, maxWidth)
}

// MeasureText 测量文本宽高，face 为 nil 时返回 0
func MeasureText(s string, face text.Face) (float64, float64) {
	if s == "" || face == nil {
		return 0, 0
	}
	return text.Measure(s, face, 0)
}
