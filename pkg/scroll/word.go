package scroll

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidThreshold 单位阈值必须为正的有限数
var ErrInvalidThreshold = errors.New("scroll: unit threshold must be positive")

// Word 一个由多个揭示单元（字母）组成的单词
// 配置完成后不可变，所有访问器返回副本。
type Word struct {
	text      string
	units     []rune
	fontSize  float64
	threshold float64
	offset    float64
}

// NewWord 创建单词
//
// 参数：
//   - text: 目标文本，每个 rune 是一个揭示单元
//   - fontSize: 字号提示（渲染层使用）
//   - threshold: 每个单元消耗的滚动距离
//   - offset: 开始堆叠的滚动位置
func NewWord(text string, fontSize, threshold, offset float64) (Word, error) {
	if !isFinite(threshold) || threshold <= 0 {
		return Word{}, fmt.Errorf("word %q: %w (got %v)", text, ErrInvalidThreshold, threshold)
	}
	if !isFinite(offset) {
		offset = 0
	}
	if !isFinite(fontSize) || fontSize < 0 {
		fontSize = 0
	}
	return Word{
		text:      text,
		units:     []rune(text),
		fontSize:  fontSize,
		threshold: threshold,
		offset:    math.Max(0, offset),
	}, nil
}

// MustWord 与 NewWord 相同，出错时 panic（仅用于测试和常量表）
func MustWord(text string, fontSize, threshold, offset float64) Word {
	w, err := NewWord(text, fontSize, threshold, offset)
	if err != nil {
		panic(err)
	}
	return w
}

// Len 返回单元数量
func (w Word) Len() int { return len(w.units) }

// Text 返回原始文本
func (w Word) Text() string { return w.text }

// Units 返回单元副本
func (w Word) Units() []rune {
	out := make([]rune, len(w.units))
	copy(out, w.units)
	return out
}

// FontSize 返回字号提示
func (w Word) FontSize() float64 { return w.fontSize }

// Threshold 返回每个单元的滚动阈值
func (w Word) Threshold() float64 { return w.threshold }

// Offset 返回开始堆叠的滚动位置
func (w Word) Offset() float64 { return w.offset }
