package utils

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// WithAlpha 返回乘以 alpha 后的预乘颜色
func WithAlpha(c color.RGBA, alpha float64) color.RGBA {
	a := Clamp01(alpha)
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(float64(c.A) * a),
	}
}

// BoxStyle 粗野主义盒子样式
type BoxStyle struct {
	Fill        color.RGBA
	Border      color.RGBA
	BorderWidth float32
	Shadow      float32 // 硬阴影偏移，0 表示无阴影
	ShadowColor color.RGBA
	Alpha       float64
}

// DrawBrutalBox 绘制带粗边框和硬阴影的矩形
func DrawBrutalBox(dst *ebiten.Image, x, y, w, h float32, style BoxStyle) {
	alpha := style.Alpha
	if alpha == 0 {
		alpha = 1
	}
	if style.Shadow > 0 {
		vector.DrawFilledRect(dst, x+style.Shadow, y+style.Shadow, w, h, WithAlpha(style.ShadowColor, alpha), false)
	}
	vector.DrawFilledRect(dst, x, y, w, h, WithAlpha(style.Fill, alpha), false)
	if style.BorderWidth > 0 {
		vector.StrokeRect(dst, x, y, w, h, style.BorderWidth, WithAlpha(style.Border, alpha), false)
	}
}

// DrawText 在 (x, y) 绘制左上对齐的文字
func DrawText(dst *ebiten.Image, s string, face text.Face, x, y float64, clr color.Color, alpha float64) {
	if face == nil || s == "" {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.ColorScale.ScaleAlpha(float32(Clamp01(alpha)))
	text.Draw(dst, s, face, op)
}

// DrawTextCentered 以 (cx, cy) 为中心绘制文字
func DrawTextCentered(dst *ebiten.Image, s string, face text.Face, cx, cy float64, clr color.Color, alpha float64) {
	if face == nil || s == "" {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(cx, cy)
	op.ColorScale.ScaleWithColor(clr)
	op.ColorScale.ScaleAlpha(float32(Clamp01(alpha)))
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(dst, s, face, op)
}

// DrawBlurredText 用多次偏移叠加近似模糊效果
// blur 为 0 时等同于 DrawTextCentered
func DrawBlurredText(dst *ebiten.Image, s string, face text.Face, cx, cy float64, clr color.Color, alpha, blur float64) {
	if blur <= 0.5 {
		DrawTextCentered(dst, s, face, cx, cy, clr, alpha)
		return
	}
	offsets := [][2]float64{{-1, 0}, {1, 0}, {0, -1}, {0, 1}, {-0.7, -0.7}, {0.7, 0.7}, {-0.7, 0.7}, {0.7, -0.7}}
	layerAlpha := alpha / 4
	for _, o := range offsets {
		DrawTextCentered(dst, s, face, cx+o[0]*blur, cy+o[1]*blur, clr, layerAlpha)
	}
}
