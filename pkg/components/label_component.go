package components

import "image/color"

// LabelComponent 卡片上的文字和底色
type LabelComponent struct {
	Title    string
	Subtitle string
	Fill     color.RGBA
}
