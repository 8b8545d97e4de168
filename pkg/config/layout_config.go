package config

import "image/color"

// 布局配置常量
// 所有坐标为逻辑屏幕坐标，Ebitengine 负责缩放到实际窗口

const (
	// GameWindowWidth 逻辑屏幕宽度
	GameWindowWidth = 1280
	// GameWindowHeight 逻辑屏幕高度
	GameWindowHeight = 720

	// PagePadding 页面四周留白
	PagePadding = 32.0

	// TitleFontSize 页面大标题字号
	TitleFontSize = 72.0
	// BodyFontSize 正文字号
	BodyFontSize = 18.0
	// LabelFontSize 卡片标签字号
	LabelFontSize = 16.0
	// SmallFontSize 辅助说明字号
	SmallFontSize = 12.0

	// BorderWidth 粗野主义边框宽度
	BorderWidth = 2.0
	// ShadowOffset 硬阴影偏移（box-shadow: 8px 8px 0）
	ShadowOffset = 8.0

	// HamburgerSize 导航按钮尺寸
	HamburgerSize = 48.0
	// HamburgerMargin 导航按钮距右上角的距离
	HamburgerMargin = 24.0

	// CursorSize 自定义光标边长
	CursorSize = 20.0
	// CursorHoverScale 悬停在可交互元素上时的放大倍数
	CursorHoverScale = 2.0

	// CardHoverLift 卡片悬停上移距离
	CardHoverLift = 6.0
)

// Brutalist 调色板
var (
	ColorBackground = color.RGBA{R: 0xf2, G: 0xf0, B: 0xeb, A: 0xff} // paper
	ColorInk        = color.RGBA{R: 0x0d, G: 0x0d, B: 0x0d, A: 0xff}
	ColorConcrete   = color.RGBA{R: 0x8c, G: 0x8c, B: 0x88, A: 0xff}
	ColorSteel      = color.RGBA{R: 0x3f, G: 0x46, B: 0x4f, A: 0xff}
	ColorAsh        = color.RGBA{R: 0xc8, G: 0xc6, B: 0xc0, A: 0xff}
	ColorPrimary    = color.RGBA{R: 0xff, G: 0xe6, B: 0x00, A: 0xff} // electric yellow
	ColorAccent     = color.RGBA{R: 0xff, G: 0x2d, B: 0x95, A: 0xff} // neon pink
	ColorCyber      = color.RGBA{R: 0x2d, G: 0xe2, B: 0xff, A: 0xff}
	ColorDanger     = color.RGBA{R: 0xe6, G: 0x23, B: 0x23, A: 0xff}
)
