package components

// LetterComponent 滚动文字页面中的一个字母（揭示单元）
type LetterComponent struct {
	WordIndex int     // 所属单词在引擎中的索引
	Index     int     // 在单词中的序号
	Rune      rune    // 字符
	FontSize  float64 // 字号提示
	Visible   bool    // 当前帧是否可见（未被堆叠）
}
