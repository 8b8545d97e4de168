package scroll

// Engine 滚动动画引擎
// 持有一个 Cursor 和若干互相独立的 Word。
type Engine struct {
	cursor *Cursor
	opts   RevealOptions
	words  []Word
}

// NewEngine 创建引擎；cursor 为 nil 时使用默认配置
func NewEngine(cursor *Cursor, opts RevealOptions) *Engine {
	if cursor == nil {
		cursor = NewCursor(DefaultCursorConfig())
	}
	return &Engine{
		cursor: cursor,
		opts:   opts,
	}
}

// AddWord 添加单词，返回其索引
func (e *Engine) AddWord(w Word) int {
	e.words = append(e.words, w)
	return len(e.words) - 1
}

// Words 返回单词列表副本
func (e *Engine) Words() []Word {
	out := make([]Word, len(e.words))
	copy(out, e.words)
	return out
}

// Cursor 返回引擎使用的滚动游标
func (e *Engine) Cursor() *Cursor {
	return e.cursor
}

// Options 返回揭示参数
func (e *Engine) Options() RevealOptions {
	return e.opts
}

// Step 推进一帧：先 Tick 游标，再计算所有单词
// 保证本帧的揭示计算看到的是已经推进过的游标值。
func (e *Engine) Step(dt float64) []RevealState {
	e.cursor.Tick(dt)
	return e.Snapshot()
}

// Snapshot 使用当前游标位置计算所有单词（不推进游标）
func (e *Engine) Snapshot() []RevealState {
	s := e.cursor.Position()
	states := make([]RevealState, len(e.words))
	for i, w := range e.words {
		states[i] = Compute(s, w, e.opts)
	}
	return states
}

// Reset 游标归零（重新挂载）
func (e *Engine) Reset() {
	e.cursor.Reset()
}
