package components

// EmergeComponent "emerge from void" 入场动画
// 延迟 Delay 秒后在 Duration 秒内从透明、下沉状态浮现
type EmergeComponent struct {
	Delay    float64
	Duration float64
	Elapsed  float64
}

// Progress 入场进度 [0, 1]
func (c *EmergeComponent) Progress() float64 {
	t := c.Elapsed - c.Delay
	if t <= 0 {
		return 0
	}
	if c.Duration <= 0 || t >= c.Duration {
		return 1
	}
	return t / c.Duration
}
