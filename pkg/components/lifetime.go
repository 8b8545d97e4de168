package components

// LifetimeComponent 管理实体的生命周期
// 用于自动清理存在时间超过上限的实体(如涟漪)
type LifetimeComponent struct {
	MaxLifetime     float64 // 最大生命周期(秒)
	CurrentLifetime float64 // 当前已存在时间(秒)
	IsExpired       bool    // 是否已过期
}

// Progress 返回生命周期进度 [0, 1]
func (c *LifetimeComponent) Progress() float64 {
	if c.MaxLifetime <= 0 {
		return 1
	}
	p := c.CurrentLifetime / c.MaxLifetime
	if p > 1 {
		return 1
	}
	return p
}
