package frame

import "log"

// State 帧驱动状态
type State int

const (
	StateIdle State = iota
	StateRunning
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateStopped:
		return "stopped"
	default:
		return "idle"
	}
}

// StopReason 进入 Stopped 的原因
type StopReason int

const (
	StopNone StopReason = iota
	// StopPause 暂停信号（减少动画、悬停暂停），可以恢复
	StopPause
	// StopUnmount 页面卸载，终态
	StopUnmount
)

// Driver 帧驱动：Idle → Running → Stopped
//
// Running 时每帧执行一次 tick 并重新请求下一帧；
// Stopped 时不再计算，渲染层保留最后一帧。
type Driver struct {
	name    string
	sched   *Scheduler
	tick    func(dt float64)
	state   State
	reason  StopReason
	pending Handle
	frames  uint64
}

// NewDriver 创建帧驱动
func NewDriver(name string, sched *Scheduler, tick func(dt float64)) *Driver {
	return &Driver{
		name:  name,
		sched: sched,
		tick:  tick,
	}
}

// Start 进入 Running
// 暂停状态下调用等同于恢复；卸载后调用无效。
func (d *Driver) Start() {
	if d.state == StateRunning {
		return
	}
	if d.state == StateStopped && d.reason == StopUnmount {
		log.Printf("[FrameDriver] %s: Start ignored after unmount", d.name)
		return
	}
	d.state = StateRunning
	d.reason = StopNone
	d.arm()
}

// Pause 暂停（可恢复），取消待执行的帧请求
func (d *Driver) Pause() {
	if d.state != StateRunning {
		return
	}
	d.state = StateStopped
	d.reason = StopPause
	d.disarm()
}

// Unmount 卸载：同步停止并取消调度器上所有待执行回调（帧和定时器）
func (d *Driver) Unmount() {
	if d.state == StateStopped && d.reason == StopUnmount {
		return
	}
	d.state = StateStopped
	d.reason = StopUnmount
	d.disarm()
	if n := d.sched.CancelAll(); n > 0 {
		log.Printf("[FrameDriver] %s: cancelled %d pending callbacks on unmount", d.name, n)
	}
}

// State 返回当前状态
func (d *Driver) State() State {
	return d.state
}

// Reason 返回停止原因
func (d *Driver) Reason() StopReason {
	return d.reason
}

// Frames 返回已执行的 tick 次数
func (d *Driver) Frames() uint64 {
	return d.frames
}

func (d *Driver) arm() {
	d.pending = d.sched.RequestFrame(d.onFrame)
}

func (d *Driver) disarm() {
	if d.pending != 0 {
		d.sched.Cancel(d.pending)
		d.pending = 0
	}
}

func (d *Driver) onFrame(dt float64) {
	d.pending = 0
	if d.state != StateRunning {
		return
	}
	d.frames++
	if d.tick != nil {
		d.tick(dt)
	}
	// tick 内部可能已经停止驱动
	if d.state == StateRunning {
		d.arm()
	}
}
