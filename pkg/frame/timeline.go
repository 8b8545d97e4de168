package frame

import "log"

// Phase 时间线中的一个命名阶段
type Phase struct {
	Name     string
	Duration float64 // 秒，<= 0 表示进入后立即结束

	OnEnter  func()
	OnUpdate func(progress float64) // progress ∈ [0, 1]
	OnExit   func()
}

type timelineState int

const (
	timelineIdle timelineState = iota
	timelineRunning
	timelineDone
	timelineCancelled
)

// Timeline 按顺序推进一组阶段
//
// 取代嵌套的 setTimeout 链：每个阶段声明自己的时长，
// 整条时间线只有一个取消点（Cancel 或调度器 CancelAll）。
type Timeline struct {
	sched      *Scheduler
	phases     []Phase
	index      int
	elapsed    float64
	pending    Handle
	state      timelineState
	onComplete func()
}

// NewTimeline 创建时间线
func NewTimeline(sched *Scheduler, phases ...Phase) *Timeline {
	return &Timeline{
		sched:  sched,
		phases: phases,
	}
}

// OnComplete 设置全部阶段完成后的回调
func (t *Timeline) OnComplete(fn func()) {
	t.onComplete = fn
}

// Start 从第一个阶段开始；已开始或已结束的时间线不会重复启动
func (t *Timeline) Start() {
	if t.state != timelineIdle {
		return
	}
	if len(t.phases) == 0 {
		t.finish()
		return
	}
	t.state = timelineRunning
	t.index = 0
	t.elapsed = 0
	t.enter()
	if t.state == timelineRunning {
		t.arm()
	}
}

// Cancel 停止时间线，之后不会再触发任何阶段回调
func (t *Timeline) Cancel() {
	if t.state != timelineRunning && t.state != timelineIdle {
		return
	}
	t.state = timelineCancelled
	if t.pending != 0 {
		t.sched.Cancel(t.pending)
		t.pending = 0
	}
}

// Current 返回当前阶段名称，未运行时返回空字符串
func (t *Timeline) Current() string {
	t.syncPending()
	if t.state != timelineRunning {
		return ""
	}
	return t.phases[t.index].Name
}

// Progress 返回当前阶段进度
func (t *Timeline) Progress() float64 {
	t.syncPending()
	if t.state != timelineRunning {
		if t.state == timelineDone {
			return 1
		}
		return 0
	}
	return phaseProgress(t.phases[t.index], t.elapsed)
}

// Done 是否所有阶段都已完成
func (t *Timeline) Done() bool {
	return t.state == timelineDone
}

// Cancelled 是否已被取消
func (t *Timeline) Cancelled() bool {
	t.syncPending()
	return t.state == timelineCancelled
}

// syncPending 帧请求被调度器直接丢弃（CancelAll）时，时间线视为已取消
func (t *Timeline) syncPending() {
	if t.state != timelineRunning || t.pending == 0 {
		return
	}
	if !t.sched.Scheduled(t.pending) {
		t.state = timelineCancelled
		t.pending = 0
	}
}

func (t *Timeline) arm() {
	t.pending = t.sched.RequestFrame(t.onFrame)
}

func (t *Timeline) enter() {
	p := t.phases[t.index]
	log.Printf("[Timeline] enter phase %q (%.2fs)", p.Name, p.Duration)
	if p.OnEnter != nil {
		p.OnEnter()
	}
}

func (t *Timeline) finish() {
	t.state = timelineDone
	if t.onComplete != nil {
		t.onComplete()
	}
}

func (t *Timeline) onFrame(dt float64) {
	t.pending = 0
	if t.state != timelineRunning {
		return
	}
	t.elapsed += dt

	for {
		p := t.phases[t.index]
		if p.OnUpdate != nil {
			p.OnUpdate(phaseProgress(p, t.elapsed))
			if t.state != timelineRunning {
				return
			}
		}
		if t.elapsed < p.Duration {
			break
		}

		// 阶段结束，剩余时间带入下一阶段
		carry := t.elapsed - max(p.Duration, 0)
		if p.OnExit != nil {
			p.OnExit()
			if t.state != timelineRunning {
				return
			}
		}
		t.index++
		if t.index >= len(t.phases) {
			t.finish()
			return
		}
		t.elapsed = carry
		t.enter()
		if t.state != timelineRunning {
			return
		}
	}

	t.arm()
}

func phaseProgress(p Phase, elapsed float64) float64 {
	if p.Duration <= 0 {
		return 1
	}
	return min(1, max(0, elapsed/p.Duration))
}
