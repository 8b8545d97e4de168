// Package frame 提供帧调度原语
//
// Scheduler 相当于宿主环境的 requestAnimationFrame + setTimeout，
// 每个页面（场景）拥有一个 Scheduler，由场景的 Update 调用 Advance 驱动。
// 页面卸载时调用 CancelAll，保证卸载后没有任何回调被执行。
package frame

import (
	"math"
	"sort"
)

// Handle 帧请求或定时器的标识，0 表示无效
type Handle uint64

type timerEntry struct {
	id  Handle
	due float64
	cb  func()
}

// Scheduler 单线程协作式调度器
//
// 帧回调语义与 requestAnimationFrame 一致：在 Advance 期间新请求的帧回调
// 要到下一次 Advance 才会执行。
type Scheduler struct {
	nextID Handle
	now    float64

	frameOrder []Handle
	frames     map[Handle]func(dt float64)

	timers map[Handle]*timerEntry
}

// NewScheduler 创建调度器
func NewScheduler() *Scheduler {
	return &Scheduler{
		frames: make(map[Handle]func(dt float64)),
		timers: make(map[Handle]*timerEntry),
	}
}

func (s *Scheduler) allocID() Handle {
	s.nextID++
	return s.nextID
}

// RequestFrame 请求在下一帧执行回调
func (s *Scheduler) RequestFrame(cb func(dt float64)) Handle {
	if cb == nil {
		return 0
	}
	id := s.allocID()
	s.frames[id] = cb
	s.frameOrder = append(s.frameOrder, id)
	return id
}

// After 在 delay 秒后执行回调（delay <= 0 时在下一次 Advance 执行）
func (s *Scheduler) After(delay float64, cb func()) Handle {
	if cb == nil {
		return 0
	}
	if math.IsNaN(delay) || delay < 0 {
		delay = 0
	}
	id := s.allocID()
	s.timers[id] = &timerEntry{id: id, due: s.now + delay, cb: cb}
	return id
}

// Cancel 取消帧请求或定时器，返回是否确实取消了某个回调
func (s *Scheduler) Cancel(h Handle) bool {
	if _, ok := s.frames[h]; ok {
		delete(s.frames, h)
		return true
	}
	if _, ok := s.timers[h]; ok {
		delete(s.timers, h)
		return true
	}
	return false
}

// Scheduled 报告 h 对应的帧请求或定时器是否仍在等待执行
func (s *Scheduler) Scheduled(h Handle) bool {
	if _, ok := s.frames[h]; ok {
		return true
	}
	_, ok := s.timers[h]
	return ok
}

// CancelAll 取消所有待执行的回调，返回取消的数量
func (s *Scheduler) CancelAll() int {
	n := len(s.frames) + len(s.timers)
	s.frames = make(map[Handle]func(dt float64))
	s.frameOrder = nil
	s.timers = make(map[Handle]*timerEntry)
	return n
}

// Pending 返回待执行回调数量
func (s *Scheduler) Pending() int {
	return len(s.frames) + len(s.timers)
}

// Now 返回调度器累计时间（秒）
func (s *Scheduler) Now() float64 {
	return s.now
}

// Advance 推进 dt 秒
//
// 先执行本次调用之前请求的帧回调，再执行到期的定时器（按到期时间、创建顺序）。
// 回调中取消的条目不会再执行。
func (s *Scheduler) Advance(dt float64) {
	if math.IsNaN(dt) || math.IsInf(dt, 0) || dt < 0 {
		dt = 0
	}
	s.now += dt

	// 帧回调
	order := s.frameOrder
	s.frameOrder = nil
	for _, id := range order {
		cb, ok := s.frames[id]
		if !ok {
			continue
		}
		delete(s.frames, id)
		cb(dt)
	}

	// 到期定时器（只处理进入此阶段前已存在的条目）
	due := make([]*timerEntry, 0, len(s.timers))
	for _, t := range s.timers {
		if t.due <= s.now {
			due = append(due, t)
		}
	}
	sort.Slice(due, func(i, j int) bool {
		if due[i].due != due[j].due {
			return due[i].due < due[j].due
		}
		return due[i].id < due[j].id
	})
	for _, t := range due {
		if _, ok := s.timers[t.id]; !ok {
			continue
		}
		delete(s.timers, t.id)
		t.cb()
	}
}
