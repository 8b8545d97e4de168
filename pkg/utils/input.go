// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// WheelPixelsPerNotch 一格滚轮对应的像素距离
const WheelPixelsPerNotch = 40.0

// InputState 存储当前帧的输入状态
// 统一处理鼠标、滚轮和触摸输入
type InputState struct {
	// 是否有点击/触摸事件刚刚发生
	JustPressed bool
	// 指针位置
	X, Y int
	// 是否有活动的触摸
	IsTouching bool
	// 本帧的纵向滚动增量（像素，向下为正）
	ScrollDelta float64
	// Escape 刚刚按下
	Escape bool
	// ToggleMotion M 键刚刚按下（切换减弱动效）
	ToggleMotion bool
}

// touchScroll 触摸拖动转换为虚拟滚动的状态
type touchScroll struct {
	active bool
	id     ebiten.TouchID
	lastY  int
}

var dragScroll touchScroll

// frameInput 本帧缓存的输入（由 PollInput 写入）
var frameInput InputState

// PollInput 读取并缓存本帧输入，每帧只应调用一次（App.Update 开头）
// 触摸拖动是有状态的，重复读取会丢失增量
func PollInput() InputState {
	frameInput = GetInputState()
	return frameInput
}

// CurrentInput 返回本帧缓存的输入
func CurrentInput() InputState {
	return frameInput
}

// ConsumeClick 清除本帧的点击（上层模块已经处理）
func ConsumeClick() {
	frameInput.JustPressed = false
}

// ConsumeEscape 清除本帧的 Escape
func ConsumeEscape() {
	frameInput.Escape = false
}

// GetInputState 获取当前帧的输入状态
// 优先检测触摸；触摸拖动会被转换为滚动增量
func GetInputState() InputState {
	state := InputState{}

	touchIDs := ebiten.AppendTouchIDs(nil)
	justTouched := inpututil.AppendJustPressedTouchIDs(nil)

	if len(touchIDs) > 0 {
		state.IsTouching = true
		state.X, state.Y = ebiten.TouchPosition(touchIDs[0])
		state.JustPressed = len(justTouched) > 0
		state.ScrollDelta = dragScroll.update(touchIDs[0], state.Y)
		return state
	}
	dragScroll.active = false

	state.X, state.Y = ebiten.CursorPosition()
	state.JustPressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	state.Escape = inpututil.IsKeyJustPressed(ebiten.KeyEscape)
	state.ToggleMotion = inpututil.IsKeyJustPressed(ebiten.KeyM)

	// ebiten 的滚轮值向上为正，页面滚动向下为正
	_, wheelY := ebiten.Wheel()
	state.ScrollDelta = -wheelY * WheelPixelsPerNotch

	// 键盘翻页
	if inpututil.IsKeyJustPressed(ebiten.KeyPageDown) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		state.ScrollDelta += WheelPixelsPerNotch * 5
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyPageUp) {
		state.ScrollDelta -= WheelPixelsPerNotch * 5
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		state.ScrollDelta += WheelPixelsPerNotch / 4
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		state.ScrollDelta -= WheelPixelsPerNotch / 4
	}

	return state
}

// update 返回手指相对上一帧的拖动距离（向上拖动 = 向下滚动）
func (ts *touchScroll) update(id ebiten.TouchID, y int) float64 {
	if !ts.active || ts.id != id {
		ts.active = true
		ts.id = id
		ts.lastY = y
		return 0
	}
	delta := float64(ts.lastY - y)
	ts.lastY = y
	return delta
}

// PointInRect 检查点是否在矩形内
func PointInRect(px, py, x, y, w, h float64) bool {
	return px >= x && px < x+w && py >= y && py < y+h
}
