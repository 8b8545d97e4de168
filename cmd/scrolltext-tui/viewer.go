package main

import (
	"fmt"
	"math"
	"sort"

	"github.com/decker502/brutalist/pkg/config"
	"github.com/decker502/brutalist/pkg/frame"
	"github.com/decker502/brutalist/pkg/scroll"
	"github.com/decker502/brutalist/pkg/utils"
	"github.com/gdamore/tcell/v2"
)

const (
	columnWidth = 14 // 每个单词占用的终端列数
	topRow      = 2  // 标题占用的行数
)

// viewer 终端版滚动文字演示
// 和图形版共用 scroll.Engine 与 frame.Driver，只是把像素偏移映射到终端行
type viewer struct {
	engine *scroll.Engine
	sched  *frame.Scheduler
	driver *frame.Driver

	tweens     [][]utils.Tween
	states     []scroll.RevealState
	lineHeight float64
	wheelStep  float64

	// onHide 某个单词的可见单元减少时调用
	onHide func(word int)
}

// newViewer 根据展示配置创建演示
func newViewer(cfg *config.ShowcaseConfig, cursorCfg scroll.CursorConfig, wheelStep float64) (*viewer, error) {
	words, err := cfg.BuildWords()
	if err != nil {
		return nil, err
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("no words configured")
	}

	opts := cfg.RevealOptions()
	engine := scroll.NewEngine(scroll.NewCursor(cursorCfg), opts)
	for _, w := range words {
		engine.AddWord(w)
	}

	v := &viewer{
		engine:     engine,
		sched:      frame.NewScheduler(),
		lineHeight: opts.LineHeight,
		wheelStep:  wheelStep,
	}

	v.states = engine.Snapshot()
	transition := cfg.TransitionSeconds()
	v.tweens = make([][]utils.Tween, len(v.states))
	for i, st := range v.states {
		v.tweens[i] = make([]utils.Tween, len(st.Units))
		for j, u := range st.Units {
			v.tweens[i][j] = utils.NewTween(u.TargetOffset, transition, utils.EaseOutCubic)
		}
	}

	v.driver = frame.NewDriver("scrolltext-tui", v.sched, v.tick)
	return v, nil
}

// tick 驱动每帧调用：推进游标、计算揭示状态、推进插值
func (v *viewer) tick(dt float64) {
	prev := v.states
	v.states = v.engine.Step(dt)

	for i, st := range v.states {
		if i < len(prev) && st.LettersVisible < prev[i].LettersVisible && v.onHide != nil {
			v.onHide(i)
		}
		for j, u := range st.Units {
			tw := &v.tweens[i][j]
			tw.Retarget(u.TargetOffset)
			tw.Advance(dt)
		}
	}
}

// handleEvent 处理终端事件
// 返回 false 表示退出
func (v *viewer) handleEvent(ev tcell.Event) bool {
	cursor := v.engine.Cursor()
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyDown, tcell.KeyPgDn:
			cursor.OnWheelDelta(v.wheelStep)
		case tcell.KeyUp, tcell.KeyPgUp:
			cursor.OnWheelDelta(-v.wheelStep)
		case tcell.KeyHome:
			cursor.Reset()
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case 'j', ' ':
				cursor.OnWheelDelta(v.wheelStep)
			case 'k':
				cursor.OnWheelDelta(-v.wheelStep)
			case 'p':
				v.togglePause()
			}
		}
	case *tcell.EventMouse:
		buttons := ev.Buttons()
		if buttons&tcell.WheelDown != 0 {
			cursor.OnWheelDelta(v.wheelStep)
		}
		if buttons&tcell.WheelUp != 0 {
			cursor.OnWheelDelta(-v.wheelStep)
		}
	}
	return true
}

func (v *viewer) togglePause() {
	if v.driver.State() == frame.StateRunning {
		v.driver.Pause()
	} else {
		v.driver.Start()
	}
}

// rowFor 把像素偏移映射到相对终端行（每个槽位一行）
func rowFor(offset, lineHeight float64) int {
	if lineHeight <= 0 || math.IsNaN(offset) {
		return 0
	}
	return int(math.Round(offset / lineHeight))
}

// cell 一个待绘制的字母
type cell struct {
	x, y  int
	r     rune
	depth int
	style tcell.Style
}

// cells 计算当前帧所有字母的终端位置，按 StackDepth 升序（后画的在上层）
func (v *viewer) cells() []cell {
	var out []cell
	for i, st := range v.states {
		x := 2 + i*columnWidth
		for j, u := range st.Units {
			style := tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorYellow).Bold(true)
			if !u.Visible {
				style = tcell.StyleDefault.Foreground(tcell.ColorGray).Dim(true)
			}
			out = append(out, cell{
				x:     x,
				y:     topRow + rowFor(v.tweens[i][j].Value(), v.lineHeight),
				r:     u.Rune,
				depth: u.StackDepth,
				style: style,
			})
		}
	}
	sort.SliceStable(out, func(a, b int) bool { return out[a].depth < out[b].depth })
	return out
}

func drawString(screen tcell.Screen, x, y int, s string, style tcell.Style) {
	for _, r := range s {
		screen.SetContent(x, y, r, nil, style)
		x++
	}
}

// draw 绘制一帧
func (v *viewer) draw(screen tcell.Screen) {
	screen.Clear()
	_, height := screen.Size()

	drawString(screen, 2, 0, "SCROLL TEXT  [wheel / j k] scroll  [p] pause  [home] reset  [q] quit",
		tcell.StyleDefault.Bold(true))

	for _, c := range v.cells() {
		if c.y < height-1 {
			screen.SetContent(c.x, c.y, c.r, nil, c.style)
		}
	}

	cursor := v.engine.Cursor()
	status := fmt.Sprintf("s=%7.1f  target=%7.1f  driver=%s", cursor.Position(), cursor.Target(), v.driver.State())
	for i, st := range v.states {
		status += fmt.Sprintf("  %s:%d", v.engine.Words()[i].Text(), st.LettersVisible)
	}
	drawString(screen, 2, height-1, status, tcell.StyleDefault.Reverse(true))
	screen.Show()
}
