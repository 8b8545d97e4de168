// scrolltext-tui 在终端里运行滚动文字揭示效果
//
// 用法:
//
//	go run ./cmd/scrolltext-tui -config data/showcase.yaml -sound
//
// 鼠标滚轮或 j/k 滚动，p 暂停，q 退出。
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/decker502/brutalist/pkg/config"
	"github.com/decker502/brutalist/pkg/scroll"
	"github.com/gdamore/tcell/v2"
)

func main() {
	configPath := flag.String("config", "data/showcase.yaml", "展示配置文件路径")
	mode := flag.String("mode", "", "游标模式: smoothed / spring / native（默认使用配置文件）")
	step := flag.Float64("step", 40, "每次滚轮事件的滚动量")
	sound := flag.Bool("sound", false, "字母收起时播放提示音")
	logPath := flag.String("log", "", "日志文件路径（默认不输出日志）")
	flag.Parse()

	// 终端被 tcell 占用，日志只能写文件
	log.SetOutput(io.Discard)
	if *logPath != "" {
		f, err := os.Create(*logPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "无法创建日志文件: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	cfg, err := config.LoadShowcaseConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "配置加载失败: %v\n", err)
		os.Exit(1)
	}

	cursorCfg := cfg.CursorSettings()
	if *mode != "" {
		m, ok := scroll.ParseCursorMode(*mode)
		if !ok {
			fmt.Fprintf(os.Stderr, "未知的游标模式: %s\n", *mode)
			os.Exit(2)
		}
		cursorCfg.Mode = m
	}

	v, err := newViewer(cfg, cursorCfg, *step)
	if err != nil {
		fmt.Fprintf(os.Stderr, "初始化失败: %v\n", err)
		os.Exit(1)
	}

	if err := run(v, newClicker(*sound)); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func run(v *viewer, click *clicker) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	screen.EnableMouse()
	defer func() {
		v.driver.Unmount()
		click.close()
		screen.Fini()
	}()

	v.onHide = click.play
	v.driver.Start()

	eventChan := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)
	go pumpEvents(screen.PollEvent, eventChan, done)

	ticker := time.NewTicker(16 * time.Millisecond) // ~60 FPS
	defer ticker.Stop()
	last := time.Now()

	for {
		select {
		case ev := <-eventChan:
			if _, ok := ev.(*tcell.EventResize); ok {
				screen.Sync()
			}
			if !v.handleEvent(ev) {
				log.Printf("[Main] Quit")
				return nil
			}
		case now := <-ticker.C:
			v.sched.Advance(now.Sub(last).Seconds())
			last = now
			v.draw(screen)
		}
	}
}

// pumpEvents 把 poll 返回的事件转发到 out，直到 poll 返回 nil 或 done 关闭
func pumpEvents(poll func() tcell.Event, out chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := poll()
		if ev == nil {
			// Fini 之后返回 nil
			return
		}
		select {
		case out <- ev:
		case <-done:
			return
		}
	}
}
