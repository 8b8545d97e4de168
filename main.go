package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/decker502/brutalist/pkg/app"
	"github.com/decker502/brutalist/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	verbose := flag.Bool("verbose", false, "启用详细日志输出")
	page := flag.String("page", "/", "启动时打开的页面路径（如 /scroll-text）")
	configPath := flag.String("config", app.DefaultConfigPath, "展示配置文件路径")
	flag.Parse()

	// dataFS 在 embed.go 中声明
	embedded.Init(dataFS)

	showcase, err := app.NewApp(app.Config{
		Verbose:    *verbose,
		Page:       *page,
		ConfigPath: *configPath,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "初始化失败: %v\n", err)
		os.Exit(1)
	}
	defer showcase.Shutdown()

	ebiten.SetWindowSize(showcase.WindowSize())
	ebiten.SetWindowTitle(showcase.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(showcase); err != nil {
		log.Printf("[Main] RunGame error: %v", err)
		showcase.Shutdown()
		os.Exit(1)
	}
}
