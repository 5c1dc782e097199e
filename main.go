// Package main 是无限 3D 卡片轮播的桌面端入口
//
// Usage:
//
//	go run . [flags]
//
// Flags:
//
//	--config <path>   Carousel config file (default: embedded data/carousel.yaml)
//	--verbose         Enable verbose logging
//	--fullscreen      Start in fullscreen mode
//
// Controls:
//
//	Mouse wheel / touch swipe  - Advance or retreat
//	F3                         - Toggle debug overlay
//	F11                        - Toggle fullscreen
package main

import (
	"flag"
	"log"
	"os"

	"github.com/gonewx/carousel/pkg/app"
	"github.com/gonewx/carousel/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	configFlag     = flag.String("config", "", "Carousel config file (default: embedded data/carousel.yaml)")
	verboseFlag    = flag.Bool("verbose", false, "Enable verbose logging")
	fullscreenFlag = flag.Bool("fullscreen", false, "Start in fullscreen mode")
)

func main() {
	flag.Parse()

	embedded.Init(dataFS)

	carousel, err := app.NewApp(app.Config{
		Verbose:    *verboseFlag,
		ConfigPath: *configFlag,
		Fullscreen: *fullscreenFlag,
	})
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("初始化失败: %v", err)
	}

	display := carousel.Display()
	ebiten.SetWindowSize(display.ScreenWidth, display.ScreenHeight)
	ebiten.SetWindowTitle(display.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(carousel); err != nil {
		log.Fatal(err)
	}
}
