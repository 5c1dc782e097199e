// Package app 提供轮播应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/gonewx/carousel/pkg/config"
	"github.com/gonewx/carousel/pkg/game"
	"github.com/gonewx/carousel/pkg/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 轮播配置文件路径，为空则使用内置的 data/carousel.yaml
	ConfigPath string
	// Fullscreen 以全屏模式启动
	Fullscreen bool
}

// App 是轮播应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager             *game.SceneManager
	display                  config.DisplayConfig
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化轮播应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	configPath := cfg.ConfigPath
	if configPath == "" {
		configPath = config.DefaultCarouselConfigPath
	}
	carouselConfig, err := config.LoadCarouselConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("轮播配置加载失败: %w", err)
	}
	log.Printf("[Config] Loaded %s: %d slides, window=%d", configPath, len(carouselConfig.Slides), carouselConfig.WindowSize)

	resourceManager := game.NewResourceManager()

	carouselScene, err := scenes.NewCarouselScene(resourceManager, carouselConfig)
	if err != nil {
		return nil, fmt.Errorf("轮播场景创建失败: %w", err)
	}

	sceneManager := game.NewSceneManager()
	sceneManager.SwitchTo(carouselScene)

	if cfg.Fullscreen {
		ebiten.SetFullscreen(true)
	}

	log.Printf("[App] Started: %dx%d", carouselConfig.Display.ScreenWidth, carouselConfig.Display.ScreenHeight)

	return &App{
		sceneManager: sceneManager,
		display:      carouselConfig.Display,
	}, nil
}

// Update 更新应用逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(a.display.ScreenWidth, a.display.ScreenHeight)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", a.display.ScreenWidth, a.display.ScreenHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		} else {
			ebiten.SetFullscreen(true)
		}
	}

	deltaTime := 1.0 / float64(ebiten.TPS())
	a.sceneManager.Update(deltaTime)
	return nil
}

// Draw 绘制画面
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.display.ScreenWidth, a.display.ScreenHeight
}

// Display 返回当前显示配置（窗口大小、标题）
func (a *App) Display() config.DisplayConfig {
	return a.display
}
