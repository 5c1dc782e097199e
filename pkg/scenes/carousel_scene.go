package scenes

import (
	"fmt"
	"image/color"
	"log"

	"github.com/gonewx/carousel/pkg/config"
	"github.com/gonewx/carousel/pkg/ecs"
	"github.com/gonewx/carousel/pkg/game"
	"github.com/gonewx/carousel/pkg/systems"
	"github.com/gonewx/carousel/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var _ game.Scene = (*CarouselScene)(nil)

// CarouselScene 无限 3D 卡片轮播场景
//
// 每帧顺序：读取输入 → 手势归一化 → 冷却计时 → 补间推进 → 释放并清理已移出的实体。
// 每个场景实例拥有独立的 ECS、补间调度和手势状态。
type CarouselScene struct {
	entityManager *ecs.EntityManager
	tweens        *systems.TweenSystem
	recycler      *systems.SlideRecyclerSystem
	gesture       *systems.GestureSystem
	render        *systems.SlideRenderSystem
	input         *utils.GestureReader

	background color.RGBA
	showDebug  bool
}

// NewCarouselScene 创建轮播场景并挂载初始幻灯片
func NewCarouselScene(rm *game.ResourceManager, cfg *config.CarouselConfig) (*CarouselScene, error) {
	if err := config.Validate(cfg); err != nil {
		return nil, fmt.Errorf("carousel scene: %w", err)
	}
	background, err := config.ParseHexColor(cfg.Display.Background)
	if err != nil {
		return nil, fmt.Errorf("carousel scene: %w", err)
	}

	em := ecs.NewEntityManager()
	tweens := systems.NewTweenSystem()
	recycler := systems.NewSlideRecyclerSystem(em, tweens, cfg)

	scene := &CarouselScene{
		entityManager: em,
		tweens:        tweens,
		recycler:      recycler,
		gesture:       systems.NewGestureSystem(recycler, cfg.Gesture),
		render:        systems.NewSlideRenderSystem(em, recycler, rm, cfg),
		input:         utils.NewGestureReader(cfg.Gesture.WheelPixelsPerLine),
		background:    background,
	}

	recycler.Bootstrap()
	log.Printf("[CarouselScene] Created: %d slides in dataset, window=%d", len(cfg.Slides), cfg.WindowSize)

	return scene, nil
}

// Update 更新场景逻辑
func (s *CarouselScene) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		s.showDebug = !s.showDebug
	}

	s.gesture.Process(s.input.Poll())
	s.gesture.Update(deltaTime)
	s.tweens.Update(deltaTime)
	s.render.ReleaseDetached()
	s.entityManager.RemoveMarkedEntities()
}

// Draw 绘制场景
func (s *CarouselScene) Draw(screen *ebiten.Image) {
	screen.Fill(s.background)
	s.render.Draw(screen)

	if s.showDebug {
		s.drawDebug(screen)
	}
}

// drawDebug F3 调试信息
func (s *CarouselScene) drawDebug(screen *ebiten.Image) {
	state := s.gesture.State()
	msg := fmt.Sprintf("front=%d mounted=%d animating=%v\nwheel acc=%.0f cd=%.2f  touch cd=%.2f\ntweens=%d  TPS=%.0f",
		s.recycler.FrontIndex(), s.recycler.MountedCount(), s.recycler.IsAnimating(),
		state.WheelAccumulator, state.WheelCooldown, state.TouchCooldown,
		s.tweens.ActiveCount(), ebiten.ActualTPS())
	ebitenutil.DebugPrintAt(screen, msg, 8, 8)
}

// Recycler 返回回收状态机（用于验证工具）
func (s *CarouselScene) Recycler() *systems.SlideRecyclerSystem {
	return s.recycler
}

// Gesture 返回手势系统（用于验证工具）
func (s *CarouselScene) Gesture() *systems.GestureSystem {
	return s.gesture
}
