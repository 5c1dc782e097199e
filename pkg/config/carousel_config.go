package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/gonewx/carousel/pkg/embedded"
	"github.com/gonewx/carousel/pkg/utils"
	"gopkg.in/yaml.v3"
)

// DefaultCarouselConfigPath 是内置轮播配置的路径（位于嵌入的 data/ 目录）
const DefaultCarouselConfigPath = "data/carousel.yaml"

// SlideDescriptor 描述一张幻灯片的数据
// 会话期间只读，所有挂载的幻灯片实体通过索引共享引用
type SlideDescriptor struct {
	Title     string `yaml:"title"`     // 标题文字，逐词动画显示
	ImageBase string `yaml:"imageBase"` // 图片路径（不含扩展名），按 webp → png → jpg 顺序回退
}

// LayoutParams 位置偏移到视觉变换的映射参数
//
//	YPercent(offset) = YBasePercent + YStepPercent * offset
//	Depth(offset)    = DepthStep * offset
type LayoutParams struct {
	YBasePercent float64 `yaml:"yBasePercent"`
	YStepPercent float64 `yaml:"yStepPercent"`
	DepthStep    float64 `yaml:"depthStep"`
}

// GestureConfig 手势归一化参数
type GestureConfig struct {
	WheelThreshold     float64 `yaml:"wheelThreshold"`     // 滚轮累计阈值
	TouchThreshold     float64 `yaml:"touchThreshold"`     // 触摸纵向位移阈值（像素）
	CooldownSeconds    float64 `yaml:"cooldownSeconds"`    // 触发后的冷却时间（秒），滚轮与触摸各自独立
	WheelPixelsPerLine float64 `yaml:"wheelPixelsPerLine"` // ebiten 滚轮单位（行）换算为像素增量
}

// TransitionConfig 切换动画参数
type TransitionConfig struct {
	AdvanceDuration float64 `yaml:"advanceDuration"` // 前进动画时长（秒）
	AdvanceEase     string  `yaml:"advanceEase"`
	RetreatDuration float64 `yaml:"retreatDuration"` // 后退动画时长（秒）
	RetreatEase     string  `yaml:"retreatEase"`
}

// RevealConfig 标题逐词显示动画参数
type RevealConfig struct {
	FromYPercent    float64 `yaml:"fromYPercent"` // 单词起始偏移（行高百分比）
	Duration        float64 `yaml:"duration"`
	Ease            string  `yaml:"ease"`
	Stagger         float64 `yaml:"stagger"` // 相邻单词的启动间隔（秒）
	Delay           float64 `yaml:"delay"`   // 相对切换开始的延迟（秒）
	RevealOnRetreat bool    `yaml:"revealOnRetreat"`
}

// DisplayConfig 窗口与绘制参数
type DisplayConfig struct {
	ScreenWidth  int     `yaml:"screenWidth"`
	ScreenHeight int     `yaml:"screenHeight"`
	CardWidth    float64 `yaml:"cardWidth"`
	CardHeight   float64 `yaml:"cardHeight"`
	Perspective  float64 `yaml:"perspective"` // 透视距离（像素），depth 越大越靠近观察者
	TitleSize    float64 `yaml:"titleSize"`
	Background   string  `yaml:"background"` // 背景色，#RRGGBB
	WindowTitle  string  `yaml:"windowTitle"`
}

// CarouselConfig 轮播的完整配置
type CarouselConfig struct {
	Slides     []SlideDescriptor `yaml:"slides"`
	WindowSize int               `yaml:"windowSize"` // 静止时可见的幻灯片数量
	Layout     LayoutParams      `yaml:"layout"`
	Gesture    GestureConfig     `yaml:"gesture"`
	Transition TransitionConfig  `yaml:"transition"`
	Reveal     RevealConfig      `yaml:"reveal"`
	Display    DisplayConfig     `yaml:"display"`
}

// DefaultCarouselConfig 返回默认配置
// 5 张幻灯片、窗口 5、滚轮阈值 100、触摸阈值 50、冷却 1.2 秒
func DefaultCarouselConfig() *CarouselConfig {
	return &CarouselConfig{
		Slides: []SlideDescriptor{
			{Title: "Wind Stance", ImageBase: "data/slides/slider_img_1"},
			{Title: "Earth Stance", ImageBase: "data/slides/slider_img_2"},
			{Title: "Fire Stance", ImageBase: "data/slides/slider_img_3"},
			{Title: "Water Stance", ImageBase: "data/slides/slider_img_4"},
			{Title: "Void Stance", ImageBase: "data/slides/slider_img_5"},
		},
		WindowSize: 5,
		Layout: LayoutParams{
			YBasePercent: -15,
			YStepPercent: 15,
			DepthStep:    15,
		},
		Gesture: GestureConfig{
			WheelThreshold:     100,
			TouchThreshold:     50,
			CooldownSeconds:    1.2,
			WheelPixelsPerLine: 100,
		},
		Transition: TransitionConfig{
			AdvanceDuration: 1.0,
			AdvanceEase:     "power2.inOut",
			RetreatDuration: 1.0,
			RetreatEase:     "power3.inOut",
		},
		Reveal: RevealConfig{
			FromYPercent: 100,
			Duration:     0.75,
			Ease:         "power4.out",
			Stagger:      0.15,
			Delay:        0.5,
		},
		Display: DisplayConfig{
			ScreenWidth:  DefaultScreenWidth,
			ScreenHeight: DefaultScreenHeight,
			CardWidth:    DefaultCardWidth,
			CardHeight:   DefaultCardHeight,
			Perspective:  DefaultPerspective,
			TitleSize:    DefaultTitleSize,
			Background:   "#0d0d0f",
			WindowTitle:  "Stance Carousel",
		},
	}
}

// LoadCarouselConfig 加载轮播配置
// "data/" 前缀的路径从嵌入资源读取，其他路径从文件系统读取
func LoadCarouselConfig(filePath string) (*CarouselConfig, error) {
	var (
		data []byte
		err  error
	)
	if strings.HasPrefix(filePath, "data/") && embedded.IsInitialized() {
		data, err = embedded.ReadFile(filePath)
	} else {
		data, err = os.ReadFile(filePath)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read carousel config file: %w", err)
	}

	return ParseCarouselConfig(data)
}

// ParseCarouselConfig 解析 YAML 配置
// 未出现的字段保留默认值
func ParseCarouselConfig(data []byte) (*CarouselConfig, error) {
	cfg := DefaultCarouselConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse carousel config YAML: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid carousel config: %w", err)
	}

	return cfg, nil
}

// Validate 验证配置的有效性
// 数据集长度不得小于窗口大小，否则回收公式会让同一张幻灯片出现两次
func Validate(cfg *CarouselConfig) error {
	if cfg.WindowSize < 2 {
		return fmt.Errorf("windowSize must be >= 2, got %d", cfg.WindowSize)
	}
	if len(cfg.Slides) < cfg.WindowSize {
		return fmt.Errorf("dataset has %d slides, need at least windowSize=%d", len(cfg.Slides), cfg.WindowSize)
	}
	for i, s := range cfg.Slides {
		if strings.TrimSpace(s.Title) == "" {
			return fmt.Errorf("slide %d: title cannot be empty", i)
		}
	}

	if cfg.Gesture.WheelThreshold <= 0 {
		return fmt.Errorf("gesture.wheelThreshold must be > 0, got %v", cfg.Gesture.WheelThreshold)
	}
	if cfg.Gesture.TouchThreshold < 0 {
		return fmt.Errorf("gesture.touchThreshold must be >= 0, got %v", cfg.Gesture.TouchThreshold)
	}
	if cfg.Gesture.CooldownSeconds < 0 {
		return fmt.Errorf("gesture.cooldownSeconds must be >= 0, got %v", cfg.Gesture.CooldownSeconds)
	}

	if cfg.Transition.AdvanceDuration <= 0 || cfg.Transition.RetreatDuration <= 0 {
		return fmt.Errorf("transition durations must be > 0")
	}
	// 按字段顺序检查，多个缓动同时无效时总是报告第一个
	eases := []struct{ field, name string }{
		{"transition.advanceEase", cfg.Transition.AdvanceEase},
		{"transition.retreatEase", cfg.Transition.RetreatEase},
		{"reveal.ease", cfg.Reveal.Ease},
	}
	for _, e := range eases {
		if _, err := utils.EaseByName(e.name); err != nil {
			return fmt.Errorf("%s: %w", e.field, err)
		}
	}
	if cfg.Reveal.Duration < 0 || cfg.Reveal.Stagger < 0 || cfg.Reveal.Delay < 0 {
		return fmt.Errorf("reveal timings must be >= 0")
	}

	if cfg.Display.ScreenWidth <= 0 || cfg.Display.ScreenHeight <= 0 {
		return fmt.Errorf("display size must be positive, got %dx%d", cfg.Display.ScreenWidth, cfg.Display.ScreenHeight)
	}
	if cfg.Display.Perspective <= 0 {
		return fmt.Errorf("display.perspective must be > 0, got %v", cfg.Display.Perspective)
	}
	if _, err := ParseHexColor(cfg.Display.Background); err != nil {
		return fmt.Errorf("display.background: %w", err)
	}

	return nil
}
