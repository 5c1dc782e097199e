package config

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// 默认显示参数
// 卡片尺寸以逻辑屏幕为基准，YPercent 按卡片高度换算为像素
const (
	// DefaultScreenWidth 逻辑屏幕宽度
	DefaultScreenWidth = 1280

	// DefaultScreenHeight 逻辑屏幕高度
	DefaultScreenHeight = 800

	// DefaultCardWidth 卡片宽度（像素）
	DefaultCardWidth = 520.0

	// DefaultCardHeight 卡片高度（像素）
	DefaultCardHeight = 320.0

	// DefaultPerspective 透视距离（像素）
	// depth=45（offset 3）时缩放约 1.047
	DefaultPerspective = 1000.0

	// DefaultTitleSize 标题字号
	DefaultTitleSize = 42.0
)

// ParseHexColor 解析 #RRGGBB 或 #RRGGBBAA 格式的颜色
func ParseHexColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 && len(hex) != 8 {
		return color.RGBA{}, fmt.Errorf("invalid color %q: want #RRGGBB or #RRGGBBAA", s)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}

	if len(hex) == 6 {
		return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
	}
	return color.RGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}
