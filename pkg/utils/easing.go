package utils

import (
	"fmt"
	"math"
	"strings"
)

// Easing Functions (缓动函数)
//
// 缓动函数用于控制动画的速度曲线，使动画看起来更自然。
// 所有函数接受一个进度值 t ∈ [0, 1]，返回缓动后的值 ∈ [0, 1]。
//
// 命名沿用 "powerN.mode" 约定：
//
//	power1 = Quad, power2 = Cubic, power3 = Quart, power4 = Quint
//
// 参考：https://easings.net/

// EaseFunc 缓动函数类型
type EaseFunc func(t float64) float64

// EaseLinear 线性缓动（无缓动）
// 返回值 = 输入值（匀速运动）
func EaseLinear(t float64) float64 {
	return t
}

// EaseOutCubic 三次方缓出（power2.out）
// 特点：开始快，结束慢
// 公式：f(t) = 1 - (1-t)³
func EaseOutCubic(t float64) float64 {
	return 1 - math.Pow(1-t, 3)
}

// EaseInOutCubic 三次方缓入缓出（power2.inOut）
// 特点：开始慢，中间快，结束慢
// 公式：
//
//	t < 0.5: f(t) = 4t³
//	t >= 0.5: f(t) = 1 - (-2t + 2)³ / 2
func EaseInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 3)/2
}

// EaseInOutQuart 四次方缓入缓出（power3.inOut）
func EaseInOutQuart(t float64) float64 {
	if t < 0.5 {
		return 8 * t * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 4)/2
}

// EaseOutQuint 五次方缓出（power4.out）
// 特点：起步极快，长时间减速收尾，适合文字"落位"
func EaseOutQuint(t float64) float64 {
	return 1 - math.Pow(1-t, 5)
}

// PowerEase 构造 powerN 缓动
// mode 取值 "in" / "out" / "inOut"
func PowerEase(power int, mode string) (EaseFunc, error) {
	if power < 1 || power > 4 {
		return nil, fmt.Errorf("power must be between 1 and 4, got %d", power)
	}
	exp := float64(power + 1)

	switch mode {
	case "in":
		return func(t float64) float64 {
			return math.Pow(clamp01(t), exp)
		}, nil
	case "out":
		return func(t float64) float64 {
			return 1 - math.Pow(1-clamp01(t), exp)
		}, nil
	case "inOut":
		return func(t float64) float64 {
			t = clamp01(t)
			if t < 0.5 {
				return math.Pow(2*t, exp) / 2
			}
			return 1 - math.Pow(2*(1-t), exp)/2
		}, nil
	}
	return nil, fmt.Errorf("unknown ease mode %q", mode)
}

// EaseByName 按名称解析缓动函数
// 支持 "linear"、"none" 以及 "power1".."power4" 加 ".in" / ".out" / ".inOut"
// 省略模式时默认 ".out"
func EaseByName(name string) (EaseFunc, error) {
	name = strings.TrimSpace(name)
	if name == "" || name == "linear" || name == "none" {
		return EaseLinear, nil
	}

	base, mode, found := strings.Cut(name, ".")
	if !found {
		mode = "out"
	}
	if !strings.HasPrefix(base, "power") || len(base) != len("power")+1 {
		return nil, fmt.Errorf("unknown ease %q", name)
	}

	power := int(base[len(base)-1] - '0')
	ease, err := PowerEase(power, mode)
	if err != nil {
		return nil, fmt.Errorf("unknown ease %q: %w", name, err)
	}
	return ease, nil
}

// Lerp 线性插值
// 在 a 和 b 之间根据 t 插值
// t=0 返回 a，t=1 返回 b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

func clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
