package utils

import (
	"math"
	"testing"
)

// TestEaseLinear 测试线性缓动函数
func TestEaseLinear(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{"起点", 0.0, 0.0},
		{"中点", 0.5, 0.5},
		{"终点", 1.0, 1.0},
		{"四分之一", 0.25, 0.25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := EaseLinear(tt.input)
			if math.Abs(result-tt.expected) > 0.001 {
				t.Errorf("EaseLinear(%v) = %v, 期望 %v", tt.input, result, tt.expected)
			}
		})
	}
}

// TestPowerEaseMatchesNamedCurves 验证 PowerEase 与具名曲线一致
func TestPowerEaseMatchesNamedCurves(t *testing.T) {
	tests := []struct {
		name  string
		power int
		mode  string
		ref   EaseFunc
	}{
		{"power2.out = Cubic out", 2, "out", EaseOutCubic},
		{"power2.inOut = Cubic inOut", 2, "inOut", EaseInOutCubic},
		{"power3.inOut = Quart inOut", 3, "inOut", EaseInOutQuart},
		{"power4.out = Quint out", 4, "out", EaseOutQuint},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ease, err := PowerEase(tt.power, tt.mode)
			if err != nil {
				t.Fatalf("PowerEase(%d, %q) error: %v", tt.power, tt.mode, err)
			}
			for p := 0.0; p <= 1.0; p += 0.05 {
				if math.Abs(ease(p)-tt.ref(p)) > 1e-9 {
					t.Errorf("t=%.2f: PowerEase = %v, 期望 %v", p, ease(p), tt.ref(p))
				}
			}
		})
	}
}

// TestPowerEaseEndpoints 验证所有缓动的端点和中点对称性
func TestPowerEaseEndpoints(t *testing.T) {
	for power := 1; power <= 4; power++ {
		for _, mode := range []string{"in", "out", "inOut"} {
			ease, err := PowerEase(power, mode)
			if err != nil {
				t.Fatalf("PowerEase(%d, %q) error: %v", power, mode, err)
			}
			if ease(0) != 0 || math.Abs(ease(1)-1) > 1e-12 {
				t.Errorf("power%d.%s 端点错误: f(0)=%v f(1)=%v", power, mode, ease(0), ease(1))
			}
			if mode == "inOut" && math.Abs(ease(0.5)-0.5) > 1e-12 {
				t.Errorf("power%d.inOut 中点应为 0.5，实际 %v", power, ease(0.5))
			}
			// 超出范围的输入被钳制
			if ease(-1) != 0 || math.Abs(ease(2)-1) > 1e-12 {
				t.Errorf("power%d.%s 未钳制越界输入", power, mode)
			}
		}
	}
}

// TestEaseByName 测试按名称解析缓动
func TestEaseByName(t *testing.T) {
	tests := []struct {
		name    string
		input   float64
		want    float64
		wantErr bool
	}{
		{"linear", 0.3, 0.3, false},
		{"", 0.3, 0.3, false},
		{"power2.inOut", 0.25, 0.0625, false}, // 4 * 0.25³
		{"power3.inOut", 0.25, 0.03125, false},
		{"power4.out", 0.5, 0.96875, false}, // 1 - 0.5⁵
		{"power1", 0.5, 0.75, false},        // 默认 out
		{"power5.out", 0, 0, true},
		{"power2.sideways", 0, 0, true},
		{"elastic.out", 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ease, err := EaseByName(tt.name)
			if tt.wantErr {
				if err == nil {
					t.Errorf("EaseByName(%q) expected error", tt.name)
				}
				return
			}
			if err != nil {
				t.Fatalf("EaseByName(%q) unexpected error: %v", tt.name, err)
			}
			if got := ease(tt.input); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("EaseByName(%q)(%v) = %v, 期望 %v", tt.name, tt.input, got, tt.want)
			}
		})
	}
}

// TestLerp 测试线性插值函数
func TestLerp(t *testing.T) {
	tests := []struct {
		name     string
		a        float64
		b        float64
		t        float64
		expected float64
	}{
		{"起点", 0.0, 100.0, 0.0, 0.0},
		{"中点", 0.0, 100.0, 0.5, 50.0},
		{"终点", 0.0, 100.0, 1.0, 100.0},
		{"负数范围", -50.0, 50.0, 0.5, 0.0},
		{"逆向范围", 100.0, 0.0, 0.5, 50.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Lerp(tt.a, tt.b, tt.t)
			if math.Abs(result-tt.expected) > 0.001 {
				t.Errorf("Lerp(%v, %v, %v) = %v, 期望 %v", tt.a, tt.b, tt.t, result, tt.expected)
			}
		})
	}
}
