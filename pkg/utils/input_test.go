//go:build !mobile

package utils

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// TestWheelDeltaY 测试滚轮单位与方向换算
func TestWheelDeltaY(t *testing.T) {
	tests := []struct {
		name          string
		wy            float64
		pixelsPerLine float64
		expected      float64
	}{
		{"向下一格", -1, 100, 100},
		{"向上一格", 1, 100, -100},
		{"触控板小幅向下", -0.25, 100, 25},
		{"自定义行高", -2, 40, 80},
		{"无滚动", 0, 100, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WheelDeltaY(tt.wy, tt.pixelsPerLine)
			if got != tt.expected {
				t.Errorf("WheelDeltaY(%v, %v) = %v, expected %v", tt.wy, tt.pixelsPerLine, got, tt.expected)
			}
		})
	}
}

// TestTouchTracker 测试单指触摸的状态转换
func TestTouchTracker(t *testing.T) {
	tests := []struct {
		name   string
		frames []TouchFrame
		// 每帧期望的输出
		want []GestureInput
		// 最后一帧后的跟踪状态
		wantTracking bool
		wantID       ebiten.TouchID
	}{
		{
			name:   "无输入",
			frames: []TouchFrame{{}},
			want:   []GestureInput{{}},
		},
		{
			name: "按下、移动、抬起：结束坐标为最后已知位置",
			frames: []TouchFrame{
				{JustPressed: []ebiten.TouchID{3}, PressedX: 10, PressedY: 400},
				{X: 12, Y: 300},
				{X: 15, Y: 250},
				{Released: true},
			},
			want: []GestureInput{
				{TouchStarted: true, TouchStartX: 10, TouchStartY: 400},
				{},
				{},
				{TouchEnded: true, TouchEndX: 15, TouchEndY: 250},
			},
			wantTracking: false,
		},
		{
			name: "同时按下多指只跟踪第一根",
			frames: []TouchFrame{
				{JustPressed: []ebiten.TouchID{5, 6}, PressedX: 1, PressedY: 2},
			},
			want: []GestureInput{
				{TouchStarted: true, TouchStartX: 1, TouchStartY: 2},
			},
			wantTracking: true,
			wantID:       5,
		},
		{
			name: "跟踪期间的新按下被忽略",
			frames: []TouchFrame{
				{JustPressed: []ebiten.TouchID{1}, PressedX: 0, PressedY: 100},
				{X: 0, Y: 90, JustPressed: []ebiten.TouchID{2}, PressedX: 50, PressedY: 50},
			},
			want: []GestureInput{
				{TouchStarted: true, TouchStartX: 0, TouchStartY: 100},
				{},
			},
			wantTracking: true,
			wantID:       1,
		},
		{
			name: "同一帧抬起后立即按下",
			frames: []TouchFrame{
				{JustPressed: []ebiten.TouchID{1}, PressedX: 0, PressedY: 100},
				{Released: true, JustPressed: []ebiten.TouchID{2}, PressedX: 7, PressedY: 8},
			},
			want: []GestureInput{
				{TouchStarted: true, TouchStartX: 0, TouchStartY: 100},
				{TouchEnded: true, TouchEndX: 0, TouchEndY: 100, TouchStarted: true, TouchStartX: 7, TouchStartY: 8},
			},
			wantTracking: true,
			wantID:       2,
		},
		{
			name:   "未跟踪时的抬起不产生事件",
			frames: []TouchFrame{{Released: true}},
			want:   []GestureInput{{}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tracker := NewTouchTracker()
			for i, f := range tt.frames {
				var in GestureInput
				tracker.Advance(f, &in)
				if in != tt.want[i] {
					t.Errorf("frame %d: got %+v, expected %+v", i, in, tt.want[i])
				}
			}

			id, tracking := tracker.Tracking()
			if tracking != tt.wantTracking {
				t.Fatalf("tracking = %v, expected %v", tracking, tt.wantTracking)
			}
			if tracking && id != tt.wantID {
				t.Errorf("tracked id = %d, expected %d", id, tt.wantID)
			}
		})
	}
}

// TestMouseTouchEmulator 测试鼠标左键模拟触摸
func TestMouseTouchEmulator(t *testing.T) {
	var m MouseTouchEmulator

	steps := []struct {
		pressed, released bool
		x, y              float64
		want              GestureInput
	}{
		{false, true, 0, 0, GestureInput{}}, // 未按下时的抬起被忽略
		{true, false, 20, 500, GestureInput{TouchStarted: true, TouchStartX: 20, TouchStartY: 500}},
		{true, false, 20, 400, GestureInput{}}, // 按住期间不重复开始
		{false, true, 25, 300, GestureInput{TouchEnded: true, TouchEndX: 25, TouchEndY: 300}},
		{false, true, 25, 300, GestureInput{}},
	}

	for i, s := range steps {
		var in GestureInput
		m.Advance(s.pressed, s.released, s.x, s.y, &in)
		if in != s.want {
			t.Errorf("step %d: got %+v, expected %+v", i, in, s.want)
		}
	}
}

// TestNewGestureReader 测试默认行高与模拟开关
func TestNewGestureReader(t *testing.T) {
	t.Setenv(MobileEmulateEnv, "")
	r := NewGestureReader(0)
	if r.pixelsPerLine != 100 {
		t.Errorf("Expected default pixelsPerLine 100, got %v", r.pixelsPerLine)
	}
	if r.emulateTouch {
		t.Error("Touch emulation should be off on desktop by default")
	}
	if _, tracking := r.touch.Tracking(); tracking {
		t.Error("New reader should not track any touch")
	}

	t.Setenv(MobileEmulateEnv, "1")
	if !NewGestureReader(50).emulateTouch {
		t.Error("Touch emulation should follow IsMobile()")
	}
}
