// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// GestureInput 一帧内采集到的原始手势输入
// 坐标与增量均为屏幕像素，DeltaY 采用浏览器约定（正值 = 向下滚动）
type GestureInput struct {
	// 滚轮
	HasWheel    bool
	WheelDeltaY float64

	// 触摸开始（仅跟踪第一根手指）
	TouchStarted             bool
	TouchStartX, TouchStartY float64

	// 触摸结束
	TouchEnded           bool
	TouchEndX, TouchEndY float64
}

// WheelDeltaY 把 ebiten 的纵向滚轮值（行，正值 = 向上）换算为浏览器约定的像素增量
func WheelDeltaY(wy, pixelsPerLine float64) float64 {
	return -wy * pixelsPerLine
}

// noTouch 表示当前没有跟踪的触摸
const noTouch ebiten.TouchID = -1

// TouchFrame 一帧内与触摸相关的观测值
type TouchFrame struct {
	// Released 当前跟踪的触摸本帧已抬起
	Released bool
	// X, Y 当前跟踪的触摸位置（未抬起时有效）
	X, Y float64

	// JustPressed 本帧新按下的触摸
	JustPressed []ebiten.TouchID
	// PressedX, PressedY 为 JustPressed[0] 的位置
	PressedX, PressedY float64
}

// TouchTracker 单指触摸状态
// 触摸抬起后 ebiten 无法再查询位置，因此保存最后已知位置作为结束坐标
type TouchTracker struct {
	id           ebiten.TouchID
	lastX, lastY float64
}

// NewTouchTracker 创建触摸跟踪器
func NewTouchTracker() *TouchTracker {
	return &TouchTracker{id: noTouch}
}

// Tracking 返回当前跟踪的触摸 ID
func (t *TouchTracker) Tracking() (ebiten.TouchID, bool) {
	return t.id, t.id != noTouch
}

// Advance 根据一帧观测更新状态，并把开始/结束事件写入 in
// 同一帧内先处理抬起再处理按下
func (t *TouchTracker) Advance(f TouchFrame, in *GestureInput) {
	if t.id != noTouch {
		if f.Released {
			in.TouchEnded = true
			in.TouchEndX, in.TouchEndY = t.lastX, t.lastY
			t.id = noTouch
		} else {
			t.lastX, t.lastY = f.X, f.Y
		}
	}

	if t.id == noTouch && len(f.JustPressed) > 0 {
		t.id = f.JustPressed[0]
		t.lastX, t.lastY = f.PressedX, f.PressedY
		in.TouchStarted = true
		in.TouchStartX, in.TouchStartY = t.lastX, t.lastY
	}
}

// MouseTouchEmulator 用鼠标左键模拟单指触摸
type MouseTouchEmulator struct {
	down bool
}

// Advance 根据鼠标左键的按下/抬起更新状态，并把开始/结束事件写入 in
func (m *MouseTouchEmulator) Advance(pressed, released bool, x, y float64, in *GestureInput) {
	if m.down && released {
		m.down = false
		in.TouchEnded = true
		in.TouchEndX, in.TouchEndY = x, y
	}
	if !m.down && pressed {
		m.down = true
		in.TouchStarted = true
		in.TouchStartX, in.TouchStartY = x, y
	}
}

// GestureReader 从 ebiten 读取滚轮与触摸输入
// 每个轮播实例持有自己的 reader，互不干扰
type GestureReader struct {
	pixelsPerLine float64
	touch         *TouchTracker

	// 移动模拟模式下鼠标左键拖动视为触摸
	emulateTouch bool
	mouse        MouseTouchEmulator
}

// NewGestureReader 创建手势读取器
// pixelsPerLine: ebiten.Wheel() 的单位（行）换算为像素增量的系数
func NewGestureReader(pixelsPerLine float64) *GestureReader {
	if pixelsPerLine <= 0 {
		pixelsPerLine = 100
	}
	return &GestureReader{
		pixelsPerLine: pixelsPerLine,
		touch:         NewTouchTracker(),
		emulateTouch:  IsMobile(),
	}
}

// Poll 读取当前帧的输入
// 应该在每帧 Update 中调用一次
func (r *GestureReader) Poll() GestureInput {
	var in GestureInput

	if _, wy := ebiten.Wheel(); wy != 0 {
		in.HasWheel = true
		in.WheelDeltaY = WheelDeltaY(wy, r.pixelsPerLine)
	}

	var frame TouchFrame
	if id, ok := r.touch.Tracking(); ok {
		frame.Released = inpututil.IsTouchJustReleased(id)
		if !frame.Released {
			x, y := ebiten.TouchPosition(id)
			frame.X, frame.Y = float64(x), float64(y)
		}
	}
	frame.JustPressed = inpututil.AppendJustPressedTouchIDs(nil)
	if len(frame.JustPressed) > 0 {
		x, y := ebiten.TouchPosition(frame.JustPressed[0])
		frame.PressedX, frame.PressedY = float64(x), float64(y)
	}
	r.touch.Advance(frame, &in)

	if _, tracking := r.touch.Tracking(); r.emulateTouch && !tracking && !in.TouchStarted {
		x, y := ebiten.CursorPosition()
		r.mouse.Advance(
			inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
			inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft),
			float64(x), float64(y), &in)
	}

	return in
}
