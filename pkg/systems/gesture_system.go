package systems

import (
	"log"
	"math"

	"github.com/gonewx/carousel/pkg/config"
	"github.com/gonewx/carousel/pkg/utils"
)

// GestureLockState 手势防抖状态
// 冷却值为剩余秒数，大于 0 表示该输入方式被锁定
type GestureLockState struct {
	WheelCooldown    float64
	TouchCooldown    float64
	WheelAccumulator float64
}

// WheelLocked 滚轮是否处于冷却中
func (s GestureLockState) WheelLocked() bool {
	return s.WheelCooldown > 0
}

// TouchLocked 触摸是否处于冷却中
func (s GestureLockState) TouchLocked() bool {
	return s.TouchCooldown > 0
}

// GestureSystem 手势归一化
//
// 把原始滚轮/触摸输入转换为离散的前进/后退意图。
// 动画锁或对应输入方式的冷却生效时丢弃输入（不排队）。
// 滚轮冷却与触摸冷却互相独立，也独立于动画完成时间。
type GestureSystem struct {
	requester TransitionRequester
	cfg       config.GestureConfig
	state     GestureLockState

	touchArmed               bool
	touchStartX, touchStartY float64
}

// NewGestureSystem 创建手势系统
func NewGestureSystem(requester TransitionRequester, cfg config.GestureConfig) *GestureSystem {
	return &GestureSystem{
		requester: requester,
		cfg:       cfg,
	}
}

// Process 分发一帧采集到的输入
// 同一帧内先处理触摸结束再处理触摸开始，保证快速连续的两次轻扫不会互相覆盖
func (s *GestureSystem) Process(in utils.GestureInput) {
	if in.HasWheel {
		s.HandleWheel(in.WheelDeltaY)
	}
	if in.TouchEnded {
		s.HandleTouchEnd(in.TouchEndX, in.TouchEndY)
	}
	if in.TouchStarted {
		s.HandleTouchStart(in.TouchStartX, in.TouchStartY)
	}
}

// Update 推进冷却计时
func (s *GestureSystem) Update(deltaTime float64) {
	s.state.WheelCooldown = math.Max(0, s.state.WheelCooldown-deltaTime)
	s.state.TouchCooldown = math.Max(0, s.state.TouchCooldown-deltaTime)
}

// HandleWheel 处理一次滚轮事件
// deltaY 采用浏览器约定：正值表示向下滚动（前进）
// 返回是否发出了切换意图
func (s *GestureSystem) HandleWheel(deltaY float64) bool {
	if s.requester.IsAnimating() || s.state.WheelLocked() {
		return false
	}

	s.state.WheelAccumulator += math.Abs(deltaY)
	if s.state.WheelAccumulator < s.cfg.WheelThreshold {
		return false
	}

	s.state.WheelAccumulator = 0
	s.state.WheelCooldown = s.cfg.CooldownSeconds

	direction := DirectionRetreat
	if deltaY > 0 {
		direction = DirectionAdvance
	}
	log.Printf("[GestureSystem] Wheel intent: %s", direction)
	s.requester.RequestTransition(direction)
	return true
}

// HandleTouchStart 记录触摸起点
// 锁定期间的按下不记录，同时作废之前记录的起点
func (s *GestureSystem) HandleTouchStart(x, y float64) {
	if s.requester.IsAnimating() || s.state.TouchLocked() {
		s.touchArmed = false
		return
	}
	s.touchArmed = true
	s.touchStartX, s.touchStartY = x, y
}

// HandleTouchEnd 处理触摸结束
// 仅当纵向位移大于横向位移且超过阈值时发出意图：向上轻扫（deltaY > 0）前进
// 返回是否发出了切换意图
func (s *GestureSystem) HandleTouchEnd(x, y float64) bool {
	// 每次抬起都消耗起点，锁定期间的抬起也不例外
	armed := s.touchArmed
	s.touchArmed = false
	if s.requester.IsAnimating() || s.state.TouchLocked() || !armed {
		return false
	}

	deltaY := s.touchStartY - y
	deltaX := math.Abs(s.touchStartX - x)

	if math.Abs(deltaY) <= deltaX || math.Abs(deltaY) <= s.cfg.TouchThreshold {
		return false
	}

	s.state.TouchCooldown = s.cfg.CooldownSeconds

	direction := DirectionRetreat
	if deltaY > 0 {
		direction = DirectionAdvance
	}
	log.Printf("[GestureSystem] Touch intent: %s (dy=%.0f dx=%.0f)", direction, deltaY, deltaX)
	s.requester.RequestTransition(direction)
	return true
}

// State 返回当前防抖状态快照
func (s *GestureSystem) State() GestureLockState {
	return s.state
}
