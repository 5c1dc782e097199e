package systems

import (
	"github.com/gonewx/carousel/pkg/utils"
)

// TweenProp 一个被插值的数值属性
// 起始值在补间真正开始（延迟结束）的那一帧读取，而不是创建时
type TweenProp struct {
	Target *float64
	To     float64

	from float64
}

// TweenOptions 补间参数
type TweenOptions struct {
	Duration float64        // 时长（秒），0 表示在开始帧直接到达终点
	Delay    float64        // 开始前的延迟（秒）
	Ease     utils.EaseFunc // 缓动函数，nil 表示线性
	// OnComplete 补间完成后调用一次
	// 在同一帧所有补间推进完毕后才调用，因此回调内可以安全地创建新补间
	OnComplete func()
}

type tween struct {
	props   []TweenProp
	opts    TweenOptions
	elapsed float64
	started bool
}

// TweenSystem 数值补间调度器
//
// 提供两种操作：
//   - Set: 立即设置最终值
//   - To / StaggerTo: 在指定时长内按缓动曲线插值，完成时触发回调
//
// 同一帧创建的补间在下一次 Update 中同时开始，步调一致。
type TweenSystem struct {
	tweens []*tween
}

// NewTweenSystem 创建补间调度器
func NewTweenSystem() *TweenSystem {
	return &TweenSystem{}
}

// Set 立即设置属性值（无动画）
func (s *TweenSystem) Set(target *float64, value float64) {
	*target = value
}

// SetProps 立即把每个属性设为其 To 值
func (s *TweenSystem) SetProps(props []TweenProp) {
	for _, p := range props {
		s.Set(p.Target, p.To)
	}
}

// To 创建补间，把 props 中的每个属性从当前值插值到 To
func (s *TweenSystem) To(props []TweenProp, opts TweenOptions) {
	if opts.Ease == nil {
		opts.Ease = utils.EaseLinear
	}
	s.tweens = append(s.tweens, &tween{
		props: append([]TweenProp(nil), props...),
		opts:  opts,
	})
}

// StaggerTo 为每组属性创建一个补间，第 i 组额外延迟 i*stagger 秒
// opts.OnComplete 在最后一组完成后只调用一次
func (s *TweenSystem) StaggerTo(groups [][]TweenProp, stagger float64, opts TweenOptions) {
	if len(groups) == 0 {
		if opts.OnComplete != nil {
			opts.OnComplete()
		}
		return
	}

	remaining := len(groups)
	onComplete := opts.OnComplete

	for i, props := range groups {
		groupOpts := opts
		groupOpts.Delay = opts.Delay + float64(i)*stagger
		groupOpts.OnComplete = func() {
			remaining--
			if remaining == 0 && onComplete != nil {
				onComplete()
			}
		}
		s.To(props, groupOpts)
	}
}

// Update 推进所有补间
func (s *TweenSystem) Update(deltaTime float64) {
	if len(s.tweens) == 0 {
		return
	}

	var completed []func()
	active := s.tweens[:0]

	for _, tw := range s.tweens {
		tw.elapsed += deltaTime
		if tw.elapsed < tw.opts.Delay {
			active = append(active, tw)
			continue
		}

		if !tw.started {
			for i := range tw.props {
				tw.props[i].from = *tw.props[i].Target
			}
			tw.started = true
		}

		progress := 1.0
		if tw.opts.Duration > 0 {
			progress = (tw.elapsed - tw.opts.Delay) / tw.opts.Duration
			if progress > 1 {
				progress = 1
			}
		}

		eased := tw.opts.Ease(progress)
		for i := range tw.props {
			p := &tw.props[i]
			*p.Target = utils.Lerp(p.from, p.To, eased)
		}

		if progress >= 1 {
			// 终点精确落位，避免缓动函数的浮点误差
			for i := range tw.props {
				*tw.props[i].Target = tw.props[i].To
			}
			if tw.opts.OnComplete != nil {
				completed = append(completed, tw.opts.OnComplete)
			}
			continue
		}
		active = append(active, tw)
	}

	// 清空尾部引用
	for i := len(active); i < len(s.tweens); i++ {
		s.tweens[i] = nil
	}
	s.tweens = active

	for _, cb := range completed {
		cb()
	}
}

// ActiveCount 返回未完成的补间数量（包括仍在延迟中的）
func (s *TweenSystem) ActiveCount() int {
	return len(s.tweens)
}
