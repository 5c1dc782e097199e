package systems

import (
	"fmt"
	"log"

	"github.com/gonewx/carousel/pkg/components"
	"github.com/gonewx/carousel/pkg/config"
	"github.com/gonewx/carousel/pkg/ecs"
	"github.com/gonewx/carousel/pkg/utils"
)

// Direction 切换方向
type Direction int

const (
	// DirectionAdvance 前进：最前一张移出，新幻灯片从尾部进入
	DirectionAdvance Direction = iota
	// DirectionRetreat 后退：最后一张移出，新幻灯片从前部进入
	DirectionRetreat
)

// String 返回方向名称（用于日志）
func (d Direction) String() string {
	switch d {
	case DirectionAdvance:
		return "advance"
	case DirectionRetreat:
		return "retreat"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// Transition 一次已提交的切换
// 被移出幻灯片的位置补间完成时结算：实体被移除，动画锁释放，Done() 关闭
type Transition struct {
	Direction  Direction
	FrontIndex int          // 提交后的最前索引
	Incoming   ecs.EntityID // 新挂载的幻灯片
	Expelled   ecs.EntityID // 将被移出窗口的幻灯片

	settled bool
	done    chan struct{}
}

// Settled 检查切换是否已结算
func (t *Transition) Settled() bool {
	return t.settled
}

// Done 返回在结算时关闭的 channel
func (t *Transition) Done() <-chan struct{} {
	return t.done
}

// TransitionRequester 切换请求接口
// GestureSystem 通过它发出意图，不直接依赖回收器实现
type TransitionRequester interface {
	// IsAnimating 返回动画锁状态
	IsAnimating() bool
	// RequestTransition 请求一次切换；动画锁已持有时返回 nil 且不产生任何效果
	RequestTransition(direction Direction) *Transition
}

// SlideRecyclerSystem 幻灯片回收状态机
//
// 维护最前索引、动画锁和按挂载顺序排列的实体列表（挂载顺序即由前到后的顺序）。
// 每次切换：挂载一张新幻灯片、把所有已挂载幻灯片补间到新位置，
// 并在被移出幻灯片的补间完成后将其销毁、释放动画锁。
type SlideRecyclerSystem struct {
	entityManager *ecs.EntityManager
	tweens        *TweenSystem

	slides     []config.SlideDescriptor
	windowSize int
	layout     config.LayoutParams
	transition config.TransitionConfig
	reveal     config.RevealConfig

	advanceEase utils.EaseFunc
	retreatEase utils.EaseFunc
	revealEase  utils.EaseFunc

	frontIndex int
	animating  bool
	mounted    []ecs.EntityID
	current    *Transition
}

// NewSlideRecyclerSystem 创建回收状态机
//
// 配置必须已通过 config.Validate；数据集短于窗口属于编程错误，直接 panic。
func NewSlideRecyclerSystem(em *ecs.EntityManager, tweens *TweenSystem, cfg *config.CarouselConfig) *SlideRecyclerSystem {
	if err := config.Validate(cfg); err != nil {
		panic(fmt.Sprintf("slide recycler: %v", err))
	}

	return &SlideRecyclerSystem{
		entityManager: em,
		tweens:        tweens,
		slides:        cfg.Slides,
		windowSize:    cfg.WindowSize,
		layout:        cfg.Layout,
		transition:    cfg.Transition,
		reveal:        cfg.Reveal,
		advanceEase:   mustEase(cfg.Transition.AdvanceEase),
		retreatEase:   mustEase(cfg.Transition.RetreatEase),
		revealEase:    mustEase(cfg.Reveal.Ease),
	}
}

func mustEase(name string) utils.EaseFunc {
	ease, err := utils.EaseByName(name)
	if err != nil {
		panic(err)
	}
	return ease
}

// Bootstrap 一次性挂载初始幻灯片
// 数据集索引 front..front+windowSize-1 依次放在偏移 0..windowSize-1，立即就位（无动画）
func (s *SlideRecyclerSystem) Bootstrap() {
	if len(s.mounted) > 0 {
		return
	}

	n := len(s.slides)
	for i := 0; i < s.windowSize; i++ {
		id := s.mountSlide((s.frontIndex+i)%n, i, false)
		s.mounted = append(s.mounted, id)
	}

	log.Printf("[SlideRecycler] Bootstrap: %d slides mounted, front=%d", len(s.mounted), s.frontIndex)
}

// RequestTransition 请求一次切换
// 动画锁已持有时为空操作，返回 nil
func (s *SlideRecyclerSystem) RequestTransition(direction Direction) *Transition {
	if s.animating {
		return nil
	}
	s.animating = true

	var tr *Transition
	if direction == DirectionRetreat {
		tr = s.retreat()
	} else {
		tr = s.advance()
	}
	s.current = tr

	log.Printf("[SlideRecycler] %s: front=%d incoming=%d expelled=%d",
		direction, s.frontIndex, tr.Incoming, tr.Expelled)
	return tr
}

// advance 前进：新幻灯片挂在尾部暂存位（offset=windowSize），所有幻灯片偏移减一，
// 原最前一张移到 -1 并在其补间完成后移除
func (s *SlideRecyclerSystem) advance() *Transition {
	n := len(s.slides)
	s.frontIndex = (s.frontIndex + 1) % n

	// 平移后占据最后一个可见位的幻灯片
	incomingIndex := (s.frontIndex + s.windowSize - 1) % n
	incoming := s.mountSlide(incomingIndex, s.windowSize, true)
	s.mounted = append(s.mounted, incoming)

	tr := &Transition{
		Direction:  DirectionAdvance,
		FrontIndex: s.frontIndex,
		Incoming:   incoming,
		Expelled:   s.mounted[0],
		done:       make(chan struct{}),
	}

	for i, id := range s.mounted {
		offset := i - 1
		target := SlideLayout(offset, s.layout)

		var onComplete func()
		if id == tr.Expelled {
			onComplete = func() { s.settle(tr) }
		}
		s.moveSlide(id, offset, target, s.transition.AdvanceDuration, s.advanceEase, onComplete)
	}

	s.revealTitle(incoming)
	return tr
}

// retreat 后退：新幻灯片挂在前部暂存位（offset=-1），所有幻灯片偏移加一，
// 原最后一张移到 windowSize 并在其补间完成后移除
func (s *SlideRecyclerSystem) retreat() *Transition {
	n := len(s.slides)
	s.frontIndex = (s.frontIndex - 1 + n) % n

	incoming := s.mountSlide(s.frontIndex, -1, s.reveal.RevealOnRetreat)
	s.mounted = append([]ecs.EntityID{incoming}, s.mounted...)

	tr := &Transition{
		Direction:  DirectionRetreat,
		FrontIndex: s.frontIndex,
		Incoming:   incoming,
		Expelled:   s.mounted[len(s.mounted)-1],
		done:       make(chan struct{}),
	}

	for i, id := range s.mounted {
		offset := i
		target := SlideLayout(offset, s.layout)
		if offset > s.windowSize-1 {
			target.Opacity = 0
		}

		var onComplete func()
		if id == tr.Expelled {
			onComplete = func() { s.settle(tr) }
		}
		s.moveSlide(id, offset, target, s.transition.RetreatDuration, s.retreatEase, onComplete)
	}

	if s.reveal.RevealOnRetreat {
		s.revealTitle(incoming)
	}
	return tr
}

// settle 结算切换：移除被移出的幻灯片并释放动画锁
// 只在被移出幻灯片自身的补间完成回调中调用
func (s *SlideRecyclerSystem) settle(tr *Transition) {
	if tr.settled {
		return
	}

	for i, id := range s.mounted {
		if id == tr.Expelled {
			s.mounted = append(s.mounted[:i], s.mounted[i+1:]...)
			break
		}
	}
	s.entityManager.DestroyEntity(tr.Expelled)

	tr.settled = true
	close(tr.done)
	if s.current == tr {
		s.current = nil
	}
	s.animating = false

	log.Printf("[SlideRecycler] Settled %s: front=%d mounted=%d", tr.Direction, tr.FrontIndex, len(s.mounted))
}

// mountSlide 创建幻灯片实体并放到指定偏移
// 新挂载的幻灯片不透明度为 0；hidden 为 true 时标题单词预先移到遮罩下方
func (s *SlideRecyclerSystem) mountSlide(descriptorIndex, offset int, hidden bool) ecs.EntityID {
	em := s.entityManager
	id := em.CreateEntity()

	ecs.AddComponent(em, id, &components.SlideComponent{
		DescriptorIndex: descriptorIndex,
		Offset:          offset,
	})

	target := SlideLayout(offset, s.layout)
	if offset < 0 || offset > s.windowSize-1 {
		target.Opacity = 0
	}
	tf := &components.SlideTransformComponent{}
	s.tweens.SetProps(transformProps(tf, target))
	ecs.AddComponent(em, id, tf)

	wordY := 0.0
	if hidden {
		wordY = s.reveal.FromYPercent
	}
	words := utils.SplitWords(s.slides[descriptorIndex].Title)
	reveal := &components.TitleRevealComponent{Words: make([]components.WordHandle, len(words))}
	for i, w := range words {
		reveal.Words[i].Text = w
		s.tweens.Set(&reveal.Words[i].YPercent, wordY)
	}
	ecs.AddComponent(em, id, reveal)

	return id
}

// moveSlide 更新逻辑偏移并补间到目标变换
func (s *SlideRecyclerSystem) moveSlide(id ecs.EntityID, offset int, target components.SlideTransformComponent,
	duration float64, ease utils.EaseFunc, onComplete func()) {
	slide, ok := ecs.GetComponent[*components.SlideComponent](s.entityManager, id)
	if !ok {
		return
	}
	tf, ok := ecs.GetComponent[*components.SlideTransformComponent](s.entityManager, id)
	if !ok {
		return
	}

	slide.Offset = offset
	s.tweens.To(transformProps(tf, target), TweenOptions{
		Duration:   duration,
		Ease:       ease,
		OnComplete: onComplete,
	})
}

// revealTitle 逐词显示标题，与位置切换并行，不影响动画锁
func (s *SlideRecyclerSystem) revealTitle(id ecs.EntityID) {
	reveal, ok := ecs.GetComponent[*components.TitleRevealComponent](s.entityManager, id)
	if !ok || len(reveal.Words) == 0 {
		return
	}

	groups := make([][]TweenProp, len(reveal.Words))
	for i := range reveal.Words {
		groups[i] = []TweenProp{{Target: &reveal.Words[i].YPercent, To: 0}}
	}
	s.tweens.StaggerTo(groups, s.reveal.Stagger, TweenOptions{
		Duration: s.reveal.Duration,
		Delay:    s.reveal.Delay,
		Ease:     s.revealEase,
	})
}

// FrontIndex 返回当前最前幻灯片的数据集索引
func (s *SlideRecyclerSystem) FrontIndex() int {
	return s.frontIndex
}

// IsAnimating 返回动画锁状态
func (s *SlideRecyclerSystem) IsAnimating() bool {
	return s.animating
}

// Current 返回进行中的切换，没有则返回 nil
func (s *SlideRecyclerSystem) Current() *Transition {
	return s.current
}

// Mounted 返回按挂载顺序（由前到后）排列的实体列表副本
func (s *SlideRecyclerSystem) Mounted() []ecs.EntityID {
	return append([]ecs.EntityID(nil), s.mounted...)
}

// MountedCount 返回已挂载幻灯片数量
func (s *SlideRecyclerSystem) MountedCount() int {
	return len(s.mounted)
}

// WindowSize 返回静止时可见的幻灯片数量
func (s *SlideRecyclerSystem) WindowSize() int {
	return s.windowSize
}

// Descriptor 返回数据集中指定索引的描述（按 N 取模）
func (s *SlideRecyclerSystem) Descriptor(index int) config.SlideDescriptor {
	n := len(s.slides)
	return s.slides[((index%n)+n)%n]
}

// DescriptorAt 返回位于指定偏移的幻灯片的数据集索引
func (s *SlideRecyclerSystem) DescriptorAt(offset int) (int, bool) {
	for _, id := range s.mounted {
		slide, ok := ecs.GetComponent[*components.SlideComponent](s.entityManager, id)
		if ok && slide.Offset == offset {
			return slide.DescriptorIndex, true
		}
	}
	return 0, false
}
