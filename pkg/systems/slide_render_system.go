package systems

import (
	"image/color"
	"log"
	"math"

	"github.com/gonewx/carousel/pkg/components"
	"github.com/gonewx/carousel/pkg/config"
	"github.com/gonewx/carousel/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// 卡片绘制参数
const (
	titlePadding     = 28.0 // 标题距卡片左下角的内边距
	cardBorderWidth  = 2.0
	titleShadeHeight = 0.38 // 底部暗色条占卡片高度的比例
)

// SlideSource 提供按挂载顺序排列的幻灯片及其数据
type SlideSource interface {
	Mounted() []ecs.EntityID
	Descriptor(index int) config.SlideDescriptor
}

// SlideResources 提供幻灯片绘制所需的资源
type SlideResources interface {
	LoadSlideImage(imageBase string, index int) *ebiten.Image
	LoadTitleFont(size float64) (*text.GoTextFace, error)
}

// SlideRenderSystem 按挂载顺序绘制幻灯片（后挂载的在上层）
//
// 深度换算为透视缩放 perspective / (perspective - depth)，
// YPercent 按卡片高度换算为像素偏移，整个堆叠在屏幕内垂直居中。
type SlideRenderSystem struct {
	entityManager *ecs.EntityManager
	source        SlideSource
	resources     SlideResources
	display       config.DisplayConfig

	// 堆叠中心的 YPercent，用于把静止时的整组卡片居中
	stackCenter float64
}

// NewSlideRenderSystem 创建幻灯片渲染系统
func NewSlideRenderSystem(em *ecs.EntityManager, source SlideSource, resources SlideResources, cfg *config.CarouselConfig) *SlideRenderSystem {
	return &SlideRenderSystem{
		entityManager: em,
		source:        source,
		resources:     resources,
		display:       cfg.Display,
		stackCenter:   cfg.Layout.YBasePercent + cfg.Layout.YStepPercent*float64(cfg.WindowSize-1)/2,
	}
}

// PerspectiveScale 返回给定深度的透视缩放系数
func PerspectiveScale(depth, perspective float64) float64 {
	d := perspective - depth
	if d <= 1 {
		d = 1
	}
	return perspective / d
}

// Draw 绘制所有已挂载的幻灯片
func (s *SlideRenderSystem) Draw(screen *ebiten.Image) {
	for _, id := range s.source.Mounted() {
		slide, ok := ecs.GetComponent[*components.SlideComponent](s.entityManager, id)
		if !ok {
			continue
		}
		tf, ok := ecs.GetComponent[*components.SlideTransformComponent](s.entityManager, id)
		if !ok || tf.Opacity <= 0 {
			continue
		}

		visual := s.ensureVisual(id, slide)
		if visual == nil {
			continue
		}
		if reveal, ok := ecs.GetComponent[*components.TitleRevealComponent](s.entityManager, id); ok {
			s.drawTitleLayer(visual, reveal)
		}

		s.drawSlide(screen, visual, tf)
	}
}

// drawSlide 按变换绘制卡片与标题层
func (s *SlideRenderSystem) drawSlide(screen *ebiten.Image, visual *components.SlideVisualComponent, tf *components.SlideTransformComponent) {
	w, h := s.display.CardWidth, s.display.CardHeight
	scale := PerspectiveScale(tf.Depth, s.display.Perspective)
	cx := float64(s.display.ScreenWidth) / 2
	cy := float64(s.display.ScreenHeight)/2 + (tf.YPercent-s.stackCenter)/100*h
	alpha := float32(math.Max(0, math.Min(1, tf.Opacity)))

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-w/2, -h/2)
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(cx, cy)
	op.ColorScale.ScaleAlpha(alpha)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(visual.Card, op)

	if visual.TitleLayer == nil {
		return
	}
	// 标题层沿用卡片的透明度
	op.GeoM.Reset()
	op.GeoM.Translate(-w/2+titlePadding, h/2-titlePadding-visual.LineHeight)
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(cx, cy)
	screen.DrawImage(visual.TitleLayer, op)
}

// drawTitleLayer 重绘标题遮罩层
// 每个单词按 YPercent 下移，超出行框的部分被图层边界裁掉
func (s *SlideRenderSystem) drawTitleLayer(visual *components.SlideVisualComponent, reveal *components.TitleRevealComponent) {
	if visual.TitleLayer == nil {
		return
	}
	face, err := s.resources.LoadTitleFont(s.display.TitleSize)
	if err != nil {
		return
	}

	visual.TitleLayer.Clear()
	for i, word := range reveal.Words {
		if i >= len(visual.WordX) {
			break
		}
		op := &text.DrawOptions{}
		op.GeoM.Translate(visual.WordX[i], word.YPercent/100*visual.LineHeight)
		op.ColorScale.ScaleWithColor(color.White)
		text.Draw(visual.TitleLayer, word.Text, face, op)
	}
}

// ensureVisual 返回实体的绘制资源，首次调用时创建
func (s *SlideRenderSystem) ensureVisual(id ecs.EntityID, slide *components.SlideComponent) *components.SlideVisualComponent {
	if visual, ok := ecs.GetComponent[*components.SlideVisualComponent](s.entityManager, id); ok {
		return visual
	}

	desc := s.source.Descriptor(slide.DescriptorIndex)
	visual := &components.SlideVisualComponent{
		Card: s.buildCard(desc, slide.DescriptorIndex),
	}

	face, err := s.resources.LoadTitleFont(s.display.TitleSize)
	if err != nil {
		log.Printf("[SlideRenderSystem] Title font unavailable: %v", err)
	} else if reveal, ok := ecs.GetComponent[*components.TitleRevealComponent](s.entityManager, id); ok {
		s.layoutWords(visual, reveal, face)
	}

	ecs.AddComponent(s.entityManager, id, visual)
	return visual
}

// layoutWords 测量单词并从左到右排布
func (s *SlideRenderSystem) layoutWords(visual *components.SlideVisualComponent, reveal *components.TitleRevealComponent, face *text.GoTextFace) {
	metrics := face.Metrics()
	visual.LineHeight = metrics.HAscent + metrics.HDescent
	space := text.Advance(" ", face)

	x := 0.0
	visual.WordX = make([]float64, len(reveal.Words))
	for i, word := range reveal.Words {
		visual.WordX[i] = x
		x += text.Advance(word.Text, face) + space
	}

	layerW := int(math.Ceil(s.display.CardWidth - 2*titlePadding))
	layerH := int(math.Ceil(visual.LineHeight))
	if layerW > 0 && layerH > 0 {
		visual.TitleLayer = ebiten.NewImage(layerW, layerH)
	}
}

// buildCard 把幻灯片图片按 cover 方式缩放到卡片尺寸，并叠加底部暗色条与边框
func (s *SlideRenderSystem) buildCard(desc config.SlideDescriptor, index int) *ebiten.Image {
	w, h := s.display.CardWidth, s.display.CardHeight
	card := ebiten.NewImage(int(w), int(h))

	src := s.resources.LoadSlideImage(desc.ImageBase, index)
	sw, sh := src.Bounds().Dx(), src.Bounds().Dy()
	if sw > 0 && sh > 0 {
		scale := math.Max(w/float64(sw), h/float64(sh))
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(scale, scale)
		op.GeoM.Translate((w-float64(sw)*scale)/2, (h-float64(sh)*scale)/2)
		op.Filter = ebiten.FilterLinear
		card.DrawImage(src, op)
	}

	shadeH := float32(h * titleShadeHeight)
	vector.DrawFilledRect(card, 0, float32(h)-shadeH, float32(w), shadeH, color.RGBA{A: 0x90}, false)
	vector.StrokeRect(card, 0, 0, float32(w), float32(h), cardBorderWidth, color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x40}, false)

	return card
}

// ReleaseDetached 释放已不在挂载列表中的幻灯片的绘制资源，返回释放数量
// 需要在 RemoveMarkedEntities 之前调用，此时被移出的实体仍可查询
func (s *SlideRenderSystem) ReleaseDetached() int {
	mounted := make(map[ecs.EntityID]bool)
	for _, id := range s.source.Mounted() {
		mounted[id] = true
	}

	released := 0
	for _, id := range ecs.GetEntitiesWith1[*components.SlideVisualComponent](s.entityManager) {
		if mounted[id] {
			continue
		}
		if visual, ok := ecs.GetComponent[*components.SlideVisualComponent](s.entityManager, id); ok {
			if visual.Card != nil {
				visual.Card.Deallocate()
			}
			if visual.TitleLayer != nil {
				visual.TitleLayer.Deallocate()
			}
		}
		ecs.RemoveComponent[*components.SlideVisualComponent](s.entityManager, id)
		released++
	}
	return released
}
