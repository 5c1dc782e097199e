package components

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// SlideVisualComponent 幻灯片的绘制资源
// 由 SlideRenderSystem 在首次绘制时惰性创建，随实体销毁释放
type SlideVisualComponent struct {
	// Card 卡片背景图（已缩放到卡片尺寸）
	Card *ebiten.Image

	// TitleLayer 标题遮罩层，每帧重绘单词
	TitleLayer *ebiten.Image

	// WordX 每个单词在标题层内的 X 坐标（与 TitleRevealComponent.Words 一一对应）
	WordX []float64

	// LineHeight 标题行高（像素）
	LineHeight float64
}
