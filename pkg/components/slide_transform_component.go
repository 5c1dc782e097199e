package components

// SlideTransformComponent 幻灯片的视觉变换状态
// 由 TweenSystem 插值驱动，由 SlideRenderSystem 读取绘制
type SlideTransformComponent struct {
	// YPercent 纵向偏移，单位为卡片高度的百分比
	YPercent float64

	// Depth 深度（像素），值越大越靠近观察者
	Depth float64

	// Opacity 不透明度 0.0 ~ 1.0
	Opacity float64
}
