package systems

import (
	"github.com/gonewx/carousel/pkg/components"
	"github.com/gonewx/carousel/pkg/config"
)

// SlideLayout 将位置偏移映射为视觉变换（纯函数）
//
//	YPercent = YBasePercent + YStepPercent * offset   （默认 -15 + 15*offset）
//	Depth    = DepthStep * offset                     （默认 15*offset）
//	Opacity  = 0（offset < 0）否则 1
//
// 每往后一张，卡片更低、更靠近观察者；offset 0 位于基线。
// 调用方可以在具体切换中覆盖 Opacity（如后退时的尾部暂存位）。
func SlideLayout(offset int, p config.LayoutParams) components.SlideTransformComponent {
	o := float64(offset)
	opacity := 1.0
	if offset < 0 {
		opacity = 0
	}
	return components.SlideTransformComponent{
		YPercent: p.YBasePercent + p.YStepPercent*o,
		Depth:    p.DepthStep * o,
		Opacity:  opacity,
	}
}

// transformProps 生成把 tf 补间到 target 的属性列表
func transformProps(tf *components.SlideTransformComponent, target components.SlideTransformComponent) []TweenProp {
	return []TweenProp{
		{Target: &tf.YPercent, To: target.YPercent},
		{Target: &tf.Depth, To: target.Depth},
		{Target: &tf.Opacity, To: target.Opacity},
	}
}
