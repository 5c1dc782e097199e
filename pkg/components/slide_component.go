package components

// SlideComponent 标记一个已挂载的幻灯片实体
// 实体在切换开始前创建，偏移超出可见窗口后在其动画完成回调中销毁
type SlideComponent struct {
	// DescriptorIndex 绑定的数据集索引（创建时确定，之后不变）
	DescriptorIndex int

	// Offset 相对当前最前幻灯片的位置偏移
	// 静止时为 0..windowSize-1；切换过程中 -1 和 windowSize 为暂存位
	Offset int
}
