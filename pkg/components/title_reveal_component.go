package components

// WordHandle 标题中的一个单词，可独立动画
type WordHandle struct {
	Text string

	// YPercent 单词相对行框的纵向偏移（行高百分比）
	// 100 表示完全位于遮罩下方（不可见），0 表示就位
	YPercent float64
}

// TitleRevealComponent 幻灯片标题的逐词显示状态
// 由拆词工具生成，归所属幻灯片实体独占
type TitleRevealComponent struct {
	Words []WordHandle
}

// Revealed 检查所有单词是否已就位
func (c *TitleRevealComponent) Revealed() bool {
	for i := range c.Words {
		if c.Words[i].YPercent != 0 {
			return false
		}
	}
	return true
}
