package utils

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// SplitWords 将标题拆分为逐词动画使用的单词列表
//
// 拆分规则:
//   - 按 Unicode 词边界（UAX #29）遍历，空白片段作为分隔符丢弃
//   - 标点与相邻单词合并（"Don't-stop" 保持为一个单词）
//   - 汉字/假名等表意字符每个片段单独成词（这类文本没有空格分隔）
//
// 返回的切片顺序即从左到右的显示顺序；空白标题返回 nil
func SplitWords(title string) []string {
	var (
		words   []string
		current strings.Builder
	)

	flush := func() {
		if current.Len() > 0 {
			words = append(words, current.String())
			current.Reset()
		}
	}

	state := -1
	rest := title
	for len(rest) > 0 {
		var segment string
		segment, rest, state = uniseg.FirstWordInString(rest, state)

		switch {
		case isWhitespace(segment):
			flush()
		case isIdeographic(segment):
			flush()
			words = append(words, segment)
		default:
			current.WriteString(segment)
		}
	}
	flush()

	return words
}

// isWhitespace 判断片段是否全部由空白字符组成
func isWhitespace(segment string) bool {
	return strings.TrimSpace(segment) == ""
}

// isIdeographic 判断片段是否以表意字符开头
func isIdeographic(segment string) bool {
	r, _ := utf8.DecodeRuneInString(segment)
	return unicode.In(r, unicode.Han, unicode.Hiragana, unicode.Katakana)
}
