package service

import (
	"html"
	"regexp"
	"strings"
)

var tagPattern = regexp.MustCompile(`<[^>]*>`)

// SanitizeText 清理自由文本：去首尾空白、去除标签、HTML 转义
// 类别名称和支出描述入库前都经过这里
func SanitizeText(s string) string {
	s = strings.TrimSpace(s)
	s = tagPattern.ReplaceAllString(s, "")
	return html.EscapeString(strings.TrimSpace(s))
}
