package util

import (
	"regexp"

	"github.com/gosimple/slug"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9-]+$`)

// IsValidSlug 校验 slug 是否只含小写字母、数字与连字符
func IsValidSlug(s string) bool {
	return slugPattern.MatchString(s)
}

// MakeSlug 从名称生成 URL 安全的 slug
func MakeSlug(name string) string {
	return slug.Make(name)
}

// IsNumericID 判断标识符是否为纯数字主键格式，
// 用于区分按 ID 还是按 slug 查询详情
func IsNumericID(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
