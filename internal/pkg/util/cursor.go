package util

import (
	"time"
)

// 游标是上一页末条的 publishedAt 时间戳
const cursorLayout = time.RFC3339Nano

// EncodeCursor 将发布时间编码为游标字符串
func EncodeCursor(t time.Time) string {
	return t.UTC().Format(cursorLayout)
}

// DecodeCursor 将前端传来的游标解析为时间，空串返回 nil
func DecodeCursor(cursor string) (*time.Time, error) {
	if cursor == "" {
		return nil, nil
	}
	t, err := time.Parse(cursorLayout, cursor)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
