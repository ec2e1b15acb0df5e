package util

import (
	"strconv"
	"strings"
	"time"
)

// ParseDuration parses a duration string, supporting a 'd' (day) suffix
// on top of the standard time.ParseDuration formats. Bare numbers parse
// as seconds.
// ParseDuration 解析时间字符串，支持 'd' (天) 后缀，纯数字默认为秒。
func ParseDuration(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if strings.HasSuffix(s, "d") {
		daysStr := strings.TrimSuffix(s, "d")
		days, err := strconv.Atoi(daysStr)
		if err != nil {
			return 0, err
		}
		return time.Duration(days) * 24 * time.Hour, nil
	}
	if _, err := strconv.Atoi(s); err == nil {
		s += "s"
	}
	return time.ParseDuration(s)
}
