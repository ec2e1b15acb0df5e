package util

import (
	"math/rand"
)

// GetRandomString generates a random string of the given length.
// Used for the auto-generated token signing key in the default config.
// GetRandomString 生成指定长度的随机字符串，用于默认配置中自动生成的签名密钥。
func GetRandomString(length int) string {
	const charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	b := make([]byte, length)
	for i := range b {
		b[i] = charset[rand.Intn(len(charset))]
	}
	return string(b)
}
