package util

import (
	"golang.org/x/crypto/bcrypt"
)

// bcrypt cost used for derived credentials
// 派生凭证使用的 bcrypt 代价因子
const passwordHashCost = 10

// GeneratePasswordHash derives a bcrypt hash from a plaintext password.
// Length rules are checked by the caller before hashing, since the hash
// length does not reflect the plaintext length.
// GeneratePasswordHash 从明文密码派生 bcrypt 哈希。
// 长度规则由调用方在哈希前检查，因为哈希长度不反映明文长度。
func GeneratePasswordHash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), passwordHashCost)
	return string(bytes), err
}

// CheckPasswordHash verifies whether a password matches a stored hash.
// CheckPasswordHash 验证密码与哈希值是否匹配。
func CheckPasswordHash(hash, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
