// Package fileurl 提供文件路径辅助函数
package fileurl

import (
	"os"
	"path/filepath"
)

// IsExist 判断路径是否存在
func IsExist(path string) bool {
	_, err := os.Stat(path)
	return err == nil || os.IsExist(err)
}

// CreatePath creates the parent directories of a file path.
// CreatePath 创建文件路径的父级目录。
func CreatePath(path string, perm os.FileMode) error {
	dir := filepath.Dir(path)
	if dir == "" || dir == "." {
		return nil
	}
	return os.MkdirAll(dir, perm)
}
