// Package model 定义数据库模型
package model

import (
	"gorm.io/gorm"
)

func AutoMigrate(db *gorm.DB, key string) error {
	switch key {

	case "Note":
		return db.AutoMigrate(Note{})

	case "User":
		return db.AutoMigrate(User{})
	}
	return nil
}

// AutoMigrateAll 迁移全部模型
func AutoMigrateAll(db *gorm.DB) error {
	for _, key := range []string{"Note", "User"} {
		if err := AutoMigrate(db, key); err != nil {
			return err
		}
	}
	return nil
}
