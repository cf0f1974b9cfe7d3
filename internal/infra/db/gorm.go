package db

import (
	"foodapp/internal/config"
	"foodapp/internal/domain/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect はDBに接続して *gorm.DB を返す。
func Connect(cfg config.Config) (*gorm.DB, error) {
	return gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		// unique違反などをgorm.ErrDuplicatedKeyに変換する
		TranslateError: true,
		Logger:         logger.Default.LogMode(gormLogLevel(cfg.LogLevel)),
	})
}

// 参照される側から順に作る
func Models() []interface{} {
	return []interface{}{
		&model.User{},
		&model.Food{},
		&model.PromoCode{},
		&model.Order{},
		&model.OrderItem{},
		&model.AuditLog{},
	}
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}

func gormLogLevel(level string) logger.LogLevel {
	switch level {
	case "debug":
		return logger.Info
	case "error":
		return logger.Error
	default:
		return logger.Warn
	}
}
