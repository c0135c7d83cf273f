package db

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"auth_backend/internal/config"
	"auth_backend/internal/feature/auth/domain/entity"
)

// Open は設定に応じたデータベース接続を確立し、スキーマを初期化します。
// 起動に失敗した場合は復旧不能としてプロセスを終了します。
func Open(cfg config.Config) *gorm.DB {
	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case "postgres":
		dialector = postgres.Open(cfg.DBDSN)
	default:
		// sqlite: データディレクトリを作成し、WALモードで開く
		if dir := filepath.Dir(cfg.DBPath); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				log.Fatalf("failed to create data directory: %v", err)
			}
		}
		dialector = sqlite.Open(fmt.Sprintf("file:%s?_journal_mode=WAL", cfg.DBPath))
	}

	var (
		db  *gorm.DB
		err error
	)

	deadline := time.Now().Add(60 * time.Second)
	for {
		db, err = gorm.Open(dialector, &gorm.Config{})
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			log.Fatalf("DB connect failed after 60s: %v", err)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(3 * time.Second)
	}

	// スキーマ初期化は冪等で、毎回の起動時に安全に実行できる。
	// usersテーブル本体とemail・is_activeのインデックスを作成する。
	if err := db.AutoMigrate(&entity.User{}); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	return db
}
