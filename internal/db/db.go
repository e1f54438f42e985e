package db

import (
	_ "embed"
	"fmt"

	"github.com/devaqn/projeto-pet-shop/internal/logger"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

//go:embed schema.sql
var schemaSQL string

// NewDB abre o banco sqlite embutido e garante o schema
// (script idempotente, CREATE TABLE IF NOT EXISTS).
func NewDB(path string) *gorm.DB {
	dsn := fmt.Sprintf("%s?_foreign_keys=on", path)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		logger.Sugar.Fatalf("failed to open database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Sugar.Fatalf("failed to get sql.DB: %v", err)
	}

	// sqlite admite um único escritor; uma conexão serializa os cadastros
	sqlDB.SetMaxOpenConns(1)

	if err := db.Exec(schemaSQL).Error; err != nil {
		logger.Sugar.Fatalf("failed to bootstrap schema: %v", err)
	}

	logger.Sugar.Info("Banco de dados inicializado com sucesso")

	return db
}

// Close libera o handle do sqlite; chamado no shutdown.
func Close(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		return
	}
	_ = sqlDB.Close()
}
