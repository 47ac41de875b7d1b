package migration

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"ticketsystem/internal/shared/logger"
)

// Generator creates new goose migration scripts.
type Generator struct {
	scriptsPath string
	logger      logger.Interface
}

func NewGenerator(scriptsPath string) *Generator {
	return &Generator{
		scriptsPath: scriptsPath,
		logger:      logger.NewLogger().With("component", "migration.generator"),
	}
}

// CreateMigration writes a timestamped goose script with empty Up and Down
// sections.
func (g *Generator) CreateMigration(name string) error {
	g.logger.Infow("creating new migration", "name", name)

	timestamp := time.Now().Format("20060102150405")
	fileName := fmt.Sprintf("%s_%s.sql", timestamp, name)
	filePath := filepath.Join(g.scriptsPath, fileName)

	if err := os.MkdirAll(g.scriptsPath, 0o755); err != nil {
		return fmt.Errorf("failed to create scripts directory: %w", err)
	}

	content := fmt.Sprintf(`-- +goose Up
-- Migration: %s
-- Created: %s


-- +goose Down

`, name, time.Now().Format(time.RFC3339))

	if err := os.WriteFile(filePath, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to create migration file: %w", err)
	}

	g.logger.Infow("migration file created successfully", "file", filePath)
	return nil
}
