// Package seed loads catalog fixtures (users, characters and planets) from
// YAML and upserts them, so a fresh database has something to serve.
package seed

import (
	"context"
	_ "embed"
	"fmt"
	"os"

	"github.com/deppfellow/holocron/internal/model"
	"github.com/goccy/go-yaml"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:embed data/holocron.yaml
var defaultFixtures []byte

// Fixtures is the document layout of a seed file.
type Fixtures struct {
	Users      []model.User      `yaml:"users"`
	Characters []model.Character `yaml:"characters"`
	Planets    []model.Planet    `yaml:"planets"`
}

// Default returns the fixtures bundled with the binary.
func Default() (*Fixtures, error) {
	return Parse(defaultFixtures)
}

// LoadFile reads and parses the fixtures at path.
func LoadFile(path string) (*Fixtures, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a fixtures document. Unknown keys are rejected so typos in
// hand-written files surface instead of silently seeding empty columns.
func Parse(data []byte) (*Fixtures, error) {
	var f Fixtures
	if err := yaml.UnmarshalWithOptions(data, &f, yaml.Strict()); err != nil {
		return nil, fmt.Errorf("failed to parse seed fixtures: %w", err)
	}

	for i, u := range f.Users {
		if u.ID == 0 || u.Email == "" {
			return nil, fmt.Errorf("user #%d: id and email are required", i+1)
		}
	}
	for i, c := range f.Characters {
		if c.ID == 0 || c.Name == "" {
			return nil, fmt.Errorf("character #%d: id and name are required", i+1)
		}
	}
	for i, p := range f.Planets {
		if p.ID == 0 || p.Name == "" {
			return nil, fmt.Errorf("planet #%d: id and name are required", i+1)
		}
	}

	return &f, nil
}

// Apply upserts the fixtures by primary key in one transaction; rows that
// already exist are overwritten, so seeding is repeatable.
func Apply(ctx context.Context, logger *zerolog.Logger, db *gorm.DB, f *Fixtures) error {
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		upsert := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		})

		if len(f.Users) > 0 {
			if err := upsert.Create(&f.Users).Error; err != nil {
				return fmt.Errorf("failed to seed users: %w", err)
			}
		}
		if len(f.Characters) > 0 {
			if err := upsert.Create(&f.Characters).Error; err != nil {
				return fmt.Errorf("failed to seed characters: %w", err)
			}
		}
		if len(f.Planets) > 0 {
			if err := upsert.Create(&f.Planets).Error; err != nil {
				return fmt.Errorf("failed to seed planets: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	logger.Info().
		Int("users", len(f.Users)).
		Int("characters", len(f.Characters)).
		Int("planets", len(f.Planets)).
		Msg("seeded catalog")

	return nil
}
