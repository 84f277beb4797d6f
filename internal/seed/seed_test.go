package seed

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/deppfellow/holocron/internal/model"
	"github.com/deppfellow/holocron/internal/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultFixtures(t *testing.T) {
	f, err := Default()
	require.NoError(t, err)

	assert.NotEmpty(t, f.Users)
	assert.NotEmpty(t, f.Characters)
	assert.NotEmpty(t, f.Planets)
	assert.Equal(t, "Luke Skywalker", f.Characters[0].Name)
	assert.Equal(t, "19BBY", f.Characters[0].BirthYear)
}

func TestParseRejectsBadDocuments(t *testing.T) {
	tests := map[string]string{
		"unknown key":        "starships:\n  - id: 1\n",
		"unknown field":      "planets:\n  - id: 1\n    name: Hoth\n    moons: 3\n",
		"missing character":  "characters:\n  - gender: male\n",
		"missing user email": "users:\n  - id: 4\n",
	}

	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(doc))
			assert.Error(t, err)
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "planets.yaml")
	require.NoError(t, os.WriteFile(path, []byte("planets:\n  - id: 7\n    name: Dagobah\n    climate: murky\n"), 0o600))

	f, err := LoadFile(path)
	require.NoError(t, err)
	require.Len(t, f.Planets, 1)
	assert.Equal(t, "murky", f.Planets[0].Climate)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestApplyIsRepeatable(t *testing.T) {
	s := testutil.NewServer(t)
	logger := zerolog.Nop()
	ctx := context.Background()

	f, err := Default()
	require.NoError(t, err)

	require.NoError(t, Apply(ctx, &logger, s.DB.DB, f))

	f.Characters[0].Name = "Commander Skywalker"
	require.NoError(t, Apply(ctx, &logger, s.DB.DB, f))

	var count int64
	require.NoError(t, s.DB.DB.Model(&model.Character{}).Count(&count).Error)
	assert.Equal(t, int64(len(f.Characters)), count)

	var luke model.Character
	require.NoError(t, s.DB.DB.First(&luke, 1).Error)
	assert.Equal(t, "Commander Skywalker", luke.Name)

	var active int64
	require.NoError(t, s.DB.DB.Model(&model.User{}).Where("is_active = ?", true).Count(&active).Error)
	assert.Equal(t, int64(1), active)
}
