package vocab

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/vbcards/pkg/models"
)

func writeManifest(t *testing.T, dir string, manifest models.LevelManifest) {
	t.Helper()
	data, err := json.Marshal(manifest)
	require.NoError(t, err)
	path := filepath.Join(dir, ManifestFilename(manifest.Level))
	require.NoError(t, os.WriteFile(path, data, 0o644))
}

func TestLoaderLevel(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, models.LevelManifest{
		Level:      1,
		LevelName:  "Basics",
		TotalWords: 2,
		Results: []models.VocabularyWord{
			{ID: 1, Word: "apple", Meaning: "苹果", Level: 1, Success: true},
			{ID: 2, Word: "banana", Meaning: "香蕉", Level: 1, Success: true},
		},
	})

	loader := NewLoader(dir, 18)
	manifest, err := loader.Level(1)
	require.NoError(t, err)
	assert.Equal(t, "Basics", manifest.LevelName)
	assert.Len(t, manifest.Results, 2)

	_, err = loader.Level(5)
	assert.Error(t, err, "missing manifest is an error for a direct lookup")
}

func TestLoaderAllLevelsSkipsMissing(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, models.LevelManifest{Level: 1, LevelName: "Basics", TotalWords: 10})
	writeManifest(t, dir, models.LevelManifest{Level: 3, LevelName: "Food", TotalWords: 20})

	loader := NewLoader(dir, 5)
	levels, err := loader.AllLevels()
	require.NoError(t, err)
	require.Len(t, levels, 2)
	assert.Equal(t, 1, levels[0].Level)
	assert.Equal(t, 3, levels[1].Level)
	assert.Equal(t, 20, levels[1].TotalWords)
}

func TestLoaderCardsFiltersFailedImports(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, models.LevelManifest{
		Level:      2,
		TotalWords: 3,
		Results: []models.VocabularyWord{
			{ID: 1, Word: "cat", Meaning: "猫", Level: 2, Success: true, Filepath: "images/level_2/cat.png"},
			{ID: 2, Word: "dog", Meaning: "狗", Level: 2, Success: false},
			{ID: 3, Word: "fox", Meaning: "狐狸", Level: 2, Success: true},
		},
	})

	loader := NewLoader(dir, 18)
	cards, err := loader.Cards(2)
	require.NoError(t, err)
	require.Len(t, cards, 2)
	assert.Equal(t, "cat", cards[0].Word)
	assert.Equal(t, "images/level_2/cat.png", cards[0].ImagePath)
	assert.Equal(t, "fox", cards[1].Word)
}
