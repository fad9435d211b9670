// Package vocab loads the static vocabulary content: one JSON manifest per
// level, produced by the importer. The content is read-only reference data;
// the progress engine never writes to it.
package vocab

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/example/vbcards/pkg/models"
)

// ManifestFilename returns the manifest file name for a level.
func ManifestFilename(level int) string {
	return fmt.Sprintf("level_%d_manifest.json", level)
}

// Loader reads level manifests from the data directory.
type Loader struct {
	dir      string
	maxLevel int
}

// NewLoader creates a loader rooted at dir, scanning levels 1..maxLevel.
func NewLoader(dir string, maxLevel int) *Loader {
	return &Loader{dir: dir, maxLevel: maxLevel}
}

// Level reads the manifest for one level.
func (l *Loader) Level(level int) (*models.LevelManifest, error) {
	path := filepath.Join(l.dir, ManifestFilename(level))
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load manifest for level %d: %w", level, err)
	}

	var manifest models.LevelManifest
	if err := json.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("failed to parse manifest for level %d: %w", level, err)
	}
	return &manifest, nil
}

// AllLevels returns metadata for every level with a readable manifest.
// Missing manifests are skipped rather than treated as errors, so a partial
// content install still works.
func (l *Loader) AllLevels() ([]models.LevelMetadata, error) {
	var levels []models.LevelMetadata
	for i := 1; i <= l.maxLevel; i++ {
		manifest, err := l.Level(i)
		if err != nil {
			continue
		}
		levels = append(levels, models.LevelMetadata{
			Level:      manifest.Level,
			LevelName:  manifest.LevelName,
			TotalWords: manifest.TotalWords,
		})
	}
	return levels, nil
}

// Cards projects a level's successfully imported words into flashcards.
func (l *Loader) Cards(level int) ([]models.FlashCard, error) {
	manifest, err := l.Level(level)
	if err != nil {
		return nil, err
	}

	cards := make([]models.FlashCard, 0, len(manifest.Results))
	for _, w := range manifest.Results {
		if !w.Success {
			continue
		}
		cards = append(cards, models.FlashCard{
			ID:        w.ID,
			Word:      w.Word,
			Meaning:   w.Meaning,
			ImagePath: w.Filepath,
			Level:     w.Level,
			Examples:  w.Examples,
		})
	}
	return cards, nil
}
