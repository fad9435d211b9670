package models

// ExampleSentence is a short usage example attached to a vocabulary word.
type ExampleSentence struct {
	English string `json:"english"`
	Chinese string `json:"chinese"`
}

// VocabularyWord is one entry in a level manifest. Vocabulary content is
// read-only reference data; the progress engine never mutates it.
type VocabularyWord struct {
	ID       int               `json:"id"`
	Word     string            `json:"word"`
	Meaning  string            `json:"meaning"`
	Level    int               `json:"level"`
	Filename string            `json:"filename"`
	Filepath string            `json:"filepath"`
	Success  bool              `json:"success"`
	Examples []ExampleSentence `json:"examples,omitempty"`
}

// LevelManifest describes one vocabulary level and its word list.
type LevelManifest struct {
	Level      int              `json:"level"`
	LevelName  string           `json:"levelName"`
	TotalWords int              `json:"totalWords"`
	Results    []VocabularyWord `json:"results"`
}

// LevelMetadata is the manifest header without the word list.
type LevelMetadata struct {
	Level      int    `json:"level"`
	LevelName  string `json:"levelName"`
	TotalWords int    `json:"totalWords"`
}

// FlashCard is the card-facing projection of a vocabulary word.
type FlashCard struct {
	ID        int               `json:"id"`
	Word      string            `json:"word"`
	Meaning   string            `json:"meaning"`
	ImagePath string            `json:"image_path"`
	Level     int               `json:"level"`
	Examples  []ExampleSentence `json:"examples,omitempty"`
}
