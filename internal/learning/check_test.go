package learning

import (
	"errors"
	"testing"

	"github.com/example/vbcards/pkg/models"
)

func TestCheckAnswer(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		target string
		method models.InputMethod
		want   bool
	}{
		{"speech ignores case", "Apple", "apple", models.InputSpeech, true},
		{"speech ignores spacing", "t h r e e", "three", models.InputSpeech, true},
		{"speech maps digits", "3", "three", models.InputSpeech, true},
		{"speech still requires the word", "four", "three", models.InputSpeech, false},
		{"keyboard exact match", "apple", "apple", models.InputKeyboard, true},
		{"keyboard trims whitespace", " apple ", "apple", models.InputKeyboard, true},
		{"keyboard is case sensitive", "Apple", "apple", models.InputKeyboard, false},
		{"keyboard rejects digits for words", "3", "three", models.InputKeyboard, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CheckAnswer(tt.input, tt.target, tt.method)
			if err != nil {
				t.Fatalf("CheckAnswer returned error: %v", err)
			}
			if got != tt.want {
				t.Errorf("CheckAnswer(%q, %q, %s) = %v, want %v", tt.input, tt.target, tt.method, got, tt.want)
			}
		})
	}
}

func TestCheckAnswerInvalidMethod(t *testing.T) {
	_, err := CheckAnswer("a", "a", models.InputMethod("gesture"))
	if !errors.Is(err, models.ErrInvalidInputMethod) {
		t.Errorf("got %v, want ErrInvalidInputMethod", err)
	}
}
