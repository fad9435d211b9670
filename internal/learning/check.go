package learning

import (
	"github.com/example/vbcards/internal/textnorm"
	"github.com/example/vbcards/pkg/models"
)

// CheckAnswer resolves whether an answer matches the target word under the
// comparison policy of its input method: speech transcripts are compared
// loosely because recognition output is noisy, typed answers strictly so
// correct spelling and capitalization are reinforced.
func CheckAnswer(input, target string, method models.InputMethod) (bool, error) {
	switch method {
	case models.InputSpeech:
		return textnorm.NormalizeLoose(input) == textnorm.NormalizeLoose(target), nil
	case models.InputKeyboard:
		return textnorm.CompareStrict(input, target), nil
	default:
		return false, models.ErrInvalidInputMethod
	}
}
