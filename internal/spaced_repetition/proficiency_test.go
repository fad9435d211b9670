package spaced_repetition

import (
	"testing"

	"github.com/example/vbcards/pkg/models"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name      string
		correct   int
		incorrect int
		streak    int
		want      models.ProficiencyLevel
	}{
		{"no attempts", 0, 0, 0, models.ProficiencyNew},
		{"single attempt stays new", 1, 0, 1, models.ProficiencyNew},
		{"two attempts is learning", 1, 1, 1, models.ProficiencyLearning},
		{"two misses is learning", 0, 2, 0, models.ProficiencyLearning},
		{"six correct in a row is familiar", 6, 0, 6, models.ProficiencyFamiliar},
		{"familiar boundary", 5, 1, 3, models.ProficiencyFamiliar}, // 5/6 ≈ 0.83
		{"accuracy too low for familiar", 4, 2, 4, models.ProficiencyLearning},
		{"streak too short for familiar", 6, 1, 2, models.ProficiencyLearning},
		{"nine correct still familiar", 9, 0, 9, models.ProficiencyFamiliar},
		{"ten correct is mastered", 10, 0, 10, models.ProficiencyMastered},
		{"mastered boundary", 9, 1, 5, models.ProficiencyMastered}, // 9/10 = 0.90
		{"accuracy below mastered", 8, 2, 8, models.ProficiencyFamiliar},
		{"miss demotes a mastered word", 10, 1, 0, models.ProficiencyLearning},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.correct, tt.incorrect, tt.streak)
			if got != tt.want {
				t.Errorf("Classify(%d, %d, %d) = %s, want %s", tt.correct, tt.incorrect, tt.streak, got, tt.want)
			}
		})
	}
}

// A word answered correctly from scratch should climb new -> learning ->
// familiar -> mastered, reaching familiar on the sixth attempt and mastered
// only at the tenth.
func TestClassifyPromotionSequence(t *testing.T) {
	var got []models.ProficiencyLevel
	for correct := 1; correct <= 10; correct++ {
		got = append(got, Classify(correct, 0, correct))
	}

	want := []models.ProficiencyLevel{
		models.ProficiencyNew,      // 1
		models.ProficiencyLearning, // 2
		models.ProficiencyLearning, // 3
		models.ProficiencyLearning, // 4
		models.ProficiencyLearning, // 5
		models.ProficiencyFamiliar, // 6
		models.ProficiencyFamiliar, // 7
		models.ProficiencyFamiliar, // 8
		models.ProficiencyFamiliar, // 9
		models.ProficiencyMastered, // 10
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("after %d correct answers: got %s, want %s", i+1, got[i], want[i])
		}
	}
}
