// Package spaced_repetition implements the proficiency state machine and the
// review scheduling backoff for the flashcard progress engine.
package spaced_repetition

import "github.com/example/vbcards/pkg/models"

// Classification thresholds. Accuracy is correct/total, streak is the number
// of consecutive correct answers since the last miss.
const (
	masteredAccuracy = 0.90
	masteredStreak   = 5
	masteredAttempts = 10

	familiarAccuracy = 0.75
	familiarStreak   = 3
	familiarAttempts = 6

	learningAttempts = 2
)

// Classify maps attempt counters to a proficiency level. The function is
// memoryless: it is re-evaluated from the counters after every attempt, so an
// incorrect answer that zeroes the streak can demote a word from familiar or
// mastered back to learning.
func Classify(correctCount, incorrectCount, correctStreak int) models.ProficiencyLevel {
	totalAttempts := correctCount + incorrectCount
	accuracy := 0.0
	if totalAttempts > 0 {
		accuracy = float64(correctCount) / float64(totalAttempts)
	}

	// Checked top-down; first matching tier wins.
	if accuracy >= masteredAccuracy && correctStreak >= masteredStreak && totalAttempts >= masteredAttempts {
		return models.ProficiencyMastered
	}
	if accuracy >= familiarAccuracy && correctStreak >= familiarStreak && totalAttempts >= familiarAttempts {
		return models.ProficiencyFamiliar
	}
	if totalAttempts >= learningAttempts {
		return models.ProficiencyLearning
	}
	return models.ProficiencyNew
}
