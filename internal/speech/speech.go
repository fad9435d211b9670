// Package speech defines the capability interfaces for speech recognition
// and synthesis. The engine bindings themselves live in the host UI; the
// core only needs the contracts and a graceful fallback when the host has
// neither.
package speech

import (
	"context"
	"errors"
)

// ErrUnavailable signals that the host provides no speech capability.
// Callers treat it as a mode switch to keyboard-only input, not as a
// failure.
var ErrUnavailable = errors.New("speech capability unavailable")

// Recognizer converts microphone input into a stream of transcripts.
// The channel is closed when recognition stops or ctx is cancelled.
type Recognizer interface {
	Recognize(ctx context.Context) (<-chan string, error)
}

// Speaker pronounces text in the given BCP 47 language tag. Fire-and-forget;
// cancelling ctx stops playback.
type Speaker interface {
	Speak(ctx context.Context, text, languageTag string) error
}

// Unavailable is the fallback for hosts without speech support.
type Unavailable struct{}

func (Unavailable) Recognize(context.Context) (<-chan string, error) {
	return nil, ErrUnavailable
}

func (Unavailable) Speak(context.Context, string, string) error {
	return ErrUnavailable
}

// Supported reports whether a recognizer is actually usable.
func Supported(r Recognizer) bool {
	if r == nil {
		return false
	}
	_, unsupported := r.(Unavailable)
	return !unsupported
}
