// Package stt provides speech-to-text transcription for voice input.
package stt

import (
	"context"
	"fmt"
)

// Transcriber converts recorded audio into text.
type Transcriber interface {
	// Transcribe converts one complete audio recording into text.
	// The audio bytes are a finished recording, not a stream.
	Transcribe(ctx context.Context, audio []byte) (string, error)
}

// ErrTranscription wraps failures from the transcription backend.
type ErrTranscription struct {
	Err error
}

func (e *ErrTranscription) Error() string {
	return fmt.Sprintf("transcription failed: %v", e.Err)
}

func (e *ErrTranscription) Unwrap() error {
	return e.Err
}
