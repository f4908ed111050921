package stt

import (
	"context"
	"sync"
)

// MockTranscriber is a deterministic Transcriber for testing. It returns
// canned transcripts in FIFO order and records the audio it received.
type MockTranscriber struct {
	mu          sync.Mutex
	transcripts []string
	Err         error
	Calls       [][]byte
}

// NewMockTranscriber creates a MockTranscriber with the given transcripts.
func NewMockTranscriber(transcripts ...string) *MockTranscriber {
	return &MockTranscriber{transcripts: transcripts}
}

func (m *MockTranscriber) Transcribe(_ context.Context, audio []byte) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, audio)

	if m.Err != nil {
		return "", m.Err
	}
	if len(m.transcripts) == 0 {
		return "", &ErrTranscription{Err: nil}
	}

	text := m.transcripts[0]
	m.transcripts = m.transcripts[1:]
	return text, nil
}
