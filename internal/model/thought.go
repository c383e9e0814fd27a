// Package model defines the core thought data types.
package model

import "time"

// Thought describes one private segment that was encrypted and stored.
// It never carries plaintext or key material.
type Thought struct {
	ID        int       `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Filepath  string    `json:"filepath"`
	SizeBytes int       `json:"size_bytes"`
	Encrypted bool      `json:"encrypted"`
}

// KeyInfo describes the encryption configuration without exposing the key.
type KeyInfo struct {
	Algorithm   string `json:"algorithm"`
	KeySizeBits int    `json:"key_size_bits"`
	KeyFile     string `json:"key_file"`
}

// JournalEntry is a persisted Thought record with its journal identity.
type JournalEntry struct {
	ID         string    `json:"id"`
	RunID      string    `json:"run_id"`
	Seq        int       `json:"seq"`
	CapturedAt time.Time `json:"captured_at"`
	Filepath   string    `json:"filepath"`
	SizeBytes  int       `json:"size_bytes"`
	Encrypted  bool      `json:"encrypted"`
}
