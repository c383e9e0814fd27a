// Package agent composes segmentation, classification, encryption and
// storage into the redact-and-archive pipeline.
package agent

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/MushroomFleet/LLM-Secrets-prototype/internal/classify"
	"github.com/MushroomFleet/LLM-Secrets-prototype/internal/crypto"
	"github.com/MushroomFleet/LLM-Secrets-prototype/internal/model"
	"github.com/MushroomFleet/LLM-Secrets-prototype/internal/segment"
	"github.com/MushroomFleet/LLM-Secrets-prototype/internal/store"
)

// Agent routes private segments of generated text into the encrypted store
// and returns the rest as public output.
type Agent struct {
	classifier *classify.Classifier
	keys       *crypto.Provider
	files      *store.FileStore
	journal    *store.Journal // nil disables journaling

	mu     sync.Mutex
	nextID int
}

// New wires an agent over the given key provider, file store and journal.
// A nil journal keeps metadata in memory only.
func New(keys *crypto.Provider, files *store.FileStore, journal *store.Journal) *Agent {
	return &Agent{
		classifier: classify.New(),
		keys:       keys,
		files:      files,
		journal:    journal,
	}
}

// Process splits text into segments, withholds the ones classified private,
// and returns the remaining segments joined with single spaces plus metadata
// for every private thought encrypted and stored.
//
// The first encrypt, save or journal failure aborts the call; files written
// before the failure are kept.
func (a *Agent) Process(ctx context.Context, text string) (string, []model.Thought, error) {
	var public, private []string
	for _, seg := range segment.Split(text) {
		if a.classifier.IsPrivate(seg) {
			private = append(private, seg)
		} else {
			public = append(public, seg)
		}
	}
	publicText := strings.Join(public, " ")

	if len(private) == 0 {
		return publicText, nil, nil
	}

	key, err := a.keys.Key()
	if err != nil {
		return "", nil, fmt.Errorf("load key: %w", err)
	}

	var runID string
	if a.journal != nil {
		runID = a.journal.NewRunID()
	}

	// Serializes the id counter and the per-second filename scheme, so
	// independent Process calls may run concurrently.
	a.mu.Lock()
	defer a.mu.Unlock()

	var thoughts []model.Thought
	for _, seg := range private {
		blob, err := crypto.Encrypt(key, []byte(seg))
		if err != nil {
			return "", nil, fmt.Errorf("encrypt thought: %w", err)
		}
		path, err := a.files.Save(blob)
		if err != nil {
			return "", nil, fmt.Errorf("store thought: %w", err)
		}

		t := model.Thought{
			ID:        a.nextID,
			Timestamp: time.Now(),
			Filepath:  path,
			SizeBytes: len(blob),
			Encrypted: true,
		}
		a.nextID++

		if a.journal != nil {
			if err := a.journal.Record(ctx, runID, t); err != nil {
				return "", nil, fmt.Errorf("journal thought: %w", err)
			}
		}
		thoughts = append(thoughts, t)
	}

	return publicText, thoughts, nil
}

// KeyInfo exposes the encryption configuration for display.
func (a *Agent) KeyInfo() model.KeyInfo {
	return a.keys.Info()
}

// StoredFiles lists the paths of all stored private thought files.
func (a *Agent) StoredFiles() ([]string, error) {
	return a.files.List()
}
