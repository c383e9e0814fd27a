// Package crypto owns the symmetric key lifecycle and the AES-256-CBC
// encryption of private thoughts.
package crypto

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/MushroomFleet/LLM-Secrets-prototype/internal/model"
)

// KeySize is the AES-256 key length in bytes.
const KeySize = 32

// Algorithm names the cipher configuration for display.
const Algorithm = "AES-256-CBC"

// ErrKeyLength is returned when an existing key file decodes to the wrong
// number of bytes. The provider never substitutes a fresh key in that case.
var ErrKeyLength = fmt.Errorf("key file must decode to exactly %d bytes", KeySize)

// Provider loads the key from disk on first use, generating and persisting
// one if the file is absent. The loaded key is cached for the process
// lifetime; deleting or replacing the file afterwards has no effect.
type Provider struct {
	path string

	once sync.Once
	key  []byte
	err  error
}

// NewProvider creates a provider for the key file at path.
func NewProvider(path string) *Provider {
	return &Provider{path: path}
}

// Key returns the symmetric key, loading or creating the key file on the
// first call.
func (p *Provider) Key() ([]byte, error) {
	p.once.Do(func() {
		p.key, p.err = p.loadOrCreate()
	})
	return p.key, p.err
}

// Info returns display metadata about the key configuration.
func (p *Provider) Info() model.KeyInfo {
	return model.KeyInfo{
		Algorithm:   Algorithm,
		KeySizeBits: KeySize * 8,
		KeyFile:     p.path,
	}
}

func (p *Provider) loadOrCreate() ([]byte, error) {
	data, err := os.ReadFile(p.path)
	if err == nil {
		key, decErr := base64.StdEncoding.DecodeString(strings.TrimSpace(string(data)))
		if decErr != nil {
			return nil, fmt.Errorf("decode key file %s: %w", p.path, decErr)
		}
		if len(key) != KeySize {
			return nil, fmt.Errorf("key file %s: %w (got %d)", p.path, ErrKeyLength, len(key))
		}
		return key, nil
	}
	if !os.IsNotExist(err) {
		return nil, fmt.Errorf("read key file %s: %w", p.path, err)
	}

	key := make([]byte, KeySize)
	if _, err := rand.Read(key); err != nil {
		return nil, fmt.Errorf("generate key: %w", err)
	}
	encoded := base64.StdEncoding.EncodeToString(key)
	if err := os.WriteFile(p.path, []byte(encoded), 0o600); err != nil {
		return nil, fmt.Errorf("write key file %s: %w", p.path, err)
	}
	return key, nil
}
