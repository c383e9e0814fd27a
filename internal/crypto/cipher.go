package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"errors"
	"fmt"
)

// IVSize is the CBC initialization vector length, prefixed to every blob.
const IVSize = aes.BlockSize

var (
	// ErrCiphertextShort is returned when a blob is too small to hold an IV
	// plus at least one cipher block.
	ErrCiphertextShort = errors.New("ciphertext too short")

	// ErrCiphertextAlign is returned when the ciphertext body is not a whole
	// number of cipher blocks.
	ErrCiphertextAlign = errors.New("ciphertext not block-aligned")

	// ErrBadPadding is returned when decrypted padding is malformed,
	// indicating a corrupt or tampered blob rather than bad configuration.
	ErrBadPadding = errors.New("invalid padding")
)

// Encrypt seals plaintext under key as IV || AES-256-CBC(PKCS#7(plaintext)),
// with a fresh random IV every call. Stateless; safe for concurrent use.
func Encrypt(key, plaintext []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("init cipher: %w", err)
	}

	iv := make([]byte, IVSize)
	if _, err := rand.Read(iv); err != nil {
		return nil, fmt.Errorf("generate iv: %w", err)
	}

	padded := pad(plaintext, aes.BlockSize)
	blob := make([]byte, IVSize+len(padded))
	copy(blob, iv)
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(blob[IVSize:], padded)
	return blob, nil
}

// Decrypt reverses Encrypt. There is no authentication tag: a corrupted blob
// yields garbage plaintext or ErrBadPadding, never a signed rejection.
func Decrypt(key, blob []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("init cipher: %w", err)
	}

	if len(blob) < IVSize+aes.BlockSize {
		return nil, ErrCiphertextShort
	}
	iv, body := blob[:IVSize], blob[IVSize:]
	if len(body)%aes.BlockSize != 0 {
		return nil, ErrCiphertextAlign
	}

	padded := make([]byte, len(body))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(padded, body)
	return unpad(padded, aes.BlockSize)
}

// pad appends PKCS#7 padding, always at least one byte, so an exact-block
// plaintext grows by a full block.
func pad(data []byte, blockSize int) []byte {
	n := blockSize - len(data)%blockSize
	padded := make([]byte, len(data)+n)
	copy(padded, data)
	for i := len(data); i < len(padded); i++ {
		padded[i] = byte(n)
	}
	return padded
}

func unpad(data []byte, blockSize int) ([]byte, error) {
	if len(data) == 0 || len(data)%blockSize != 0 {
		return nil, ErrBadPadding
	}
	n := int(data[len(data)-1])
	if n == 0 || n > blockSize {
		return nil, ErrBadPadding
	}
	for _, b := range data[len(data)-n:] {
		if int(b) != n {
			return nil, ErrBadPadding
		}
	}
	return data[:len(data)-n], nil
}
