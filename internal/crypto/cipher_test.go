package crypto

import (
	"bytes"
	"crypto/aes"
	"errors"
	"testing"
)

func testKey(t *testing.T) []byte {
	t.Helper()
	key := make([]byte, KeySize)
	for i := range key {
		key[i] = byte(i)
	}
	return key
}

func TestEncryptDecrypt_RoundTrip(t *testing.T) {
	key := testKey(t)

	payloads := [][]byte{
		[]byte("a short private thought"),
		{},                            // empty plaintext still pads to one block
		bytes.Repeat([]byte{42}, 16),  // exactly one block
		bytes.Repeat([]byte{7}, 4096), // multi-block
	}
	for _, p := range payloads {
		blob, err := Encrypt(key, p)
		if err != nil {
			t.Fatalf("encrypt: %v", err)
		}
		if len(blob)%aes.BlockSize != 0 || len(blob) < IVSize+aes.BlockSize {
			t.Errorf("blob length %d not IV plus whole blocks", len(blob))
		}

		got, err := Decrypt(key, blob)
		if err != nil {
			t.Fatalf("decrypt: %v", err)
		}
		if !bytes.Equal(got, p) {
			t.Errorf("round trip mismatch: got %d bytes, want %d", len(got), len(p))
		}
	}
}

func TestEncrypt_FreshIVPerCall(t *testing.T) {
	key := testKey(t)
	plaintext := []byte("same plaintext twice")

	a, err := Encrypt(key, plaintext)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Encrypt(key, plaintext)
	if err != nil {
		t.Fatal(err)
	}

	if bytes.Equal(a, b) {
		t.Error("two encryptions of the same plaintext must differ")
	}
	if bytes.Equal(a[:IVSize], b[:IVSize]) {
		t.Error("IV must be fresh per call")
	}

	for _, blob := range [][]byte{a, b} {
		got, err := Decrypt(key, blob)
		if err != nil {
			t.Fatalf("decrypt: %v", err)
		}
		if !bytes.Equal(got, plaintext) {
			t.Error("both blobs must decrypt to the original plaintext")
		}
	}
}

func TestDecrypt_TruncatedBlob(t *testing.T) {
	key := testKey(t)
	if _, err := Decrypt(key, make([]byte, IVSize)); !errors.Is(err, ErrCiphertextShort) {
		t.Errorf("expected ErrCiphertextShort, got %v", err)
	}
}

func TestDecrypt_MisalignedBlob(t *testing.T) {
	key := testKey(t)
	blob, err := Encrypt(key, []byte("payload"))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := Decrypt(key, blob[:len(blob)-1]); !errors.Is(err, ErrCiphertextAlign) {
		t.Errorf("expected ErrCiphertextAlign, got %v", err)
	}
}

func TestDecrypt_CorruptLastBlock(t *testing.T) {
	key := testKey(t)
	blob, err := Encrypt(key, []byte("payload"))
	if err != nil {
		t.Fatal(err)
	}

	// Flipping bits in the final block scrambles the padding. Without an
	// authentication tag this surfaces as ErrBadPadding or garbage, never a
	// clean rejection.
	blob[len(blob)-1] ^= 0xff
	got, err := Decrypt(key, blob)
	if err == nil && bytes.Equal(got, []byte("payload")) {
		t.Error("corrupt blob must not decrypt to the original plaintext")
	}
	if err != nil && !errors.Is(err, ErrBadPadding) {
		t.Errorf("expected ErrBadPadding on corruption, got %v", err)
	}
}

func TestPadding_ExactBlockGrowsByFullBlock(t *testing.T) {
	padded := pad(bytes.Repeat([]byte{1}, aes.BlockSize), aes.BlockSize)
	if len(padded) != 2*aes.BlockSize {
		t.Errorf("expected %d bytes, got %d", 2*aes.BlockSize, len(padded))
	}
	got, err := unpad(padded, aes.BlockSize)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != aes.BlockSize {
		t.Errorf("unpad lost data: %d bytes", len(got))
	}
}
