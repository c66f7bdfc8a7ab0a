package store

import (
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"
)

const (
	// The current supported version of the sealed blob format stored on disk.
	sessionFormatVersion = 1
)

var (
	// Returned when the key is wrong or the ciphertext has been modified / corrupted.
	errCorruptSession = errors.New("session file corrupted or key mismatch")
)

// envelope is the on-disk JSON structure holding the ciphertext.
type envelope struct {
	V      int    `json:"v"`
	Nonce  []byte `json:"nonce"`
	Cipher []byte `json:"cipher"`
}

// seal encrypts raw under key into a JSON envelope.
func seal(key, raw []byte) ([]byte, error) {
	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, err
	}
	nonce := make([]byte, chacha20poly1305.NonceSizeX)
	if _, err := rand.Read(nonce); err != nil {
		return nil, err
	}
	ct := aead.Seal(nil, nonce, raw, nil)

	return json.Marshal(envelope{
		V:      sessionFormatVersion,
		Nonce:  nonce,
		Cipher: ct,
	})
}

// open decrypts a JSON envelope produced by seal.
func open(key, blob []byte) ([]byte, error) {
	var env envelope
	if err := json.Unmarshal(blob, &env); err != nil {
		return nil, errCorruptSession
	}
	if env.V > sessionFormatVersion {
		return nil, fmt.Errorf("unsupported session format version %d", env.V)
	}
	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, err
	}
	if len(env.Nonce) != chacha20poly1305.NonceSizeX {
		return nil, errCorruptSession
	}
	pt, err := aead.Open(nil, env.Nonce, env.Cipher, nil)
	if err != nil {
		return nil, errCorruptSession
	}
	return pt, nil
}
