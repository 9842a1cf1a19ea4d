package store

import (
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/scrypt"
)

const (
	// The current supported version of the sealed blob format stored on disk.
	sealedFormatVersion = 1
)

// ErrWrongPassphrase is returned when the passphrase is incorrect or the
// ciphertext has been modified or corrupted.
var ErrWrongPassphrase = errors.New("wrong passphrase or corrupted preferences")

// ScryptParams are the key-derivation cost parameters.
type ScryptParams struct {
	N, R, P int
}

// DefaultScryptParams is the interactive-login cost recommended for scrypt.
var DefaultScryptParams = ScryptParams{N: 1 << 15, R: 8, P: 1}

// blob is the on‑disk JSON structure holding the ciphertext and KDF parameters.
type blob struct {
	V      int    `json:"v"`
	Salt   []byte `json:"salt"`
	N      int    `json:"scrypt_N"`
	R      int    `json:"scrypt_r"`
	P      int    `json:"scrypt_p"`
	Cipher []byte `json:"cipher"`
}

// seal derives a key from passphrase and seals raw into a JSON blob.
func seal(passphrase string, raw []byte, params ScryptParams) ([]byte, error) {
	var salt [16]byte
	if _, err := rand.Read(salt[:]); err != nil {
		return nil, err
	}
	key, err := scrypt.Key([]byte(passphrase), salt[:], params.N, params.R, params.P, chacha20poly1305.KeySize)
	if err != nil {
		return nil, fmt.Errorf("derive key: %w", err)
	}
	defer wipe(key)

	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, err
	}
	var nonce [chacha20poly1305.NonceSize]byte // zero nonce; salt‑bound key is fresh per seal
	ct := aead.Seal(nil, nonce[:], raw, salt[:])

	return json.Marshal(blob{
		V:      sealedFormatVersion,
		Salt:   salt[:],
		N:      params.N,
		R:      params.R,
		P:      params.P,
		Cipher: ct,
	})
}

// open decrypts the JSON blob using a key derived from passphrase.
func open(passphrase string, b []byte) ([]byte, error) {
	var bl blob
	if err := json.Unmarshal(b, &bl); err != nil {
		return nil, fmt.Errorf("decode sealed preferences: %w", err)
	}
	if bl.V > sealedFormatVersion {
		return nil, fmt.Errorf("unsupported sealed preferences version %d", bl.V)
	}

	key, err := scrypt.Key([]byte(passphrase), bl.Salt, bl.N, bl.R, bl.P, chacha20poly1305.KeySize)
	if err != nil {
		return nil, fmt.Errorf("derive key: %w", err)
	}
	defer wipe(key)

	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, err
	}
	var nonce [chacha20poly1305.NonceSize]byte
	pt, err := aead.Open(nil, nonce[:], bl.Cipher, bl.Salt)
	if err != nil {
		return nil, ErrWrongPassphrase
	}
	return pt, nil
}

// wipe zeroes derived key material once it is no longer needed.
func wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
