// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto implements the credential encryptor used by the client and
// password services. Values are encrypted with AES-256-GCM under a key
// derived once from the configured master key via Argon2id.
package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
)

// Argon2id parameters per the OWASP recommendation (2024):
// 1 iteration, 64 MiB memory, 4 threads, 256-bit key.
const (
	argonTime    = 1
	argonMemory  = 64 * 1024
	argonThreads = 4
	argonKeyLen  = 32
)

var ErrMalformedCiphertext = errors.New("malformed ciphertext")

// vaultCipher is the private implementation of [Encryptor].
type vaultCipher struct {
	aead cipher.AEAD
}

// NewEncryptor derives a 256-bit key from masterKey and salt via Argon2id
// and returns an [Encryptor] sealing values with AES-256-GCM. The salt is
// not secret but must stay stable for the lifetime of the stored data;
// changing it orphans every previously encrypted value.
func NewEncryptor(masterKey, salt string) (Encryptor, error) {
	key := argon2.IDKey([]byte(masterKey), []byte(salt), argonTime, argonMemory, argonThreads, argonKeyLen)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("creating AES cipher: %w", err)
	}

	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("creating GCM: %w", err)
	}

	return &vaultCipher{aead: aead}, nil
}

// Encrypt implements [Encryptor]. A random 12-byte nonce is prepended to the
// ciphertext so Decrypt can locate it: blob = nonce ‖ ciphertext, then the
// whole blob is base64-encoded for storage as a plain string attribute.
func (v *vaultCipher) Encrypt(plaintext string) (string, error) {
	nonce := make([]byte, v.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("reading nonce: %w", err)
	}

	sealed := v.aead.Seal(nil, nonce, []byte(plaintext), nil)
	return base64.StdEncoding.EncodeToString(append(nonce, sealed...)), nil
}

// Decrypt implements [Encryptor]. It reverses Encrypt: base64-decode, split
// off the nonce, open the GCM seal. Returns ErrMalformedCiphertext when the
// blob is too short to contain a nonce, or the GCM authentication error when
// the key is wrong or the blob was tampered with.
func (v *vaultCipher) Decrypt(ciphertext string) (string, error) {
	blob, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return "", fmt.Errorf("decoding ciphertext: %w", err)
	}

	if len(blob) < v.aead.NonceSize() {
		return "", ErrMalformedCiphertext
	}

	nonce, sealed := blob[:v.aead.NonceSize()], blob[v.aead.NonceSize():]
	plaintext, err := v.aead.Open(nil, nonce, sealed, nil)
	if err != nil {
		return "", fmt.Errorf("opening seal: %w", err)
	}

	return string(plaintext), nil
}
