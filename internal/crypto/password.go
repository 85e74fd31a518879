// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"encoding/base64"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// ErrPasswordMismatch is returned by Compare when the password does not
// match the stored hash.
var ErrPasswordMismatch = errors.New("password mismatch")

// passwordService is the bcrypt-backed implementation of [PasswordService]
// used by the server auth service.
type passwordService struct {
	cost int
}

// NewPasswordService constructs a [PasswordService] using bcrypt with the
// library's default cost.
func NewPasswordService() PasswordService {
	return &passwordService{cost: bcrypt.DefaultCost}
}

// Hash implements [PasswordService] via bcrypt.GenerateFromPassword.
func (p *passwordService) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), p.cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// Compare implements [PasswordService] via bcrypt.CompareHashAndPassword.
func (p *passwordService) Compare(hash, password string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrPasswordMismatch
		}
		return fmt.Errorf("compare password: %w", err)
	}
	return nil
}

// Obfuscate encodes password with base64. This is the reversible encoding
// the client credential store keeps for locally registered users. It is a
// demonstration-only mechanism carried over from the original design and
// offers no protection beyond casual inspection; the server never stores
// obfuscated passwords, only bcrypt hashes.
func Obfuscate(password string) string {
	return base64.StdEncoding.EncodeToString([]byte(password))
}

// Deobfuscate reverses [Obfuscate]. Returns an error when the stored value
// is not valid base64.
func Deobfuscate(encoded string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", fmt.Errorf("decode obfuscated password: %w", err)
	}
	return string(raw), nil
}
