// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/rand"
	"encoding/hex"
)

// DefaultTokenLength is the number of random bytes behind a generated token.
// The hex encoded token is twice as long.
const DefaultTokenLength = 32

// TokenGenerator produces opaque bearer credentials for the honeypot API.
//
//go:generate mockgen -source=token.go -destination=../mock/token_generator_mock.go -package=mock
type TokenGenerator interface {
	Generate() string
}

// RandomTokenGenerator builds tokens from the operating system's
// cryptographically secure random source.
type RandomTokenGenerator struct {
	length int
}

// NewRandomTokenGenerator returns a generator producing tokens of length
// random bytes. A non-positive length falls back to [DefaultTokenLength].
func NewRandomTokenGenerator(length int) *RandomTokenGenerator {
	if length <= 0 {
		length = DefaultTokenLength
	}

	return &RandomTokenGenerator{length: length}
}

// Generate returns a fresh lowercase hex token on every call.
//
// crypto/rand.Read never returns an error on supported platforms and
// panics if the random source is broken, so no error is surfaced.
func (g *RandomTokenGenerator) Generate() string {
	buf := make([]byte, g.length)
	_, _ = rand.Read(buf)

	return hex.EncodeToString(buf)
}
