package main

import (
	"math/rand"
	"strings"
)

// defaultGeneratorLength is the password length generated when none is requested
const defaultGeneratorLength = 16

// passwordAlphabet is the generator's character pool: ASCII letters,
// digits and the full ASCII punctuation set
const passwordAlphabet = "abcdefghijklmnopqrstuvwxyz" +
	"ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
	"0123456789" +
	"!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// GeneratePassword returns length independent uniform draws from the
// alphabet, concatenated. Class coverage is not guaranteed: a generated
// password can, with vanishing probability, miss a required class and
// fail the complexity check itself. The random source is not
// cryptographically secure.
func GeneratePassword(length int) string {
	if length <= 0 {
		return ""
	}

	var sb strings.Builder
	sb.Grow(length)
	for i := 0; i < length; i++ {
		sb.WriteByte(passwordAlphabet[rand.Intn(len(passwordAlphabet))])
	}
	return sb.String()
}
