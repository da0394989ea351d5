package services

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"strings"

	"golang.org/x/crypto/argon2"
)

// Argon2id parameters for the access PIN hash
const (
	memory      = 64 * 1024
	iterations  = 3
	parallelism = 2
	keyLength   = 32
)

// HashPin returns "<salt>$<hash>", both raw std base64, for ACCESS_PIN_HASH
func HashPin(pin string) (string, error) {
	if len(pin) < 4 {
		return "", errors.New("PIN must be at least 4 characters")
	}
	salt := make([]byte, 16)
	if _, err := rand.Read(salt); err != nil {
		return "", errors.New("failed to generate salt")
	}

	hash := argon2.IDKey([]byte(pin), salt, iterations, memory, parallelism, keyLength)
	return base64.RawStdEncoding.EncodeToString(salt) + "$" + base64.RawStdEncoding.EncodeToString(hash), nil
}

func VerifyPin(storedHash, pin string) (bool, error) {
	saltPart, hashPart, ok := strings.Cut(storedHash, "$")
	if !ok {
		return false, errors.New("invalid stored PIN format")
	}
	salt, err := base64.RawStdEncoding.DecodeString(saltPart)
	if err != nil {
		return false, err
	}
	expected, err := base64.RawStdEncoding.DecodeString(hashPart)
	if err != nil {
		return false, err
	}

	computed := argon2.IDKey([]byte(pin), salt, iterations, memory, parallelism, uint32(len(expected)))
	return subtle.ConstantTimeCompare(computed, expected) == 1, nil
}
