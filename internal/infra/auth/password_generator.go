package auth

import (
	"crypto/rand"
	"math/big"

	"photoverify/config"
	"photoverify/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	minTempPasswordLength = 12
	tempPasswordAlphabet  = "ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz23456789!@#$%&*"
)

// randomPasswordGenerator creates temporary passwords from a crypto/rand source.
type randomPasswordGenerator struct {
	length int
}

// NewPasswordGenerator is the constructor for randomPasswordGenerator.
func NewPasswordGenerator(cfg *config.Config) service.PasswordGenerator {
	length := minTempPasswordLength
	if cfg.Auth != nil && cfg.Auth.TempPasswordLength > length {
		length = cfg.Auth.TempPasswordLength
	}

	return &randomPasswordGenerator{length: length}
}

// Generate returns a random password drawn from an alphabet without look-alike characters.
func (g *randomPasswordGenerator) Generate() (string, error) {
	alphabetSize := big.NewInt(int64(len(tempPasswordAlphabet)))
	password := make([]byte, g.length)

	for i := range password {
		n, err := rand.Int(rand.Reader, alphabetSize)
		if err != nil {
			return "", errors.Wrap(err, "failed to generate temporary password")
		}
		password[i] = tempPasswordAlphabet[n.Int64()]
	}

	return string(password), nil
}
