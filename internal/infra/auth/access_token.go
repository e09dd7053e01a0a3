package auth

import (
	"crypto/rand"
	"encoding/hex"

	"thoughts/internal/domain/service"
	"thoughts/internal/errors"
)

// accessTokenBytes is the entropy of a bearer token. Hex encoding doubles
// it to a 256-character credential string on the wire.
const accessTokenBytes = 128

// accessTokenGenerator mints opaque random bearer tokens.
type accessTokenGenerator struct{}

// NewAccessTokenGenerator is the constructor for accessTokenGenerator.
func NewAccessTokenGenerator() service.TokenGenerator {
	return &accessTokenGenerator{}
}

// Generate returns a new hex-encoded random token.
func (g *accessTokenGenerator) Generate() (string, error) {
	buf := make([]byte, accessTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Wrap(err, "failed to read random bytes for access token")
	}

	return hex.EncodeToString(buf), nil
}
