// Package otp provides the one-time-passcode generator for the share gate.
package otp

import (
	"crypto/rand"
	"math/big"
	"strconv"

	"storefront/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	codeMin  = 100000
	codeSpan = 900000
)

type codeGenerator struct{}

// NewCodeGenerator creates the production CodeGenerator. Codes are drawn from
// crypto/rand so every 6-digit value is equally likely.
func NewCodeGenerator() service.CodeGenerator {
	return &codeGenerator{}
}

// Generate returns a uniformly random 6-digit decimal string (100000-999999).
func (g *codeGenerator) Generate() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(codeSpan))
	if err != nil {
		return "", errors.Wrap(err, "failed to draw random code")
	}

	return strconv.FormatInt(codeMin+n.Int64(), 10), nil
}
