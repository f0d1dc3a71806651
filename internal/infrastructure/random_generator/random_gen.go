package randomgenerator

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/mikiasgoitom/portfolio/internal/domain/contract"
)

type RandomGenerator struct{}

func NewRandomGenerator() contract.IRandomGenerator {
	return &RandomGenerator{}
}

var _ contract.IRandomGenerator = (*RandomGenerator)(nil)

func (rg *RandomGenerator) RandomHex(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	return hex.EncodeToString(b), nil
}
