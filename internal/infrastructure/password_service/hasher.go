package passwordservice

import (
	"github.com/mikiasgoitom/portfolio/internal/domain/contract"

	"golang.org/x/crypto/bcrypt"
)

// Hasher hashes account passwords with bcrypt.
type Hasher struct {
	cost int
}

var _ contract.IHasher = (*Hasher)(nil)

func NewHasher() *Hasher {
	return &Hasher{cost: 12}
}

// NewHasherWithCost is used by tests to keep hashing fast.
func NewHasherWithCost(cost int) *Hasher {
	return &Hasher{cost: cost}
}

func (h *Hasher) HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func (h *Hasher) CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
