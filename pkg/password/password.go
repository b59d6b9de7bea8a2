package password

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	apperrors "github.com/mentorhub/mentorhub-api/pkg/errors"
)

// MaxBytes is bcrypt's input limit. Multibyte characters count per byte.
const MaxBytes = 72

// ErrMismatch is returned when a password does not match its hash
var ErrMismatch = errors.New("password mismatch")

// Hasher hashes and verifies passwords with bcrypt at a fixed cost
type Hasher struct {
	cost int
}

// NewHasher creates a Hasher. Costs outside bcrypt's range fall back to the default.
func NewHasher(cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Hasher{cost: cost}
}

// Hash returns the bcrypt hash of plain. Passwords over MaxBytes are an input error.
func (h *Hasher) Hash(plain string) (string, error) {
	if len(plain) > MaxBytes {
		return "", tooLong()
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", tooLong()
	}
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// Compare checks plain against hash. A mismatch returns ErrMismatch.
func (h *Hasher) Compare(hash, plain string) error {
	if len(plain) > MaxBytes {
		return ErrMismatch
	}
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrMismatch
	}
	if err != nil {
		return fmt.Errorf("failed to compare password: %w", err)
	}
	return nil
}

func tooLong() error {
	return apperrors.WithMessage(
		apperrors.InvalidInputError("password", fmt.Sprintf("longer than %d bytes", MaxBytes)),
		"Password is too long.",
	)
}
