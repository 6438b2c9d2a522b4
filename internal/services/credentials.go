package services

import "golang.org/x/crypto/bcrypt"

const BcryptCost = 10

// CredentialHasher turns passwords into stored credentials and verifies
// them. Callers never see how.
type CredentialHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) bool
}

type BcryptHasher struct {
	Cost int
}

func NewBcryptHasher() BcryptHasher {
	return BcryptHasher{Cost: BcryptCost}
}

func (h BcryptHasher) Hash(password string) (string, error) {
	p, err := bcrypt.GenerateFromPassword([]byte(password), h.Cost)
	return string(p), err
}

func (h BcryptHasher) Compare(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
