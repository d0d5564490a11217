package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"
)

// Account is the authenticated user's profile. It is assembled fresh for
// every query that asks for it; nothing here is cached between requests.
type Account struct {
	ID    string
	Login string
	Email string
	// EmailHash is the hex SHA-256 of the trimmed, lowercased email. Avatar
	// providers key images on exactly this digest.
	EmailHash   string
	CompanyName string
	FirstName   string
	LastName    string
	Phone       string
	Created     time.Time
	Updated     time.Time
}

// EmailHash computes the avatar digest for an email address. Deterministic:
// whitespace and letter case never change the result.
func EmailHash(email string) string {
	sum := sha256.Sum256([]byte(strings.ToLower(strings.TrimSpace(email))))
	return hex.EncodeToString(sum[:])
}
