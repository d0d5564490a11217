package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmailHashNormalizes(t *testing.T) {
	want := EmailHash("user@example.com")

	assert.Equal(t, want, EmailHash("  user@example.com "))
	assert.Equal(t, want, EmailHash("User@Example.COM"))
	assert.Len(t, want, 64, "hex sha-256 digest")
}

func TestEmailHashDistinguishesAddresses(t *testing.T) {
	assert.NotEqual(t, EmailHash("a@example.com"), EmailHash("b@example.com"))
}
