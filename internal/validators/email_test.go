package validators_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/salonsuite/salon-scheduler/internal/validators"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, "ana@example.com", validators.Normalize("  Ana@Example.COM "))
	assert.Equal(t, "ana@example.com", validators.Normalize("ana@example.com"))
	assert.Equal(t, "", validators.Normalize("   "))
}

func TestIsEmailDomainValid_Malformed(t *testing.T) {
	// Addresses with no resolvable domain part fail before any lookup.
	assert.False(t, validators.IsEmailDomainValid("no-at-sign"))
	assert.False(t, validators.IsEmailDomainValid("trailing@"))
	assert.False(t, validators.IsEmailDomainValid(""))
}
