package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeName(t *testing.T) {
	assert.Equal(t, "goldchain", NormalizeName("Gold Chain"))
	assert.Equal(t, "goldchain", NormalizeName("gold-chain"))
	assert.Equal(t, "goldchain", NormalizeName("gold_chain"))
	assert.Equal(t, "gpcoin", NormalizeName("GP Coin!"))
	assert.Equal(t, "x2", NormalizeName("x2"))
	assert.Equal(t, "", NormalizeName("  --  "))

	// Stack suffixes survive normalization; stripping them is the
	// resolver's job.
	assert.Equal(t, "goldchainx2", NormalizeName("Gold Chain x2"))
}

func TestRandomInt_Bounds(t *testing.T) {
	for i := 0; i < 100; i++ {
		v := RandomInt(3, 7)
		assert.GreaterOrEqual(t, v, 3)
		assert.LessOrEqual(t, v, 7)
	}
	assert.Equal(t, 5, RandomInt(5, 2))
}

func TestSecureRandomInt(t *testing.T) {
	v, err := SecureRandomInt(0, 0)
	assert.NoError(t, err)
	assert.Equal(t, 0, v)

	_, err = SecureRandomInt(5, 1)
	assert.Error(t, err)
}
