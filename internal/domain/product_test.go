package domain_test

import (
	"testing"

	"github.com/abdidvp/prodcat/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestSeedProducts_AreValidAndUnique(t *testing.T) {
	seed := domain.SeedProducts()
	assert.Len(t, seed, 2)

	seen := map[string]bool{}
	for _, p := range seed {
		assert.True(t, domain.Validate(p).Valid(), "seed %s should be valid", p.Code)
		assert.False(t, seen[p.Code], "duplicate seed code %s", p.Code)
		seen[p.Code] = true
	}
	assert.Equal(t, "A001", seed[0].Code)
	assert.Equal(t, "B023", seed[1].Code)
}

func TestCloneProducts_DoesNotAlias(t *testing.T) {
	src := domain.SeedProducts()
	clone := domain.CloneProducts(src)
	clone[0].Name = "Changed"

	assert.Equal(t, `Monitor 27"`, src[0].Name)
	assert.Nil(t, domain.CloneProducts(nil))
}

func TestIndexOf(t *testing.T) {
	seed := domain.SeedProducts()
	assert.Equal(t, 1, domain.IndexOf(seed, "B023"))
	assert.Equal(t, -1, domain.IndexOf(seed, "Z9"))
}

func TestBlankProduct_IsZero(t *testing.T) {
	assert.Equal(t, domain.Product{}, domain.BlankProduct())
}

func TestFormState_String(t *testing.T) {
	assert.Equal(t, "idle", domain.FormIdle.String())
	assert.Equal(t, "creating", domain.FormCreating.String())
	assert.Equal(t, "editing", domain.FormEditing.String())

	text, err := domain.FormEditing.MarshalText()
	assert.NoError(t, err)
	assert.Equal(t, "editing", string(text))
}
