package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIDFromContent(t *testing.T) {
	t.Run("deterministic", func(t *testing.T) {
		id1 := IDFromContent("Padaria Dois Irmãos")
		id2 := IDFromContent("Padaria Dois Irmãos")
		assert.Equal(t, id1, id2)
	})

	t.Run("different content produces different IDs", func(t *testing.T) {
		id1 := IDFromContent("Padaria Dois Irmãos")
		id2 := IDFromContent("Transportes Veloz")
		assert.NotEqual(t, id1, id2)
	})

	t.Run("empty content is valid", func(t *testing.T) {
		id := IDFromContent("")
		assert.NotZero(t, id)
	})
}

func TestReasonTypeString(t *testing.T) {
	assert.Equal(t, "SELLS_NEEDS", ReasonSellsNeeds.String())
	assert.Equal(t, "NEEDS_SELLS", ReasonNeedsSells.String())
	assert.Equal(t, "SECTOR", ReasonSector.String())
	assert.Equal(t, "TAG", ReasonTag.String())
	assert.Equal(t, "UNKNOWN", ReasonType(0).String())
}

func TestReasonTypeLabel(t *testing.T) {
	for _, rt := range []ReasonType{ReasonSellsNeeds, ReasonNeedsSells, ReasonSector, ReasonTag} {
		assert.NotEmpty(t, rt.Label(), rt.String())
	}
	assert.Empty(t, ReasonType(0).Label())
}

func TestMatchTierString(t *testing.T) {
	assert.Equal(t, "NONE", TierNone.String())
	assert.Equal(t, "POTENTIAL", TierPotential.String())
	assert.Equal(t, "COMMON", TierCommon.String())
	assert.Equal(t, "STRONG", TierStrong.String())
}
