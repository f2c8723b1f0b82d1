package match

import (
	"testing"

	"github.com/poiesic/matchbook/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		m, err := New()
		require.NoError(t, err)
		assert.Equal(t, 50, m.Config().OverlapCap)
	})

	t.Run("with custom config", func(t *testing.T) {
		cfg := NewConfig(WithReverseWeight(0.5))
		m, err := New(WithConfig(cfg))
		require.NoError(t, err)
		assert.Equal(t, 0.5, m.Config().ReverseWeight)
	})

	t.Run("nil config", func(t *testing.T) {
		_, err := New(WithConfig(nil))
		assert.Equal(t, ErrConfigRequired, err)
	})

	t.Run("invalid config", func(t *testing.T) {
		cfg := NewConfig(WithTierThresholds(10, 40, 70))
		_, err := New(WithConfig(cfg))
		assert.Error(t, err)
	})
}

func TestMatch_SelfMatch(t *testing.T) {
	m := newTestMatcher(t)
	profile := &core.Profile{
		Id:                   7,
		Name:                 "Auto Peças Silva",
		WhatISell:            "peças automotivas originais",
		WhatINeed:            "peças automotivas originais",
		PartnershipInterests: []string{"Automotivo"},
		Tags:                 []string{"Vendas"},
	}

	result := m.Match(profile, profile)
	require.NotNil(t, result)
	assert.Equal(t, 0, result.Score)
	assert.Equal(t, core.TierNone, result.Tier)
	assert.Empty(t, result.Reasons)
}

func TestMatch_NilProfiles(t *testing.T) {
	m := newTestMatcher(t)
	profile := &core.Profile{Id: 1, Name: "Alfa"}
	assert.Nil(t, m.Match(nil, profile))
	assert.Nil(t, m.Match(profile, nil))
}

// Subject sells business software, needs distribution partners; the
// candidate consults on expansion and needs tech clients. They share
// one sector and one tag.
func TestMatch_ScenarioA(t *testing.T) {
	m := newTestMatcher(t)

	subject := &core.Profile{
		Id:                   1,
		Name:                 "GestorSoft",
		WhatISell:            "Software de gestão empresarial para PMEs",
		WhatINeed:            "Parceiros de distribuição no Nordeste",
		PartnershipInterests: []string{"Tecnologia"},
		Tags:                 []string{"Vendas", "Networking"},
	}
	candidate := &core.Profile{
		Id:                   2,
		Name:                 "Expande Consultoria",
		WhatISell:            "Consultoria em expansão de negócios",
		WhatINeed:            "Clientes no setor de tecnologia e software",
		PartnershipInterests: []string{"Tecnologia"},
		Tags:                 []string{"Vendas", "Inovação"},
	}

	result := m.Match(subject, candidate)
	require.NotNil(t, result)
	assert.Positive(t, result.Score)
	assert.NotEqual(t, core.TierNone, result.Tier)

	// NEEDS_SELLS: {software, gestao, empresarial, pmes} vs
	// {clientes, setor, tecnologia, software} -> 1/7 -> 21 -> 0.7x -> 15.
	require.Len(t, result.Reasons, 3)
	assert.Equal(t, core.ReasonNeedsSells, result.Reasons[0].Type)
	assert.Equal(t, 15, result.Reasons[0].Points)
	assert.Equal(t, "software", result.Reasons[0].Detail)

	assert.Equal(t, core.ReasonSector, result.Reasons[1].Type)
	assert.Equal(t, 10, result.Reasons[1].Points)
	assert.Equal(t, "Tecnologia", result.Reasons[1].Detail)

	assert.Equal(t, core.ReasonTag, result.Reasons[2].Type)
	assert.Equal(t, 5, result.Reasons[2].Points)
	assert.Contains(t, result.Reasons[2].Detail, "Vendas")

	assert.Equal(t, 30, result.Score)
	assert.Equal(t, core.TierPotential, result.Tier)
}

func TestMatch_ScenarioB_DisjointProfiles(t *testing.T) {
	m := newTestMatcher(t)

	subject := &core.Profile{
		Id:                   1,
		Name:                 "Padaria Central",
		WhatISell:            "pães artesanais e confeitaria",
		WhatINeed:            "fornecedores de farinha orgânica",
		PartnershipInterests: []string{"Alimentação"},
		Tags:                 []string{"Gastronomia"},
	}
	candidate := &core.Profile{
		Id:                   2,
		Name:                 "Constrular",
		WhatISell:            "materiais de construção civil",
		WhatINeed:            "transportadoras parceiras regionais",
		PartnershipInterests: []string{"Construção"},
		Tags:                 []string{"Obras"},
	}

	result := m.Match(subject, candidate)
	require.NotNil(t, result)
	assert.Equal(t, 0, result.Score)
	assert.Equal(t, core.TierNone, result.Tier)
	assert.Empty(t, result.Reasons)
}

// Perfect complement in both directions plus fully overlapping sectors
// and tags must clamp to 100, never above.
func TestMatch_ScenarioC_ClampAt100(t *testing.T) {
	m := newTestMatcher(t)

	sells := "fabricação de móveis planejados em madeira"
	needs := "distribuidores e lojas de decoração no varejo"
	sectors := []string{"Indústria", "Varejo", "Design"}
	tags := []string{"Móveis", "Decoração", "Madeira", "Sustentabilidade"}

	subject := &core.Profile{
		Id: 1, Name: "Móveis Ipê",
		WhatISell: sells, WhatINeed: needs,
		PartnershipInterests: sectors, Tags: tags,
	}
	candidate := &core.Profile{
		Id: 2, Name: "Decora Varejo",
		WhatISell: needs, WhatINeed: sells,
		PartnershipInterests: sectors, Tags: tags,
	}

	result := m.Match(subject, candidate)
	require.NotNil(t, result)
	assert.Equal(t, 100, result.Score)
	assert.Equal(t, core.TierStrong, result.Tier)

	// 50 + 35 + 30 + 20 = 135 before the clamp.
	require.Len(t, result.Reasons, 4)
	assert.Equal(t, core.ReasonSellsNeeds, result.Reasons[0].Type)
	assert.Equal(t, 50, result.Reasons[0].Points)
	assert.Equal(t, core.ReasonNeedsSells, result.Reasons[1].Type)
	assert.Equal(t, 35, result.Reasons[1].Points)
	assert.Equal(t, core.ReasonSector, result.Reasons[2].Type)
	assert.Equal(t, 30, result.Reasons[2].Points)
	assert.Equal(t, core.ReasonTag, result.Reasons[3].Type)
	assert.Equal(t, 20, result.Reasons[3].Points)
}

func TestMatch_Directional(t *testing.T) {
	m := newTestMatcher(t)

	subject := &core.Profile{
		Id:        1,
		Name:      "GestorSoft",
		WhatISell: "Software de gestão empresarial para PMEs",
		WhatINeed: "Parceiros de distribuição no Nordeste",
	}
	candidate := &core.Profile{
		Id:        2,
		Name:      "Expande Consultoria",
		WhatISell: "Consultoria em expansão de negócios",
		WhatINeed: "Clientes no setor de tecnologia e software",
	}

	forward := m.Match(subject, candidate)
	backward := m.Match(candidate, subject)
	require.NotNil(t, forward)
	require.NotNil(t, backward)

	// Forward: overlap in the reverse direction only, weighted 0.7 -> 15.
	// Backward: the same overlap at full weight -> 21.
	assert.Equal(t, 15, forward.Score)
	assert.Equal(t, 21, backward.Score)
}

// SECTOR and TAG have no minimum floor, so a pair can carry reasons and
// still classify as NONE. Deliberately preserved behavior.
func TestMatch_ReasonsWithNoneTier(t *testing.T) {
	m := newTestMatcher(t)

	subject := &core.Profile{Id: 1, Name: "A", Tags: []string{"Networking"}}
	candidate := &core.Profile{Id: 2, Name: "B", Tags: []string{"Networking"}}

	result := m.Match(subject, candidate)
	require.NotNil(t, result)
	assert.Equal(t, 5, result.Score)
	assert.Equal(t, core.TierNone, result.Tier)
	require.Len(t, result.Reasons, 1)
	assert.Equal(t, core.ReasonTag, result.Reasons[0].Type)
}

func TestMatch_TextFloorIsStrict(t *testing.T) {
	m := newTestMatcher(t)

	// {alfa} vs 29 distinct tokens + alfa: union 30, intersection 1:
	// round(150/30) = 5, not strictly greater than the floor.
	needs := "alfa"
	sells := "alfa b01 b02 b03 b04 b05 b06 b07 b08 b09 b10 b11 b12 b13 b14" +
		" b15 b16 b17 b18 b19 b20 b21 b22 b23 b24 b25 b26 b27 b28 b29"

	subject := &core.Profile{Id: 1, Name: "A", WhatINeed: needs}
	candidate := &core.Profile{Id: 2, Name: "B", WhatISell: sells}

	result := m.Match(subject, candidate)
	require.NotNil(t, result)
	assert.Equal(t, 0, result.Score)
	assert.Empty(t, result.Reasons)
}

func TestMatch_ScoreWithinBounds(t *testing.T) {
	m := newTestMatcher(t)

	profiles := []*core.Profile{
		{Id: 1, Name: "A", WhatISell: "consultoria tributária", WhatINeed: "clientes do varejo"},
		{Id: 2, Name: "B", WhatISell: "varejo de eletrônicos", WhatINeed: "consultoria tributária completa"},
		{Id: 3, Name: "C", PartnershipInterests: []string{"Varejo", "Serviços"}, Tags: []string{"Vendas"}},
		{Id: 4, Name: "D"},
	}

	for _, subject := range profiles {
		for _, candidate := range profiles {
			result := m.Match(subject, candidate)
			require.NotNil(t, result)
			assert.GreaterOrEqual(t, result.Score, 0)
			assert.LessOrEqual(t, result.Score, 100)
		}
	}
}

func TestSharedLabels(t *testing.T) {
	t.Run("keeps subject order", func(t *testing.T) {
		shared := sharedLabels([]string{"A", "B", "C"}, []string{"C", "A"})
		assert.Equal(t, []string{"A", "C"}, shared)
	})

	t.Run("collapses duplicates", func(t *testing.T) {
		shared := sharedLabels([]string{"A", "A", "B"}, []string{"A", "B"})
		assert.Equal(t, []string{"A", "B"}, shared)
	})

	t.Run("empty lists", func(t *testing.T) {
		assert.Nil(t, sharedLabels(nil, []string{"A"}))
		assert.Nil(t, sharedLabels([]string{"A"}, nil))
	})

	t.Run("labels match exactly", func(t *testing.T) {
		assert.Nil(t, sharedLabels([]string{"tecnologia"}, []string{"Tecnologia"}))
	})
}
