package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/metaqa/pkg/metaqa"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Title", "title"},
		{"Is Public?", "is public"},
		{"contributors/name", "contributorsname"},
		{"Size (bytes)", "size bytes"},
		{"  Accession  ", "accession"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, Normalize(tt.input))
		})
	}
}

func TestClassifier_Classify(t *testing.T) {
	c := NewClassifier(nestedSchema())

	tests := []struct {
		name     string
		wantPath string
		wantTier metaqa.Tier
		wantOK   bool
	}{
		{"accession", "accession", metaqa.TierRequired, true},
		{"ACCESSION?", "accession", metaqa.TierRequired, true},
		{"Contributors/Name", "contributors/name", metaqa.TierRequired, true},
		{"name", "contributors/name", metaqa.TierRequired, true},
		{"(Title)", "title", metaqa.TierRecommended, true},
		{"scheme", "contributors/identifiers/scheme", metaqa.TierOptional, true},
		{"contributors", "", 0, false},
		{"unknown column", "", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, ok := c.Canonical(tt.name)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantPath, p)

			tier, ok := c.Classify(tt.name)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantTier, tier)
		})
	}
}

func TestClassifier_AmbiguousLeafNameNeedsFullPath(t *testing.T) {
	s := &Schema{Kind: "x", Fields: []*Field{
		{Name: "study", Fields: []*Field{{Name: "title", Tier: metaqa.TierRequired}}},
		{Name: "file", Fields: []*Field{{Name: "title", Tier: metaqa.TierOptional}}},
	}}
	c := NewClassifier(s)

	_, ok := c.Canonical("title")
	assert.False(t, ok, "leaf name shared by two paths must not resolve")

	p, ok := c.Canonical("file/title")
	require.True(t, ok)
	assert.Equal(t, "file/title", p)
}

func TestClassifier_Tiers(t *testing.T) {
	s := &Schema{Kind: "x", Fields: []*Field{
		{Name: "b", Tier: metaqa.TierOptional},
		{Name: "a", Tier: metaqa.TierRequired},
	}}
	assert.Equal(t, []metaqa.Tier{metaqa.TierRequired, metaqa.TierOptional}, NewClassifier(s).Tiers())
}
