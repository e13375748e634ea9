package taxon

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCollapseSpaces(t *testing.T) {
	assert.Equal(t, "Eucalyptus camaldulensis", CollapseSpaces("  Eucalyptus \t camaldulensis "))
	assert.Equal(t, "a b c", CollapseSpaces("a\nb\r\nc"))
	assert.Equal(t, "", CollapseSpaces("   \t\n "))
	assert.Equal(t, "", CollapseSpaces(""))
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Camaldulensis", DisplayName("camaldulensis"))
	assert.Equal(t, "River red gum", DisplayName("  river red   gum "))
	// Only the first letter changes; interior casing is preserved.
	assert.Equal(t, "X acerifolia", DisplayName("x acerifolia"))
	assert.Equal(t, "QuercusRobur", DisplayName("quercusRobur"))
	assert.Equal(t, "", DisplayName("   "))
}

func TestToken_CollapsesCaseWhitespaceAndPunctuation(t *testing.T) {
	// Variants that differ only in casing, spacing, or punctuation must
	// land on the same token.
	variants := []string{
		"Eucalyptus camaldulensis",
		"eucalyptus CAMALDULENSIS",
		"  Eucalyptus   camaldulensis  ",
		"Eucalyptus-camaldulensis",
		"Eucalyptus.camaldulensis.",
	}
	for _, v := range variants {
		assert.Equal(t, "eucalyptuscamaldulensis", Token(v), "input %q", v)
	}
}

func TestToken_DropsMarkersAndDiacritics(t *testing.T) {
	assert.Equal(t, "acerfreemanii", Token("Acer × freemanii"))
	assert.Equal(t, "lagerstroemiafaurieihtzii", Token("Lagerstroemia fauriei 'Hëtzii'"))
	assert.Equal(t, "", Token("×  '' --"))
}

func TestToken_KeepsDigits(t *testing.T) {
	assert.Equal(t, "ulmusfrontier2", Token("Ulmus Frontier-2"))
}

func TestToken_Idempotent(t *testing.T) {
	inputs := []string{
		"Eucalyptus camaldulensis",
		"Platanus × acerifolia",
		"  QUERCUS  robur 'Fastigiata' ",
		"Ulmus Frontier-2",
		"",
	}
	for _, in := range inputs {
		tok := Token(in)
		assert.Equal(t, tok, Token(tok), "input %q", in)
	}
}

func TestStripHybridPrefix(t *testing.T) {
	assert.Equal(t, "acerifolia", StripHybridPrefix("x acerifolia"))
	assert.Equal(t, "acerifolia", StripHybridPrefix("X acerifolia"))
	assert.Equal(t, "acerifolia", StripHybridPrefix("× acerifolia"))
	assert.Equal(t, "acerifolia", StripHybridPrefix("  x   acerifolia "))
	// A lone marker or a word that merely starts with x is not a prefix.
	assert.Equal(t, "x", StripHybridPrefix("x"))
	assert.Equal(t, "xylosma congestum", StripHybridPrefix("xylosma congestum"))
	assert.Equal(t, "acerifolia", StripHybridPrefix("acerifolia"))
	assert.Equal(t, "", StripHybridPrefix("   "))
}

func TestEpithet(t *testing.T) {
	assert.Equal(t, "orientalis", Epithet("Platanus orientalis", "platanus"))
	assert.Equal(t, "Orientalis", Epithet("platanus  Orientalis", "Platanus"))
	// No genus prefix to strip: the collapsed string comes back whole.
	assert.Equal(t, "orientalis", Epithet("orientalis", "platanus"))
	assert.Equal(t, "Platanus orientalis", Epithet("Platanus orientalis", "quercus"))
	assert.Equal(t, "Platanus orientalis", Epithet(" Platanus  orientalis", ""))
	assert.Equal(t, "", Epithet("   ", "platanus"))
}

func TestStemGenus(t *testing.T) {
	assert.Equal(t, "Eucalyptus", StemGenus("EucalyptusCamaldulensis"))
	assert.Equal(t, "Quercus", StemGenus("QuercusRoburFastigiata"))
	// No interior uppercase: the whole stem is its own bucket.
	assert.Equal(t, "Unknown", StemGenus("Unknown"))
	assert.Equal(t, "fanpalm", StemGenus("fanpalm"))
	// No Upper+lower start: fall back to the first interior uppercase.
	assert.Equal(t, "A", StemGenus("ABies"))
	assert.Equal(t, "x", StemGenus("xTree"))
	assert.Equal(t, "E", StemGenus("E"))
	assert.Equal(t, "", StemGenus(""))
}
