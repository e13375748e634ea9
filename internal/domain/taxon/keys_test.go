package taxon

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/FraknToastr/CityEngine/internal/ports"
)

func TestCandidateKeys_BaseBinomial(t *testing.T) {
	rec := ports.TaxonRecord{Genus: "Eucalyptus", Species: "camaldulensis"}
	assert.Equal(t, []string{"eucalyptuscamaldulensis"}, CandidateKeys(rec))
}

func TestCandidateKeys_GenusOnly(t *testing.T) {
	rec := ports.TaxonRecord{Genus: "Quercus"}
	assert.Equal(t, []string{"quercus"}, CandidateKeys(rec))
}

func TestCandidateKeys_EmptyRecord(t *testing.T) {
	assert.Empty(t, CandidateKeys(ports.TaxonRecord{}))
	assert.Empty(t, CandidateKeys(ports.TaxonRecord{Genus: "  ", Species: "\t"}))
}

func TestCandidateKeys_Infraspecific(t *testing.T) {
	rec := ports.TaxonRecord{
		Genus:             "Eucalyptus",
		Species:           "pauciflora",
		InfraspecificRank: "subsp.",
		InfraspecificName: "niphophila",
	}
	assert.Equal(t, []string{
		"eucalyptuspauciflora",
		"eucalyptuspauciflorasubspniphophila",
	}, CandidateKeys(rec))

	// Rank is optional filler; the infraspecific name alone still forms a key.
	rec.InfraspecificRank = ""
	assert.Equal(t, []string{
		"eucalyptuspauciflora",
		"eucalyptuspaucifloraniphophila",
	}, CandidateKeys(rec))
}

func TestCandidateKeys_AcceptedScientificName(t *testing.T) {
	rec := ports.TaxonRecord{
		Genus:                  "Eucalyptus",
		Species:                "rostrata",
		AcceptedScientificName: "Eucalyptus camaldulensis",
	}
	assert.Equal(t, []string{
		"eucalyptusrostrata",
		"eucalyptuscamaldulensis",
	}, CandidateKeys(rec))
}

func TestCandidateKeys_AcceptedPairFallsBackToRecordGenus(t *testing.T) {
	rec := ports.TaxonRecord{
		Genus:           "Eucalyptus",
		AcceptedSpecies: "cladocalyx",
	}
	assert.Equal(t, []string{
		"eucalyptus",
		"eucalyptuscladocalyx",
	}, CandidateKeys(rec))
}

func TestCandidateKeys_HybridFormsAndDedupe(t *testing.T) {
	rec := ports.TaxonRecord{
		Genus:                  "Platanus",
		Species:                "x acerifolia",
		HybridMarker:           "x",
		AcceptedScientificName: "Platanus × acerifolia",
		HybridParent1:          "Platanus orientalis",
		HybridParent2:          "occidentalis",
	}
	// The hybrid spellings collapse onto the base and accepted tokens, so
	// only three distinct candidates remain, in priority order.
	assert.Equal(t, []string{
		"platanusxacerifolia",
		"platanusacerifolia",
		"platanusorientalisxoccidentalis",
	}, CandidateKeys(rec))
}

func TestCandidateKeys_HybridWithoutMarker(t *testing.T) {
	// Without the marker flag the x stays part of the epithet and no hybrid
	// variants are generated.
	rec := ports.TaxonRecord{Genus: "Platanus", Species: "x acerifolia"}
	assert.Equal(t, []string{"platanusxacerifolia"}, CandidateKeys(rec))
}

func TestCandidateKeys_ParentPairRequiresBothParents(t *testing.T) {
	rec := ports.TaxonRecord{
		Genus:         "Platanus",
		Species:       "x acerifolia",
		HybridParent1: "Platanus orientalis",
	}
	assert.Equal(t, []string{"platanusxacerifolia"}, CandidateKeys(rec))
}

func TestCandidateKeys_VariantsShareFirstCandidate(t *testing.T) {
	// Records differing only in casing and whitespace resolve identically.
	a := CandidateKeys(ports.TaxonRecord{Genus: "Eucalyptus", Species: "camaldulensis"})
	b := CandidateKeys(ports.TaxonRecord{Genus: "  eucalyptus ", Species: "CAMALDULENSIS  "})
	assert.Equal(t, a[0], b[0])
}
