package reference

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCatalogSizes(t *testing.T) {
	assert.Len(t, AgencyNames(), 40)
	assert.Len(t, IssueDescriptions(), 48)
	assert.Len(t, FeatureCatalog(), 28)
	assert.Len(t, EmailDomains(), 3)
}

func TestFeatureCatalogIDsAreSequential(t *testing.T) {
	for i, f := range FeatureCatalog() {
		assert.Equal(t, i+1, f.ID)
		assert.NotEmpty(t, f.Description)
	}
}

func TestAccessorsReturnCopies(t *testing.T) {
	names := AgencyNames()
	names[0] = "changed"
	assert.Equal(t, "Realty Associates", AgencyNames()[0])

	catalog := FeatureCatalog()
	catalog[0].Description = "changed"
	assert.Equal(t, "Swimming Pool", FeatureCatalog()[0].Description)
}

func TestPaymentNoteVocabulariesAreDisjoint(t *testing.T) {
	for _, note := range PendingPaymentNotes() {
		assert.NotContains(t, CompletedPaymentNotes(), note)
	}
	assert.Contains(t, CompletedPaymentNotes(), "")
}
