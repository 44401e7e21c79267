// Package reference holds the fixed lookup tables the generators draw from.
// Accessors return copies so callers cannot mutate the shared tables.
package reference

import "slices"

// FeatureEntry is one row of the feature catalog.
type FeatureEntry struct {
	ID          int
	Description string
	Type        string
	SubType     string
}

var emailDomains = []string{"gmail.com", "yahoo.com", "outlook.com"}

var propertyTypes = []string{"Residential", "Commercial"}

var openRequestStatuses = []string{"Pending", "In Progress"}

var paymentMethods = []string{"Bank Transfer", "Credit Card", "Cash", "Mobile Payment"}

var completedPaymentNotes = []string{"", "Paid early", "Discount applied"}

var pendingPaymentNotes = []string{"Payment delayed", "Awaiting confirmation", "Partial payment"}

func EmailDomains() []string { return slices.Clone(emailDomains) }
func PropertyTypes() []string { return slices.Clone(propertyTypes) }
func OpenRequestStatuses() []string { return slices.Clone(openRequestStatuses) }
func PaymentMethods() []string { return slices.Clone(paymentMethods) }
func CompletedPaymentNotes() []string { return slices.Clone(completedPaymentNotes) }
func PendingPaymentNotes() []string { return slices.Clone(pendingPaymentNotes) }
func AgencyNames() []string { return slices.Clone(agencyNames) }
func IssueDescriptions() []string { return slices.Clone(issueDescriptions) }
func FeatureCatalog() []FeatureEntry { return slices.Clone(featureCatalog) }
