package generator

import (
	"errors"
	"fmt"
	"slices"

	"realestate-seed/internal/models"
	"realestate-seed/internal/reference"
)

// maxViolations bounds how many violations Verify reports.
const maxViolations = 20

type violations []error

func (v *violations) addf(format string, args ...interface{}) {
	if len(*v) < maxViolations {
		*v = append(*v, fmt.Errorf(format, args...))
	}
}

// Verify checks the cross-table invariants of a dataset and returns every
// violation found, joined.
func Verify(ds *Dataset, z Sizes) error {
	var v violations

	status := verifyPartition(&v, ds.Properties, z)
	verifyPeople(&v, ds, z)

	for _, sale := range ds.Sales {
		if status[sale.PropertyID] != models.StatusOwned {
			v.addf("sale %d references property %d with status %q", sale.SaleID, sale.PropertyID, status[sale.PropertyID])
		}
	}
	for _, rental := range ds.Rentals {
		if status[rental.PropertyID] != models.StatusRented {
			v.addf("rental %d references property %d with status %q", rental.RentalID, rental.PropertyID, status[rental.PropertyID])
		}
	}

	verifyPayments(&v, ds.RentPayments)
	verifyPropertyFeatures(&v, ds.PropertyFeatures, z)

	return errors.Join(v...)
}

func verifyPartition(v *violations, properties []models.Property, z Sizes) map[int]models.PropertyStatus {
	status := make(map[int]models.PropertyStatus, len(properties))
	counts := make(map[models.PropertyStatus]int)
	for _, p := range properties {
		if p.PropertyID < 1 || p.PropertyID > z.Properties {
			v.addf("property ID %d outside [1,%d]", p.PropertyID, z.Properties)
		}
		if _, dup := status[p.PropertyID]; dup {
			v.addf("property ID %d appears twice", p.PropertyID)
		}
		status[p.PropertyID] = p.Status
		counts[p.Status]++
	}

	if len(status) != z.Properties {
		v.addf("expected %d distinct properties, got %d", z.Properties, len(status))
	}
	want := map[models.PropertyStatus]int{
		models.StatusOwned:     z.Owned,
		models.StatusRented:    z.Rented,
		models.StatusAvailable: z.Available(),
	}
	for s, n := range want {
		if counts[s] != n {
			v.addf("expected %d %s properties, got %d", n, s, counts[s])
		}
	}
	if len(counts) > len(want) {
		v.addf("properties carry unknown statuses: %v", counts)
	}
	return status
}

func verifyIDRange(v *violations, entity string, ids []int, first, count int) {
	if len(ids) != count {
		v.addf("expected %d %s, got %d", count, entity, len(ids))
		return
	}
	if len(ids) == 0 {
		return
	}
	if lo, hi := slices.Min(ids), slices.Max(ids); lo != first || hi != first+count-1 {
		v.addf("%s IDs span [%d,%d], want [%d,%d]", entity, lo, hi, first, first+count-1)
	}
}

func verifyPeople(v *violations, ds *Dataset, z Sizes) {
	owners := make([]int, 0, len(ds.Owners))
	for _, o := range ds.Owners {
		owners = append(owners, o.OwnerID)
	}
	agents := make([]int, 0, len(ds.Agents))
	for _, a := range ds.Agents {
		agents = append(agents, a.AgentID)
	}
	tenants := make([]int, 0, len(ds.Tenants))
	for _, t := range ds.Tenants {
		tenants = append(tenants, t.TenantID)
	}
	verifyIDRange(v, "owners", owners, z.FirstOwnerID, z.Owners)
	verifyIDRange(v, "agents", agents, z.FirstAgentID, z.Agents)
	verifyIDRange(v, "tenants", tenants, z.FirstTenantID, z.Tenants)
}

func verifyPayments(v *violations, payments []models.RentPayment) {
	completedNotes := reference.CompletedPaymentNotes()
	pendingNotes := reference.PendingPaymentNotes()

	byID := slices.Clone(payments)
	slices.SortFunc(byID, func(a, b models.RentPayment) int { return a.PaymentID - b.PaymentID })

	for i, p := range byID {
		pending := p.Status == models.PaymentPending
		switch {
		case p.Status != models.PaymentPending && p.Status != models.PaymentCompleted:
			v.addf("payment %d has unknown status %q", p.PaymentID, p.Status)
		case pending != isPendingMonth(p.PaymentDate):
			v.addf("payment %d dated %s has status %s", p.PaymentID, p.PaymentDate, p.Status)
		case pending && p.PaymentMethod != nil:
			v.addf("pending payment %d has method %q", p.PaymentID, *p.PaymentMethod)
		case !pending && p.PaymentMethod == nil:
			v.addf("completed payment %d has no method", p.PaymentID)
		case pending && !slices.Contains(pendingNotes, p.Notes):
			v.addf("pending payment %d has note %q", p.PaymentID, p.Notes)
		case !pending && !slices.Contains(completedNotes, p.Notes):
			v.addf("completed payment %d has note %q", p.PaymentID, p.Notes)
		}

		if i > 0 && p.PaymentDate.Before(byID[i-1].PaymentDate.Time) {
			v.addf("payment %d dated %s precedes payment %d dated %s",
				p.PaymentID, p.PaymentDate, byID[i-1].PaymentID, byID[i-1].PaymentDate)
		}
	}
}

func verifyPropertyFeatures(v *violations, links []models.PropertyFeature, z Sizes) {
	if len(links) > z.MaxPropertyFeatures {
		v.addf("%d property features exceed cap %d", len(links), z.MaxPropertyFeatures)
	}
	numFeatures := len(reference.FeatureCatalog())
	for _, l := range links {
		if l.PropertyID < 1 || l.PropertyID > z.Properties {
			v.addf("property feature references property %d", l.PropertyID)
		}
		if l.FeatureID < 1 || l.FeatureID > numFeatures {
			v.addf("property feature references feature %d", l.FeatureID)
		}
	}
}
