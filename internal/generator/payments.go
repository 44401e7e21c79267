package generator

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"realestate-seed/internal/models"
	"realestate-seed/internal/reference"
)

const paymentInterval = 30 // days

// RentalIDMode selects how AssignPaymentIDs fills RentPayment.RentalID.
type RentalIDMode string

const (
	// RentalIDFromRank sets Rental_ID to the payment's chronological rank,
	// the same value as Payment_ID.
	RentalIDFromRank RentalIDMode = "rank"
	// RentalIDFromRental points Rental_ID at the lease of the paid property.
	RentalIDFromRental RentalIDMode = "rental"
)

var ErrInvalidMode = errors.New("invalid rental ID mode")

func ParseRentalIDMode(s string) (RentalIDMode, error) {
	switch mode := RentalIDMode(s); mode {
	case RentalIDFromRank, RentalIDFromRental:
		return mode, nil
	case "":
		return RentalIDFromRank, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidMode, s)
	}
}

type tenancy struct {
	tenantID   int
	propertyID int
	start      models.Date
}

// assignTenancies gives each rented property a first-of-month start between
// 2003 and 2023 and a tenant. A fresh tenant is used while any remain
// unassigned; after that an already assigned tenant is reused.
func assignTenancies(s *State, p *Partition, z Sizes) []tenancy {
	starts := make([]models.Date, len(p.Rented))
	for i := range p.Rented {
		year := s.intBetween(2003, PaymentsEnd.Year()-1)
		month := time.Month(s.intBetween(1, 12))
		starts[i] = models.NewDate(year, month, 1)
	}

	unassigned := idRange(z.FirstTenantID, z.Tenants)
	s.shuffle(unassigned)
	var assigned []int

	tenancies := make([]tenancy, 0, len(p.Rented))
	for i, propertyID := range p.Rented {
		var tenantID int
		switch {
		case len(unassigned) > 0:
			tenantID = unassigned[len(unassigned)-1]
			unassigned = unassigned[:len(unassigned)-1]
			assigned = append(assigned, tenantID)
		case len(assigned) > 0:
			tenantID = assigned[s.rng.IntN(len(assigned))]
		default:
			continue
		}
		tenancies = append(tenancies, tenancy{tenantID: tenantID, propertyID: propertyID, start: starts[i]})
	}
	return tenancies
}

// GenerateRentPayments emits a payment every 30 days from one interval after
// each tenancy start through PaymentsEnd. IDs are left zero; call
// AssignPaymentIDs once all payments exist.
func GenerateRentPayments(s *State, p *Partition, z Sizes) []models.RentPayment {
	methods := reference.PaymentMethods()
	completedNotes := reference.CompletedPaymentNotes()
	pendingNotes := reference.PendingPaymentNotes()

	var payments []models.RentPayment
	for _, t := range assignTenancies(s, p, z) {
		for day := t.start.AddDays(paymentInterval); !day.After(PaymentsEnd.Time); day = day.AddDays(paymentInterval) {
			payment := models.RentPayment{
				Amount:      float64(s.intBetween(minRent, maxRent)),
				PaymentDate: day,
				TenantID:    t.tenantID,
				PropertyID:  t.propertyID,
			}

			if isPendingMonth(day) {
				payment.Status = models.PaymentPending
				payment.Notes = s.pick(pendingNotes)
			} else {
				payment.Status = models.PaymentCompleted
				method := s.pick(methods)
				payment.PaymentMethod = &method
				payment.Notes = s.pick(completedNotes)
			}
			payments = append(payments, payment)
		}
	}
	return payments
}

// AssignPaymentIDs stable-sorts payments by date and numbers them from 1 in
// that order, then fills Rental_ID according to mode.
func AssignPaymentIDs(payments []models.RentPayment, rentals []models.Rental, mode RentalIDMode) error {
	slices.SortStableFunc(payments, func(a, b models.RentPayment) int {
		return a.PaymentDate.Compare(b.PaymentDate.Time)
	})

	var leaseOf map[int]int
	if mode == RentalIDFromRental {
		leaseOf = make(map[int]int, len(rentals))
		for _, r := range rentals {
			leaseOf[r.PropertyID] = r.RentalID
		}
	}

	for i := range payments {
		payments[i].PaymentID = i + 1
		switch mode {
		case RentalIDFromRank:
			payments[i].RentalID = i + 1
		case RentalIDFromRental:
			rentalID, ok := leaseOf[payments[i].PropertyID]
			if !ok {
				return fmt.Errorf("no rental for property ID %d", payments[i].PropertyID)
			}
			payments[i].RentalID = rentalID
		default:
			return fmt.Errorf("%w: %q", ErrInvalidMode, mode)
		}
	}
	return nil
}
