package generator

import (
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"realestate-seed/internal/models"
)

func generateDefault(t *testing.T, seed uint64) *Dataset {
	t.Helper()
	ds, err := Generate(NewState(seed), DefaultSizes, Options{})
	require.NoError(t, err)
	return ds
}

func statuses(ds *Dataset) map[int]models.PropertyStatus {
	out := make(map[int]models.PropertyStatus, len(ds.Properties))
	for _, p := range ds.Properties {
		out[p.PropertyID] = p.Status
	}
	return out
}

func TestGenerate_SatisfiesInvariants(t *testing.T) {
	ds := generateDefault(t, 42)
	assert.NoError(t, Verify(ds, DefaultSizes))

	assert.Len(t, ds.Properties, 1000)
	assert.Len(t, ds.Owners, 250)
	assert.Len(t, ds.Agents, 50)
	assert.Len(t, ds.Tenants, 200)
	assert.Len(t, ds.MaintenanceRequests, 150)
	assert.Len(t, ds.Features, 28)
	assert.Len(t, ds.Sales, 625)
	assert.Len(t, ds.Rentals, 310)
	assert.NotEmpty(t, ds.RentPayments)
	assert.LessOrEqual(t, len(ds.PropertyFeatures), 4000)
}

func TestGenerate_IDRanges(t *testing.T) {
	ds := generateDefault(t, 42)

	assert.Equal(t, 1001, ds.Owners[0].OwnerID)
	assert.Equal(t, 1250, ds.Owners[len(ds.Owners)-1].OwnerID)
	assert.Equal(t, 501, ds.Agents[0].AgentID)
	assert.Equal(t, 550, ds.Agents[len(ds.Agents)-1].AgentID)
	assert.Equal(t, 2001, ds.Tenants[0].TenantID)
	assert.Equal(t, 2200, ds.Tenants[len(ds.Tenants)-1].TenantID)
	assert.Equal(t, 3001, ds.MaintenanceRequests[0].RequestID)
	assert.Equal(t, 3150, ds.MaintenanceRequests[len(ds.MaintenanceRequests)-1].RequestID)
	assert.Equal(t, 3001, ds.Sales[0].SaleID)
	assert.Equal(t, 5001, ds.Rentals[0].RentalID)
}

func TestGenerate_SameSeedIsDeterministic(t *testing.T) {
	a := generateDefault(t, 99)
	b := generateDefault(t, 99)
	assert.Equal(t, a, b)
}

func TestGenerate_DifferentSeedsDiffer(t *testing.T) {
	a := generateDefault(t, 1)
	b := generateDefault(t, 2)
	require.NoError(t, Verify(a, DefaultSizes))
	require.NoError(t, Verify(b, DefaultSizes))
	assert.NotEqual(t, a.Properties, b.Properties)
	assert.NotEqual(t, a.Owners, b.Owners)
}

func TestGenerateProperties_PriceAndSize(t *testing.T) {
	ds := generateDefault(t, 5)
	for _, p := range ds.Properties {
		if p.Status == models.StatusRented {
			assert.True(t, p.Price >= 1000 && p.Price <= 5000, "rent proxy %v", p.Price)
		} else {
			assert.True(t, p.Price >= 200_000 && p.Price <= 2_000_000, "price %v", p.Price)
		}
		if p.Type == models.Residential {
			assert.True(t, p.Size >= 70 && p.Size <= 500)
		} else {
			assert.Equal(t, models.Commercial, p.Type)
			assert.True(t, p.Size >= 100 && p.Size <= 1000)
		}
		assert.True(t, p.YearBuilt >= 2000 && p.YearBuilt <= 2010)
	}
}

func TestGeneratePeople_ContactFormats(t *testing.T) {
	ds := generateDefault(t, 8)
	phone := regexp.MustCompile(`^\(\d{3}\) \d{3}-\d{4}$`)
	email := regexp.MustCompile(`^[^@\s]+\.[^@\s]+\.\d{2,4}@(gmail\.com|yahoo\.com|outlook\.com)$`)

	for _, o := range ds.Owners {
		assert.Regexp(t, phone, o.Phone)
		assert.Regexp(t, email, o.Email)
		assert.Equal(t, strings.ToLower(o.Email), o.Email)
		assert.True(t, strings.HasPrefix(o.Email, strings.ToLower(o.FirstName+"."+o.MiddleName+".")))
		assert.NotContains(t, o.Address, "\n")
		assert.True(t, o.DateOfBirth.Year() >= 1975 && o.DateOfBirth.Year() <= 2000)
	}
	for _, a := range ds.Agents {
		assert.Regexp(t, phone, a.Phone)
		assert.True(t, a.CommissionRate >= 4 && a.CommissionRate <= 7)
		assert.True(t, a.Experience >= 1 && a.Experience <= 10)
		assert.NotEmpty(t, a.Agency)
	}
	for _, tn := range ds.Tenants {
		assert.True(t, tn.DateOfBirth.Year() >= 1975 && tn.DateOfBirth.Year() <= 2005)
	}
}

func TestGenerateMaintenanceRequests_OpenSplit(t *testing.T) {
	requests := GenerateMaintenanceRequests(NewState(13), DefaultSizes)
	require.Len(t, requests, 150)

	open := 0
	for _, r := range requests {
		assert.True(t, r.PropertyID >= 1 && r.PropertyID <= 1000)
		assert.True(t, r.Cost >= 100 && r.Cost <= 1000)

		if r.Status == models.RequestResolved {
			require.NotNil(t, r.DateResolved)
			gap := int(r.DateResolved.Sub(r.DateSubmitted.Time).Hours() / 24)
			assert.True(t, gap >= 7 && gap <= 60, "resolved after %d days", gap)
			assert.True(t, r.DateSubmitted.Year() >= 2005 && r.DateSubmitted.Year() <= 2024)
			continue
		}

		open++
		assert.Contains(t, []models.RequestStatus{models.RequestPending, models.RequestInProgress}, r.Status)
		assert.Nil(t, r.DateResolved)
		assert.Equal(t, 2024, r.DateSubmitted.Year())
		assert.GreaterOrEqual(t, r.DateSubmitted.Month(), time.September)
		assert.LessOrEqual(t, r.DateSubmitted.Day(), 28)
	}
	assert.Equal(t, 20, open)
}

func TestGenerateSales(t *testing.T) {
	ds := generateDefault(t, 21)
	status := statuses(ds)

	owners := make(map[int]int)
	for _, s := range ds.Sales {
		assert.Equal(t, models.StatusOwned, status[s.PropertyID])
		assert.Greater(t, s.ClosingCosts, s.SalePrice)
		assert.LessOrEqual(t, s.ClosingCosts-s.SalePrice, 3000.0)
		assert.True(t, s.AgentID >= 501 && s.AgentID <= 550)
		assert.True(t, s.SaleDate.Year() >= 2002 && s.SaleDate.Year() <= 2024)
		owners[s.OwnerID]++
	}
	// 625 sales over 250 owners: every owner appears two or three times
	for id, n := range owners {
		assert.True(t, n >= 2 && n <= 3, "owner %d has %d sales", id, n)
	}
}

func TestGenerateRentals(t *testing.T) {
	ds := generateDefault(t, 34)
	status := statuses(ds)

	seen := make(map[int]bool)
	for _, r := range ds.Rentals {
		assert.Equal(t, models.StatusRented, status[r.PropertyID])
		assert.False(t, seen[r.PropertyID])
		seen[r.PropertyID] = true

		days := int(r.EndDate.Sub(r.StartDate.Time).Hours() / 24)
		assert.True(t, days >= 90 && days <= 365)
		assert.True(t, r.SecurityDeposit >= r.MonthlyRent && r.SecurityDeposit <= 2*r.MonthlyRent)
		assert.True(t, r.TenantID >= 2001 && r.TenantID <= 2200)
	}
}

func TestGenerateRentPayments_StatusRules(t *testing.T) {
	ds := generateDefault(t, 55)

	pending := 0
	for i, p := range ds.RentPayments {
		assert.Equal(t, i+1, p.PaymentID)
		assert.Equal(t, p.PaymentID, p.RentalID)
		assert.False(t, p.PaymentDate.After(PaymentsEnd.Time))

		inDecember := p.PaymentDate.Year() == 2024 && p.PaymentDate.Month() == time.December
		assert.Equal(t, inDecember, p.Status == models.PaymentPending)
		if p.Status == models.PaymentPending {
			pending++
			assert.Nil(t, p.PaymentMethod)
		} else {
			assert.NotNil(t, p.PaymentMethod)
		}
		if i > 0 {
			assert.False(t, p.PaymentDate.Before(ds.RentPayments[i-1].PaymentDate.Time))
		}
	}
	assert.Positive(t, pending)
}

func TestGenerateRentPayments_TenantsReusedOnlyWhenExhausted(t *testing.T) {
	ds := generateDefault(t, 56)

	tenantsPerProperty := make(map[int]int)
	for _, p := range ds.RentPayments {
		if prev, ok := tenantsPerProperty[p.PropertyID]; ok {
			assert.Equal(t, prev, p.TenantID)
		}
		tenantsPerProperty[p.PropertyID] = p.TenantID
	}

	distinct := make(map[int]bool)
	for _, tenantID := range tenantsPerProperty {
		distinct[tenantID] = true
	}
	// 310 rented properties and 200 tenants: every tenant ends up paying rent
	assert.Len(t, distinct, 200)
}

func TestAssignPaymentIDs_RentalMode(t *testing.T) {
	s := NewState(77)
	p, err := NewPartition(s, 100, 50, 30)
	require.NoError(t, err)
	z := DefaultSizes
	z.Properties, z.Owned, z.Rented = 100, 50, 30

	rentals := GenerateRentals(s, p, z)
	payments := GenerateRentPayments(s, p, z)
	require.NoError(t, AssignPaymentIDs(payments, rentals, RentalIDFromRental))

	leaseOf := make(map[int]int)
	for _, r := range rentals {
		leaseOf[r.PropertyID] = r.RentalID
	}
	for i, pay := range payments {
		assert.Equal(t, i+1, pay.PaymentID)
		assert.Equal(t, leaseOf[pay.PropertyID], pay.RentalID)
	}
}

func TestAssignPaymentIDs_StableSort(t *testing.T) {
	day := models.NewDate(2020, time.May, 1)
	payments := []models.RentPayment{
		{PropertyID: 3, PaymentDate: day.AddDays(30)},
		{PropertyID: 1, PaymentDate: day},
		{PropertyID: 2, PaymentDate: day},
	}
	require.NoError(t, AssignPaymentIDs(payments, nil, RentalIDFromRank))

	assert.Equal(t, []int{1, 2, 3}, []int{payments[0].PropertyID, payments[1].PropertyID, payments[2].PropertyID})
	assert.Equal(t, 3, payments[2].PaymentID)
	assert.Equal(t, 3, payments[2].RentalID)
}

func TestAssignPaymentIDs_InvalidMode(t *testing.T) {
	payments := []models.RentPayment{{PaymentDate: models.NewDate(2020, time.May, 1)}}
	assert.ErrorIs(t, AssignPaymentIDs(payments, nil, "bogus"), ErrInvalidMode)
}

func TestParseRentalIDMode(t *testing.T) {
	mode, err := ParseRentalIDMode("")
	require.NoError(t, err)
	assert.Equal(t, RentalIDFromRank, mode)

	mode, err = ParseRentalIDMode("rental")
	require.NoError(t, err)
	assert.Equal(t, RentalIDFromRental, mode)

	_, err = ParseRentalIDMode("payment")
	assert.ErrorIs(t, err, ErrInvalidMode)
}

func TestGeneratePropertyFeatures(t *testing.T) {
	links := GeneratePropertyFeatures(NewState(9), DefaultSizes)
	assert.LessOrEqual(t, len(links), 4000)

	perProperty := make(map[int]map[int]bool)
	for _, l := range links {
		assert.True(t, l.PropertyID >= 1 && l.PropertyID <= 1000)
		assert.True(t, l.FeatureID >= 1 && l.FeatureID <= 28)
		if perProperty[l.PropertyID] == nil {
			perProperty[l.PropertyID] = make(map[int]bool)
		}
		assert.False(t, perProperty[l.PropertyID][l.FeatureID], "duplicate link %+v", l)
		perProperty[l.PropertyID][l.FeatureID] = true
		assert.LessOrEqual(t, len(perProperty[l.PropertyID]), 4)
	}
}

func TestCapPropertyFeatures(t *testing.T) {
	links := make([]models.PropertyFeature, 10)
	assert.Len(t, CapPropertyFeatures(links, 4), 4)
	assert.Len(t, CapPropertyFeatures(links, 40), 10)

	z := DefaultSizes
	z.MaxPropertyFeatures = 100
	assert.Len(t, GeneratePropertyFeatures(NewState(9), z), 100)
}

func TestVerify_ReportsViolations(t *testing.T) {
	ds := generateDefault(t, 3)
	status := statuses(ds)

	for _, p := range ds.Properties {
		if p.Status == models.StatusAvailable {
			ds.Sales[0].PropertyID = p.PropertyID
			break
		}
	}
	require.NotEqual(t, models.StatusOwned, status[ds.Sales[0].PropertyID])

	method := "Cash"
	last := len(ds.RentPayments) - 1
	require.Equal(t, models.PaymentPending, ds.RentPayments[last].Status)
	ds.RentPayments[last].PaymentMethod = &method

	ds.Agents = ds.Agents[1:]

	err := Verify(ds, DefaultSizes)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sale 3001")
	assert.Contains(t, err.Error(), "has method")
	assert.Contains(t, err.Error(), "agents")
}
