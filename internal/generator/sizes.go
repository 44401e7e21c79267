package generator

import (
	"time"

	"realestate-seed/internal/models"
)

// Sizes fixes the shape of a generated dataset.
type Sizes struct {
	Properties int
	Owned      int
	Rented     int

	Owners              int
	Agents              int
	Tenants             int
	MaintenanceRequests int
	OpenRequests        int
	MaxPropertyFeatures int

	FirstOwnerID   int
	FirstAgentID   int
	FirstTenantID  int
	FirstRequestID int
	FirstSaleID    int
	FirstRentalID  int
}

func (z Sizes) Available() int {
	return z.Properties - z.Owned - z.Rented
}

var DefaultSizes = Sizes{
	Properties: 1000,
	Owned:      625,
	Rented:     310,

	Owners:              250,
	Agents:              50,
	Tenants:             200,
	MaintenanceRequests: 150,
	OpenRequests:        20,
	MaxPropertyFeatures: 4000,

	FirstOwnerID:   1001,
	FirstAgentID:   501,
	FirstTenantID:  2001,
	FirstRequestID: 3001,
	FirstSaleID:    3001,
	FirstRentalID:  5001,
}

const (
	minPrice, maxPrice           = 200_000, 2_000_000
	minRent, maxRent             = 1000, 5000
	minCommission, maxCommission = 4.0, 10.0
	minAgentRate, maxAgentRate   = 4.0, 7.0
)

// PaymentsEnd is the last day a rent payment may fall on. Payments in its
// month are still pending.
var PaymentsEnd = models.NewDate(2024, time.December, 31)

func isPendingMonth(d models.Date) bool {
	return d.Year() == PaymentsEnd.Year() && d.Month() == PaymentsEnd.Month()
}
