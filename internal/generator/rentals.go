package generator

import (
	"realestate-seed/internal/models"
)

// GenerateRentals records exactly one lease per rented property. Tenants
// are popped from a shuffled pool sized to the number of leases; the pool
// repeats tenant IDs only when there are more leases than tenants.
func GenerateRentals(s *State, p *Partition, z Sizes) []models.Rental {
	n := len(p.Rented)
	if n == 0 || z.Tenants == 0 {
		return nil
	}

	tenantPool := repeatTo(idRange(z.FirstTenantID, z.Tenants), n)
	s.shuffle(tenantPool)

	rentals := make([]models.Rental, 0, n)
	for i, propertyID := range p.Rented {
		tenantID := tenantPool[len(tenantPool)-1]
		tenantPool = tenantPool[:len(tenantPool)-1]

		start := s.dateBetween(2002, 2024)
		end := start.AddDays(s.intBetween(90, 365))
		rent := float64(s.intBetween(minRent, maxRent))
		deposit := round2(rent * s.floatBetween(1, 2))
		agentID := s.intBetween(z.FirstAgentID, z.FirstAgentID+z.Agents-1)
		commission := round2(s.floatBetween(minCommission, maxCommission))

		rentals = append(rentals, models.Rental{
			RentalID:        z.FirstRentalID + i,
			PropertyID:      propertyID,
			TenantID:        tenantID,
			StartDate:       start,
			EndDate:         end,
			MonthlyRent:     rent,
			SecurityDeposit: deposit,
			AgentID:         agentID,
			Commission:      commission,
		})
	}
	return rentals
}
