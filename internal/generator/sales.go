package generator

import (
	"realestate-seed/internal/models"
)

// GenerateSales records exactly one sale per owned property. Owners and
// agents come from shuffled pools that repeat every ID, so each appears
// several times with roughly even coverage.
func GenerateSales(s *State, p *Partition, z Sizes) []models.Sale {
	n := len(p.Owned)
	if n == 0 {
		return nil
	}

	ownerPool := repeatTo(idRange(z.FirstOwnerID, z.Owners), n)
	s.shuffle(ownerPool)
	agentPool := repeatTo(idRange(z.FirstAgentID, z.Agents), n)
	s.shuffle(agentPool)

	sales := make([]models.Sale, 0, n)
	for i, propertyID := range p.Owned {
		saleID := z.FirstSaleID + i
		saleDate := s.dateBetween(2002, 2024)
		price := float64(s.intBetween(minPrice, maxPrice))
		commission := round2(s.floatBetween(minCommission, maxCommission))

		sales = append(sales, models.Sale{
			SaleID:     saleID,
			PropertyID: propertyID,
			OwnerID:    ownerPool[saleID%len(ownerPool)],
			SaleDate:   saleDate,
			SalePrice:  price,
			AgentID:    agentPool[saleID%len(agentPool)],
			Commission: commission,
			// always above the sale price
			ClosingCosts: round2(price + s.floatBetween(1000, 3000)),
		})
	}
	return sales
}
