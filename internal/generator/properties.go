package generator

import (
	"realestate-seed/internal/models"
	"realestate-seed/internal/reference"
)

// GenerateProperties builds one property per ID in 1..total. Every ID must
// belong to the partition.
func GenerateProperties(s *State, p *Partition, total int) ([]models.Property, error) {
	types := reference.PropertyTypes()
	properties := make([]models.Property, 0, total)

	for id := 1; id <= total; id++ {
		address := s.address()
		propertyType := models.PropertyType(s.pick(types))

		status, err := p.StatusOf(id)
		if err != nil {
			return nil, err
		}

		// rented properties carry the monthly rent as their price
		var price int
		if status == models.StatusRented {
			price = s.intBetween(minRent, maxRent)
		} else {
			price = s.intBetween(minPrice, maxPrice)
		}

		var size int
		if propertyType == models.Residential {
			size = s.intBetween(70, 500)
		} else {
			size = s.intBetween(100, 1000)
		}

		properties = append(properties, models.Property{
			PropertyID: id,
			Address:    address,
			Type:       propertyType,
			Status:     status,
			Price:      float64(price),
			Size:       size,
			YearBuilt:  s.intBetween(2000, 2010),
			Bedrooms:   s.intBetween(1, 4),
			Bathrooms:  s.intBetween(1, 3),
		})
	}
	return properties, nil
}
