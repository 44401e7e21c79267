package generator

import (
	"fmt"
	"strings"

	"realestate-seed/internal/models"
	"realestate-seed/internal/reference"
)

type person struct {
	first, last, middle string
	phone, email        string
}

func (s *State) newPerson() person {
	p := person{
		first:  s.faker.FirstName(),
		last:   s.faker.LastName(),
		middle: s.faker.FirstName(),
	}
	p.phone = s.phone()
	p.email = s.email(p.first, p.middle)
	return p
}

// phone formats a US-style number, (DDD) DDD-DDDD.
func (s *State) phone() string {
	return fmt.Sprintf("(%d) %d-%d", s.intBetween(100, 999), s.intBetween(100, 999), s.intBetween(1000, 9999))
}

func (s *State) email(first, middle string) string {
	domain := s.pick(reference.EmailDomains())
	digits := s.intBetween(10, 9999)
	return strings.ToLower(fmt.Sprintf("%s.%s.%d@%s", first, middle, digits, domain))
}

// address returns a single-line postal address.
func (s *State) address() string {
	return s.faker.Address().Address
}

func GenerateOwners(s *State, z Sizes) []models.Owner {
	owners := make([]models.Owner, 0, z.Owners)
	for _, id := range idRange(z.FirstOwnerID, z.Owners) {
		p := s.newPerson()
		dob := s.dateBetween(1975, 2000)
		owners = append(owners, models.Owner{
			OwnerID:     id,
			FirstName:   p.first,
			LastName:    p.last,
			MiddleName:  p.middle,
			Phone:       p.phone,
			Email:       p.email,
			DateOfBirth: dob,
			Address:     s.address(),
		})
	}
	return owners
}

func GenerateAgents(s *State, z Sizes) []models.Agent {
	agencies := reference.AgencyNames()
	agents := make([]models.Agent, 0, z.Agents)
	for _, id := range idRange(z.FirstAgentID, z.Agents) {
		p := s.newPerson()
		agency := s.pick(agencies)
		experience := s.intBetween(1, 10)
		agents = append(agents, models.Agent{
			AgentID:        id,
			FirstName:      p.first,
			LastName:       p.last,
			MiddleName:     p.middle,
			Phone:          p.phone,
			Email:          p.email,
			Agency:         agency,
			Experience:     experience,
			CommissionRate: round2(s.floatBetween(minAgentRate, maxAgentRate)),
		})
	}
	return agents
}

func GenerateTenants(s *State, z Sizes) []models.Tenant {
	tenants := make([]models.Tenant, 0, z.Tenants)
	for _, id := range idRange(z.FirstTenantID, z.Tenants) {
		p := s.newPerson()
		dob := s.dateBetween(1975, 2005)
		tenants = append(tenants, models.Tenant{
			TenantID:    id,
			FirstName:   p.first,
			LastName:    p.last,
			MiddleName:  p.middle,
			Phone:       p.phone,
			Email:       p.email,
			DateOfBirth: dob,
			Address:     s.address(),
		})
	}
	return tenants
}
