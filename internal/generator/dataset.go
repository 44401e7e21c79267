package generator

import (
	"fmt"

	"realestate-seed/internal/models"
)

// Dataset holds every generated table.
type Dataset struct {
	Properties          []models.Property
	Owners              []models.Owner
	Agents              []models.Agent
	MaintenanceRequests []models.MaintenanceRequest
	Features            []models.Feature
	Sales               []models.Sale
	Tenants             []models.Tenant
	Rentals             []models.Rental
	RentPayments        []models.RentPayment
	PropertyFeatures    []models.PropertyFeature
}

type Options struct {
	RentalIDMode RentalIDMode
}

// Generate runs every generator against s in dependency order.
func Generate(s *State, z Sizes, opts Options) (*Dataset, error) {
	mode := opts.RentalIDMode
	if mode == "" {
		mode = RentalIDFromRank
	}

	partition, err := NewPartition(s, z.Properties, z.Owned, z.Rented)
	if err != nil {
		return nil, err
	}

	ds := &Dataset{}
	if ds.Properties, err = GenerateProperties(s, partition, z.Properties); err != nil {
		return nil, fmt.Errorf("failed to generate properties: %w", err)
	}
	ds.Owners = GenerateOwners(s, z)
	ds.Agents = GenerateAgents(s, z)
	ds.MaintenanceRequests = GenerateMaintenanceRequests(s, z)
	ds.Features = GenerateFeatures()
	ds.Sales = GenerateSales(s, partition, z)
	ds.Tenants = GenerateTenants(s, z)
	ds.Rentals = GenerateRentals(s, partition, z)

	ds.RentPayments = GenerateRentPayments(s, partition, z)
	if err := AssignPaymentIDs(ds.RentPayments, ds.Rentals, mode); err != nil {
		return nil, fmt.Errorf("failed to assign payment IDs: %w", err)
	}

	ds.PropertyFeatures = GeneratePropertyFeatures(s, z)
	return ds, nil
}
