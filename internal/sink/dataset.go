package sink

import (
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"realestate-seed/internal/generator"
	"realestate-seed/internal/logger"
	"realestate-seed/internal/models"
)

// LoadDataset creates and fills every table in dependency order.
func (s *Sink) LoadDataset(ds *generator.Dataset) error {
	steps := []struct {
		table string
		rows  int
		load  func() error
	}{
		{models.Property{}.TableName(), len(ds.Properties), func() error { return Load(s, ds.Properties) }},
		{models.Owner{}.TableName(), len(ds.Owners), func() error { return Load(s, ds.Owners) }},
		{models.Agent{}.TableName(), len(ds.Agents), func() error { return Load(s, ds.Agents) }},
		{models.MaintenanceRequest{}.TableName(), len(ds.MaintenanceRequests), func() error { return Load(s, ds.MaintenanceRequests) }},
		{models.Feature{}.TableName(), len(ds.Features), func() error { return Load(s, ds.Features) }},
		{models.Sale{}.TableName(), len(ds.Sales), func() error { return Load(s, ds.Sales) }},
		{models.Tenant{}.TableName(), len(ds.Tenants), func() error { return Load(s, ds.Tenants) }},
		{models.Rental{}.TableName(), len(ds.Rentals), func() error { return Load(s, ds.Rentals) }},
		{models.RentPayment{}.TableName(), len(ds.RentPayments), func() error { return Load(s, ds.RentPayments) }},
		{models.PropertyFeature{}.TableName(), len(ds.PropertyFeatures), func() error { return Load(s, ds.PropertyFeatures) }},
	}

	for _, step := range steps {
		if err := step.load(); err != nil {
			return fmt.Errorf("failed to load %s: %w", step.table, err)
		}
		logger.Log.Debugf("Loaded %d rows into %s", step.rows, step.table)
	}
	return nil
}

func orderBy(columns ...string) clause.OrderBy {
	ob := clause.OrderBy{}
	for _, c := range columns {
		ob.Columns = append(ob.Columns, clause.OrderByColumn{Column: clause.Column{Name: c}})
	}
	return ob
}

func readTable[T any](db *gorm.DB, dest *[]T, keys ...string) error {
	var model T
	if err := db.Clauses(orderBy(keys...)).Find(dest).Error; err != nil {
		return fmt.Errorf("failed to read %s: %w", tableName(model), err)
	}
	return nil
}

func tableName(model interface{}) string {
	if m, ok := model.(models.Model); ok {
		return m.TableName()
	}
	return fmt.Sprintf("%T", model)
}

// ReadDataset reads every table back, each ordered by its primary key.
func (s *Sink) ReadDataset() (*generator.Dataset, error) {
	ds := &generator.Dataset{}
	reads := []func() error{
		func() error { return readTable(s.db, &ds.Properties, "Property_ID") },
		func() error { return readTable(s.db, &ds.Owners, "Owner_ID") },
		func() error { return readTable(s.db, &ds.Agents, "Agent_ID") },
		func() error { return readTable(s.db, &ds.MaintenanceRequests, "Request_ID") },
		func() error { return readTable(s.db, &ds.Features, "Feature_ID") },
		func() error { return readTable(s.db, &ds.Sales, "Sale_ID") },
		func() error { return readTable(s.db, &ds.Tenants, "Tenant_ID") },
		func() error { return readTable(s.db, &ds.Rentals, "Rental_ID") },
		func() error { return readTable(s.db, &ds.RentPayments, "Payment_ID") },
		func() error { return readTable(s.db, &ds.PropertyFeatures, "Property_ID", "Feature_ID") },
	}
	for _, read := range reads {
		if err := read(); err != nil {
			return nil, err
		}
	}
	return ds, nil
}

// TableCount is the row count of one table; Exists is false when the table
// has not been created.
type TableCount struct {
	Table  string
	Exists bool
	Rows   int64
}

func (s *Sink) Counts() ([]TableCount, error) {
	counts := make([]TableCount, 0, len(models.ModelRegistry))
	for _, name := range models.TableNames() {
		tc := TableCount{Table: name}
		if s.db.Migrator().HasTable(name) {
			tc.Exists = true
			if err := s.db.Table(name).Count(&tc.Rows).Error; err != nil {
				return nil, fmt.Errorf("failed to count %s: %w", name, err)
			}
		}
		counts = append(counts, tc)
	}
	return counts, nil
}
