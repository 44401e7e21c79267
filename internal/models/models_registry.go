package models

// Model is implemented by every persisted table type.
type Model interface {
	TableName() string
}

// ModelRegistry lists every table in load and export order.
var ModelRegistry = []Model{
	Property{},
	Owner{},
	Agent{},
	MaintenanceRequest{},
	Feature{},
	Sale{},
	Tenant{},
	Rental{},
	RentPayment{},
	PropertyFeature{},
}

func TableNames() []string {
	names := make([]string, 0, len(ModelRegistry))
	for _, m := range ModelRegistry {
		names = append(names, m.TableName())
	}
	return names
}
