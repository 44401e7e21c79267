package models

type PropertyType string

const (
	Residential PropertyType = "Residential"
	Commercial  PropertyType = "Commercial"
)

// PropertyStatus is the occupancy partition a property belongs to.
type PropertyStatus string

const (
	StatusOwned     PropertyStatus = "Owned"
	StatusRented    PropertyStatus = "Rented"
	StatusAvailable PropertyStatus = "Available"
)

// Property represents a residential or commercial unit
type Property struct {
	PropertyID int            `gorm:"column:Property_ID;primaryKey;autoIncrement:false"`
	Address    string         `gorm:"column:Address"`
	Type       PropertyType   `gorm:"column:Type"`
	Status     PropertyStatus `gorm:"column:Status"`
	Price      float64        `gorm:"column:Price"`
	Size       int            `gorm:"column:Size"`
	YearBuilt  int            `gorm:"column:Year_Built"`
	Bedrooms   int            `gorm:"column:Bedrooms"`
	Bathrooms  int            `gorm:"column:Bathrooms"`
}

func (Property) TableName() string {
	return "Properties"
}
