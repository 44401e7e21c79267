package models

// Sale represents the sale of an owned property
type Sale struct {
	SaleID       int     `gorm:"column:Sale_ID;primaryKey;autoIncrement:false"`
	PropertyID   int     `gorm:"column:Property_ID"`
	OwnerID      int     `gorm:"column:Owner_ID"`
	SaleDate     Date    `gorm:"column:Sale_Date"`
	SalePrice    float64 `gorm:"column:Sale_Price"`
	AgentID      int     `gorm:"column:Agent_ID"`
	Commission   float64 `gorm:"column:Commission"`
	ClosingCosts float64 `gorm:"column:Closing_Costs"`
}

func (Sale) TableName() string {
	return "Sales"
}

// Rental represents a lease on a rented property
type Rental struct {
	RentalID        int     `gorm:"column:Rental_ID;primaryKey;autoIncrement:false"`
	PropertyID      int     `gorm:"column:Property_ID"`
	TenantID        int     `gorm:"column:Tenant_ID"`
	StartDate       Date    `gorm:"column:Start_Date"`
	EndDate         Date    `gorm:"column:End_Date"`
	MonthlyRent     float64 `gorm:"column:Monthly_Rent"`
	SecurityDeposit float64 `gorm:"column:Security_Deposit"`
	AgentID         int     `gorm:"column:Agent_ID"`
	Commission      float64 `gorm:"column:Commission"`
}

func (Rental) TableName() string {
	return "Rentals"
}

type PaymentStatus string

const (
	PaymentCompleted PaymentStatus = "Completed"
	PaymentPending   PaymentStatus = "Pending"
)

// RentPayment is one monthly payment on a rented property
type RentPayment struct {
	PaymentID     int           `gorm:"column:Payment_ID;primaryKey;autoIncrement:false"`
	RentalID      int           `gorm:"column:Rental_ID"`
	Amount        float64       `gorm:"column:Payment_Amount"`
	PaymentDate   Date          `gorm:"column:Payment_Date"`
	PaymentMethod *string       `gorm:"column:Payment_Method"`
	Status        PaymentStatus `gorm:"column:Status"`
	Notes         string        `gorm:"column:Notes"`
	TenantID      int           `gorm:"column:Tenant_ID"`
	PropertyID    int           `gorm:"column:Property_ID"`
}

func (RentPayment) TableName() string {
	return "Rent_Payments"
}
