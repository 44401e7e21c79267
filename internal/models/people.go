package models

// Owner represents a property owner
type Owner struct {
	OwnerID     int    `gorm:"column:Owner_ID;primaryKey;autoIncrement:false"`
	FirstName   string `gorm:"column:F_Name"`
	LastName    string `gorm:"column:L_Name"`
	MiddleName  string `gorm:"column:Middle_Name"`
	Phone       string `gorm:"column:Phone"`
	Email       string `gorm:"column:Email"`
	DateOfBirth Date   `gorm:"column:Date_Of_Birth"`
	Address     string `gorm:"column:Address"`
}

func (Owner) TableName() string {
	return "Owners"
}

// Agent represents a real-estate agent brokering sales and rentals
type Agent struct {
	AgentID        int     `gorm:"column:Agent_ID;primaryKey;autoIncrement:false"`
	FirstName      string  `gorm:"column:F_Name"`
	LastName       string  `gorm:"column:L_Name"`
	MiddleName     string  `gorm:"column:Middle_Name"`
	Phone          string  `gorm:"column:Phone"`
	Email          string  `gorm:"column:Email"`
	Agency         string  `gorm:"column:Agency"`
	Experience     int     `gorm:"column:Experience"`
	CommissionRate float64 `gorm:"column:Commission_Rate"`
}

func (Agent) TableName() string {
	return "Agents"
}

// Tenant represents a tenant renting a property
type Tenant struct {
	TenantID    int    `gorm:"column:Tenant_ID;primaryKey;autoIncrement:false"`
	FirstName   string `gorm:"column:F_Name"`
	LastName    string `gorm:"column:L_Name"`
	MiddleName  string `gorm:"column:Middle_Name"`
	Phone       string `gorm:"column:Phone"`
	Email       string `gorm:"column:Email"`
	DateOfBirth Date   `gorm:"column:Date_Of_Birth"`
	Address     string `gorm:"column:Address"`
}

func (Tenant) TableName() string {
	return "Tenants"
}
