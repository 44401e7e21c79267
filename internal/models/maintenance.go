package models

type RequestStatus string

const (
	RequestPending    RequestStatus = "Pending"
	RequestInProgress RequestStatus = "In Progress"
	RequestResolved   RequestStatus = "Resolved"
)

// MaintenanceRequest represents an issue reported against a property
type MaintenanceRequest struct {
	RequestID        int           `gorm:"column:Request_ID;primaryKey;autoIncrement:false"`
	PropertyID       int           `gorm:"column:Property_ID"`
	DateSubmitted    Date          `gorm:"column:Date_Submitted"`
	IssueDescription string        `gorm:"column:Issue_Description"`
	Status           RequestStatus `gorm:"column:Status"`
	DateResolved     *Date         `gorm:"column:Date_Resolved"`
	Cost             float64       `gorm:"column:Cost"`
}

func (MaintenanceRequest) TableName() string {
	return "MaintenanceRequests"
}
