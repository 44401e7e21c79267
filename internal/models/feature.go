package models

// Feature is an amenity from the fixed feature catalog
type Feature struct {
	FeatureID   int    `gorm:"column:Feature_ID;primaryKey;autoIncrement:false"`
	Description string `gorm:"column:Feature_Description"`
	Type        string `gorm:"column:Feature_Type"`
	SubType     string `gorm:"column:Feature_Sub_Type"`
}

func (Feature) TableName() string {
	return "Features"
}

// PropertyFeature links a property to one of its features
type PropertyFeature struct {
	PropertyID int `gorm:"column:Property_ID;primaryKey;autoIncrement:false"`
	FeatureID  int `gorm:"column:Feature_ID;primaryKey;autoIncrement:false"`
}

func (PropertyFeature) TableName() string {
	return "Property_Features"
}
