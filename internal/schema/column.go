package schema

import (
	"reflect"

	GORMSchema "gorm.io/gorm/schema"
)

// Column represents a gorm field
type Column struct {
	*GORMSchema.Field
}

// ColumnName is the name the column carries in the store.
func (c *Column) ColumnName() string {
	return c.DBName
}

// Nullable reports whether the column may hold NULL, which is the case for
// pointer fields only.
func (c *Column) Nullable() bool {
	return c.FieldType.Kind() == reflect.Ptr
}
