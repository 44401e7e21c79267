package schema

import (
	"sync"

	GORMSchema "gorm.io/gorm/schema"

	"realestate-seed/internal/models"
)

var cache sync.Map

// Table represents a gorm model
type Table struct {
	*GORMSchema.Schema
	Columns []*Column
}

func (t *Table) TableName() string {
	return t.Table
}

// ColumnNames lists the store column names in declaration order.
func (t *Table) ColumnNames() []string {
	names := make([]string, 0, len(t.Columns))
	for _, c := range t.Columns {
		names = append(names, c.ColumnName())
	}
	return names
}

func CreateTableFromModel(model interface{}) (*Table, error) {
	modelSchema, err := GORMSchema.Parse(model, &cache, GORMSchema.NamingStrategy{})
	if err != nil {
		return nil, err
	}

	columns := make([]*Column, 0, len(modelSchema.Fields))
	for _, field := range modelSchema.Fields {
		if field.DBName == "" {
			continue
		}
		columns = append(columns, &Column{Field: field})
	}

	return &Table{Schema: modelSchema, Columns: columns}, nil
}

// Registry parses every registered model in load order.
func Registry() ([]*Table, error) {
	tables := make([]*Table, 0, len(models.ModelRegistry))
	for _, m := range models.ModelRegistry {
		t, err := CreateTableFromModel(m)
		if err != nil {
			return nil, err
		}
		tables = append(tables, t)
	}
	return tables, nil
}
