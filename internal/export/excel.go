// Package export writes store tables to a spreadsheet workbook.
package export

import (
	"archive/zip"
	"bytes"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	"realestate-seed/internal/logger"
	"realestate-seed/internal/models"
	"realestate-seed/internal/schema"
)

var (
	ErrTableMissing   = errors.New("table does not exist")
	ErrTableEmpty     = errors.New("table is empty")
	ErrColumns        = errors.New("table columns do not match model")
	ErrUnexpectedNull = errors.New("NULL in non-nullable column")
)

// Properties are stamped into the workbook's document properties.
type Properties struct {
	Title       string
	Identifier  string
	Description string
}

// WriteWorkbook reads every table back in store order and writes it as one
// sheet, header row first. Tables backed by a registered model are checked
// against its columns. Nothing is written to path unless every table
// exports.
func WriteWorkbook(db *gorm.DB, tables []string, path string, props Properties) error {
	registered, err := schema.Registry()
	if err != nil {
		return fmt.Errorf("failed to parse models: %w", err)
	}
	byName := make(map[string]*schema.Table, len(registered))
	for _, t := range registered {
		byName[t.TableName()] = t
	}

	f := excelize.NewFile()
	defer f.Close()

	defaultSheet := f.GetSheetName(0)
	for i, table := range tables {
		if i == 0 {
			if err := f.SetSheetName(defaultSheet, table); err != nil {
				return fmt.Errorf("failed to name sheet %s: %w", table, err)
			}
		} else if _, err := f.NewSheet(table); err != nil {
			return fmt.Errorf("failed to add sheet %s: %w", table, err)
		}

		n, err := writeSheet(f, db, table, byName[table])
		if err != nil {
			return err
		}
		logger.Log.Debugf("Exported %d rows from %s", n, table)
	}

	if err := f.SetDocProps(&excelize.DocProperties{
		Title:       props.Title,
		Identifier:  props.Identifier,
		Description: props.Description,
		Creator:     props.Title,
	}); err != nil {
		return fmt.Errorf("failed to set workbook properties: %w", err)
	}

	if err := save(f, path); err != nil {
		return fmt.Errorf("failed to save workbook %s: %w", path, err)
	}
	return nil
}

// save writes the workbook with its zip entries sorted by name. excelize
// emits parts in map order, so the same content would otherwise produce
// different files.
func save(f *excelize.File, path string) error {
	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return err
	}
	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	if err != nil {
		return err
	}
	entries := slices.Clone(zr.File)
	slices.SortFunc(entries, func(a, b *zip.File) int {
		return strings.Compare(a.Name, b.Name)
	})

	out, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := copyEntries(out, entries); err != nil {
		out.Close()
		os.Remove(path)
		return err
	}
	return out.Close()
}

func copyEntries(w io.Writer, entries []*zip.File) error {
	zw := zip.NewWriter(w)
	for _, e := range entries {
		dst, err := zw.CreateHeader(&zip.FileHeader{Name: e.Name, Method: zip.Deflate})
		if err != nil {
			return err
		}
		src, err := e.Open()
		if err != nil {
			return err
		}
		_, err = io.Copy(dst, src)
		src.Close()
		if err != nil {
			return err
		}
	}
	return zw.Close()
}

func writeSheet(f *excelize.File, db *gorm.DB, table string, model *schema.Table) (int, error) {
	if !db.Migrator().HasTable(table) {
		return 0, fmt.Errorf("%w: %s", ErrTableMissing, table)
	}

	rows, err := db.Table(table).Rows()
	if err != nil {
		return 0, fmt.Errorf("failed to read %s: %w", table, err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return 0, fmt.Errorf("failed to read columns of %s: %w", table, err)
	}

	var nullable []bool
	if model != nil {
		if want := model.ColumnNames(); !slices.Equal(columns, want) {
			return 0, fmt.Errorf("%w: %s has %v, want %v", ErrColumns, table, columns, want)
		}
		nullable = make([]bool, len(model.Columns))
		for i, c := range model.Columns {
			nullable[i] = c.Nullable()
		}
	}

	sw, err := f.NewStreamWriter(table)
	if err != nil {
		return 0, fmt.Errorf("failed to open sheet %s: %w", table, err)
	}

	header := make([]interface{}, len(columns))
	for i, c := range columns {
		header[i] = c
	}
	if err := sw.SetRow("A1", header); err != nil {
		return 0, fmt.Errorf("failed to write header of %s: %w", table, err)
	}

	n, err := writeRows(sw, rows, columns, nullable)
	if err != nil {
		return 0, fmt.Errorf("failed to export %s: %w", table, err)
	}
	if n == 0 {
		return 0, fmt.Errorf("%w: %s", ErrTableEmpty, table)
	}

	if err := sw.Flush(); err != nil {
		return 0, fmt.Errorf("failed to flush sheet %s: %w", table, err)
	}
	return n, nil
}

// writeRows streams rows below the header. When nullable is set, a NULL in a
// column it marks false is rejected.
func writeRows(sw *excelize.StreamWriter, rows *sql.Rows, columns []string, nullable []bool) (int, error) {
	width := len(columns)
	values := make([]interface{}, width)
	ptrs := make([]interface{}, width)
	for i := range values {
		ptrs[i] = &values[i]
	}

	n := 0
	for rows.Next() {
		if err := rows.Scan(ptrs...); err != nil {
			return n, err
		}

		cells := make([]interface{}, width)
		for i, v := range values {
			if v == nil && nullable != nil && !nullable[i] {
				return n, fmt.Errorf("%w: %s in row %d", ErrUnexpectedNull, columns[i], n+1)
			}
			cells[i] = cellValue(v)
		}

		cell, err := excelize.CoordinatesToCellName(1, n+2)
		if err != nil {
			return n, err
		}
		if err := sw.SetRow(cell, cells); err != nil {
			return n, err
		}
		n++
	}
	return n, rows.Err()
}

// cellValue maps a scanned column value to what the sheet stores. NULL
// becomes an empty cell and dates are written as text.
func cellValue(v interface{}) interface{} {
	switch val := v.(type) {
	case nil:
		return nil
	case []byte:
		return string(val)
	case time.Time:
		return val.UTC().Format(models.DateLayout)
	default:
		return val
	}
}
