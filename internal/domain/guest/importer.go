package guest

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// ColumnMapping assigns uploaded column headers to the four canonical guest
// fields. Empty means unmapped.
type ColumnMapping struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

// ParseCSV reads header-keyed rows from CSV input. The first record is the
// header row; headers are trimmed. Rows shorter than the header are padded
// with empty fields.
func ParseCSV(r io.Reader) ([]string, []map[string]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrUnparseableFile, err)
	}
	if len(records) < 2 {
		return nil, nil, ErrNoDataRows
	}

	columns := make([]string, len(records[0]))
	for i, column := range records[0] {
		columns[i] = strings.TrimSpace(column)
	}

	rows := make([]map[string]string, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make(map[string]string, len(columns))
		for i, column := range columns {
			if i < len(record) {
				row[column] = record[i]
			} else {
				row[column] = ""
			}
		}
		rows = append(rows, row)
	}

	return columns, rows, nil
}

// AutoMapColumns heuristically assigns columns to canonical fields by
// case-insensitive substring matching. First match wins; unmatched fields
// stay empty.
func AutoMapColumns(columns []string) ColumnMapping {
	lower := make([]string, len(columns))
	for i, column := range columns {
		lower[i] = strings.ToLower(column)
	}

	find := func(match func(string) bool) string {
		for i, column := range lower {
			if match(column) {
				return columns[i]
			}
		}
		return ""
	}

	firstName := find(func(c string) bool { return strings.Contains(c, "first") && strings.Contains(c, "name") })
	if firstName == "" {
		firstName = find(func(c string) bool { return c == "firstname" })
	}
	lastName := find(func(c string) bool { return strings.Contains(c, "last") && strings.Contains(c, "name") })
	if lastName == "" {
		lastName = find(func(c string) bool { return c == "lastname" })
	}

	return ColumnMapping{
		FirstName: firstName,
		LastName:  lastName,
		Email:     find(func(c string) bool { return strings.Contains(c, "email") }),
		Phone:     find(func(c string) bool { return strings.Contains(c, "phone") || strings.Contains(c, "mobile") }),
	}
}

// buildImportedGuests converts confirmed rows into guest records. Only rows
// with a non-empty mapped first or last name survive.
func buildImportedGuests(weddingID string, rows []map[string]string, mapping ColumnMapping) ([]*Guest, error) {
	if mapping.FirstName == "" && mapping.LastName == "" {
		return nil, ErrMappingRequired
	}

	guests := make([]*Guest, 0, len(rows))
	for _, row := range rows {
		firstName := mappedValue(row, mapping.FirstName)
		lastName := mappedValue(row, mapping.LastName)
		if firstName == "" && lastName == "" {
			continue
		}

		id, err := newID()
		if err != nil {
			return nil, err
		}
		guests = append(guests, &Guest{
			ID:        id,
			WeddingID: weddingID,
			FirstName: firstName,
			LastName:  lastName,
			Name:      fullName(firstName, lastName),
			Email:     mappedValue(row, mapping.Email),
			Phone:     mappedValue(row, mapping.Phone),
		})
	}

	if len(guests) == 0 {
		return nil, ErrNoImportableRows
	}
	return guests, nil
}

func mappedValue(row map[string]string, column string) string {
	if column == "" {
		return ""
	}
	return strings.TrimSpace(row[column])
}
