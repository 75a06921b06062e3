package guest

import (
	"errors"
	"strings"
	"testing"
)

func TestParseCSV(t *testing.T) {
	input := "First Name, Last Name ,Email Address,Mobile\n" +
		"John,Smith,john@example.com,555-0101\n" +
		"Jane,Doe,,\n"

	columns, rows, err := ParseCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ParseCSV: %v", err)
	}

	want := []string{"First Name", "Last Name", "Email Address", "Mobile"}
	if len(columns) != len(want) {
		t.Fatalf("columns = %v", columns)
	}
	for i, column := range want {
		if columns[i] != column {
			t.Errorf("column[%d] = %q, want %q (trimmed)", i, columns[i], column)
		}
	}

	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if rows[0]["Email Address"] != "john@example.com" {
		t.Errorf("row keyed by header: %v", rows[0])
	}
	if rows[1]["Mobile"] != "" {
		t.Errorf("empty cell must stay empty, got %q", rows[1]["Mobile"])
	}
}

func TestParseCSVPadsShortRows(t *testing.T) {
	_, rows, err := ParseCSV(strings.NewReader("First Name,Email\nJohn\n"))
	if err != nil {
		t.Fatalf("ParseCSV: %v", err)
	}
	if got, ok := rows[0]["Email"]; !ok || got != "" {
		t.Errorf("short row must be padded with empty fields, got %v", rows[0])
	}
}

func TestParseCSVHeaderOnly(t *testing.T) {
	if _, _, err := ParseCSV(strings.NewReader("First Name,Last Name\n")); !errors.Is(err, ErrNoDataRows) {
		t.Errorf("err = %v, want ErrNoDataRows", err)
	}
	if _, _, err := ParseCSV(strings.NewReader("")); !errors.Is(err, ErrNoDataRows) {
		t.Errorf("empty input err = %v, want ErrNoDataRows", err)
	}
}

func TestParseCSVMalformed(t *testing.T) {
	input := "a,b\n\"unterminated\n"
	if _, _, err := ParseCSV(strings.NewReader(input)); !errors.Is(err, ErrUnparseableFile) {
		t.Errorf("err = %v, want ErrUnparseableFile", err)
	}
}

func TestAutoMapColumns(t *testing.T) {
	mapping := AutoMapColumns([]string{"First Name", "Last Name", "Email Address", "Mobile"})

	if mapping.FirstName != "First Name" {
		t.Errorf("FirstName mapped to %q", mapping.FirstName)
	}
	if mapping.LastName != "Last Name" {
		t.Errorf("LastName mapped to %q", mapping.LastName)
	}
	if mapping.Email != "Email Address" {
		t.Errorf("Email mapped to %q", mapping.Email)
	}
	if mapping.Phone != "Mobile" {
		t.Errorf("Phone mapped to %q", mapping.Phone)
	}
}

func TestAutoMapColumnsCompactHeaders(t *testing.T) {
	mapping := AutoMapColumns([]string{"firstname", "lastname", "EMAIL", "Phone Number"})

	if mapping.FirstName != "firstname" || mapping.LastName != "lastname" {
		t.Errorf("compact headers not mapped: %+v", mapping)
	}
	if mapping.Email != "EMAIL" || mapping.Phone != "Phone Number" {
		t.Errorf("contact headers not mapped: %+v", mapping)
	}
}

func TestAutoMapColumnsNoNameColumns(t *testing.T) {
	mapping := AutoMapColumns([]string{"Name", "Email"})

	// A bare "Name" column matches neither first nor last name; the caller
	// has to map it manually before confirming.
	if mapping.FirstName != "" || mapping.LastName != "" {
		t.Errorf("bare Name column must stay unmapped: %+v", mapping)
	}
	if mapping.Email != "Email" {
		t.Errorf("Email mapped to %q", mapping.Email)
	}
}

func TestAutoMapColumnsFirstMatchWins(t *testing.T) {
	mapping := AutoMapColumns([]string{"Email (home)", "Email (work)"})
	if mapping.Email != "Email (home)" {
		t.Errorf("Email mapped to %q, want the first match", mapping.Email)
	}
}

func TestBuildImportedGuests(t *testing.T) {
	rows := []map[string]string{
		{"First Name": " John ", "Last Name": "Smith", "Email Address": "john@example.com", "Mobile": "555-0101"},
		{"First Name": "", "Last Name": "  ", "Email Address": "noname@example.com"},
		{"First Name": "Jane", "Last Name": "", "Mobile": "555-0102"},
	}
	mapping := ColumnMapping{FirstName: "First Name", LastName: "Last Name", Email: "Email Address", Phone: "Mobile"}

	guests, err := buildImportedGuests("w1", rows, mapping)
	if err != nil {
		t.Fatalf("buildImportedGuests: %v", err)
	}

	if len(guests) != 2 {
		t.Fatalf("got %d guests, want 2 (nameless row dropped)", len(guests))
	}
	if guests[0].Name != "John Smith" || guests[0].FirstName != "John" {
		t.Errorf("guest[0] = %+v, values must be trimmed", guests[0])
	}
	if guests[0].Email != "john@example.com" || guests[0].Phone != "555-0101" {
		t.Errorf("guest[0] contacts = %q/%q", guests[0].Email, guests[0].Phone)
	}
	if guests[1].Name != "Jane" {
		t.Errorf("guest[1].Name = %q, single name must stand alone", guests[1].Name)
	}
	if guests[0].ID == "" || guests[0].ID == guests[1].ID {
		t.Error("imported guests must get fresh distinct ids")
	}
	if guests[0].WeddingID != "w1" {
		t.Errorf("WeddingID = %q", guests[0].WeddingID)
	}
}

func TestBuildImportedGuestsErrors(t *testing.T) {
	rows := []map[string]string{{"Email": "a@example.com"}}

	if _, err := buildImportedGuests("w1", rows, ColumnMapping{Email: "Email"}); !errors.Is(err, ErrMappingRequired) {
		t.Errorf("no name mapping err = %v, want ErrMappingRequired", err)
	}

	mapping := ColumnMapping{FirstName: "First Name"}
	empty := []map[string]string{{"First Name": "   "}}
	if _, err := buildImportedGuests("w1", empty, mapping); !errors.Is(err, ErrNoImportableRows) {
		t.Errorf("all rows dropped err = %v, want ErrNoImportableRows", err)
	}
}
