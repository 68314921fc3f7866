package browser

import (
	"fmt"

	"permits/internal/domain/permissions"
)

const (
	// UnknownTypeLabel marks a record whose type id is absent from the
	// loaded catalog; the row is still rendered.
	UnknownTypeLabel = "Desconocido"

	// EmptyMessage is the single placeholder row for an empty record set.
	EmptyMessage = "No hay permisos registrados"
)

// Accent is the visual category of a row. The mapping is static display
// configuration, independent of the catalog data.
type Accent string

const (
	AccentPrimary Accent = "primary"
	AccentWarning Accent = "warning"
	AccentInfo    Accent = "info"
	AccentSuccess Accent = "success"
	AccentDefault Accent = "default"
)

// Row is one rendered permission record. Record keeps the full source
// value so an edit request can carry it unchanged.
type Row struct {
	Record    permissions.Permission
	TypeLabel string
	Accent    Accent
	DateLabel string
}

// Table is the view model of the record browser. Placeholder is set, and
// Rows empty, when there are no records.
type Table struct {
	Rows        []Row
	Placeholder string
}

// AccentFor maps the four known type ids to their accents; anything else
// gets the neutral default.
func AccentFor(typeID int64) Accent {
	switch typeID {
	case 1:
		return AccentPrimary
	case 2:
		return AccentWarning
	case 3:
		return AccentInfo
	case 4:
		return AccentSuccess
	default:
		return AccentDefault
	}
}

// TypeLabel resolves the description for a type id by exact match.
func TypeLabel(typeID int64, types []permissions.PermissionType) string {
	for _, t := range types {
		if t.ID == typeID {
			return t.Description
		}
	}
	return UnknownTypeLabel
}

var spanishMonths = [...]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

// FormatDate renders a timestamp as a long-form es-ES calendar date,
// e.g. "1 de marzo de 2024". An unparseable value is returned as-is.
func FormatDate(value string) string {
	parsed, err := permissions.ParseDate(value)
	if err != nil || parsed.IsZero() {
		return value
	}
	parsed = parsed.UTC()
	return fmt.Sprintf("%d de %s de %d", parsed.Day(), spanishMonths[parsed.Month()-1], parsed.Year())
}

// BuildTable annotates each record with its label, accent and date text.
func BuildTable(records []permissions.Permission, types []permissions.PermissionType) Table {
	if len(records) == 0 {
		return Table{Placeholder: EmptyMessage}
	}
	rows := make([]Row, 0, len(records))
	for _, record := range records {
		rows = append(rows, Row{
			Record:    record,
			TypeLabel: TypeLabel(record.TypeID, types),
			Accent:    AccentFor(record.TypeID),
			DateLabel: FormatDate(record.Date),
		})
	}
	return Table{Rows: rows}
}
