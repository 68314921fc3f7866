package permissions

import "time"

// Permission is an employee permission record as the backend returns it.
// TypeDescription is denormalized display data, never authoritative.
type Permission struct {
	ID              int64  `json:"id"`
	FirstName       string `json:"nombreEmpleado"`
	LastName        string `json:"apellidoEmpleado"`
	TypeID          int64  `json:"tipoPermiso"`
	Date            string `json:"fechaPermiso"`
	TypeDescription string `json:"permissionTypeDescription,omitempty"`
}

// PermissionType is immutable reference data.
type PermissionType struct {
	ID          int64  `json:"id"`
	Description string `json:"description"`
}

type CreatePermission struct {
	FirstName string `json:"nombreEmpleado"`
	LastName  string `json:"apellidoEmpleado"`
	TypeID    int64  `json:"tipoPermiso"`
	Date      string `json:"fechaPermiso"`
}

type UpdatePermission struct {
	ID        int64  `json:"id"`
	FirstName string `json:"nombreEmpleado"`
	LastName  string `json:"apellidoEmpleado"`
	TypeID    int64  `json:"tipoPermiso"`
	Date      string `json:"fechaPermiso"`
}

// ParseDate accepts RFC3339 or YYYY-MM-DD.
func ParseDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	if parsed, err := time.Parse(time.RFC3339, value); err == nil {
		return parsed, nil
	}
	return time.Parse("2006-01-02", value)
}
