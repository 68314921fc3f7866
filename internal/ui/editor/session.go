package editor

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"permits/internal/domain/permissions"
)

// DefaultTypeID is the placeholder selection used before the catalog has
// loaded; the lowest-numbered type in the fixed reference data.
const DefaultTypeID int64 = 1

var (
	ErrClosed     = errors.New("editor session is closed")
	ErrSubmitting = errors.New("a submission is already in progress")
)

// TypeLoader is the reference-catalog dependency of a session.
type TypeLoader interface {
	ListTypes(ctx context.Context) ([]permissions.PermissionType, error)
}

// Handler receives the assembled input on submit. Exactly one method is
// invoked per submission, matching the session variant.
type Handler interface {
	CreatePermission(ctx context.Context, input permissions.CreatePermission) error
	UpdatePermission(ctx context.Context, input permissions.UpdatePermission) error
}

// Session is a single-use create or edit form. The variant is fixed at
// construction; an edit session captures the record id internally and
// never exposes it as an editable field.
type Session struct {
	loader TypeLoader

	editing bool
	editID  int64

	FirstName string
	LastName  string
	TypeID    int64
	Date      string // YYYY-MM-DD

	types       []permissions.PermissionType
	typesLoaded bool
	submitting  bool
	closed      bool
}

// NewCreate opens a blank session: empty names, the placeholder type and
// today's date.
func NewCreate(loader TypeLoader) *Session {
	return &Session{
		loader: loader,
		TypeID: DefaultTypeID,
		Date:   time.Now().UTC().Format("2006-01-02"),
	}
}

// NewEdit opens a session populated from an existing record. The date is
// truncated to its calendar day for editing.
func NewEdit(loader TypeLoader, record permissions.Permission) *Session {
	return &Session{
		loader:    loader,
		editing:   true,
		editID:    record.ID,
		FirstName: record.FirstName,
		LastName:  record.LastName,
		TypeID:    record.TypeID,
		Date:      dateOnly(record.Date),
	}
}

func dateOnly(raw string) string {
	parsed, err := permissions.ParseDate(raw)
	if err != nil || parsed.IsZero() {
		return time.Now().UTC().Format("2006-01-02")
	}
	return parsed.UTC().Format("2006-01-02")
}

func (s *Session) Editing() bool { return s.editing }
func (s *Session) Closed() bool  { return s.closed }

// Submitting reports whether a submission is in flight; the cancel and
// submit controls are disabled while it is.
func (s *Session) Submitting() bool { return s.submitting }

// Types returns the loaded catalog; empty until LoadTypes succeeds, in
// which case the selector shows a non-selectable loading placeholder.
func (s *Session) Types() []permissions.PermissionType { return s.types }
func (s *Session) TypesLoaded() bool                   { return s.typesLoaded }

// LoadTypes fetches a fresh catalog. A failed load is logged and leaves
// the selection empty; it does not block the rest of the form.
func (s *Session) LoadTypes(ctx context.Context) {
	types, err := s.loader.ListTypes(ctx)
	if err != nil {
		slog.Warn("loading permission types failed", "err", err)
		return
	}
	s.types = types
	s.typesLoaded = true
}

// SetField binds a form value by its wire name. Unknown names and
// unparseable type ids are ignored.
func (s *Session) SetField(name, value string) {
	switch name {
	case "nombreEmpleado":
		s.FirstName = value
	case "apellidoEmpleado":
		s.LastName = value
	case "tipoPermiso":
		if id, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64); err == nil {
			s.TypeID = id
		}
	case "fechaPermiso":
		s.Date = value
	}
}

// Validate checks required fields against the current state.
func (s *Session) Validate() []Issue {
	v := &validator{}
	v.required("nombreEmpleado", s.FirstName, "employee first name is required")
	v.required("apellidoEmpleado", s.LastName, "employee last name is required")
	v.date("fechaPermiso", s.Date)
	v.knownType("tipoPermiso", s.TypeID, s.types)
	return v.list()
}

// Submit validates, assembles the input for the session variant and hands
// it to the handler. Validation failure returns issues without touching
// the handler. On handler failure the session stays open and the error is
// logged; on success it closes and discards its state.
func (s *Session) Submit(ctx context.Context, handler Handler) ([]Issue, error) {
	if s.closed {
		return nil, ErrClosed
	}
	if s.submitting {
		return nil, ErrSubmitting
	}
	if issues := s.Validate(); len(issues) > 0 {
		return issues, nil
	}

	day, err := permissions.ParseDate(strings.TrimSpace(s.Date))
	if err != nil {
		return []Issue{{Field: "fechaPermiso", Reason: "must be a valid date in YYYY-MM-DD format"}}, nil
	}
	timestamp := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC).Format(time.RFC3339)

	s.submitting = true
	defer func() { s.submitting = false }()

	if s.editing {
		err = handler.UpdatePermission(ctx, permissions.UpdatePermission{
			ID:        s.editID,
			FirstName: s.FirstName,
			LastName:  s.LastName,
			TypeID:    s.TypeID,
			Date:      timestamp,
		})
	} else {
		err = handler.CreatePermission(ctx, permissions.CreatePermission{
			FirstName: s.FirstName,
			LastName:  s.LastName,
			TypeID:    s.TypeID,
			Date:      timestamp,
		})
	}
	if err != nil {
		slog.Error("permission submit failed", "editing", s.editing, "err", err)
		return nil, err
	}

	s.Close()
	return nil, nil
}

// Close discards all in-progress edits; a closed session cannot be
// reused, reopening means constructing a new one.
func (s *Session) Close() {
	s.FirstName = ""
	s.LastName = ""
	s.TypeID = 0
	s.Date = ""
	s.types = nil
	s.typesLoaded = false
	s.closed = true
}
