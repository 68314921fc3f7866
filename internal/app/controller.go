package app

import (
	"context"
	"errors"
	"sync"

	"permits/internal/domain/permissions"
	"permits/internal/ui/editor"
	"permits/internal/ui/notify"
)

var ErrNoEditor = errors.New("no editor session is open")

// Repository is the remote record store the controller drives.
type Repository interface {
	List(ctx context.Context) ([]permissions.Permission, error)
	Create(ctx context.Context, input permissions.CreatePermission) (*permissions.Permission, error)
	Update(ctx context.Context, id int64, input permissions.UpdatePermission) (*permissions.Permission, error)
}

// Controller orchestrates the console: the record set, the loading flag,
// the editor session and the transient notification.
type Controller struct {
	mu      sync.Mutex
	repo    Repository
	catalog editor.TypeLoader
	notices *notify.Notifier

	records []permissions.Permission
	loading bool
	session *editor.Session
}

func New(repo Repository, catalog editor.TypeLoader, notices *notify.Notifier) *Controller {
	return &Controller{repo: repo, catalog: catalog, notices: notices}
}

// LoadPermissions replaces the record set with a full fetch. On failure
// the prior record set is kept and a generic error notice is shown.
func (c *Controller) LoadPermissions(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.loadLocked(ctx)
}

func (c *Controller) loadLocked(ctx context.Context) {
	c.loading = true
	defer func() { c.loading = false }()

	records, err := c.repo.List(ctx)
	if err != nil {
		c.notices.Show("Error al cargar permisos", notify.SeverityError)
		return
	}
	c.records = records
}

func (c *Controller) Records() []permissions.Permission {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]permissions.Permission, len(c.records))
	copy(out, c.records)
	return out
}

// Record finds a currently loaded record by id.
func (c *Controller) Record(id int64) (permissions.Permission, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, record := range c.records {
		if record.ID == id {
			return record, true
		}
	}
	return permissions.Permission{}, false
}

func (c *Controller) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}

// OpenCreate starts a blank editor session and triggers its catalog load.
func (c *Controller) OpenCreate(ctx context.Context) *editor.Session {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.session = editor.NewCreate(c.catalog)
	c.session.LoadTypes(ctx)
	return c.session
}

// OpenEdit starts an editor session for an existing record.
func (c *Controller) OpenEdit(ctx context.Context, record permissions.Permission) *editor.Session {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.session = editor.NewEdit(c.catalog, record)
	c.session.LoadTypes(ctx)
	return c.session
}

func (c *Controller) Editor() *editor.Session {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session
}

func (c *Controller) CloseEditor() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.session != nil {
		c.session.Close()
		c.session = nil
	}
}

// Submit routes the open session to create or update. Success shows the
// mode-specific notice and re-runs the full list load; failure shows the
// mode-specific error notice and leaves the session to its own handling.
func (c *Controller) Submit(ctx context.Context) ([]editor.Issue, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	sess := c.session
	if sess == nil {
		return nil, ErrNoEditor
	}
	editing := sess.Editing()

	issues, err := sess.Submit(ctx, repoHandler{repo: c.repo})
	if len(issues) > 0 {
		return issues, nil
	}
	if err != nil {
		if editing {
			c.notices.Show("Error al modificar permiso", notify.SeverityError)
		} else {
			c.notices.Show("Error al crear permiso", notify.SeverityError)
		}
		return nil, err
	}

	if editing {
		c.notices.Show("Permiso modificado exitosamente", notify.SeveritySuccess)
	} else {
		c.notices.Show("Permiso creado exitosamente", notify.SeveritySuccess)
	}
	c.session = nil
	c.loadLocked(ctx)
	return nil, nil
}

func (c *Controller) Notice() (notify.Notice, bool) {
	return c.notices.Current()
}

func (c *Controller) DismissNotice() {
	c.notices.Dismiss()
}

type repoHandler struct {
	repo Repository
}

func (h repoHandler) CreatePermission(ctx context.Context, input permissions.CreatePermission) error {
	_, err := h.repo.Create(ctx, input)
	return err
}

func (h repoHandler) UpdatePermission(ctx context.Context, input permissions.UpdatePermission) error {
	_, err := h.repo.Update(ctx, input.ID, input)
	return err
}
