package web

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"permits/internal/app"
	"permits/internal/reports"
	"permits/internal/ui/browser"
	"permits/internal/ui/editor"
	"permits/internal/ui/notify"
)

type Handler struct {
	Controller *app.Controller
	Catalog    editor.TypeLoader
}

func NewHandler(controller *app.Controller, catalog editor.TypeLoader) *Handler {
	return &Handler{Controller: controller, Catalog: catalog}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.handleIndex)
	r.Get("/permissions/new", h.handleNewForm)
	r.Get("/permissions/{permissionID}/edit", h.handleEditForm)
	r.Post("/permissions", h.handleSubmit)
	r.Post("/permissions/cancel", h.handleCancel)
	r.Get("/permissions/export.pdf", h.handleExport)
	r.Post("/notifications/dismiss", h.handleDismiss)
}

type indexPage struct {
	Table   browser.Table
	Loading bool
	Notice  *notify.Notice
}

type formPage struct {
	Session *editor.Session
	Issues  []editor.Issue
	Notice  *notify.Notice
}

func (h *Handler) notice() *notify.Notice {
	if current, ok := h.Controller.Notice(); ok {
		return &current
	}
	return nil
}

// buildTable fetches the catalog for this view only; the editor performs
// its own load when it opens.
func (h *Handler) buildTable(r *http.Request) browser.Table {
	types, err := h.Catalog.ListTypes(r.Context())
	if err != nil {
		slog.Warn("loading permission types failed", "err", err)
	}
	return browser.BuildTable(h.Controller.Records(), types)
}

func (h *Handler) handleIndex(w http.ResponseWriter, r *http.Request) {
	render(w, "index.html", indexPage{
		Table:   h.buildTable(r),
		Loading: h.Controller.Loading(),
		Notice:  h.notice(),
	})
}

func (h *Handler) handleNewForm(w http.ResponseWriter, r *http.Request) {
	session := h.Controller.OpenCreate(r.Context())
	render(w, "form.html", formPage{Session: session, Notice: h.notice()})
}

func (h *Handler) handleEditForm(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "permissionID"), 10, 64)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	record, ok := h.Controller.Record(id)
	if !ok {
		http.NotFound(w, r)
		return
	}
	session := h.Controller.OpenEdit(r.Context(), record)
	render(w, "form.html", formPage{Session: session, Notice: h.notice()})
}

func (h *Handler) handleSubmit(w http.ResponseWriter, r *http.Request) {
	session := h.Controller.Editor()
	if session == nil {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form payload", http.StatusBadRequest)
		return
	}
	for _, field := range []string{"nombreEmpleado", "apellidoEmpleado", "tipoPermiso", "fechaPermiso"} {
		if r.PostForm.Has(field) {
			session.SetField(field, r.PostForm.Get(field))
		}
	}

	issues, err := h.Controller.Submit(r.Context())
	if len(issues) > 0 || err != nil {
		// The session stays open; re-render with whatever it holds.
		render(w, "form.html", formPage{Session: session, Issues: issues, Notice: h.notice()})
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handler) handleCancel(w http.ResponseWriter, r *http.Request) {
	h.Controller.CloseEditor()
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handler) handleExport(w http.ResponseWriter, r *http.Request) {
	payload, err := reports.PermissionList(h.buildTable(r))
	if err != nil {
		http.Error(w, "export failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="permisos.pdf"`)
	_, _ = w.Write(payload)
}

func (h *Handler) handleDismiss(w http.ResponseWriter, r *http.Request) {
	h.Controller.DismissNotice()
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
