package permissions

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Repository performs remote reads and writes of permission records.
// Each call is a single request-response exchange: no retry, no cache.
type Repository struct {
	baseURL string
	client  *http.Client
}

func NewRepository(baseURL string, timeout time.Duration) *Repository {
	return &Repository{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

// List returns all records in whatever order the backend uses.
func (r *Repository) List(ctx context.Context) ([]Permission, error) {
	var records []Permission
	url := r.baseURL + "/permissions"
	if err := doJSON(ctx, r.client, "list permissions", http.MethodGet, url, nil, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// Create submits a new record and returns it with the backend-assigned id.
func (r *Repository) Create(ctx context.Context, input CreatePermission) (*Permission, error) {
	var created Permission
	url := r.baseURL + "/permissions/request"
	if err := doJSON(ctx, r.client, "create permission", http.MethodPost, url, input, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// Update modifies the record identified by id and returns the new state.
func (r *Repository) Update(ctx context.Context, id int64, input UpdatePermission) (*Permission, error) {
	var updated Permission
	url := fmt.Sprintf("%s/permissions/modify/%d", r.baseURL, id)
	if err := doJSON(ctx, r.client, "update permission", http.MethodPut, url, input, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}
