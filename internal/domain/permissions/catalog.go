package permissions

import (
	"context"
	"net/http"
	"strings"
	"time"
)

// Catalog loads the permission type reference data. Every consumer
// fetches independently; there is no shared cache across views.
type Catalog struct {
	baseURL string
	client  *http.Client
}

func NewCatalog(baseURL string, timeout time.Duration) *Catalog {
	return &Catalog{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

func (c *Catalog) ListTypes(ctx context.Context) ([]PermissionType, error) {
	var types []PermissionType
	url := c.baseURL + "/permissionsTypes/types"
	if err := doJSON(ctx, c.client, "list permission types", http.MethodGet, url, nil, &types); err != nil {
		return nil, err
	}
	return types, nil
}
