package http

import (
	"context"
	_ "embed"
	"fmt"
	"net/http"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
)

//go:embed openapi.yaml
var rawSpec []byte

// loadSpec parses and validates the embedded OpenAPI document once.
var loadSpec = sync.OnceValues(func() (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(rawSpec)
	if err != nil {
		return nil, fmt.Errorf("load openapi spec: %w", err)
	}
	if err := doc.Validate(loader.Context); err != nil {
		return nil, fmt.Errorf("invalid openapi spec: %w", err)
	}
	return doc, nil
})

// validateRequest checks r against the operation declared for method and path.
// The body of r must be re-readable (it is consumed and restored by the filter).
func validateRequest(ctx context.Context, r *http.Request, method, path string, params map[string]string) error {
	doc, err := loadSpec()
	if err != nil {
		return err
	}
	item := doc.Paths.Value(path)
	if item == nil || item.GetOperation(method) == nil {
		return fmt.Errorf("no operation %s %s in openapi spec", method, path)
	}

	route := &routers.Route{
		Spec:      doc,
		Path:      path,
		PathItem:  item,
		Method:    method,
		Operation: item.GetOperation(method),
	}
	return openapi3filter.ValidateRequest(ctx, &openapi3filter.RequestValidationInput{
		Request:    r,
		PathParams: params,
		Route:      route,
	})
}

// OpenAPI handles GET /openapi.yaml.
func (s *Server) OpenAPI(w http.ResponseWriter, r *http.Request) {
	if _, err := loadSpec(); err != nil {
		http.Error(w, "Failed to load spec", http.StatusInternalServerError)
		s.Logger.Error("Failed to load OpenAPI spec", "error", err)
		return
	}
	w.Header().Set("Content-Type", "text/yaml")
	w.Write(rawSpec)
}
