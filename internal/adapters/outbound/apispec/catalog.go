// Package apispec exposes the agent tool catalog derived from the FestPass
// API description. The default description ships embedded in the binary; an
// override path can be configured for deployments that publish a newer one.
package apispec

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/getkin/kin-openapi/openapi3"

	"github.com/festpass/festpass/internal/agent"
	"github.com/festpass/festpass/internal/domain"
	"github.com/festpass/festpass/internal/telemetry"
)

//go:embed festpass-api.yml
var embeddedSpec []byte

// Catalog adapts the agent registry to the domain.ToolCatalog interface
type Catalog struct {
	registry *agent.Registry
}

// NewCatalog creates a catalog over a parsed API description
func NewCatalog(doc *openapi3.T, baseURL string) Catalog {
	return Catalog{registry: agent.NewRegistry(doc, baseURL)}
}

// ListTools implements domain.ToolCatalog.ListTools
func (c Catalog) ListTools(ctx context.Context) ([]domain.ToolDefinition, error) {
	_, span := telemetry.Start(ctx)
	defer span.End()

	return c.registry.Derive(), nil
}

// LoadDocument parses the API description at path, or the embedded default
// when path is empty.
func LoadDocument(ctx context.Context, path string) (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	loader.Context = ctx

	var (
		doc *openapi3.T
		err error
	)
	if path == "" {
		doc, err = loader.LoadFromData(embeddedSpec)
	} else {
		doc, err = loader.LoadFromFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("load api description: %w", err)
	}

	if err := doc.Validate(ctx); err != nil {
		return nil, fmt.Errorf("validate api description: %w", err)
	}
	return doc, nil
}

// InitToolCatalog initializes the ToolCatalog dependency
type InitToolCatalog struct {
	BaseURL  string `config:"AGENT_API_BASE_URL" default:"http://localhost:8080"`
	SpecPath string `config:"AGENT_API_SPEC_PATH" default:"-"`
}

// Initialize loads the API description and registers the ToolCatalog
func (i InitToolCatalog) Initialize(ctx context.Context) (context.Context, error) {
	path := i.SpecPath
	if path == "-" {
		path = ""
	}
	doc, err := LoadDocument(ctx, path)
	if err != nil {
		return ctx, err
	}
	depend.Register[domain.ToolCatalog](NewCatalog(doc, i.BaseURL))
	return ctx, nil
}
