package agent

import (
	"regexp"
	"sort"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/festpass/festpass/internal/domain"
)

// ToolExtensionKey is the OpenAPI extension that marks an operation as an
// agent tool. Operations without it are never exposed to the model.
const ToolExtensionKey = "x-agent-tool"

var pathPlaceholderRe = regexp.MustCompile(`\{([^{}]+)\}`)

// Registry derives tool definitions from an OpenAPI description. It is pure:
// derivation never touches the network and is repeated on every call so the
// result always reflects the document it was built from.
type Registry struct {
	doc     *openapi3.T
	baseURL string
}

// NewRegistry creates a registry over a parsed OpenAPI document.
func NewRegistry(doc *openapi3.T, baseURL string) *Registry {
	return &Registry{doc: doc, baseURL: baseURL}
}

// Derive returns the tool definitions for every operation carrying a valid
// agent tool marker, in sorted path and method order.
func (r *Registry) Derive() []domain.ToolDefinition {
	defs := []domain.ToolDefinition{}
	if r.doc == nil || r.doc.Paths == nil {
		return defs
	}

	pathMap := r.doc.Paths.Map()
	paths := make([]string, 0, len(pathMap))
	for p := range pathMap {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	for _, path := range paths {
		item := pathMap[path]
		if item == nil {
			continue
		}
		operations := item.Operations()
		methods := make([]string, 0, len(operations))
		for m := range operations {
			methods = append(methods, m)
		}
		sort.Strings(methods)

		for _, method := range methods {
			op := operations[method]
			marker, ok := parseToolMarker(op.Extensions[ToolExtensionKey])
			if !ok {
				continue
			}
			defs = append(defs, domain.ToolDefinition{
				Name:        marker.Name,
				Description: toolDescription(marker, op),
				InputSchema: buildInputSchema(path, item, op, method),
				Method:      method,
				Path:        path,
				BaseURL:     r.baseURL,
			})
		}
	}
	return defs
}

// toolMarker is the decoded x-agent-tool extension payload.
type toolMarker struct {
	Name        string
	Description string
}

// parseToolMarker decodes the extension value. Malformed markers, missing
// names and explicit enabled=false all mean the operation is not exposed.
func parseToolMarker(raw any) (toolMarker, bool) {
	fields, ok := raw.(map[string]any)
	if !ok {
		return toolMarker{}, false
	}
	name, _ := fields["name"].(string)
	if name == "" {
		return toolMarker{}, false
	}
	if enabled, present := fields["enabled"]; present {
		on, isBool := enabled.(bool)
		if !isBool || !on {
			return toolMarker{}, false
		}
	}
	description, _ := fields["description"].(string)
	return toolMarker{Name: name, Description: description}, true
}

func toolDescription(marker toolMarker, op *openapi3.Operation) string {
	if marker.Description != "" {
		return marker.Description
	}
	if op.Summary != "" {
		return op.Summary
	}
	return op.Description
}

// buildInputSchema merges the three argument sources of an operation into one
// flat object schema. Later sources win on name collision: path placeholders,
// then declared query parameters, then request body properties.
func buildInputSchema(path string, item *openapi3.PathItem, op *openapi3.Operation, method string) domain.ToolSchema {
	schema := domain.ToolSchema{
		Type:       "object",
		Properties: map[string]domain.ToolProperty{},
	}

	for _, match := range pathPlaceholderRe.FindAllStringSubmatch(path, -1) {
		name := match[1]
		schema.Properties[name] = domain.ToolProperty{
			Type:        "string",
			Description: "Path parameter " + name,
		}
		schema.Required = appendRequired(schema.Required, name)
	}

	params := append(append([]*openapi3.ParameterRef{}, item.Parameters...), op.Parameters...)
	for _, ref := range params {
		if ref == nil || ref.Value == nil || ref.Value.In != openapi3.ParameterInQuery {
			continue
		}
		p := ref.Value
		schema.Properties[p.Name] = domain.ToolProperty{
			Type:        schemaRefType(p.Schema),
			Description: p.Description,
		}
		if p.Required {
			schema.Required = appendRequired(schema.Required, p.Name)
		}
	}

	if method != "GET" && op.RequestBody != nil && op.RequestBody.Value != nil {
		if media := op.RequestBody.Value.Content.Get("application/json"); media != nil && media.Schema != nil && media.Schema.Value != nil {
			body := media.Schema.Value
			names := make([]string, 0, len(body.Properties))
			for name := range body.Properties {
				names = append(names, name)
			}
			sort.Strings(names)
			for _, name := range names {
				prop := body.Properties[name]
				schema.Properties[name] = domain.ToolProperty{
					Type:        schemaRefType(prop),
					Description: schemaRefDescription(prop),
				}
			}
			for _, name := range body.Required {
				schema.Required = appendRequired(schema.Required, name)
			}
		}
	}

	return schema
}

func schemaRefType(ref *openapi3.SchemaRef) string {
	if ref == nil || ref.Value == nil || ref.Value.Type == nil || len(*ref.Value.Type) == 0 {
		return "string"
	}
	return (*ref.Value.Type)[0]
}

func schemaRefDescription(ref *openapi3.SchemaRef) string {
	if ref == nil || ref.Value == nil {
		return ""
	}
	return ref.Value.Description
}

func appendRequired(required []string, name string) []string {
	for _, r := range required {
		if r == name {
			return required
		}
	}
	return append(required, name)
}
