// Package contracts validates request bodies against embedded JSON Schemas
// before anything reaches the store. Each Decode function returns either a
// typed request or a structured field-error list, never both.
package contracts

import (
	"bytes"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schemas/*.json
var schemasFS embed.FS

// Favorite toggle actions accepted by the schema enum.
const (
	ActionAdd    = "add"
	ActionRemove = "remove"
)

// FavoriteToggleRequest adds or removes a favorite for the caller.
type FavoriteToggleRequest struct {
	ConstellationID string `json:"constellationId"`
	Action          string `json:"action"`
}

// ShareRequest asks for a shareable reference to a constellation.
type ShareRequest struct {
	ConstellationID string `json:"constellationId"`
}

// FieldError reports one validation failure tied to a body field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

var (
	favoriteToggleSchema = mustCompile("schemas/favorite_toggle.json")
	shareSchema          = mustCompile("schemas/share.json")
)

func mustCompile(path string) *jsonschema.Schema {
	data, err := schemasFS.ReadFile(path)
	if err != nil {
		panic(fmt.Sprintf("contracts: missing embedded schema %s: %v", path, err))
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(path, bytes.NewReader(data)); err != nil {
		panic(fmt.Sprintf("contracts: failed to add schema %s: %v", path, err))
	}
	schema, err := compiler.Compile(path)
	if err != nil {
		panic(fmt.Sprintf("contracts: failed to compile schema %s: %v", path, err))
	}
	return schema
}

// DecodeFavoriteToggle validates and decodes a favorite-toggle body.
func DecodeFavoriteToggle(body io.Reader) (*FavoriteToggleRequest, []FieldError) {
	data, fieldErrs := validate(body, favoriteToggleSchema)
	if fieldErrs != nil {
		return nil, fieldErrs
	}
	req := &FavoriteToggleRequest{}
	if err := json.Unmarshal(data, req); err != nil {
		return nil, []FieldError{{Field: "body", Message: err.Error()}}
	}
	return req, nil
}

// DecodeShare validates and decodes a share body.
func DecodeShare(body io.Reader) (*ShareRequest, []FieldError) {
	data, fieldErrs := validate(body, shareSchema)
	if fieldErrs != nil {
		return nil, fieldErrs
	}
	req := &ShareRequest{}
	if err := json.Unmarshal(data, req); err != nil {
		return nil, []FieldError{{Field: "body", Message: err.Error()}}
	}
	return req, nil
}

// validate reads the body and checks it against the schema, returning the raw
// bytes on success or the field errors on failure.
func validate(body io.Reader, schema *jsonschema.Schema) ([]byte, []FieldError) {
	data, err := io.ReadAll(body)
	if err != nil {
		return nil, []FieldError{{Field: "body", Message: "failed to read request body"}}
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, []FieldError{{Field: "body", Message: "invalid JSON: " + err.Error()}}
	}

	if err := schema.Validate(doc); err != nil {
		return nil, fieldErrors(err)
	}
	return data, nil
}

// fieldErrors flattens a jsonschema validation error into per-field detail.
func fieldErrors(err error) []FieldError {
	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return []FieldError{{Field: "body", Message: err.Error()}}
	}

	var out []FieldError
	var walk func(e *jsonschema.ValidationError)
	walk = func(e *jsonschema.ValidationError) {
		if len(e.Causes) == 0 {
			out = append(out, FieldError{
				Field:   fieldName(e.InstanceLocation),
				Message: e.Message,
			})
			return
		}
		for _, cause := range e.Causes {
			walk(cause)
		}
	}
	walk(ve)

	if len(out) == 0 {
		out = append(out, FieldError{Field: "body", Message: ve.Message})
	}
	return out
}

// fieldName turns a JSON pointer like "/action" into "action"; the document
// root maps to "body".
func fieldName(instanceLocation string) string {
	name := strings.TrimPrefix(instanceLocation, "/")
	if name == "" {
		return "body"
	}
	return strings.ReplaceAll(name, "/", ".")
}
