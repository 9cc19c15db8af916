package document

import (
	"errors"
	"fmt"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

const schemaV01 = `{
  "type": "object",
  "required": ["version", "categories", "entries"],
  "properties": {
    "version": {"const": "0.1"},
    "categories": {"type": "array", "items": {"type": "string"}},
    "entries": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["category", "title", "categoryIdx"],
        "properties": {
          "category": {"type": "string"},
          "title": {"type": "string"},
          "description": {"type": "string"},
          "categoryIdx": {"type": "number"}
        }
      }
    }
  }
}`

const schemaV02 = `{
  "type": "object",
  "required": ["version", "categories", "entries"],
  "properties": {
    "version": {"const": "0.2"},
    "categories": {"type": "array", "items": {"type": "string"}},
    "entries": {"type": "array", "items": {"$ref": "#/$defs/entry"}}
  },
  "$defs": {
    "entry": {
      "type": "object",
      "required": ["categoryIdx", "title", "orderInCategory"],
      "properties": {
        "categoryIdx": {"type": "integer"},
        "orderInCategory": {"type": "number"},
        "title": {"type": "string"},
        "description": {"type": "string"}
      }
    }
  }
}`

const schemaV03 = `{
  "type": "object",
  "required": ["version", "categories", "entries"],
  "properties": {
    "version": {"const": "0.3"},
    "categories": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["isCollapsed", "title"],
        "properties": {
          "isCollapsed": {"type": "boolean"},
          "title": {"type": "string"}
        }
      }
    },
    "entries": {"type": "array", "items": {"$ref": "#/$defs/entry"}}
  },
  "$defs": {
    "entry": {
      "type": "object",
      "required": ["categoryIdx", "title", "orderInCategory"],
      "properties": {
        "categoryIdx": {"type": "integer"},
        "orderInCategory": {"type": "number"},
        "title": {"type": "string"},
        "description": {"type": "string"}
      }
    }
  }
}`

// schemas holds one compiled schema per known document version.
var schemas = map[string]*jsonschema.Schema{
	"0.1": jsonschema.MustCompileString("board-v0.1.json", schemaV01),
	"0.2": jsonschema.MustCompileString("board-v0.2.json", schemaV02),
	"0.3": jsonschema.MustCompileString("board-v0.3.json", schemaV03),
}

// Validate checks raw against the schema of the version it declares.
func Validate(raw any) error {
	obj, ok := raw.(map[string]any)
	if !ok {
		return fmt.Errorf("%w: top level is not an object", ErrInvalidDocument)
	}
	version, _ := obj["version"].(string)
	return validateVersion(obj, version)
}

func validateVersion(raw any, version string) error {
	schema, ok := schemas[version]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnsupportedVersion, version)
	}
	if err := schema.Validate(raw); err != nil {
		return mapSchemaError(version, err)
	}
	return nil
}

// mapSchemaError converts a jsonschema error into a ValidationError for the
// deepest failing location.
func mapSchemaError(version string, err error) error {
	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return &ValidationError{Version: version, Path: "(root)", Message: err.Error()}
	}
	leaf := ve
	for len(leaf.Causes) > 0 {
		leaf = leaf.Causes[0]
	}
	path := leaf.InstanceLocation
	if path == "" {
		path = "(root)"
	}
	return &ValidationError{Version: version, Path: path, Message: leaf.Message}
}
