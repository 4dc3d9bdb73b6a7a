package config

import (
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

// schemaJSON constrains the shape and ranges of lvlgrid.yaml. Cross-field
// rules (max ≥ min, peak ≥ start) live in Validate.
const schemaJSON = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "additionalProperties": false,
  "properties": {
    "log_level": {"type": "string"},
    "workers":   {"type": "integer", "minimum": 0},
    "color":     {"type": "boolean"},
    "cache":     {"type": "string"},
    "heatloss": {
      "type": "object",
      "additionalProperties": false,
      "properties": {
        "part_a": {"$ref": "#/$defs/run"},
        "part_b": {"$ref": "#/$defs/run"}
      }
    },
    "cycle": {
      "type": "object",
      "additionalProperties": false,
      "properties": {
        "limit":   {"type": "integer", "minimum": 1},
        "hashing": {"type": "boolean"},
        "spins":   {"type": "integer", "minimum": 0}
      }
    },
    "garden": {
      "type": "object",
      "additionalProperties": false,
      "properties": {
        "steps":          {"type": "integer", "minimum": 0},
        "infinite_steps": {"type": "integer", "minimum": 0}
      }
    },
    "trails": {
      "type": "object",
      "additionalProperties": false,
      "properties": {
        "start": {"type": "integer"},
        "peak":  {"type": "integer"}
      }
    },
    "expand": {
      "type": "object",
      "additionalProperties": false,
      "properties": {
        "part_a": {"type": "integer", "minimum": 1},
        "part_b": {"type": "integer", "minimum": 1}
      }
    }
  },
  "$defs": {
    "run": {
      "type": "object",
      "additionalProperties": false,
      "properties": {
        "min": {"type": "integer", "minimum": 1},
        "max": {"type": "integer", "minimum": 0}
      }
    }
  }
}`

var schema = jsonschema.MustCompileString("lvlgrid.schema.json", schemaJSON)

// checkSchema validates a raw YAML document against schemaJSON. The document
// is round-tripped through JSON so the validator sees JSON types only.
func checkSchema(b []byte) error {
	var doc any
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return err
	}
	if doc == nil {
		return nil
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return err
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}
