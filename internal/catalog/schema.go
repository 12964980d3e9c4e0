// internal/catalog/schema.go
package catalog

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// documentSchema guards catalog override files before they are decoded.
// Structural invariants that a JSON Schema cannot express (range ordering,
// chart monotonicity, duplicate detection) are enforced in Store.check.
const documentSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["variants", "sizeChart", "guided", "orders", "faqs"],
  "properties": {
    "variants": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "required": ["id", "brand", "model", "sizeLabel", "footLengthCm", "footWidthCm", "profile"],
        "properties": {
          "id": {"type": "string", "minLength": 1},
          "brand": {"type": "string", "minLength": 1},
          "model": {"type": "string", "minLength": 1},
          "subType": {"type": "string"},
          "sizeLabel": {"type": "string", "minLength": 1},
          "footLengthCm": {"$ref": "#/definitions/range"},
          "footWidthCm": {"$ref": "#/definitions/range"},
          "footThicknessMm": {"$ref": "#/definitions/range"},
          "profile": {"enum": ["narrow", "standard", "wide"]},
          "notes": {"type": "string"},
          "comingSoon": {"type": "boolean"}
        }
      }
    },
    "sizeChart": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "required": ["mondoCm", "us", "uk", "eu"],
        "properties": {
          "mondoCm": {"type": "number"},
          "us": {"type": "number"},
          "uk": {"type": "number"},
          "eu": {"type": "number"}
        }
      }
    },
    "guided": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["name", "categories"],
        "properties": {
          "name": {"type": "string", "minLength": 1},
          "categories": {
            "type": "array",
            "items": {
              "type": "object",
              "required": ["name", "products"],
              "properties": {
                "name": {"type": "string", "minLength": 1},
                "products": {
                  "type": "array",
                  "items": {
                    "type": "object",
                    "required": ["name", "sizes"],
                    "properties": {
                      "name": {"type": "string", "minLength": 1},
                      "sizes": {
                        "type": "array",
                        "items": {
                          "type": "object",
                          "required": ["label", "price", "stock"],
                          "properties": {
                            "label": {"type": "string", "minLength": 1},
                            "price": {"type": "number", "minimum": 0},
                            "stock": {"type": "string"}
                          }
                        }
                      }
                    }
                  }
                }
              }
            }
          }
        }
      }
    },
    "orders": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["code", "customer", "status", "items", "eta", "trackingNumber"],
        "properties": {
          "code": {"type": "string", "pattern": "^(?i)ZA-[0-9]{6}$"},
          "customer": {"type": "string", "minLength": 1},
          "status": {"type": "string"},
          "items": {"type": "array", "items": {"type": "string"}},
          "eta": {"type": "string"},
          "trackingNumber": {"type": "string", "pattern": "^[0-9]{12}$"}
        }
      }
    },
    "faqs": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["question", "answer"],
        "properties": {
          "question": {"type": "string", "minLength": 1},
          "answer": {"type": "string", "minLength": 1}
        }
      }
    }
  },
  "definitions": {
    "range": {
      "type": "array",
      "items": {"type": "number"},
      "minItems": 2,
      "maxItems": 2
    }
  }
}`

func validateDocument(data []byte) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(documentSchema),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return fmt.Errorf("validate catalog document: %w", err)
	}
	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			msgs = append(msgs, e.String())
		}
		return fmt.Errorf("catalog document failed schema validation: %s", strings.Join(msgs, "; "))
	}
	return nil
}
