package llm

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/kaptinlin/jsonrepair"
	"github.com/santhosh-tekuri/jsonschema/v6"
)

// compiledSchemas keeps compiled validators by Schema.Name. lru.New only
// fails for a non-positive size.
var compiledSchemas, _ = lru.New[string, *jsonschema.Schema](32)

// validateResponse checks raw against schema and returns the content to
// keep. Models sometimes emit almost-JSON (trailing commas, single quotes);
// such replies are repaired once before validating. A nil schema accepts
// anything. Failures are *ErrInvalidResponse carrying the original bytes.
func validateResponse(schema *Schema, raw json.RawMessage) (json.RawMessage, error) {
	if schema == nil {
		return raw, nil
	}
	invalid := func(format string, args ...any) error {
		return &ErrInvalidResponse{Content: raw, Err: fmt.Errorf(format, args...)}
	}

	content := raw
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		fixed, rerr := jsonrepair.JSONRepair(string(raw))
		if rerr != nil {
			return nil, invalid("invalid JSON: %w", err)
		}
		if doc, rerr = jsonschema.UnmarshalJSON(strings.NewReader(fixed)); rerr != nil {
			return nil, invalid("invalid JSON: %w", err)
		}
		content = json.RawMessage(fixed)
	}

	compiled, err := compileSchema(schema)
	if err != nil {
		return nil, invalid("compile schema %q: %w", schema.Name, err)
	}
	if err := compiled.Validate(doc); err != nil {
		return nil, invalid("schema validation failed: %w", err)
	}
	return content, nil
}

func compileSchema(schema *Schema) (*jsonschema.Schema, error) {
	if s, ok := compiledSchemas.Get(schema.Name); ok {
		return s, nil
	}

	def, err := json.Marshal(schema.Definition)
	if err != nil {
		return nil, fmt.Errorf("marshal definition: %w", err)
	}
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(def))
	if err != nil {
		return nil, fmt.Errorf("parse definition: %w", err)
	}

	url := "mem://llm/" + schema.Name + ".json"
	c := jsonschema.NewCompiler()
	if err := c.AddResource(url, doc); err != nil {
		return nil, err
	}
	s, err := c.Compile(url)
	if err != nil {
		return nil, err
	}
	// A concurrent compile of the same name may win; either result is valid.
	compiledSchemas.Add(schema.Name, s)
	return s, nil
}
