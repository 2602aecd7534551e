package manifest

import (
	"bytes"
	_ "embed"
	"sync"

	"github.com/goccy/go-json"
	"github.com/m-mizutani/goerr/v2"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schema.json
var schemaJSON []byte

const schemaURL = "package-manifest.schema.json"

var (
	schema     *jsonschema.Schema
	schemaOnce sync.Once
	schemaErr  error
)

func loadSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		compiler.Draft = jsonschema.Draft2020
		if err := compiler.AddResource(schemaURL, bytes.NewReader(schemaJSON)); err != nil {
			schemaErr = goerr.Wrap(err, "failed to add manifest schema")
			return
		}
		schema, schemaErr = compiler.Compile(schemaURL)
	})

	return schema, schemaErr
}

// Verify checks a manifest document against the embedded schema
func Verify(doc []byte) error {
	var v any
	if err := json.Unmarshal(doc, &v); err != nil {
		return goerr.Wrap(err, "manifest is not valid JSON")
	}

	s, err := loadSchema()
	if err != nil {
		return goerr.Wrap(err, "failed to load manifest schema")
	}

	if err := s.Validate(v); err != nil {
		return goerr.Wrap(err, "manifest does not match schema")
	}

	return nil
}
