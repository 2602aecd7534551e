package draft

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/upmtools/upmpack/pkg/domain/model"
	"github.com/upmtools/upmpack/pkg/domain/types"
)

// Format is the on-disk encoding of a draft file
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// FormatOf picks the draft format from the file extension. Unknown
// extensions are treated as TOML.
func FormatOf(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// Load reads a draft file. Fields missing from the file keep the defaults
// of a new package.
func Load(path string) (*model.Draft, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read draft file", goerr.V("path", path), goerr.T(types.ErrTagDraft))
	}

	d, err := Decode(data, FormatOf(path))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to decode draft file", goerr.V("path", path))
	}
	return d, nil
}

// Decode parses draft contents in the given format
func Decode(data []byte, format Format) (*model.Draft, error) {
	d := model.NewDraft()

	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, d); err != nil {
			return nil, goerr.Wrap(err, "invalid YAML draft", goerr.T(types.ErrTagDraft))
		}
	default:
		if err := toml.Unmarshal(data, d); err != nil {
			return nil, goerr.Wrap(err, "invalid TOML draft", goerr.T(types.ErrTagDraft))
		}
	}

	if d.Package.Keywords == nil {
		d.Package.Keywords = []string{}
	}
	if d.Package.Dependencies == nil {
		d.Package.Dependencies = []model.Dependency{}
	}
	return d, nil
}

// Encode renders a draft in the given format
func Encode(d *model.Draft, format Format) ([]byte, error) {
	var buf bytes.Buffer

	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(d); err != nil {
			return nil, goerr.Wrap(err, "failed to encode YAML draft", goerr.T(types.ErrTagDraft))
		}
		if err := enc.Close(); err != nil {
			return nil, goerr.Wrap(err, "failed to flush YAML draft", goerr.T(types.ErrTagDraft))
		}
	default:
		enc := toml.NewEncoder(&buf)
		enc.SetIndentTables(true)
		if err := enc.Encode(d); err != nil {
			return nil, goerr.Wrap(err, "failed to encode TOML draft", goerr.T(types.ErrTagDraft))
		}
	}

	return buf.Bytes(), nil
}

// Save writes a draft file, replacing any existing content
func Save(path string, d *model.Draft) error {
	data, err := Encode(d, FormatOf(path))
	if err != nil {
		return goerr.Wrap(err, "failed to encode draft", goerr.V("path", path))
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return goerr.Wrap(err, "failed to write draft file", goerr.V("path", path), goerr.T(types.ErrTagDraft))
	}
	return nil
}
