package manifest

import (
	"bytes"

	"github.com/goccy/go-json"
	"github.com/m-mizutani/goerr/v2"

	"github.com/upmtools/upmpack/pkg/domain/model"
)

// FileName is the manifest file written at the root of an exported package
const FileName = "package.json"

// document fixes the field order of the emitted manifest
type document struct {
	Name         string       `json:"name"`
	DisplayName  string       `json:"displayName"`
	Version      string       `json:"version"`
	Unity        string       `json:"unity"`
	Description  string       `json:"description"`
	Category     string       `json:"category"`
	Author       author       `json:"author"`
	Keywords     []string     `json:"keywords"`
	Dependencies dependencies `json:"dependencies"`
}

type author struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	URL   string `json:"url"`
}

// dependencies is emitted as an object of name -> version in list order.
// A repeated name keeps the position of its first occurrence and takes
// the version of its last one.
type dependencies struct {
	names    []string
	versions map[string]string
}

func newDependencies(deps []model.Dependency) dependencies {
	d := dependencies{versions: make(map[string]string, len(deps))}
	for _, dep := range deps {
		if _, ok := d.versions[dep.Name]; !ok {
			d.names = append(d.names, dep.Name)
		}
		d.versions[dep.Name] = dep.Version
	}
	return d
}

func (d dependencies) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range d.names {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.MarshalNoEscape(name)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to encode dependency name", goerr.V("name", name))
		}
		value, err := json.MarshalNoEscape(d.versions[name])
		if err != nil {
			return nil, goerr.Wrap(err, "failed to encode dependency version", goerr.V("name", name))
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func newAuthor(a model.Author) author {
	return author{Name: a.Name, Email: a.Email, URL: a.URL}
}

func newDocument(m *model.PackageManifest) *document {
	keywords := make([]string, len(m.Keywords))
	copy(keywords, m.Keywords)

	return &document{
		Name:         m.Name,
		DisplayName:  m.DisplayName,
		Version:      m.Version,
		Unity:        m.PlatformVersion,
		Description:  m.Description,
		Category:     m.Category,
		Author:       newAuthor(m.Author),
		Keywords:     keywords,
		Dependencies: newDependencies(m.Dependencies),
	}
}

// Serialize converts a manifest into an indented JSON document. The output
// is deterministic: the same manifest always yields the same bytes.
// Serialization is write-only; there is no way back to typed dependencies.
func Serialize(m *model.PackageManifest) ([]byte, error) {
	if m == nil {
		return nil, goerr.New("manifest is nil")
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(newDocument(m)); err != nil {
		return nil, goerr.Wrap(err, "failed to serialize manifest", goerr.V("name", m.Name))
	}

	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
