package model

// Default values of a freshly created package
const (
	DefaultPackageName     = "com.mycompany.mypackage"
	DefaultPackageVersion  = "0.1.0-preview.1"
	DefaultPlatformVersion = "2018.4"

	DefaultAuthorName  = "Pixel Wizards"
	DefaultAuthorEmail = "support@pixelwizards.ca"
	DefaultAuthorURL   = "www.pixelwizards.ca"
)

// Author represents the author block of a package manifest
type Author struct {
	Name  string `toml:"name" yaml:"name"`
	Email string `toml:"email" yaml:"email"`
	URL   string `toml:"url" yaml:"url"`
}

// NewAuthor returns an Author filled with placeholder values
func NewAuthor() Author {
	return Author{
		Name:  DefaultAuthorName,
		Email: DefaultAuthorEmail,
		URL:   DefaultAuthorURL,
	}
}

// Dependency is a named reference to another package and its required version
type Dependency struct {
	Name    string `toml:"name" yaml:"name"`
	Version string `toml:"version" yaml:"version"`
}

// PackageManifest describes a package's identity, metadata and dependencies
type PackageManifest struct {
	Name            string       `toml:"name" yaml:"name"`
	DisplayName     string       `toml:"display_name" yaml:"display_name"`
	Version         string       `toml:"version" yaml:"version"`
	PlatformVersion string       `toml:"unity" yaml:"unity"` // Target editor version
	Description     string       `toml:"description" yaml:"description"`
	Category        string       `toml:"category" yaml:"category"`
	Author          Author       `toml:"author" yaml:"author"`
	Keywords        []string     `toml:"keywords" yaml:"keywords"`
	Dependencies    []Dependency `toml:"dependencies" yaml:"dependencies"`
}

// NewPackageManifest creates a manifest with placeholder defaults. It fully
// replaces any earlier in-memory state when used for "New Package".
func NewPackageManifest() *PackageManifest {
	return &PackageManifest{
		Name:            DefaultPackageName,
		Version:         DefaultPackageVersion,
		PlatformVersion: DefaultPlatformVersion,
		Author:          NewAuthor(),
		Keywords:        []string{},
		Dependencies:    []Dependency{},
	}
}

// AddKeyword appends an empty keyword
func (m *PackageManifest) AddKeyword() {
	m.Keywords = append(m.Keywords, "")
}

// SetKeyword replaces the keyword at index. It returns false if index is out of range.
func (m *PackageManifest) SetKeyword(index int, value string) bool {
	if index < 0 || index >= len(m.Keywords) {
		return false
	}
	m.Keywords[index] = value
	return true
}

// RemoveKeyword removes the keyword at index. An out of range index leaves
// the list unchanged and returns false.
func (m *PackageManifest) RemoveKeyword(index int) bool {
	if index < 0 || index >= len(m.Keywords) {
		return false
	}
	m.Keywords = append(m.Keywords[:index], m.Keywords[index+1:]...)
	return true
}

// AddDependency appends a dependency with empty fields
func (m *PackageManifest) AddDependency() {
	m.Dependencies = append(m.Dependencies, Dependency{})
}

// SetDependency replaces the dependency at index. It returns false if index is out of range.
func (m *PackageManifest) SetDependency(index int, name, version string) bool {
	if index < 0 || index >= len(m.Dependencies) {
		return false
	}
	m.Dependencies[index] = Dependency{Name: name, Version: version}
	return true
}

// RemoveDependency removes the dependency at index with the same bounds
// policy as RemoveKeyword.
func (m *PackageManifest) RemoveDependency(index int) bool {
	if index < 0 || index >= len(m.Dependencies) {
		return false
	}
	m.Dependencies = append(m.Dependencies[:index], m.Dependencies[index+1:]...)
	return true
}

// Violation describes a single rule a manifest does not satisfy
type Violation struct {
	Field   string
	Message string
}

func (v Violation) String() string {
	return v.Field + ": " + v.Message
}
