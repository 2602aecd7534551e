package model

import (
	"fmt"
	"strings"
)

// ExportPaths holds the source folder to copy and the folder the package
// directory is created in. Neither is checked before export time.
type ExportPaths struct {
	Source      string `toml:"source" yaml:"source"`
	Destination string `toml:"destination" yaml:"destination"`
}

// Draft is the editable state of one package: the manifest form plus paths
type Draft struct {
	Package PackageManifest `toml:"package" yaml:"package"`
	Paths   ExportPaths     `toml:"paths" yaml:"paths"`
}

// NewDraft creates a draft holding a default manifest and empty paths
func NewDraft() *Draft {
	return &Draft{
		Package: *NewPackageManifest(),
	}
}

// OperationLog is the ordered, human-readable record of one export attempt
type OperationLog struct {
	lines []string
}

// Reset drops all lines
func (l *OperationLog) Reset() {
	l.lines = l.lines[:0]
}

// Append adds lines at the end. Multi-line text is split so that every
// entry is a single line.
func (l *OperationLog) Append(text string) {
	l.lines = append(l.lines, strings.Split(text, "\n")...)
}

// Appendf formats and appends a line
func (l *OperationLog) Appendf(format string, args ...any) {
	l.Append(fmt.Sprintf(format, args...))
}

// Lines returns a copy of the recorded lines
func (l *OperationLog) Lines() []string {
	out := make([]string, len(l.lines))
	copy(out, l.lines)
	return out
}

// String joins all lines with newlines
func (l *OperationLog) String() string {
	return strings.Join(l.lines, "\n")
}

// ExportResult represents the outcome of an export attempt
type ExportResult struct {
	ID           string // Attempt identifier
	OutputDir    string // <destination>/<name>
	ManifestPath string // Path of the written manifest file
	Stats        CopyStats
	Log          []string // Operation log of the attempt
}

// CopyStats summarizes a recursive directory copy
type CopyStats struct {
	Files int   // Regular files copied
	Dirs  int   // Subdirectories created
	Links int   // Symlinks recreated
	Bytes int64 // Total size of copied files
}
