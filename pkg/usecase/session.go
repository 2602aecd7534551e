package usecase

import (
	"context"

	"github.com/upmtools/upmpack/pkg/domain/interfaces"
	"github.com/upmtools/upmpack/pkg/domain/model"
)

// Session is the editing workflow of one package: the draft being edited
// and the exporter that materializes it.
type Session struct {
	draft    *model.Draft
	exporter interfaces.ExportUseCase
}

// NewSession creates a session holding a new default package
func NewSession(exporter interfaces.ExportUseCase) *Session {
	s := &Session{exporter: exporter}
	s.NewPackage()
	return s
}

// NewSessionFromDraft creates a session editing an existing draft
func NewSessionFromDraft(draft *model.Draft, exporter interfaces.ExportUseCase) *Session {
	if draft == nil {
		return NewSession(exporter)
	}
	return &Session{draft: draft, exporter: exporter}
}

// NewPackage discards the current draft and starts over with defaults
func (s *Session) NewPackage() {
	s.draft = model.NewDraft()
}

// Draft returns the draft being edited
func (s *Session) Draft() *model.Draft {
	return s.draft
}

// Manifest returns the manifest being edited
func (s *Session) Manifest() *model.PackageManifest {
	return &s.draft.Package
}

// Paths returns the export paths
func (s *Session) Paths() model.ExportPaths {
	return s.draft.Paths
}

// SetPaths replaces the export paths
func (s *Session) SetPaths(paths model.ExportPaths) {
	s.draft.Paths = paths
}

// Validate reports the violations that would block an export
func (s *Session) Validate() []model.Violation {
	return Validate(s.Manifest(), s.draft.Paths.Destination)
}

// Export runs an export of the current draft
func (s *Session) Export(ctx context.Context) (*model.ExportResult, error) {
	return s.exporter.Export(ctx, s.Manifest(), s.draft.Paths)
}

// Log returns the operation log of the last export
func (s *Session) Log() []string {
	return s.exporter.Log()
}
