package interfaces

import (
	"context"

	"github.com/upmtools/upmpack/pkg/domain/model"
)

// ExportUseCase defines the export of a package directory
type ExportUseCase interface {
	// Export validates the manifest, copies paths.Source into
	// <paths.Destination>/<manifest.Name> and writes the manifest file there
	Export(ctx context.Context, manifest *model.PackageManifest, paths model.ExportPaths) (*model.ExportResult, error)

	// Log returns the operation log of the last export attempt
	Log() []string
}
