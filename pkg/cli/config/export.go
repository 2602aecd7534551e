package config

import (
	"github.com/urfave/cli/v3"

	"github.com/upmtools/upmpack/pkg/domain/model"
	"github.com/upmtools/upmpack/pkg/infra/manifest"
)

// Export holds export settings. Paths given here override the draft.
type Export struct {
	Source       string
	Destination  string
	ManifestFile string
}

// Flags returns CLI flags for export configuration
func (c *Export) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "source",
			Aliases:     []string{"s"},
			Usage:       "Source folder to copy into the package",
			Destination: &c.Source,
			Sources:     cli.EnvVars("UPMPACK_SOURCE"),
		},
		&cli.StringFlag{
			Name:        "dest",
			Usage:       "Folder in which the package directory is created",
			Destination: &c.Destination,
			Sources:     cli.EnvVars("UPMPACK_DEST"),
		},
		&cli.StringFlag{
			Name:        "manifest-file",
			Usage:       "Name of the manifest file written in the package directory",
			Value:       manifest.FileName,
			Destination: &c.ManifestFile,
			Sources:     cli.EnvVars("UPMPACK_MANIFEST_FILE"),
		},
	}
}

// Apply overrides paths with the values set by flags
func (c *Export) Apply(paths model.ExportPaths) model.ExportPaths {
	if c.Source != "" {
		paths.Source = c.Source
	}
	if c.Destination != "" {
		paths.Destination = c.Destination
	}
	return paths
}
