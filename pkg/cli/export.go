package cli

import (
	"context"

	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v3"

	"github.com/upmtools/upmpack/pkg/cli/config"
	"github.com/upmtools/upmpack/pkg/usecase"
	"github.com/upmtools/upmpack/pkg/utils/logging"
)

func cmdExport() *cli.Command {
	var (
		draftCfg  config.Draft
		exportCfg config.Export
	)

	return &cli.Command{
		Name:    "export",
		Aliases: []string{"x"},
		Usage:   "Copy the source folder and write the manifest into a new package directory",
		Flags:   append(draftCfg.Flags(), exportCfg.Flags()...),
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := logging.From(ctx)

			exporter := usecase.NewExporter(usecase.WithManifestFileName(exportCfg.ManifestFile))
			session, err := loadSession(ctx, draftCfg.Path, exporter)
			if err != nil {
				return err
			}
			session.SetPaths(exportCfg.Apply(session.Paths()))

			result, err := session.Export(ctx)
			printLog(c.Root().Writer, session.Log())
			if err != nil {
				return err
			}

			logger.Info("Exported package",
				"id", result.ID,
				"output", result.OutputDir,
				"size", humanize.Bytes(uint64(result.Stats.Bytes)),
			)
			return nil
		},
	}
}
