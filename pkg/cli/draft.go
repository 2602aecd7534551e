package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/upmtools/upmpack/pkg/cli/config"
	"github.com/upmtools/upmpack/pkg/domain/model"
	"github.com/upmtools/upmpack/pkg/domain/types"
	"github.com/upmtools/upmpack/pkg/infra/manifest"
	"github.com/upmtools/upmpack/pkg/usecase"
	"github.com/upmtools/upmpack/pkg/utils/logging"
)

func cmdNew() *cli.Command {
	var (
		draftCfg    config.Draft
		force       bool
		name        string
		displayName string
		source      string
		destination string
	)

	flags := append(draftCfg.Flags(),
		&cli.BoolFlag{
			Name:        "force",
			Aliases:     []string{"f"},
			Usage:       "Overwrite an existing draft",
			Destination: &force,
		},
		&cli.StringFlag{
			Name:        "name",
			Usage:       "Package name, e.g. com.mycompany.mypackage",
			Destination: &name,
		},
		&cli.StringFlag{
			Name:        "display-name",
			Usage:       "Human readable package name",
			Destination: &displayName,
		},
		&cli.StringFlag{
			Name:        "source",
			Usage:       "Source folder to copy into the package",
			Destination: &source,
		},
		&cli.StringFlag{
			Name:        "dest",
			Usage:       "Folder in which the package directory is created",
			Destination: &destination,
		},
	)

	return &cli.Command{
		Name:      "new",
		Usage:     "Start a new package draft with default values",
		ArgsUsage: "[draft]",
		Flags:     flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			if c.NArg() > 1 {
				return goerr.New("too many arguments, expected at most one draft path",
					goerr.V("args", c.Args().Slice()), goerr.T(types.ErrTagDraft))
			}
			path := draftCfg.Path
			if c.Args().Present() {
				path = c.Args().First()
			}

			if _, err := os.Stat(path); err == nil && !force {
				return goerr.New("draft already exists, use --force to replace it",
					goerr.V("path", path), goerr.T(types.ErrTagDraft))
			}

			session := usecase.NewSession(usecase.NewExporter())
			if name != "" {
				session.Manifest().Name = name
			}
			session.Manifest().DisplayName = displayName
			session.SetPaths(model.ExportPaths{Source: source, Destination: destination})

			if err := saveSession(ctx, path, session); err != nil {
				return err
			}

			logging.From(ctx).Info("Created package draft", "path", path)
			_, _ = fmt.Fprintf(c.Root().Writer, "Created draft %s\n", path)
			return nil
		},
	}
}

func cmdShow() *cli.Command {
	var draftCfg config.Draft

	return &cli.Command{
		Name:  "show",
		Usage: "Print the manifest generated from the draft",
		Flags: draftCfg.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			session, err := loadSession(ctx, draftCfg.Path, nil)
			if err != nil {
				return err
			}

			doc, err := manifest.Serialize(session.Manifest())
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintln(c.Root().Writer, string(doc))
			return nil
		},
	}
}

func cmdValidate() *cli.Command {
	var (
		draftCfg  config.Draft
		exportCfg config.Export
	)

	return &cli.Command{
		Name:  "validate",
		Usage: "Check that the draft can be exported",
		Flags: append(draftCfg.Flags(), exportCfg.Flags()...),
		Action: func(ctx context.Context, c *cli.Command) error {
			session, err := loadSession(ctx, draftCfg.Path, nil)
			if err != nil {
				return err
			}
			session.SetPaths(exportCfg.Apply(session.Paths()))

			w := c.Root().Writer
			violations := session.Validate()
			printViolations(w, "invalid", errorColor, violations)
			printViolations(w, "warning", warnColor, usecase.Warnings(session.Manifest()))

			if len(violations) > 0 {
				return goerr.New("package draft is invalid",
					goerr.V("violations", len(violations)), goerr.T(types.ErrTagValidation))
			}

			_, _ = successColor.Fprintln(w, "Draft is valid")
			return nil
		},
	}
}
