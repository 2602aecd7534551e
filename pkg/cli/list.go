package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/upmtools/upmpack/pkg/cli/config"
	"github.com/upmtools/upmpack/pkg/usecase"
)

// editDraft loads the draft, applies edit and saves it when edit succeeds
func editDraft(ctx context.Context, path string, edit func(s *usecase.Session) error) error {
	session, err := loadSession(ctx, path, nil)
	if err != nil {
		return err
	}
	if err := edit(session); err != nil {
		return err
	}
	return saveSession(ctx, path, session)
}

func parseIndex(c *cli.Command) (int, error) {
	arg := c.Args().First()
	if arg == "" {
		return 0, goerr.New("index argument is required")
	}
	index, err := strconv.Atoi(arg)
	if err != nil {
		return 0, goerr.Wrap(err, "index must be an integer", goerr.V("index", arg))
	}
	return index, nil
}

func cmdKeyword() *cli.Command {
	var draftCfg config.Draft

	return &cli.Command{
		Name:    "keyword",
		Aliases: []string{"kw"},
		Usage:   "Edit package keywords",
		Flags:   draftCfg.Flags(),
		Commands: []*cli.Command{
			{
				Name:      "add",
				Usage:     "Append a keyword",
				ArgsUsage: "[value]",
				Action: func(ctx context.Context, c *cli.Command) error {
					return editDraft(ctx, draftCfg.Path, func(s *usecase.Session) error {
						m := s.Manifest()
						m.AddKeyword()
						m.SetKeyword(len(m.Keywords)-1, c.Args().First())
						_, _ = fmt.Fprintf(c.Root().Writer, "Added keyword [%d]\n", len(m.Keywords)-1)
						return nil
					})
				},
			},
			{
				Name:      "remove",
				Aliases:   []string{"rm"},
				Usage:     "Remove the keyword at index",
				ArgsUsage: "<index>",
				Action: func(ctx context.Context, c *cli.Command) error {
					index, err := parseIndex(c)
					if err != nil {
						return err
					}
					return editDraft(ctx, draftCfg.Path, func(s *usecase.Session) error {
						if !s.Manifest().RemoveKeyword(index) {
							return goerr.New("keyword index out of range",
								goerr.V("index", index), goerr.V("count", len(s.Manifest().Keywords)))
						}
						_, _ = fmt.Fprintf(c.Root().Writer, "Removed keyword [%d]\n", index)
						return nil
					})
				},
			},
			{
				Name:    "list",
				Aliases: []string{"ls"},
				Usage:   "List keywords",
				Action: func(ctx context.Context, c *cli.Command) error {
					session, err := loadSession(ctx, draftCfg.Path, nil)
					if err != nil {
						return err
					}
					for i, kw := range session.Manifest().Keywords {
						_, _ = fmt.Fprintf(c.Root().Writer, "[%d] %s\n", i, kw)
					}
					return nil
				},
			},
		},
	}
}

func cmdDependency() *cli.Command {
	var draftCfg config.Draft

	return &cli.Command{
		Name:    "dependency",
		Aliases: []string{"dep"},
		Usage:   "Edit package dependencies",
		Flags:   draftCfg.Flags(),
		Commands: []*cli.Command{
			{
				Name:      "add",
				Usage:     "Append a dependency",
				ArgsUsage: "[name] [version]",
				Action: func(ctx context.Context, c *cli.Command) error {
					return editDraft(ctx, draftCfg.Path, func(s *usecase.Session) error {
						m := s.Manifest()
						m.AddDependency()
						m.SetDependency(len(m.Dependencies)-1, c.Args().Get(0), c.Args().Get(1))
						_, _ = fmt.Fprintf(c.Root().Writer, "Added dependency [%d]\n", len(m.Dependencies)-1)
						return nil
					})
				},
			},
			{
				Name:      "remove",
				Aliases:   []string{"rm"},
				Usage:     "Remove the dependency at index",
				ArgsUsage: "<index>",
				Action: func(ctx context.Context, c *cli.Command) error {
					index, err := parseIndex(c)
					if err != nil {
						return err
					}
					return editDraft(ctx, draftCfg.Path, func(s *usecase.Session) error {
						if !s.Manifest().RemoveDependency(index) {
							return goerr.New("dependency index out of range",
								goerr.V("index", index), goerr.V("count", len(s.Manifest().Dependencies)))
						}
						_, _ = fmt.Fprintf(c.Root().Writer, "Removed dependency [%d]\n", index)
						return nil
					})
				},
			},
			{
				Name:    "list",
				Aliases: []string{"ls"},
				Usage:   "List dependencies",
				Action: func(ctx context.Context, c *cli.Command) error {
					session, err := loadSession(ctx, draftCfg.Path, nil)
					if err != nil {
						return err
					}
					for i, dep := range session.Manifest().Dependencies {
						_, _ = fmt.Fprintf(c.Root().Writer, "[%d] %s %s\n", i, dep.Name, dep.Version)
					}
					return nil
				},
			},
		},
	}
}
