package config

import "github.com/urfave/cli/v3"

// Draft holds the location of the package draft file
type Draft struct {
	Path string
}

// Flags returns CLI flags for draft configuration
func (c *Draft) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "draft",
			Aliases:     []string{"d"},
			Usage:       "Package draft file (.toml, .yaml or .yml)",
			Value:       "upmpack.toml",
			Destination: &c.Path,
			Sources:     cli.EnvVars("UPMPACK_DRAFT"),
		},
	}
}
