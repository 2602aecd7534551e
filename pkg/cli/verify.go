package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/m-mizutani/goerr/v2"
	"github.com/tidwall/gjson"
	"github.com/urfave/cli/v3"

	"github.com/upmtools/upmpack/pkg/infra/manifest"
)

func cmdVerify() *cli.Command {
	var manifestFile string

	return &cli.Command{
		Name:      "verify",
		Usage:     "Check the manifest of an exported package directory",
		ArgsUsage: "<package-dir>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "manifest-file",
				Usage:       "Name of the manifest file in the package directory",
				Value:       manifest.FileName,
				Destination: &manifestFile,
				Sources:     cli.EnvVars("UPMPACK_MANIFEST_FILE"),
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			dir := c.Args().First()
			if dir == "" {
				return goerr.New("package directory argument is required")
			}

			path := filepath.Join(dir, manifestFile)
			doc, err := os.ReadFile(path)
			if err != nil {
				return goerr.Wrap(err, "failed to read manifest", goerr.V("path", path))
			}

			if err := manifest.Verify(doc); err != nil {
				_, _ = errorColor.Fprintf(c.Root().Writer, "%s: %v\n", path, err)
				return goerr.Wrap(err, "manifest verification failed", goerr.V("path", path))
			}

			name := gjson.GetBytes(doc, "name").String()
			version := gjson.GetBytes(doc, "version").String()
			deps := len(gjson.GetBytes(doc, "dependencies").Map())
			_, _ = successColor.Fprintf(c.Root().Writer, "%s@%s OK", name, version)
			_, _ = fmt.Fprintf(c.Root().Writer, " (%d dependencies)\n", deps)
			return nil
		},
	}
}
