package usecase

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"

	"github.com/upmtools/upmpack/pkg/domain/interfaces"
	"github.com/upmtools/upmpack/pkg/domain/model"
	"github.com/upmtools/upmpack/pkg/domain/types"
	"github.com/upmtools/upmpack/pkg/infra/fileutil"
	"github.com/upmtools/upmpack/pkg/infra/manifest"
	"github.com/upmtools/upmpack/pkg/utils/logging"
)

const logRule = "-----------------"

// exportConfig holds exporter settings
type exportConfig struct {
	manifestFileName string
	copier           interfaces.TreeCopier
}

// ExportOption is a functional option for Exporter configuration
type ExportOption func(*exportConfig)

// WithManifestFileName sets the name of the manifest file written at the
// root of the exported package
func WithManifestFileName(name string) ExportOption {
	return func(c *exportConfig) {
		c.manifestFileName = name
	}
}

// WithCopier replaces the directory copier
func WithCopier(copier interfaces.TreeCopier) ExportOption {
	return func(c *exportConfig) {
		c.copier = copier
	}
}

// Exporter runs export attempts one at a time and keeps the operation log
// of the latest one.
//
// A failure after the output directory has been created leaves whatever
// was already copied on disk. Nothing is rolled back.
type Exporter struct {
	cfg exportConfig

	mu  sync.Mutex
	log model.OperationLog
}

var _ interfaces.ExportUseCase = (*Exporter)(nil)

// NewExporter creates a new Exporter
func NewExporter(opts ...ExportOption) *Exporter {
	cfg := exportConfig{
		manifestFileName: manifest.FileName,
		copier:           fileutil.Copier{},
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Exporter{cfg: cfg}
}

// Log returns the operation log of the last export attempt
func (x *Exporter) Log() []string {
	x.mu.Lock()
	defer x.mu.Unlock()
	return x.log.Lines()
}

// record appends a line to the operation log and mirrors it to the debug log
func (x *Exporter) record(ctx context.Context, format string, args ...any) {
	line := fmt.Sprintf(format, args...)
	x.log.Append(line)
	logging.From(ctx).Debug("Export step", "line", line)
}

// fail records a failure line and returns err unchanged
func (x *Exporter) fail(ctx context.Context, err error, format string, args ...any) error {
	x.record(ctx, format, args...)
	logging.From(ctx).Error("Package export failed", "error", err)
	return err
}

// Export validates m, copies paths.Source into <paths.Destination>/<m.Name>
// and writes the serialized manifest there. Stages run in order and the
// first failing stage ends the attempt.
func (x *Exporter) Export(ctx context.Context, m *model.PackageManifest, paths model.ExportPaths) (*model.ExportResult, error) {
	x.mu.Lock()
	defer x.mu.Unlock()

	x.log.Reset()
	id := uuid.NewString()
	ctx = logging.With(ctx, logging.From(ctx).With("export_id", id))
	logger := logging.From(ctx)

	logger.Info("Starting package export",
		"name", m.Name,
		"version", m.Version,
		"author", m.Author,
		"source", paths.Source,
		"destination", paths.Destination,
	)

	// Validation failure ends the attempt here.
	x.record(ctx, "Validating package details...")
	if violations := Validate(m, paths.Destination); len(violations) > 0 {
		msgs := make([]string, 0, len(violations))
		for _, v := range violations {
			x.record(ctx, "  invalid %s", v)
			msgs = append(msgs, v.String())
		}
		err := goerr.New("package validation failed",
			goerr.V("violations", msgs),
			goerr.T(types.ErrTagValidation))
		return nil, x.fail(ctx, err, "Validation failed, export canceled")
	}
	for _, w := range Warnings(m) {
		x.record(ctx, "  warning %s", w)
		logger.Warn("Manifest warning", "field", w.Field, "message", w.Message)
	}
	x.record(ctx, "Validation passed")

	x.record(ctx, "")
	x.record(ctx, "Exporting package...")
	x.record(ctx, "Source folder: %s", paths.Source)
	x.record(ctx, "Destination folder: %s", paths.Destination)
	x.record(ctx, "")

	doc, err := manifest.Serialize(m)
	if err != nil {
		return nil, x.fail(ctx, err, "Error: failed to serialize manifest: %v", err)
	}
	x.record(ctx, "Package manifest:")
	x.record(ctx, logRule)
	x.log.Append(string(doc))
	x.record(ctx, logRule)

	if err := manifest.Verify(doc); err != nil {
		return nil, x.fail(ctx, goerr.Wrap(err, "serialized manifest is invalid", goerr.T(types.ErrTagValidation)),
			"Error: manifest does not match schema: %v", err)
	}

	outputDir, err := x.prepareOutput(ctx, m.Name, paths.Destination)
	if err != nil {
		return nil, err
	}

	x.record(ctx, "Copying files...")
	stats, err := x.cfg.copier.CopyTree(ctx, paths.Source, outputDir, outputDir)
	if err != nil {
		if goerr.HasTag(err, types.ErrTagSourceMissing) {
			return nil, x.fail(ctx, err, "Error: source folder does not exist: %s", paths.Source)
		}
		return nil, x.fail(ctx, goerr.Wrap(err, "failed to copy package files", goerr.V("output", outputDir)),
			"Error: copying files failed, partial output left at %s: %v", outputDir, err)
	}
	x.record(ctx, "Copied %d files and %d folders (%s)",
		stats.Files, stats.Dirs, humanize.Bytes(uint64(stats.Bytes)))

	x.record(ctx, "")
	x.record(ctx, "Writing manifest...")
	manifestPath, err := x.writeManifest(ctx, outputDir, doc)
	if err != nil {
		return nil, err
	}

	x.record(ctx, "")
	x.record(ctx, "Package export complete!")

	logger.Info("Package export complete",
		"output", outputDir,
		"files", stats.Files,
		"bytes", stats.Bytes,
	)

	return &model.ExportResult{
		ID:           id,
		OutputDir:    outputDir,
		ManifestPath: manifestPath,
		Stats:        *stats,
		Log:          x.log.Lines(),
	}, nil
}

// isBaseName reports whether name addresses a single entry directly inside
// its parent directory
func isBaseName(name string) bool {
	return name != "" && name != "." && name != ".." &&
		!strings.ContainsAny(name, `/\`) && filepath.VolumeName(name) == ""
}

// prepareOutput resolves <destination>/<name> and creates it. It never
// reuses an existing directory.
func (x *Exporter) prepareOutput(ctx context.Context, name, destination string) (string, error) {
	info, err := os.Stat(destination)
	if err != nil || !info.IsDir() {
		cause := err
		if cause == nil {
			cause = goerr.New("destination is not a directory")
		}
		err := goerr.Wrap(cause, "destination folder does not exist",
			goerr.V("destination", destination), goerr.T(types.ErrTagDestinationMissing))
		return "", x.fail(ctx, err, "Error: destination folder does not exist: %s", destination)
	}

	if !isBaseName(name) {
		err := goerr.New("package name cannot be used as a directory name",
			goerr.V("name", name), goerr.T(types.ErrTagInvalidOutputPath))
		return "", x.fail(ctx, err, "Error: package name %q is not a valid folder name", name)
	}
	if !isBaseName(x.cfg.manifestFileName) {
		err := goerr.New("manifest file name must be a plain file name",
			goerr.V("manifest_file", x.cfg.manifestFileName), goerr.T(types.ErrTagInvalidOutputPath))
		return "", x.fail(ctx, err, "Error: manifest file name %q is not a valid file name", x.cfg.manifestFileName)
	}
	outputDir := filepath.Join(destination, name)

	if _, err := os.Lstat(outputDir); err == nil {
		err := goerr.New("output directory already exists",
			goerr.V("output", outputDir), goerr.T(types.ErrTagOutputExists))
		return "", x.fail(ctx, err, "Output directory already exists, canceling operation: %s", outputDir)
	}

	if err := os.Mkdir(outputDir, 0755); err != nil {
		if os.IsExist(err) {
			err := goerr.Wrap(err, "output directory already exists",
				goerr.V("output", outputDir), goerr.T(types.ErrTagOutputExists))
			return "", x.fail(ctx, err, "Output directory already exists, canceling operation: %s", outputDir)
		}
		err := goerr.Wrap(err, "failed to create output directory", goerr.V("output", outputDir))
		return "", x.fail(ctx, err, "Error creating output directory: %s", outputDir)
	}
	x.record(ctx, "Created output directory: %s", outputDir)

	return outputDir, nil
}

// writeManifest writes doc into outputDir, which must still exist
func (x *Exporter) writeManifest(ctx context.Context, outputDir string, doc []byte) (string, error) {
	if info, err := os.Stat(outputDir); err != nil || !info.IsDir() {
		err := goerr.New("output directory no longer exists",
			goerr.V("output", outputDir), goerr.T(types.ErrTagOutputVanished))
		return "", x.fail(ctx, err, "Error: output directory doesn't exist anymore: %s", outputDir)
	}

	path := filepath.Join(outputDir, x.cfg.manifestFileName)
	if err := os.WriteFile(path, doc, 0644); err != nil {
		err := goerr.Wrap(err, "failed to write manifest file",
			goerr.V("path", path), goerr.T(types.ErrTagManifestWrite))
		return "", x.fail(ctx, err, "Error: failed to write manifest, partial output left at %s", outputDir)
	}
	x.record(ctx, "Wrote manifest: %s", path)

	return path, nil
}
