package cli

import (
	"context"

	"github.com/m-mizutani/goerr/v2"

	"github.com/upmtools/upmpack/pkg/domain/interfaces"
	"github.com/upmtools/upmpack/pkg/infra/draft"
	"github.com/upmtools/upmpack/pkg/usecase"
	"github.com/upmtools/upmpack/pkg/utils/logging"
)

// loadSession opens the draft at path for editing
func loadSession(ctx context.Context, path string, exporter interfaces.ExportUseCase) (*usecase.Session, error) {
	d, err := draft.Load(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open package draft", goerr.V("path", path))
	}
	logging.From(ctx).Debug("Loaded draft", "path", path, "name", d.Package.Name)

	if exporter == nil {
		exporter = usecase.NewExporter()
	}
	return usecase.NewSessionFromDraft(d, exporter), nil
}

// saveSession writes the session's draft back to path
func saveSession(ctx context.Context, path string, s *usecase.Session) error {
	if err := draft.Save(path, s.Draft()); err != nil {
		return goerr.Wrap(err, "failed to save package draft", goerr.V("path", path))
	}
	logging.From(ctx).Debug("Saved draft", "path", path)
	return nil
}
