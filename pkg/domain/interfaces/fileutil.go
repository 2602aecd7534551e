package interfaces

import (
	"context"

	"github.com/upmtools/upmpack/pkg/domain/model"
)

// TreeCopier copies a directory tree
type TreeCopier interface {
	// CopyTree copies src into dst recursively, not descending into skip
	CopyTree(ctx context.Context, src, dst, skip string) (*model.CopyStats, error)
}
