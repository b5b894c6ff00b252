package service

import (
	"context"

	"github.com/asutherland/treeherder-service/internal/core"
	"github.com/asutherland/treeherder-service/internal/domain/model"
	apperrors "github.com/asutherland/treeherder-service/internal/errors"
)

// RefdataService serves the read-only reference-data collections. Pure
// passthrough: rows come back exactly as stored.
type RefdataService struct {
	repo core.RefdataRepository
}

// NewRefdataService constructs a RefdataService.
func NewRefdataService(repo core.RefdataRepository) *RefdataService {
	return &RefdataService{repo: repo}
}

// List returns every row of the named collection.
func (s *RefdataService) List(ctx context.Context, name string) ([]map[string]any, error) {
	m := model.RefdataModel(name)
	if !m.Valid() {
		return nil, apperrors.NotFoundf("unknown reference data model %q", name)
	}
	return s.repo.List(ctx, m)
}
