package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asutherland/treeherder-service/internal/domain/model"
	apperrors "github.com/asutherland/treeherder-service/internal/errors"
)

type fakeRefdataRepo struct {
	listed []model.RefdataModel
}

func (r *fakeRefdataRepo) List(_ context.Context, m model.RefdataModel) ([]map[string]any, error) {
	r.listed = append(r.listed, m)
	return []map[string]any{{"id": int64(1), "name": "firefox"}}, nil
}

func TestRefdataServiceList(t *testing.T) {
	repo := &fakeRefdataRepo{}
	svc := NewRefdataService(repo)

	rows, err := svc.List(context.Background(), "product")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "firefox", rows[0]["name"])
	assert.Equal(t, []model.RefdataModel{model.RefdataProduct}, repo.listed)
}

func TestRefdataServiceUnknownModel(t *testing.T) {
	svc := NewRefdataService(&fakeRefdataRepo{})

	_, err := svc.List(context.Background(), "kitchen_sink")
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}
