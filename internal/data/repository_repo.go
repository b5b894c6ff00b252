package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/asutherland/treeherder-service/internal/domain/model"
)

// RepositoryRepo resolves project names against the repositories table.
type RepositoryRepo struct {
	DB *sql.DB
}

// NewRepositoryRepo creates a RepositoryRepo.
func NewRepositoryRepo(db *sql.DB) *RepositoryRepo {
	return &RepositoryRepo{DB: db}
}

const repositoryColumns = `id, name, dvcs_type, url, description`

// GetByName returns the repository row for a project name, or
// ErrDatasetNotFound if the project is unknown.
func (r *RepositoryRepo) GetByName(ctx context.Context, name string) (*model.Repository, error) {
	row := r.DB.QueryRowContext(ctx, `
		SELECT `+repositoryColumns+`
		FROM repositories
		WHERE name = $1
	`, name)

	var repo model.Repository
	err := row.Scan(&repo.ID, &repo.Name, &repo.DVCSType, &repo.URL, &repo.Description)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrDatasetNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("get repository %q: %w", name, err)
	}
	return &repo, nil
}

// List returns all repositories ordered by name.
func (r *RepositoryRepo) List(ctx context.Context) ([]*model.Repository, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT `+repositoryColumns+`
		FROM repositories
		ORDER BY name
	`)
	if err != nil {
		return nil, fmt.Errorf("list repositories: %w", err)
	}
	defer rows.Close()

	var repos []*model.Repository
	for rows.Next() {
		var repo model.Repository
		if err := rows.Scan(&repo.ID, &repo.Name, &repo.DVCSType, &repo.URL, &repo.Description); err != nil {
			return nil, fmt.Errorf("scan repository: %w", err)
		}
		repos = append(repos, &repo)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate repositories: %w", err)
	}
	return repos, nil
}
