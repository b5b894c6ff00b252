package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/asutherland/treeherder-service/internal/data/pgxutil"
	"github.com/asutherland/treeherder-service/internal/domain/model"
)

// PushRepo persists pushes and their revisions keyed by revision hash.
type PushRepo struct {
	DB *sql.DB
}

// NewPushRepo creates a PushRepo.
func NewPushRepo(db *sql.DB) *PushRepo {
	return &PushRepo{DB: db}
}

// UpsertPush persists a push and its revisions in one transaction. An
// existing push with the same revision hash has its mutable columns
// updated and its revision set replaced.
func (r *PushRepo) UpsertPush(ctx context.Context, push *model.Push) (*model.Push, error) {
	if push == nil {
		return nil, errors.New("push is required")
	}
	if push.RevisionHash == "" {
		return nil, errors.New("revision hash is required")
	}

	stored := *push
	err := pgxutil.WithPgxTx(ctx, r.DB, func(tx pgx.Tx) error {
		row := tx.QueryRow(ctx, `
			INSERT INTO pushes (repository_id, revision_hash, push_timestamp, author, active_status)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (repository_id, revision_hash) DO UPDATE
			SET push_timestamp = EXCLUDED.push_timestamp,
			    author = EXCLUDED.author,
			    active_status = EXCLUDED.active_status
			RETURNING id
		`, push.RepositoryID, push.RevisionHash, push.PushTimestamp, push.Author, push.ActiveStatus)
		if err := row.Scan(&stored.ID); err != nil {
			return fmt.Errorf("upsert push: %w", err)
		}

		if _, err := tx.Exec(ctx, `DELETE FROM revisions WHERE push_id = $1`, stored.ID); err != nil {
			return fmt.Errorf("clear revisions: %w", err)
		}

		for _, rev := range push.Revisions {
			if _, err := tx.Exec(ctx, `
				INSERT INTO revisions (push_id, revision, author, comments, repository_id)
				VALUES ($1, $2, $3, $4, $5)
			`, stored.ID, rev.Revision, rev.Author, rev.Comments, push.RepositoryID); err != nil {
				return fmt.Errorf("insert revision %s: %w", rev.Revision, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &stored, nil
}

// GetByRevisionHash returns a push with its revisions.
func (r *PushRepo) GetByRevisionHash(
	ctx context.Context,
	repositoryID int64,
	hash string,
) (*model.Push, error) {
	row := r.DB.QueryRowContext(ctx, `
		SELECT id, revision_hash, repository_id, push_timestamp, author, active_status
		FROM pushes
		WHERE repository_id = $1 AND revision_hash = $2
	`, repositoryID, hash)

	var push model.Push
	err := row.Scan(
		&push.ID, &push.RevisionHash, &push.RepositoryID,
		&push.PushTimestamp, &push.Author, &push.ActiveStatus,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrPushNotFound, hash)
	}
	if err != nil {
		return nil, fmt.Errorf("get push %s: %w", hash, err)
	}

	revisions, err := r.listRevisions(ctx, push.ID)
	if err != nil {
		return nil, err
	}
	push.Revisions = revisions
	return &push, nil
}

func (r *PushRepo) listRevisions(ctx context.Context, pushID int64) ([]model.Revision, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT revision, author, comments, repository_id
		FROM revisions
		WHERE push_id = $1
		ORDER BY id
	`, pushID)
	if err != nil {
		return nil, fmt.Errorf("list revisions: %w", err)
	}
	defer rows.Close()

	var revisions []model.Revision
	for rows.Next() {
		var rev model.Revision
		if err := rows.Scan(&rev.Revision, &rev.Author, &rev.Comments, &rev.RepositoryID); err != nil {
			return nil, fmt.Errorf("scan revision: %w", err)
		}
		revisions = append(revisions, rev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate revisions: %w", err)
	}
	return revisions, nil
}
