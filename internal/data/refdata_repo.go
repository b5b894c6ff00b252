package data

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/asutherland/treeherder-service/internal/domain/model"
)

// refdataTables maps served collections to their tables. Values are
// compile-time constants; the model name is never interpolated directly.
var refdataTables = map[model.RefdataModel]string{
	model.RefdataProduct:               "products",
	model.RefdataBuildPlatform:         "build_platforms",
	model.RefdataMachinePlatform:       "machine_platforms",
	model.RefdataMachine:               "machines",
	model.RefdataOption:                "options",
	model.RefdataOptionCollection:      "option_collections",
	model.RefdataJobType:               "job_types",
	model.RefdataJobGroup:              "job_groups",
	model.RefdataFailureClassification: "failure_classifications",
	model.RefdataRepository:            "repositories",
}

// RefdataRepo serves read-only reference-data lists. Rows are passed
// through as generic maps; there is no logic behind these collections.
type RefdataRepo struct {
	DB *sql.DB
}

// NewRefdataRepo creates a RefdataRepo.
func NewRefdataRepo(db *sql.DB) *RefdataRepo {
	return &RefdataRepo{DB: db}
}

// List returns every row of a reference-data collection ordered by id.
func (r *RefdataRepo) List(ctx context.Context, m model.RefdataModel) ([]map[string]any, error) {
	table, ok := refdataTables[m]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownRefdataModel, m)
	}

	rows, err := r.DB.QueryContext(ctx, `SELECT * FROM `+table+` ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", table, err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("columns for %s: %w", table, err)
	}

	out := make([]map[string]any, 0)
	for rows.Next() {
		values := make([]any, len(columns))
		ptrs := make([]any, len(columns))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("scan %s row: %w", table, err)
		}

		record := make(map[string]any, len(columns))
		for i, col := range columns {
			record[col] = normalizeValue(values[i])
		}
		out = append(out, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s: %w", table, err)
	}
	return out, nil
}

// normalizeValue converts driver byte slices to strings so rows serialize
// as JSON text rather than base64.
func normalizeValue(v any) any {
	if b, ok := v.([]byte); ok {
		return string(b)
	}
	return v
}
