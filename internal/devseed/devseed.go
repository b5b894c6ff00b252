// Package devseed populates a development database with known projects
// and reference data so the API is usable without manual setup. It is
// only invoked in dev mode and every insert is idempotent.
package devseed

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
)

// Run seeds development fixtures. Safe to call repeatedly.
func Run(ctx context.Context, db *sql.DB, logger *slog.Logger) error {
	if err := seedRepositories(ctx, db); err != nil {
		return err
	}
	if err := seedRefdata(ctx, db); err != nil {
		return err
	}

	if logger != nil {
		logger.InfoContext(ctx, "development fixtures seeded")
	}
	return nil
}

func seedRepositories(ctx context.Context, db *sql.DB) error {
	repositories := []struct {
		name, url, description string
	}{
		{"mozilla-central", "https://hg.mozilla.org/mozilla-central", "Main development tree"},
		{"mozilla-inbound", "https://hg.mozilla.org/integration/mozilla-inbound", "Integration tree"},
		{"try", "https://hg.mozilla.org/try", "Try server"},
	}

	for _, repo := range repositories {
		_, err := db.ExecContext(ctx, `
			INSERT INTO repositories (name, dvcs_type, url, description)
			VALUES ($1, 'hg', $2, $3)
			ON CONFLICT (name) DO NOTHING
		`, repo.name, repo.url, repo.description)
		if err != nil {
			return fmt.Errorf("seed repository %s: %w", repo.name, err)
		}
	}
	return nil
}

func seedRefdata(ctx context.Context, db *sql.DB) error {
	named := []struct {
		table string
		names []string
	}{
		{"products", []string{"firefox", "fennec"}},
		{"options", []string{"debug", "opt", "pgo"}},
		{"job_groups", []string{"Build", "Mochitest", "Reftest"}},
		{"job_types", []string{"build", "mochitest-1", "reftest-1"}},
	}
	for _, seed := range named {
		for _, name := range seed.names {
			_, err := db.ExecContext(ctx,
				"INSERT INTO "+seed.table+" (name) VALUES ($1) ON CONFLICT (name) DO NOTHING",
				name)
			if err != nil {
				return fmt.Errorf("seed %s %q: %w", seed.table, name, err)
			}
		}
	}

	platforms := []struct {
		osName, platform, arch string
	}{
		{"linux", "linux64", "x86_64"},
		{"mac", "osx-10-10", "x86_64"},
		{"win", "windows10-64", "x86_64"},
	}
	for _, table := range []string{"build_platforms", "machine_platforms"} {
		for _, p := range platforms {
			_, err := db.ExecContext(ctx, `
				INSERT INTO `+table+` (os_name, platform, architecture)
				VALUES ($1, $2, $3)
				ON CONFLICT (os_name, platform, architecture) DO NOTHING
			`, p.osName, p.platform, p.arch)
			if err != nil {
				return fmt.Errorf("seed %s %s: %w", table, p.platform, err)
			}
		}
	}
	return nil
}
