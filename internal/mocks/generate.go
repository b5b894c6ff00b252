// Package mocks provides generated mock implementations for testing.
//
// This package uses go.uber.org/mock (gomock) to generate type-safe mocks for the repository ports.
// The mocks are generated using go:generate directives and provide a fluent API for setting up test expectations.
//
// To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	defer ctrl.Finish()
//	repo := mocks.NewMockJobRepository(ctrl)
//	repo.EXPECT().GetJob(gomock.Any(), gomock.Any(), gomock.Any()).Return(job, nil)
package mocks

// Generate mocks for the repository and queue ports from internal/core.
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=core_mocks.go github.com/asutherland/treeherder-service/internal/core RepositoryStore,JobRepository,PushRepository,RefdataRepository,TaskQueue,CacheRepository,RefetchScheduler
