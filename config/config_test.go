package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseServices(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    map[ServiceMode]bool
		wantErr bool
	}{
		{
			name:  "single service",
			input: "http",
			want:  map[ServiceMode]bool{ServiceModeHTTP: true},
		},
		{
			name:  "multiple services",
			input: "http,refetch-worker",
			want: map[ServiceMode]bool{
				ServiceModeHTTP:          true,
				ServiceModeRefetchWorker: true,
			},
		},
		{
			name:  "whitespace tolerated",
			input: " http , refetch-worker ",
			want: map[ServiceMode]bool{
				ServiceModeHTTP:          true,
				ServiceModeRefetchWorker: true,
			},
		},
		{
			name:    "empty string",
			input:   "",
			wantErr: true,
		},
		{
			name:    "unknown service",
			input:   "http,banana",
			wantErr: true,
		},
		{
			name:    "only commas",
			input:   ",,,",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseServices(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPushlogConfigSanitize(t *testing.T) {
	cfg := PushlogConfig{Timeout: -1, LookupCacheTTL: 0}
	cfg.Sanitize()
	assert.Equal(t, defaultPushlogTimeout, cfg.Timeout)
	assert.Equal(t, defaultLookupCacheTTL, cfg.LookupCacheTTL)

	cfg = PushlogConfig{Timeout: 10 * time.Minute, LookupCacheTTL: time.Minute}
	cfg.Sanitize()
	assert.Equal(t, maxPushlogTimeout, cfg.Timeout)
	assert.Equal(t, time.Minute, cfg.LookupCacheTTL)
}

func TestRefetchConfigSanitize(t *testing.T) {
	cfg := RefetchConfig{QueueKey: "  ", PollTimeout: 0}
	cfg.Sanitize()
	assert.Equal(t, defaultRefetchQueueKey, cfg.QueueKey)
	assert.Equal(t, defaultRefetchPollTimeout, cfg.PollTimeout)
}

func TestAppConfigServiceHelpers(t *testing.T) {
	cfg := AppConfig{Services: "http"}
	assert.True(t, cfg.IsHTTPServerEnabled())
	assert.False(t, cfg.IsRefetchWorkerEnabled())

	cfg.Services = "refetch-worker"
	assert.False(t, cfg.IsHTTPServerEnabled())
	assert.True(t, cfg.IsRefetchWorkerEnabled())

	cfg.Services = "bogus"
	assert.False(t, cfg.IsHTTPServerEnabled())
}
