package ports

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubChecker reports err, or waits for ctx when block is set.
type stubChecker struct {
	name  string
	err   error
	block bool
}

func (s stubChecker) Name() string { return s.name }

func (s stubChecker) Check(ctx context.Context) error {
	if s.block {
		<-ctx.Done()
		return ctx.Err()
	}

	return s.err
}

func TestRegister(t *testing.T) {
	registry := NewHealthRegistry()

	require.NoError(t, registry.Register(stubChecker{name: "site-links"}))

	err := registry.Register(stubChecker{name: "site-links"})
	require.ErrorIs(t, err, ErrDuplicateChecker)
	assert.Contains(t, err.Error(), "site-links")

	require.ErrorIs(t, registry.Register(nil), ErrInvalidChecker)
	require.ErrorIs(t, registry.Register(stubChecker{}), ErrInvalidChecker)
}

func TestCheckAll(t *testing.T) {
	tests := []struct {
		name     string
		checkers []HealthChecker
		want     HealthStatus
		messages map[string]string
	}{
		{
			name: "no checkers",
			want: HealthStatusHealthy,
		},
		{
			name:     "asset readable",
			checkers: []HealthChecker{stubChecker{name: "site-links"}},
			want:     HealthStatusHealthy,
			messages: map[string]string{"site-links": ""},
		},
		{
			name: "one failing check fails the registry",
			checkers: []HealthChecker{
				stubChecker{name: "site-links", err: errors.New("open assets/siteLinks.json: no such file or directory")},
				stubChecker{name: "upstream-config"},
			},
			want: HealthStatusUnhealthy,
			messages: map[string]string{
				"site-links":      "open assets/siteLinks.json: no such file or directory",
				"upstream-config": "",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			registry := NewHealthRegistry()
			for _, c := range tt.checkers {
				require.NoError(t, registry.Register(c))
			}

			result := registry.CheckAll(context.Background())

			assert.Equal(t, tt.want, result.Status)
			assert.False(t, result.Timestamp.IsZero())
			require.Len(t, result.Checks, len(tt.checkers))

			for name, msg := range tt.messages {
				check := result.Checks[name]
				require.NotNil(t, check, name)
				assert.Equal(t, msg, check.Message)
				assert.Equal(t, msg == "", check.Status == HealthStatusHealthy)
			}
		})
	}
}

func TestCheckAll_TimeoutPerCheck(t *testing.T) {
	registry := NewHealthRegistry(WithCheckTimeout(20 * time.Millisecond))
	require.NoError(t, registry.Register(stubChecker{name: "stuck", block: true}))
	require.NoError(t, registry.Register(stubChecker{name: "site-links"}))

	start := time.Now()
	result := registry.CheckAll(context.Background())

	assert.Less(t, time.Since(start), time.Second)
	assert.Equal(t, HealthStatusUnhealthy, result.Status)
	assert.Contains(t, result.Checks["stuck"].Message, "deadline exceeded")
	assert.Equal(t, HealthStatusHealthy, result.Checks["site-links"].Status)
}

func TestCheckAll_CallerCancellation(t *testing.T) {
	registry := NewHealthRegistry()
	require.NoError(t, registry.Register(stubChecker{name: "stuck", block: true}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result := registry.CheckAll(ctx)

	assert.Equal(t, HealthStatusUnhealthy, result.Status)
	assert.Contains(t, result.Checks["stuck"].Message, "context canceled")
}

func TestWithCheckTimeout_IgnoresNonPositive(t *testing.T) {
	assert.Equal(t, DefaultCheckTimeout, NewHealthRegistry(WithCheckTimeout(0)).timeout)
	assert.Equal(t, time.Second, NewHealthRegistry(WithCheckTimeout(time.Second)).timeout)
}
