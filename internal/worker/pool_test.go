package worker

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/avc/tscoins-wallet/internal/domain"
	domainmocks "github.com/avc/tscoins-wallet/internal/domain/mocks"
	"github.com/avc/tscoins-wallet/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeRecorder struct {
	mu    sync.Mutex
	swept int
}

func (r *fakeRecorder) AddCooldownsSwept(n int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.swept += n
}

func (r *fakeRecorder) Swept() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.swept
}

func TestPool_Sweep(t *testing.T) {
	repo := domainmocks.NewCooldownRepositoryMock(t)
	rec := &fakeRecorder{}
	pool := NewPool(PoolConfig{Workers: 1, QueueSize: 10}, repo, rec, zap.NewNop())

	now := time.Date(2025, 11, 30, 12, 0, 0, 0, time.UTC)
	pool.now = func() time.Time { return now }
	ctx := context.Background()

	t.Run("Deleted", func(t *testing.T) {
		repo.EXPECT().DeleteExpiredCooldown(mock.Anything, "user:1", domain.ActionWhitelist, now).Return(true, nil).Once()

		pool.sweep(ctx, &domain.Cooldown{Subject: "user:1", ActionID: domain.ActionWhitelist})
		assert.Equal(t, 1, rec.Swept())
	})

	t.Run("Restarted since scan", func(t *testing.T) {
		repo.EXPECT().DeleteExpiredCooldown(mock.Anything, "user:2", domain.ActionBugReport, now).Return(false, nil).Once()

		pool.sweep(ctx, &domain.Cooldown{Subject: "user:2", ActionID: domain.ActionBugReport})
		assert.Equal(t, 1, rec.Swept())
	})

	t.Run("Storage error", func(t *testing.T) {
		repo.EXPECT().DeleteExpiredCooldown(mock.Anything, "user:3", domain.ActionBugReport, now).Return(false, errors.New("timeout")).Once()

		pool.sweep(ctx, &domain.Cooldown{Subject: "user:3", ActionID: domain.ActionBugReport})
		assert.Equal(t, 1, rec.Swept())
	})
}

func TestPool_ScanExpiredQueueFull(t *testing.T) {
	repo := domainmocks.NewCooldownRepositoryMock(t)
	pool := NewPool(PoolConfig{Workers: 1, QueueSize: 1}, repo, nil, zap.NewNop())

	repo.EXPECT().ListExpiredCooldowns(mock.Anything, mock.Anything, 1).Return([]*domain.Cooldown{
		{Subject: "user:1", ActionID: domain.ActionWhitelist},
		{Subject: "user:2", ActionID: domain.ActionWhitelist},
	}, nil).Once()

	pool.scanExpired(context.Background())

	require.Len(t, pool.queue, 1)
	assert.Equal(t, "user:1", (<-pool.queue).Subject)
}

func TestPool_ScanExpiredListError(t *testing.T) {
	repo := domainmocks.NewCooldownRepositoryMock(t)
	pool := NewPool(PoolConfig{}, repo, nil, zap.NewNop())

	repo.EXPECT().ListExpiredCooldowns(mock.Anything, mock.Anything, DefaultQueueSize).Return(nil, errors.New("timeout")).Once()

	pool.scanExpired(context.Background())
	assert.Empty(t, pool.queue)
}

func TestPool_RunSweepsMemoryStore(t *testing.T) {
	store := memory.NewStore()
	rec := &fakeRecorder{}
	pool := NewPool(PoolConfig{Workers: 2, QueueSize: 10, ScanInterval: 5 * time.Millisecond}, store, rec, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	now := time.Now()
	require.NoError(t, store.SetCooldown(ctx, "ip:10.0.0.1", domain.ActionWhitelist, now.Add(-time.Second)))
	require.NoError(t, store.SetCooldown(ctx, "ip:10.0.0.2", domain.ActionWhitelist, now.Add(time.Hour)))

	done := make(chan error, 1)
	go func() { done <- pool.Run(ctx) }()

	assert.Eventually(t, func() bool { return rec.Swept() == 1 }, time.Second, 5*time.Millisecond)

	cancel()
	require.NoError(t, <-done)

	_, ok, err := store.GetCooldown(context.Background(), "ip:10.0.0.1", domain.ActionWhitelist)
	require.NoError(t, err)
	assert.False(t, ok)

	_, ok, err = store.GetCooldown(context.Background(), "ip:10.0.0.2", domain.ActionWhitelist)
	require.NoError(t, err)
	assert.True(t, ok)
}
