package service

import (
	"math/rand"
	"testing"
	"time"

	"alpharoot/config"
	"alpharoot/pkg/cache"
	"alpharoot/pkg/localstore"
	"alpharoot/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		Cache: config.Cache{
			DefaultExpiration: time.Minute,
			CleanupInterval:   time.Minute,
			StatisticsTTL:     time.Minute,
		},
	}
}

func testStockService(t *testing.T) *StockService {
	t.Helper()
	return NewStockService(
		testConfig(),
		logger.Nop(),
		cache.NewCache(time.Minute, time.Minute),
		rand.New(rand.NewSource(1)),
	)
}

func testStore(t *testing.T) *localstore.Store {
	t.Helper()
	store, err := localstore.Open(":memory:")
	require.NoError(t, err)
	return store
}

func testAuthService(t *testing.T) *AuthService {
	t.Helper()
	return NewAuthService(testConfig(), logger.Nop(), testStore(t))
}

func TestIDAllocator_UniqueAndMonotonic(t *testing.T) {
	var ids idAllocator

	seen := make(map[int64]struct{})
	prev := int64(0)
	for i := 0; i < 100; i++ {
		id := ids.Next()
		assert.Greater(t, id, prev)
		_, dup := seen[id]
		assert.False(t, dup)
		seen[id] = struct{}{}
		prev = id
	}
}
