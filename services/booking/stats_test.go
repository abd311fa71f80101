package booking

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"carexyz/models"
	"carexyz/utils"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPublicStats(t *testing.T) {
	f := newFixture()
	f.bookings.On("CountAll", mock.Anything).Return(int64(12), nil)
	f.users.On("CountAll", mock.Anything).Return(int64(5), nil)

	stats := f.svc.PublicStats(context.Background())
	assert.Equal(t, models.PublicStats{TotalBookings: 12, TotalUsers: 5, Services: 3}, stats)
}

func TestPublicStatsFallsBackOnStoreFailure(t *testing.T) {
	f := newFixture()
	f.bookings.On("CountAll", mock.Anything).Return(int64(0), errors.New("no reachable servers"))

	stats := f.svc.PublicStats(context.Background())
	assert.Equal(t, models.PublicStats{TotalBookings: 1250, TotalUsers: 850, Services: 3}, stats)

	body, err := json.Marshal(stats)
	require.NoError(t, err)
	assert.JSONEq(t, `{"bookings":1250,"users":850,"services":3}`, string(body))
}

func TestPublicStatsCache(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	f := newFixture()
	f.svc.Cache = client
	f.bookings.On("CountAll", mock.Anything).Return(int64(12), nil).Once()
	f.users.On("CountAll", mock.Anything).Return(int64(5), nil).Once()

	first := f.svc.PublicStats(context.Background())
	second := f.svc.PublicStats(context.Background())
	assert.Equal(t, first, second)
	f.bookings.AssertNumberOfCalls(t, "CountAll", 1)

	require.True(t, mr.Exists(utils.PublicStatsCacheKey))
	assert.Equal(t, utils.PublicStatsCacheTTL, mr.TTL(utils.PublicStatsCacheKey))

	mr.FastForward(utils.PublicStatsCacheTTL)
	assert.False(t, mr.Exists(utils.PublicStatsCacheKey))
}

func TestPublicStatsDoesNotCacheFallback(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	f := newFixture()
	f.svc.Cache = client
	f.bookings.On("CountAll", mock.Anything).Return(int64(0), errors.New("down"))

	assert.Equal(t, FallbackPublicStats, f.svc.PublicStats(context.Background()))
	assert.False(t, mr.Exists(utils.PublicStatsCacheKey))
}
