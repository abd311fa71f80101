package booking

import (
	"context"
	"encoding/json"

	"carexyz/models"
	"carexyz/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// publicServiceCount is the number of service categories advertised publicly.
const publicServiceCount = 3

// FallbackPublicStats is served whenever the store cannot be read.
var FallbackPublicStats = models.PublicStats{TotalBookings: 1250, TotalUsers: 850, Services: publicServiceCount}

// PublicStats returns booking and user counts for the landing page. It never fails.
func (s *DefaultBookingService) PublicStats(ctx context.Context) models.PublicStats {
	if stats, ok := s.cachedPublicStats(ctx); ok {
		return stats
	}

	bookings, err := s.Bookings.CountAll(ctx)
	if err != nil {
		s.logger().Warn("PublicStats: count bookings failed, serving fallback", zap.Error(err))
		return FallbackPublicStats
	}
	users, err := s.Users.CountAll(ctx)
	if err != nil {
		s.logger().Warn("PublicStats: count users failed, serving fallback", zap.Error(err))
		return FallbackPublicStats
	}

	stats := models.PublicStats{TotalBookings: bookings, TotalUsers: users, Services: publicServiceCount}
	s.cachePublicStats(ctx, stats)
	return stats
}

func (s *DefaultBookingService) cachedPublicStats(ctx context.Context) (models.PublicStats, bool) {
	var stats models.PublicStats
	if s.Cache == nil {
		return stats, false
	}
	raw, err := s.Cache.Get(ctx, utils.PublicStatsCacheKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			s.logger().Warn("PublicStats: cache read failed", zap.Error(err))
		}
		return stats, false
	}
	if err := json.Unmarshal(raw, &stats); err != nil {
		return stats, false
	}
	return stats, true
}

func (s *DefaultBookingService) cachePublicStats(ctx context.Context, stats models.PublicStats) {
	if s.Cache == nil {
		return
	}
	raw, err := json.Marshal(stats)
	if err != nil {
		return
	}
	if err := s.Cache.Set(ctx, utils.PublicStatsCacheKey, raw, utils.PublicStatsCacheTTL).Err(); err != nil {
		s.logger().Warn("PublicStats: cache write failed", zap.Error(err))
	}
}
