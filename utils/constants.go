// File: utils/constants.go
package utils

import "time"

// PublicStatsCacheKey is the redis key holding the cached public stats payload.
const PublicStatsCacheKey = "stats:public"

// PublicStatsCacheTTL is the time-to-live for the public stats cache entry.
const PublicStatsCacheTTL = 5 * time.Minute

// HealthCheckInterval is how often StartHealthMonitor pings its dependencies.
const HealthCheckInterval = 30 * time.Second
