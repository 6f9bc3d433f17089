package utils

import "time"

// CruisePageCachePrefix is the prefix used for Redis cruise page keys.
const CruisePageCachePrefix = "cruise:page:"

// BookingSessionPrefix is the prefix used for Redis booking session keys.
const BookingSessionPrefix = "booking:session:"

// HealthCheckInterval is how often dependencies are pinged.
const HealthCheckInterval = time.Minute

// AdminTokenTTL is the lifetime of tokens minted by the admin token command.
const AdminTokenTTL = 12 * time.Hour
