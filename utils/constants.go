// File: utils/constants.go
package utils

import "time"

// DayCachePrefix is the prefix used for Redis keys holding resolved day grids.
const DayCachePrefix = "schedule:day:"

// DefaultCacheTTL is used when no TTL is configured.
const DefaultCacheTTL = 10 * time.Minute

// DateLayout is the wire format of calendar dates.
const DateLayout = "2006-01-02"
