package consts

const (
	// ServiceName identifies this service in logs, traces and metrics.
	ServiceName = "lightbnb"

	// KeyTraceID is the context / log field key carrying the request trace id.
	KeyTraceID = "trace_id"

	// DefaultSearchLimit bounds property search results when the caller passes
	// no limit (or a non-positive one).
	DefaultSearchLimit = 10

	// DefaultReservationLimit bounds guest reservation listings the same way.
	DefaultReservationLimit = 10

	// CacheKeyPrefix namespaces every search cache entry in redis and in the
	// local tier.
	CacheKeyPrefix = "lightbnb:search:"

	// CacheEpochKey stores the invalidation epoch counter in redis.
	CacheEpochKey = "lightbnb:search:epoch"
)
