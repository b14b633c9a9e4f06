package rate_limiter

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var RateLimitExceededTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "rate_limit_exceeded_total",
		Help: "Requests rejected because the caller exhausted its token bucket",
	},
	[]string{"method", "route"},
)
