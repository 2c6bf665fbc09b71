package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	AuthDenied = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "campusbridge", Name: "auth_denied_total", Help: "Number of rejected protected-operation requests by error kind."},
		[]string{"kind"},
	)
	EligibilityEvaluations = prometheus.NewCounter(
		prometheus.CounterOpts{Namespace: "campusbridge", Name: "eligibility_evaluations_total", Help: "Number of student/job eligibility evaluations performed."},
	)
	RateLimitAllowed = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "campusbridge", Name: "rate_limit_allowed_total", Help: "Number of allowed requests by limiter type."},
		[]string{"limiter"},
	)
	RateLimitRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "campusbridge", Name: "rate_limit_rejected_total", Help: "Number of rejected requests by limiter type."},
		[]string{"limiter"},
	)
)

func RegisterCollectors(reg prometheus.Registerer) {
	reg.MustRegister(AuthDenied)
	reg.MustRegister(EligibilityEvaluations)
	reg.MustRegister(RateLimitAllowed)
	reg.MustRegister(RateLimitRejected)
}
