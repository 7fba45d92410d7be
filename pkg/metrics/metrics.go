package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	InquiriesSubmitted = prometheus.NewCounter(
		prometheus.CounterOpts{Namespace: "mathsmania", Name: "inquiries_submitted_total", Help: "Number of inquiries accepted."},
	)
	UsersRegistered = prometheus.NewCounter(
		prometheus.CounterOpts{Namespace: "mathsmania", Name: "users_registered_total", Help: "Number of accounts created."},
	)
	LoginAttempts = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "mathsmania", Name: "login_attempts_total", Help: "Number of login attempts by result."},
		[]string{"result"},
	)
	VacancySearches = prometheus.NewCounter(
		prometheus.CounterOpts{Namespace: "mathsmania", Name: "vacancy_searches_total", Help: "Number of vacancy list/search requests."},
	)
	RateLimitAllowed = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "mathsmania", Name: "rate_limit_allowed_total", Help: "Number of allowed requests by limiter type."},
		[]string{"limiter"},
	)
	RateLimitRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "mathsmania", Name: "rate_limit_rejected_total", Help: "Number of rejected requests by limiter type."},
		[]string{"limiter"},
	)
)

func RegisterCollectors(reg prometheus.Registerer) {
	reg.MustRegister(InquiriesSubmitted)
	reg.MustRegister(UsersRegistered)
	reg.MustRegister(LoginAttempts)
	reg.MustRegister(VacancySearches)
	reg.MustRegister(RateLimitAllowed)
	reg.MustRegister(RateLimitRejected)
}
