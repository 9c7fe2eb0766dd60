package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var PoolsCreatedCounter = promauto.NewCounter(prometheus.CounterOpts{
	Name: "pools_created_total",
	Help: "Number of prediction pools created",
})

var PoolsDeletedCounter = promauto.NewCounter(prometheus.CounterOpts{
	Name: "pools_deleted_total",
	Help: "Number of prediction pools deleted by their host",
})

var AnswersSubmittedCounter = promauto.NewCounter(prometheus.CounterOpts{
	Name: "answers_submitted_total",
	Help: "Number of prediction answers accepted",
})

var AnswersRejectedCounter = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "answers_rejected_total",
	Help: "Number of prediction answers rejected, by reason",
}, []string{"reason"})

var PromptsResolvedCounter = promauto.NewCounter(prometheus.CounterOpts{
	Name: "prompts_resolved_total",
	Help: "Number of prompts resolved by a host",
})

var PicksUpsertedCounter = promauto.NewCounter(prometheus.CounterOpts{
	Name: "awards_picks_total",
	Help: "Number of awards picks written, including re-picks",
})

var NotificationErrorCounter = promauto.NewCounter(prometheus.CounterOpts{
	Name: "notification_dispatch_errors_total",
	Help: "Number of notification events that failed to reach the broker",
})

var ResolutionDuration = promauto.NewHistogram(prometheus.HistogramOpts{
	Name: "prompt_resolution_duration_seconds",
	Help: "Duration of the resolve transaction including scoring and totals recompute",
	Buckets: []float64{
		0.005, 0.01, 0.02, 0.05, 0.1, 0.2, 0.5, 1, 2, 5,
	},
})
