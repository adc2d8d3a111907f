package pulp

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var planRequests = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "releng_sop_plan_requests_total",
		Help: "Plan preview requests by workflow and response status",
	},
	[]string{"workflow", "status"},
)

func observePlan(workflow string, status int) {
	planRequests.WithLabelValues(workflow, strconv.Itoa(status)).Inc()
}
