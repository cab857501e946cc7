package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var NewsViewsTotal = promauto.NewCounter(prometheus.CounterOpts{
	Name: "eplradar_news_views_total",
	Help: "News article detail views",
})

var PredictionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "eplradar_predictions_total",
	Help: "Prediction writes by action",
}, []string{"action"})

var MatchTransitionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "eplradar_match_transitions_total",
	Help: "Match status changes made by the scheduler or admins",
}, []string{"status"})

var LiveConnections = promauto.NewGauge(prometheus.GaugeOpts{
	Name: "eplradar_live_connections",
	Help: "Open live match websocket connections",
})

var SeedRowsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "eplradar_seed_rows_total",
	Help: "Fixture rows processed by the CSV importers",
}, []string{"file", "result"})
