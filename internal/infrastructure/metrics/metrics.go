package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RoomsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "roomkit_rooms_created_total",
			Help: "Total rooms created",
		},
	)

	RoomsExpired = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "roomkit_rooms_expired_total",
			Help: "Total rooms removed by the expiry sweep",
		},
	)

	MessagesPosted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "roomkit_messages_posted_total",
			Help: "Total messages appended to room logs",
		},
		[]string{"kind"}, // "text" or "file"
	)

	FilesDeleted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "roomkit_files_deleted_total",
			Help: "Total uploaded files removed by bulk deletion",
		},
	)

	WSConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "roomkit_ws_connections",
			Help: "Currently open websocket connections",
		},
	)
)
