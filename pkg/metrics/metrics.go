package metrics

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	syncedRecords = promauto.NewCounter(prometheus.CounterOpts{
		Name: "arboria_sync_records_synced_total",
		Help: "Tree records successfully reconciled from offline batches.",
	})
	erroredRecords = promauto.NewCounter(prometheus.CounterOpts{
		Name: "arboria_sync_records_errored_total",
		Help: "Tree records rejected during offline batch reconciliation.",
	})
)

func SyncRecordSynced()  { syncedRecords.Inc() }
func SyncRecordErrored() { erroredRecords.Inc() }

func Handler() echo.HandlerFunc { return echo.WrapHandler(promhttp.Handler()) }
