package telemetry

import (
	"github.com/mrdunski/addon-changes/logger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
)

type printer struct {
	config TeleConfig
}

func (p printer) Record() {
	log := logger.WithComponent("telemetry").WithField("job", p.config.TelemetryJobId)

	metrics, err := prometheus.DefaultGatherer.Gather()
	if err != nil {
		log.WithError(err).Error("Failed to gather metrics")
		return
	}

	for _, metricFamily := range metrics {
		if !isOwnMetric(metricFamily.GetName()) {
			continue
		}
		for _, metric := range metricFamily.Metric {
			log.WithFields(logrus.Fields{
				"name":   metricFamily.GetName(),
				"labels": metric.GetLabel(),
			}).Infof("metric: %v", metric)
		}
	}
}
