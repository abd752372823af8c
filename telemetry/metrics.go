package telemetry

import (
	"strings"

	"github.com/mrdunski/addon-changes/model"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "addon_changes"

var (
	changedAddons = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "changed_addons",
		Help:      "Number of addons with detected changes by bundle type",
	}, []string{"type"})

	gitCommands = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "git_commands_total",
		Help:      "Number of executed git commands",
	}, []string{"command", "result"})
)

func init() {
	prometheus.MustRegister(changedAddons, gitCommands)
}

func ObserveChangedAddons(result model.AddonsByType) {
	changedAddons.WithLabelValues(string(model.OlmBundle)).Set(float64(result.Olm.Len()))
	changedAddons.WithLabelValues(string(model.PackageBundle)).Set(float64(result.Package.Len()))
}

func CountGitCommand(subCommand string, err error) {
	result := "success"
	if err != nil {
		result = "failure"
	}
	gitCommands.WithLabelValues(subCommand, result).Inc()
}

func isOwnMetric(name string) bool {
	return strings.HasPrefix(name, namespace+"_")
}
