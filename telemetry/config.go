package telemetry

import (
	"github.com/google/uuid"
)

type TeleConfig struct {
	PushTelemetry    bool   `help:"Push telemetry to Push Gateway" env:"PUSH_TELEMETRY" optional:"" group:"Telemetry"`
	PrintTelemetry   bool   `help:"Logs telemetry as info" env:"PRINT_TELEMETRY" optional:"" group:"Telemetry"`
	PushGatewayUrl   string `help:"Address of Push Gateway" env:"PUSH_GATEWAY_URL" default:"http://localhost:9091" group:"Telemetry"`
	TelemetryJobName string `help:"Name for the job" env:"TELEMETRY_JOB_NAME" default:"addon-changes" group:"Telemetry"`
	TelemetryJobId   string `help:"Job identifier (random id by default)" env:"TELEMETRY_JOB_ID" optional:"" group:"Telemetry"`
}

func (c TeleConfig) NewRecorder() Recorder {
	cfg := c
	if cfg.TelemetryJobId == "" {
		cfg.TelemetryJobId = uuid.NewString()
	}

	mr := &multiRecorder{}

	if cfg.PushTelemetry {
		mr.recorders = append(mr.recorders, pusher{config: cfg})
	}

	if cfg.PrintTelemetry {
		mr.recorders = append(mr.recorders, printer{config: cfg})
	}

	return mr
}
