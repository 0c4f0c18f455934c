package tracing

import (
	"fmt"

	"github.com/honeycombio/honeycomb-opentelemetry-go"
	"github.com/honeycombio/otel-config-go/otelconfig"
	log "github.com/sirupsen/logrus"
)

// Setup configures the otel exporter. Honeycomb reads HONEYCOMB_API_KEY and
// OTEL_SERVICE_NAME from the environment. The returned func flushes and stops
// the exporter, it is a no-op when tracing is disabled.
func Setup(enabled bool) (shutdown func(), err error) {
	if !enabled {
		log.Debugln("honeycomb tracing disabled")
		return func() {}, nil
	}

	bsp := honeycomb.NewBaggageSpanProcessor()
	otelShutdown, err := otelconfig.ConfigureOpenTelemetry(
		otelconfig.WithSpanProcessor(bsp),
	)
	if err != nil {
		return nil, fmt.Errorf("configure opentelemetry: %w", err)
	}

	log.Infoln("honeycomb tracing enabled")
	return otelShutdown, nil
}
