package tracing

// Resource attribute keys
const (
	AttrServiceName           = "service.name"
	AttrServiceVersion        = "service.version"
	AttrDeploymentEnvironment = "deployment.environment"
)

const (
	ErrMsgFailedToCreateExporter = "failed to create OTLP trace exporter"

	LogMsgTracingEnabled  = "Tracing enabled"
	LogMsgTracingDisabled = "Tracing disabled: no OTEL_ENDPOINT configured"
)
