package internal

import (
	"context"

	appconfig "github.com/Sokol111/s3-listener/pkg/core/config"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.37.0"
)

// NewResource describes the listener for both tracer and meter providers.
func NewResource(ctx context.Context, appCfg appconfig.AppConfig) (*resource.Resource, error) {
	attrs := []attribute.KeyValue{
		semconv.ServiceNameKey.String(appCfg.ServiceName),
		semconv.ServiceVersionKey.String(appCfg.ServiceVersion),
		semconv.DeploymentEnvironmentNameKey.String(appCfg.Environment),
		semconv.FaaSNameKey.String(appCfg.ServiceName),
	}
	if appCfg.Region != "" {
		attrs = append(attrs,
			semconv.CloudProviderAWS,
			semconv.CloudRegionKey.String(appCfg.Region),
		)
	}

	return resource.New(ctx,
		resource.WithFromEnv(),
		resource.WithProcess(),
		resource.WithOS(),
		resource.WithAttributes(attrs...),
	)
}
