package modules

import (
	"github.com/Sokol111/s3-listener/pkg/listener"
	"go.uber.org/fx"
)

// NewListenerModule provides the notification dispatcher
func NewListenerModule() fx.Option {
	return listener.NewListenerModule()
}
