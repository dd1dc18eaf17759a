package modules

import (
	"github.com/Sokol111/s3-listener/pkg/core"
	"go.uber.org/fx"
)

// NewCoreModule provides core functionality: config, app identity and logger
func NewCoreModule(opts ...core.Option) fx.Option {
	return core.NewCoreModule(opts...)
}
