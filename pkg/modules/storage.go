package modules

import (
	"github.com/Sokol111/s3-listener/pkg/storage"
	"go.uber.org/fx"
)

// NewStorageModule provides object storage: S3 getter and accessor
func NewStorageModule() fx.Option {
	return storage.NewStorageModule()
}
