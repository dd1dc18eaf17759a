package main

import (
	"context"
	"sort"

	"github.com/Sokol111/s3-listener/pkg/core/logger"
	"github.com/Sokol111/s3-listener/pkg/listener"
	"github.com/Sokol111/s3-listener/pkg/s3event"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

// objectLogger reads the stored object and logs what it found.
type objectLogger struct {
	listener.Listener
}

func objectLoggerFactory(accessor listener.DataAccessor) listener.Factory {
	return func(event s3event.Event) listener.Processor {
		return &objectLogger{Listener: listener.NewListener(event, accessor)}
	}
}

func (h *objectLogger) Process(ctx context.Context) error {
	data, err := h.Data(ctx)
	if err != nil {
		return err
	}

	fields := []zap.Field{
		zap.String("prefix", h.FilePrefix()),
		zap.String("filename", h.Filename()),
		zap.String("extension", h.FileExtension()),
		zap.Int64("size", h.Filesize()),
	}
	fields = append(fields, describe(data)...)

	logger.FromContext(ctx).Info("object received", fields...)
	return nil
}

func describe(data any) []zap.Field {
	switch v := data.(type) {
	case []byte:
		return []zap.Field{zap.Int("bytes", len(v))}
	case map[string]any:
		keys := lo.Keys(v)
		sort.Strings(keys)
		return []zap.Field{zap.Strings("keys", keys)}
	case []any:
		return []zap.Field{zap.Int("items", len(v))}
	default:
		return []zap.Field{zap.Any("value", v)}
	}
}
