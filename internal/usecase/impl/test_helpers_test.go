package impl

import (
	"io"
	"log/slog"

	"projectdesk/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(defaultPageSize, maxPageSize int) *config.Config {
	return &config.Config{
		Pagination: &config.PaginationConfig{
			DefaultPageSize: defaultPageSize,
			MaxPageSize:     maxPageSize,
		},
	}
}
