package list_vehicles

import (
	"context"

	listCatalog "github.com/geargik/GearGik-BookingService/internal/usecase/list_catalog"
)

type ListCatalogUseCase interface {
	Execute(ctx context.Context, req *listCatalog.Request) (*listCatalog.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
