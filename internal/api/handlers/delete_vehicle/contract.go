package delete_vehicle

import "context"

type ListingService interface {
	Delete(ctx context.Context, listingID, userID int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
