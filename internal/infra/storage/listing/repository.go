package listing

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/geargik/GearGik-BookingService/internal/domain"
	"github.com/geargik/GearGik-BookingService/pkg/dbmetrics"
	"github.com/geargik/GearGik-BookingService/pkg/psqlbuilder"
)

var listingColumns = []string{
	"id",
	"owner_id",
	"name",
	"vehicle_type",
	"location",
	"features",
	"image_url",
	"contact_phone",
	"reg_no",
	"mode",
	"price_per_hour",
	"max_duration_hours",
	"price_per_seat",
	"seats_available",
	"is_available",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с листингами каталога
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория листингов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый листинг
// Колонки чужого режима остаются NULL: инвариант "ровно один режим"
// обеспечивается доменной валидацией до вызова репозитория
func (r *Repository) Create(ctx context.Context, l *domain.Listing) (*domain.Listing, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	var (
		pricePerHour, pricePerSeat sql.NullInt64
		maxDurationHours           sql.NullInt64
		seatsAvailable             sql.NullInt64
	)
	switch l.Mode {
	case domain.ModeFullRental:
		pricePerHour = sql.NullInt64{Int64: l.FullRental.PricePerHour, Valid: true}
		if l.FullRental.MaxDurationHours != nil {
			maxDurationHours = sql.NullInt64{Int64: int64(*l.FullRental.MaxDurationHours), Valid: true}
		}
	case domain.ModeSeatShare:
		pricePerSeat = sql.NullInt64{Int64: l.SeatShare.PricePerSeat, Valid: true}
		seatsAvailable = sql.NullInt64{Int64: int64(l.SeatShare.SeatsAvailable), Valid: true}
	}

	query, args, err := psqlbuilder.Insert("listings").
		Columns(
			"owner_id",
			"name",
			"vehicle_type",
			"location",
			"features",
			"image_url",
			"contact_phone",
			"reg_no",
			"mode",
			"price_per_hour",
			"max_duration_hours",
			"price_per_seat",
			"seats_available",
			"is_available",
		).
		Values(
			l.OwnerID,
			l.Name,
			l.VehicleType,
			l.Location,
			pq.Array(l.Features),
			l.ImageURL,
			l.ContactPhone,
			l.RegNo,
			l.Mode,
			pricePerHour,
			maxDurationHours,
			pricePerSeat,
			seatsAvailable,
			l.IsAvailable,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&l.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	l.CreatedAt = createdAt.Time
	l.UpdatedAt = updatedAt.Time

	return l, nil
}

// GetByID получает листинг по ID
// Внутри транзакции добавляет FOR UPDATE: usecase создания бронирования
// перечитывает листинг с блокировкой непосредственно перед записью
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Listing, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(listingColumns...).
		From("listings").
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	l, err := scanListing(row)
	if err == sql.ErrNoRows {
		return nil, ErrListingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan listing: %v", ErrScanRow, err)
	}

	return l, nil
}

// GetWithFilter получает листинги с опциональной фильтрацией по режиму и владельцу
// Тонкая фильтрация каталога (тип, длительность, сортировка по цене)
// выполняется в памяти поверх этого снапшота
func (r *Repository) GetWithFilter(ctx context.Context, mode *domain.ListingMode, ownerID *int64) ([]domain.Listing, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(listingColumns...).
		From("listings").
		OrderBy("id ASC")

	if mode != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"mode": *mode})
	}
	if ownerID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"owner_id": *ownerID})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	listings := make([]domain.Listing, 0)
	for rows.Next() {
		l, err := scanListing(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetWithFilter - scan row: %v", ErrScanRow, err)
		}
		listings = append(listings, *l)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetWithFilter - rows error: %v", ErrScanRow, err)
	}

	return listings, nil
}

// Update обновляет редактируемые владельцем поля листинга
func (r *Repository) Update(ctx context.Context, l *domain.Listing) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("listings").
		Set("name", l.Name).
		Set("vehicle_type", l.VehicleType).
		Set("location", l.Location).
		Set("features", pq.Array(l.Features)).
		Set("image_url", l.ImageURL).
		Set("contact_phone", l.ContactPhone).
		Set("reg_no", l.RegNo).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": l.ID})

	// Условия режима обновляются только в рамках текущего режима листинга
	switch l.Mode {
	case domain.ModeFullRental:
		updateBuilder = updateBuilder.Set("price_per_hour", l.FullRental.PricePerHour)
		if l.FullRental.MaxDurationHours != nil {
			updateBuilder = updateBuilder.Set("max_duration_hours", *l.FullRental.MaxDurationHours)
		} else {
			updateBuilder = updateBuilder.Set("max_duration_hours", nil)
		}
	case domain.ModeSeatShare:
		updateBuilder = updateBuilder.
			Set("price_per_seat", l.SeatShare.PricePerSeat).
			Set("seats_available", l.SeatShare.SeatsAvailable)
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	return checkAffected(result, "Update")
}

// SetAvailability переключает доступность full rental листинга
// Используется переходами Available -> Reserved (бронирование)
// и Reserved -> Available (явное действие владельца)
func (r *Repository) SetAvailability(ctx context.Context, id int64, available bool) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("listings").
		Set("is_available", available).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SetAvailability - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: SetAvailability - execute update: %v", ErrExecQuery, err)
	}

	return checkAffected(result, "SetAvailability")
}

// DecrementSeats атомарно уменьшает количество свободных мест
// Guard в WHERE не дает счетчику уйти в минус: проигранная гонка
// за последние места возвращает ErrNotEnoughSeats
func (r *Repository) DecrementSeats(ctx context.Context, id int64, count int) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("listings").
		Set("seats_available", squirrel.Expr("seats_available - ?", count)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "mode": domain.ModeSeatShare}).
		Where(squirrel.GtOrEq{"seats_available": count}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DecrementSeats - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DecrementSeats - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DecrementSeats - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrNotEnoughSeats
	}

	return nil
}

// IncrementSeats возвращает места в листинг при отмене бронирования
func (r *Repository) IncrementSeats(ctx context.Context, id int64, count int) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("listings").
		Set("seats_available", squirrel.Expr("seats_available + ?", count)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "mode": domain.ModeSeatShare}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: IncrementSeats - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: IncrementSeats - execute update: %v", ErrExecQuery, err)
	}

	return checkAffected(result, "IncrementSeats")
}

// Delete удаляет листинг (явное действие владельца)
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("listings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	return checkAffected(result, "Delete")
}

// checkAffected возвращает ErrListingNotFound, если запрос не затронул строк
func checkAffected(result sql.Result, op string) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}
	if rowsAffected == 0 {
		return ErrListingNotFound
	}
	return nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanListing сканирует строку в доменный листинг, собирая tagged union
// из nullable колонок режимов
func scanListing(row rowScanner) (*domain.Listing, error) {
	var (
		l                          domain.Listing
		features                   pq.StringArray
		pricePerHour, pricePerSeat sql.NullInt64
		maxDurationHours           sql.NullInt64
		seatsAvailable             sql.NullInt64
		createdAt, updatedAt       sql.NullTime
	)

	err := row.Scan(
		&l.ID,
		&l.OwnerID,
		&l.Name,
		&l.VehicleType,
		&l.Location,
		&features,
		&l.ImageURL,
		&l.ContactPhone,
		&l.RegNo,
		&l.Mode,
		&pricePerHour,
		&maxDurationHours,
		&pricePerSeat,
		&seatsAvailable,
		&l.IsAvailable,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	l.Features = features
	l.CreatedAt = createdAt.Time
	l.UpdatedAt = updatedAt.Time

	switch l.Mode {
	case domain.ModeFullRental:
		terms := &domain.FullRentalTerms{PricePerHour: pricePerHour.Int64}
		if maxDurationHours.Valid {
			hours := int(maxDurationHours.Int64)
			terms.MaxDurationHours = &hours
		}
		l.FullRental = terms
	case domain.ModeSeatShare:
		l.SeatShare = &domain.SeatShareTerms{
			PricePerSeat:   pricePerSeat.Int64,
			SeatsAvailable: int(seatsAvailable.Int64),
		}
	}

	return &l, nil
}
