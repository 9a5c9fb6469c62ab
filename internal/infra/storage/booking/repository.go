package booking

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"

	"github.com/staymarket/booking-service/internal/domain"
	"github.com/staymarket/booking-service/pkg/dbmetrics"
	"github.com/staymarket/booking-service/pkg/psqlbuilder"
)

var bookingColumns = []string{
	"id",
	"hotel_id",
	"room_type_id",
	"guest_id",
	"check_in",
	"check_out",
	"guests_adults",
	"rooms_requested",
	"currency",
	"price_per_night",
	"total_amount",
	"guest_full_name",
	"guest_phone",
	"guest_email",
	"guest_arrival_time",
	"guest_notes",
	"status",
	"decided_at",
	"decided_by",
	"decision_reason",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую заявку на бронирование
// Снапшот цены (price_per_night, total_amount) записывается на момент создания
// и больше никогда не обновляется
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"hotel_id",
			"room_type_id",
			"guest_id",
			"check_in",
			"check_out",
			"guests_adults",
			"rooms_requested",
			"currency",
			"price_per_night",
			"total_amount",
			"guest_full_name",
			"guest_phone",
			"guest_email",
			"guest_arrival_time",
			"guest_notes",
			"status",
		).
		Values(
			booking.HotelID,
			booking.RoomTypeID,
			booking.GuestID,
			booking.CheckIn,
			booking.CheckOut,
			booking.GuestsAdults,
			booking.RoomsRequested,
			booking.Currency,
			booking.PricePerNight,
			booking.TotalAmount,
			booking.GuestInfo.FullName,
			booking.GuestInfo.Phone,
			booking.GuestInfo.Email,
			booking.GuestInfo.ArrivalTime,
			booking.GuestInfo.Notes,
			booking.Status,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return booking, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)

	booking, err := scanBookingRow(row.Scan)
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

// List получает бронирования по фильтру с пагинацией, новые сначала
// Возвращает страницу бронирований и общее количество под фильтр
func (r *Repository) List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).From("bookings")
	countBuilder := psqlbuilder.Select("COUNT(*)").From("bookings")

	if filter.GuestID != nil {
		cond := squirrel.Eq{"guest_id": *filter.GuestID}
		selectBuilder = selectBuilder.Where(cond)
		countBuilder = countBuilder.Where(cond)
	}

	if filter.HotelIDs != nil {
		cond := squirrel.Eq{"hotel_id": filter.HotelIDs}
		selectBuilder = selectBuilder.Where(cond)
		countBuilder = countBuilder.Where(cond)
	}

	if filter.Status != nil {
		cond := squirrel.Eq{"status": *filter.Status}
		selectBuilder = selectBuilder.Where(cond)
		countBuilder = countBuilder.Where(cond)
	}

	selectBuilder = selectBuilder.OrderBy("created_at DESC, id DESC")

	if filter.Limit > 0 {
		selectBuilder = selectBuilder.Limit(filter.Limit).Offset(filter.Offset)
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	bookings, err := r.scanBookings(rows)
	if err != nil {
		return nil, 0, err
	}

	countQuery, countArgs, err := countBuilder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("%w: List - build count query: %v", ErrBuildQuery, err)
	}

	var total int64
	if err := executor.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("%w: List - scan count: %v", ErrScanRow, err)
	}

	return bookings, total, nil
}

// Decide переводит бронирование из pending в approved/rejected одним
// guarded запросом: проверка статуса и запись решения выполняются атомарно
// (WHERE status = 'pending'). При гонке двух решений выигрывает первый писатель,
// второй получает ErrNotPending и должен перечитать запись
func (r *Repository) Decide(ctx context.Context, id int64, status domain.BookingStatus, decidedBy int64, reason string) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", status).
		Set("decided_at", squirrel.Expr("NOW()")).
		Set("decided_by", decidedBy).
		Set("decision_reason", reason).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "status": domain.StatusPending}).
		Suffix("RETURNING " + strings.Join(bookingColumns, ", ")).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Decide - build update query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)

	booking, err := scanBookingRow(row.Scan)
	if err == sql.ErrNoRows {
		return nil, ErrNotPending
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Decide - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

// StatsByHotelIDs возвращает счетчики бронирований по отелям
// Используется для дашборда владельца
func (r *Repository) StatsByHotelIDs(ctx context.Context, hotelIDs []int64) (map[int64]domain.HotelOwnerStats, error) {
	stats := make(map[int64]domain.HotelOwnerStats, len(hotelIDs))
	if len(hotelIDs) == 0 {
		return stats, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"hotel_id",
		"COUNT(*)",
		fmt.Sprintf("COUNT(*) FILTER (WHERE status = '%s')", domain.StatusPending),
	).
		From("bookings").
		Where(squirrel.Eq{"hotel_id": hotelIDs}).
		GroupBy("hotel_id").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: StatsByHotelIDs - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: StatsByHotelIDs - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var hotelID int64
		var s domain.HotelOwnerStats
		if err := rows.Scan(&hotelID, &s.TotalBookingsCount, &s.ActiveRequestsCount); err != nil {
			return nil, fmt.Errorf("%w: StatsByHotelIDs - scan row: %v", ErrScanRow, err)
		}
		stats[hotelID] = s
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: StatsByHotelIDs - rows error: %v", ErrScanRow, err)
	}

	return stats, nil
}

// scanBookingRow сканирует одну строку бронирования через переданный Scan
func scanBookingRow(scan func(dest ...interface{}) error) (*domain.Booking, error) {
	var booking domain.Booking
	var createdAt, updatedAt sql.NullTime
	var decidedAt sql.NullTime
	var decidedBy sql.NullInt64
	var decisionReason sql.NullString

	err := scan(
		&booking.ID,
		&booking.HotelID,
		&booking.RoomTypeID,
		&booking.GuestID,
		&booking.CheckIn,
		&booking.CheckOut,
		&booking.GuestsAdults,
		&booking.RoomsRequested,
		&booking.Currency,
		&booking.PricePerNight,
		&booking.TotalAmount,
		&booking.GuestInfo.FullName,
		&booking.GuestInfo.Phone,
		&booking.GuestInfo.Email,
		&booking.GuestInfo.ArrivalTime,
		&booking.GuestInfo.Notes,
		&booking.Status,
		&decidedAt,
		&decidedBy,
		&decisionReason,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, err
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	if decidedAt.Valid {
		booking.OwnerDecision = &domain.OwnerDecision{
			DecidedAt: decidedAt.Time,
			DecidedBy: decidedBy.Int64,
			Reason:    decisionReason.String,
		}
	}

	return &booking, nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func (r *Repository) scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		booking, err := scanBookingRow(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}
