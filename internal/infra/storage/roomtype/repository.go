package roomtype

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/staymarket/booking-service/internal/domain"
	"github.com/staymarket/booking-service/pkg/dbmetrics"
	"github.com/staymarket/booking-service/pkg/psqlbuilder"
)

var roomTypeColumns = []string{
	"id",
	"hotel_id",
	"title",
	"capacity_adults",
	"quantity",
	"price_per_night",
	"amenities",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с room types
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория room types
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает один room type
func (r *Repository) Create(ctx context.Context, roomType *domain.RoomType) (*domain.RoomType, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("room_types").
		Columns(
			"hotel_id",
			"title",
			"capacity_adults",
			"quantity",
			"price_per_night",
			"amenities",
		).
		Values(
			roomType.HotelID,
			roomType.Title,
			roomType.CapacityAdults,
			roomType.Quantity,
			roomType.PricePerNight,
			pq.Array(roomType.Amenities),
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&roomType.ID,
		&createdAt,
		&updatedAt,
	)

	if isUniqueViolation(err) {
		return nil, fmt.Errorf("%w: Create - %v", ErrDuplicateKey, err)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	roomType.CreatedAt = createdAt.Time
	roomType.UpdatedAt = updatedAt.Time

	return roomType, nil
}

// CreateBatch создает несколько room types одного отеля
// Вызывается внутри транзакций создания и синхронизации отеля
func (r *Repository) CreateBatch(ctx context.Context, hotelID int64, roomTypes []*domain.RoomType) error {
	for _, rt := range roomTypes {
		rt.HotelID = hotelID
		if _, err := r.Create(ctx, rt); err != nil {
			return err
		}
	}
	return nil
}

// GetByIDAndHotel получает room type по ID с проверкой принадлежности отелю
// Скоупинг по hotel_id защищает от подстановки room type чужого отеля
func (r *Repository) GetByIDAndHotel(ctx context.Context, id, hotelID int64) (*domain.RoomType, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(roomTypeColumns...).
		From("room_types").
		Where(squirrel.Eq{"id": id, "hotel_id": hotelID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByIDAndHotel - build select query: %v", ErrBuildQuery, err)
	}

	var rt domain.RoomType
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&rt.ID,
		&rt.HotelID,
		&rt.Title,
		&rt.CapacityAdults,
		&rt.Quantity,
		&rt.PricePerNight,
		pq.Array(&rt.Amenities),
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrRoomTypeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByIDAndHotel - scan room type: %v", ErrScanRow, err)
	}

	rt.CreatedAt = createdAt.Time
	rt.UpdatedAt = updatedAt.Time

	return &rt, nil
}

// ListByHotelID получает все room types отеля в порядке создания
// Внутри транзакции блокирует строки (FOR UPDATE) — используется
// транзакцией синхронизации для защиты от конкурентных изменений ростера
func (r *Repository) ListByHotelID(ctx context.Context, hotelID int64) ([]*domain.RoomType, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(roomTypeColumns...).
		From("room_types").
		Where(squirrel.Eq{"hotel_id": hotelID}).
		OrderBy("created_at ASC, id ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByHotelID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByHotelID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanRoomTypes(rows)
}

// Update обновляет поля room type с проверкой принадлежности отелю
func (r *Repository) Update(ctx context.Context, roomType *domain.RoomType) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("room_types").
		Set("title", roomType.Title).
		Set("capacity_adults", roomType.CapacityAdults).
		Set("quantity", roomType.Quantity).
		Set("price_per_night", roomType.PricePerNight).
		Set("amenities", pq.Array(roomType.Amenities)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": roomType.ID, "hotel_id": roomType.HotelID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if isUniqueViolation(err) {
		return fmt.Errorf("%w: Update - %v", ErrDuplicateKey, err)
	}
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrRoomTypeNotFound
	}

	return nil
}

// DeleteByIDs удаляет room types отеля по списку ID
func (r *Repository) DeleteByIDs(ctx context.Context, hotelID int64, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("room_types").
		Where(squirrel.Eq{"hotel_id": hotelID, "id": ids}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DeleteByIDs - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: DeleteByIDs - execute delete: %v", ErrExecQuery, err)
	}

	return nil
}

// TotalRoomsByHotelIDs возвращает суммарное количество номеров по отелям
// Используется для дашборда владельца
func (r *Repository) TotalRoomsByHotelIDs(ctx context.Context, hotelIDs []int64) (map[int64]int64, error) {
	totals := make(map[int64]int64, len(hotelIDs))
	if len(hotelIDs) == 0 {
		return totals, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("hotel_id", "COALESCE(SUM(quantity), 0)").
		From("room_types").
		Where(squirrel.Eq{"hotel_id": hotelIDs}).
		GroupBy("hotel_id").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: TotalRoomsByHotelIDs - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: TotalRoomsByHotelIDs - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var hotelID, total int64
		if err := rows.Scan(&hotelID, &total); err != nil {
			return nil, fmt.Errorf("%w: TotalRoomsByHotelIDs - scan row: %v", ErrScanRow, err)
		}
		totals[hotelID] = total
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: TotalRoomsByHotelIDs - rows error: %v", ErrScanRow, err)
	}

	return totals, nil
}

// scanRoomTypes сканирует результаты запроса в слайс room types
func (r *Repository) scanRoomTypes(rows *sql.Rows) ([]*domain.RoomType, error) {
	roomTypes := make([]*domain.RoomType, 0)

	for rows.Next() {
		var rt domain.RoomType
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&rt.ID,
			&rt.HotelID,
			&rt.Title,
			&rt.CapacityAdults,
			&rt.Quantity,
			&rt.PricePerNight,
			pq.Array(&rt.Amenities),
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanRoomTypes - scan row: %v", ErrScanRow, err)
		}

		rt.CreatedAt = createdAt.Time
		rt.UpdatedAt = updatedAt.Time

		roomTypes = append(roomTypes, &rt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanRoomTypes - rows error: %v", ErrScanRow, err)
	}

	return roomTypes, nil
}

// isUniqueViolation проверяет, что ошибка является нарушением
// уникального ограничения PostgreSQL (код 23505)
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
