package hotel

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

var hotelColumns = []string{
	"id",
	"owner_id",
	"name",
	"city",
	"country",
	"images",
	"description",
	"amenities",
	"rating",
	"currency",
	"starting_price_per_night",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с отелями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория отелей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый отель
// Если в контексте передана активная транзакция, использует её.
// Вызывается только внутри транзакции создания отеля вместе с room types
func (r *Repository) Create(ctx context.Context, hotel *domain.Hotel) (*domain.Hotel, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("hotels").
		Columns(
			"owner_id",
			"name",
			"city",
			"country",
			"images",
			"description",
			"amenities",
			"rating",
			"currency",
			"starting_price_per_night",
		).
		Values(
			hotel.OwnerID,
			hotel.Name,
			hotel.City,
			hotel.Country,
			pq.Array(hotel.Images),
			hotel.Description,
			pq.Array(hotel.Amenities),
			hotel.Rating,
			hotel.Currency,
			hotel.StartingPricePerNight,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&hotel.ID,
		&createdAt,
		&updatedAt,
	)

	if isUniqueViolation(err) {
		return nil, fmt.Errorf("%w: Create - %v", ErrDuplicateKey, err)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	hotel.CreatedAt = createdAt.Time
	hotel.UpdatedAt = updatedAt.Time

	return hotel, nil
}

// GetByID получает отель по ID
// Внутри транзакции блокирует строку (FOR UPDATE) — используется
// транзакцией синхронизации room types для защиты от конкурентных изменений
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Hotel, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(hotelColumns...).
		From("hotels").
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanHotelRow(executor.QueryRowContext(ctx, query, args...), "GetByID")
}

// GetByOwnerID получает все отели владельца, новые сначала
func (r *Repository) GetByOwnerID(ctx context.Context, ownerID int64) ([]*domain.Hotel, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(hotelColumns...).
		From("hotels").
		Where(squirrel.Eq{"owner_id": ownerID}).
		OrderBy("created_at DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByOwnerID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByOwnerID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanHotels(rows)
}

// List получает отели каталога с фильтрацией и пагинацией
// Возвращает страницу отелей и общее количество под фильтр
func (r *Repository) List(ctx context.Context, filter domain.HotelsFilter) ([]*domain.Hotel, int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(hotelColumns...).From("hotels")
	countBuilder := psqlbuilder.Select("COUNT(*)").From("hotels")

	// Поиск по названию, городу и стране
	if filter.Search != nil && *filter.Search != "" {
		pattern := "%" + *filter.Search + "%"
		cond := squirrel.Or{
			squirrel.ILike{"name": pattern},
			squirrel.ILike{"city": pattern},
			squirrel.ILike{"country": pattern},
		}
		selectBuilder = selectBuilder.Where(cond)
		countBuilder = countBuilder.Where(cond)
	}

	// Отель должен содержать все выбранные удобства
	if len(filter.Amenities) > 0 {
		cond := squirrel.Expr("amenities @> ?", pq.Array(filter.Amenities))
		selectBuilder = selectBuilder.Where(cond)
		countBuilder = countBuilder.Where(cond)
	}

	// Верхняя граница стартовой цены
	if filter.MaxStartingPrice != nil {
		cond := squirrel.LtOrEq{"starting_price_per_night": *filter.MaxStartingPrice}
		selectBuilder = selectBuilder.Where(cond)
		countBuilder = countBuilder.Where(cond)
	}

	if filter.SortByRating {
		selectBuilder = selectBuilder.OrderBy("rating DESC NULLS LAST", "created_at DESC")
	} else {
		selectBuilder = selectBuilder.OrderBy("created_at DESC")
	}

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

	hotels, err := r.scanHotels(rows)
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

	return hotels, total, nil
}

// Update применяет частичное обновление полей отеля
// owner_id и starting_price_per_night через patch не изменяются:
// производное поле обновляется только через UpdateStartingPrice
func (r *Repository) Update(ctx context.Context, id int64, patch domain.HotelPatch) error {
	if patch.IsEmpty() {
		return nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("hotels").
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id})

	if patch.Name != nil {
		updateBuilder = updateBuilder.Set("name", *patch.Name)
	}
	if patch.City != nil {
		updateBuilder = updateBuilder.Set("city", *patch.City)
	}
	if patch.Country != nil {
		updateBuilder = updateBuilder.Set("country", *patch.Country)
	}
	if patch.Images != nil {
		updateBuilder = updateBuilder.Set("images", pq.Array(*patch.Images))
	}
	if patch.Description != nil {
		updateBuilder = updateBuilder.Set("description", *patch.Description)
	}
	if patch.Amenities != nil {
		updateBuilder = updateBuilder.Set("amenities", pq.Array(*patch.Amenities))
	}
	if patch.Rating != nil {
		updateBuilder = updateBuilder.Set("rating", *patch.Rating)
	}
	if patch.Currency != nil {
		updateBuilder = updateBuilder.Set("currency", *patch.Currency)
	}

	query, args, err := updateBuilder.ToSql()
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
		return ErrHotelNotFound
	}

	return nil
}

// UpdateStartingPrice записывает пересчитанную минимальную цену за ночь
// Единственный путь записи производного поля starting_price_per_night.
// Вызывается в конце транзакций создания и синхронизации
func (r *Repository) UpdateStartingPrice(ctx context.Context, id int64, price float64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("hotels").
		Set("starting_price_per_night", price).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStartingPrice - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStartingPrice - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStartingPrice - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrHotelNotFound
	}

	return nil
}

// scanHotelRow сканирует одну строку отеля
func (r *Repository) scanHotelRow(row *sql.Row, method string) (*domain.Hotel, error) {
	var hotel domain.Hotel
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&hotel.ID,
		&hotel.OwnerID,
		&hotel.Name,
		&hotel.City,
		&hotel.Country,
		pq.Array(&hotel.Images),
		&hotel.Description,
		pq.Array(&hotel.Amenities),
		&hotel.Rating,
		&hotel.Currency,
		&hotel.StartingPricePerNight,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrHotelNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan hotel: %v", ErrScanRow, method, err)
	}

	hotel.CreatedAt = createdAt.Time
	hotel.UpdatedAt = updatedAt.Time

	return &hotel, nil
}

// scanHotels сканирует результаты запроса в слайс отелей
func (r *Repository) scanHotels(rows *sql.Rows) ([]*domain.Hotel, error) {
	hotels := make([]*domain.Hotel, 0)

	for rows.Next() {
		var hotel domain.Hotel
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&hotel.ID,
			&hotel.OwnerID,
			&hotel.Name,
			&hotel.City,
			&hotel.Country,
			pq.Array(&hotel.Images),
			&hotel.Description,
			pq.Array(&hotel.Amenities),
			&hotel.Rating,
			&hotel.Currency,
			&hotel.StartingPricePerNight,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanHotels - scan row: %v", ErrScanRow, err)
		}

		hotel.CreatedAt = createdAt.Time
		hotel.UpdatedAt = updatedAt.Time

		hotels = append(hotels, &hotel)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanHotels - rows error: %v", ErrScanRow, err)
	}

	return hotels, nil
}

// isUniqueViolation проверяет, что ошибка является нарушением
// уникального ограничения PostgreSQL (код 23505)
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
