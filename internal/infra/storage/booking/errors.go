package booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking.repository: booking not found")

	// ErrNotPending возвращается, когда guarded update решения не изменил
	// ни одной строки: бронирование отсутствует либо уже не в статусе pending.
	// Вызывающий код перечитывает запись, чтобы различить эти случаи
	ErrNotPending = errors.New("booking.repository: booking is not pending")

	// ErrDuplicateKey возвращается при нарушении уникального ограничения
	ErrDuplicateKey = errors.New("booking.repository: duplicate key")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("booking.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("booking.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("booking.repository: failed to scan row")
)
