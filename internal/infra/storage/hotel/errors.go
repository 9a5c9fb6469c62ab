package hotel

import "errors"

var (
	// ErrHotelNotFound возвращается, когда отель не найден
	ErrHotelNotFound = errors.New("hotel.repository: hotel not found")

	// ErrDuplicateKey возвращается при нарушении уникального ограничения
	// (например, два отеля одного владельца с одинаковым названием)
	ErrDuplicateKey = errors.New("hotel.repository: duplicate key")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("hotel.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("hotel.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("hotel.repository: failed to scan row")
)
