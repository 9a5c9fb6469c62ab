package roomtype

import "errors"

var (
	// ErrRoomTypeNotFound возвращается, когда room type не найден
	ErrRoomTypeNotFound = errors.New("roomtype.repository: room type not found")

	// ErrDuplicateKey возвращается при нарушении уникального ограничения
	// (два room type одного отеля с одинаковым названием)
	ErrDuplicateKey = errors.New("roomtype.repository: duplicate key")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("roomtype.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("roomtype.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("roomtype.repository: failed to scan row")
)
