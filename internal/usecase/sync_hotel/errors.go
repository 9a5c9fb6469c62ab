package sync_hotel

import "errors"

var (
	// ErrInvalidID возвращается при некорректных идентификаторах
	ErrInvalidID = errors.New("sync_hotel: invalid id")

	// ErrHotelNotFound возвращается, если отель не найден
	ErrHotelNotFound = errors.New("sync_hotel: hotel not found")

	// ErrAccessDenied возвращается при попытке синхронизации чужого отеля
	ErrAccessDenied = errors.New("sync_hotel: access denied")

	// ErrMissingRequiredField возвращается при очистке обязательного поля отеля
	ErrMissingRequiredField = errors.New("sync_hotel: name, city and country cannot be empty")

	// ErrInvalidRating возвращается при рейтинге вне диапазона 0..5
	ErrInvalidRating = errors.New("sync_hotel: rating must be between 0 and 5")

	// ErrInvalidRoomType возвращается при некорректных данных room type
	ErrInvalidRoomType = errors.New("sync_hotel: invalid room type")

	// ErrInvalidRoomTypeID возвращается, когда room type с переданным id
	// не принадлежит этому отелю
	ErrInvalidRoomTypeID = errors.New("sync_hotel: room type does not belong to hotel")

	// ErrNoRoomTypesRemaining возвращается, когда целевое состояние
	// оставляет отель без единого room type
	ErrNoRoomTypesRemaining = errors.New("sync_hotel: hotel must keep at least one room type")

	// ErrDuplicate возвращается при конфликте уникальности названий room types
	ErrDuplicate = errors.New("sync_hotel: duplicate room type title")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("sync_hotel: internal error")
)
