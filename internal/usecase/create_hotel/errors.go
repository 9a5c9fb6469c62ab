package create_hotel

import "errors"

var (
	// ErrInvalidID возвращается при некорректном идентификаторе владельца
	ErrInvalidID = errors.New("create_hotel: invalid owner id")

	// ErrMissingRequiredField возвращается, когда не заполнено обязательное поле отеля
	ErrMissingRequiredField = errors.New("create_hotel: name, city and country are required")

	// ErrNoRoomTypesProvided возвращается при пустом списке room types —
	// отель никогда не создается без хотя бы одного типа номеров
	ErrNoRoomTypesProvided = errors.New("create_hotel: at least one room type is required")

	// ErrInvalidRoomType возвращается при некорректных данных room type
	ErrInvalidRoomType = errors.New("create_hotel: invalid room type")

	// ErrInvalidRating возвращается при рейтинге вне диапазона 0..5
	ErrInvalidRating = errors.New("create_hotel: rating must be between 0 and 5")

	// ErrDuplicate возвращается при конфликте уникальности
	// (отель с таким названием у владельца уже есть)
	ErrDuplicate = errors.New("create_hotel: duplicate hotel or room type")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_hotel: internal error")
)
