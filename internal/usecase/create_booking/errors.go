package create_booking

import "errors"

var (
	// ErrInvalidID возвращается при некорректном идентификаторе
	ErrInvalidID = errors.New("create_booking: invalid identifier")

	// ErrInvalidDateRange возвращается, когда check-out не позже check-in
	ErrInvalidDateRange = errors.New("create_booking: check-out must be after check-in")

	// ErrInvalidGuestCount возвращается при некорректном количестве гостей или номеров
	ErrInvalidGuestCount = errors.New("create_booking: invalid guest or room count")

	// ErrInsufficientRoomsForGuests возвращается, когда запрошено меньше номеров,
	// чем требуется для размещения всех гостей
	ErrInsufficientRoomsForGuests = errors.New("create_booking: not enough rooms requested for guest count")

	// ErrInsufficientInventory возвращается, когда запрошено больше номеров,
	// чем заявлено у room type
	ErrInsufficientInventory = errors.New("create_booking: not enough rooms of this type")

	// ErrInvalidGuestInfo возвращается при некорректных контактных данных гостя
	ErrInvalidGuestInfo = errors.New("create_booking: guest fullName and phone are required")

	// ErrHotelNotFound возвращается, когда отель не найден
	ErrHotelNotFound = errors.New("create_booking: hotel not found")

	// ErrRoomTypeNotFound возвращается, когда room type не найден в этом отеле
	ErrRoomTypeNotFound = errors.New("create_booking: room type not found for this hotel")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
