package decide_booking

import "errors"

var (
	// ErrInvalidID возвращается при некорректном идентификаторе бронирования
	ErrInvalidID = errors.New("decide_booking: invalid booking id")

	// ErrInvalidDecision возвращается, когда решение не approved и не rejected
	ErrInvalidDecision = errors.New("decide_booking: decision must be approved or rejected")

	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("decide_booking: booking not found")

	// ErrHotelNotFound возвращается, когда отель бронирования не найден
	// Защита целостности данных: при нормальной работе не возникает,
	// удаление отелей не моделируется
	ErrHotelNotFound = errors.New("decide_booking: hotel not found")

	// ErrAccessDenied возвращается, когда пользователь не владелец отеля
	ErrAccessDenied = errors.New("decide_booking: access denied")

	// ErrInvalidBookingState возвращается, когда бронирование уже не pending
	// Решение принимается ровно один раз и никогда не перезаписывается
	ErrInvalidBookingState = errors.New("decide_booking: only pending bookings can be decided")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("decide_booking: internal error")
)
