package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	createBookingHandler "github.com/staymarket/booking-service/internal/api/handlers/create_booking"
	createHotelHandler "github.com/staymarket/booking-service/internal/api/handlers/create_hotel"
	decideBookingHandler "github.com/staymarket/booking-service/internal/api/handlers/decide_booking"
	getBookingHandler "github.com/staymarket/booking-service/internal/api/handlers/get_booking"
	getGuestBookingsHandler "github.com/staymarket/booking-service/internal/api/handlers/get_guest_bookings"
	getHotelHandler "github.com/staymarket/booking-service/internal/api/handlers/get_hotel"
	getOwnerBookingsHandler "github.com/staymarket/booking-service/internal/api/handlers/get_owner_bookings"
	getOwnerHotelsHandler "github.com/staymarket/booking-service/internal/api/handlers/get_owner_hotels"
	listHotelsHandler "github.com/staymarket/booking-service/internal/api/handlers/list_hotels"
	syncHotelHandler "github.com/staymarket/booking-service/internal/api/handlers/sync_hotel"
	"github.com/staymarket/booking-service/internal/api/middleware"
	"github.com/staymarket/booking-service/internal/config"
	bookingRepo "github.com/staymarket/booking-service/internal/infra/storage/booking"
	hotelRepo "github.com/staymarket/booking-service/internal/infra/storage/hotel"
	roomTypeRepo "github.com/staymarket/booking-service/internal/infra/storage/roomtype"
	"github.com/staymarket/booking-service/internal/integrations/events"
	bookingsService "github.com/staymarket/booking-service/internal/service/bookings"
	hotelsService "github.com/staymarket/booking-service/internal/service/hotels"
	createBookingUC "github.com/staymarket/booking-service/internal/usecase/create_booking"
	createHotelUC "github.com/staymarket/booking-service/internal/usecase/create_hotel"
	decideBookingUC "github.com/staymarket/booking-service/internal/usecase/decide_booking"
	syncHotelUC "github.com/staymarket/booking-service/internal/usecase/sync_hotel"
	"github.com/staymarket/booking-service/pkg/dbmetrics"
	"github.com/staymarket/booking-service/pkg/logger"
	"github.com/staymarket/booking-service/pkg/metrics"
	"github.com/staymarket/booking-service/pkg/simpletxmanager"
	"github.com/staymarket/booking-service/pkg/txmanager"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting booking-service...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Подключаемся к брокеру событий (если включен)
	var eventsPublisher *events.Publisher
	if cfg.Events.Enabled {
		eventsPublisher, err = events.NewPublisher(cfg.Events.URL)
		if err != nil {
			log.Fatal("Failed to connect to event broker: %v", err)
		}
		defer eventsPublisher.Close()
		log.Info("Event publisher connected to %s", cfg.Events.URL)
	} else {
		log.Info("Event publishing disabled")
	}

	// Инициализируем репозитории (с метриками или без)
	var (
		hotelRepository    *hotelRepo.Repository
		roomTypeRepository *roomTypeRepo.Repository
		bookingRepository  *bookingRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		hotelRepository = hotelRepo.NewRepository(wrappedDB)
		roomTypeRepository = roomTypeRepo.NewRepository(wrappedDB)
		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		hotelRepository = hotelRepo.NewRepository(db)
		roomTypeRepository = roomTypeRepo.NewRepository(db)
		bookingRepository = bookingRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы чтения
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		hotelRepository,
		log,
	)
	hotelSvc := hotelsService.NewService(
		hotelRepository,
		roomTypeRepository,
		bookingRepository,
		log,
	)

	// Публикация событий опциональна: typed-nil в интерфейс не передаем
	var createBookingEvents createBookingUC.EventPublisher
	var decideBookingEvents decideBookingUC.EventPublisher
	if eventsPublisher != nil {
		createBookingEvents = eventsPublisher
		decideBookingEvents = eventsPublisher
	}

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		hotelRepository,
		roomTypeRepository,
		bookingRepository,
		createBookingEvents,
		log,
	)
	decideBookingUseCase := decideBookingUC.NewUseCase(
		bookingRepository,
		hotelRepository,
		decideBookingEvents,
		log,
	)
	createHotelUseCase := createHotelUC.NewUseCase(
		hotelRepository,
		roomTypeRepository,
		txMgr,
		log,
	)
	syncHotelUseCase := syncHotelUC.NewUseCase(
		hotelRepository,
		roomTypeRepository,
		txMgr,
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	decideBooking := decideBookingHandler.NewHandler(decideBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getGuestBookings := getGuestBookingsHandler.NewHandler(bookingSvc, log)
	getOwnerBookings := getOwnerBookingsHandler.NewHandler(bookingSvc, log)
	createHotel := createHotelHandler.NewHandler(createHotelUseCase, log)
	syncHotel := syncHotelHandler.NewHandler(syncHotelUseCase, log)
	getHotel := getHotelHandler.NewHandler(hotelSvc, log)
	listHotels := listHotelsHandler.NewHandler(hotelSvc, log)
	getOwnerHotels := getOwnerHotelsHandler.NewHandler(hotelSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Каталог отелей
	api.HandleFunc("/hotels", listHotels.Handle).Methods(http.MethodGet)

	// Карточка отеля с типами номеров
	api.HandleFunc("/hotels/{hotelId}", getHotel.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Отели (для владельцев) ---
	// Создание отеля вместе с типами номеров
	protected.HandleFunc("/hotels", createHotel.Handle).Methods(http.MethodPost)

	// Синхронизация отеля с целевым состоянием
	protected.HandleFunc("/hotels/{hotelId}", syncHotel.Handle).Methods(http.MethodPut)

	// Дашборд владельца со счетчиками
	protected.HandleFunc("/owners/hotels", getOwnerHotels.Handle).Methods(http.MethodGet)

	// --- Бронирования ---
	// Создание заявки на бронирование
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Получение заявки по ID
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Решение владельца по заявке
	protected.HandleFunc("/bookings/{bookingId}/decision", decideBooking.Handle).Methods(http.MethodPatch)

	// История бронирований гостя
	protected.HandleFunc("/guests/bookings", getGuestBookings.Handle).Methods(http.MethodGet)

	// Заявки по отелям владельца
	protected.HandleFunc("/owners/bookings", getOwnerBookings.Handle).Methods(http.MethodGet)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
