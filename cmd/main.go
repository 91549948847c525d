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

	cancelBookingHandler "github.com/geargik/GearGik-BookingService/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/geargik/GearGik-BookingService/internal/api/handlers/create_booking"
	createVehicleHandler "github.com/geargik/GearGik-BookingService/internal/api/handlers/create_vehicle"
	deleteVehicleHandler "github.com/geargik/GearGik-BookingService/internal/api/handlers/delete_vehicle"
	getBookingHandler "github.com/geargik/GearGik-BookingService/internal/api/handlers/get_booking"
	getOwnerBookingsHandler "github.com/geargik/GearGik-BookingService/internal/api/handlers/get_owner_bookings"
	getOwnerVehiclesHandler "github.com/geargik/GearGik-BookingService/internal/api/handlers/get_owner_vehicles"
	getUserBookingsHandler "github.com/geargik/GearGik-BookingService/internal/api/handlers/get_user_bookings"
	getVehicleHandler "github.com/geargik/GearGik-BookingService/internal/api/handlers/get_vehicle"
	listVehiclesHandler "github.com/geargik/GearGik-BookingService/internal/api/handlers/list_vehicles"
	quoteBookingHandler "github.com/geargik/GearGik-BookingService/internal/api/handlers/quote_booking"
	setAvailabilityHandler "github.com/geargik/GearGik-BookingService/internal/api/handlers/set_availability"
	updateBookingStatusHandler "github.com/geargik/GearGik-BookingService/internal/api/handlers/update_booking_status"
	updateVehicleHandler "github.com/geargik/GearGik-BookingService/internal/api/handlers/update_vehicle"
	"github.com/geargik/GearGik-BookingService/internal/api/middleware"
	"github.com/geargik/GearGik-BookingService/internal/config"
	bookingRepo "github.com/geargik/GearGik-BookingService/internal/infra/storage/booking"
	listingRepo "github.com/geargik/GearGik-BookingService/internal/infra/storage/listing"
	identityServiceClient "github.com/geargik/GearGik-BookingService/internal/integrations/identityservice"
	bookingsService "github.com/geargik/GearGik-BookingService/internal/service/bookings"
	listingsService "github.com/geargik/GearGik-BookingService/internal/service/listings"
	createBookingUC "github.com/geargik/GearGik-BookingService/internal/usecase/create_booking"
	listCatalogUC "github.com/geargik/GearGik-BookingService/internal/usecase/list_catalog"
	quoteBookingUC "github.com/geargik/GearGik-BookingService/internal/usecase/quote_booking"
	"github.com/geargik/GearGik-BookingService/pkg/dbmetrics"
	"github.com/geargik/GearGik-BookingService/pkg/logger"
	"github.com/geargik/GearGik-BookingService/pkg/metrics"
	"github.com/geargik/GearGik-BookingService/pkg/simpletxmanager"
	"github.com/geargik/GearGik-BookingService/pkg/txmanager"
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

	log.Info("Starting GearGik-BookingService...")
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

	// Инициализируем клиент IdentityService
	identityClient := identityServiceClient.NewClient(
		cfg.IdentityService.URL,
		time.Duration(cfg.IdentityService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration client initialized (IdentityService=%s timeout=%ds)",
		cfg.IdentityService.URL, cfg.IdentityService.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		listingRepository *listingRepo.Repository
		bookingRepository *bookingRepo.Repository
	)

	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
		DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		listingRepository = listingRepo.NewRepository(wrappedDB)
		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		listingRepository = listingRepo.NewRepository(db)
		bookingRepository = bookingRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	listingSvc := listingsService.NewService(
		listingRepository,
		bookingRepository,
		log,
	)
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		listingRepository,
		txMgr,
		log,
	)

	// Инициализируем use cases
	listCatalogUseCase := listCatalogUC.NewUseCase(listingRepository, log)
	quoteBookingUseCase := quoteBookingUC.NewUseCase(listingRepository, log)
	createBookingUseCase := createBookingUC.NewUseCase(
		listingRepository,
		bookingRepository,
		identityClient,
		txMgr,
		log,
	)

	// Инициализируем handlers
	listVehicles := listVehiclesHandler.NewHandler(listCatalogUseCase, log)
	getVehicle := getVehicleHandler.NewHandler(listingSvc, log)
	quoteBooking := quoteBookingHandler.NewHandler(quoteBookingUseCase, log)
	createVehicle := createVehicleHandler.NewHandler(listingSvc, log)
	updateVehicle := updateVehicleHandler.NewHandler(listingSvc, log)
	deleteVehicle := deleteVehicleHandler.NewHandler(listingSvc, log)
	setAvailability := setAvailabilityHandler.NewHandler(listingSvc, log)
	getOwnerVehicles := getOwnerVehiclesHandler.NewHandler(listingSvc, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	getOwnerBookings := getOwnerBookingsHandler.NewHandler(bookingSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Каталог транспорта с фильтрацией и сортировкой по цене
	api.HandleFunc("/vehicles", listVehicles.Handle).Methods(http.MethodGet)

	// Карточка транспорта
	api.HandleFunc("/vehicles/{vehicleId}", getVehicle.Handle).Methods(http.MethodGet)

	// Расчет стоимости бронирования
	api.HandleFunc("/vehicles/{vehicleId}/quote", quoteBooking.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Листинги ---
	// Создание листинга
	protected.HandleFunc("/vehicles", createVehicle.Handle).Methods(http.MethodPost)

	// Обновление листинга владельцем
	protected.HandleFunc("/vehicles/{vehicleId}", updateVehicle.Handle).Methods(http.MethodPut)

	// Удаление листинга владельцем
	protected.HandleFunc("/vehicles/{vehicleId}", deleteVehicle.Handle).Methods(http.MethodDelete)

	// Переключение доступности full rental листинга
	protected.HandleFunc("/vehicles/{vehicleId}/availability", setAvailability.Handle).Methods(http.MethodPatch)

	// Гараж владельца (включая недоступные листинги)
	protected.HandleFunc("/owners/{ownerId}/vehicles", getOwnerVehicles.Handle).Methods(http.MethodGet)

	// --- Бронирования ---
	// Создание бронирования
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Получение бронирования по ID
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Отмена бронирования арендатором или владельцем
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// Смена статуса бронирования владельцем
	protected.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)

	// История бронирований арендатора
	protected.HandleFunc("/users/{userId}/bookings", getUserBookings.Handle).Methods(http.MethodGet)

	// Бронирования на листинги владельца
	protected.HandleFunc("/owners/{ownerId}/bookings", getOwnerBookings.Handle).Methods(http.MethodGet)

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
