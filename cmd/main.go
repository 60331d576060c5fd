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

	_ "github.com/lib/pq"

	"github.com/m04kA/VetEstetica-BookingService/internal/api"
	adminLoginHandler "github.com/m04kA/VetEstetica-BookingService/internal/api/handlers/admin_login"
	adminLogoutHandler "github.com/m04kA/VetEstetica-BookingService/internal/api/handlers/admin_logout"
	cancelReservationHandler "github.com/m04kA/VetEstetica-BookingService/internal/api/handlers/cancel_reservation"
	checkAvailabilityHandler "github.com/m04kA/VetEstetica-BookingService/internal/api/handlers/check_availability"
	clearReservationsHandler "github.com/m04kA/VetEstetica-BookingService/internal/api/handlers/clear_reservations"
	createReservationHandler "github.com/m04kA/VetEstetica-BookingService/internal/api/handlers/create_reservation"
	getAdminSessionHandler "github.com/m04kA/VetEstetica-BookingService/internal/api/handlers/get_admin_session"
	getAvailableSlotsHandler "github.com/m04kA/VetEstetica-BookingService/internal/api/handlers/get_available_slots"
	getCatalogHandler "github.com/m04kA/VetEstetica-BookingService/internal/api/handlers/get_catalog"
	getReservationHandler "github.com/m04kA/VetEstetica-BookingService/internal/api/handlers/get_reservation"
	getReservationCountsHandler "github.com/m04kA/VetEstetica-BookingService/internal/api/handlers/get_reservation_counts"
	listReservationsHandler "github.com/m04kA/VetEstetica-BookingService/internal/api/handlers/list_reservations"
	seedReservationsHandler "github.com/m04kA/VetEstetica-BookingService/internal/api/handlers/seed_reservations"
	"github.com/m04kA/VetEstetica-BookingService/internal/config"
	"github.com/m04kA/VetEstetica-BookingService/internal/infra/storage/kv"
	reservationRepo "github.com/m04kA/VetEstetica-BookingService/internal/infra/storage/reservation"
	sessionRepo "github.com/m04kA/VetEstetica-BookingService/internal/infra/storage/session"
	adminService "github.com/m04kA/VetEstetica-BookingService/internal/service/admin"
	reservationsService "github.com/m04kA/VetEstetica-BookingService/internal/service/reservations"
	seedService "github.com/m04kA/VetEstetica-BookingService/internal/service/seed"
	checkAvailabilityUC "github.com/m04kA/VetEstetica-BookingService/internal/usecase/check_availability"
	createBookingUC "github.com/m04kA/VetEstetica-BookingService/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/m04kA/VetEstetica-BookingService/internal/usecase/get_available_slots"
	"github.com/m04kA/VetEstetica-BookingService/pkg/logger"
	"github.com/m04kA/VetEstetica-BookingService/pkg/metrics"
	"github.com/m04kA/VetEstetica-BookingService/pkg/simpletxmanager"
)

const startupTimeout = 10 * time.Second

func main() {
	configPath := "config.toml"
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		configPath = p
	}

	// Загружаем конфигурацию
	cfg, err := config.Load(configPath)
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

	log.Info("Starting VetEstetica-BookingService...")
	log.Info("Configuration loaded from %s", configPath)

	// Метрики собираются всегда, наружу публикуются только если включены
	metricsCollector := metrics.New(cfg.Metrics.ServiceName)
	if cfg.Metrics.Enabled {
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Каталог и расписание
	catalog, err := cfg.BuildCatalog()
	if err != nil {
		log.Fatal("Invalid catalog: %v", err)
	}
	schedule, err := cfg.BuildSchedule()
	if err != nil {
		log.Fatal("Invalid schedule: %v", err)
	}
	log.Info("Catalog loaded (services=%d, professionals=%d), hours: %s",
		len(catalog.Services()), len(catalog.Professionals()), schedule.Summary())

	// Подключаемся к хранилищу
	startupCtx, cancelStartup := context.WithTimeout(context.Background(), startupTimeout)
	store, closeStore, err := openStore(startupCtx, cfg.Storage, log)
	cancelStartup()
	if err != nil {
		log.Fatal("Failed to open %s storage: %v", cfg.Storage.Backend, err)
	}
	defer closeStore()

	if cfg.Metrics.Enabled {
		store = kv.NewInstrumentedStore(store, cfg.Storage.Backend, metricsCollector)
		log.Info("Storage metrics collection started")
	}

	// Инициализируем репозитории
	reservationRepository := reservationRepo.NewRepository(store, reservationRepo.Keys{
		Reservations: cfg.Storage.Keys.Reservations,
		Seeded:       cfg.Storage.Keys.Seeded,
	}, log)
	sessionRepository := sessionRepo.NewRepository(store, cfg.Storage.Keys.AdminSession)

	txMgr := simpletxmanager.NewTransactionManager()

	// Инициализируем сервисы
	adminSvc := adminService.NewService(
		sessionRepository,
		adminService.Credentials{Username: cfg.Admin.Username, Password: cfg.Admin.Password},
		log,
	)
	reservationsSvc := reservationsService.NewService(
		reservationRepository,
		txMgr,
		metricsCollector,
		log,
	)
	seedSvc := seedService.NewService(
		reservationRepository,
		catalog,
		txMgr,
		log,
	)

	// Примеры при первом запуске
	if cfg.Seed.Enabled {
		seeded, err := seedSvc.EnsureSeedData(context.Background(), false)
		if err != nil {
			log.Error("Failed to seed example reservations: %v", err)
		} else if seeded {
			log.Info("Example reservations loaded")
		}
	}

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		reservationRepository,
		catalog,
		schedule,
		cfg.Booking.PetTypes,
		txMgr,
		metricsCollector,
		log,
	)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		reservationRepository,
		catalog,
		schedule,
		log,
	)
	checkAvailabilityUseCase := checkAvailabilityUC.NewUseCase(
		reservationRepository,
		catalog,
		log,
	)

	// Инициализируем handlers и роутер
	opts := api.Options{
		SessionChecker: adminSvc,
		Logger:         log,
		EnableCORS:     cfg.Server.EnableCORS,
	}
	if cfg.Metrics.Enabled {
		opts.Metrics = metricsCollector
		opts.MetricsPath = cfg.Metrics.Path
		opts.MetricsHandler = metricsCollector.Handler()
	}

	r := api.NewRouter(api.Handlers{
		GetCatalog:           getCatalogHandler.NewHandler(catalog, cfg.Booking.PetTypes, schedule.Summary(), log),
		GetAvailableSlots:    getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log),
		CheckAvailability:    checkAvailabilityHandler.NewHandler(checkAvailabilityUseCase, log),
		CreateReservation:    createReservationHandler.NewHandler(createBookingUseCase, schedule.Summary(), log),
		AdminLogin:           adminLoginHandler.NewHandler(adminSvc, log),
		AdminLogout:          adminLogoutHandler.NewHandler(adminSvc, log),
		GetAdminSession:      getAdminSessionHandler.NewHandler(adminSvc, log),
		ListReservations:     listReservationsHandler.NewHandler(reservationsSvc, log),
		GetReservationCounts: getReservationCountsHandler.NewHandler(reservationsSvc),
		GetReservation:       getReservationHandler.NewHandler(reservationsSvc, log),
		CancelReservation:    cancelReservationHandler.NewHandler(reservationsSvc, log),
		ClearReservations:    clearReservationsHandler.NewHandler(reservationsSvc, log),
		SeedReservations:     seedReservationsHandler.NewHandler(seedSvc, log),
	}, opts)

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

// openStore создает key-value хранилище по storage.backend
func openStore(ctx context.Context, cfg config.StorageConfig, log *logger.Logger) (kv.Store, func(), error) {
	switch cfg.Backend {
	case kv.BackendMemory:
		log.Info("Using in-memory storage, data is lost on restart")
		return kv.NewMemoryStore(), func() {}, nil

	case kv.BackendPostgres:
		db, err := sql.Open("postgres", cfg.Postgres.DSN())
		if err != nil {
			return nil, nil, err
		}

		// Настраиваем connection pool
		db.SetMaxOpenConns(cfg.Postgres.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Postgres.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(cfg.Postgres.ConnMaxLifetime) * time.Second)

		if err := db.PingContext(ctx); err != nil {
			_ = db.Close()
			return nil, nil, fmt.Errorf("ping: %w", err)
		}

		store, err := kv.NewPostgresStore(db, cfg.Postgres.Table)
		if err != nil {
			_ = db.Close()
			return nil, nil, err
		}
		if err := store.EnsureSchema(ctx); err != nil {
			_ = db.Close()
			return nil, nil, err
		}

		log.Info("Successfully connected to database (host=%s, port=%d, db=%s, table=%s)",
			cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.DBName, cfg.Postgres.Table)
		return store, func() { _ = db.Close() }, nil

	case kv.BackendRedis:
		client := kv.NewRedisClient(kv.RedisConfig{
			Address:  cfg.Redis.Address,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			PoolSize: cfg.Redis.PoolSize,
		})
		store := kv.NewRedisStore(client, cfg.Redis.KeyPrefix)
		if err := store.Ping(ctx); err != nil {
			_ = client.Close()
			return nil, nil, err
		}

		log.Info("Successfully connected to redis (address=%s, db=%d)", cfg.Redis.Address, cfg.Redis.DB)
		return store, func() { _ = client.Close() }, nil

	default:
		return nil, nil, fmt.Errorf("%w: %s", kv.ErrUnknownBackend, cfg.Backend)
	}
}
