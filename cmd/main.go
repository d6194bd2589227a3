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

	assignDoctorHandler "github.com/petmily/ClinicReservationService/internal/api/handlers/assign_doctor"
	createReservationHandler "github.com/petmily/ClinicReservationService/internal/api/handlers/create_reservation"
	getAvailableSlotsHandler "github.com/petmily/ClinicReservationService/internal/api/handlers/get_available_slots"
	getCalendarHandler "github.com/petmily/ClinicReservationService/internal/api/handlers/get_calendar"
	getDayReservationsHandler "github.com/petmily/ClinicReservationService/internal/api/handlers/get_day_reservations"
	getReservationHandler "github.com/petmily/ClinicReservationService/internal/api/handlers/get_reservation"
	getUserReservationsHandler "github.com/petmily/ClinicReservationService/internal/api/handlers/get_user_reservations"
	listDoctorsHandler "github.com/petmily/ClinicReservationService/internal/api/handlers/list_doctors"
	updateStatusHandler "github.com/petmily/ClinicReservationService/internal/api/handlers/update_status"
	"github.com/petmily/ClinicReservationService/internal/api/middleware"
	"github.com/petmily/ClinicReservationService/internal/config"
	reservationRepo "github.com/petmily/ClinicReservationService/internal/infra/storage/reservation"
	notifyServiceClient "github.com/petmily/ClinicReservationService/internal/integrations/notifyservice"
	petServiceClient "github.com/petmily/ClinicReservationService/internal/integrations/petservice"
	staffServiceClient "github.com/petmily/ClinicReservationService/internal/integrations/staffservice"
	userServiceClient "github.com/petmily/ClinicReservationService/internal/integrations/userservice"
	reservationsService "github.com/petmily/ClinicReservationService/internal/service/reservations"
	assignDoctorUC "github.com/petmily/ClinicReservationService/internal/usecase/assign_doctor"
	createReservationUC "github.com/petmily/ClinicReservationService/internal/usecase/create_reservation"
	getAvailableSlotsUC "github.com/petmily/ClinicReservationService/internal/usecase/get_available_slots"
	getCalendarUC "github.com/petmily/ClinicReservationService/internal/usecase/get_calendar"
	transitionStatusUC "github.com/petmily/ClinicReservationService/internal/usecase/transition_status"
	"github.com/petmily/ClinicReservationService/pkg/dbmetrics"
	"github.com/petmily/ClinicReservationService/pkg/logger"
	"github.com/petmily/ClinicReservationService/pkg/metrics"
	"github.com/petmily/ClinicReservationService/pkg/simpletxmanager"
	"github.com/petmily/ClinicReservationService/pkg/txmanager"
)

func main() {
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting ClinicReservationService...")
	log.Info("Configuration loaded from config.toml")

	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	userClient := userServiceClient.NewClient(
		cfg.UserService.URL,
		time.Duration(cfg.UserService.Timeout)*time.Second,
		log,
	)
	petClient := petServiceClient.NewClient(
		cfg.PetService.URL,
		time.Duration(cfg.PetService.Timeout)*time.Second,
		log,
	)
	staffClient := staffServiceClient.NewClient(
		cfg.StaffService.URL,
		time.Duration(cfg.StaffService.Timeout)*time.Second,
		log,
	)
	notifyClient := notifyServiceClient.NewClient(
		cfg.NotifyService.URL,
		time.Duration(cfg.NotifyService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (UserService=%s, PetService=%s, StaffService=%s, NotifyService=%s)",
		cfg.UserService.URL, cfg.PetService.URL, cfg.StaffService.URL, cfg.NotifyService.URL)

	// Transaction manager interface shared by the mutation use cases
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}

	var (
		repository *reservationRepo.Repository
		txMgr      TxManager
	)

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		repository = reservationRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		repository = reservationRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	reservationsSvc := reservationsService.NewService(
		repository,
		staffClient,
		log,
	)

	createReservationUseCase := createReservationUC.NewUseCase(
		repository,
		petClient,
		notifyClient,
		txMgr,
		log,
	)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(repository, log)
	assignDoctorUseCase := assignDoctorUC.NewUseCase(
		repository,
		staffClient,
		petClient,
		notifyClient,
		txMgr,
		log,
	)
	transitionStatusUseCase := transitionStatusUC.NewUseCase(
		repository,
		petClient,
		notifyClient,
		txMgr,
		log,
	)
	getCalendarUseCase := getCalendarUC.NewUseCase(repository, log)

	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	assignDoctor := assignDoctorHandler.NewHandler(assignDoctorUseCase, log)
	updateStatus := updateStatusHandler.NewHandler(transitionStatusUseCase, log)
	getCalendar := getCalendarHandler.NewHandler(getCalendarUseCase, log)
	getReservation := getReservationHandler.NewHandler(reservationsSvc, log)
	getDayReservations := getDayReservationsHandler.NewHandler(reservationsSvc, log)
	getUserReservations := getUserReservationsHandler.NewHandler(reservationsSvc, log)
	listDoctors := listDoctorsHandler.NewHandler(reservationsSvc, log)

	identity := middleware.NewIdentity(userClient, log)

	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// Public: slot availability needs no identity
	api.HandleFunc("/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Protected: everything else requires X-User-ID
	protected := api.PathPrefix("").Subrouter()
	protected.Use(identity.Middleware)

	protected.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/reservations/{reservationId}", getReservation.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/reservations/{reservationId}/doctor", assignDoctor.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/reservations/{reservationId}/status", updateStatus.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/reservations/date/{date}", getDayReservations.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/reservations/user/{userId}", getUserReservations.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/calendar", getCalendar.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/doctors/on-duty", listDoctors.Handle).Methods(http.MethodGet)

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

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
