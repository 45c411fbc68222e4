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

	cancelBookingHandler "github.com/stayforge/booking-service/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/stayforge/booking-service/internal/api/handlers/create_booking"
	getBookingHandler "github.com/stayforge/booking-service/internal/api/handlers/get_booking"
	getRoomBookingsHandler "github.com/stayforge/booking-service/internal/api/handlers/get_room_bookings"
	listRoomsHandler "github.com/stayforge/booking-service/internal/api/handlers/list_rooms"
	quoteStayHandler "github.com/stayforge/booking-service/internal/api/handlers/quote_stay"
	"github.com/stayforge/booking-service/internal/api/middleware"
	"github.com/stayforge/booking-service/internal/config"
	bookingRepo "github.com/stayforge/booking-service/internal/infra/storage/booking"
	roomRepo "github.com/stayforge/booking-service/internal/infra/storage/room"
	guestClient "github.com/stayforge/booking-service/internal/integrations/guestdirectory"
	bookingsService "github.com/stayforge/booking-service/internal/service/bookings"
	createBookingUC "github.com/stayforge/booking-service/internal/usecase/create_booking"
	quoteStayUC "github.com/stayforge/booking-service/internal/usecase/quote_stay"
	"github.com/stayforge/booking-service/pkg/dbwrap"
	"github.com/stayforge/booking-service/pkg/logger"
	"github.com/stayforge/booking-service/pkg/metrics"
	"github.com/stayforge/booking-service/pkg/txmanager"
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

	log.Info("Starting booking-service...")
	log.Info("Configuration loaded from config.toml")

	var metricsCollector *metrics.Metrics
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

	guestDirectory := guestClient.NewClient(
		cfg.GuestService.URL,
		time.Duration(cfg.GuestService.Timeout)*time.Second,
		log,
	)
	log.Info("Guest directory client initialized (url=%s, timeout=%ds)",
		cfg.GuestService.URL, cfg.GuestService.Timeout)

	// Repositories resolve their executor from the context, so a wrapped DB
	// here makes every query (transactional or not) report timings.
	var (
		executor dbwrap.DBExecutor
		beginner dbwrap.TxBeginner
	)
	if cfg.Metrics.Enabled {
		wrappedDB := dbwrap.Wrap(db, metricsCollector)
		executor = wrappedDB
		beginner = wrappedDB
		log.Info("Database metrics collection enabled")
	} else {
		executor = db
		beginner = dbwrap.SQLBeginner{DB: db}
	}

	bookingRepository := bookingRepo.NewRepository(executor)
	roomRepository := roomRepo.NewRepository(executor)
	txMgr := txmanager.NewManager(beginner)

	bookingSvc := bookingsService.NewService(bookingRepository, log)

	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		roomRepository,
		guestDirectory,
		txMgr,
		log,
	)
	quoteStayUseCase := quoteStayUC.NewUseCase(roomRepository, log)

	var bookingMetrics createBookingHandler.Metrics
	if cfg.Metrics.Enabled {
		bookingMetrics = metricsCollector
	}

	createBooking := createBookingHandler.NewHandler(createBookingUseCase, bookingMetrics, log)
	quoteStay := quoteStayHandler.NewHandler(quoteStayUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	getRoomBookings := getRoomBookingsHandler.NewHandler(bookingSvc, log)
	listRooms := listRoomsHandler.NewHandler(roomRepository, log)

	r := mux.NewRouter()
	r.Use(middleware.RequestID(log))

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// Public routes: room catalogue and pricing quotes.
	api.HandleFunc("/rooms", listRooms.Handle).Methods(http.MethodGet)
	api.HandleFunc("/rooms/{roomNumber}/quote", quoteStay.Handle).Methods(http.MethodGet)
	api.HandleFunc("/rooms/{roomNumber}/bookings", getRoomBookings.Handle).Methods(http.MethodGet)

	// Protected routes require the X-User-ID header.
	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

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
