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

	cancelAppointmentHandler "github.com/rmarins/MEI-AgendaService/internal/api/handlers/cancel_appointment"
	cancelInvoiceHandler "github.com/rmarins/MEI-AgendaService/internal/api/handlers/cancel_invoice"
	chargeInvoiceHandler "github.com/rmarins/MEI-AgendaService/internal/api/handlers/charge_invoice"
	completeAppointmentHandler "github.com/rmarins/MEI-AgendaService/internal/api/handlers/complete_appointment"
	createAppointmentHandler "github.com/rmarins/MEI-AgendaService/internal/api/handlers/create_appointment"
	createCashFlowEntryHandler "github.com/rmarins/MEI-AgendaService/internal/api/handlers/create_cashflow_entry"
	createClientHandler "github.com/rmarins/MEI-AgendaService/internal/api/handlers/create_client"
	createInvoiceHandler "github.com/rmarins/MEI-AgendaService/internal/api/handlers/create_invoice"
	deleteClientHandler "github.com/rmarins/MEI-AgendaService/internal/api/handlers/delete_client"
	getAgendaHandler "github.com/rmarins/MEI-AgendaService/internal/api/handlers/get_agenda"
	getAppointmentHandler "github.com/rmarins/MEI-AgendaService/internal/api/handlers/get_appointment"
	getAvailableSlotsHandler "github.com/rmarins/MEI-AgendaService/internal/api/handlers/get_available_slots"
	getBookingLinkHandler "github.com/rmarins/MEI-AgendaService/internal/api/handlers/get_booking_link"
	getCashFlowSummaryHandler "github.com/rmarins/MEI-AgendaService/internal/api/handlers/get_cashflow_summary"
	getClientHandler "github.com/rmarins/MEI-AgendaService/internal/api/handlers/get_client"
	getInvoiceHandler "github.com/rmarins/MEI-AgendaService/internal/api/handlers/get_invoice"
	getProfileHandler "github.com/rmarins/MEI-AgendaService/internal/api/handlers/get_profile"
	getScheduleHandler "github.com/rmarins/MEI-AgendaService/internal/api/handlers/get_schedule"
	listAppointmentsHandler "github.com/rmarins/MEI-AgendaService/internal/api/handlers/list_appointments"
	listCashFlowEntriesHandler "github.com/rmarins/MEI-AgendaService/internal/api/handlers/list_cashflow_entries"
	listClientsHandler "github.com/rmarins/MEI-AgendaService/internal/api/handlers/list_clients"
	listInvoicesHandler "github.com/rmarins/MEI-AgendaService/internal/api/handlers/list_invoices"
	payInvoiceHandler "github.com/rmarins/MEI-AgendaService/internal/api/handlers/pay_invoice"
	resolveBookingLinkHandler "github.com/rmarins/MEI-AgendaService/internal/api/handlers/resolve_booking_link"
	suggestSlotsHandler "github.com/rmarins/MEI-AgendaService/internal/api/handlers/suggest_slots"
	updateClientHandler "github.com/rmarins/MEI-AgendaService/internal/api/handlers/update_client"
	updateProfileHandler "github.com/rmarins/MEI-AgendaService/internal/api/handlers/update_profile"
	updateScheduleHandler "github.com/rmarins/MEI-AgendaService/internal/api/handlers/update_schedule"
	"github.com/rmarins/MEI-AgendaService/internal/api/middleware"
	"github.com/rmarins/MEI-AgendaService/internal/config"
	"github.com/rmarins/MEI-AgendaService/internal/domain"
	"github.com/rmarins/MEI-AgendaService/internal/infra/cache"
	"github.com/rmarins/MEI-AgendaService/internal/infra/events"
	"github.com/rmarins/MEI-AgendaService/internal/infra/migrate"
	appointmentRepo "github.com/rmarins/MEI-AgendaService/internal/infra/storage/appointment"
	cashflowRepo "github.com/rmarins/MEI-AgendaService/internal/infra/storage/cashflow"
	clientRepo "github.com/rmarins/MEI-AgendaService/internal/infra/storage/client"
	invoiceRepo "github.com/rmarins/MEI-AgendaService/internal/infra/storage/invoice"
	settingsRepo "github.com/rmarins/MEI-AgendaService/internal/infra/storage/settings"
	appointmentsService "github.com/rmarins/MEI-AgendaService/internal/service/appointments"
	bookinglinkService "github.com/rmarins/MEI-AgendaService/internal/service/bookinglink"
	cashflowService "github.com/rmarins/MEI-AgendaService/internal/service/cashflow"
	clientsService "github.com/rmarins/MEI-AgendaService/internal/service/clients"
	invoicesService "github.com/rmarins/MEI-AgendaService/internal/service/invoices"
	settingsService "github.com/rmarins/MEI-AgendaService/internal/service/settings"
	createAppointmentUC "github.com/rmarins/MEI-AgendaService/internal/usecase/create_appointment"
	getAvailableSlotsUC "github.com/rmarins/MEI-AgendaService/internal/usecase/get_available_slots"
	suggestSlotsUC "github.com/rmarins/MEI-AgendaService/internal/usecase/suggest_slots"
	"github.com/rmarins/MEI-AgendaService/pkg/dbmetrics"
	"github.com/rmarins/MEI-AgendaService/pkg/logger"
	"github.com/rmarins/MEI-AgendaService/pkg/metrics"
	"github.com/rmarins/MEI-AgendaService/pkg/simpletxmanager"
	"github.com/rmarins/MEI-AgendaService/pkg/txmanager"
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

	log.Info("Starting MEI-AgendaService...")
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

	if err := migrate.Run(db, cfg.Migrations.Dir); err != nil {
		log.Fatal("Failed to apply migrations: %v", err)
	}
	log.Info("Migrations applied from %s", cfg.Migrations.Dir)

	// Day-slot cache: a noop stand-in keeps the wiring identical when disabled.
	type SlotCache interface {
		Get(date time.Time) ([]domain.AvailableSlot, bool)
		Store(date time.Time, slots []domain.AvailableSlot)
		Invalidate(date time.Time)
		Purge()
	}
	var slotCache SlotCache
	if cfg.Cache.Enabled {
		slotCache, err = cache.NewSlotCache(cfg.Cache.Size)
		if err != nil {
			log.Fatal("Failed to initialize slot cache: %v", err)
		}
		log.Info("Slot cache enabled (size=%d)", cfg.Cache.Size)
	} else {
		slotCache = cache.NewNoopSlotCache()
	}

	// Event publisher: appointment lifecycle events over RabbitMQ.
	type EventPublisher interface {
		AppointmentCreated(ctx context.Context, appointment *domain.Appointment) error
		AppointmentCancelled(ctx context.Context, appointment *domain.Appointment) error
		Close() error
	}
	var eventPublisher EventPublisher
	if cfg.Events.Enabled {
		publisher, err := events.NewPublisher(cfg.Events.URL, cfg.Events.Exchange)
		if err != nil {
			log.Fatal("Failed to connect to event broker: %v", err)
		}
		eventPublisher = publisher
		log.Info("Event publisher connected (exchange=%s)", cfg.Events.Exchange)
	} else {
		eventPublisher = events.NewNoopPublisher()
	}
	defer eventPublisher.Close()

	var (
		appointmentRepository *appointmentRepo.Repository
		clientRepository      *clientRepo.Repository
		invoiceRepository     *invoiceRepo.Repository
		cashFlowRepository    *cashflowRepo.Repository
		settingsRepository    *settingsRepo.Repository
	)

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		appointmentRepository = appointmentRepo.NewRepository(wrappedDB)
		clientRepository = clientRepo.NewRepository(wrappedDB)
		invoiceRepository = invoiceRepo.NewRepository(wrappedDB)
		cashFlowRepository = cashflowRepo.NewRepository(wrappedDB)
		settingsRepository = settingsRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		appointmentRepository = appointmentRepo.NewRepository(db)
		clientRepository = clientRepo.NewRepository(db)
		invoiceRepository = invoiceRepo.NewRepository(db)
		cashFlowRepository = cashflowRepo.NewRepository(db)
		settingsRepository = settingsRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	appointmentsSvc := appointmentsService.NewService(
		appointmentRepository,
		slotCache,
		eventPublisher,
		log,
	)
	clientsSvc := clientsService.NewService(clientRepository, log)
	invoicesSvc := invoicesService.NewService(
		invoiceRepository,
		clientRepository,
		settingsRepository,
		cashFlowRepository,
		txMgr,
		log,
	)
	cashflowSvc := cashflowService.NewService(cashFlowRepository, log)
	settingsSvc := settingsService.NewService(settingsRepository, slotCache, log)
	bookingLinkSvc := bookinglinkService.NewService(settingsRepository, log)

	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		appointmentRepository,
		clientRepository,
		settingsRepository,
		txMgr,
		slotCache,
		eventPublisher,
		log,
	)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		appointmentRepository,
		settingsRepository,
		slotCache,
		log,
	)
	suggestSlotsUseCase := suggestSlotsUC.NewUseCase(
		appointmentRepository,
		settingsRepository,
		log,
	)

	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	suggestSlots := suggestSlotsHandler.NewHandler(suggestSlotsUseCase, log)
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentsSvc, log)
	listAppointments := listAppointmentsHandler.NewHandler(appointmentsSvc, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(appointmentsSvc, log)
	completeAppointment := completeAppointmentHandler.NewHandler(appointmentsSvc, log)
	getAgenda := getAgendaHandler.NewHandler(appointmentsSvc, log)
	createClient := createClientHandler.NewHandler(clientsSvc, log)
	getClient := getClientHandler.NewHandler(clientsSvc, log)
	listClients := listClientsHandler.NewHandler(clientsSvc, log)
	updateClient := updateClientHandler.NewHandler(clientsSvc, log)
	deleteClient := deleteClientHandler.NewHandler(clientsSvc, log)
	createInvoice := createInvoiceHandler.NewHandler(invoicesSvc, log)
	getInvoice := getInvoiceHandler.NewHandler(invoicesSvc, log)
	listInvoices := listInvoicesHandler.NewHandler(invoicesSvc, log)
	chargeInvoice := chargeInvoiceHandler.NewHandler(invoicesSvc, log)
	payInvoice := payInvoiceHandler.NewHandler(invoicesSvc, log)
	cancelInvoice := cancelInvoiceHandler.NewHandler(invoicesSvc, log)
	createCashFlowEntry := createCashFlowEntryHandler.NewHandler(cashflowSvc, log)
	listCashFlowEntries := listCashFlowEntriesHandler.NewHandler(cashflowSvc, log)
	getCashFlowSummary := getCashFlowSummaryHandler.NewHandler(cashflowSvc, log)
	getSchedule := getScheduleHandler.NewHandler(settingsSvc, log)
	updateSchedule := updateScheduleHandler.NewHandler(settingsSvc, log)
	getProfile := getProfileHandler.NewHandler(settingsSvc, log)
	updateProfile := updateProfileHandler.NewHandler(settingsSvc, log)
	getBookingLink := getBookingLinkHandler.NewHandler(bookingLinkSvc, log)
	resolveBookingLink := resolveBookingLinkHandler.NewHandler(bookingLinkSvc, log)

	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// The public booking page resolves share tokens without authentication.
	r.HandleFunc("/public/booking/{token}", resolveBookingLink.Handle).Methods(http.MethodGet)

	api := r.PathPrefix("/api/v1").Subrouter()

	// Slot availability is consumed by the public booking page.
	api.HandleFunc("/slots/available", getAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/slots/suggested", suggestSlots.Handle).Methods(http.MethodGet)

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// Agenda
	protected.HandleFunc("/agenda", getAgenda.Handle).Methods(http.MethodGet)

	// Appointments
	protected.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/appointments", listAppointments.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{appointmentId}", getAppointment.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{appointmentId}/cancel", cancelAppointment.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/appointments/{appointmentId}/complete", completeAppointment.Handle).Methods(http.MethodPatch)

	// Clients
	protected.HandleFunc("/clients", createClient.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/clients", listClients.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/clients/{clientId}", getClient.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/clients/{clientId}", updateClient.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/clients/{clientId}", deleteClient.Handle).Methods(http.MethodDelete)

	// Invoices
	protected.HandleFunc("/invoices", createInvoice.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/invoices", listInvoices.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/invoices/{invoiceId}", getInvoice.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/invoices/{invoiceId}/charge", chargeInvoice.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/invoices/{invoiceId}/pay", payInvoice.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/invoices/{invoiceId}/cancel", cancelInvoice.Handle).Methods(http.MethodPatch)

	// Cash flow
	protected.HandleFunc("/cashflow/entries", createCashFlowEntry.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/cashflow/entries", listCashFlowEntries.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/cashflow/summary", getCashFlowSummary.Handle).Methods(http.MethodGet)

	// Settings
	protected.HandleFunc("/settings/schedule", getSchedule.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/settings/schedule", updateSchedule.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/settings/profile", getProfile.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/settings/profile", updateProfile.Handle).Methods(http.MethodPut)

	// Booking link
	protected.HandleFunc("/booking-link", getBookingLink.Handle).Methods(http.MethodGet)

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
