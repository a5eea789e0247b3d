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

	"github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	addTaskHandler "github.com/curanest/booking-gateway/internal/api/handlers/add_task"
	createDraftHandler "github.com/curanest/booking-gateway/internal/api/handlers/create_draft"
	deleteDraftHandler "github.com/curanest/booking-gateway/internal/api/handlers/delete_draft"
	getAvailableTasksHandler "github.com/curanest/booking-gateway/internal/api/handlers/get_available_tasks"
	getDraftHandler "github.com/curanest/booking-gateway/internal/api/handlers/get_draft"
	getSubmissionHandler "github.com/curanest/booking-gateway/internal/api/handlers/get_submission"
	getUserSubmissionsHandler "github.com/curanest/booking-gateway/internal/api/handlers/get_user_submissions"
	removeTaskHandler "github.com/curanest/booking-gateway/internal/api/handlers/remove_task"
	submitDraftHandler "github.com/curanest/booking-gateway/internal/api/handlers/submit_draft"
	updateOccurrenceHandler "github.com/curanest/booking-gateway/internal/api/handlers/update_occurrence"
	updateTaskHandler "github.com/curanest/booking-gateway/internal/api/handlers/update_task"
	"github.com/curanest/booking-gateway/internal/api/middleware"
	"github.com/curanest/booking-gateway/internal/config"
	"github.com/curanest/booking-gateway/internal/infra/catalog"
	"github.com/curanest/booking-gateway/internal/infra/draftstore"
	"github.com/curanest/booking-gateway/internal/infra/locking"
	submissionRepo "github.com/curanest/booking-gateway/internal/infra/storage/submission"
	"github.com/curanest/booking-gateway/internal/integrations/curanest"
	"github.com/curanest/booking-gateway/internal/scheduler"
	draftsService "github.com/curanest/booking-gateway/internal/service/drafts"
	submissionsService "github.com/curanest/booking-gateway/internal/service/submissions"
	submitDraftUC "github.com/curanest/booking-gateway/internal/usecase/submit_draft"
	"github.com/curanest/booking-gateway/pkg/logger"
	"github.com/curanest/booking-gateway/pkg/metrics"
	"github.com/curanest/booking-gateway/pkg/txmanager"
	"github.com/curanest/booking-gateway/pkg/types"
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

	log.Info("Starting CuraNest booking gateway...")

	location, err := cfg.Scheduling.Location()
	if err != nil {
		log.Fatal("Failed to load timezone %s: %v", cfg.Scheduling.Timezone, err)
	}
	scheduleOpts := schedulerOptions(cfg.Scheduling)
	log.Info("Scheduling: timezone=%s, default_start=%s, working_hours=%s-%s",
		location, scheduleOpts.DefaultStart, scheduleOpts.OpeningTime, scheduleOpts.ClosingTime)

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
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

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	if cfg.Metrics.Enabled {
		prometheus.MustRegister(collectors.NewDBStatsCollector(db, cfg.Database.DBName))
		log.Info("Database pool metrics registered")
	}

	// Инициализируем клиент бэкенда и кэш каталога
	backend := curanest.NewClient(
		cfg.Curanest.URL,
		time.Duration(cfg.Curanest.Timeout)*time.Second,
		log,
	)
	log.Info("CuraNest client initialized (url=%s, timeout=%ds)", cfg.Curanest.URL, cfg.Curanest.Timeout)

	catalogCache, err := catalog.NewCache(backend, cfg.Catalog.CacheSize, cfg.Catalog.TTLDuration(), metricsCollector, log)
	if err != nil {
		log.Fatal("Failed to create catalog cache: %v", err)
	}

	// Хранилище черновиков и блокировки
	var (
		drafts interface {
			draftsService.DraftStore
			submitDraftUC.DraftStore
		}
		locker locking.Locker
	)
	switch cfg.Drafts.Backend {
	case config.DraftBackendRedis:
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer rdb.Close()

		pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err := rdb.Ping(pingCtx).Err()
		cancel()
		if err != nil {
			log.Fatal("Failed to ping redis at %s: %v", cfg.Redis.Addr, err)
		}

		drafts = draftstore.NewRedisStore(rdb, cfg.Redis.Prefix, cfg.Drafts.TTLDuration())
		locker = locking.NewRedisLocker(rdb, cfg.Redis.Prefix+"lock:", cfg.Drafts.LockWaitDuration())
		log.Info("Draft store: redis (addr=%s, ttl=%ds, lock_wait=%ds)", cfg.Redis.Addr, cfg.Drafts.TTL, cfg.Drafts.LockWait)
	default:
		memStore, err := draftstore.NewMemoryStore(cfg.Drafts.MaxItems, cfg.Drafts.TTLDuration())
		if err != nil {
			log.Fatal("Failed to create draft store: %v", err)
		}
		drafts = memStore
		locker = locking.NewMemoryLocker(cfg.Drafts.LockWaitDuration())
		log.Info("Draft store: memory (max_items=%d, ttl=%ds, lock_wait=%ds)", cfg.Drafts.MaxItems, cfg.Drafts.TTL, cfg.Drafts.LockWait)
	}

	// Репозитории и менеджер транзакций
	submissionRepository := submissionRepo.NewRepository(db)
	txMgr := txmanager.NewTransactionManager(db)

	// Инициализируем сервисы
	draftSvc := draftsService.NewService(
		drafts,
		locker,
		catalogCache,
		metricsCollector,
		location,
		scheduleOpts,
		log,
	)
	submissionSvc := submissionsService.NewService(submissionRepository, log)

	// Инициализируем use cases
	submitDraftUseCase := submitDraftUC.NewUseCase(
		drafts,
		locker,
		submissionRepository,
		backend,
		txMgr,
		metricsCollector,
		location,
		scheduleOpts,
		log,
	)

	// Инициализируем handlers
	createDraft := createDraftHandler.NewHandler(draftSvc, log)
	getDraft := getDraftHandler.NewHandler(draftSvc, log)
	deleteDraft := deleteDraftHandler.NewHandler(draftSvc, log)
	getAvailableTasks := getAvailableTasksHandler.NewHandler(draftSvc, log)
	addTask := addTaskHandler.NewHandler(draftSvc, log)
	updateTask := updateTaskHandler.NewHandler(draftSvc, log)
	removeTask := removeTaskHandler.NewHandler(draftSvc, log)
	updateOccurrence := updateOccurrenceHandler.NewHandler(draftSvc, log)
	submitDraft := submitDraftHandler.NewHandler(submitDraftUseCase, log)
	getUserSubmissions := getUserSubmissionsHandler.NewHandler(submissionSvc, log)
	getSubmission := getSubmissionHandler.NewHandler(submissionSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// Все маршруты шлюза требуют X-User-ID
	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Черновики ---
	protected.HandleFunc("/drafts", createDraft.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/drafts/{draftId}", getDraft.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/drafts/{draftId}", deleteDraft.Handle).Methods(http.MethodDelete)
	protected.HandleFunc("/drafts/{draftId}/available-tasks", getAvailableTasks.Handle).Methods(http.MethodGet)

	// --- Задачи черновика ---
	protected.HandleFunc("/drafts/{draftId}/tasks", addTask.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/drafts/{draftId}/tasks/{taskId}", updateTask.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/drafts/{draftId}/tasks/{taskId}", removeTask.Handle).Methods(http.MethodDelete)

	// --- Расписание ---
	protected.HandleFunc("/drafts/{draftId}/occurrences/{dayIndex:[0-9]+}", updateOccurrence.Handle).Methods(http.MethodPatch)

	// --- Отправка и история ---
	protected.HandleFunc("/drafts/{draftId}/submit", submitDraft.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/submissions", getUserSubmissions.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/submissions/{submissionId:[0-9]+}", getSubmission.Handle).Methods(http.MethodGet)

	// Создаем HTTP сервер
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

// schedulerOptions рабочие часы из конфигурации (значения уже проверены в config.Validate)
func schedulerOptions(c config.SchedulingConfig) scheduler.Options {
	opts := scheduler.DefaultOptions()
	if t, err := types.NewTimeStringFromString(c.DefaultStart); err == nil {
		opts.DefaultStart = t
	}
	if t, err := types.NewTimeStringFromString(c.OpeningTime); err == nil {
		opts.OpeningTime = t
	}
	if t, err := types.NewTimeStringFromString(c.ClosingTime); err == nil {
		opts.ClosingTime = t
	}
	return opts
}
