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

	cancelBookingHandler "github.com/edubridge/EduBridge-BookingService/internal/api/handlers/cancel_booking"
	checkScheduleChangesHandler "github.com/edubridge/EduBridge-BookingService/internal/api/handlers/check_schedule_changes"
	createBookingHandler "github.com/edubridge/EduBridge-BookingService/internal/api/handlers/create_booking"
	deleteNotificationHandler "github.com/edubridge/EduBridge-BookingService/internal/api/handlers/delete_notification"
	getBookingHandler "github.com/edubridge/EduBridge-BookingService/internal/api/handlers/get_booking"
	getSlotBookingsHandler "github.com/edubridge/EduBridge-BookingService/internal/api/handlers/get_slot_bookings"
	getUserBookingsHandler "github.com/edubridge/EduBridge-BookingService/internal/api/handlers/get_user_bookings"
	listNotificationsHandler "github.com/edubridge/EduBridge-BookingService/internal/api/handlers/list_notifications"
	markNotificationsReadHandler "github.com/edubridge/EduBridge-BookingService/internal/api/handlers/mark_notifications_read"
	notifyStudentsHandler "github.com/edubridge/EduBridge-BookingService/internal/api/handlers/notify_students"
	rateTeacherHandler "github.com/edubridge/EduBridge-BookingService/internal/api/handlers/rate_teacher"
	unreadNotificationsCountHandler "github.com/edubridge/EduBridge-BookingService/internal/api/handlers/unread_notifications_count"
	updateCapacityHandler "github.com/edubridge/EduBridge-BookingService/internal/api/handlers/update_capacity"
	"github.com/edubridge/EduBridge-BookingService/internal/api/middleware"
	"github.com/edubridge/EduBridge-BookingService/internal/config"
	bookingRepo "github.com/edubridge/EduBridge-BookingService/internal/infra/storage/booking"
	notificationRepo "github.com/edubridge/EduBridge-BookingService/internal/infra/storage/notification"
	ratingRepo "github.com/edubridge/EduBridge-BookingService/internal/infra/storage/rating"
	teacherRepo "github.com/edubridge/EduBridge-BookingService/internal/infra/storage/teacher"
	mailServiceClient "github.com/edubridge/EduBridge-BookingService/internal/integrations/mailservice"
	userServiceClient "github.com/edubridge/EduBridge-BookingService/internal/integrations/userservice"
	bookingsService "github.com/edubridge/EduBridge-BookingService/internal/service/bookings"
	notificationsService "github.com/edubridge/EduBridge-BookingService/internal/service/notifications"
	ratingsService "github.com/edubridge/EduBridge-BookingService/internal/service/ratings"
	"github.com/edubridge/EduBridge-BookingService/internal/service/waitlist"
	cancelBookingUC "github.com/edubridge/EduBridge-BookingService/internal/usecase/cancel_booking"
	checkScheduleChangesUC "github.com/edubridge/EduBridge-BookingService/internal/usecase/check_schedule_changes"
	createBookingUC "github.com/edubridge/EduBridge-BookingService/internal/usecase/create_booking"
	notifyStudentsUC "github.com/edubridge/EduBridge-BookingService/internal/usecase/notify_students"
	updateCapacityUC "github.com/edubridge/EduBridge-BookingService/internal/usecase/update_capacity"
	"github.com/edubridge/EduBridge-BookingService/pkg/dbmetrics"
	"github.com/edubridge/EduBridge-BookingService/pkg/logger"
	"github.com/edubridge/EduBridge-BookingService/pkg/metrics"
	"github.com/edubridge/EduBridge-BookingService/pkg/migrator"
	"github.com/edubridge/EduBridge-BookingService/pkg/simpletxmanager"
	"github.com/edubridge/EduBridge-BookingService/pkg/txmanager"
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

	log.Info("Starting EduBridge-BookingService...")
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

	// Применяем миграции
	mig, err := migrator.New(db, cfg.Database.MigrationsPath)
	if err != nil {
		log.Fatal("Failed to initialize migrator: %v", err)
	}
	if err := mig.Run(context.Background()); err != nil {
		log.Fatal("Failed to apply migrations: %v", err)
	}
	if version, err := mig.Version(context.Background()); err == nil {
		log.Info("Migrations applied, schema version: %d", version)
	}

	// Инициализируем интеграционных клиентов
	userClient := userServiceClient.NewClient(
		cfg.UserService.URL,
		time.Duration(cfg.UserService.Timeout)*time.Second,
		log,
	)
	mailClient := mailServiceClient.NewClient(
		cfg.MailService.URL,
		cfg.MailService.From,
		time.Duration(cfg.MailService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (UserService=%s timeout=%ds, MailService=%s timeout=%ds)",
		cfg.UserService.URL, cfg.UserService.Timeout, cfg.MailService.URL, cfg.MailService.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository      *bookingRepo.Repository
		teacherRepository      *teacherRepo.Repository
		notificationRepository *notificationRepo.Repository
		ratingRepository       *ratingRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases и сервисах)
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		// Инициализируем репозитории с обёрткой метрик
		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		teacherRepository = teacherRepo.NewRepository(wrappedDB)
		notificationRepository = notificationRepo.NewRepository(wrappedDB)
		ratingRepository = ratingRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		// Инициализируем репозитории без метрик
		bookingRepository = bookingRepo.NewRepository(db)
		teacherRepository = teacherRepo.NewRepository(db)
		notificationRepository = notificationRepo.NewRepository(db)
		ratingRepository = ratingRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Промоутер очереди ожидания (работает внутри транзакций вызывающего)
	promoter := waitlist.NewPromoter(bookingRepository, notificationRepository, log)

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, log)
	notificationSvc := notificationsService.NewService(notificationRepository, log)
	ratingSvc := ratingsService.NewService(
		ratingRepository,
		teacherRepository,
		txMgr,
		log,
	)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		teacherRepository,
		txMgr,
		log,
	)
	cancelBookingUseCase := cancelBookingUC.NewUseCase(
		bookingRepository,
		teacherRepository,
		notificationRepository,
		promoter,
		txMgr,
		log,
		cfg.Location(),
		cfg.App.CancellationNoticeHours,
	)
	updateCapacityUseCase := updateCapacityUC.NewUseCase(
		teacherRepository,
		promoter,
		txMgr,
		log,
	)
	checkScheduleChangesUseCase := checkScheduleChangesUC.NewUseCase(
		bookingRepository,
		teacherRepository,
		userClient,
		mailClient,
		txMgr,
		log,
	)
	notifyStudentsUseCase := notifyStudentsUC.NewUseCase(
		bookingRepository,
		teacherRepository,
		userClient,
		mailClient,
		promoter,
		txMgr,
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(cancelBookingUseCase, bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	getSlotBookings := getSlotBookingsHandler.NewHandler(bookingSvc, log)
	updateCapacity := updateCapacityHandler.NewHandler(updateCapacityUseCase, log)
	checkScheduleChanges := checkScheduleChangesHandler.NewHandler(checkScheduleChangesUseCase, log)
	notifyStudents := notifyStudentsHandler.NewHandler(notifyStudentsUseCase, log)
	listNotifications := listNotificationsHandler.NewHandler(notificationSvc, log)
	unreadNotificationsCount := unreadNotificationsCountHandler.NewHandler(notificationSvc, log)
	markNotificationsRead := markNotificationsReadHandler.NewHandler(notificationSvc, log)
	deleteNotification := deleteNotificationHandler.NewHandler(notificationSvc, log)
	rateTeacher := rateTeacherHandler.NewHandler(ratingSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

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
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	// Создание бронирования
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Получение бронирования по ID
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Отмена / отметка об оценке / закрытие попапа
	protected.HandleFunc("/bookings/{bookingId}", cancelBooking.Handle).Methods(http.MethodPatch)

	// История бронирований пользователя
	protected.HandleFunc("/users/{userId}/bookings", getUserBookings.Handle).Methods(http.MethodGet)

	// --- Управление расписанием (для администраторов) ---
	// Бронирования конкретного слота преподавателя
	protected.HandleFunc("/teachers/{teacherId}/slot-bookings", getSlotBookings.Handle).Methods(http.MethodGet)

	// Изменение вместимости группы
	protected.HandleFunc("/teachers/{teacherId}/capacity", updateCapacity.Handle).Methods(http.MethodPut)

	// Сверка старого и нового расписания с уведомлением учеников
	protected.HandleFunc("/teachers/{teacherId}/schedule-changes", checkScheduleChanges.Handle).Methods(http.MethodPost)

	// Массовая отмена или перенос бронирований
	protected.HandleFunc("/teachers/{teacherId}/notify-students", notifyStudents.Handle).Methods(http.MethodPost)

	// --- Уведомления ---
	protected.HandleFunc("/notifications", listNotifications.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/notifications/unread-count", unreadNotificationsCount.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/notifications/mark-read", markNotificationsRead.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/notifications/{notificationId}", deleteNotification.Handle).Methods(http.MethodDelete)

	// --- Оценки ---
	protected.HandleFunc("/ratings", rateTeacher.Handle).Methods(http.MethodPost)

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
