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

	addCartItemHandler "github.com/m04kA/SMC-StorefrontService/internal/api/handlers/add_cart_item"
	checkoutHandler "github.com/m04kA/SMC-StorefrontService/internal/api/handlers/checkout"
	clearCartHandler "github.com/m04kA/SMC-StorefrontService/internal/api/handlers/clear_cart"
	createSessionHandler "github.com/m04kA/SMC-StorefrontService/internal/api/handlers/create_session"
	getCartHandler "github.com/m04kA/SMC-StorefrontService/internal/api/handlers/get_cart"
	getOfferableDatesHandler "github.com/m04kA/SMC-StorefrontService/internal/api/handlers/get_offerable_dates"
	getOfferableSlotsHandler "github.com/m04kA/SMC-StorefrontService/internal/api/handlers/get_offerable_slots"
	getProductHandler "github.com/m04kA/SMC-StorefrontService/internal/api/handlers/get_product"
	getProductsHandler "github.com/m04kA/SMC-StorefrontService/internal/api/handlers/get_products"
	getScheduleSelectionHandler "github.com/m04kA/SMC-StorefrontService/internal/api/handlers/get_schedule_selection"
	quotePriceHandler "github.com/m04kA/SMC-StorefrontService/internal/api/handlers/quote_price"
	removeCartItemHandler "github.com/m04kA/SMC-StorefrontService/internal/api/handlers/remove_cart_item"
	selectScheduleDateHandler "github.com/m04kA/SMC-StorefrontService/internal/api/handlers/select_schedule_date"
	selectScheduleTimeHandler "github.com/m04kA/SMC-StorefrontService/internal/api/handlers/select_schedule_time"
	updateCartItemHandler "github.com/m04kA/SMC-StorefrontService/internal/api/handlers/update_cart_item"
	"github.com/m04kA/SMC-StorefrontService/internal/api/middleware"
	"github.com/m04kA/SMC-StorefrontService/internal/config"
	"github.com/m04kA/SMC-StorefrontService/internal/infra/session"
	capacityRepo "github.com/m04kA/SMC-StorefrontService/internal/infra/storage/capacity"
	catalogRepo "github.com/m04kA/SMC-StorefrontService/internal/infra/storage/catalog"
	cartService "github.com/m04kA/SMC-StorefrontService/internal/service/cart"
	catalogService "github.com/m04kA/SMC-StorefrontService/internal/service/catalog"
	scheduleService "github.com/m04kA/SMC-StorefrontService/internal/service/schedule"
	addCartItemUC "github.com/m04kA/SMC-StorefrontService/internal/usecase/add_cart_item"
	checkoutUC "github.com/m04kA/SMC-StorefrontService/internal/usecase/checkout"
	getOfferableDatesUC "github.com/m04kA/SMC-StorefrontService/internal/usecase/get_offerable_dates"
	getOfferableSlotsUC "github.com/m04kA/SMC-StorefrontService/internal/usecase/get_offerable_slots"
	quotePriceUC "github.com/m04kA/SMC-StorefrontService/internal/usecase/quote_price"
	"github.com/m04kA/SMC-StorefrontService/pkg/logger"
	"github.com/m04kA/SMC-StorefrontService/pkg/metrics"
	"github.com/m04kA/SMC-StorefrontService/pkg/txmanager"
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

	log.Info("Starting SMC-StorefrontService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Преобразуем конфигурацию расписания в доменную
	scheduleCfg, warnings, err := cfg.Schedule.ToDomain()
	if err != nil {
		log.Fatal("Invalid schedule configuration: %v", err)
	}
	for _, warning := range warnings {
		log.Warn("Schedule configuration: %s", warning)
	}

	deliveryFee, err := cfg.Checkout.DeliveryFeeAmount()
	if err != nil {
		log.Fatal("Invalid checkout delivery_fee: %v", err)
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

	// Инициализируем репозитории
	capacityRepository := capacityRepo.NewRepository(db)
	catalogRepository := catalogRepo.NewRepository(db)
	capacitySource := capacityRepo.NewSource(capacityRepository)
	txMgr := txmanager.NewTransactionManager(db)

	// Инициализируем хранилище сессий
	sessionStore := session.NewStore()

	// Инициализируем сервисы
	catalogSvc := catalogService.NewService(catalogRepository, log)
	scheduleSvc := scheduleService.NewService(scheduleCfg, capacitySource, sessionStore, cfg.Schedule.HorizonDays, log)
	cartSvc := cartService.NewService(sessionStore, catalogRepository, log)

	// Инициализируем use cases
	getOfferableDatesUseCase := getOfferableDatesUC.NewUseCase(scheduleCfg, capacitySource, log)
	getOfferableSlotsUseCase := getOfferableSlotsUC.NewUseCase(scheduleCfg, capacitySource, log)
	quotePriceUseCase := quotePriceUC.NewUseCase(catalogRepository, log)
	addCartItemUseCase := addCartItemUC.NewUseCase(
		scheduleCfg,
		catalogRepository,
		capacitySource,
		sessionStore,
		cfg.Schedule.HorizonDays,
		log,
	)
	checkoutUseCase := checkoutUC.NewUseCase(
		scheduleCfg,
		capacitySource,
		capacityRepository,
		catalogRepository,
		catalogRepository,
		sessionStore,
		txMgr,
		deliveryFee,
		cfg.Schedule.HorizonDays,
		log,
	)

	// Инициализируем handlers
	getProducts := getProductsHandler.NewHandler(catalogSvc, log)
	getProduct := getProductHandler.NewHandler(catalogSvc, log)
	getOfferableDates := getOfferableDatesHandler.NewHandler(getOfferableDatesUseCase, log)
	getOfferableSlots := getOfferableSlotsHandler.NewHandler(getOfferableSlotsUseCase, log)
	quotePrice := quotePriceHandler.NewHandler(quotePriceUseCase, log)
	createSession := createSessionHandler.NewHandler(sessionStore, log)
	selectScheduleDate := selectScheduleDateHandler.NewHandler(scheduleSvc, log)
	selectScheduleTime := selectScheduleTimeHandler.NewHandler(scheduleSvc, log)
	getScheduleSelection := getScheduleSelectionHandler.NewHandler(scheduleSvc, log)
	addCartItem := addCartItemHandler.NewHandler(addCartItemUseCase, log)
	getCart := getCartHandler.NewHandler(cartSvc, log)
	updateCartItem := updateCartItemHandler.NewHandler(cartSvc, log)
	removeCartItem := removeCartItemHandler.NewHandler(cartSvc, log)
	clearCart := clearCartHandler.NewHandler(cartSvc, log)
	checkout := checkoutHandler.NewHandler(checkoutUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без сессии)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без сессии)
	// ============================================================

	// Каталог товаров
	api.HandleFunc("/products", getProducts.Handle).Methods(http.MethodGet)
	api.HandleFunc("/products/{slug}", getProduct.Handle).Methods(http.MethodGet)

	// Предлагаемые даты и слоты исполнения
	api.HandleFunc("/schedule/dates", getOfferableDates.Handle).Methods(http.MethodGet)
	api.HandleFunc("/schedule/slots", getOfferableSlots.Handle).Methods(http.MethodGet)

	// Расчет цены конфигурации товара
	api.HandleFunc("/price-quote", quotePrice.Handle).Methods(http.MethodPost)

	// Создание сессии оформления заказа
	api.HandleFunc("/sessions", createSession.Handle).Methods(http.MethodPost)

	// ============================================================
	// SESSION ROUTES (требуют X-Session-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Session)

	// --- Выбор расписания ---
	protected.HandleFunc("/session/schedule/date", selectScheduleDate.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/session/schedule/time", selectScheduleTime.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/session/schedule", getScheduleSelection.Handle).Methods(http.MethodGet)

	// --- Корзина ---
	protected.HandleFunc("/session/cart/items", addCartItem.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/session/cart", getCart.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/session/cart/items/{itemId}", updateCartItem.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/session/cart/items/{itemId}", removeCartItem.Handle).Methods(http.MethodDelete)
	protected.HandleFunc("/session/cart", clearCart.Handle).Methods(http.MethodDelete)

	// --- Оформление заказа ---
	protected.HandleFunc("/session/checkout", checkout.Handle).Methods(http.MethodPost)

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
