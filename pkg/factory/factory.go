package factory

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"taskflow/internal/config"
	"taskflow/internal/domain"
	"taskflow/internal/repository"
	"taskflow/internal/service"
	"taskflow/pkg/logger"
)

type Factory interface {
	GetLogger() logger.Logger
	GetConfig() *config.Config
	GetDB() *sql.DB

	GetUserRepository() domain.UserRepository
	GetOrderRepository() domain.OrderRepository
	GetOfferRepository() domain.OfferRepository

	GetUserService() domain.UserService
	GetOrderService() domain.OrderService
	GetOfferService() domain.OfferService
}

type AppFactory struct {
	config *config.Config
	logger logger.Logger
	db     *sql.DB

	userRepository  domain.UserRepository
	orderRepository domain.OrderRepository
	offerRepository domain.OfferRepository

	userService  domain.UserService
	orderService domain.OrderService
	offerService domain.OfferService
}

func NewFactory() (Factory, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	log := logger.New(logger.LogLevel(cfg.LogLevel), nil)

	db, err := sql.Open("sqlite3", cfg.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("veritabanı bağlantısı kurulamadı: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("veritabanı bağlantısı test edilemedi: %w", err)
	}

	factory := &AppFactory{
		config: cfg,
		logger: log,
		db:     db,
	}

	factory.initRepositories()
	factory.initServices()

	return factory, nil
}

func (f *AppFactory) initRepositories() {
	f.userRepository = repository.NewUserRepository(f.db, f.logger)
	f.orderRepository = repository.NewOrderRepository(f.db, f.logger)
	f.offerRepository = repository.NewOfferRepository(f.db, f.logger)
}

func (f *AppFactory) initServices() {
	f.userService = service.NewUserService(f.userRepository, f.logger)
	f.orderService = service.NewOrderService(f.orderRepository, f.logger)
	f.offerService = service.NewOfferService(f.offerRepository, f.logger)
}

func (f *AppFactory) GetLogger() logger.Logger {
	return f.logger
}

func (f *AppFactory) GetConfig() *config.Config {
	return f.config
}

func (f *AppFactory) GetDB() *sql.DB {
	return f.db
}

func (f *AppFactory) GetUserRepository() domain.UserRepository {
	return f.userRepository
}

func (f *AppFactory) GetOrderRepository() domain.OrderRepository {
	return f.orderRepository
}

func (f *AppFactory) GetOfferRepository() domain.OfferRepository {
	return f.offerRepository
}

func (f *AppFactory) GetUserService() domain.UserService {
	return f.userService
}

func (f *AppFactory) GetOrderService() domain.OrderService {
	return f.orderService
}

func (f *AppFactory) GetOfferService() domain.OfferService {
	return f.offerService
}
