package app

import (
	"context"
	"net/http"
	"time"
	_ "time/tzdata"

	"github.com/georgemunganga/printa-pos/internal/config"
	"github.com/georgemunganga/printa-pos/internal/database"
	"github.com/georgemunganga/printa-pos/internal/modules/category"
	"github.com/georgemunganga/printa-pos/internal/modules/invoiceitem"
	"github.com/georgemunganga/printa-pos/internal/modules/position"
	"github.com/georgemunganga/printa-pos/internal/modules/product"
	"github.com/georgemunganga/printa-pos/internal/modules/staff"
	"github.com/georgemunganga/printa-pos/internal/modules/user"
	"github.com/georgemunganga/printa-pos/internal/resource"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Application struct {
	appConfig *config.AppConfig
	gormDB    *gorm.DB
}

func NewApplication(appConfig *config.AppConfig) *Application {
	return &Application{appConfig: appConfig}
}

func (a *Application) Config() *config.AppConfig {
	return a.appConfig
}

func (a *Application) DB() *gorm.DB {
	return a.gormDB
}

// OverrideDB replaces the database handle opened by Init. Routers built
// afterwards store records through db.
func (a *Application) OverrideDB(db *gorm.DB) {
	a.gormDB = db
}

// Init sets the time zone, installs the global logger and, unless the
// memory driver is selected, connects to the database.
func (a *Application) Init() error {
	cfg := a.appConfig
	loc, err := time.LoadLocation(cfg.System.Location)
	if err != nil {
		zap.S().Error("timezone config error")
	} else {
		time.Local = loc
	}

	logger, err := newLogger(cfg.Logger, cfg.System.Appid)
	if err != nil {
		return errors.Wrap(err, "build logger")
	}
	zap.ReplaceGlobals(logger)

	if cfg.Database.Type == "memory" {
		zap.L().Warn("using in-memory store, records are lost on exit")
		return nil
	}
	db, err := database.Open(cfg.Database)
	if err != nil {
		return err
	}
	a.gormDB = db
	return nil
}

// MigrateDB creates or alters the tables of every model. track logs the SQL.
func (a *Application) MigrateDB(track bool) error {
	if a.gormDB == nil {
		return nil
	}
	db := a.gormDB
	if track {
		db = db.Debug()
	}
	return errors.Wrap(db.Migrator().AutoMigrate(Tables...), "auto migrate")
}

// InitDb drops every table and migrates again.
func (a *Application) InitDb() error {
	if a.gormDB == nil {
		return nil
	}
	if err := a.gormDB.Migrator().DropTable(Tables...); err != nil {
		return errors.Wrap(err, "drop tables")
	}
	return a.MigrateDB(false)
}

// Router mounts the CRUD routes of every entity. Each call builds fresh
// repositories, so with the memory driver it also starts from an empty store.
func (a *Application) Router() *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(requestID)
	r.Use(accessLog)
	r.Use(middleware.Recoverer)

	opts := resource.Options{
		Policy: resource.Policy(a.appConfig.System.NotFoundPolicy),
		Debug:  a.appConfig.System.Debug,
	}
	category.NewHandler(category.NewService(repositoryFor[category.Category](a.gormDB)), opts).RegisterRoutes(r)
	product.NewHandler(product.NewService(repositoryFor[product.Product](a.gormDB)), opts).RegisterRoutes(r)
	position.NewHandler(position.NewService(repositoryFor[position.Position](a.gormDB)), opts).RegisterRoutes(r)
	staff.NewHandler(staff.NewService(repositoryFor[staff.Staff](a.gormDB)), opts).RegisterRoutes(r)
	user.NewHandler(user.NewService(repositoryFor[user.User](a.gormDB)), opts).RegisterRoutes(r)
	invoiceitem.NewHandler(invoiceitem.NewService(repositoryFor[invoiceitem.InvoiceItem](a.gormDB)), opts).RegisterRoutes(r)

	r.Get("/healthz", a.health)
	return r
}

func repositoryFor[T any, P resource.Record[T]](db *gorm.DB) resource.Repository[T] {
	if db == nil {
		return resource.NewMemoryRepository[T, P]()
	}
	return resource.NewGormRepository[T](db)
}

// Ping checks the database connection. The memory driver is always up.
func (a *Application) Ping(ctx context.Context) error {
	if a.gormDB == nil {
		return nil
	}
	sqlDB, err := a.gormDB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (a *Application) health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	status, body := http.StatusOK, map[string]string{"status": "ok"}
	if err := a.Ping(ctx); err != nil {
		zap.L().Warn("health check failed", zap.Error(err))
		status, body = http.StatusServiceUnavailable, map[string]string{"status": "unavailable"}
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// Release closes the database and flushes the logger.
func (a *Application) Release() {
	if a.gormDB != nil {
		if sqlDB, err := a.gormDB.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
	_ = zap.L().Sync()
}
