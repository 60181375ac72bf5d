package app

import (
	"os"
	"runtime/debug"
	"time"
	_ "time/tzdata"

	"github.com/pkg/errors"
	"github.com/talkincode/productcatalog/config"
	"github.com/talkincode/productcatalog/internal/catalog"
	"github.com/talkincode/productcatalog/internal/domain"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
	"gorm.io/gorm"
)

type Application struct {
	appConfig *config.AppConfig
	gormDB    *gorm.DB
	products  *catalog.Service
}

// Ensure Application implements all interfaces
var (
	_ DBProvider      = (*Application)(nil)
	_ ConfigProvider  = (*Application)(nil)
	_ CatalogProvider = (*Application)(nil)
	_ AppContext      = (*Application)(nil)
)

func NewApplication(appConfig *config.AppConfig) *Application {
	return &Application{appConfig: appConfig}
}

func (a *Application) Config() *config.AppConfig {
	return a.appConfig
}

func (a *Application) DB() *gorm.DB {
	return a.gormDB
}

// OverrideDB replaces the application's database handle (used in tests).
func (a *Application) OverrideDB(db *gorm.DB) {
	a.gormDB = db
	a.products = catalog.NewService(catalog.NewGormProductRepository(db))
}

// ProductService returns the catalog service bound to the connection pool
func (a *Application) ProductService() *catalog.Service {
	return a.products
}

// Init sets up logging and the database connection pool. It does not touch
// the schema; call MigrateDB and SeedProducts before serving requests.
func (a *Application) Init(cfg *config.AppConfig) error {
	a.appConfig = cfg
	loc, err := time.LoadLocation(cfg.System.Location)
	if err != nil {
		zap.S().Error("timezone config error")
	} else {
		time.Local = loc
	}

	logger, err := newLogger(cfg.Logger)
	if err != nil {
		return errors.Wrap(err, "init logger")
	}
	zap.ReplaceGlobals(logger)

	if cfg.Database.Type == "" {
		cfg.Database.Type = "postgres"
	}
	db, err := getDatabase(cfg.Database, cfg.GetDataDir())
	if err != nil {
		return errors.Wrap(err, "connect database")
	}
	a.OverrideDB(db)
	zap.S().Infof("Database connection successful, type: %s", cfg.Database.Type)
	return nil
}

func newLogger(cfg config.LogConfig) (*zap.Logger, error) {
	var zapConfig zap.Config
	if cfg.Mode == "production" {
		zapConfig = zap.NewProductionConfig()
	} else {
		zapConfig = zap.NewDevelopmentConfig()
	}
	zapConfig.OutputPaths = []string{"stdout"}

	if !cfg.FileEnable {
		return zapConfig.Build(zap.AddCaller())
	}

	lumberJackLogger := &lumberjack.Logger{
		Filename:   cfg.Filename,
		MaxSize:    64,
		MaxBackups: 7,
		MaxAge:     7,
		Compress:   false,
	}
	core := zapcore.NewTee(
		zapcore.NewCore(
			zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
			zapcore.AddSync(lumberJackLogger),
			zapConfig.Level,
		),
		zapcore.NewCore(
			zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
			zapcore.AddSync(os.Stdout),
			zapConfig.Level,
		),
	)
	return zap.New(core, zap.AddCaller()), nil
}

// MigrateDB creates missing tables and columns. Existing data is never dropped.
func (a *Application) MigrateDB(track bool) (err error) {
	defer func() {
		if err1 := recover(); err1 != nil {
			if os.Getenv("GO_DEGUB_TRACE") != "" {
				debug.PrintStack()
			}
			err = errors.Errorf("schema migration panic: %v", err1)
		}
	}()
	db := a.gormDB
	if track {
		db = db.Debug()
	}
	if err := db.Migrator().AutoMigrate(domain.Tables...); err != nil {
		return errors.Wrap(err, "migrate schema")
	}
	zap.L().Info("database schema initialized", zap.String("namespace", "schema"))
	return nil
}

// DropAll removes every catalog table.
func (a *Application) DropAll() error {
	return errors.WithStack(a.gormDB.Migrator().DropTable(domain.Tables...))
}

// InitDb drops and recreates the schema. This destroys all stored products
// and is only reachable through the -initdb command line flag.
func (a *Application) InitDb() error {
	zap.L().Warn("dropping all catalog tables", zap.String("namespace", "schema"))
	if err := a.DropAll(); err != nil {
		return err
	}
	return a.MigrateDB(false)
}

// Release releases application resources
func (a *Application) Release() {
	if a.gormDB != nil {
		if sqlDB, err := a.gormDB.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
	_ = zap.L().Sync()
}
