package config

import (
	"fmt"
	"os"
	"path"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"
)

// DBConfig Database configuration
type DBConfig struct {
	Type     string `yaml:"type"` // postgres or sqlite
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Passwd   string `yaml:"passwd"`
	URL      string `yaml:"url"` // full connection string, takes precedence over the discrete fields
	MaxConn  int    `yaml:"max_conn"`
	IdleConn int    `yaml:"idle_conn"`
	Debug    bool   `yaml:"debug"`
}

// SysConfig System configuration
type SysConfig struct {
	Appid    string `yaml:"appid"`
	Location string `yaml:"location"`
	Workdir  string `yaml:"workdir"`
	Debug    bool   `yaml:"debug"`
}

// WebConfig Web server configuration
type WebConfig struct {
	Host    string `yaml:"host"`
	Port    int    `yaml:"port"`
	Metrics bool   `yaml:"metrics"`
}

// LogConfig Logging configuration
type LogConfig struct {
	Mode       string `yaml:"mode"`
	FileEnable bool   `yaml:"file_enable"`
	Filename   string `yaml:"filename"`
}

type AppConfig struct {
	System   SysConfig `yaml:"system"`
	Web      WebConfig `yaml:"web"`
	Database DBConfig  `yaml:"database"`
	Logger   LogConfig `yaml:"logger"`
}

func (c *AppConfig) GetLogDir() string {
	return path.Join(c.System.Workdir, "logs")
}

func (c *AppConfig) GetDataDir() string {
	return path.Join(c.System.Workdir, "data")
}

// InitDirs creates the working directories used for logs and sqlite data.
func (c *AppConfig) InitDirs() error {
	for _, dir := range []string{c.GetLogDir(), c.GetDataDir()} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrapf(err, "create %s", dir)
		}
	}
	return nil
}

// Addr returns the listen address of the web server.
func (c *AppConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Web.Host, c.Web.Port)
}

// DSN returns the connection string for the configured database.
func (d DBConfig) DSN() string {
	if d.URL != "" {
		return d.URL
	}
	if strings.EqualFold(d.Type, "sqlite") {
		return d.Name
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		d.Host, d.Port, d.User, d.Passwd, d.Name)
}

// DefaultAppConfig Default configuration
var DefaultAppConfig = &AppConfig{
	System: SysConfig{
		Appid:    "ProductCatalog",
		Location: "America/Bogota",
		Workdir:  "/var/productcatalog",
		Debug:    true,
	},
	Web: WebConfig{
		Host: "0.0.0.0",
		Port: 3000,
	},
	Database: DBConfig{
		Type:     "postgres",
		Host:     "127.0.0.1",
		Port:     5432,
		Name:     "productos",
		User:     "postgres",
		Passwd:   "",
		MaxConn:  20,
		IdleConn: 5,
		Debug:    false,
	},
	Logger: LogConfig{
		Mode:       "development",
		FileEnable: false,
		Filename:   "/var/productcatalog/logs/catalog.log",
	},
}

// LoadConfig reads the yaml file at cfile (when it exists), then applies
// .env and environment overrides. An empty cfile falls back to the
// well-known locations.
func LoadConfig(cfile string) (*AppConfig, error) {
	// .env is optional
	_ = godotenv.Load()

	if cfile == "" {
		cfile = "productcatalog.yml"
	}
	if !fileExists(cfile) {
		cfile = "/etc/productcatalog.yml"
	}

	cfg := *DefaultAppConfig
	if fileExists(cfile) {
		data, err := os.ReadFile(cfile)
		if err != nil {
			return nil, errors.Wrapf(err, "read config %s", cfile)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, errors.Wrapf(err, "parse config %s", cfile)
		}
	}

	applyEnv(&cfg)
	return &cfg, nil
}

func applyEnv(cfg *AppConfig) {
	setEnvValue("APP_WORKDIR", &cfg.System.Workdir)
	setEnvValue("APP_LOCATION", &cfg.System.Location)
	setEnvBoolValue("APP_DEBUG", &cfg.System.Debug)

	setEnvValue("HOST", &cfg.Web.Host)
	setEnvIntValue("PORT", &cfg.Web.Port)
	setEnvBoolValue("ENABLE_METRICS", &cfg.Web.Metrics)

	setEnvValue("DB_TYPE", &cfg.Database.Type)
	setEnvValue("DATABASE_URL", &cfg.Database.URL)
	setEnvValue("DB_HOST", &cfg.Database.Host)
	setEnvIntValue("DB_PORT", &cfg.Database.Port)
	setEnvValue("DB_NAME", &cfg.Database.Name)
	setEnvValue("DB_USER", &cfg.Database.User)
	setEnvValue("DB_PASSWORD", &cfg.Database.Passwd)
	setEnvIntValue("DB_MAX_CONN", &cfg.Database.MaxConn)
	setEnvIntValue("DB_IDLE_CONN", &cfg.Database.IdleConn)
	setEnvBoolValue("DB_DEBUG", &cfg.Database.Debug)

	setEnvValue("LOG_MODE", &cfg.Logger.Mode)
	setEnvBoolValue("LOG_FILE_ENABLE", &cfg.Logger.FileEnable)
	setEnvValue("LOG_FILENAME", &cfg.Logger.Filename)
}

func setEnvValue(name string, val *string) {
	if v := os.Getenv(name); v != "" {
		*val = v
	}
}

func setEnvBoolValue(name string, val *bool) {
	if v := os.Getenv(name); v != "" {
		*val = cast.ToBool(v)
	}
}

func setEnvIntValue(name string, val *int) {
	if v := os.Getenv(name); v != "" {
		if i, err := cast.ToIntE(v); err == nil {
			*val = i
		}
	}
}

func fileExists(file string) bool {
	info, err := os.Stat(file)
	return err == nil && !info.IsDir()
}
