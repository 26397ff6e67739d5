package config

import (
	"fmt"
	"net/url"

	"github.com/maxviazov/report-export-service/internal/logger"
	"github.com/maxviazov/report-export-service/internal/model"
)

type Config struct {
	App         AppConfig           `mapstructure:"app"`
	Logger      logger.LoggerConfig `mapstructure:"logger" validate:"-"` // validated by logger.New after defaults
	Postgres    PostgresConfig      `mapstructure:"postgres"`
	PDF         PDFConfig           `mapstructure:"pdf"`
	Report      ReportConfig        `mapstructure:"report"`
	Spreadsheet SpreadsheetConfig   `mapstructure:"spreadsheet"`
}

type AppConfig struct {
	Name            string `mapstructure:"name"`
	Version         string `mapstructure:"version"`
	Env             string `mapstructure:"env"`
	Port            int    `mapstructure:"port" validate:"gte=1,lte=65535"`
	ShutdownTimeout int    `mapstructure:"shutdown_timeout" validate:"gte=0"` // seconds
}

// PostgresConfig holds pool settings; durations are in seconds. Credentials come from APP_POSTGRES_* env.
type PostgresConfig struct {
	Host              string `mapstructure:"host" validate:"required"`
	Port              int    `mapstructure:"port" validate:"gte=1,lte=65535"`
	User              string `mapstructure:"user" validate:"required"`
	Password          string `mapstructure:"password" validate:"required"`
	DBName            string `mapstructure:"db" validate:"required"`
	SSLMode           string `mapstructure:"sslmode"`
	MaxConns          int32  `mapstructure:"max_conns" validate:"gte=0"`
	MinConns          int32  `mapstructure:"min_conns" validate:"gte=0"`
	MaxConnLifetime   int    `mapstructure:"max_conn_lifetime"`
	MaxConnIdleTime   int    `mapstructure:"max_conn_idle_time"`
	HealthCheckPeriod int    `mapstructure:"health_check_period"`
	AutoMigrate       bool   `mapstructure:"auto_migrate"`
}

// DSN builds a postgres URL; url.URL takes care of escaping credentials.
func (p PostgresConfig) DSN() string {
	u := url.URL{
		Scheme: "postgres",
		Host:   fmt.Sprintf("%s:%d", p.Host, p.Port),
		Path:   p.DBName,
	}
	if p.User != "" || p.Password != "" {
		u.User = url.UserPassword(p.User, p.Password)
	}
	q := u.Query()
	if p.SSLMode != "" {
		q.Set("sslmode", p.SSLMode)
	}
	u.RawQuery = q.Encode()
	return u.String()
}

// PDFConfig selects and tunes the rasterizer.
type PDFConfig struct {
	Engine          string  `mapstructure:"engine" validate:"oneof=chrome native"`
	ChromePath      string  `mapstructure:"chrome_path"`
	AutoDownload    bool    `mapstructure:"auto_download"`
	NoSandbox       bool    `mapstructure:"no_sandbox"`
	Timeout         int     `mapstructure:"timeout" validate:"gte=0"` // seconds, 0 disables
	Format          string  `mapstructure:"format" validate:"required"`
	Landscape       bool    `mapstructure:"landscape"`
	Margin          float64 `mapstructure:"margin" validate:"gte=0"` // cm
	Scale           float64 `mapstructure:"scale" validate:"gte=0,lte=2"`
	PrintBackground bool    `mapstructure:"print_background"`
}

type ReportConfig struct {
	// RowsPerPage is the default page size; it depends on the template's paddings and margins.
	RowsPerPage   int                `mapstructure:"rows_per_page" validate:"gte=1"`
	TruncateAt    int                `mapstructure:"truncate_at" validate:"gte=0"`
	SampleSeed    uint64             `mapstructure:"sample_seed"`
	MaxSampleRows int                `mapstructure:"max_sample_rows" validate:"gte=1"`
	Stylesheet    string             `mapstructure:"stylesheet"` // optional CSS file replacing the embedded one
	Header        model.ReportHeader `mapstructure:"header"`
}

type SpreadsheetConfig struct {
	SheetName string  `mapstructure:"sheet_name" validate:"required"`
	FileName  string  `mapstructure:"file_name" validate:"required"`
	ColWidth  float64 `mapstructure:"col_width" validate:"gt=0"`
}
