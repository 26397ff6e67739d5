package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// secrets never live in the yaml file; binding them lets APP_* env reach Unmarshal
var envOnlyKeys = []string{"postgres.user", "postgres.password", "postgres.db"}

func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.SetEnvPrefix("APP")
	v.AutomaticEnv()
	setDefaults(v)
	for _, key := range envOnlyKeys {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind env for %s: %w", key, err)
		}
	}

	var config Config
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("config file not found: %w", err)
	}
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := validator.New().Struct(&config); err != nil {
		return nil, fmt.Errorf("config validation error: %w", err)
	}
	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "report-export-service")
	v.SetDefault("app.version", "0.0.1")
	v.SetDefault("app.env", "dev")
	v.SetDefault("app.port", 8080)
	v.SetDefault("app.shutdown_timeout", 10)

	v.SetDefault("postgres.host", "localhost")
	v.SetDefault("postgres.port", 5432)
	v.SetDefault("postgres.sslmode", "disable")
	v.SetDefault("postgres.max_conns", 10)
	v.SetDefault("postgres.min_conns", 1)
	v.SetDefault("postgres.max_conn_lifetime", 3600)
	v.SetDefault("postgres.max_conn_idle_time", 300)
	v.SetDefault("postgres.health_check_period", 30)
	v.SetDefault("postgres.auto_migrate", false)

	v.SetDefault("pdf.engine", "chrome")
	v.SetDefault("pdf.timeout", 30)
	v.SetDefault("pdf.format", "A4")
	v.SetDefault("pdf.margin", 1.0)
	v.SetDefault("pdf.scale", 1.0)
	v.SetDefault("pdf.print_background", true)

	v.SetDefault("report.rows_per_page", 25)
	v.SetDefault("report.truncate_at", 0)
	v.SetDefault("report.sample_seed", 1)
	v.SetDefault("report.max_sample_rows", 1000)
	v.SetDefault("report.header.report.title", "Planilla")

	v.SetDefault("spreadsheet.sheet_name", "Reporte")
	v.SetDefault("spreadsheet.file_name", "Reporte.xlsx")
	v.SetDefault("spreadsheet.col_width", 20)
}
