package db

import (
	"net/url"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func postgresDSN(cfg Config) string {
	sslMode := cfg.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	host := cfg.Host
	if cfg.Port != "" {
		host += ":" + cfg.Port
	}
	dsn := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(cfg.User, cfg.Password),
		Host:     host,
		Path:     "/" + cfg.Name,
		RawQuery: url.Values{"sslmode": []string{sslMode}}.Encode(),
	}
	return dsn.String()
}

func postgresDialector(cfg Config) gorm.Dialector {
	return postgres.Open(postgresDSN(cfg))
}
