package db

import (
	"testing"

	"github.com/yungbote/contracts-data-backend/internal/pkg/logger"
)

func TestPostgresDSN(t *testing.T) {
	got := postgresDSN(Config{User: "u", Password: "p", Host: "h", Port: "5432", Name: "contracts"})
	want := "postgres://u:p@h:5432/contracts?sslmode=disable"
	if got != want {
		t.Fatalf("postgresDSN: got=%q want=%q", got, want)
	}
}

func TestPostgresDSNEscapesCredentials(t *testing.T) {
	got := postgresDSN(Config{User: "svc", Password: "p@ss:w/rd", Host: "db", Port: "5432", Name: "contracts", SSLMode: "require"})
	want := "postgres://svc:p%40ss%3Aw%2Frd@db:5432/contracts?sslmode=require"
	if got != want {
		t.Fatalf("postgresDSN: got=%q want=%q", got, want)
	}
}

func TestOpenRejectsUnknownDriver(t *testing.T) {
	if _, err := Open(Config{Driver: "oracle"}, logger.Nop()); err == nil {
		t.Fatalf("expected error for unknown driver")
	}
}

func TestOpenSQLiteAndMigrate(t *testing.T) {
	gdb, err := Open(Config{Driver: DriverSQLite, SQLitePath: "file:db_test?mode=memory&cache=shared"}, logger.Nop())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := AutoMigrateAll(gdb); err != nil {
		t.Fatalf("AutoMigrateAll: %v", err)
	}
	if !gdb.Migrator().HasTable("contract") || !gdb.Migrator().HasTable("contract_content") {
		t.Fatalf("expected contract tables to exist")
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		t.Fatalf("DB: %v", err)
	}
	t.Cleanup(func() { _ = sqlDB.Close() })
	if got := sqlDB.Stats().MaxOpenConnections; got != 1 {
		t.Fatalf("sqlite pool should hold a single connection, max open=%d", got)
	}
}
