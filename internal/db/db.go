package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"backend/internal/config"

	_ "github.com/go-sql-driver/mysql"
)

// Open connects to MySQL and verifies the connection. The returned handle is
// owned by the caller and injected into repositories; there is no package
// level connection.
func Open(env config.Env) (*sql.DB, error) {
	auth := env.DBUser
	if env.DBPassword != "" {
		auth = fmt.Sprintf("%s:%s", env.DBUser, env.DBPassword)
	}
	// parseTime=true -> DATETIME scans into time.Time; loc=UTC keeps every
	// stored timestamp UTC end to end.
	dsn := fmt.Sprintf("%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=UTC",
		auth, env.DBHost, env.DBPort, env.DBName)

	conn, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}

	conn.SetMaxOpenConns(25)
	conn.SetMaxIdleConns(25)
	conn.SetConnMaxLifetime(10 * time.Minute)
	conn.SetConnMaxIdleTime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, err
	}
	return conn, nil
}
