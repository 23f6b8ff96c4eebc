package db

import (
	"context"
	"database/sql"
	"log"

	"backend/internal/config"

	"golang.org/x/crypto/bcrypt"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS events (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(200) NOT NULL,
		category VARCHAR(100) NOT NULL,
		description TEXT,
		venue VARCHAR(200) NOT NULL,
		date DATETIME NOT NULL,
		total_seats INT NOT NULL,
		available_seats INT NOT NULL,
		price DECIMAL(10,2) NOT NULL,
		thumbnail VARCHAR(500),
		status VARCHAR(50) NOT NULL DEFAULT 'Active',
		created_at DATETIME NOT NULL
	) ENGINE=InnoDB`,
	`CREATE TABLE IF NOT EXISTS users (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(100) NOT NULL,
		email VARCHAR(120) NOT NULL,
		phone VARCHAR(20),
		password_hash VARCHAR(100),
		role VARCHAR(50) NOT NULL DEFAULT 'user',
		status VARCHAR(50) NOT NULL DEFAULT 'active',
		created_at DATETIME NOT NULL,
		UNIQUE KEY uq_users_email (email)
	) ENGINE=InnoDB`,
	`CREATE TABLE IF NOT EXISTS bookings (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		event_id BIGINT NOT NULL,
		user_id BIGINT NOT NULL,
		tickets INT NOT NULL,
		total_amount DECIMAL(10,2) NOT NULL,
		status VARCHAR(50) NOT NULL DEFAULT 'confirmed',
		booking_date DATETIME NOT NULL,
		CONSTRAINT fk_bookings_event FOREIGN KEY (event_id) REFERENCES events(id) ON DELETE CASCADE,
		CONSTRAINT fk_bookings_user FOREIGN KEY (user_id) REFERENCES users(id)
	) ENGINE=InnoDB`,
}

// EnsureSchema creates the three tables on first run and seeds the admin
// account when its email is absent.
func EnsureSchema(ctx context.Context, conn *sql.DB, env config.Env) error {
	for _, stmt := range schemaStatements {
		if _, err := conn.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return seedAdmin(ctx, conn, env)
}

func seedAdmin(ctx context.Context, conn *sql.DB, env config.Env) error {
	var id int64
	err := conn.QueryRowContext(ctx,
		`SELECT id FROM users WHERE email = ? LIMIT 1`, env.AdminEmail).Scan(&id)
	if err == nil {
		return nil
	}
	if err != sql.ErrNoRows {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(env.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	_, err = conn.ExecContext(ctx, `
		INSERT INTO users (name, email, password_hash, role, status, created_at)
		VALUES ('Admin User', ?, ?, 'admin', 'active', UTC_TIMESTAMP())`,
		env.AdminEmail, string(hash))
	if err != nil {
		return err
	}
	log.Printf("seeded default admin user %s", env.AdminEmail)
	return nil
}
