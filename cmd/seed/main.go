package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"

	"clinic-api/pkg/utils"
)

// Seeds the two bootstrap accounts. Safe to re-run: existing phones are
// updated in place, never duplicated.
func main() {
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	db, err := sql.Open("pgx", config.Database.DSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	seedUser(db, "Belal", "01203376449", "belal@gmail.com", "admin", "password123")
	seedUser(db, "Ahmed", "01203376448", "ahmed@gmail.com", "user", "password123")
}

func seedUser(db *sql.DB, name, phone, email, role, password string) {
	hash, err := utils.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	var id string
	err = db.QueryRow(`
		INSERT INTO users (id, name, phone, email, password, role, must_change_password, created_at, updated_at)
		VALUES (gen_random_uuid(), $1, $2, $3, $4, $5, FALSE, NOW(), NOW())
		ON CONFLICT (phone) DO UPDATE SET name = EXCLUDED.name, updated_at = NOW()
		RETURNING id
	`, name, phone, email, hash, role).Scan(&id)
	if err != nil {
		log.Fatalf("failed to seed user %s: %v", phone, err)
	}

	fmt.Printf("seeded user: id=%s phone=%s role=%s\n", id, phone, role)
}
