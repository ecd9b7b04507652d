package main

import (
	"database/sql"
	"fmt"
	"log"
	"os"

	"crm-assessment/internal/config"
	"crm-assessment/internal/database"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

// Standalone migration runner for deployments that apply schema changes
// before rolling the server, instead of relying on AUTO_MIGRATE at boot.
func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	if cfg.Database.IsSQLite() {
		log.Fatal("Migrations only apply to postgres; the sqlite demo database rebuilds itself on start")
	}

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer func() { _ = db.Close() }()

	runner := database.NewMigrationRunner(db)

	if err := runner.WaitForDatabase(); err != nil {
		log.Fatalf("Database never became ready: %v", err)
	}

	if len(os.Args) >= 2 && os.Args[1] == "status" {
		version, dirty, err := runner.GetMigrationStatus()
		if err != nil {
			log.Fatalf("Failed to read migration status: %v", err)
		}
		fmt.Printf("version=%d dirty=%v\n", version, dirty)
		return
	}

	if err := runner.RunMigrations(); err != nil {
		log.Fatalf("Migrations failed: %v", err)
	}

	fmt.Println("Migrations complete")
}
