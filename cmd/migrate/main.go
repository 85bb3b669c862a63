package main

import (
	"database/sql"
	_ "embed"
	"fmt"
	"os"

	"locations-api/internal/config"

	_ "github.com/lib/pq"
)

//go:embed schema.sql
var schema string

func main() {
	cfg, err := config.LoadConfig("configs")
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	db, err := sql.Open("postgres", cfg.DBSource)
	if err != nil {
		fmt.Printf("Error opening database: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		fmt.Printf("Error connecting to database: %v\n", err)
		os.Exit(1)
	}

	if _, err := db.Exec(schema); err != nil {
		fmt.Printf("Error applying schema: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Schema applied successfully")
}
