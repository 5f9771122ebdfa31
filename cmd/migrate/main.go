package main

import (
	"embed"
	"fmt"
	"os"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/asistpro/asistencia-backend-go/internal/config"
)

//go:embed migrations/*.sql
var migrations embed.FS

func main() {
	command := "up"
	if len(os.Args) > 1 {
		command = os.Args[1]
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	db, err := goose.OpenDBWithDriver("pgx", cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		os.Exit(1)
	}
	defer db.Close()

	goose.SetBaseFS(migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		fmt.Println("Error setting dialect:", err)
		os.Exit(1)
	}

	var args []string
	if len(os.Args) > 2 {
		args = os.Args[2:]
	}

	if err := goose.Run(command, db, "migrations", args...); err != nil {
		fmt.Printf("Migration %s failed: %v\n", command, err)
		os.Exit(1)
	}
}
