package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/om3692/SAT/internal/app"
	"github.com/om3692/SAT/internal/catalog"
	"github.com/om3692/SAT/internal/db"
)

func main() {
	cfg := app.LoadConfig()

	dbConn, err := db.OpenPostgresWithConfig(context.Background(), cfg.DBDSN, db.PostgresConfig{
		MaxOpenConns:    cfg.DBMaxOpenConns,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.DBConnMaxLifeMins) * time.Minute,
	})
	if err != nil {
		log.Printf("database error: %v", err)
		os.Exit(1)
	}
	defer dbConn.Close()

	if err := db.EnsureSchema(context.Background(), dbConn); err != nil {
		log.Printf("schema error: %v", err)
		os.Exit(1)
	}

	cat, err := catalog.Load()
	if err != nil {
		log.Printf("question catalog error: %v", err)
		os.Exit(1)
	}

	r := app.NewRouter(cfg, dbConn, cat)

	log.Printf("sat web listening on %s (%d questions loaded)", cfg.HTTPAddr, cat.Len())
	if err := http.ListenAndServe(cfg.HTTPAddr, r); err != nil {
		log.Printf("server stopped: %v", err)
		os.Exit(1)
	}
}
