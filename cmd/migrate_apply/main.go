package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"taskboard/internal/db"
	"taskboard/internal/logger"
	"taskboard/internal/migrations"
)

func main() {
	apply := flag.Bool("apply", false, "apply migrations")
	flag.Parse()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		logger.Fatal("DATABASE_URL not set")
	}

	driver, _, err := db.Driver(dsn)
	if err != nil {
		logger.Fatal("bad DATABASE_URL", "error", err)
	}

	if !*apply {
		migs, err := migrations.For(driver)
		if err != nil {
			logger.Fatal("load migrations", "error", err)
		}
		for _, m := range migs {
			fmt.Println(m.Name)
		}
		return
	}

	ctx := context.Background()
	h, err := db.Open(ctx, dsn)
	if err != nil {
		logger.Fatal("connect failed", "error", err)
	}
	defer h.Close()

	if err := h.Migrate(ctx); err != nil {
		logger.Fatal("migrate failed", "error", err)
	}
	fmt.Printf("applied %s migrations\n", driver)
}
