package main

import (
	"context"
	"log"
	"os"

	"github.com/avc/tscoins-wallet/internal/app"
)

func main() {
	ctx := context.Background()

	application, err := app.NewApp(ctx, os.Args[1:])
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	if err := application.Run(ctx); err != nil {
		log.Fatalf("Failed to run application: %v", err)
	}
}
