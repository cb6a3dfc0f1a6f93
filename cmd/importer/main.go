package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"trendify-storefront/internal/config"
	"trendify-storefront/internal/gateway"
	"trendify-storefront/internal/importer"
)

func main() {
	var filePath string
	flag.StringVar(&filePath, "file", "", "Path to a JSON array of products to import")
	flag.Parse()

	if filePath == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[importer] ", log.LstdFlags|log.LUTC)
	ctx := context.Background()

	client, err := gateway.New(cfg.APIBaseURL,
		gateway.WithLogger(logger),
		gateway.WithTimeout(cfg.APITimeout),
		gateway.WithMaxRetries(cfg.APIMaxRetries),
	)
	if err != nil {
		log.Fatalf("init gateway: %v", err)
	}

	f, err := os.Open(filePath)
	if err != nil {
		log.Fatalf("open file: %v", err)
	}
	defer f.Close()

	imp := importer.NewJSONImporter(f, client, logger)

	start := time.Now()
	count, err := imp.Run(ctx)
	if err != nil {
		log.Fatalf("import failed after %d products: %v", count, err)
	}

	fmt.Printf("Imported %d products in %s\n", count, time.Since(start).Truncate(time.Millisecond))
}
