// Command pricebasket prices a basket described by a JSON operations
// document and prints the summary. Promotion codes honour the same PROMO_*
// environment variables as the API server.
//
//	pricebasket -file basket.json [-pretty]
//	cat basket.json | pricebasket -file -
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"basket-pricer/internal/config"
	"basket-pricer/internal/model"
	"basket-pricer/internal/promotion"
	"basket-pricer/internal/service"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	fs := flag.NewFlagSet("pricebasket", flag.ContinueOnError)
	file := fs.String("file", "-", "basket JSON file, or - for stdin")
	pretty := fs.Bool("pretty", false, "indent the JSON output")
	logLevel := fs.String("log-level", "warn", "log level (debug, info, warn, error)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	logger := config.NewLoggerWithOutput(config.LoggerConfig{Level: *logLevel, Format: "console"}, os.Stderr)

	in := stdin
	if *file != "-" {
		f, err := os.Open(*file)
		if err != nil {
			return fmt.Errorf("failed to open basket file: %w", err)
		}
		defer f.Close()
		in = f
	}

	var req model.PriceBasketRequest
	if err := json.NewDecoder(in).Decode(&req); err != nil {
		return fmt.Errorf("failed to decode basket: %w", err)
	}

	promo, err := config.LoadPromotion()
	if err != nil {
		return fmt.Errorf("failed to load promotion configuration: %w", err)
	}

	discounts, gifts := promotion.NewDefaultEngines(promo.Codes())
	pricingService := service.NewPricingService(discounts, gifts, nil, logger)

	resp, err := pricingService.PriceBasket(context.Background(), &req)
	if err != nil {
		return fmt.Errorf("failed to price basket: %w", err)
	}

	enc := json.NewEncoder(stdout)
	if *pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(resp)
}
