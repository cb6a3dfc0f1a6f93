package importer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"trendify-storefront/internal/domain"
	"trendify-storefront/internal/gateway"
)

// ProductWriter is the slice of the gateway the importer pushes through.
type ProductWriter interface {
	CreateProduct(ctx context.Context, in gateway.ProductInput, opts ...gateway.CallOption) (*domain.Product, error)
}

// JSONImporter reads a JSON array of products and creates each through the
// backend write path. Rows the backend rejects are skipped; transport-level
// failures abort the run, since every following row would hit the same wall.
type JSONImporter struct {
	decoder *json.Decoder
	catalog ProductWriter
	logger  *log.Logger
}

func NewJSONImporter(r io.Reader, catalog ProductWriter, logger *log.Logger) *JSONImporter {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &JSONImporter{
		decoder: json.NewDecoder(r),
		catalog: catalog,
		logger:  logger,
	}
}

// Run parses the input and creates the products, returning how many the
// backend accepted.
func (i *JSONImporter) Run(ctx context.Context) (int, error) {
	var rows []gateway.ProductInput
	if err := i.decoder.Decode(&rows); err != nil {
		return 0, fmt.Errorf("decode products: %w", err)
	}

	imported := 0
	for _, row := range rows {
		if err := validate(row); err != nil {
			i.logger.Printf("import: skipping %q: %v", row.Name, err)
			continue
		}
		created, err := i.catalog.CreateProduct(ctx, row)
		if err != nil {
			if gateway.KindOf(err) == gateway.KindClient {
				i.logger.Printf("import: backend rejected %q: %v", row.Name, err)
				continue
			}
			return imported, fmt.Errorf("create product %q: %w", row.Name, err)
		}
		i.logger.Printf("import: created %q as %s", created.Name, created.ID)
		imported++
	}

	return imported, nil
}

func validate(row gateway.ProductInput) error {
	if strings.TrimSpace(row.Name) == "" {
		return errors.New("name required")
	}
	if row.Price < 0 {
		return errors.New("price must not be negative")
	}
	return nil
}
