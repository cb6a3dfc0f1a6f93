package importer

import (
	"context"
	"errors"
	"strings"
	"testing"

	"trendify-storefront/internal/domain"
	"trendify-storefront/internal/gateway"
)

type stubWriter struct {
	created []gateway.ProductInput
	fail    func(in gateway.ProductInput) error
}

func (s *stubWriter) CreateProduct(_ context.Context, in gateway.ProductInput, _ ...gateway.CallOption) (*domain.Product, error) {
	if s.fail != nil {
		if err := s.fail(in); err != nil {
			return nil, err
		}
	}
	s.created = append(s.created, in)
	return &domain.Product{ID: "generated", Name: in.Name, Price: in.Price}, nil
}

func TestRunImportsEveryValidRow(t *testing.T) {
	input := `[
		{"name":"Tee","price":19.99,"category":"tops"},
		{"name":"Hoodie","price":49.5}
	]`
	writer := &stubWriter{}

	count, err := NewJSONImporter(strings.NewReader(input), writer, nil).Run(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 2 || len(writer.created) != 2 {
		t.Fatalf("expected 2 imports, got count=%d created=%d", count, len(writer.created))
	}
	if writer.created[0].Name != "Tee" || writer.created[1].Name != "Hoodie" {
		t.Fatalf("unexpected rows: %+v", writer.created)
	}
}

func TestRunSkipsInvalidRows(t *testing.T) {
	input := `[
		{"name":"","price":10},
		{"name":"Negative","price":-1},
		{"name":"Tee","price":19.99}
	]`
	writer := &stubWriter{}

	count, err := NewJSONImporter(strings.NewReader(input), writer, nil).Run(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 1 || len(writer.created) != 1 || writer.created[0].Name != "Tee" {
		t.Fatalf("expected only the valid row, got %+v", writer.created)
	}
}

func TestRunSkipsBackendRejections(t *testing.T) {
	input := `[
		{"name":"Rejected","price":10},
		{"name":"Accepted","price":20}
	]`
	writer := &stubWriter{fail: func(in gateway.ProductInput) error {
		if in.Name == "Rejected" {
			return &gateway.Error{Kind: gateway.KindClient, StatusCode: 422, Message: "duplicate"}
		}
		return nil
	}}

	count, err := NewJSONImporter(strings.NewReader(input), writer, nil).Run(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 1 || writer.created[0].Name != "Accepted" {
		t.Fatalf("expected the rejected row skipped, got count=%d created=%+v", count, writer.created)
	}
}

func TestRunAbortsOnTransportFailure(t *testing.T) {
	input := `[
		{"name":"First","price":10},
		{"name":"Down","price":20},
		{"name":"Never","price":30}
	]`
	writer := &stubWriter{fail: func(in gateway.ProductInput) error {
		if in.Name == "Down" {
			return &gateway.Error{Kind: gateway.KindServer, StatusCode: 503, Message: "backend down"}
		}
		return nil
	}}

	count, err := NewJSONImporter(strings.NewReader(input), writer, nil).Run(context.Background())
	if !errors.Is(err, &gateway.Error{Kind: gateway.KindServer}) {
		t.Fatalf("expected server error, got %v", err)
	}
	if count != 1 || len(writer.created) != 1 {
		t.Fatalf("expected the run to stop after the failure, got count=%d created=%d", count, len(writer.created))
	}
}

func TestRunRejectsMalformedInput(t *testing.T) {
	writer := &stubWriter{}
	if _, err := NewJSONImporter(strings.NewReader(`{not json`), writer, nil).Run(context.Background()); err == nil {
		t.Fatalf("expected decode error")
	}
	if len(writer.created) != 0 {
		t.Fatalf("nothing should be created on malformed input")
	}
}
