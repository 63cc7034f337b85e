package erpnext

import (
	"context"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestClient(t *testing.T) (*Client, *MockServer) {
	t.Helper()

	mock := NewMockServer()
	srv := httptest.NewServer(mock.Handler())
	t.Cleanup(srv.Close)

	return NewClient(Config{BaseURL: srv.URL}, zap.NewNop()), mock
}

func TestClient_CreateThenSubmitInvoice(t *testing.T) {
	client, _ := newTestClient(t)
	ctx := context.Background()

	created, err := client.CreateDocument(ctx, DoctypeSalesInvoice, map[string]any{
		"customer": "Test Customer",
		"company":  "DEMO",
	})
	require.NoError(t, err)
	assert.Equal(t, "SINV-2026-00001", created.Name)
	assert.Equal(t, 0, created.DocStatus)

	submitted, err := client.SubmitDocument(ctx, DoctypeSalesInvoice, created.Name)
	require.NoError(t, err)
	assert.Equal(t, created.Name, submitted.Name)
	assert.Equal(t, 1, submitted.DocStatus)
}

func TestClient_CreateThenSubmitPurchaseOrder(t *testing.T) {
	client, _ := newTestClient(t)
	ctx := context.Background()

	created, err := client.CreateDocument(ctx, DoctypePurchaseOrder, map[string]any{
		"supplier": "ABC Supplier",
	})
	require.NoError(t, err)
	assert.Equal(t, "PO-2026-00001", created.Name)
	assert.Equal(t, 0, created.DocStatus)

	submitted, err := client.SubmitDocument(ctx, DoctypePurchaseOrder, created.Name)
	require.NoError(t, err)
	assert.Equal(t, 1, submitted.DocStatus)
}

func TestClient_CompanyCurrency(t *testing.T) {
	client, _ := newTestClient(t)

	currency, err := client.CompanyCurrency(context.Background(), "DEMO")
	require.NoError(t, err)
	assert.Equal(t, "USD", currency)
}

func TestClient_GetDocument_NotFound(t *testing.T) {
	client, _ := newTestClient(t)

	_, err := client.GetDocument(context.Background(), DoctypeCustomer, "Missing Customer")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestClient_EnsureExists_CreatesMissingEntities(t *testing.T) {
	client, _ := newTestClient(t)
	ctx := context.Background()

	err := client.EnsureExists(ctx, DoctypeCustomer, "Test Customer", map[string]any{
		"customer_name": "Test Customer",
	})
	assert.NoError(t, err)

	err = client.EnsureExists(ctx, DoctypeItem, "TEST-ITEM-001", map[string]any{
		"item_code": "TEST-ITEM-001",
	})
	assert.NoError(t, err)
}

func TestClient_ConnectionRefused(t *testing.T) {
	client := NewClient(Config{BaseURL: "http://127.0.0.1:1"}, zap.NewNop())

	_, err := client.GetDocument(context.Background(), DoctypeCompany, "DEMO")
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrNotFound))
}

func TestMockServer_UnregisteredRouteIs404(t *testing.T) {
	client, _ := newTestClient(t)

	// "Sales Invoices" must not substring-match the "Sales Invoice" route
	_, err := client.CreateDocument(context.Background(), "Sales Invoices", nil)
	assert.Error(t, err)
}
