package erpnext

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// MockServer mimics the document system for tests and local frontend
// development. Every endpoint is an explicit method+path registration; there
// is no substring dispatch, so an unregistered route is a plain 404 instead
// of silently matching a lookalike path.
type MockServer struct {
	engine *gin.Engine

	// InvoiceName and PurchaseOrderName are the references handed out on
	// creation.
	InvoiceName       string
	PurchaseOrderName string
}

// NewMockServer creates a mock document system with the canonical fixtures.
func NewMockServer() *MockServer {
	gin.SetMode(gin.TestMode)

	m := &MockServer{
		engine:            gin.New(),
		InvoiceName:       "SINV-2026-00001",
		PurchaseOrderName: "PO-2026-00001",
	}
	m.registerRoutes()
	return m
}

// Handler exposes the server as an http.Handler for httptest or a net
// listener.
func (m *MockServer) Handler() http.Handler {
	return m.engine
}

func (m *MockServer) registerRoutes() {
	r := m.engine

	// company lookup feeds the read-only currency field
	r.GET("/api/resource/Company/:name", func(c *gin.Context) {
		data(c, gin.H{"name": c.Param("name"), "default_currency": "USD"})
	})

	// entity lookups miss so the gateway exercises its create-on-404 path
	r.GET("/api/resource/Customer/:name", notFound)
	r.GET("/api/resource/Supplier/:name", notFound)
	r.GET("/api/resource/Item/:name", notFound)

	r.POST("/api/resource/Customer", m.createEntity)
	r.POST("/api/resource/Supplier", m.createEntity)
	r.POST("/api/resource/Item", m.createEntity)

	r.POST("/api/resource/Sales Invoice", func(c *gin.Context) {
		data(c, gin.H{"name": m.InvoiceName, "docstatus": 0})
	})
	r.POST("/api/resource/Purchase Order", func(c *gin.Context) {
		data(c, gin.H{"name": m.PurchaseOrderName, "docstatus": 0})
	})

	r.PUT("/api/resource/Sales Invoice/:name", submitDocument)
	r.PUT("/api/resource/Purchase Order/:name", submitDocument)
}

func (m *MockServer) createEntity(c *gin.Context) {
	var body map[string]any
	name := "Created"
	if err := c.ShouldBindJSON(&body); err == nil {
		for _, key := range []string{"name", "customer_name", "supplier_name", "item_code"} {
			if v, ok := body[key].(string); ok && v != "" {
				name = v
				break
			}
		}
	}
	data(c, gin.H{"name": name})
}

func submitDocument(c *gin.Context) {
	data(c, gin.H{"name": c.Param("name"), "docstatus": 1})
}

func notFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"exc": "Not Found"})
}

func data(c *gin.Context, payload gin.H) {
	c.JSON(http.StatusOK, gin.H{"data": payload})
}
