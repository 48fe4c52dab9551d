package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gabiazevedomeli/projeto-integrador-req-6/models"
	"github.com/gabiazevedomeli/projeto-integrador-req-6/service"
)

type stubProductService struct {
	views     []models.ProductView
	stock     *models.ProductStockResponse
	warehouse *models.ProductWarehouseStock
	update    *models.UpdateProductResponse
	err       error

	gotCategory string
	gotOrder    byte
	gotChanges  map[string]any
}

func (s *stubProductService) ListAllProducts(context.Context) ([]models.ProductView, error) {
	return s.views, s.err
}

func (s *stubProductService) ListByCategory(_ context.Context, category string) ([]models.ProductView, error) {
	s.gotCategory = category
	return s.views, s.err
}

func (s *stubProductService) FindProductsByCategoryName(_ context.Context, categoryName string) ([]models.ProductView, error) {
	s.gotCategory = categoryName
	return s.views, s.err
}

func (s *stubProductService) AggregateStockByWarehouse(context.Context, int64) (*models.ProductWarehouseStock, error) {
	return s.warehouse, s.err
}

func (s *stubProductService) GetProductWithSortedBatches(_ context.Context, _ int64, order byte) (*models.ProductStockResponse, error) {
	s.gotOrder = order
	return s.stock, s.err
}

func (s *stubProductService) CreateProducts(context.Context, []models.NewProductInput) ([]models.ProductView, error) {
	return s.views, s.err
}

func (s *stubProductService) PartialUpdate(_ context.Context, _ int64, changes map[string]any) (*models.UpdateProductResponse, error) {
	s.gotChanges = changes
	return s.update, s.err
}

func newProductRouter(stub *stubProductService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewProductController(stub).Register(r)
	return r
}

func TestListAllProductsRoute(t *testing.T) {
	stub := &stubProductService{views: []models.ProductView{
		{ID: 1, Name: "Apple", Type: "Fresh", CategoryName: "Fruits", Price: 20.1},
	}}
	r := newProductRouter(stub)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/fresh-products", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var got []models.ProductView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "Apple", got[0].Name)
}

func TestListAllProductsRouteNotFound(t *testing.T) {
	stub := &stubProductService{err: service.NotFound("No Products Found")}
	r := newProductRouter(stub)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/fresh-products", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error": "No Products Found"}`, w.Body.String())
}

func TestCreateProductsRoute(t *testing.T) {
	stub := &stubProductService{views: []models.ProductView{
		{ID: 1, Name: "Apple", Type: "Fresh", CategoryName: "Fruits", Price: 20.1},
	}}
	r := newProductRouter(stub)

	body := `[{"name": "Apple", "type": "Fresh", "category_name": "Fruits", "price": 20.1}]`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/fresh-products/create-products", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
}

func TestCreateProductsRouteRejectsInvalidBody(t *testing.T) {
	r := newProductRouter(&stubProductService{})

	// price below the minimum fails binding before the service runs
	body := `[{"name": "Apple", "type": "Fresh", "category_name": "Fruits", "price": 0.5}]`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/fresh-products/create-products", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateProductsRouteDuplicateForbidden(t *testing.T) {
	stub := &stubProductService{err: service.Forbidden("The product Apple already exists.")}
	r := newProductRouter(stub)

	body := `[{"name": "Apple", "type": "Fresh", "category_name": "Fruits", "price": 20.1}]`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/fresh-products/create-products", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusForbidden, w.Code)
}

func TestPartialUpdateRoute(t *testing.T) {
	stub := &stubProductService{update: &models.UpdateProductResponse{
		Message: "The product Apple was successfully updated!",
	}}
	r := newProductRouter(stub)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/fresh-products/update-product/1", strings.NewReader(`{"price": 25.0}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, map[string]any{"price": 25.0}, stub.gotChanges)
}

func TestPartialUpdateRouteInvalidID(t *testing.T) {
	r := newProductRouter(&stubProductService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/fresh-products/update-product/abc", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBatchesWithOrderRoute(t *testing.T) {
	stub := &stubProductService{stock: &models.ProductStockResponse{ProductID: 1}}
	r := newProductRouter(stub)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/fresh-products/list/1?order=Q", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, byte('Q'), stub.gotOrder)
}

func TestBatchesWithOrderRouteDefaultsOrder(t *testing.T) {
	stub := &stubProductService{stock: &models.ProductStockResponse{ProductID: 1}}
	r := newProductRouter(stub)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/fresh-products/list/1", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, byte('V'), stub.gotOrder)
}

func TestListByCategoryRouteUsesPathParam(t *testing.T) {
	stub := &stubProductService{views: []models.ProductView{{ID: 1, Name: "Apple"}}}
	r := newProductRouter(stub)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/fresh-products/Fresh", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Fresh", stub.gotCategory)
}

func TestStockByWarehouseRoute(t *testing.T) {
	stub := &stubProductService{warehouse: &models.ProductWarehouseStock{
		ProductID: 1,
		Warehouses: []models.WarehouseTotal{
			{WarehouseCode: 100, TotalQuantity: 12},
		},
	}}
	r := newProductRouter(stub)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/fresh-products/warehouse/product/1", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var got models.ProductWarehouseStock
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got.Warehouses, 1)
	assert.Equal(t, 12, got.Warehouses[0].TotalQuantity)
}
