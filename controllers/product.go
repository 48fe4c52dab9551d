package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/gabiazevedomeli/projeto-integrador-req-6/models"
	"github.com/gabiazevedomeli/projeto-integrador-req-6/requests"
	"github.com/gabiazevedomeli/projeto-integrador-req-6/service"
)

type productController struct {
	products service.ProductService
}

func NewProductController(products service.ProductService) Controller {
	return &productController{products: products}
}

func (p *productController) Register(r *gin.Engine) {
	group := r.Group("/api/v1")
	group.GET("/fresh-products", p.ListAll)
	group.POST("/fresh-products/create-products", p.Create)
	group.GET("/fresh-products/category/:categoryName", p.ListByCategoryName)
	group.PATCH("/fresh-products/update-product/:productId", p.PartialUpdate)
	group.GET("/fresh-products/:category", p.ListByCategory)
	group.GET("/fresh-products/warehouse/product/:productId", p.StockByWarehouse)
	group.GET("/fresh-products/list/:id", p.BatchesWithOrder)
}

func (p *productController) ListAll(c *gin.Context) {
	products, err := p.products.ListAllProducts(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, products)
}

func (p *productController) ListByCategory(c *gin.Context) {
	products, err := p.products.ListByCategory(c.Request.Context(), c.Param("category"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, products)
}

func (p *productController) ListByCategoryName(c *gin.Context) {
	products, err := p.products.FindProductsByCategoryName(c.Request.Context(), c.Param("categoryName"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, products)
}

func (p *productController) Create(c *gin.Context) {
	var received []requests.NewProduct
	err := c.ShouldBindBodyWithJSON(&received)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errors.Join(err, errors.New("failed to parse body")).Error()})
		return
	}

	inputs := make([]models.NewProductInput, 0, len(received))
	for _, product := range received {
		inputs = append(inputs, models.NewProductInput{
			Name:         product.Name,
			Type:         product.Type,
			CategoryName: product.CategoryName,
			Price:        product.Price,
		})
	}

	created, err := p.products.CreateProducts(c.Request.Context(), inputs)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (p *productController) PartialUpdate(c *gin.Context) {
	productID, err := strconv.ParseInt(c.Param("productId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return
	}

	changes := map[string]any{}
	if err := c.ShouldBindBodyWithJSON(&changes); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errors.Join(err, errors.New("failed to parse body")).Error()})
		return
	}

	updated, err := p.products.PartialUpdate(c.Request.Context(), productID, changes)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

func (p *productController) StockByWarehouse(c *gin.Context) {
	productID, err := strconv.ParseInt(c.Param("productId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return
	}

	stock, err := p.products.AggregateStockByWarehouse(c.Request.Context(), productID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, stock)
}

func (p *productController) BatchesWithOrder(c *gin.Context) {
	productID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return
	}

	order := byte('V')
	if v := c.Query("order"); v != "" {
		order = v[0]
	}

	stock, err := p.products.GetProductWithSortedBatches(c.Request.Context(), productID, order)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, stock)
}
