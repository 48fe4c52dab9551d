package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gabiazevedomeli/projeto-integrador-req-6/models"
	"github.com/gabiazevedomeli/projeto-integrador-req-6/requests"
	"github.com/gabiazevedomeli/projeto-integrador-req-6/service"
)

type cartController struct {
	carts service.CartService
}

func NewCartController(carts service.CartService) Controller {
	return &cartController{carts: carts}
}

func (o *cartController) Register(r *gin.Engine) {
	group := r.Group("/api/v1/fresh-products/orders")
	group.POST("", o.Create)
	group.GET("/:cartId", o.Get)
	group.PUT("/:cartId", o.Finish)
}

func (o *cartController) Create(c *gin.Context) {
	receivedCart := requests.CreateCart{}
	err := c.ShouldBindBodyWithJSON(&receivedCart)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errors.Join(err, errors.New("failed to parse body")).Error()})
		return
	}

	date, err := time.Parse(time.DateOnly, receivedCart.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be in YYYY-MM-DD format"})
		return
	}

	products := make([]models.CartProductInput, 0, len(receivedCart.Products))
	for _, product := range receivedCart.Products {
		products = append(products, models.CartProductInput{
			ProductID: product.ProductID,
			Quantity:  product.Quantity,
		})
	}

	total, err := o.carts.CreateCart(c.Request.Context(), models.CartCreateRequest{
		BuyerID:  receivedCart.BuyerID,
		Date:     date,
		Status:   models.CartStatus(receivedCart.Status),
		Products: products,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, total)
}

func (o *cartController) Get(c *gin.Context) {
	cartID, err := strconv.ParseInt(c.Param("cartId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid cart id"})
		return
	}

	cart, err := o.carts.GetCartByID(c.Request.Context(), cartID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, cart)
}

func (o *cartController) Finish(c *gin.Context) {
	cartID, err := strconv.ParseInt(c.Param("cartId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid cart id"})
		return
	}

	status, err := o.carts.UpdateStatusCart(c.Request.Context(), cartID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, status)
}
