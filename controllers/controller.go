package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gabiazevedomeli/projeto-integrador-req-6/service"
)

type Controller interface {
	Register(r *gin.Engine)
}

// respondError maps business error codes to HTTP statuses. Anything
// unclassified is an internal error.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch service.CodeOf(err) {
	case service.CodeNotFound:
		status = http.StatusNotFound
	case service.CodeForbidden:
		status = http.StatusForbidden
	case service.CodeConflict:
		status = http.StatusConflict
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
