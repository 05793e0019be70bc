package controllers

import (
	"log"
	"net/http"

	"cohort-tools-be/internal/apperrors"

	"github.com/gin-gonic/gin"
)

// respondError is the single error-translation point: it maps the error kind
// to a status and a JSON {message} body. Unclassified errors are logged and
// answered with a generic 500 so internals never reach the client.
func respondError(c *gin.Context, err error) {
	status := apperrors.Status(err)
	if status == http.StatusInternalServerError {
		log.Printf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	}
	c.JSON(status, gin.H{"message": apperrors.Message(err)})
}

// respondBadBody answers malformed or incomplete request bodies.
func respondBadBody(c *gin.Context) {
	c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
}
