package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/skip2/go-qrcode"
)

type QRCodeController struct {
	frontendURL string
}

func NewQRCodeController(frontendURL string) *QRCodeController {
	return &QRCodeController{
		frontendURL: frontendURL,
	}
}

// GenerateCohortQRCode handles GET /api/cohorts/:id/qrcode - generates a QR
// code linking to the cohort's page on the frontend
func (qc *QRCodeController) GenerateCohortQRCode(c *gin.Context) {
	id := c.Param("id")

	cohortURL := qc.frontendURL + "/cohorts/" + id

	// 256x256 pixels, medium error recovery
	qrCode, err := qrcode.New(cohortURL, qrcode.Medium)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to generate QR code"})
		return
	}

	pngData, err := qrCode.PNG(256)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to generate QR code image"})
		return
	}

	c.Header("Content-Disposition", "inline; filename=qrcode.png")
	c.Data(http.StatusOK, "image/png", pngData)
}
