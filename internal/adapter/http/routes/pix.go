package routes

import (
	"github.com/cietz/laranjinhao/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPix = "/pix"
)

func addPixRoutes(rg *gin.RouterGroup, pixHandler *handlers.PixHandler, webhookHandler *handlers.WebhookHandler) {
	pix := rg.Group(PathPix)
	{
		pix.POST("", pixHandler.CreateCharge)
		pix.GET("", pixHandler.GetChargeStatus)
		pix.POST("/webhook", webhookHandler.Receive)
	}
}
