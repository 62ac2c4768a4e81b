package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// getHome godoc
// @Summary Show the status of the API.
// @Description get the status of the API for the authenticated caller.
// @Tags root
// @Accept */*
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router / [get]
func getHome(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"message": "Property Management Backend API v1"})
}

// registerHomeRoutes registers the root status route of the versioned API.
func registerHomeRoutes(group *gin.RouterGroup) {
	group.GET("/", getHome)
}
