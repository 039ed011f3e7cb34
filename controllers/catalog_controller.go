package controllers

import (
	"net/http"

	"marketplace-service/services"

	"github.com/gin-gonic/gin"
)

type CatalogController struct {
	catalogService services.CatalogService
}

func NewCatalogController(catalogService services.CatalogService) *CatalogController {
	return &CatalogController{catalogService: catalogService}
}

func (cc *CatalogController) CreateProduct(ctx *gin.Context) {
	var req services.CreateProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	product, serviceErr := cc.catalogService.CreateProduct(ctx.Request.Context(), &req)
	if serviceErr != nil {
		ctx.JSON(serviceErr.StatusCode, gin.H{"error": serviceErr.Message})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"product": product})
}

func (cc *CatalogController) GetOwnerProducts(ctx *gin.Context) {
	ownerID, ok := parseUUIDParam(ctx, "userId")
	if !ok {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID format"})
		return
	}

	products, serviceErr := cc.catalogService.GetOwnerProducts(ctx.Request.Context(), ownerID)
	if serviceErr != nil {
		ctx.JSON(serviceErr.StatusCode, gin.H{"error": serviceErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"products": products})
}

func (cc *CatalogController) CreateService(ctx *gin.Context) {
	var req services.CreateServiceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	service, serviceErr := cc.catalogService.CreateService(ctx.Request.Context(), &req)
	if serviceErr != nil {
		ctx.JSON(serviceErr.StatusCode, gin.H{"error": serviceErr.Message})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"service": service})
}

func (cc *CatalogController) GetOwnerServices(ctx *gin.Context) {
	ownerID, ok := parseUUIDParam(ctx, "userId")
	if !ok {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID format"})
		return
	}

	services, serviceErr := cc.catalogService.GetOwnerServices(ctx.Request.Context(), ownerID)
	if serviceErr != nil {
		ctx.JSON(serviceErr.StatusCode, gin.H{"error": serviceErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"services": services})
}
