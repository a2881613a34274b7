package main

import (
	"github.com/gin-gonic/gin"

	"github.com/MikeMC777/shop-ecom/internal/auth"
	cat "github.com/MikeMC777/shop-ecom/internal/category"
	"github.com/MikeMC777/shop-ecom/internal/httpx"
	prod "github.com/MikeMC777/shop-ecom/internal/product"
)

// registerRoutes is shared by main and the handler tests.
func registerRoutes(r gin.IRouter, products prod.Repository, categories cat.Repository, v auth.Verifier) {
	admin := []gin.HandlerFunc{httpx.Authenticate(v), httpx.RequireAdmin()}

	p := r.Group("/products")
	p.GET("", getProductsHandler(products))
	p.GET("/count", productCountHandler(products))
	p.GET("/list", productListHandler(products))
	p.GET("/list/:page", productListHandler(products))
	p.GET("/search/:keyword", searchProductHandler(products))
	p.GET("/related/:pid/:cid", relatedProductsHandler(products))
	p.GET("/category/:slug", productsByCategoryHandler(products, categories))
	p.GET("/photo/:pid", productPhotoHandler(products))
	p.GET("/:slug", getProductHandler(products))
	p.POST("/filter", filterProductsHandler(products))
	p.POST("", append(admin, createProductHandler(products))...)
	p.PUT("/:pid", append(admin, updateProductHandler(products))...)
	p.DELETE("/:pid", append(admin, deleteProductHandler(products))...)

	cg := r.Group("/categories")
	cg.GET("", listCategoriesHandler(categories))
	cg.GET("/:slug", getCategoryHandler(categories))
	cg.POST("", append(admin, createCategoryHandler(categories))...)
	cg.PUT("/:id", append(admin, updateCategoryHandler(categories))...)
	cg.DELETE("/:id", append(admin, deleteCategoryHandler(categories))...)
}
