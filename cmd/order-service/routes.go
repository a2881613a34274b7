package main

import (
	"github.com/gin-gonic/gin"

	"github.com/MikeMC777/shop-ecom/internal/auth"
	"github.com/MikeMC777/shop-ecom/internal/httpx"
	"github.com/MikeMC777/shop-ecom/internal/order"
)

func registerRoutes(r gin.IRouter, co *order.Checkout, orders order.Repository, v auth.Verifier) {
	r.GET("/payment/token", clientTokenHandler(co))
	r.POST("/payment", httpx.Authenticate(v), paymentHandler(co))

	o := r.Group("/orders", httpx.Authenticate(v))
	o.GET("", buyerOrdersHandler(orders))
	o.GET("/all", httpx.RequireAdmin(), allOrdersHandler(orders))
}
