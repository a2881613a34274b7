package main

import (
	"github.com/gin-gonic/gin"

	"github.com/MikeMC777/shop-ecom/internal/auth"
	"github.com/MikeMC777/shop-ecom/internal/httpx"
	"github.com/MikeMC777/shop-ecom/internal/user"
)

func registerRoutes(r gin.IRouter, svc *user.Service, v auth.Verifier) {
	a := r.Group("/auth")
	a.POST("/register", registerHandler(svc))
	a.POST("/login", loginHandler(svc))

	signedIn := a.Group("", httpx.Authenticate(v))
	signedIn.GET("/user-auth", okHandler)
	signedIn.GET("/admin-auth", httpx.RequireAdmin(), okHandler)
	signedIn.PUT("/profile", updateProfileHandler(svc))
}
