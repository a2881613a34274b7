package main

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MikeMC777/shop-ecom/internal/httpx"
	"github.com/MikeMC777/shop-ecom/internal/user"
)

// serviceError maps user.Service errors onto status codes.
func serviceError(c *gin.Context, message string, err error) {
	var inv *user.InvalidError
	switch {
	case errors.As(err, &inv):
		httpx.JSONError(c, http.StatusBadRequest, inv.Message, nil)
	case errors.Is(err, user.ErrAlreadyExist):
		httpx.JSONError(c, http.StatusConflict, "Already Register please login", nil)
	case errors.Is(err, user.ErrBadCredentials):
		httpx.JSONError(c, http.StatusUnauthorized, "Invalid email or password", nil)
	case errors.Is(err, user.ErrNotFound):
		httpx.JSONError(c, http.StatusNotFound, "User not found", nil)
	default:
		httpx.JSONError(c, http.StatusInternalServerError, message, err)
	}
}

// POST /auth/register
func registerHandler(svc *user.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req user.RegisterRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			httpx.JSONError(c, http.StatusBadRequest, "invalid body", err)
			return
		}
		u, err := svc.Register(c.Request.Context(), req)
		if err != nil {
			serviceError(c, "Error in Registration", err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"success": true, "message": "User Register Successfully", "user": u})
	}
}

// POST /auth/login
func loginHandler(svc *user.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req user.LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			httpx.JSONError(c, http.StatusBadRequest, "invalid body", err)
			return
		}
		u, token, err := svc.Login(c.Request.Context(), req)
		if err != nil {
			serviceError(c, "Error in login", err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "login successfully", "user": u, "token": token})
	}
}

// GET /auth/user-auth and /auth/admin-auth; the middleware chain does the work.
func okHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// PUT /auth/profile
func updateProfileHandler(svc *user.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req user.ProfileRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			httpx.JSONError(c, http.StatusBadRequest, "invalid body", err)
			return
		}
		u, err := svc.UpdateProfile(c.Request.Context(), httpx.UserID(c), req)
		if err != nil {
			serviceError(c, "Error While Update profile", err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Profile Updated Successfully", "updatedUser": u})
	}
}
