package main

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/MikeMC777/shop-ecom/internal/httpx"
	"github.com/MikeMC777/shop-ecom/internal/order"
	"github.com/MikeMC777/shop-ecom/internal/payment"
)

const (
	defaultLimit = 20
	maxLimit     = 100
)

// gatewayFailed answers 500 with the gateway's error object when there is one.
func gatewayFailed(c *gin.Context, message string, err error) {
	var pe *payment.Error
	if errors.As(err, &pe) {
		c.AbortWithStatusJSON(http.StatusInternalServerError, pe)
		return
	}
	httpx.JSONError(c, http.StatusInternalServerError, message, err)
}

// GET /payment/token
func clientTokenHandler(co *order.Checkout) gin.HandlerFunc {
	return func(c *gin.Context) {
		tok, err := co.ClientToken(c.Request.Context())
		if err != nil {
			gatewayFailed(c, "could not create client token", err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "clientToken": tok})
	}
}

// POST /payment {nonce, cart}. The buyer comes from the token, never from the body.
func paymentHandler(co *order.Checkout) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req order.PaymentRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			httpx.JSONError(c, http.StatusBadRequest, "invalid payment request", err)
			return
		}

		_, err := co.Pay(c.Request.Context(), httpx.UserID(c), req.Nonce, req.Cart)
		var (
			cartErr    *order.CartError
			persistErr *order.PersistError
		)
		switch {
		case err == nil:
			c.JSON(http.StatusOK, gin.H{"ok": true})
		case errors.As(err, &cartErr):
			httpx.JSONError(c, http.StatusBadRequest, cartErr.Error(), nil)
		case errors.As(err, &persistErr):
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"ok":          false,
				"error":       "order could not be recorded",
				"transaction": persistErr.TransactionID,
			})
		default:
			gatewayFailed(c, "payment failed", err)
		}
	}
}

// GET /orders
func buyerOrdersHandler(repo order.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := repo.ListByBuyer(c.Request.Context(), httpx.UserID(c))
		if err != nil {
			httpx.JSONError(c, http.StatusInternalServerError, "Error While Getting Orders", err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "orders": items})
	}
}

// GET /orders/all?limit=&offset=
func allOrdersHandler(repo order.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultLimit)))
		if err != nil || limit < 1 {
			httpx.JSONError(c, http.StatusBadRequest, "limit must be a positive integer", nil)
			return
		}
		if limit > maxLimit {
			limit = maxLimit
		}
		offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
		if err != nil || offset < 0 {
			httpx.JSONError(c, http.StatusBadRequest, "offset must be zero or more", nil)
			return
		}
		items, err := repo.ListAll(c.Request.Context(), limit, offset)
		if err != nil {
			httpx.JSONError(c, http.StatusInternalServerError, "Error While Getting Orders", err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "orders": items})
	}
}
