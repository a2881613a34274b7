package main

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	cat "github.com/MikeMC777/shop-ecom/internal/category"
	"github.com/MikeMC777/shop-ecom/internal/httpx"
)

func bindCategory(c *gin.Context) (string, bool) {
	var req cat.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.JSONError(c, http.StatusBadRequest, "invalid body", err)
		return "", false
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"success": false, "message": "Name is required"})
		return "", false
	}
	return name, true
}

// POST /categories
func createCategoryHandler(repo cat.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		name, ok := bindCategory(c)
		if !ok {
			return
		}
		category := &cat.Category{ID: uuid.NewString(), Name: name, Slug: cat.Slugify(name)}
		if err := repo.Create(c.Request.Context(), category); err != nil {
			if errors.Is(err, cat.ErrAlreadyExists) {
				c.JSON(http.StatusOK, gin.H{"success": true, "message": "Category Already Exists"})
				return
			}
			httpx.JSONError(c, http.StatusInternalServerError, "Error in Category", err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"success": true, "message": "new category created", "category": category})
	}
}

// PUT /categories/:id
func updateCategoryHandler(repo cat.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		name, ok := bindCategory(c)
		if !ok {
			return
		}
		category, err := repo.Rename(c.Request.Context(), c.Param("id"), name)
		switch {
		case errors.Is(err, cat.ErrNotFound):
			httpx.JSONError(c, http.StatusNotFound, "Category not found", nil)
			return
		case errors.Is(err, cat.ErrAlreadyExists):
			httpx.JSONError(c, http.StatusConflict, "Category Already Exists", nil)
			return
		case err != nil:
			httpx.JSONError(c, http.StatusInternalServerError, "Error while updating category", err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Category Updated Successfully", "category": category})
	}
}

// GET /categories
func listCategoriesHandler(repo cat.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := repo.List(c.Request.Context())
		if err != nil {
			httpx.JSONError(c, http.StatusInternalServerError, "Error while getting all categories", err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "All Categories List", "category": items})
	}
}

// GET /categories/:slug
func getCategoryHandler(repo cat.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		category, err := repo.GetBySlug(c.Request.Context(), c.Param("slug"))
		if err != nil {
			if errors.Is(err, cat.ErrNotFound) {
				httpx.JSONError(c, http.StatusNotFound, "Category not found", nil)
				return
			}
			httpx.JSONError(c, http.StatusInternalServerError, "Error While getting Single Category", err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Get Single Category Successfully", "category": category})
	}
}

// DELETE /categories/:id
func deleteCategoryHandler(repo cat.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		ok, err := repo.Delete(c.Request.Context(), c.Param("id"))
		if err != nil {
			httpx.JSONError(c, http.StatusInternalServerError, "error while deleting category", err)
			return
		}
		if !ok {
			httpx.JSONError(c, http.StatusNotFound, "Category not found", nil)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Category Deleted Successfully"})
	}
}
