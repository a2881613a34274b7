package main

import (
	"errors"
	"math"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	cat "github.com/MikeMC777/shop-ecom/internal/category"
	"github.com/MikeMC777/shop-ecom/internal/httpx"
	prod "github.com/MikeMC777/shop-ecom/internal/product"
)

const perPage = 6

// readProductForm collects the multipart fields; fh is nil when no photo was sent.
func readProductForm(c *gin.Context) (prod.Input, *multipart.FileHeader) {
	in := prod.Input{
		Name:        c.PostForm("name"),
		Description: c.PostForm("description"),
		Price:       c.PostForm("price"),
		Category:    c.PostForm("category"),
		Quantity:    c.PostForm("quantity"),
		Shipping:    c.PostForm("shipping"),
	}
	fh, err := c.FormFile("photo")
	if err != nil {
		return in, nil
	}
	in.PhotoSize = fh.Size
	return in, fh
}

// validationFailed answers {success:false, error:<message>} for a *prod.ValidationError.
func validationFailed(c *gin.Context, err error) bool {
	var ve *prod.ValidationError
	if !errors.As(err, &ve) {
		return false
	}
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"success": false, "error": ve.Message})
	return true
}

// attachPhoto reads the upload into in.Photo once validation has passed.
func attachPhoto(c *gin.Context, in *prod.Input, fh *multipart.FileHeader) bool {
	if fh == nil {
		return true
	}
	ph, err := prod.ReadPhoto(fh)
	if err != nil {
		httpx.JSONError(c, http.StatusBadRequest, "could not read photo", err)
		return false
	}
	in.Photo = ph
	return true
}

// knownCategoryID rejects ids that cannot name a category before the repository sees them.
func knownCategoryID(c *gin.Context, id string) bool {
	if _, err := uuid.Parse(id); err != nil {
		httpx.JSONError(c, http.StatusBadRequest, "Category not found", err)
		return false
	}
	return true
}

// POST /products (multipart)
func createProductHandler(repo prod.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		in, fh := readProductForm(c)
		if err := prod.ValidateCreate(in); validationFailed(c, err) {
			return
		}
		if !attachPhoto(c, &in, fh) {
			return
		}
		p := &prod.Product{ID: uuid.NewString()}
		if err := in.Apply(p); validationFailed(c, err) {
			return
		}
		if !knownCategoryID(c, p.CategoryID) {
			return
		}
		if err := repo.Create(c.Request.Context(), p); err != nil {
			if errors.Is(err, prod.ErrCategoryNotFound) {
				httpx.JSONError(c, http.StatusBadRequest, "Category not found", err)
				return
			}
			httpx.JSONError(c, http.StatusInternalServerError, "Error in creating product", err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Product Created Successfully", "products": p})
	}
}

// PUT /products/:pid (multipart). Without a new photo the stored one is kept.
func updateProductHandler(repo prod.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		in, fh := readProductForm(c)
		if err := prod.ValidateUpdate(in); validationFailed(c, err) {
			return
		}
		if !attachPhoto(c, &in, fh) {
			return
		}
		p := &prod.Product{ID: c.Param("pid")}
		if err := in.Apply(p); validationFailed(c, err) {
			return
		}
		if !knownCategoryID(c, p.CategoryID) {
			return
		}
		if err := repo.Update(c.Request.Context(), p); err != nil {
			switch {
			case errors.Is(err, prod.ErrNotFound):
				httpx.JSONError(c, http.StatusNotFound, "Product not found", nil)
			case errors.Is(err, prod.ErrCategoryNotFound):
				httpx.JSONError(c, http.StatusBadRequest, "Category not found", err)
			default:
				httpx.JSONError(c, http.StatusInternalServerError, "Error in updating product", err)
			}
			return
		}
		c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Product Updated Successfully", "products": p})
	}
}

// GET /products
func getProductsHandler(repo prod.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := repo.List(c.Request.Context(), prod.Query{Populate: true})
		if err != nil {
			httpx.JSONError(c, http.StatusInternalServerError, "Error encountered while getting all products.", err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "products": items})
	}
}

// GET /products/:slug
func getProductHandler(repo prod.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, err := repo.GetBySlug(c.Request.Context(), c.Param("slug"))
		if err != nil {
			if errors.Is(err, prod.ErrNotFound) {
				httpx.JSONError(c, http.StatusNotFound, "Product not found", nil)
				return
			}
			httpx.JSONError(c, http.StatusInternalServerError, "Error encountered while getting single product.", err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Single Product Fetched", "product": p})
	}
}

// GET /products/photo/:pid
func productPhotoHandler(repo prod.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		ph, err := repo.GetPhoto(c.Request.Context(), c.Param("pid"))
		switch {
		case errors.Is(err, prod.ErrNotFound):
			httpx.JSONError(c, http.StatusNotFound, "Product not found", nil)
			return
		case err != nil:
			httpx.JSONError(c, http.StatusInternalServerError, "Error encountered while getting product photo.", err)
			return
		case len(ph.Data) == 0:
			c.Status(http.StatusNoContent)
			return
		}
		ct := ph.ContentType
		if ct == "" {
			ct = "application/octet-stream"
		}
		c.Data(http.StatusOK, ct, ph.Data)
	}
}

// DELETE /products/:pid
func deleteProductHandler(repo prod.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		ok, err := repo.Delete(c.Request.Context(), c.Param("pid"))
		if err != nil {
			httpx.JSONError(c, http.StatusInternalServerError, "Error while deleting product", err)
			return
		}
		if !ok {
			httpx.JSONError(c, http.StatusNotFound, "Product not found", nil)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Product Deleted successfully"})
	}
}

// POST /products/filter {checked:[categoryId], radio:[low, high]}
func filterProductsHandler(repo prod.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req prod.FilterRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			httpx.JSONError(c, http.StatusBadRequest, "Error While Filtering Products", err)
			return
		}
		f, err := prod.NewFilter(req.Checked, req.Radio)
		if err != nil {
			httpx.JSONError(c, http.StatusBadRequest, "Error While Filtering Products", err)
			return
		}
		items, err := repo.List(c.Request.Context(), prod.Query{Filter: f})
		if err != nil {
			httpx.JSONError(c, http.StatusBadRequest, "Error While Filtering Products", err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "products": items})
	}
}

// GET /products/count
func productCountHandler(repo prod.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		n, err := repo.Count(c.Request.Context())
		if err != nil {
			httpx.JSONError(c, http.StatusInternalServerError, "Error encountered while counting all products.", err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "total": n})
	}
}

// GET /products/list/:page, six per page, page defaults to 1
func productListHandler(repo prod.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		page := 1
		if raw := strings.TrimSpace(c.Param("page")); raw != "" {
			n, err := strconv.Atoi(raw)
			// a larger page would overflow the offset
			if err != nil || n < 1 || n > math.MaxInt/perPage {
				httpx.JSONError(c, http.StatusBadRequest, "error in per page ctrl", errors.New("page must be a positive integer"))
				return
			}
			page = n
		}
		items, err := repo.List(c.Request.Context(), prod.Query{Limit: perPage, Offset: (page - 1) * perPage})
		if err != nil {
			httpx.JSONError(c, http.StatusBadRequest, "error in per page ctrl", err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "products": items})
	}
}

// GET /products/search/:keyword answers a bare array.
func searchProductHandler(repo prod.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		kw := strings.TrimSpace(c.Param("keyword"))
		if kw == "" {
			httpx.JSONError(c, http.StatusBadRequest, "Error In Search Product API", errors.New("keyword is required"))
			return
		}
		items, err := repo.List(c.Request.Context(), prod.Query{Q: kw})
		if err != nil {
			httpx.JSONError(c, http.StatusBadRequest, "Error In Search Product API", err)
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

// GET /products/related/:pid/:cid
func relatedProductsHandler(repo prod.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := repo.List(c.Request.Context(), prod.Query{
			Filter:    prod.Filter{CategoryIDs: []string{c.Param("cid")}},
			ExcludeID: c.Param("pid"),
			Limit:     3,
			Populate:  true,
		})
		if err != nil {
			httpx.JSONError(c, http.StatusBadRequest, "error while geting related product", err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "products": items})
	}
}

// GET /products/category/:slug
func productsByCategoryHandler(products prod.Repository, categories cat.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		category, err := categories.GetBySlug(c.Request.Context(), c.Param("slug"))
		if err != nil {
			if errors.Is(err, cat.ErrNotFound) {
				httpx.JSONError(c, http.StatusNotFound, "Category not found", nil)
				return
			}
			httpx.JSONError(c, http.StatusBadRequest, "Error While Getting products", err)
			return
		}
		items, err := products.List(c.Request.Context(), prod.Query{
			Filter:   prod.Filter{CategoryIDs: []string{category.ID}},
			Populate: true,
		})
		if err != nil {
			httpx.JSONError(c, http.StatusBadRequest, "Error While Getting products", err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "category": category, "products": items})
	}
}
