// Package docs registers the OpenAPI document served under /swagger by every service.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    },
    "paths": {
        "/products": {
            "get": {"tags": ["products"], "summary": "Latest products, category populated, no photo", "responses": {"200": {"description": "OK"}}},
            "post": {
                "tags": ["products"], "summary": "Create product (multipart, photo <= 1MB)", "security": [{"BearerAuth": []}],
                "consumes": ["multipart/form-data"],
                "parameters": [
                    {"name": "name", "in": "formData", "type": "string", "required": true},
                    {"name": "description", "in": "formData", "type": "string", "required": true},
                    {"name": "price", "in": "formData", "type": "string", "required": true},
                    {"name": "category", "in": "formData", "type": "string", "required": true},
                    {"name": "quantity", "in": "formData", "type": "string", "required": true},
                    {"name": "shipping", "in": "formData", "type": "string"},
                    {"name": "photo", "in": "formData", "type": "file"}
                ],
                "responses": {"201": {"description": "Created"}, "400": {"description": "Validation", "schema": {"$ref": "#/definitions/product.HTTPError"}}}
            }
        },
        "/products/{slug}": {
            "get": {"tags": ["products"], "summary": "Product by slug", "parameters": [{"name": "slug", "in": "path", "type": "string", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}}
        },
        "/products/{pid}": {
            "put": {"tags": ["products"], "summary": "Replace product (multipart)", "security": [{"BearerAuth": []}], "parameters": [{"name": "pid", "in": "path", "type": "string", "required": true}], "responses": {"201": {"description": "Updated"}, "404": {"description": "Not found"}}},
            "delete": {"tags": ["products"], "summary": "Delete product", "security": [{"BearerAuth": []}], "parameters": [{"name": "pid", "in": "path", "type": "string", "required": true}], "responses": {"200": {"description": "Deleted"}, "404": {"description": "Not found"}}}
        },
        "/products/photo/{pid}": {
            "get": {"tags": ["products"], "summary": "Raw photo bytes", "produces": ["image/*"], "parameters": [{"name": "pid", "in": "path", "type": "string", "required": true}], "responses": {"200": {"description": "Image"}, "204": {"description": "No photo"}, "404": {"description": "Not found"}}}
        },
        "/products/filter": {
            "post": {"tags": ["products"], "summary": "Filter by categories and price range", "parameters": [{"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/product.FilterRequest"}}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/product.ListResponse"}}, "400": {"description": "Bad filter"}}}
        },
        "/products/count": {
            "get": {"tags": ["products"], "summary": "Approximate product count", "responses": {"200": {"description": "OK"}}}
        },
        "/products/list/{page}": {
            "get": {"tags": ["products"], "summary": "Page of 6 products, newest first", "parameters": [{"name": "page", "in": "path", "type": "integer", "required": true}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/product.ListResponse"}}}}
        },
        "/products/search/{keyword}": {
            "get": {"tags": ["products"], "summary": "Case-insensitive search on name or description", "parameters": [{"name": "keyword", "in": "path", "type": "string", "required": true}], "responses": {"200": {"description": "Array of products"}}}
        },
        "/products/related/{pid}/{cid}": {
            "get": {"tags": ["products"], "summary": "Up to 3 products from the same category", "parameters": [{"name": "pid", "in": "path", "type": "string", "required": true}, {"name": "cid", "in": "path", "type": "string", "required": true}], "responses": {"200": {"description": "OK"}}}
        },
        "/products/category/{slug}": {
            "get": {"tags": ["products"], "summary": "Category and its products", "parameters": [{"name": "slug", "in": "path", "type": "string", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}}
        },
        "/categories": {
            "get": {"tags": ["categories"], "summary": "All categories", "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["categories"], "summary": "Create category", "security": [{"BearerAuth": []}], "parameters": [{"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/category.CategoryRequest"}}], "responses": {"201": {"description": "Created"}, "200": {"description": "Already exists"}}}
        },
        "/categories/{id}": {
            "put": {"tags": ["categories"], "summary": "Rename category", "security": [{"BearerAuth": []}], "parameters": [{"name": "id", "in": "path", "type": "string", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}},
            "delete": {"tags": ["categories"], "summary": "Delete category", "security": [{"BearerAuth": []}], "parameters": [{"name": "id", "in": "path", "type": "string", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}}
        },
        "/payment/token": {
            "get": {"tags": ["payment"], "summary": "Gateway client token", "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/order.TokenResponse"}}, "500": {"description": "Gateway error"}}}
        },
        "/payment": {
            "post": {"tags": ["payment"], "summary": "Charge the cart total and record the order", "security": [{"BearerAuth": []}], "parameters": [{"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/order.PaymentRequest"}}], "responses": {"200": {"description": "{ok:true}"}, "400": {"description": "Bad cart"}, "500": {"description": "Gateway error"}}}
        },
        "/orders": {
            "get": {"tags": ["orders"], "summary": "Orders of the caller", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}}
        },
        "/orders/all": {
            "get": {"tags": ["orders"], "summary": "All orders (admin)", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}}
        },
        "/auth/register": {
            "post": {"tags": ["auth"], "summary": "Register buyer", "parameters": [{"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/user.RegisterRequest"}}], "responses": {"201": {"description": "Created"}, "409": {"description": "Email taken"}}}
        },
        "/auth/login": {
            "post": {"tags": ["auth"], "summary": "Login and get a token", "parameters": [{"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/user.LoginRequest"}}], "responses": {"200": {"description": "OK"}, "401": {"description": "Bad credentials"}}}
        },
        "/auth/profile": {
            "put": {"tags": ["auth"], "summary": "Update own profile", "security": [{"BearerAuth": []}], "parameters": [{"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/user.ProfileRequest"}}], "responses": {"200": {"description": "OK"}}}
        }
    },
    "definitions": {
        "product.HTTPError": {"type": "object", "properties": {"success": {"type": "boolean"}, "message": {"type": "string"}, "error": {"type": "string"}}},
        "product.FilterRequest": {"type": "object", "properties": {"checked": {"type": "array", "items": {"type": "string"}}, "radio": {"type": "array", "items": {"type": "number"}}}},
        "product.ListResponse": {"type": "object", "properties": {"success": {"type": "boolean"}, "products": {"type": "array", "items": {"type": "object"}}}},
        "category.CategoryRequest": {"type": "object", "properties": {"name": {"type": "string", "example": "Electronics"}}},
        "order.PaymentRequest": {"type": "object", "properties": {"nonce": {"type": "string"}, "cart": {"type": "array", "items": {"type": "object"}}}},
        "order.TokenResponse": {"type": "object", "properties": {"clientToken": {"type": "string"}}},
        "user.RegisterRequest": {"type": "object", "properties": {"name": {"type": "string"}, "email": {"type": "string"}, "password": {"type": "string"}, "phone": {"type": "string"}, "address": {"type": "string"}}},
        "user.LoginRequest": {"type": "object", "properties": {"email": {"type": "string"}, "password": {"type": "string"}}},
        "user.ProfileRequest": {"type": "object", "properties": {"name": {"type": "string"}, "password": {"type": "string"}, "phone": {"type": "string"}, "address": {"type": "string"}}}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Shop e-commerce API",
	Description:      "Products, categories, checkout and buyer accounts.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
