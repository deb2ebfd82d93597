// Package docs registra a especificação OpenAPI servida em /swagger
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
    "paths": {
        "/api/category": {
            "get": {"tags": ["categories"], "summary": "List product categories", "produces": ["application/json"],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/dto.CategoryResponse"}}}}}
        },
        "/api/product": {
            "get": {"tags": ["products"], "summary": "List products", "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "description": "case-insensitive title substring", "name": "name", "in": "query"},
                    {"type": "string", "description": "KAESE, SALAMI or BROT", "name": "category", "in": "query"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/dto.ProductResponse"}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["products"], "summary": "Create a product",
                "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"description": "product", "name": "product", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.ProductRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ProductResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}}}
        },
        "/api/product/{id}": {
            "get": {"tags": ["products"], "summary": "Get a product", "produces": ["application/json"],
                "parameters": [{"type": "integer", "description": "product id", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ProductResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}}},
            "put": {"security": [{"BearerAuth": []}], "tags": ["products"], "summary": "Replace a product",
                "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [
                    {"type": "integer", "description": "product id", "name": "id", "in": "path", "required": true},
                    {"description": "product", "name": "product", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.ProductRequest"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ProductResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}}},
            "delete": {"security": [{"BearerAuth": []}], "tags": ["products"], "summary": "Delete a product",
                "parameters": [{"type": "integer", "description": "product id", "name": "id", "in": "path", "required": true}],
                "responses": {"204": {"description": "No Content"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}}}
        },
        "/api/recipes": {
            "get": {"tags": ["recipes"], "summary": "List recipes", "produces": ["application/json"],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/dto.RecipeResponse"}}}}}
        },
        "/api/recipes/{id}": {
            "get": {"tags": ["recipes"], "summary": "Get a recipe", "produces": ["application/json"],
                "parameters": [{"type": "integer", "description": "recipe id", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.RecipeResponse"}}}},
            "put": {"security": [{"BearerAuth": []}], "tags": ["recipes"], "summary": "Update a recipe",
                "parameters": [
                    {"type": "integer", "description": "recipe id", "name": "id", "in": "path", "required": true},
                    {"description": "recipe", "name": "recipe", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.RecipeRequest"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.RecipeResponse"}}}},
            "delete": {"security": [{"BearerAuth": []}], "tags": ["recipes"], "summary": "Delete a recipe",
                "parameters": [{"type": "integer", "description": "recipe id", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}}}
        },
        "/api/products/{id}/recipes": {
            "get": {"tags": ["recipes"], "summary": "List recipes of a product",
                "parameters": [{"type": "integer", "description": "product id", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/dto.RecipeResponse"}}}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["recipes"], "summary": "Create a recipe for a product",
                "parameters": [
                    {"type": "integer", "description": "product id", "name": "id", "in": "path", "required": true},
                    {"description": "recipe", "name": "recipe", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.RecipeRequest"}}
                ],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.RecipeResponse"}}}}
        },
        "/api/review": {
            "get": {"tags": ["reviews"], "summary": "List reviews",
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/dto.ReviewResponse"}}}}},
            "post": {"tags": ["reviews"], "summary": "Create a review",
                "parameters": [{"description": "review", "name": "review", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.ReviewRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ReviewResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}}}
        },
        "/api/review/product/{id}": {
            "get": {"tags": ["reviews"], "summary": "List reviews of a product",
                "parameters": [{"type": "integer", "description": "product id", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/dto.ReviewResponse"}}}}}
        },
        "/api/review/{id}": {
            "delete": {"tags": ["reviews"], "summary": "Delete a review",
                "parameters": [{"type": "integer", "description": "review id", "name": "id", "in": "path", "required": true}],
                "responses": {"204": {"description": "No Content"}}}
        },
        "/api/favorites": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["favorites"], "summary": "List my favorites",
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/dto.FavoriteResponse"}}}}}
        },
        "/api/favorites/ids": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["favorites"], "summary": "List my favorite recipe ids",
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"type": "integer"}}}}}
        },
        "/api/favorites/count": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["favorites"], "summary": "Count my favorites",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.CountResponse"}}}}
        },
        "/api/favorites/check/{id}": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["favorites"], "summary": "Check whether a recipe is a favorite",
                "parameters": [{"type": "integer", "description": "recipe id", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.FavoriteCheckResponse"}}}}
        },
        "/api/favorites/toggle/{id}": {
            "post": {"security": [{"BearerAuth": []}], "tags": ["favorites"], "summary": "Toggle a favorite",
                "parameters": [{"type": "integer", "description": "recipe id", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.FavoriteToggleResponse"}}}}
        },
        "/api/favorites/{id}": {
            "post": {"security": [{"BearerAuth": []}], "tags": ["favorites"], "summary": "Add a favorite",
                "parameters": [{"type": "integer", "description": "recipe id", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.FavoriteResponse"}},
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.FavoriteResponse"}}}},
            "delete": {"security": [{"BearerAuth": []}], "tags": ["favorites"], "summary": "Remove a favorite",
                "parameters": [{"type": "integer", "description": "recipe id", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.MessageResponse"}}}}
        },
        "/api/favorites/admin/all": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["favorites"], "summary": "List all favorites",
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/dto.AdminFavoriteResponse"}}}}}
        },
        "/api/favorites/admin/stats": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["favorites"], "summary": "Favorite statistics",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.FavoriteStatsResponse"}}}}
        },
        "/api/profile": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["profile"], "summary": "Get my profile",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.UserResponse"}}}},
            "put": {"security": [{"BearerAuth": []}], "tags": ["profile"], "summary": "Update my profile",
                "parameters": [{"description": "profile", "name": "profile", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.UpdateProfileRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.UserResponse"}}}}
        },
        "/api/users": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["users"], "summary": "List users",
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/dto.UserResponse"}}}}}
        },
        "/api/users/{id}": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["users"], "summary": "Get a user",
                "parameters": [{"type": "integer", "description": "user id", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.UserResponse"}}}},
            "put": {"security": [{"BearerAuth": []}], "tags": ["users"], "summary": "Update a user",
                "parameters": [
                    {"type": "integer", "description": "user id", "name": "id", "in": "path", "required": true},
                    {"description": "user", "name": "user", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.UpdateUserRequest"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.UserResponse"}}}}
        },
        "/health": {
            "get": {"tags": ["operations"], "summary": "Health check",
                "responses": {"200": {"description": "OK"}, "503": {"description": "Service Unavailable"}}}
        }
    },
    "definitions": {
        "dto.CategoryResponse": {"type": "object", "properties": {"name": {"type": "string"}, "germanName": {"type": "string"}}},
        "dto.ProductRequest": {"type": "object", "required": ["title", "category"], "properties": {
            "title": {"type": "string"}, "description": {"type": "string"}, "category": {"type": "string", "enum": ["KAESE", "SALAMI", "BROT"]},
            "price": {"type": "number"}, "imageUrl": {"type": "string"}, "imageUrlDetails": {"type": "string"}, "ingredients": {"type": "string"}}},
        "dto.ProductResponse": {"type": "object", "properties": {
            "id": {"type": "integer"}, "title": {"type": "string"}, "description": {"type": "string"}, "category": {"type": "string"},
            "price": {"type": "number"}, "imageUrl": {"type": "string"}, "imageUrlDetails": {"type": "string"}, "ingredients": {"type": "string"},
            "createdAt": {"type": "string"}, "updatedAt": {"type": "string"}}},
        "dto.RecipeRequest": {"type": "object", "required": ["title"], "properties": {
            "title": {"type": "string"}, "text": {"type": "string"}, "pdfUrl": {"type": "string"}, "youtubeUrl": {"type": "string"}}},
        "dto.RecipeResponse": {"type": "object", "properties": {
            "id": {"type": "integer"}, "title": {"type": "string"}, "text": {"type": "string"}, "pdfUrl": {"type": "string"},
            "youtubeUrl": {"type": "string"}, "productId": {"type": "integer"}, "createdAt": {"type": "string"}, "updatedAt": {"type": "string"}}},
        "dto.ReviewRequest": {"type": "object", "properties": {
            "stars": {"type": "integer"}, "text": {"type": "string"}, "userName": {"type": "string"}, "productId": {"type": "integer"},
            "product": {"type": "object", "properties": {"id": {"type": "integer"}}}}},
        "dto.ReviewResponse": {"type": "object", "properties": {
            "id": {"type": "integer"}, "stars": {"type": "integer"}, "text": {"type": "string"}, "userName": {"type": "string"},
            "productId": {"type": "integer"}, "createdAt": {"type": "string"}}},
        "dto.FavoriteResponse": {"type": "object", "properties": {
            "id": {"type": "integer"}, "recipeId": {"type": "integer"}, "recipeTitle": {"type": "string"}, "recipeText": {"type": "string"},
            "recipePdfUrl": {"type": "string"}, "productId": {"type": "integer"}, "productTitle": {"type": "string"},
            "productImageUrl": {"type": "string"}, "createdAt": {"type": "string"}}},
        "dto.AdminFavoriteResponse": {"allOf": [{"$ref": "#/definitions/dto.FavoriteResponse"},
            {"type": "object", "properties": {"userId": {"type": "integer"}, "userName": {"type": "string"}}}]},
        "dto.FavoriteCheckResponse": {"type": "object", "properties": {"isFavorite": {"type": "boolean"}}},
        "dto.FavoriteToggleResponse": {"type": "object", "properties": {"isFavorite": {"type": "boolean"}, "message": {"type": "string"}}},
        "dto.FavoriteStatsResponse": {"type": "object", "properties": {
            "totalFavorites": {"type": "integer"}, "totalUsers": {"type": "integer"}, "averagePerUser": {"type": "number"}}},
        "dto.CountResponse": {"type": "object", "properties": {"count": {"type": "integer"}}},
        "dto.MessageResponse": {"type": "object", "properties": {"message": {"type": "string"}}},
        "dto.UpdateProfileRequest": {"type": "object", "properties": {"name": {"type": "string"}, "email": {"type": "string"}}},
        "dto.UpdateUserRequest": {"type": "object", "properties": {
            "name": {"type": "string"}, "email": {"type": "string"}, "role": {"type": "string", "enum": ["ADMIN", "REGULAR"]}}},
        "dto.UserResponse": {"type": "object", "properties": {
            "id": {"type": "integer"}, "email": {"type": "string"}, "name": {"type": "string"}, "oauthId": {"type": "string"},
            "role": {"type": "string"}, "createdAt": {"type": "string"}}},
        "dto.ValidationError": {"type": "object", "properties": {"field": {"type": "string"}, "message": {"type": "string"}, "tag": {"type": "string"}}},
        "dto.ErrorResponse": {"type": "object", "properties": {
            "type": {"type": "string"}, "title": {"type": "string"}, "status": {"type": "integer"}, "detail": {"type": "string"},
            "instance": {"type": "string"}, "errors": {"type": "array", "items": {"$ref": "#/definitions/dto.ValidationError"}}}}
    },
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    }
}`

// SwaggerInfo guarda as informações exportadas do spec
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Casellese Catalog API",
	Description:      "Product catalog with recipes, reviews and per-user favorites.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
