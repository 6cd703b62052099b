// Package docs registers the Swagger document served at /swagger.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "API Support"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/auth/register": {"post": {"tags": ["Auth"], "summary": "Register new user", "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}}}},
        "/auth/login": {"post": {"tags": ["Auth"], "summary": "Login user", "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}}},
        "/auth/logout": {"post": {"tags": ["Auth"], "summary": "Logout user", "responses": {"200": {"description": "OK"}}}},
        "/auth/me": {"get": {"security": [{"BearerAuth": []}], "tags": ["Auth"], "summary": "Get current user", "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}}}},
        "/books": {
            "get": {"tags": ["Books"], "summary": "List books", "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["Books"], "summary": "Create book", "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}}}
        },
        "/books/search": {"get": {"tags": ["Books"], "summary": "Search books", "responses": {"200": {"description": "OK"}}}},
        "/books/{id}": {
            "get": {"tags": ["Books"], "summary": "Get book", "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}},
            "put": {"security": [{"BearerAuth": []}], "tags": ["Books"], "summary": "Update book", "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}},
            "delete": {"security": [{"BearerAuth": []}], "tags": ["Books"], "summary": "Delete book", "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}
        },
        "/books/{id}/read": {"get": {"tags": ["Books"], "summary": "Read book", "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}},
        "/authors": {"get": {"tags": ["Books"], "summary": "List authors", "responses": {"200": {"description": "OK"}}}},
        "/borrows": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["Borrows"], "summary": "List all borrows", "responses": {"200": {"description": "OK"}, "403": {"description": "Forbidden"}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["Borrows"], "summary": "Borrow a book", "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}, "403": {"description": "Forbidden"}, "404": {"description": "Not Found"}}}
        },
        "/borrows/{borrowId}/return": {"put": {"security": [{"BearerAuth": []}], "tags": ["Borrows"], "summary": "Return a book", "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "404": {"description": "Not Found"}}}},
        "/borrows/user/{userId}": {"get": {"security": [{"BearerAuth": []}], "tags": ["Borrows"], "summary": "List a user's borrows", "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "403": {"description": "Forbidden"}}}},
        "/news": {
            "get": {"tags": ["News"], "summary": "List news", "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["News"], "summary": "Create news", "responses": {"201": {"description": "Created"}}}
        },
        "/news/{id}": {
            "get": {"tags": ["News"], "summary": "Get news", "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}},
            "put": {"security": [{"BearerAuth": []}], "tags": ["News"], "summary": "Update news", "responses": {"200": {"description": "OK"}}},
            "delete": {"security": [{"BearerAuth": []}], "tags": ["News"], "summary": "Delete news", "responses": {"200": {"description": "OK"}}}
        },
        "/users/{userId}": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["Users"], "summary": "Get user profile", "responses": {"200": {"description": "OK"}, "403": {"description": "Forbidden"}}},
            "put": {"security": [{"BearerAuth": []}], "tags": ["Users"], "summary": "Update user profile", "responses": {"200": {"description": "OK"}}}
        },
        "/users/{userId}/password": {"put": {"security": [{"BearerAuth": []}], "tags": ["Users"], "summary": "Change password", "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}}},
        "/users/{userId}/avatar": {"put": {"security": [{"BearerAuth": []}], "tags": ["Users"], "summary": "Update avatar", "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}},
        "/users/{userId}/stats": {"get": {"security": [{"BearerAuth": []}], "tags": ["Users"], "summary": "User borrow stats", "responses": {"200": {"description": "OK"}}}},
        "/users/{userId}/heartbeat": {"post": {"security": [{"BearerAuth": []}], "tags": ["Users"], "summary": "User heartbeat", "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}},
        "/users/{userId}/favorites": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["Users"], "summary": "List favorites", "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["Users"], "summary": "Add favorite", "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "404": {"description": "Not Found"}}}
        },
        "/users/{userId}/favorites/{bookId}": {"delete": {"security": [{"BearerAuth": []}], "tags": ["Users"], "summary": "Remove favorite", "responses": {"200": {"description": "OK"}}}},
        "/admin/stats": {"get": {"security": [{"BearerAuth": []}], "tags": ["Dashboard"], "summary": "Admin Dashboard", "responses": {"200": {"description": "OK"}, "403": {"description": "Forbidden"}}}},
        "/admin/users": {"get": {"security": [{"BearerAuth": []}], "tags": ["Users"], "summary": "List users", "responses": {"200": {"description": "OK"}}}},
        "/admin/users/{userId}": {"delete": {"security": [{"BearerAuth": []}], "tags": ["Users"], "summary": "Delete user", "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "404": {"description": "Not Found"}}}},
        "/admin/users/{userId}/role": {"put": {"security": [{"BearerAuth": []}], "tags": ["Users"], "summary": "Update user role", "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "404": {"description": "Not Found"}}}},
        "/admin/logs": {"get": {"security": [{"BearerAuth": []}], "tags": ["Dashboard"], "summary": "Activity log", "responses": {"200": {"description": "OK"}, "403": {"description": "Forbidden"}}}},
        "/system/reset": {"post": {"security": [{"BearerAuth": []}], "tags": ["System"], "summary": "Reset sample data", "responses": {"200": {"description": "OK"}, "403": {"description": "Forbidden"}}}},
        "/health": {"get": {"tags": ["Health"], "summary": "Health check", "responses": {"200": {"description": "OK"}, "503": {"description": "Service Unavailable"}}}}
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Type \"Bearer\" followed by a space and JWT token.",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api",
	Schemes:          []string{"http", "https"},
	Title:            "LiteraryHub API",
	Description:      "Thư viện văn học Việt Nam: danh mục sách, mượn trả, tin tức.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
