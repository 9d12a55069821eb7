// Package docs registers the OpenAPI description of the mock backend with
// swag so echo-swagger can serve it under /swagger/.
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
        "/Authentication/Login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Login",
                "parameters": [
                    {
                        "description": "Login credentials",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/mockapi.loginRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/mockapi.loginResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/mockapi.messageResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/mockapi.messageResponse"}}
                }
            }
        },
        "/Users": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "List users",
                "parameters": [
                    {"type": "string", "description": "Substring of name, username, email or phone", "name": "search", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/mockapi.userListResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/mockapi.messageResponse"}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Create user",
                "parameters": [
                    {"description": "New user", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/mockapi.userRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/mockapi.userResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/mockapi.messageResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/mockapi.messageResponse"}}
                }
            }
        },
        "/Users/{id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Get user",
                "parameters": [{"type": "string", "description": "User ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/mockapi.userResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/mockapi.messageResponse"}}
                }
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Update user",
                "parameters": [
                    {"type": "string", "description": "User ID", "name": "id", "in": "path", "required": true},
                    {"description": "User fields", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/mockapi.userRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/mockapi.userResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/mockapi.messageResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/mockapi.messageResponse"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["users"],
                "summary": "Delete user",
                "parameters": [{"type": "string", "description": "User ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/mockapi.messageResponse"}}
                }
            }
        },
        "/Users/{id}/toggle-status": {
            "patch": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Toggle user status",
                "parameters": [{"type": "string", "description": "User ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/mockapi.userResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/mockapi.messageResponse"}}
                }
            }
        },
        "/dashboard/stats": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["dashboard"],
                "summary": "Dashboard stats",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.DashboardStats"}}
                }
            }
        },
        "/dashboard/chart": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["dashboard"],
                "summary": "Dashboard chart",
                "parameters": [{"type": "string", "default": "7d", "description": "7d or 30d", "name": "period", "in": "query"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.ChartPoint"}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/mockapi.messageResponse"}}
                }
            }
        },
        "/dashboard/top-products": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["dashboard"],
                "summary": "Top products",
                "parameters": [{"type": "integer", "default": 10, "description": "Maximum rows", "name": "limit", "in": "query"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.TopProduct"}}}
                }
            }
        }
    },
    "definitions": {
        "domain.ChartPoint": {
            "type": "object",
            "properties": {
                "day": {"type": "string"},
                "export": {"type": "integer"},
                "import": {"type": "integer"}
            }
        },
        "domain.DashboardStats": {
            "type": "object",
            "properties": {
                "lowStockCount": {"type": "integer"},
                "todayExport": {"type": "integer"},
                "todayImport": {"type": "integer"},
                "totalInventory": {"type": "integer"}
            }
        },
        "domain.TopProduct": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "image": {"type": "string"},
                "name": {"type": "string"},
                "revenue": {"type": "integer"},
                "sku": {"type": "string"},
                "sold": {"type": "integer"},
                "status": {"type": "string", "enum": ["selling", "low"]},
                "stock": {"type": "integer"},
                "type": {"type": "string"}
            }
        },
        "mockapi.loginRequest": {
            "type": "object",
            "properties": {
                "password": {"type": "string"},
                "userName": {"type": "string"}
            }
        },
        "mockapi.loginResponse": {
            "type": "object",
            "properties": {
                "token": {"type": "string"},
                "user": {"$ref": "#/definitions/mockapi.loginUser"}
            }
        },
        "mockapi.loginUser": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "fullName": {"type": "string"},
                "id": {"type": "string"},
                "role": {"type": "string"},
                "username": {"type": "string"}
            }
        },
        "mockapi.messageResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"}
            }
        },
        "mockapi.userListResponse": {
            "type": "object",
            "properties": {
                "data": {"type": "array", "items": {"$ref": "#/definitions/mockapi.userResponse"}},
                "total": {"type": "integer"}
            }
        },
        "mockapi.userRequest": {
            "type": "object",
            "required": ["firstName", "userName"],
            "properties": {
                "email": {"type": "string"},
                "firstName": {"type": "string", "maxLength": 64},
                "lastName": {"type": "string", "maxLength": 64},
                "password": {"type": "string", "maxLength": 128, "minLength": 6},
                "phoneNumber": {"type": "string", "maxLength": 20},
                "role": {"type": "string", "enum": ["admin", "staff"]},
                "userName": {"type": "string", "maxLength": 64}
            }
        },
        "mockapi.userResponse": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "firstName": {"type": "string"},
                "id": {"type": "string"},
                "isActive": {"type": "boolean"},
                "lastName": {"type": "string"},
                "phoneNumber": {"type": "string"},
                "role": {"type": "string"},
                "roleLabel": {"type": "string"},
                "userName": {"type": "string"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
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
	Schemes:          []string{},
	Title:            "WareSmart mock backend",
	Description:      "Development stand-in for the warehouse REST API.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
