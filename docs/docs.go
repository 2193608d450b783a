// Package docs registers the OpenAPI document served under /swagger/.
// It follows the swag annotations on cmd/main.go and the handlers; running
// `swag init -g cmd/main.go` replaces it with generated output.
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
        "/": {
            "get": {
                "description": "Lists absolute URLs of the available endpoints",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "discovery"
                ],
                "summary": "API root",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/health": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "discovery"
                ],
                "summary": "Health check",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handlers.HealthResponse"
                        }
                    },
                    "503": {
                        "description": "Service Unavailable",
                        "schema": {
                            "$ref": "#/definitions/handlers.HealthResponse"
                        }
                    }
                }
            }
        },
        "/register/": {
            "post": {
                "description": "Creates a user account. Email must be unique regardless of case. The password is stored hashed and never returned.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "auth"
                ],
                "summary": "Register a new user",
                "parameters": [
                    {
                        "description": "User registration request",
                        "name": "registerRequest",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/models.RegisterRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/handlers.RegisterResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid input, duplicate username or email",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/login/": {
            "post": {
                "description": "Exchanges username and password for a bearer token",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "auth"
                ],
                "summary": "Log in",
                "parameters": [
                    {
                        "description": "Credentials",
                        "name": "loginRequest",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/models.LoginRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handlers.LoginResponse"
                        }
                    },
                    "400": {
                        "description": "Malformed body",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "401": {
                        "description": "Invalid username or password",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/logout/": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Revokes the bearer token until it expires",
                "tags": [
                    "auth"
                ],
                "summary": "Log out",
                "responses": {
                    "204": {
                        "description": "Token revoked"
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/hydroponic-systems/": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Returns the caller's systems. Other users' systems are never listed.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "systems"
                ],
                "summary": "List hydroponic systems",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Case-insensitive substring of the name",
                        "name": "name",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Exact owner username, case-insensitive",
                        "name": "owner__username",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Exact slug, case-insensitive",
                        "name": "slug",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Comma list of name, owner, slug; prefix - for descending",
                        "name": "ordering",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/handlers.SystemResponse"
                            }
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            },
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "The owner is always the caller; any owner in the body is ignored. The slug is derived from the name.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "systems"
                ],
                "summary": "Create a hydroponic system",
                "parameters": [
                    {
                        "description": "System",
                        "name": "system",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/models.SystemRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/handlers.SystemDetailResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/hydroponic-systems/{slug}/": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Returns the system with its ten most recent measurements",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "systems"
                ],
                "summary": "Get a hydroponic system",
                "parameters": [
                    {
                        "type": "string",
                        "description": "System slug",
                        "name": "slug",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handlers.SystemDetailResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            },
            "put": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Replaces name and description. The slug changes only when the new name derives a different one.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "systems"
                ],
                "summary": "Update a hydroponic system",
                "parameters": [
                    {
                        "type": "string",
                        "description": "System slug",
                        "name": "slug",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "System",
                        "name": "system",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/models.SystemRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handlers.SystemDetailResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            },
            "delete": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "tags": [
                    "systems"
                ],
                "summary": "Delete a hydroponic system",
                "parameters": [
                    {
                        "type": "string",
                        "description": "System slug",
                        "name": "slug",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "Deleted"
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/measurements/": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "measurements"
                ],
                "summary": "List measurements",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Case-insensitive substring of the system name",
                        "name": "system__name",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Lower bound, RFC 3339 or YYYY-MM-DD",
                        "name": "timestamp_after",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Upper bound, RFC 3339 or YYYY-MM-DD",
                        "name": "timestamp_before",
                        "in": "query"
                    },
                    {
                        "type": "number",
                        "description": "Minimum temperature",
                        "name": "temperature_min",
                        "in": "query"
                    },
                    {
                        "type": "number",
                        "description": "Maximum temperature",
                        "name": "temperature_max",
                        "in": "query"
                    },
                    {
                        "type": "number",
                        "description": "Minimum pH",
                        "name": "ph_min",
                        "in": "query"
                    },
                    {
                        "type": "number",
                        "description": "Maximum pH",
                        "name": "ph_max",
                        "in": "query"
                    },
                    {
                        "type": "number",
                        "description": "Minimum TDS",
                        "name": "tds_min",
                        "in": "query"
                    },
                    {
                        "type": "number",
                        "description": "Maximum TDS",
                        "name": "tds_max",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Comma list of timestamp, temperature, ph, tds; prefix - for descending",
                        "name": "ordering",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/handlers.MeasurementResponse"
                            }
                        }
                    },
                    "400": {
                        "description": "Malformed filter value",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            },
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "The referenced system must belong to the caller",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "measurements"
                ],
                "summary": "Create a measurement",
                "parameters": [
                    {
                        "description": "Measurement",
                        "name": "measurement",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/models.MeasurementRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/handlers.MeasurementResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/measurements/{id}/": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "measurements"
                ],
                "summary": "Get a measurement",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Measurement id",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handlers.MeasurementResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            },
            "put": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Replaces system, readings and description. The timestamp is kept.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "measurements"
                ],
                "summary": "Update a measurement",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Measurement id",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Measurement",
                        "name": "measurement",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/models.MeasurementRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handlers.MeasurementResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            },
            "delete": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "tags": [
                    "measurements"
                ],
                "summary": "Delete a measurement",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Measurement id",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "Deleted"
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "handlers.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {
                    "description": "Error message",
                    "type": "string",
                    "example": "Invalid input."
                },
                "fields": {
                    "description": "Per-field messages, present on validation errors only",
                    "type": "object",
                    "additionalProperties": {
                        "type": "array",
                        "items": {
                            "type": "string"
                        }
                    }
                }
            }
        },
        "handlers.HealthResponse": {
            "type": "object",
            "properties": {
                "status": {
                    "type": "string",
                    "example": "ok"
                }
            }
        },
        "handlers.LoginResponse": {
            "type": "object",
            "properties": {
                "token": {
                    "description": "JWT token",
                    "type": "string",
                    "example": "JWT_TOKEN"
                }
            }
        },
        "handlers.RegisterResponse": {
            "type": "object",
            "properties": {
                "email": {
                    "type": "string",
                    "example": "grower@example.com"
                },
                "username": {
                    "type": "string",
                    "example": "grower_1"
                }
            }
        },
        "handlers.MeasurementResponse": {
            "type": "object",
            "properties": {
                "url": {
                    "description": "Self link, built from the id",
                    "type": "string"
                },
                "id": {
                    "type": "string"
                },
                "system": {
                    "description": "Link to the parent system",
                    "type": "string"
                },
                "temperature": {
                    "type": "number",
                    "example": 21.5
                },
                "ph": {
                    "type": "number",
                    "example": 6.2
                },
                "tds": {
                    "type": "number",
                    "example": 560
                },
                "description": {
                    "type": "string"
                },
                "timestamp": {
                    "description": "Set on creation, never changes",
                    "type": "string"
                }
            }
        },
        "handlers.SystemResponse": {
            "type": "object",
            "properties": {
                "url": {
                    "description": "Self link, built from the slug",
                    "type": "string",
                    "example": "http://localhost:8080/hydroponic-systems/tomato-tank/"
                },
                "id": {
                    "type": "string",
                    "example": "4b1c5f8e-9a57-4d5e-a2b6-3b9f4d0c7e21"
                },
                "name": {
                    "type": "string",
                    "example": "Tomato Tank"
                },
                "description": {
                    "type": "string",
                    "example": "NFT channel by the window"
                },
                "owner": {
                    "description": "Owner username",
                    "type": "string",
                    "example": "grower_1"
                },
                "slug": {
                    "type": "string",
                    "example": "tomato-tank"
                }
            }
        },
        "handlers.SystemDetailResponse": {
            "type": "object",
            "properties": {
                "url": {
                    "description": "Self link, built from the slug",
                    "type": "string",
                    "example": "http://localhost:8080/hydroponic-systems/tomato-tank/"
                },
                "id": {
                    "type": "string",
                    "example": "4b1c5f8e-9a57-4d5e-a2b6-3b9f4d0c7e21"
                },
                "name": {
                    "type": "string",
                    "example": "Tomato Tank"
                },
                "description": {
                    "type": "string",
                    "example": "NFT channel by the window"
                },
                "owner": {
                    "description": "Owner username",
                    "type": "string",
                    "example": "grower_1"
                },
                "slug": {
                    "type": "string",
                    "example": "tomato-tank"
                },
                "last_measurements": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/handlers.MeasurementResponse"
                    }
                }
            }
        },
        "models.LoginRequest": {
            "type": "object",
            "properties": {
                "username": {
                    "description": "Username",
                    "type": "string",
                    "example": "grower_1"
                },
                "password": {
                    "description": "Password",
                    "type": "string",
                    "example": "secret123"
                }
            }
        },
        "models.RegisterRequest": {
            "type": "object",
            "properties": {
                "username": {
                    "description": "Username",
                    "type": "string",
                    "example": "grower_1"
                },
                "email": {
                    "description": "Email, unique case-insensitively",
                    "type": "string",
                    "example": "grower@example.com"
                },
                "password": {
                    "description": "Password, stored hashed only",
                    "type": "string",
                    "example": "secret123"
                }
            }
        },
        "models.SystemRequest": {
            "type": "object",
            "properties": {
                "name": {
                    "description": "Name, at most 70 characters",
                    "type": "string",
                    "example": "Tomato Tank"
                },
                "description": {
                    "description": "Description",
                    "type": "string",
                    "example": "NFT channel by the window"
                }
            }
        },
        "models.MeasurementRequest": {
            "type": "object",
            "properties": {
                "system": {
                    "description": "System URL or slug",
                    "type": "string",
                    "example": "http://localhost:8080/hydroponic-systems/tomato-tank/"
                },
                "temperature": {
                    "description": "Water temperature",
                    "type": "number",
                    "example": 21.5
                },
                "ph": {
                    "description": "Acidity",
                    "type": "number",
                    "example": 6.2
                },
                "tds": {
                    "description": "Total dissolved solids",
                    "type": "number",
                    "example": 560
                },
                "description": {
                    "description": "Description",
                    "type": "string",
                    "example": "after nutrient top-up"
                }
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
	Version:          "1.0.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http"},
	Title:            "gw-hydroponics API",
	Description:      "Multi-tenant API for hydroponic systems and their sensor measurements",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
