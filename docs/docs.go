// Package docs registers the OpenAPI document served under /swagger.
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
        "/api/auth/signin": {
            "post": {
                "description": "Sets the session cookie and returns the token.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Sign in with username and password",
                "parameters": [
                    {
                        "description": "credentials",
                        "name": "input",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/handlers.signInRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/fitness_tracker.JwtResponse"}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/security.ErrorBody"}}
                }
            }
        },
        "/api/auth/signout": {
            "post": {
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Sign out",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/fitness_tracker.MessageResponse"}}
                }
            }
        },
        "/api/auth/signup": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Register a local account",
                "parameters": [
                    {
                        "description": "new account",
                        "name": "input",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/handlers.signUpRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/fitness_tracker.MessageResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/fitness_tracker.MessageResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/api/auth/user": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Current user",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/fitness_tracker.UserInfoResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/security.ErrorBody"}}
                }
            }
        },
        "/api/csrf-token": {
            "get": {
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Issue the CSRF token",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/fitness_tracker.CSRFTokenResponse"}}
                }
            }
        },
        "/api/test/admin": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["text/plain"],
                "tags": ["test"],
                "summary": "Content for administrators",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "string"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/security.ErrorBody"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/security.ErrorBody"}}
                }
            }
        },
        "/api/test/all": {
            "get": {
                "produces": ["text/plain"],
                "tags": ["test"],
                "summary": "Public content",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "string"}}
                }
            }
        },
        "/api/test/user": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["text/plain"],
                "tags": ["test"],
                "summary": "Content for signed-in users",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "string"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/security.ErrorBody"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/security.ErrorBody"}}
                }
            }
        },
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["system"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/login/oauth2/code/{registrationId}": {
            "get": {
                "description": "Links the provider identity to a local account and redirects to the frontend with the token.",
                "tags": ["oauth2"],
                "summary": "OAuth2 callback",
                "parameters": [
                    {"type": "string", "example": "google", "description": "provider registration", "name": "registrationId", "in": "path", "required": true},
                    {"type": "string", "description": "authorization code", "name": "code", "in": "query"},
                    {"type": "string", "description": "state", "name": "state", "in": "query"}
                ],
                "responses": {
                    "302": {"description": "Found"},
                    "500": {"description": "Internal Server Error", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/oauth2/authorization/{registrationId}": {
            "get": {
                "tags": ["oauth2"],
                "summary": "Start an OAuth2 login",
                "parameters": [
                    {"type": "string", "example": "google", "description": "provider registration", "name": "registrationId", "in": "path", "required": true}
                ],
                "responses": {
                    "302": {"description": "Found"},
                    "404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        }
    },
    "definitions": {
        "fitness_tracker.CSRFTokenResponse": {
            "type": "object",
            "properties": {
                "headerName": {"type": "string", "example": "X-XSRF-TOKEN"},
                "parameterName": {"type": "string", "example": "_csrf"},
                "token": {"type": "string"}
            }
        },
        "fitness_tracker.JwtResponse": {
            "type": "object",
            "properties": {
                "email": {"type": "string", "example": "user1@example.com"},
                "id": {"type": "integer", "example": 1},
                "roles": {"type": "array", "items": {"type": "string"}, "example": ["ROLE_USER"]},
                "token": {"type": "string"},
                "username": {"type": "string", "example": "user1"}
            }
        },
        "fitness_tracker.MessageResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string", "example": "User registered successfully!"}
            }
        },
        "fitness_tracker.UserInfoResponse": {
            "type": "object",
            "properties": {
                "email": {"type": "string", "example": "user1@example.com"},
                "id": {"type": "integer", "example": 1},
                "roles": {"type": "array", "items": {"type": "string"}, "example": ["ROLE_USER"]},
                "signUpMethod": {"type": "string", "example": "email"},
                "username": {"type": "string", "example": "user1"}
            }
        },
        "handlers.signInRequest": {
            "type": "object",
            "required": ["password", "username"],
            "properties": {
                "password": {"type": "string", "example": "password1"},
                "username": {"type": "string", "example": "user1"}
            }
        },
        "handlers.signUpRequest": {
            "type": "object",
            "required": ["email", "password", "username"],
            "properties": {
                "email": {"type": "string", "maxLength": 50, "example": "user2@example.com"},
                "password": {"type": "string", "maxLength": 40, "minLength": 6, "example": "secret1"},
                "username": {"type": "string", "maxLength": 20, "minLength": 3, "example": "user2"}
            }
        },
        "security.ErrorBody": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "message": {"type": "string"},
                "path": {"type": "string"},
                "status": {"type": "integer"}
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
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "WellStride Auth API",
	Description:      "Authentication and account API for the WellStride fitness tracker.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
