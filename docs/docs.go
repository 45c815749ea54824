// Package docs holds the swagger definition served at /swagger/index.html.
// Regenerate with: swag init -g cmd/server/main.go -o docs
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
        "/login": {
            "post": {
                "tags": ["auth"],
                "summary": "Authenticate a staff account",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "OK"},
                    "401": {"description": "Unauthorized"}
                }
            }
        },
        "/accounts": {
            "get": {
                "tags": ["accounts"],
                "summary": "List staff accounts",
                "produces": ["application/json"],
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "tags": ["accounts"],
                "summary": "Create a staff account",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "responses": {
                    "201": {"description": "Created"},
                    "409": {"description": "Conflict"}
                }
            },
            "patch": {
                "tags": ["accounts"],
                "summary": "Update a staff account",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "responses": {"200": {"description": "OK"}}
            },
            "delete": {
                "tags": ["accounts"],
                "summary": "Delete a staff account",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/roles": {
            "get": {
                "tags": ["roles"],
                "summary": "List valid roles",
                "produces": ["application/json"],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/expenses": {
            "get": {
                "tags": ["expenses"],
                "summary": "List expense ledger rows",
                "produces": ["application/json"],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/procedures": {
            "get": {
                "tags": ["procedures"],
                "summary": "List C-arm procedure rows",
                "produces": ["application/json"],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/visits": {
            "get": {
                "tags": ["visits"],
                "summary": "List dosu visit rows",
                "produces": ["application/json"],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/visits/summary": {
            "get": {
                "tags": ["visits"],
                "summary": "Dosu visit/revenue summary",
                "produces": ["application/json"],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/health": {
            "get": {
                "tags": ["health"],
                "summary": "Liveness probe",
                "produces": ["application/json"],
                "responses": {"200": {"description": "OK"}}
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

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "Clinic Back-Office API",
	Description:      "Role-scoped staff account management and operational ledgers for a clinic back office.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
