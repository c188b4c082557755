// Package swagger registers the OpenAPI document served under /swagger/.
package swagger

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
        "/authors/": {
            "get": {
                "produces": ["application/json"],
                "tags": ["authors"],
                "summary": "List authors",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/model.Author"}}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["authors"],
                "summary": "Create author",
                "parameters": [
                    {"description": "author", "name": "author", "in": "body", "required": true, "schema": {"$ref": "#/definitions/model.Author"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/model.Author"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errs.ValidationErrorResponse"}}
                }
            }
        },
        "/authors/{id}/": {
            "get": {
                "produces": ["application/json"],
                "tags": ["authors"],
                "summary": "Get author",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.Author"}},
                    "404": {"description": "Not Found"}
                }
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["authors"],
                "summary": "Replace author",
                "parameters": [
                    {"type": "integer", "name": "id", "in": "path", "required": true},
                    {"description": "author", "name": "author", "in": "body", "required": true, "schema": {"$ref": "#/definitions/model.Author"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.Author"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errs.ValidationErrorResponse"}},
                    "404": {"description": "Not Found"}
                }
            },
            "patch": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["authors"],
                "summary": "Update author fields",
                "parameters": [
                    {"type": "integer", "name": "id", "in": "path", "required": true},
                    {"description": "author", "name": "author", "in": "body", "required": true, "schema": {"$ref": "#/definitions/model.Author"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.Author"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errs.ValidationErrorResponse"}},
                    "404": {"description": "Not Found"}
                }
            },
            "delete": {
                "tags": ["authors"],
                "summary": "Delete author with its books and orders",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Not Found"}
                }
            }
        },
        "/books/": {
            "get": {
                "produces": ["application/json"],
                "tags": ["books"],
                "summary": "List books",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/model.Book"}}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["books"],
                "summary": "Create book",
                "parameters": [
                    {"description": "book", "name": "book", "in": "body", "required": true, "schema": {"$ref": "#/definitions/model.Book"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/model.Book"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errs.ValidationErrorResponse"}}
                }
            }
        },
        "/books/{id}/": {
            "get": {
                "produces": ["application/json"],
                "tags": ["books"],
                "summary": "Get book",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.Book"}},
                    "404": {"description": "Not Found"}
                }
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["books"],
                "summary": "Replace book",
                "parameters": [
                    {"type": "integer", "name": "id", "in": "path", "required": true},
                    {"description": "book", "name": "book", "in": "body", "required": true, "schema": {"$ref": "#/definitions/model.Book"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.Book"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errs.ValidationErrorResponse"}},
                    "404": {"description": "Not Found"}
                }
            },
            "patch": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["books"],
                "summary": "Update book fields",
                "parameters": [
                    {"type": "integer", "name": "id", "in": "path", "required": true},
                    {"description": "book", "name": "book", "in": "body", "required": true, "schema": {"$ref": "#/definitions/model.Book"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.Book"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errs.ValidationErrorResponse"}},
                    "404": {"description": "Not Found"}
                }
            },
            "delete": {
                "tags": ["books"],
                "summary": "Delete book with its orders",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Not Found"}
                }
            }
        },
        "/orders/": {
            "get": {
                "produces": ["application/json"],
                "tags": ["orders"],
                "summary": "List orders",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/model.Order"}}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["orders"],
                "summary": "Create order",
                "parameters": [
                    {"description": "order", "name": "order", "in": "body", "required": true, "schema": {"$ref": "#/definitions/model.Order"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/model.Order"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errs.ValidationErrorResponse"}}
                }
            }
        },
        "/orders/{id}/": {
            "get": {
                "produces": ["application/json"],
                "tags": ["orders"],
                "summary": "Get order",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.Order"}},
                    "404": {"description": "Not Found"}
                }
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["orders"],
                "summary": "Replace order",
                "parameters": [
                    {"type": "integer", "name": "id", "in": "path", "required": true},
                    {"description": "order", "name": "order", "in": "body", "required": true, "schema": {"$ref": "#/definitions/model.Order"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.Order"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errs.ValidationErrorResponse"}},
                    "404": {"description": "Not Found"}
                }
            },
            "patch": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["orders"],
                "summary": "Update order fields",
                "parameters": [
                    {"type": "integer", "name": "id", "in": "path", "required": true},
                    {"description": "order", "name": "order", "in": "body", "required": true, "schema": {"$ref": "#/definitions/model.Order"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.Order"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errs.ValidationErrorResponse"}},
                    "404": {"description": "Not Found"}
                }
            },
            "delete": {
                "tags": ["orders"],
                "summary": "Delete order",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Not Found"}
                }
            }
        }
    },
    "definitions": {
        "errs.ValidationErrorResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "errors": {"type": "object", "additionalProperties": {"type": "array", "items": {"type": "string"}}}
            }
        },
        "model.Author": {
            "type": "object",
            "required": ["name", "bio"],
            "properties": {
                "id": {"type": "integer", "readOnly": true},
                "name": {"type": "string", "maxLength": 100},
                "bio": {"type": "string"}
            }
        },
        "model.Book": {
            "type": "object",
            "required": ["title", "description", "price", "author"],
            "properties": {
                "id": {"type": "integer", "readOnly": true},
                "title": {"type": "string", "maxLength": 200},
                "description": {"type": "string"},
                "price": {"type": "string", "format": "decimal", "example": "12.50"},
                "image_url": {"type": "string", "format": "uri", "maxLength": 200},
                "author": {"type": "integer"}
            }
        },
        "model.Order": {
            "type": "object",
            "required": ["book", "buyer_email"],
            "properties": {
                "id": {"type": "integer", "readOnly": true},
                "buyer_email": {"type": "string", "format": "email", "maxLength": 254},
                "created_at": {"type": "string", "format": "date-time", "readOnly": true},
                "book": {"type": "integer"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Bookstore store API",
	Description:      "CRUD endpoints for authors, books and orders.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
