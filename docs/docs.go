// Package docs holds the OpenAPI description served under /swagger/.
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
        "/dishes": {
            "get": {
                "produces": ["application/json"],
                "tags": ["dishes"],
                "summary": "List dishes",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dishList"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["dishes"],
                "summary": "Create a dish",
                "parameters": [
                    {"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dishEnvelope"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dishEnvelope"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/envelope.ErrorResponse"}}
                }
            }
        },
        "/dishes/{dishId}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["dishes"],
                "summary": "Get a dish",
                "parameters": [
                    {"type": "string", "name": "dishId", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dishEnvelope"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/envelope.ErrorResponse"}}
                }
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["dishes"],
                "summary": "Replace a dish",
                "parameters": [
                    {"type": "string", "name": "dishId", "in": "path", "required": true},
                    {"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dishEnvelope"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dishEnvelope"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/envelope.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/envelope.ErrorResponse"}}
                }
            }
        },
        "/orders": {
            "get": {
                "produces": ["application/json"],
                "tags": ["orders"],
                "summary": "List orders",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/orderList"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["orders"],
                "summary": "Create an order",
                "parameters": [
                    {"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/orderEnvelope"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/orderEnvelope"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/envelope.ErrorResponse"}}
                }
            }
        },
        "/orders/{orderId}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["orders"],
                "summary": "Get an order",
                "parameters": [
                    {"type": "string", "name": "orderId", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/orderEnvelope"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/envelope.ErrorResponse"}}
                }
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["orders"],
                "summary": "Replace an order",
                "parameters": [
                    {"type": "string", "name": "orderId", "in": "path", "required": true},
                    {"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/orderEnvelope"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/orderEnvelope"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/envelope.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/envelope.ErrorResponse"}}
                }
            },
            "delete": {
                "tags": ["orders"],
                "summary": "Delete a pending order",
                "parameters": [
                    {"type": "string", "name": "orderId", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/envelope.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/envelope.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "dish.Dish": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "description": {"type": "string"},
                "price": {"type": "integer"},
                "image_url": {"type": "string"}
            }
        },
        "orderitem.OrderItem": {
            "type": "object",
            "description": "Any object with a positive integer quantity. Stored and returned as submitted.",
            "required": ["quantity"],
            "additionalProperties": true,
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "description": {"type": "string"},
                "price": {"type": "integer"},
                "image_url": {"type": "string"},
                "quantity": {"type": "integer"}
            }
        },
        "order.Order": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "deliverTo": {"type": "string"},
                "mobileNumber": {"type": "string"},
                "status": {"type": "string", "enum": ["pending", "preparing", "out-for-delivery", "delivered"]},
                "dishes": {"type": "array", "items": {"$ref": "#/definitions/orderitem.OrderItem"}}
            }
        },
        "dishEnvelope": {
            "type": "object",
            "properties": {"data": {"$ref": "#/definitions/dish.Dish"}}
        },
        "dishList": {
            "type": "object",
            "properties": {"data": {"type": "array", "items": {"$ref": "#/definitions/dish.Dish"}}}
        },
        "orderEnvelope": {
            "type": "object",
            "properties": {"data": {"$ref": "#/definitions/order.Order"}}
        },
        "orderList": {
            "type": "object",
            "properties": {"data": {"type": "array", "items": {"$ref": "#/definitions/order.Order"}}}
        },
        "envelope.ErrorResponse": {
            "type": "object",
            "properties": {"message": {"type": "string"}}
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "GrubDash API",
	Description:      "Dishes and delivery orders for a small restaurant.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
