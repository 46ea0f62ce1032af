// Package docs holds the OpenAPI document served under /swagger.
// Regenerate with: swag init -g cmd/gb_backend/main.go -o cmd/docs
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
        "/ai/knowledge": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Lists knowledge entries, most recently updated first",
                "produces": ["application/json"],
                "tags": ["knowledge"],
                "summary": "List knowledge entries",
                "parameters": [
                    {"type": "string", "description": "Only entries of this source type", "name": "sourceType", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/dto.KnowledgeResponse"}}},
                    "401": {"description": "Unauthorized", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "500": {"description": "Failed to list knowledge", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Inserts a knowledge entry, or updates content and embedding of the entry with the same source id",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["knowledge"],
                "summary": "Store a knowledge entry",
                "parameters": [
                    {"description": "Knowledge entry", "name": "entry", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.StoreKnowledgeRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.StoreKnowledgeResponse"}},
                    "400": {"description": "Invalid input format or validation error", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "401": {"description": "Unauthorized", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "500": {"description": "Failed to store knowledge", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/ai/knowledge/{sourceID}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Retrieves the knowledge entry stored for a source id",
                "produces": ["application/json"],
                "tags": ["knowledge"],
                "summary": "Get a knowledge entry by source",
                "parameters": [
                    {"type": "string", "description": "Source ID", "name": "sourceID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.KnowledgeResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "404": {"description": "Knowledge entry not found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "500": {"description": "Failed to get knowledge", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/ai/memory/{userID}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Lists a user's memory chunks, newest first",
                "produces": ["application/json"],
                "tags": ["memory"],
                "summary": "List a user's memory",
                "parameters": [
                    {"type": "string", "description": "User ID", "name": "userID", "in": "path", "required": true},
                    {"minimum": 1, "type": "integer", "description": "Maximum number of chunks (default 20)", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/dto.MemoryChunkResponse"}}},
                    "400": {"description": "Invalid limit", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "401": {"description": "Unauthorized", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "500": {"description": "Failed to retrieve memory", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Stores a memory chunk for a user, evicting the user's oldest chunk when the configured cap is reached",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["memory"],
                "summary": "Store a memory chunk",
                "parameters": [
                    {"type": "string", "description": "User ID", "name": "userID", "in": "path", "required": true},
                    {"description": "Memory chunk", "name": "chunk", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.StoreMemoryRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.StoreMemoryResponse"}},
                    "400": {"description": "Invalid input format or validation error", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "401": {"description": "Unauthorized", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "500": {"description": "Failed to store memory", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "description": "Deletes every memory chunk of a user",
                "produces": ["application/json"],
                "tags": ["memory"],
                "summary": "Clear a user's memory",
                "parameters": [
                    {"type": "string", "description": "User ID", "name": "userID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ClearMemoryResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "500": {"description": "Failed to clear memory", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/ai/settings": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Retrieves the assistant settings, or the defaults when none were saved",
                "produces": ["application/json"],
                "tags": ["settings"],
                "summary": "Get bot settings",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.BotSettings"}},
                    "401": {"description": "Unauthorized", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "500": {"description": "Failed to load bot settings", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "description": "Applies the provided fields to the assistant settings",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["settings"],
                "summary": "Update bot settings",
                "parameters": [
                    {"description": "Fields to change", "name": "settings", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.UpdateBotSettingsRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.BotSettings"}},
                    "400": {"description": "Invalid input format or validation error", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "401": {"description": "Unauthorized", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "500": {"description": "Failed to update bot settings", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/currency/convert": {
            "get": {
                "description": "Converts an amount between two supported currencies using the current rates",
                "produces": ["application/json"],
                "tags": ["currency"],
                "summary": "Convert an amount",
                "parameters": [
                    {"type": "string", "description": "Amount", "name": "amount", "in": "query", "required": true},
                    {"enum": ["INR", "USD", "EUR", "GBP", "AED"], "type": "string", "description": "Source currency", "name": "from", "in": "query", "required": true},
                    {"enum": ["INR", "USD", "EUR", "GBP", "AED"], "type": "string", "description": "Target currency", "name": "to", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ConvertResponse"}},
                    "400": {"description": "Invalid amount or unsupported currency", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "429": {"description": "Too many requests", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/currency/preference": {
            "get": {
                "description": "Returns the saved display currency, INR when none is saved",
                "produces": ["application/json"],
                "tags": ["currency"],
                "summary": "Get the display currency",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.PreferenceResponse"}}
                }
            },
            "put": {
                "description": "Saves the display currency",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["currency"],
                "summary": "Set the display currency",
                "parameters": [
                    {"description": "Currency code", "name": "preference", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.SetPreferenceRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.PreferenceResponse"}},
                    "400": {"description": "Unsupported currency", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "500": {"description": "Failed to save currency preference", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/currency/price-range": {
            "get": {
                "description": "Converts both bounds of a price range and formats them in the target currency",
                "produces": ["application/json"],
                "tags": ["currency"],
                "summary": "Format a price range",
                "parameters": [
                    {"type": "string", "description": "Lower bound", "name": "min", "in": "query", "required": true},
                    {"type": "string", "description": "Upper bound", "name": "max", "in": "query", "required": true},
                    {"enum": ["INR", "USD", "EUR", "GBP", "AED"], "type": "string", "description": "Currency of the bounds", "name": "base", "in": "query", "required": true},
                    {"enum": ["INR", "USD", "EUR", "GBP", "AED"], "type": "string", "description": "Display currency (defaults to the saved preference)", "name": "target", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.PriceRangeResponse"}},
                    "400": {"description": "Invalid bounds or unsupported currency", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "429": {"description": "Too many requests", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/currency/rates": {
            "get": {
                "description": "Returns the cached INR-based rate table, refreshing it when stale. Falls back to built-in rates when the provider is unavailable.",
                "produces": ["application/json"],
                "tags": ["currency"],
                "summary": "Get exchange rates",
                "responses": {
                    "200": {"description": "base, rates and timestamp (epoch ms)", "schema": {"type": "object", "additionalProperties": true}},
                    "429": {"description": "Too many requests", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        }
    },
    "definitions": {
        "domain.BotSettings": {
            "type": "object",
            "properties": {
                "enabled": {"type": "boolean"},
                "maxMemoryChunks": {"type": "integer"},
                "systemPrompt": {"type": "string"},
                "tone": {"type": "string"},
                "updatedAt": {"type": "string"}
            }
        },
        "domain.Currency": {
            "type": "object",
            "properties": {
                "currencyCode": {"type": "string"},
                "locale": {"description": "BCP 47 tag used for digit grouping", "type": "string"},
                "name": {"type": "string"},
                "precision": {"description": "Decimal places shown when formatting", "type": "integer"},
                "symbol": {"type": "string"},
                "symbolAfter": {"description": "Symbol trails the number, separated by a space", "type": "boolean"}
            }
        },
        "dto.ClearMemoryResponse": {
            "type": "object",
            "properties": {
                "deleted": {"type": "integer"}
            }
        },
        "dto.ConvertResponse": {
            "type": "object",
            "properties": {
                "amount": {"type": "string"},
                "converted": {"type": "string"},
                "formatted": {"type": "string"},
                "from": {"type": "string"},
                "ratesTimestamp": {"type": "integer"},
                "to": {"type": "string"}
            }
        },
        "dto.KnowledgeResponse": {
            "type": "object",
            "properties": {
                "content": {"type": "string"},
                "embedding": {"type": "array", "items": {"type": "number"}},
                "knowledgeID": {"type": "string"},
                "sourceID": {"type": "string"},
                "sourceType": {"type": "string"},
                "updatedAt": {"type": "string"}
            }
        },
        "dto.MemoryChunkResponse": {
            "type": "object",
            "properties": {
                "category": {"type": "string"},
                "chunkID": {"type": "string"},
                "content": {"type": "string"},
                "createdAt": {"type": "string"},
                "embedding": {"type": "array", "items": {"type": "number"}},
                "userID": {"type": "string"}
            }
        },
        "dto.PreferenceResponse": {
            "type": "object",
            "properties": {
                "currency": {"$ref": "#/definitions/domain.Currency"},
                "currencyCode": {"type": "string"}
            }
        },
        "dto.PriceRangeResponse": {
            "type": "object",
            "properties": {
                "formatted": {"type": "string"},
                "target": {"type": "string"}
            }
        },
        "dto.SetPreferenceRequest": {
            "type": "object",
            "required": ["currencyCode"],
            "properties": {
                "currencyCode": {"type": "string"}
            }
        },
        "dto.StoreKnowledgeRequest": {
            "type": "object",
            "required": ["content", "sourceID", "sourceType"],
            "properties": {
                "content": {"type": "string"},
                "embedding": {"type": "array", "items": {"type": "number"}},
                "sourceID": {"type": "string"},
                "sourceType": {"type": "string", "maxLength": 64}
            }
        },
        "dto.StoreKnowledgeResponse": {
            "type": "object",
            "properties": {
                "knowledgeID": {"type": "string"}
            }
        },
        "dto.StoreMemoryRequest": {
            "type": "object",
            "required": ["category", "content"],
            "properties": {
                "category": {"type": "string", "maxLength": 64},
                "content": {"type": "string"},
                "embedding": {"type": "array", "items": {"type": "number"}}
            }
        },
        "dto.StoreMemoryResponse": {
            "type": "object",
            "properties": {
                "chunkID": {"type": "string"}
            }
        },
        "dto.UpdateBotSettingsRequest": {
            "type": "object",
            "properties": {
                "enabled": {"type": "boolean"},
                "maxMemoryChunks": {"type": "integer", "minimum": 1},
                "systemPrompt": {"type": "string"},
                "tone": {"type": "string", "maxLength": 32}
            }
        }
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
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Grace Blooms Backend API",
	Description:      "Currency rates and conversion for the storefront, plus the assistant memory store.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
