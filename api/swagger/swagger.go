package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Teammate Directory API",
        "description": "Backend for the team directory site: public roster reads, token-gated profile management",
        "version": "1.0.0"
    },
    "basePath": "/api",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Teammates", "description": "Teammate profile management"},
        {"name": "Auth", "description": "Admin session tokens"}
    ],
    "paths": {
        "/teammates": {
            "get": {
                "tags": ["Teammates"],
                "summary": "List teammates",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Teammates"],
                "summary": "Create teammate",
                "parameters": [
                    {"name": "X-Admin-Token", "in": "header", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/TeammateInput"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Missing slug or name", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "409": {"description": "Slug already taken", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/teammates/{slug}": {
            "get": {
                "tags": ["Teammates"],
                "summary": "Get teammate",
                "parameters": [
                    {"name": "slug", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "put": {
                "tags": ["Teammates"],
                "summary": "Update teammate",
                "parameters": [
                    {"name": "slug", "in": "path", "required": true, "type": "string"},
                    {"name": "X-Admin-Token", "in": "header", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/TeammateInput"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "delete": {
                "tags": ["Teammates"],
                "summary": "Delete teammate",
                "parameters": [
                    {"name": "slug", "in": "path", "required": true, "type": "string"},
                    {"name": "X-Admin-Token", "in": "header", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "Removed record", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/exports/teammates": {
            "get": {
                "tags": ["Teammates"],
                "summary": "Export the roster as CSV or PDF",
                "parameters": [
                    {"name": "X-Admin-Token", "in": "header", "required": true, "type": "string"},
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"], "default": "csv"}
                ],
                "responses": {
                    "200": {"description": "Rendered document"},
                    "400": {"description": "Unsupported format", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/auth/login": {
            "post": {
                "tags": ["Auth"],
                "summary": "Exchange the admin credential for a session token",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "Session token", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "401": {"description": "Invalid credentials", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        }
    },
    "definitions": {
        "Teammate": {
            "type": "object",
            "properties": {
                "order": {"type": "number", "x-nullable": true},
                "slug": {"type": "string"},
                "name": {"type": "string"},
                "role": {"type": "string"},
                "jobTitle": {"type": "string"},
                "nmls": {"type": "string"},
                "phone": {"type": "string"},
                "email": {"type": "string"},
                "photoFile": {"type": "string"},
                "location": {"type": "string"},
                "bio": {"type": "string"},
                "hireDate": {"type": "string"},
                "funFact": {"type": "string"},
                "specialties": {"type": "array", "items": {"type": "string"}},
                "certifications": {"type": "array", "items": {"type": "string"}},
                "languages": {"type": "array", "items": {"type": "string"}},
                "states": {"type": "array", "items": {"type": "string"}},
                "socialHandles": {"$ref": "#/definitions/SocialHandles"},
                "links": {"$ref": "#/definitions/Links"}
            },
            "required": ["slug", "name"]
        },
        "SocialHandles": {
            "type": "object",
            "properties": {
                "facebook": {"type": "string"},
                "instagram": {"type": "string"},
                "linkedin": {"type": "string"},
                "twitter": {"type": "string"},
                "tiktok": {"type": "string"}
            }
        },
        "Links": {
            "type": "object",
            "properties": {
                "apply": {"type": "string"},
                "calendly": {"type": "string"},
                "linkedin": {"type": "string"},
                "reviews": {"type": "string"},
                "personalSite": {"type": "string"}
            }
        },
        "TeammateInput": {
            "type": "object",
            "description": "Loosely typed teammate payload; list fields accept arrays, JSON strings or comma-separated strings",
            "properties": {
                "slug": {"type": "string"},
                "name": {"type": "string"},
                "order": {},
                "specialties": {},
                "certifications": {},
                "languages": {},
                "states": {},
                "socialHandles": {},
                "links": {}
            },
            "required": ["slug", "name"]
        },
        "LoginRequest": {
            "type": "object",
            "properties": {
                "password": {"type": "string"},
                "token": {"type": "string"}
            }
        },
        "LoginResponse": {
            "type": "object",
            "properties": {
                "token": {"type": "string"},
                "expiresIn": {"type": "integer"}
            }
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {"type": "object"},
                "error": {"$ref": "#/definitions/APIError"},
                "meta": {"type": "object"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
