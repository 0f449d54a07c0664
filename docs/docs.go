// Package docs registers the OpenAPI description served at /swagger.
// Keep it in step with the @Router annotations on the v1 handlers.
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
        "/api/v1/formats": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Formats"],
                "summary": "List accepted media types",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.FormatsResponse"}}
                }
            }
        },
        "/api/v1/sessions": {
            "post": {
                "produces": ["application/json"],
                "tags": ["Sessions"],
                "summary": "Open a session",
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.SessionResponse"}}
                }
            }
        },
        "/api/v1/sessions/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Sessions"],
                "summary": "Get session state",
                "parameters": [
                    {"type": "string", "description": "Session ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.SessionResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/errors.APIError"}}
                }
            },
            "delete": {
                "tags": ["Sessions"],
                "summary": "Close a session",
                "parameters": [
                    {"type": "string", "description": "Session ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/errors.APIError"}}
                }
            }
        },
        "/api/v1/sessions/{id}/file": {
            "put": {
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["Sessions"],
                "summary": "Select the file to transcribe",
                "parameters": [
                    {"type": "string", "description": "Session ID", "name": "id", "in": "path", "required": true},
                    {"type": "file", "description": "Audio or video file", "name": "file", "in": "formData", "required": true},
                    {"type": "string", "description": "Declared MIME type, overrides the part header", "name": "mime_type", "in": "formData"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.SessionResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/errors.APIError"}},
                    "413": {"description": "Request Entity Too Large", "schema": {"$ref": "#/definitions/errors.APIError"}},
                    "415": {"description": "Unsupported Media Type", "schema": {"$ref": "#/definitions/errors.APIError"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/errors.APIError"}}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["Sessions"],
                "summary": "Remove the selected file",
                "parameters": [
                    {"type": "string", "description": "Session ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.SessionResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/errors.APIError"}}
                }
            }
        },
        "/api/v1/sessions/{id}/transcription": {
            "post": {
                "produces": ["application/json"],
                "tags": ["Sessions"],
                "summary": "Transcribe the selected file",
                "parameters": [
                    {"type": "string", "description": "Session ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.SessionResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/errors.APIError"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/errors.APIError"}}
                }
            }
        },
        "/api/v1/sessions/{id}/transcript": {
            "get": {
                "produces": ["text/plain"],
                "tags": ["Sessions"],
                "summary": "Get the transcript text",
                "parameters": [
                    {"type": "string", "description": "Session ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "string"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/errors.APIError"}}
                }
            }
        },
        "/api/v1/sessions/{id}/transcript/download": {
            "get": {
                "produces": ["text/plain"],
                "tags": ["Sessions"],
                "summary": "Download the transcript as CN7_TRANSCRICAO.txt",
                "parameters": [
                    {"type": "string", "description": "Session ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "file"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/errors.APIError"}}
                }
            }
        },
        "/preview/{handle}": {
            "get": {
                "produces": ["application/octet-stream"],
                "tags": ["Preview"],
                "summary": "Stream a selected file for playback",
                "parameters": [
                    {"type": "string", "description": "Preview handle", "name": "handle", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "file"}},
                    "206": {"description": "Partial Content", "schema": {"type": "file"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/errors.APIError"}}
                }
            }
        }
    },
    "definitions": {
        "dto.FormatsResponse": {
            "type": "object",
            "properties": {
                "audio": {"type": "array", "items": {"type": "string"}},
                "max_upload_mb": {"type": "integer"},
                "mime_types": {"type": "array", "items": {"type": "string"}},
                "video": {"type": "array", "items": {"type": "string"}}
            }
        },
        "dto.SessionResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "phase": {"type": "string", "enum": ["idle", "loading", "succeeded", "failed"]},
                "text": {"type": "string"},
                "error": {"type": "string"},
                "failure_kind": {"type": "string", "enum": ["rejected_format", "empty_response", "remote_failure", "unknown_failure"]},
                "file": {"$ref": "#/definitions/model.FileInfo"},
                "preview_handle": {"type": "string"},
                "preview_url": {"type": "string"}
            }
        },
        "errors.APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "details": {"type": "object", "additionalProperties": {"type": "string"}},
                "kind": {"type": "string"},
                "message": {"type": "string"},
                "request_id": {"type": "string"}
            }
        },
        "model.FileInfo": {
            "type": "object",
            "properties": {
                "kind": {"type": "string", "enum": ["audio", "video"]},
                "mime_type": {"type": "string"},
                "name": {"type": "string"},
                "size": {"type": "integer"}
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
	Title:            "CN7 Transcriptor API",
	Description:      "Session-based transcription of audio and video files.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
