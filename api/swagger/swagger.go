package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Classroom Informer API",
        "description": "Classroom availability lookups, favorites and free-room alerts",
        "version": "1.0.0"
    },
    "basePath": "/api/v1",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Info", "description": "Buildings, rooms and availability"},
        {"name": "Timetable", "description": "Room and student timetables"},
        {"name": "Favorites", "description": "Favorite rooms"},
        {"name": "Notifications", "description": "Free-room alert checks"}
    ],
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    },
    "paths": {
        "/info/buildings": {
            "get": {
                "tags": ["Info"],
                "summary": "List buildings",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/info/rooms": {
            "get": {
                "tags": ["Info"],
                "summary": "List rooms",
                "parameters": [
                    {"name": "building_code", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Unknown building", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/info/room/details": {
            "get": {
                "tags": ["Info"],
                "summary": "Get room details",
                "parameters": [
                    {"name": "room_id", "in": "query", "type": "integer"},
                    {"name": "building_code", "in": "query", "type": "string"},
                    {"name": "room_number", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Unknown room", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/info/room/timetable": {
            "get": {
                "tags": ["Timetable"],
                "summary": "Weekly timetable of a room",
                "parameters": [
                    {"name": "building_code", "in": "query", "type": "string", "required": true},
                    {"name": "room_number", "in": "query", "type": "string", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/info/room/timetable/free-slots": {
            "get": {
                "tags": ["Info"],
                "summary": "Free slots per class day",
                "parameters": [
                    {"name": "building_code", "in": "query", "type": "string", "required": true},
                    {"name": "room_number", "in": "query", "type": "string", "required": true},
                    {"name": "start_time", "in": "query", "type": "string"},
                    {"name": "end_time", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Invalid window", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Unknown room", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/info/room/timetable/export": {
            "get": {
                "tags": ["Timetable"],
                "summary": "Download a room timetable as CSV or PDF",
                "parameters": [
                    {"name": "building_code", "in": "query", "type": "string", "required": true},
                    {"name": "room_number", "in": "query", "type": "string", "required": true},
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"]}
                ],
                "responses": {
                    "200": {"description": "File download"}
                }
            }
        },
        "/info/rooms/available": {
            "get": {
                "tags": ["Info"],
                "summary": "Rooms free during every requested slot",
                "parameters": [
                    {"name": "building_code", "in": "query", "type": "string", "required": true},
                    {"name": "slots", "in": "query", "type": "array", "items": {"type": "string"}, "collectionFormat": "multi", "required": true},
                    {"name": "room_number", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Malformed slot", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/favorites": {
            "get": {
                "tags": ["Favorites"],
                "summary": "List favorite rooms",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "401": {"description": "Missing or invalid token", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/favorites/toggle": {
            "post": {
                "tags": ["Favorites"],
                "summary": "Toggle a favorite room",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ToggleFavoriteRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Unknown room", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/notifications/check-availability": {
            "post": {
                "tags": ["Notifications"],
                "summary": "Check which favorite rooms are about to become free",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "payload", "in": "body", "schema": {"$ref": "#/definitions/CheckAvailabilityRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/timetable": {
            "get": {
                "tags": ["Timetable"],
                "summary": "Personal timetable of the authenticated student",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        }
    },
    "definitions": {
        "ToggleFavoriteRequest": {
            "type": "object",
            "required": ["room_id"],
            "properties": {
                "room_id": {"type": "integer"}
            }
        },
        "CheckAvailabilityRequest": {
            "type": "object",
            "properties": {
                "minutes_before": {"type": "integer", "minimum": 0, "maximum": 1440}
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
