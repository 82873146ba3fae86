// Package docs holds the OpenAPI document served under /swagger/.
// It mirrors the handler annotations; regenerate with go generate ./docs after changing them.
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
        "/auth/session": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Returns the session and the organizer reloaded from the database.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "auth"
                ],
                "summary": "Refresh the current session",
                "responses": {
                    "200": {
                        "description": "data contains session and organizer",
                        "schema": {
                            "$ref": "#/definitions/controllers.SessionSuccessResponse"
                        }
                    },
                    "401": {
                        "description": "error.code: unauthorized",
                        "schema": {
                            "$ref": "#/definitions/helpers.APIResponse"
                        }
                    },
                    "500": {
                        "description": "error.code: internal_error",
                        "schema": {
                            "$ref": "#/definitions/helpers.APIResponse"
                        }
                    }
                }
            }
        },
        "/auth/signin": {
            "post": {
                "description": "Looks up the organizer by email and opens a session. There is no password. On success the client should follow redirect after delay_ms.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "auth"
                ],
                "summary": "Sign in with an email address",
                "parameters": [
                    {
                        "description": "Email",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/controllers.SignInRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "data contains token, organizer and redirect",
                        "schema": {
                            "$ref": "#/definitions/controllers.SignInSuccessResponse"
                        }
                    },
                    "400": {
                        "description": "error.code: bad_request",
                        "schema": {
                            "$ref": "#/definitions/helpers.APIResponse"
                        }
                    },
                    "404": {
                        "description": "error.code: not_found",
                        "schema": {
                            "$ref": "#/definitions/helpers.APIResponse"
                        }
                    },
                    "429": {
                        "description": "error.code: too_many_requests",
                        "schema": {
                            "$ref": "#/definitions/helpers.APIResponse"
                        }
                    },
                    "500": {
                        "description": "error.code: internal_error",
                        "schema": {
                            "$ref": "#/definitions/helpers.APIResponse"
                        }
                    }
                }
            }
        },
        "/auth/signout": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Revokes the current session. The token stops working immediately.",
                "tags": [
                    "auth"
                ],
                "summary": "Sign out",
                "responses": {
                    "204": {
                        "description": "session revoked"
                    },
                    "401": {
                        "description": "error.code: unauthorized",
                        "schema": {
                            "$ref": "#/definitions/helpers.APIResponse"
                        }
                    },
                    "500": {
                        "description": "error.code: internal_error",
                        "schema": {
                            "$ref": "#/definitions/helpers.APIResponse"
                        }
                    }
                }
            }
        },
        "/dashboard": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Returns the signed-in organizer, all of their events newest first with approval pairs, and status counters.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "events"
                ],
                "summary": "Organizer dashboard",
                "responses": {
                    "200": {
                        "description": "data contains organizer, events and counts",
                        "schema": {
                            "$ref": "#/definitions/controllers.DashboardSuccessResponse"
                        }
                    },
                    "401": {
                        "description": "error.code: unauthorized",
                        "schema": {
                            "$ref": "#/definitions/helpers.APIResponse"
                        }
                    },
                    "500": {
                        "description": "error.code: internal_error",
                        "schema": {
                            "$ref": "#/definitions/helpers.APIResponse"
                        }
                    }
                }
            }
        },
        "/events": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Creates an event for the signed-in organizer. Status is always pending and approval flags false. The matching webhook is notified asynchronously.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "events"
                ],
                "summary": "Submit an event",
                "parameters": [
                    {
                        "description": "Event data",
                        "name": "event",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/controllers.CreateEventRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "data contains the created event; form is blank",
                        "schema": {
                            "$ref": "#/definitions/controllers.EventFormResponse"
                        }
                    },
                    "400": {
                        "description": "error.code: bad_request",
                        "schema": {
                            "$ref": "#/definitions/controllers.EventFormResponse"
                        }
                    },
                    "401": {
                        "description": "error.code: unauthorized",
                        "schema": {
                            "$ref": "#/definitions/helpers.APIResponse"
                        }
                    },
                    "500": {
                        "description": "error.code: internal_error",
                        "schema": {
                            "$ref": "#/definitions/controllers.EventFormResponse"
                        }
                    }
                }
            }
        },
        "/events/{eventID}/notification": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Returns the matching-webhook delivery for one of the signed-in organizer's events.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "events"
                ],
                "summary": "Webhook delivery status of an event",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Event ID (UUID)",
                        "name": "eventID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "data contains the delivery",
                        "schema": {
                            "$ref": "#/definitions/controllers.NotificationSuccessResponse"
                        }
                    },
                    "401": {
                        "description": "error.code: unauthorized",
                        "schema": {
                            "$ref": "#/definitions/helpers.APIResponse"
                        }
                    },
                    "404": {
                        "description": "error.code: not_found",
                        "schema": {
                            "$ref": "#/definitions/helpers.APIResponse"
                        }
                    },
                    "500": {
                        "description": "error.code: internal_error",
                        "schema": {
                            "$ref": "#/definitions/helpers.APIResponse"
                        }
                    }
                }
            }
        },
        "/healthz": {
            "get": {
                "description": "Reports whether the database is reachable.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "health"
                ],
                "summary": "Health check",
                "responses": {
                    "200": {
                        "description": "data.status: ok",
                        "schema": {
                            "$ref": "#/definitions/helpers.APIResponse"
                        }
                    },
                    "503": {
                        "description": "data.status: degraded",
                        "schema": {
                            "$ref": "#/definitions/helpers.APIResponse"
                        }
                    }
                }
            }
        },
        "/organizers": {
            "post": {
                "description": "Creates an organizer account. Email must be unique. On success form is blank; on failure form echoes the submitted values.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "organizers"
                ],
                "summary": "Register an organizer",
                "parameters": [
                    {
                        "description": "Organizer data",
                        "name": "organizer",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/controllers.RegisterOrganizerRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "data contains the created organizer",
                        "schema": {
                            "$ref": "#/definitions/controllers.OrganizerFormResponse"
                        }
                    },
                    "400": {
                        "description": "error.code: bad_request",
                        "schema": {
                            "$ref": "#/definitions/controllers.OrganizerFormResponse"
                        }
                    },
                    "409": {
                        "description": "error.code: conflict",
                        "schema": {
                            "$ref": "#/definitions/controllers.OrganizerFormResponse"
                        }
                    },
                    "500": {
                        "description": "error.code: internal_error",
                        "schema": {
                            "$ref": "#/definitions/controllers.OrganizerFormResponse"
                        }
                    }
                }
            }
        },
        "/vendors/{kind}": {
            "post": {
                "description": "Stores a venue, catering service or tech provider. The body is an object of the kind's schema fields.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "vendors"
                ],
                "summary": "Register a vendor",
                "parameters": [
                    {
                        "enum": [
                            "venue",
                            "catering",
                            "tech"
                        ],
                        "type": "string",
                        "description": "Vendor kind",
                        "name": "kind",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Field values keyed by schema field name",
                        "name": "vendor",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "data contains the stored vendor; form is blank",
                        "schema": {
                            "$ref": "#/definitions/controllers.VendorFormResponse"
                        }
                    },
                    "400": {
                        "description": "error.code: bad_request",
                        "schema": {
                            "$ref": "#/definitions/controllers.VendorFormResponse"
                        }
                    },
                    "404": {
                        "description": "error.code: not_found",
                        "schema": {
                            "$ref": "#/definitions/helpers.APIResponse"
                        }
                    },
                    "500": {
                        "description": "error.code: internal_error",
                        "schema": {
                            "$ref": "#/definitions/controllers.VendorFormResponse"
                        }
                    }
                }
            }
        },
        "/vendors/{kind}/schema": {
            "get": {
                "description": "Returns the ordered fields, input types and constraints of the registration form for venue, catering or tech.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "vendors"
                ],
                "summary": "Vendor form schema",
                "parameters": [
                    {
                        "enum": [
                            "venue",
                            "catering",
                            "tech"
                        ],
                        "type": "string",
                        "description": "Vendor kind",
                        "name": "kind",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "data contains the schema",
                        "schema": {
                            "$ref": "#/definitions/controllers.VendorSchemaSuccessResponse"
                        }
                    },
                    "404": {
                        "description": "error.code: not_found",
                        "schema": {
                            "$ref": "#/definitions/helpers.APIResponse"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "controllers.CreateEventRequest": {
            "type": "object",
            "properties": {
                "attendee_count": {
                    "type": "integer"
                },
                "budget": {
                    "type": "number"
                },
                "event_address": {
                    "type": "string"
                },
                "event_city": {
                    "type": "string"
                },
                "event_name": {
                    "type": "string"
                },
                "event_type": {
                    "type": "string"
                },
                "needs_catering": {
                    "type": "boolean"
                },
                "needs_tech": {
                    "type": "boolean"
                },
                "needs_venue": {
                    "type": "boolean"
                },
                "special_requirements": {
                    "type": "string"
                }
            }
        },
        "controllers.DashboardResponse": {
            "type": "object",
            "properties": {
                "counts": {
                    "$ref": "#/definitions/domain.StatusCounts"
                },
                "events": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/controllers.EventView"
                    }
                },
                "organizer": {
                    "$ref": "#/definitions/domain.Organizer"
                }
            }
        },
        "controllers.DashboardSuccessResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "$ref": "#/definitions/controllers.DashboardResponse"
                },
                "error": {
                    "$ref": "#/definitions/helpers.APIError"
                }
            }
        },
        "controllers.EventFormResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "$ref": "#/definitions/domain.Event"
                },
                "error": {
                    "$ref": "#/definitions/helpers.APIError"
                },
                "form": {
                    "$ref": "#/definitions/controllers.CreateEventRequest"
                }
            }
        },
        "controllers.EventView": {
            "type": "object",
            "properties": {
                "approvals": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/domain.ServiceApproval"
                    }
                },
                "attendee_count": {
                    "type": "integer"
                },
                "budget": {
                    "type": "string"
                },
                "catering_approved": {
                    "type": "boolean"
                },
                "created_at": {
                    "type": "string"
                },
                "event_address": {
                    "type": "string"
                },
                "event_city": {
                    "type": "string"
                },
                "event_id": {
                    "type": "string"
                },
                "event_name": {
                    "type": "string"
                },
                "event_type": {
                    "type": "string"
                },
                "needs_catering": {
                    "type": "boolean"
                },
                "needs_tech": {
                    "type": "boolean"
                },
                "needs_venue": {
                    "type": "boolean"
                },
                "organizer_id": {
                    "type": "string"
                },
                "special_requirements": {
                    "type": "string"
                },
                "status": {
                    "$ref": "#/definitions/domain.EventStatus"
                },
                "tech_approved": {
                    "type": "boolean"
                },
                "venue_approved": {
                    "type": "boolean"
                }
            }
        },
        "controllers.NotificationSuccessResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "$ref": "#/definitions/domain.WebhookDelivery"
                },
                "error": {
                    "$ref": "#/definitions/helpers.APIError"
                }
            }
        },
        "controllers.OrganizerFormResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "$ref": "#/definitions/domain.Organizer"
                },
                "error": {
                    "$ref": "#/definitions/helpers.APIError"
                },
                "form": {
                    "$ref": "#/definitions/controllers.RegisterOrganizerRequest"
                }
            }
        },
        "controllers.Redirect": {
            "type": "object",
            "properties": {
                "delay_ms": {
                    "type": "integer"
                },
                "path": {
                    "type": "string"
                }
            }
        },
        "controllers.RegisterOrganizerRequest": {
            "type": "object",
            "properties": {
                "city": {
                    "type": "string"
                },
                "company_name": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "events_per_year": {
                    "type": "integer"
                },
                "full_name": {
                    "type": "string"
                },
                "phone": {
                    "type": "string"
                },
                "typical_event_size": {
                    "type": "string"
                }
            }
        },
        "controllers.SessionResponse": {
            "type": "object",
            "properties": {
                "organizer": {
                    "$ref": "#/definitions/domain.Organizer"
                },
                "session": {
                    "$ref": "#/definitions/domain.Session"
                }
            }
        },
        "controllers.SessionSuccessResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "$ref": "#/definitions/controllers.SessionResponse"
                },
                "error": {
                    "$ref": "#/definitions/helpers.APIError"
                }
            }
        },
        "controllers.SignInRequest": {
            "type": "object",
            "properties": {
                "email": {
                    "type": "string"
                }
            }
        },
        "controllers.SignInResponse": {
            "type": "object",
            "properties": {
                "expires_at": {
                    "type": "string"
                },
                "organizer": {
                    "$ref": "#/definitions/domain.Organizer"
                },
                "redirect": {
                    "$ref": "#/definitions/controllers.Redirect"
                },
                "token": {
                    "type": "string"
                }
            }
        },
        "controllers.SignInSuccessResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "$ref": "#/definitions/controllers.SignInResponse"
                },
                "error": {
                    "$ref": "#/definitions/helpers.APIError"
                }
            }
        },
        "controllers.VendorFormResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "$ref": "#/definitions/domain.Vendor"
                },
                "error": {
                    "$ref": "#/definitions/helpers.APIError"
                },
                "form": {
                    "type": "object",
                    "additionalProperties": {}
                }
            }
        },
        "controllers.VendorSchemaSuccessResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "$ref": "#/definitions/domain.VendorSchema"
                },
                "error": {
                    "$ref": "#/definitions/helpers.APIError"
                }
            }
        },
        "domain.DeliveryStatus": {
            "type": "string",
            "enum": [
                "pending",
                "processing",
                "delivered",
                "dead"
            ],
            "x-enum-varnames": [
                "DeliveryPending",
                "DeliveryProcessing",
                "DeliveryDelivered",
                "DeliveryDead"
            ]
        },
        "domain.Event": {
            "type": "object",
            "properties": {
                "attendee_count": {
                    "type": "integer"
                },
                "budget": {
                    "type": "string"
                },
                "catering_approved": {
                    "type": "boolean"
                },
                "created_at": {
                    "type": "string"
                },
                "event_address": {
                    "type": "string"
                },
                "event_city": {
                    "type": "string"
                },
                "event_id": {
                    "type": "string"
                },
                "event_name": {
                    "type": "string"
                },
                "event_type": {
                    "type": "string"
                },
                "needs_catering": {
                    "type": "boolean"
                },
                "needs_tech": {
                    "type": "boolean"
                },
                "needs_venue": {
                    "type": "boolean"
                },
                "organizer_id": {
                    "type": "string"
                },
                "special_requirements": {
                    "type": "string"
                },
                "status": {
                    "$ref": "#/definitions/domain.EventStatus"
                },
                "tech_approved": {
                    "type": "boolean"
                },
                "venue_approved": {
                    "type": "boolean"
                }
            }
        },
        "domain.EventStatus": {
            "type": "string",
            "enum": [
                "pending",
                "matched",
                "confirmed",
                "completed",
                "cancelled"
            ],
            "x-enum-varnames": [
                "StatusPending",
                "StatusMatched",
                "StatusConfirmed",
                "StatusCompleted",
                "StatusCancelled"
            ]
        },
        "domain.FieldType": {
            "type": "string",
            "enum": [
                "text",
                "email",
                "tel",
                "integer",
                "decimal",
                "select"
            ],
            "x-enum-varnames": [
                "FieldText",
                "FieldEmail",
                "FieldTel",
                "FieldInteger",
                "FieldDecimal",
                "FieldSelect"
            ]
        },
        "domain.Organizer": {
            "type": "object",
            "properties": {
                "city": {
                    "type": "string"
                },
                "company_name": {
                    "type": "string"
                },
                "created_at": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "events_per_year": {
                    "type": "integer"
                },
                "full_name": {
                    "type": "string"
                },
                "organizer_id": {
                    "type": "string"
                },
                "phone": {
                    "type": "string"
                },
                "typical_event_size": {
                    "type": "string"
                }
            }
        },
        "domain.ServiceApproval": {
            "type": "object",
            "properties": {
                "approved": {
                    "type": "boolean"
                },
                "needed": {
                    "type": "boolean"
                },
                "service": {
                    "type": "string"
                }
            }
        },
        "domain.Session": {
            "type": "object",
            "properties": {
                "expires_at": {
                    "type": "string"
                },
                "issued_at": {
                    "type": "string"
                },
                "organizer_id": {
                    "type": "string"
                },
                "revoked_at": {
                    "type": "string"
                },
                "session_id": {
                    "type": "string"
                }
            }
        },
        "domain.StatusCounts": {
            "type": "object",
            "properties": {
                "completed": {
                    "type": "integer"
                },
                "confirmed": {
                    "type": "integer"
                },
                "pending": {
                    "type": "integer"
                },
                "total": {
                    "type": "integer"
                }
            }
        },
        "domain.Vendor": {
            "type": "object",
            "properties": {
                "created_at": {
                    "type": "string"
                },
                "fields": {
                    "type": "object",
                    "additionalProperties": {}
                },
                "id": {
                    "type": "string"
                },
                "kind": {
                    "$ref": "#/definitions/domain.VendorKind"
                }
            }
        },
        "domain.VendorField": {
            "type": "object",
            "properties": {
                "label": {
                    "type": "string"
                },
                "max": {
                    "type": "integer"
                },
                "min": {
                    "type": "integer"
                },
                "name": {
                    "type": "string"
                },
                "options": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "required": {
                    "type": "boolean"
                },
                "scale": {
                    "type": "integer"
                },
                "type": {
                    "$ref": "#/definitions/domain.FieldType"
                }
            }
        },
        "domain.VendorKind": {
            "type": "string",
            "enum": [
                "venue",
                "catering",
                "tech"
            ],
            "x-enum-varnames": [
                "VendorVenue",
                "VendorCatering",
                "VendorTech"
            ]
        },
        "domain.VendorSchema": {
            "type": "object",
            "properties": {
                "collection": {
                    "type": "string"
                },
                "fields": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/domain.VendorField"
                    }
                },
                "kind": {
                    "$ref": "#/definitions/domain.VendorKind"
                }
            }
        },
        "domain.WebhookDelivery": {
            "type": "object",
            "properties": {
                "attempts": {
                    "type": "integer"
                },
                "created_at": {
                    "type": "string"
                },
                "delivered_at": {
                    "type": "string"
                },
                "delivery_id": {
                    "type": "string"
                },
                "event_id": {
                    "type": "string"
                },
                "last_error": {
                    "type": "string"
                },
                "next_attempt_at": {
                    "type": "string"
                },
                "status": {
                    "$ref": "#/definitions/domain.DeliveryStatus"
                }
            }
        },
        "helpers.APIError": {
            "type": "object",
            "properties": {
                "code": {
                    "type": "string"
                },
                "message": {
                    "type": "string"
                }
            }
        },
        "helpers.APIResponse": {
            "type": "object",
            "properties": {
                "data": {},
                "error": {
                    "$ref": "#/definitions/helpers.APIError"
                },
                "form": {}
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
	Title:            "EventMatch API",
	Description:      "Organizer accounts, event requests and vendor registration.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
