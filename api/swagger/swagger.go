// Package swagger registers the OpenAPI document served under /docs.
package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Hours API",
        "description": "Office hours scheduling and attendance for schools",
        "version": "1.0.0"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "schemes": [
        "http",
        "https"
    ],
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header",
            "description": "Bearer credential issued by the identity directory"
        }
    },
    "tags": [
        {
            "name": "Attendance",
            "description": "Encounters and stays"
        },
        {
            "name": "Courses",
            "description": "Courses, course keys and memberships"
        },
        {
            "name": "Export",
            "description": "Attendance sheet export"
        },
        {
            "name": "Locations",
            "description": "Physical locations of a school"
        },
        {
            "name": "Ops",
            "description": "Operational endpoints"
        },
        {
            "name": "Schools",
            "description": "Schools, subscriptions, school keys and adminships"
        },
        {
            "name": "Sessions",
            "description": "Sessions, requests and commitments"
        }
    ],
    "paths": {
        "/encounter/new": {
            "post": {
                "tags": [
                    "Attendance"
                ],
                "summary": "Record an encounter",
                "produces": [
                    "application/json"
                ],
                "consumes": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "description": "Encounter payload",
                        "schema": {
                            "$ref": "#/definitions/dto.EncounterNewRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Envelope"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/dto.Encounter"
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            }
        },
        "/stay/new": {
            "post": {
                "tags": [
                    "Attendance"
                ],
                "summary": "Record a stay",
                "description": "Each endpoint takes either an encounter id or a timestamp.",
                "produces": [
                    "application/json"
                ],
                "consumes": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "description": "Stay payload",
                        "schema": {
                            "$ref": "#/definitions/dto.StayNewRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Envelope"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/dto.StayData"
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            }
        },
        "/stay_data/new": {
            "post": {
                "tags": [
                    "Attendance"
                ],
                "summary": "Append stay data",
                "produces": [
                    "application/json"
                ],
                "consumes": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "description": "Stay data payload",
                        "schema": {
                            "$ref": "#/definitions/dto.StayDataNewRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Envelope"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/dto.StayData"
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            }
        },
        "/encounter/view": {
            "post": {
                "tags": [
                    "Attendance"
                ],
                "summary": "List encounters",
                "produces": [
                    "application/json"
                ],
                "consumes": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "filter",
                        "in": "body",
                        "required": false,
                        "description": "Filter",
                        "schema": {
                            "$ref": "#/definitions/models.EncounterFilter"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Envelope"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "type": "array",
                                            "items": {
                                                "$ref": "#/definitions/dto.Encounter"
                                            }
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            }
        },
        "/stay/view": {
            "post": {
                "tags": [
                    "Attendance"
                ],
                "summary": "List stays",
                "produces": [
                    "application/json"
                ],
                "consumes": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "filter",
                        "in": "body",
                        "required": false,
                        "description": "Filter",
                        "schema": {
                            "$ref": "#/definitions/models.StayFilter"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Envelope"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "type": "array",
                                            "items": {
                                                "$ref": "#/definitions/dto.Stay"
                                            }
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            }
        },
        "/stay_data/view": {
            "post": {
                "tags": [
                    "Attendance"
                ],
                "summary": "List stay data",
                "produces": [
                    "application/json"
                ],
                "consumes": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "filter",
                        "in": "body",
                        "required": false,
                        "description": "Filter",
                        "schema": {
                            "$ref": "#/definitions/models.StayDataFilter"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Envelope"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "type": "array",
                                            "items": {
                                                "$ref": "#/definitions/dto.StayData"
                                            }
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            }
        },
        "/course/new": {
            "post": {
                "tags": [
                    "Courses"
                ],
                "summary": "Create course",
                "description": "The caller becomes its first instructor.",
                "produces": [
                    "application/json"
                ],
                "consumes": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "description": "Course payload",
                        "schema": {
                            "$ref": "#/definitions/dto.CourseNewRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Envelope"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/dto.CourseData"
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            }
        },
        "/course_data/new": {
            "post": {
                "tags": [
                    "Courses"
                ],
                "summary": "Append course data",
                "produces": [
                    "application/json"
                ],
                "consumes": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "description": "Course data payload",
                        "schema": {
                            "$ref": "#/definitions/dto.CourseDataNewRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Envelope"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/dto.CourseData"
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            }
        },
        "/course_key/new": {
            "post": {
                "tags": [
                    "Courses"
                ],
                "summary": "Issue course key",
                "produces": [
                    "application/json"
                ],
                "consumes": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "description": "Course key payload",
                        "schema": {
                            "$ref": "#/definitions/dto.CourseKeyNewRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Envelope"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/dto.CourseKeyData"
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            }
        },
        "/course_key_data/new": {
            "post": {
                "tags": [
                    "Courses"
                ],
                "summary": "Append course key data",
                "produces": [
                    "application/json"
                ],
                "consumes": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "description": "Course key data payload",
                        "schema": {
                            "$ref": "#/definitions/dto.CourseKeyDataNewRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Envelope"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/dto.CourseKeyData"
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            }
        },
        "/course_membership/new_key": {
            "post": {
                "tags": [
                    "Courses"
                ],
                "summary": "Redeem course key",
                "produces": [
                    "application/json"
                ],
                "consumes": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "description": "Redemption payload",
                        "schema": {
                            "$ref": "#/definitions/dto.CourseMembershipNewKeyRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Envelope"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/dto.CourseMembership"
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            }
        },
        "/course_membership/new_cancel": {
            "post": {
                "tags": [
                    "Courses"
                ],
                "summary": "Leave or remove from course",
                "produces": [
                    "application/json"
                ],
                "consumes": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "description": "Cancel payload",
                        "schema": {
                            "$ref": "#/definitions/dto.CourseMembershipNewCancelRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Envelope"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/dto.CourseMembership"
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            }
        },
        "/course/view": {
            "post": {
                "tags": [
                    "Courses"
                ],
                "summary": "List courses",
                "produces": [
                    "application/json"
                ],
                "consumes": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "filter",
                        "in": "body",
                        "required": false,
                        "description": "Filter",
                        "schema": {
                            "$ref": "#/definitions/models.CourseFilter"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Envelope"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "type": "array",
                                            "items": {
                                                "$ref": "#/definitions/dto.Course"
                                            }
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            }
        },
        "/course_data/view": {
            "post": {
                "tags": [
                    "Courses"
                ],
                "summary": "List course data",
                "produces": [
                    "application/json"
                ],
                "consumes": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "filter",
                        "in": "body",
                        "required": false,
                        "description": "Filter",
                        "schema": {
                            "$ref": "#/definitions/models.CourseDataFilter"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Envelope"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "type": "array",
                                            "items": {
                                                "$ref": "#/definitions/dto.CourseData"
                                            }
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            }
        },
        "/course_key/view": {
            "post": {
                "tags": [
                    "Courses"
                ],
                "summary": "List course keys",
                "produces": [
                    "application/json"
                ],
                "consumes": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "filter",
                        "in": "body",
                        "required": false,
                        "description": "Filter",
                        "schema": {
                            "$ref": "#/definitions/models.CourseKeyFilter"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Envelope"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "type": "array",
                                            "items": {
                                                "$ref": "#/definitions/dto.CourseKey"
                                            }
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            }
        },
        "/course_key_data/view": {
            "post": {
                "tags": [
                    "Courses"
                ],
                "summary": "List course key data",
                "produces": [
                    "application/json"
                ],
                "consumes": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "filter",
                        "in": "body",
                        "required": false,
                        "description": "Filter",
                        "schema": {
                            "$ref": "#/definitions/models.CourseKeyDataFilter"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Envelope"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "type": "array",
                                            "items": {
                                                "$ref": "#/definitions/dto.CourseKeyData"
                                            }
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            }
        },
        "/course_membership/view": {
            "post": {
                "tags": [
                    "Courses"
                ],
                "summary": "List course memberships",
                "produces": [
                    "application/json"
                ],
                "consumes": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "filter",
                        "in": "body",
                        "required": false,
                        "description": "Filter",
                        "schema": {
                            "$ref": "#/definitions/models.CourseMembershipFilter"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Envelope"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "type": "array",
                                            "items": {
                                                "$ref": "#/definitions/dto.CourseMembership"
                                            }
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            }
        },
        "/attendance_export/new": {
            "post": {
                "tags": [
                    "Export"
                ],
                "summary": "Export session attendance",
                "description": "Renders the sheet and returns a signed download link.",
                "produces": [
                    "application/json"
                ],
                "consumes": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "description": "Export payload",
                        "schema": {
                            "$ref": "#/definitions/dto.AttendanceExportRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Envelope"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/dto.AttendanceExport"
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            }
        },
        "/export/{token}": {
            "get": {
                "tags": [
                    "Export"
                ],
                "summary": "Download exported file",
                "produces": [
                    "application/octet-stream"
                ],
                "parameters": [
                    {
                        "name": "token",
                        "in": "path",
                        "required": true,
                        "description": "Signed token",
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "file"
                        }
                    },
                    "401": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/response.Envelope"
                        }
                    },
                    "404": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/response.Envelope"
                        }
                    }
                }
            }
        },
        "/location/new": {
            "post": {
                "tags": [
                    "Locations"
                ],
                "summary": "Create location",
                "produces": [
                    "application/json"
                ],
                "consumes": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "description": "Location payload",
                        "schema": {
                            "$ref": "#/definitions/dto.LocationNewRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Envelope"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/dto.LocationData"
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            }
        },
        "/location_data/new": {
            "post": {
                "tags": [
                    "Locations"
                ],
                "summary": "Append location data",
                "produces": [
                    "application/json"
                ],
                "consumes": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "description": "Location data payload",
                        "schema": {
                            "$ref": "#/definitions/dto.LocationDataNewRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Envelope"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/dto.LocationData"
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            }
        },
        "/location/view": {
            "post": {
                "tags": [
                    "Locations"
                ],
                "summary": "List locations",
                "produces": [
                    "application/json"
                ],
                "consumes": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "filter",
                        "in": "body",
                        "required": false,
                        "description": "Filter",
                        "schema": {
                            "$ref": "#/definitions/models.LocationFilter"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Envelope"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "type": "array",
                                            "items": {
                                                "$ref": "#/definitions/dto.Location"
                                            }
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            }
        },
        "/location_data/view": {
            "post": {
                "tags": [
                    "Locations"
                ],
                "summary": "List location data",
                "produces": [
                    "application/json"
                ],
                "consumes": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "filter",
                        "in": "body",
                        "required": false,
                        "description": "Filter",
                        "schema": {
                            "$ref": "#/definitions/models.LocationDataFilter"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Envelope"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "type": "array",
                                            "items": {
                                                "$ref": "#/definitions/dto.LocationData"
                                            }
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            }
        },
        "/health": {
            "get": {
                "tags": [
                    "Ops"
                ],
                "summary": "Liveness check",
                "produces": [
                    "application/json"
                ],
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
        "/ready": {
            "get": {
                "tags": [
                    "Ops"
                ],
                "summary": "Readiness check",
                "description": "Fails while PostgreSQL is unreachable.",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "503": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/response.Envelope"
                        }
                    }
                }
            }
        },
        "/subscription/new": {
            "post": {
                "tags": [
                    "Schools"
                ],
                "summary": "Create subscription",
                "produces": [
                    "application/json"
                ],
                "consumes": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "description": "Subscription payload",
                        "schema": {
                            "$ref": "#/definitions/dto.SubscriptionNewRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Envelope"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/dto.Subscription"
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            }
        },
        "/school/new": {
            "post": {
                "tags": [
                    "Schools"
                ],
                "summary": "Create school",
                "description": "The caller becomes its first administrator.",
                "produces": [
                    "application/json"
                ],
                "consumes": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "description": "School payload",
                        "schema": {
                            "$ref": "#/definitions/dto.SchoolNewRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Envelope"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/dto.SchoolData"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/response.Envelope"
                        }
                    }
                }
            }
        },
        "/school_data/new": {
            "post": {
                "tags": [
                    "Schools"
                ],
                "summary": "Append school data",
                "produces": [
                    "application/json"
                ],
                "consumes": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "description": "School data payload",
                        "schema": {
                            "$ref": "#/definitions/dto.SchoolDataNewRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Envelope"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/dto.SchoolData"
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            }
        },
        "/school_duration/new": {
            "post": {
                "tags": [
                    "Schools"
                ],
                "summary": "Open timetable block",
                "description": "The block gets its weekday and minute span from school_duration_data.",
                "produces": [
                    "application/json"
                ],
                "consumes": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "description": "School duration payload",
                        "schema": {
                            "$ref": "#/definitions/dto.SchoolDurationNewRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Envelope"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/dto.SchoolDuration"
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            }
        },
        "/school_duration_data/new": {
            "post": {
                "tags": [
                    "Schools"
                ],
                "summary": "Append timetable block data",
                "produces": [
                    "application/json"
                ],
                "consumes": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "description": "School duration data payload",
                        "schema": {
                            "$ref": "#/definitions/dto.SchoolDurationDataNewRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Envelope"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/dto.SchoolDurationData"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/response.Envelope"
                        }
                    }
                }
            }
        },
        "/school_key/new": {
            "post": {
                "tags": [
                    "Schools"
                ],
                "summary": "Issue school key",
                "produces": [
                    "application/json"
                ],
                "consumes": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "description": "School key payload",
                        "schema": {
                            "$ref": "#/definitions/dto.SchoolKeyNewRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Envelope"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/dto.SchoolKeyData"
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            }
        },
        "/school_key_data/new": {
            "post": {
                "tags": [
                    "Schools"
                ],
                "summary": "Append school key data",
                "produces": [
                    "application/json"
                ],
                "consumes": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "description": "School key data payload",
                        "schema": {
                            "$ref": "#/definitions/dto.SchoolKeyDataNewRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Envelope"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/dto.SchoolKeyData"
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            }
        },
        "/adminship/new_key": {
            "post": {
                "tags": [
                    "Schools"
                ],
                "summary": "Redeem school key",
                "produces": [
                    "application/json"
                ],
                "consumes": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "description": "Redemption payload",
                        "schema": {
                            "$ref": "#/definitions/dto.AdminshipNewKeyRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Envelope"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/dto.Adminship"
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            }
        },
        "/adminship/new_cancel": {
            "post": {
                "tags": [
                    "Schools"
                ],
                "summary": "Revoke adminship",
                "produces": [
                    "application/json"
                ],
                "consumes": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "description": "Cancel payload",
                        "schema": {
                            "$ref": "#/definitions/dto.AdminshipNewCancelRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Envelope"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/dto.Adminship"
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            }
        },
        "/subscription/view": {
            "post": {
                "tags": [
                    "Schools"
                ],
                "summary": "List own subscriptions",
                "produces": [
                    "application/json"
                ],
                "consumes": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "filter",
                        "in": "body",
                        "required": false,
                        "description": "Filter",
                        "schema": {
                            "$ref": "#/definitions/models.SubscriptionFilter"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Envelope"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "type": "array",
                                            "items": {
                                                "$ref": "#/definitions/dto.Subscription"
                                            }
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            }
        },
        "/school/view": {
            "post": {
                "tags": [
                    "Schools"
                ],
                "summary": "List schools",
                "produces": [
                    "application/json"
                ],
                "consumes": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "filter",
                        "in": "body",
                        "required": false,
                        "description": "Filter",
                        "schema": {
                            "$ref": "#/definitions/models.SchoolFilter"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Envelope"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "type": "array",
                                            "items": {
                                                "$ref": "#/definitions/dto.School"
                                            }
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            }
        },
        "/school_data/view": {
            "post": {
                "tags": [
                    "Schools"
                ],
                "summary": "List school data",
                "produces": [
                    "application/json"
                ],
                "consumes": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "filter",
                        "in": "body",
                        "required": false,
                        "description": "Filter",
                        "schema": {
                            "$ref": "#/definitions/models.SchoolDataFilter"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Envelope"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "type": "array",
                                            "items": {
                                                "$ref": "#/definitions/dto.SchoolData"
                                            }
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            }
        },
        "/school_duration/view": {
            "post": {
                "tags": [
                    "Schools"
                ],
                "summary": "List timetable blocks",
                "produces": [
                    "application/json"
                ],
                "consumes": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "filter",
                        "in": "body",
                        "required": false,
                        "description": "Filter",
                        "schema": {
                            "$ref": "#/definitions/models.SchoolDurationFilter"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Envelope"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "type": "array",
                                            "items": {
                                                "$ref": "#/definitions/dto.SchoolDuration"
                                            }
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            }
        },
        "/school_duration_data/view": {
            "post": {
                "tags": [
                    "Schools"
                ],
                "summary": "List timetable block data",
                "produces": [
                    "application/json"
                ],
                "consumes": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "filter",
                        "in": "body",
                        "required": false,
                        "description": "Filter",
                        "schema": {
                            "$ref": "#/definitions/models.SchoolDurationDataFilter"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Envelope"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "type": "array",
                                            "items": {
                                                "$ref": "#/definitions/dto.SchoolDurationData"
                                            }
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            }
        },
        "/school_key/view": {
            "post": {
                "tags": [
                    "Schools"
                ],
                "summary": "List school keys",
                "produces": [
                    "application/json"
                ],
                "consumes": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "filter",
                        "in": "body",
                        "required": false,
                        "description": "Filter",
                        "schema": {
                            "$ref": "#/definitions/models.SchoolKeyFilter"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Envelope"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "type": "array",
                                            "items": {
                                                "$ref": "#/definitions/dto.SchoolKey"
                                            }
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            }
        },
        "/school_key_data/view": {
            "post": {
                "tags": [
                    "Schools"
                ],
                "summary": "List school key data",
                "produces": [
                    "application/json"
                ],
                "consumes": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "filter",
                        "in": "body",
                        "required": false,
                        "description": "Filter",
                        "schema": {
                            "$ref": "#/definitions/models.SchoolKeyDataFilter"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Envelope"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "type": "array",
                                            "items": {
                                                "$ref": "#/definitions/dto.SchoolKeyData"
                                            }
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            }
        },
        "/adminship/view": {
            "post": {
                "tags": [
                    "Schools"
                ],
                "summary": "List adminships",
                "produces": [
                    "application/json"
                ],
                "consumes": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "filter",
                        "in": "body",
                        "required": false,
                        "description": "Filter",
                        "schema": {
                            "$ref": "#/definitions/models.AdminshipFilter"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Envelope"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "type": "array",
                                            "items": {
                                                "$ref": "#/definitions/dto.Adminship"
                                            }
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            }
        },
        "/session/new": {
            "post": {
                "tags": [
                    "Sessions"
                ],
                "summary": "Schedule session",
                "produces": [
                    "application/json"
                ],
                "consumes": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "description": "Session payload",
                        "schema": {
                            "$ref": "#/definitions/dto.SessionNewRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Envelope"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/dto.SessionData"
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            }
        },
        "/session_data/new": {
            "post": {
                "tags": [
                    "Sessions"
                ],
                "summary": "Append session data",
                "produces": [
                    "application/json"
                ],
                "consumes": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "description": "Session data payload",
                        "schema": {
                            "$ref": "#/definitions/dto.SessionDataNewRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Envelope"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/dto.SessionData"
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            }
        },
        "/session_request/new": {
            "post": {
                "tags": [
                    "Sessions"
                ],
                "summary": "Request a session",
                "produces": [
                    "application/json"
                ],
                "consumes": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "description": "Request payload",
                        "schema": {
                            "$ref": "#/definitions/dto.SessionRequestNewRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Envelope"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/dto.SessionRequest"
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            }
        },
        "/session_request_response/new": {
            "post": {
                "tags": [
                    "Sessions"
                ],
                "summary": "Accept or decline a session request",
                "description": "Supplying session_id accepts; omitting it declines.",
                "produces": [
                    "application/json"
                ],
                "consumes": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "description": "Response payload",
                        "schema": {
                            "$ref": "#/definitions/dto.SessionRequestResponseNewRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Envelope"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/dto.SessionRequestResponse"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "409": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/response.Envelope"
                        }
                    }
                }
            }
        },
        "/commitment/new": {
            "post": {
                "tags": [
                    "Sessions"
                ],
                "summary": "Commit attendees to a session",
                "produces": [
                    "application/json"
                ],
                "consumes": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "description": "Commitment payload",
                        "schema": {
                            "$ref": "#/definitions/dto.CommitmentNewRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Envelope"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "type": "array",
                                            "items": {
                                                "$ref": "#/definitions/dto.Commitment"
                                            }
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            }
        },
        "/session/view": {
            "post": {
                "tags": [
                    "Sessions"
                ],
                "summary": "List sessions",
                "produces": [
                    "application/json"
                ],
                "consumes": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "filter",
                        "in": "body",
                        "required": false,
                        "description": "Filter",
                        "schema": {
                            "$ref": "#/definitions/models.SessionFilter"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Envelope"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "type": "array",
                                            "items": {
                                                "$ref": "#/definitions/dto.Session"
                                            }
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            }
        },
        "/session_data/view": {
            "post": {
                "tags": [
                    "Sessions"
                ],
                "summary": "List session data",
                "produces": [
                    "application/json"
                ],
                "consumes": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "filter",
                        "in": "body",
                        "required": false,
                        "description": "Filter",
                        "schema": {
                            "$ref": "#/definitions/models.SessionDataFilter"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Envelope"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "type": "array",
                                            "items": {
                                                "$ref": "#/definitions/dto.SessionData"
                                            }
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            }
        },
        "/session_request/view": {
            "post": {
                "tags": [
                    "Sessions"
                ],
                "summary": "List session requests",
                "produces": [
                    "application/json"
                ],
                "consumes": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "filter",
                        "in": "body",
                        "required": false,
                        "description": "Filter",
                        "schema": {
                            "$ref": "#/definitions/models.SessionRequestFilter"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Envelope"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "type": "array",
                                            "items": {
                                                "$ref": "#/definitions/dto.SessionRequest"
                                            }
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            }
        },
        "/session_request_response/view": {
            "post": {
                "tags": [
                    "Sessions"
                ],
                "summary": "List session request responses",
                "produces": [
                    "application/json"
                ],
                "consumes": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "filter",
                        "in": "body",
                        "required": false,
                        "description": "Filter",
                        "schema": {
                            "$ref": "#/definitions/models.SessionRequestResponseFilter"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Envelope"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "type": "array",
                                            "items": {
                                                "$ref": "#/definitions/dto.SessionRequestResponse"
                                            }
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            }
        },
        "/commitment/view": {
            "post": {
                "tags": [
                    "Sessions"
                ],
                "summary": "List commitments",
                "produces": [
                    "application/json"
                ],
                "consumes": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "filter",
                        "in": "body",
                        "required": false,
                        "description": "Filter",
                        "schema": {
                            "$ref": "#/definitions/models.CommitmentFilter"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Envelope"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "type": "array",
                                            "items": {
                                                "$ref": "#/definitions/dto.Commitment"
                                            }
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "dto.SubscriptionNewRequest": {
            "type": "object",
            "properties": {
                "subscription_kind": {
                    "type": "string"
                }
            },
            "required": [
                "subscription_kind"
            ]
        },
        "dto.SchoolNewRequest": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "whole": {
                    "type": "boolean"
                }
            },
            "required": [
                "name"
            ]
        },
        "dto.SchoolDataNewRequest": {
            "type": "object",
            "properties": {
                "school_id": {
                    "type": "integer"
                },
                "name": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "active": {
                    "type": "boolean"
                }
            },
            "required": [
                "school_id",
                "name"
            ]
        },
        "dto.SchoolDurationNewRequest": {
            "type": "object",
            "properties": {
                "school_id": {
                    "type": "integer"
                }
            },
            "required": [
                "school_id"
            ]
        },
        "dto.SchoolDurationDataNewRequest": {
            "type": "object",
            "properties": {
                "school_duration_id": {
                    "type": "integer"
                },
                "day": {
                    "type": "integer"
                },
                "minute_start": {
                    "type": "integer"
                },
                "minute_end": {
                    "type": "integer"
                },
                "active": {
                    "type": "boolean"
                }
            },
            "required": [
                "school_duration_id"
            ]
        },
        "dto.SchoolKeyNewRequest": {
            "type": "object",
            "properties": {
                "school_id": {
                    "type": "integer"
                },
                "start_time": {
                    "type": "integer"
                },
                "end_time": {
                    "type": "integer"
                }
            },
            "required": [
                "school_id"
            ]
        },
        "dto.SchoolKeyDataNewRequest": {
            "type": "object",
            "properties": {
                "school_key_key": {
                    "type": "string"
                },
                "active": {
                    "type": "boolean"
                }
            },
            "required": [
                "school_key_key"
            ]
        },
        "dto.AdminshipNewKeyRequest": {
            "type": "object",
            "properties": {
                "school_key_key": {
                    "type": "string"
                }
            },
            "required": [
                "school_key_key"
            ]
        },
        "dto.AdminshipNewCancelRequest": {
            "type": "object",
            "properties": {
                "user_id": {
                    "type": "integer"
                },
                "school_id": {
                    "type": "integer"
                }
            },
            "required": [
                "user_id",
                "school_id"
            ]
        },
        "dto.LocationNewRequest": {
            "type": "object",
            "properties": {
                "school_id": {
                    "type": "integer"
                },
                "name": {
                    "type": "string"
                },
                "address": {
                    "type": "string"
                },
                "phone": {
                    "type": "string"
                }
            },
            "required": [
                "school_id",
                "name"
            ]
        },
        "dto.LocationDataNewRequest": {
            "type": "object",
            "properties": {
                "location_id": {
                    "type": "integer"
                },
                "name": {
                    "type": "string"
                },
                "address": {
                    "type": "string"
                },
                "phone": {
                    "type": "string"
                },
                "active": {
                    "type": "boolean"
                }
            },
            "required": [
                "location_id",
                "name"
            ]
        },
        "dto.CourseNewRequest": {
            "type": "object",
            "properties": {
                "school_id": {
                    "type": "integer"
                },
                "location_id": {
                    "type": "integer"
                },
                "name": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "homeroom": {
                    "type": "boolean"
                }
            },
            "required": [
                "school_id",
                "location_id",
                "name"
            ]
        },
        "dto.CourseDataNewRequest": {
            "type": "object",
            "properties": {
                "course_id": {
                    "type": "integer"
                },
                "location_id": {
                    "type": "integer"
                },
                "name": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "homeroom": {
                    "type": "boolean"
                },
                "active": {
                    "type": "boolean"
                }
            },
            "required": [
                "course_id",
                "location_id",
                "name"
            ]
        },
        "dto.CourseKeyNewRequest": {
            "type": "object",
            "properties": {
                "course_id": {
                    "type": "integer"
                },
                "max_uses": {
                    "type": "integer"
                },
                "course_membership_kind": {
                    "type": "string"
                },
                "start_time": {
                    "type": "integer"
                },
                "end_time": {
                    "type": "integer"
                }
            },
            "required": [
                "course_id",
                "course_membership_kind"
            ]
        },
        "dto.CourseKeyDataNewRequest": {
            "type": "object",
            "properties": {
                "course_key_key": {
                    "type": "string"
                },
                "active": {
                    "type": "boolean"
                }
            },
            "required": [
                "course_key_key"
            ]
        },
        "dto.CourseMembershipNewKeyRequest": {
            "type": "object",
            "properties": {
                "course_key_key": {
                    "type": "string"
                }
            },
            "required": [
                "course_key_key"
            ]
        },
        "dto.CourseMembershipNewCancelRequest": {
            "type": "object",
            "properties": {
                "user_id": {
                    "type": "integer"
                },
                "course_id": {
                    "type": "integer"
                }
            },
            "required": [
                "user_id",
                "course_id"
            ]
        },
        "dto.SessionNewRequest": {
            "type": "object",
            "properties": {
                "course_id": {
                    "type": "integer"
                },
                "name": {
                    "type": "string"
                },
                "start_time": {
                    "type": "integer"
                },
                "end_time": {
                    "type": "integer"
                },
                "attendee_user_ids": {
                    "type": "array",
                    "items": {
                        "type": "integer"
                    }
                }
            },
            "required": [
                "course_id",
                "name"
            ]
        },
        "dto.SessionDataNewRequest": {
            "type": "object",
            "properties": {
                "session_id": {
                    "type": "integer"
                },
                "name": {
                    "type": "string"
                },
                "start_time": {
                    "type": "integer"
                },
                "end_time": {
                    "type": "integer"
                },
                "active": {
                    "type": "boolean"
                }
            },
            "required": [
                "session_id",
                "name"
            ]
        },
        "dto.SessionRequestNewRequest": {
            "type": "object",
            "properties": {
                "course_id": {
                    "type": "integer"
                },
                "message": {
                    "type": "string"
                },
                "start_time": {
                    "type": "integer"
                },
                "end_time": {
                    "type": "integer"
                }
            },
            "required": [
                "course_id"
            ]
        },
        "dto.SessionRequestResponseNewRequest": {
            "type": "object",
            "properties": {
                "session_request_id": {
                    "type": "integer"
                },
                "message": {
                    "type": "string"
                },
                "session_id": {
                    "type": "integer"
                }
            },
            "required": [
                "session_request_id"
            ]
        },
        "dto.CommitmentNewRequest": {
            "type": "object",
            "properties": {
                "session_id": {
                    "type": "integer"
                },
                "attendee_user_ids": {
                    "type": "array",
                    "items": {
                        "type": "integer"
                    }
                },
                "active": {
                    "type": "boolean"
                }
            },
            "required": [
                "session_id",
                "attendee_user_ids"
            ]
        },
        "dto.EncounterNewRequest": {
            "type": "object",
            "properties": {
                "location_id": {
                    "type": "integer"
                },
                "attendee_user_id": {
                    "type": "integer"
                }
            },
            "required": [
                "location_id",
                "attendee_user_id"
            ]
        },
        "dto.StayNewRequest": {
            "type": "object",
            "properties": {
                "location_id": {
                    "type": "integer"
                },
                "attendee_user_id": {
                    "type": "integer"
                },
                "fst_encounter_id": {
                    "type": "integer"
                },
                "fst_time": {
                    "type": "integer"
                },
                "snd_encounter_id": {
                    "type": "integer"
                },
                "snd_time": {
                    "type": "integer"
                }
            },
            "required": [
                "location_id",
                "attendee_user_id"
            ]
        },
        "dto.StayDataNewRequest": {
            "type": "object",
            "properties": {
                "stay_id": {
                    "type": "integer"
                },
                "fst_encounter_id": {
                    "type": "integer"
                },
                "fst_time": {
                    "type": "integer"
                },
                "snd_encounter_id": {
                    "type": "integer"
                },
                "snd_time": {
                    "type": "integer"
                },
                "active": {
                    "type": "boolean"
                }
            },
            "required": [
                "stay_id"
            ]
        },
        "dto.AttendanceExportRequest": {
            "type": "object",
            "properties": {
                "session_id": {
                    "type": "integer"
                },
                "format": {
                    "type": "string"
                }
            },
            "required": [
                "session_id",
                "format"
            ]
        },
        "dto.Subscription": {
            "type": "object",
            "properties": {
                "subscription_id": {
                    "type": "integer"
                },
                "creation_time": {
                    "type": "integer"
                },
                "creator_user_id": {
                    "type": "integer"
                },
                "subscription_kind": {
                    "type": "string"
                },
                "max_uses": {
                    "type": "integer"
                }
            }
        },
        "dto.School": {
            "type": "object",
            "properties": {
                "school_id": {
                    "type": "integer"
                },
                "creation_time": {
                    "type": "integer"
                },
                "creator_user_id": {
                    "type": "integer"
                },
                "whole": {
                    "type": "boolean"
                }
            }
        },
        "dto.SchoolData": {
            "type": "object",
            "properties": {
                "school_data_id": {
                    "type": "integer"
                },
                "creation_time": {
                    "type": "integer"
                },
                "creator_user_id": {
                    "type": "integer"
                },
                "school": {
                    "$ref": "#/definitions/dto.School"
                },
                "name": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "active": {
                    "type": "boolean"
                }
            }
        },
        "dto.SchoolDuration": {
            "type": "object",
            "properties": {
                "school_duration_id": {
                    "type": "integer"
                },
                "creation_time": {
                    "type": "integer"
                },
                "creator_user_id": {
                    "type": "integer"
                },
                "school": {
                    "$ref": "#/definitions/dto.School"
                }
            }
        },
        "dto.SchoolDurationData": {
            "type": "object",
            "properties": {
                "school_duration_data_id": {
                    "type": "integer"
                },
                "creation_time": {
                    "type": "integer"
                },
                "creator_user_id": {
                    "type": "integer"
                },
                "school_duration": {
                    "$ref": "#/definitions/dto.SchoolDuration"
                },
                "day": {
                    "type": "integer"
                },
                "minute_start": {
                    "type": "integer"
                },
                "minute_end": {
                    "type": "integer"
                },
                "active": {
                    "type": "boolean"
                }
            }
        },
        "dto.SchoolKey": {
            "type": "object",
            "properties": {
                "school_key_key": {
                    "type": "string"
                },
                "creation_time": {
                    "type": "integer"
                },
                "creator_user_id": {
                    "type": "integer"
                },
                "school": {
                    "$ref": "#/definitions/dto.School"
                },
                "start_time": {
                    "type": "integer"
                },
                "end_time": {
                    "type": "integer"
                }
            }
        },
        "dto.SchoolKeyData": {
            "type": "object",
            "properties": {
                "school_key_data_id": {
                    "type": "integer"
                },
                "creation_time": {
                    "type": "integer"
                },
                "creator_user_id": {
                    "type": "integer"
                },
                "school_key": {
                    "$ref": "#/definitions/dto.SchoolKey"
                },
                "active": {
                    "type": "boolean"
                }
            }
        },
        "dto.Adminship": {
            "type": "object",
            "properties": {
                "adminship_id": {
                    "type": "integer"
                },
                "creation_time": {
                    "type": "integer"
                },
                "creator_user_id": {
                    "type": "integer"
                },
                "user_id": {
                    "type": "integer"
                },
                "school": {
                    "$ref": "#/definitions/dto.School"
                },
                "adminship_kind": {
                    "type": "string"
                },
                "school_key": {
                    "$ref": "#/definitions/dto.SchoolKey"
                }
            }
        },
        "dto.Location": {
            "type": "object",
            "properties": {
                "location_id": {
                    "type": "integer"
                },
                "creation_time": {
                    "type": "integer"
                },
                "creator_user_id": {
                    "type": "integer"
                },
                "school": {
                    "$ref": "#/definitions/dto.School"
                }
            }
        },
        "dto.LocationData": {
            "type": "object",
            "properties": {
                "location_data_id": {
                    "type": "integer"
                },
                "creation_time": {
                    "type": "integer"
                },
                "creator_user_id": {
                    "type": "integer"
                },
                "location": {
                    "$ref": "#/definitions/dto.Location"
                },
                "name": {
                    "type": "string"
                },
                "address": {
                    "type": "string"
                },
                "phone": {
                    "type": "string"
                },
                "active": {
                    "type": "boolean"
                }
            }
        },
        "dto.Course": {
            "type": "object",
            "properties": {
                "course_id": {
                    "type": "integer"
                },
                "creation_time": {
                    "type": "integer"
                },
                "creator_user_id": {
                    "type": "integer"
                },
                "school": {
                    "$ref": "#/definitions/dto.School"
                }
            }
        },
        "dto.CourseData": {
            "type": "object",
            "properties": {
                "course_data_id": {
                    "type": "integer"
                },
                "creation_time": {
                    "type": "integer"
                },
                "creator_user_id": {
                    "type": "integer"
                },
                "course": {
                    "$ref": "#/definitions/dto.Course"
                },
                "location": {
                    "$ref": "#/definitions/dto.Location"
                },
                "name": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "homeroom": {
                    "type": "boolean"
                },
                "active": {
                    "type": "boolean"
                }
            }
        },
        "dto.CourseKey": {
            "type": "object",
            "properties": {
                "course_key_key": {
                    "type": "string"
                },
                "creation_time": {
                    "type": "integer"
                },
                "creator_user_id": {
                    "type": "integer"
                },
                "course": {
                    "$ref": "#/definitions/dto.Course"
                },
                "max_uses": {
                    "type": "integer"
                },
                "course_membership_kind": {
                    "type": "string"
                },
                "start_time": {
                    "type": "integer"
                },
                "end_time": {
                    "type": "integer"
                }
            }
        },
        "dto.CourseKeyData": {
            "type": "object",
            "properties": {
                "course_key_data_id": {
                    "type": "integer"
                },
                "creation_time": {
                    "type": "integer"
                },
                "creator_user_id": {
                    "type": "integer"
                },
                "course_key": {
                    "$ref": "#/definitions/dto.CourseKey"
                },
                "active": {
                    "type": "boolean"
                }
            }
        },
        "dto.CourseMembership": {
            "type": "object",
            "properties": {
                "course_membership_id": {
                    "type": "integer"
                },
                "creation_time": {
                    "type": "integer"
                },
                "creator_user_id": {
                    "type": "integer"
                },
                "user_id": {
                    "type": "integer"
                },
                "course": {
                    "$ref": "#/definitions/dto.Course"
                },
                "course_membership_kind": {
                    "type": "string"
                },
                "course_key": {
                    "$ref": "#/definitions/dto.CourseKey"
                }
            }
        },
        "dto.Session": {
            "type": "object",
            "properties": {
                "session_id": {
                    "type": "integer"
                },
                "creation_time": {
                    "type": "integer"
                },
                "creator_user_id": {
                    "type": "integer"
                },
                "course": {
                    "$ref": "#/definitions/dto.Course"
                }
            }
        },
        "dto.SessionData": {
            "type": "object",
            "properties": {
                "session_data_id": {
                    "type": "integer"
                },
                "creation_time": {
                    "type": "integer"
                },
                "creator_user_id": {
                    "type": "integer"
                },
                "session": {
                    "$ref": "#/definitions/dto.Session"
                },
                "name": {
                    "type": "string"
                },
                "start_time": {
                    "type": "integer"
                },
                "end_time": {
                    "type": "integer"
                },
                "active": {
                    "type": "boolean"
                }
            }
        },
        "dto.SessionRequest": {
            "type": "object",
            "properties": {
                "session_request_id": {
                    "type": "integer"
                },
                "creation_time": {
                    "type": "integer"
                },
                "creator_user_id": {
                    "type": "integer"
                },
                "course": {
                    "$ref": "#/definitions/dto.Course"
                },
                "message": {
                    "type": "string"
                },
                "start_time": {
                    "type": "integer"
                },
                "end_time": {
                    "type": "integer"
                }
            }
        },
        "dto.SessionRequestResponse": {
            "type": "object",
            "properties": {
                "session_request": {
                    "$ref": "#/definitions/dto.SessionRequest"
                },
                "creation_time": {
                    "type": "integer"
                },
                "creator_user_id": {
                    "type": "integer"
                },
                "message": {
                    "type": "string"
                },
                "commitment": {
                    "$ref": "#/definitions/dto.Commitment"
                }
            }
        },
        "dto.Commitment": {
            "type": "object",
            "properties": {
                "commitment_id": {
                    "type": "integer"
                },
                "creation_time": {
                    "type": "integer"
                },
                "creator_user_id": {
                    "type": "integer"
                },
                "attendee_user_id": {
                    "type": "integer"
                },
                "session": {
                    "$ref": "#/definitions/dto.Session"
                },
                "active": {
                    "type": "boolean"
                }
            }
        },
        "dto.Encounter": {
            "type": "object",
            "properties": {
                "encounter_id": {
                    "type": "integer"
                },
                "creation_time": {
                    "type": "integer"
                },
                "creator_user_id": {
                    "type": "integer"
                },
                "location_id": {
                    "type": "integer"
                },
                "attendee_user_id": {
                    "type": "integer"
                },
                "encounter_kind": {
                    "type": "string"
                }
            }
        },
        "dto.Stay": {
            "type": "object",
            "properties": {
                "stay_id": {
                    "type": "integer"
                },
                "creation_time": {
                    "type": "integer"
                },
                "creator_user_id": {
                    "type": "integer"
                },
                "attendee_user_id": {
                    "type": "integer"
                },
                "location": {
                    "$ref": "#/definitions/dto.Location"
                }
            }
        },
        "dto.StayEndpoint": {
            "type": "object",
            "properties": {
                "encounter": {
                    "$ref": "#/definitions/dto.Encounter"
                },
                "time": {
                    "type": "integer"
                }
            }
        },
        "dto.StayData": {
            "type": "object",
            "properties": {
                "stay_data_id": {
                    "type": "integer"
                },
                "creation_time": {
                    "type": "integer"
                },
                "creator_user_id": {
                    "type": "integer"
                },
                "stay": {
                    "$ref": "#/definitions/dto.Stay"
                },
                "fst": {
                    "$ref": "#/definitions/dto.StayEndpoint"
                },
                "snd": {
                    "$ref": "#/definitions/dto.StayEndpoint"
                },
                "active": {
                    "type": "boolean"
                }
            }
        },
        "dto.AttendanceRow": {
            "type": "object",
            "properties": {
                "attendee_user_id": {
                    "type": "integer"
                },
                "committed": {
                    "type": "boolean"
                },
                "present": {
                    "type": "boolean"
                },
                "stay_minutes": {
                    "type": "integer"
                }
            }
        },
        "dto.AttendanceExport": {
            "type": "object",
            "properties": {
                "session_id": {
                    "type": "integer"
                },
                "format": {
                    "type": "string"
                },
                "rows": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.AttendanceRow"
                    }
                },
                "download_url": {
                    "type": "string"
                },
                "expires_at": {
                    "type": "integer"
                }
            }
        },
        "models.LocationFilter": {
            "allOf": [
                {
                    "$ref": "#/definitions/models.CommonFilter"
                },
                {
                    "type": "object",
                    "properties": {
                        "location_id": {
                            "type": "array",
                            "items": {
                                "type": "integer"
                            }
                        },
                        "school_id": {
                            "type": "array",
                            "items": {
                                "type": "integer"
                            }
                        }
                    }
                }
            ]
        },
        "models.LocationDataFilter": {
            "allOf": [
                {
                    "$ref": "#/definitions/models.CommonFilter"
                },
                {
                    "type": "object",
                    "properties": {
                        "location_data_id": {
                            "type": "array",
                            "items": {
                                "type": "integer"
                            }
                        },
                        "location_id": {
                            "type": "array",
                            "items": {
                                "type": "integer"
                            }
                        },
                        "name": {
                            "type": "string"
                        },
                        "partial_name": {
                            "type": "string"
                        },
                        "address": {
                            "type": "string"
                        },
                        "phone": {
                            "type": "string"
                        },
                        "active": {
                            "type": "boolean"
                        }
                    }
                }
            ]
        },
        "models.CourseFilter": {
            "allOf": [
                {
                    "$ref": "#/definitions/models.CommonFilter"
                },
                {
                    "type": "object",
                    "properties": {
                        "course_id": {
                            "type": "array",
                            "items": {
                                "type": "integer"
                            }
                        },
                        "school_id": {
                            "type": "array",
                            "items": {
                                "type": "integer"
                            }
                        }
                    }
                }
            ]
        },
        "models.CourseDataFilter": {
            "allOf": [
                {
                    "$ref": "#/definitions/models.CommonFilter"
                },
                {
                    "type": "object",
                    "properties": {
                        "course_data_id": {
                            "type": "array",
                            "items": {
                                "type": "integer"
                            }
                        },
                        "course_id": {
                            "type": "array",
                            "items": {
                                "type": "integer"
                            }
                        },
                        "location_id": {
                            "type": "array",
                            "items": {
                                "type": "integer"
                            }
                        },
                        "name": {
                            "type": "string"
                        },
                        "partial_name": {
                            "type": "string"
                        },
                        "homeroom": {
                            "type": "boolean"
                        },
                        "active": {
                            "type": "boolean"
                        }
                    }
                }
            ]
        },
        "models.CourseKeyFilter": {
            "allOf": [
                {
                    "$ref": "#/definitions/models.CommonFilter"
                },
                {
                    "type": "object",
                    "properties": {
                        "course_key_key": {
                            "type": "array",
                            "items": {
                                "type": "string"
                            }
                        },
                        "course_id": {
                            "type": "array",
                            "items": {
                                "type": "integer"
                            }
                        },
                        "course_membership_kind": {
                            "type": "array",
                            "items": {
                                "type": "string"
                            }
                        },
                        "min_start_time": {
                            "type": "integer"
                        },
                        "max_start_time": {
                            "type": "integer"
                        },
                        "min_end_time": {
                            "type": "integer"
                        },
                        "max_end_time": {
                            "type": "integer"
                        },
                        "max_uses": {
                            "type": "array",
                            "items": {
                                "type": "integer"
                            }
                        }
                    }
                }
            ]
        },
        "models.CourseKeyDataFilter": {
            "allOf": [
                {
                    "$ref": "#/definitions/models.CommonFilter"
                },
                {
                    "type": "object",
                    "properties": {
                        "course_key_data_id": {
                            "type": "array",
                            "items": {
                                "type": "integer"
                            }
                        },
                        "course_key_key": {
                            "type": "array",
                            "items": {
                                "type": "string"
                            }
                        },
                        "active": {
                            "type": "boolean"
                        }
                    }
                }
            ]
        },
        "models.CourseMembershipFilter": {
            "allOf": [
                {
                    "$ref": "#/definitions/models.CommonFilter"
                },
                {
                    "type": "object",
                    "properties": {
                        "course_membership_id": {
                            "type": "array",
                            "items": {
                                "type": "integer"
                            }
                        },
                        "user_id": {
                            "type": "array",
                            "items": {
                                "type": "integer"
                            }
                        },
                        "course_id": {
                            "type": "array",
                            "items": {
                                "type": "integer"
                            }
                        },
                        "course_membership_kind": {
                            "type": "array",
                            "items": {
                                "type": "string"
                            }
                        },
                        "course_key_key": {
                            "type": "array",
                            "items": {
                                "type": "string"
                            }
                        },
                        "from_key": {
                            "type": "boolean"
                        }
                    }
                }
            ]
        },
        "models.SchoolFilter": {
            "allOf": [
                {
                    "$ref": "#/definitions/models.CommonFilter"
                },
                {
                    "type": "object",
                    "properties": {
                        "school_id": {
                            "type": "array",
                            "items": {
                                "type": "integer"
                            }
                        },
                        "whole": {
                            "type": "boolean"
                        }
                    }
                }
            ]
        },
        "models.SchoolDataFilter": {
            "allOf": [
                {
                    "$ref": "#/definitions/models.CommonFilter"
                },
                {
                    "type": "object",
                    "properties": {
                        "school_data_id": {
                            "type": "array",
                            "items": {
                                "type": "integer"
                            }
                        },
                        "school_id": {
                            "type": "array",
                            "items": {
                                "type": "integer"
                            }
                        },
                        "name": {
                            "type": "string"
                        },
                        "partial_name": {
                            "type": "string"
                        },
                        "active": {
                            "type": "boolean"
                        }
                    }
                }
            ]
        },
        "models.SchoolDurationFilter": {
            "allOf": [
                {
                    "$ref": "#/definitions/models.CommonFilter"
                },
                {
                    "type": "object",
                    "properties": {
                        "school_duration_id": {
                            "type": "array",
                            "items": {
                                "type": "integer"
                            }
                        },
                        "school_id": {
                            "type": "array",
                            "items": {
                                "type": "integer"
                            }
                        }
                    }
                }
            ]
        },
        "models.SchoolDurationDataFilter": {
            "allOf": [
                {
                    "$ref": "#/definitions/models.CommonFilter"
                },
                {
                    "type": "object",
                    "properties": {
                        "school_duration_data_id": {
                            "type": "array",
                            "items": {
                                "type": "integer"
                            }
                        },
                        "school_duration_id": {
                            "type": "array",
                            "items": {
                                "type": "integer"
                            }
                        },
                        "day": {
                            "type": "array",
                            "items": {
                                "type": "integer"
                            }
                        },
                        "min_minute_start": {
                            "type": "integer"
                        },
                        "max_minute_start": {
                            "type": "integer"
                        },
                        "min_minute_end": {
                            "type": "integer"
                        },
                        "max_minute_end": {
                            "type": "integer"
                        },
                        "active": {
                            "type": "boolean"
                        }
                    }
                }
            ]
        },
        "models.SchoolKeyFilter": {
            "allOf": [
                {
                    "$ref": "#/definitions/models.CommonFilter"
                },
                {
                    "type": "object",
                    "properties": {
                        "school_key_key": {
                            "type": "array",
                            "items": {
                                "type": "string"
                            }
                        },
                        "school_id": {
                            "type": "array",
                            "items": {
                                "type": "integer"
                            }
                        },
                        "min_start_time": {
                            "type": "integer"
                        },
                        "max_start_time": {
                            "type": "integer"
                        },
                        "min_end_time": {
                            "type": "integer"
                        },
                        "max_end_time": {
                            "type": "integer"
                        }
                    }
                }
            ]
        },
        "models.SchoolKeyDataFilter": {
            "allOf": [
                {
                    "$ref": "#/definitions/models.CommonFilter"
                },
                {
                    "type": "object",
                    "properties": {
                        "school_key_data_id": {
                            "type": "array",
                            "items": {
                                "type": "integer"
                            }
                        },
                        "school_key_key": {
                            "type": "array",
                            "items": {
                                "type": "string"
                            }
                        },
                        "active": {
                            "type": "boolean"
                        }
                    }
                }
            ]
        },
        "models.AdminshipFilter": {
            "allOf": [
                {
                    "$ref": "#/definitions/models.CommonFilter"
                },
                {
                    "type": "object",
                    "properties": {
                        "adminship_id": {
                            "type": "array",
                            "items": {
                                "type": "integer"
                            }
                        },
                        "user_id": {
                            "type": "array",
                            "items": {
                                "type": "integer"
                            }
                        },
                        "school_id": {
                            "type": "array",
                            "items": {
                                "type": "integer"
                            }
                        },
                        "adminship_kind": {
                            "type": "array",
                            "items": {
                                "type": "string"
                            }
                        },
                        "school_key_key": {
                            "type": "array",
                            "items": {
                                "type": "string"
                            }
                        },
                        "from_key": {
                            "type": "boolean"
                        }
                    }
                }
            ]
        },
        "models.SubscriptionFilter": {
            "allOf": [
                {
                    "$ref": "#/definitions/models.CommonFilter"
                },
                {
                    "type": "object",
                    "properties": {
                        "subscription_id": {
                            "type": "array",
                            "items": {
                                "type": "integer"
                            }
                        },
                        "subscription_kind": {
                            "type": "array",
                            "items": {
                                "type": "string"
                            }
                        }
                    }
                }
            ]
        },
        "models.SessionFilter": {
            "allOf": [
                {
                    "$ref": "#/definitions/models.CommonFilter"
                },
                {
                    "type": "object",
                    "properties": {
                        "session_id": {
                            "type": "array",
                            "items": {
                                "type": "integer"
                            }
                        },
                        "course_id": {
                            "type": "array",
                            "items": {
                                "type": "integer"
                            }
                        }
                    }
                }
            ]
        },
        "models.SessionDataFilter": {
            "allOf": [
                {
                    "$ref": "#/definitions/models.CommonFilter"
                },
                {
                    "type": "object",
                    "properties": {
                        "session_data_id": {
                            "type": "array",
                            "items": {
                                "type": "integer"
                            }
                        },
                        "session_id": {
                            "type": "array",
                            "items": {
                                "type": "integer"
                            }
                        },
                        "name": {
                            "type": "string"
                        },
                        "partial_name": {
                            "type": "string"
                        },
                        "min_start_time": {
                            "type": "integer"
                        },
                        "max_start_time": {
                            "type": "integer"
                        },
                        "min_end_time": {
                            "type": "integer"
                        },
                        "max_end_time": {
                            "type": "integer"
                        },
                        "active": {
                            "type": "boolean"
                        }
                    }
                }
            ]
        },
        "models.SessionRequestFilter": {
            "allOf": [
                {
                    "$ref": "#/definitions/models.CommonFilter"
                },
                {
                    "type": "object",
                    "properties": {
                        "session_request_id": {
                            "type": "array",
                            "items": {
                                "type": "integer"
                            }
                        },
                        "course_id": {
                            "type": "array",
                            "items": {
                                "type": "integer"
                            }
                        },
                        "message": {
                            "type": "string"
                        },
                        "partial_message": {
                            "type": "string"
                        },
                        "min_start_time": {
                            "type": "integer"
                        },
                        "max_start_time": {
                            "type": "integer"
                        },
                        "min_end_time": {
                            "type": "integer"
                        },
                        "max_end_time": {
                            "type": "integer"
                        }
                    }
                }
            ]
        },
        "models.SessionRequestResponseFilter": {
            "allOf": [
                {
                    "$ref": "#/definitions/models.CommonFilter"
                },
                {
                    "type": "object",
                    "properties": {
                        "session_request_id": {
                            "type": "array",
                            "items": {
                                "type": "integer"
                            }
                        },
                        "message": {
                            "type": "string"
                        },
                        "partial_message": {
                            "type": "string"
                        },
                        "commitment_id": {
                            "type": "array",
                            "items": {
                                "type": "integer"
                            }
                        },
                        "accepted": {
                            "type": "boolean"
                        }
                    }
                }
            ]
        },
        "models.CommitmentFilter": {
            "allOf": [
                {
                    "$ref": "#/definitions/models.CommonFilter"
                },
                {
                    "type": "object",
                    "properties": {
                        "commitment_id": {
                            "type": "array",
                            "items": {
                                "type": "integer"
                            }
                        },
                        "attendee_user_id": {
                            "type": "array",
                            "items": {
                                "type": "integer"
                            }
                        },
                        "session_id": {
                            "type": "array",
                            "items": {
                                "type": "integer"
                            }
                        },
                        "active": {
                            "type": "boolean"
                        }
                    }
                }
            ]
        },
        "models.EncounterFilter": {
            "allOf": [
                {
                    "$ref": "#/definitions/models.CommonFilter"
                },
                {
                    "type": "object",
                    "properties": {
                        "encounter_id": {
                            "type": "array",
                            "items": {
                                "type": "integer"
                            }
                        },
                        "location_id": {
                            "type": "array",
                            "items": {
                                "type": "integer"
                            }
                        },
                        "attendee_user_id": {
                            "type": "array",
                            "items": {
                                "type": "integer"
                            }
                        },
                        "encounter_kind": {
                            "type": "array",
                            "items": {
                                "type": "string"
                            }
                        }
                    }
                }
            ]
        },
        "models.StayFilter": {
            "allOf": [
                {
                    "$ref": "#/definitions/models.CommonFilter"
                },
                {
                    "type": "object",
                    "properties": {
                        "stay_id": {
                            "type": "array",
                            "items": {
                                "type": "integer"
                            }
                        },
                        "attendee_user_id": {
                            "type": "array",
                            "items": {
                                "type": "integer"
                            }
                        },
                        "location_id": {
                            "type": "array",
                            "items": {
                                "type": "integer"
                            }
                        }
                    }
                }
            ]
        },
        "models.StayDataFilter": {
            "allOf": [
                {
                    "$ref": "#/definitions/models.CommonFilter"
                },
                {
                    "type": "object",
                    "properties": {
                        "stay_data_id": {
                            "type": "array",
                            "items": {
                                "type": "integer"
                            }
                        },
                        "stay_id": {
                            "type": "array",
                            "items": {
                                "type": "integer"
                            }
                        },
                        "fst_encounter_id": {
                            "type": "array",
                            "items": {
                                "type": "integer"
                            }
                        },
                        "snd_encounter_id": {
                            "type": "array",
                            "items": {
                                "type": "integer"
                            }
                        },
                        "min_fst_time": {
                            "type": "integer"
                        },
                        "max_fst_time": {
                            "type": "integer"
                        },
                        "min_snd_time": {
                            "type": "integer"
                        },
                        "max_snd_time": {
                            "type": "integer"
                        },
                        "active": {
                            "type": "boolean"
                        }
                    }
                }
            ]
        },
        "models.User": {
            "type": "object",
            "properties": {
                "user_id": {
                    "type": "integer"
                },
                "name": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                }
            }
        },
        "models.Pagination": {
            "type": "object",
            "properties": {
                "limit": {
                    "type": "integer"
                },
                "offset": {
                    "type": "integer"
                },
                "count": {
                    "type": "integer"
                }
            }
        },
        "models.CommonFilter": {
            "type": "object",
            "properties": {
                "min_creation_time": {
                    "type": "integer"
                },
                "max_creation_time": {
                    "type": "integer"
                },
                "creator_user_id": {
                    "type": "array",
                    "items": {
                        "type": "integer"
                    }
                },
                "only_recent": {
                    "type": "boolean"
                },
                "limit": {
                    "type": "integer"
                },
                "offset": {
                    "type": "integer"
                }
            }
        },
        "errors.Error": {
            "type": "object",
            "properties": {
                "code": {
                    "type": "string"
                },
                "message": {
                    "type": "string"
                },
                "status": {
                    "type": "integer"
                }
            }
        },
        "response.Envelope": {
            "type": "object",
            "properties": {
                "data": {},
                "error": {
                    "$ref": "#/definitions/errors.Error"
                },
                "pagination": {
                    "$ref": "#/definitions/models.Pagination"
                },
                "meta": {
                    "type": "object"
                }
            }
        }
    }
}`

// SwaggerInfo holds the fields filled into the template at request time.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Hours API",
	Description:      "Office hours scheduling and attendance for schools",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
