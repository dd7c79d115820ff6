package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "description": "TaskBoard API Documentation",
        "title": "TaskBoard API",
        "version": "1.0"
    },
    "host": "localhost:8080",
    "basePath": "/",
    "schemes": ["http"],
    "paths": {
        "/health": {
            "get": {
                "tags": ["Health"],
                "summary": "Health Check",
                "description": "Check if server is running",
                "responses": {
                    "200": {
                        "description": "Server is healthy"
                    }
                }
            }
        },
        "/api/{owner_id}/tasks": {
            "post": {
                "tags": ["Tasks"],
                "summary": "Create Task",
                "description": "Create a new task for the owner named in the path",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "in": "path",
                        "name": "owner_id",
                        "type": "string",
                        "required": true
                    },
                    {
                        "in": "body",
                        "name": "task",
                        "description": "Task to create",
                        "required": true,
                        "schema": {
                            "type": "object",
                            "required": ["title"],
                            "properties": {
                                "title": {
                                    "type": "string",
                                    "maxLength": 255
                                },
                                "description": {
                                    "type": "string",
                                    "maxLength": 1000
                                }
                            }
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Task created"
                    },
                    "401": {
                        "description": "Missing or invalid token"
                    },
                    "403": {
                        "description": "Token subject does not match owner"
                    },
                    "422": {
                        "description": "Validation failed"
                    }
                }
            },
            "get": {
                "tags": ["Tasks"],
                "summary": "List Tasks",
                "description": "List all tasks belonging to the owner",
                "produces": ["application/json"],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "in": "path",
                        "name": "owner_id",
                        "type": "string",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Owner's tasks"
                    },
                    "401": {
                        "description": "Missing or invalid token"
                    },
                    "403": {
                        "description": "Token subject does not match owner"
                    }
                }
            }
        },
        "/api/{owner_id}/tasks/{id}": {
            "get": {
                "tags": ["Tasks"],
                "summary": "Get Task",
                "produces": ["application/json"],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "in": "path",
                        "name": "owner_id",
                        "type": "string",
                        "required": true
                    },
                    {
                        "in": "path",
                        "name": "id",
                        "type": "string",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "The task"
                    },
                    "404": {
                        "description": "No such task under this owner"
                    }
                }
            },
            "put": {
                "tags": ["Tasks"],
                "summary": "Update Task",
                "description": "Replace the provided fields of a task",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "in": "path",
                        "name": "owner_id",
                        "type": "string",
                        "required": true
                    },
                    {
                        "in": "path",
                        "name": "id",
                        "type": "string",
                        "required": true
                    },
                    {
                        "in": "body",
                        "name": "task",
                        "required": true,
                        "schema": {
                            "type": "object",
                            "properties": {
                                "title": {
                                    "type": "string",
                                    "maxLength": 255
                                },
                                "description": {
                                    "type": "string",
                                    "maxLength": 1000
                                }
                            }
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Updated task"
                    },
                    "404": {
                        "description": "No such task under this owner"
                    },
                    "422": {
                        "description": "Validation failed"
                    }
                }
            },
            "delete": {
                "tags": ["Tasks"],
                "summary": "Delete Task",
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "in": "path",
                        "name": "owner_id",
                        "type": "string",
                        "required": true
                    },
                    {
                        "in": "path",
                        "name": "id",
                        "type": "string",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "Task deleted"
                    },
                    "404": {
                        "description": "No such task under this owner"
                    }
                }
            }
        },
        "/api/{owner_id}/tasks/{id}/complete": {
            "patch": {
                "tags": ["Tasks"],
                "summary": "Toggle Task Completion",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "in": "path",
                        "name": "owner_id",
                        "type": "string",
                        "required": true
                    },
                    {
                        "in": "path",
                        "name": "id",
                        "type": "string",
                        "required": true
                    },
                    {
                        "in": "body",
                        "name": "completion",
                        "required": true,
                        "schema": {
                            "type": "object",
                            "required": ["completed"],
                            "properties": {
                                "completed": {
                                    "type": "boolean"
                                }
                            }
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Updated task"
                    },
                    "404": {
                        "description": "No such task under this owner"
                    }
                }
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header",
            "description": "Type 'Bearer' followed by a space and JWT token"
        }
    }
}`

var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http"},
	Title:            "TaskBoard API",
	Description:      "TaskBoard API Documentation",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
