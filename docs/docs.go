// Package docs provides the OpenAPI document served by the swagger UI.
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
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Health check",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"type": "object", "additionalProperties": {"type": "string"}}
                    }
                }
            }
        },
        "/local/repos": {
            "get": {
                "produces": ["application/json"],
                "tags": ["local"],
                "summary": "List local repositories",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"type": "array", "items": {"$ref": "#/definitions/models.LocalRepository"}}
                    }
                }
            }
        },
        "/local/repos/{name}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["local"],
                "summary": "Get local repository details",
                "parameters": [
                    {"type": "string", "description": "Repository name", "name": "name", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.LocalRepositoryDetail"}}
                }
            }
        },
        "/local/repos/{name}/sync": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["local"],
                "summary": "Clone or update a repository",
                "parameters": [
                    {"type": "string", "description": "Repository name", "name": "name", "in": "path", "required": true},
                    {"description": "Optional remote URL", "name": "request", "in": "body", "schema": {"$ref": "#/definitions/models.SyncRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.SyncResult"}}
                }
            }
        },
        "/local/repos/{name}/status": {
            "get": {
                "produces": ["application/json"],
                "tags": ["local"],
                "summary": "Get structured working-tree status",
                "parameters": [
                    {"type": "string", "description": "Repository name", "name": "name", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.GitStatus"}}
                }
            }
        },
        "/local/repos/{name}/checkout": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["local"],
                "summary": "Checkout or create a branch",
                "parameters": [
                    {"type": "string", "description": "Repository name", "name": "name", "in": "path", "required": true},
                    {"description": "Branch to activate", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.CheckoutRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.BranchStatus"}}
                }
            }
        },
        "/local/repos/{name}/branches": {
            "get": {
                "produces": ["application/json"],
                "tags": ["local"],
                "summary": "List local branches with tracking and divergence",
                "parameters": [
                    {"type": "string", "description": "Repository name", "name": "name", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.BranchStatus"}}}
                }
            }
        },
        "/local/repos/{name}/remotes": {
            "get": {
                "produces": ["application/json"],
                "tags": ["local"],
                "summary": "List configured remotes",
                "parameters": [
                    {"type": "string", "description": "Repository name", "name": "name", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.LocalRemote"}}}
                }
            }
        },
        "/local/repos/{name}/log": {
            "get": {
                "produces": ["application/json"],
                "tags": ["local"],
                "summary": "Get commit log",
                "parameters": [
                    {"type": "string", "description": "Repository name", "name": "name", "in": "path", "required": true},
                    {"type": "integer", "description": "Maximum entries (1-200)", "name": "limit", "in": "query"},
                    {"type": "string", "description": "Filter by author identity", "name": "author", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.GitLogResponse"}}
                }
            }
        },
        "/local/repos/{name}/diff": {
            "get": {
                "produces": ["application/json"],
                "tags": ["local"],
                "summary": "Get diff against a target revision",
                "parameters": [
                    {"type": "string", "description": "Repository name", "name": "name", "in": "path", "required": true},
                    {"type": "string", "description": "Target revision", "name": "target", "in": "query"},
                    {"type": "string", "description": "summary or patch", "name": "mode", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.GitDiffSummary"}}
                }
            }
        },
        "/local/repos/{name}/staged": {
            "get": {
                "produces": ["application/json"],
                "tags": ["local"],
                "summary": "List staged changes",
                "parameters": [
                    {"type": "string", "description": "Repository name", "name": "name", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.GitStatusFile"}}}
                }
            }
        },
        "/local/repos/{name}/file/{path}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["local"],
                "summary": "Read file content at a ref",
                "parameters": [
                    {"type": "string", "description": "Repository name", "name": "name", "in": "path", "required": true},
                    {"type": "string", "description": "File path inside the repository", "name": "path", "in": "path", "required": true},
                    {"type": "string", "description": "Revision", "name": "ref", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.GitFileResponse"}}
                }
            }
        },
        "/repos": {
            "get": {
                "produces": ["application/json"],
                "tags": ["hosted"],
                "summary": "List repositories from the hosting service",
                "parameters": [
                    {"type": "string", "description": "Access token override", "name": "token", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.HostedRepository"}}}
                }
            }
        },
        "/repos/{name}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["hosted"],
                "summary": "Get hosting-service repository details",
                "parameters": [
                    {"type": "string", "description": "Repository name", "name": "name", "in": "path", "required": true},
                    {"type": "string", "description": "Access token override", "name": "token", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.HostedRepositoryDetail"}}
                }
            }
        },
        "/repos/{name}/branches": {
            "get": {
                "produces": ["application/json"],
                "tags": ["hosted"],
                "summary": "List branches from the hosting service",
                "parameters": [
                    {"type": "string", "description": "Repository name", "name": "name", "in": "path", "required": true},
                    {"type": "string", "description": "Access token override", "name": "token", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.HostedBranch"}}}
                }
            }
        },
        "/repos/{name}/commits": {
            "get": {
                "produces": ["application/json"],
                "tags": ["hosted"],
                "summary": "List recent commits from the hosting service",
                "parameters": [
                    {"type": "string", "description": "Repository name", "name": "name", "in": "path", "required": true},
                    {"type": "integer", "description": "Maximum entries (1-200)", "name": "limit", "in": "query"},
                    {"type": "string", "description": "Access token override", "name": "token", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.CommitMetadata"}}}
                }
            }
        },
        "/repos/{name}/issues": {
            "get": {
                "produces": ["application/json"],
                "tags": ["hosted"],
                "summary": "List issues from the hosting service",
                "parameters": [
                    {"type": "string", "description": "Repository name", "name": "name", "in": "path", "required": true},
                    {"type": "string", "default": "open", "description": "Issue state", "name": "state", "in": "query"},
                    {"type": "string", "description": "Filter by assignee login", "name": "assignee", "in": "query"},
                    {"type": "string", "description": "Comma-separated label filter", "name": "labels", "in": "query"},
                    {"type": "string", "description": "Access token override", "name": "token", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.HostedIssue"}}}
                }
            }
        },
        "/repos/{name}/pulls": {
            "get": {
                "produces": ["application/json"],
                "tags": ["hosted"],
                "summary": "List open pull requests from the hosting service",
                "parameters": [
                    {"type": "string", "description": "Repository name", "name": "name", "in": "path", "required": true},
                    {"type": "string", "description": "Access token override", "name": "token", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.HostedPullRequest"}}}
                }
            }
        },
        "/repos/{name}/readme": {
            "get": {
                "produces": ["application/json"],
                "tags": ["hosted"],
                "summary": "Get a repository README from the hosting service",
                "parameters": [
                    {"type": "string", "description": "Repository name", "name": "name", "in": "path", "required": true},
                    {"type": "string", "description": "Access token override", "name": "token", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.ReadmeResponse"}}
                }
            }
        },
        "/local/repos/{name}/notes": {
            "get": {
                "produces": ["application/json"],
                "tags": ["notes"],
                "summary": "List notes for a repository",
                "parameters": [
                    {"type": "string", "description": "Repository name", "name": "name", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Note"}}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["notes"],
                "summary": "Add a note to a repository",
                "parameters": [
                    {"type": "string", "description": "Repository name", "name": "name", "in": "path", "required": true},
                    {"description": "Note content", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.NoteCreateRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/models.Note"}}
                }
            }
        },
        "/local/repos/{name}/notes/{id}": {
            "delete": {
                "tags": ["notes"],
                "summary": "Delete a note",
                "parameters": [
                    {"type": "string", "description": "Repository name", "name": "name", "in": "path", "required": true},
                    {"type": "string", "description": "Note ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"}
                }
            }
        },
        "/local/repos/{name}/snippets": {
            "get": {
                "produces": ["application/json"],
                "tags": ["snippets"],
                "summary": "List snippets for a repository",
                "parameters": [
                    {"type": "string", "description": "Repository name", "name": "name", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Snippet"}}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["snippets"],
                "summary": "Add a snippet to a repository",
                "parameters": [
                    {"type": "string", "description": "Repository name", "name": "name", "in": "path", "required": true},
                    {"description": "Snippet", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.SnippetCreateRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/models.Snippet"}}
                }
            }
        },
        "/local/repos/{name}/snippets/{id}": {
            "delete": {
                "tags": ["snippets"],
                "summary": "Delete a snippet",
                "parameters": [
                    {"type": "string", "description": "Repository name", "name": "name", "in": "path", "required": true},
                    {"type": "string", "description": "Snippet ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"}
                }
            }
        },
        "/local/repos/{name}/tasks": {
            "get": {
                "produces": ["application/json"],
                "tags": ["tasks"],
                "summary": "List recurring tasks for a repository",
                "parameters": [
                    {"type": "string", "description": "Repository name", "name": "name", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.RecurringTask"}}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["tasks"],
                "summary": "Add a recurring task to a repository",
                "parameters": [
                    {"type": "string", "description": "Repository name", "name": "name", "in": "path", "required": true},
                    {"description": "Task", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.TaskCreateRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/models.RecurringTask"}}
                }
            }
        },
        "/local/repos/{name}/tasks/{id}": {
            "delete": {
                "tags": ["tasks"],
                "summary": "Delete a recurring task",
                "parameters": [
                    {"type": "string", "description": "Repository name", "name": "name", "in": "path", "required": true},
                    {"type": "string", "description": "Task ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"}
                }
            }
        },
        "/local/repos/{name}/tasks/{id}/toggle": {
            "post": {
                "produces": ["application/json"],
                "tags": ["tasks"],
                "summary": "Toggle a recurring task's enabled state",
                "parameters": [
                    {"type": "string", "description": "Repository name", "name": "name", "in": "path", "required": true},
                    {"type": "string", "description": "Task ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.TaskToggleResponse"}}
                }
            }
        }
    },
    "definitions": {
        "models.LocalRepository": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "path": {"type": "string"}
            }
        },
        "models.CommitMetadata": {
            "type": "object",
            "properties": {
                "sha": {"type": "string"},
                "message": {"type": "string"},
                "author": {"type": "string"},
                "date": {"type": "string"}
            }
        },
        "models.LocalRepositoryDetail": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "path": {"type": "string"},
                "active_branch": {"type": "string"},
                "is_dirty": {"type": "boolean"},
                "last_commit": {"$ref": "#/definitions/models.CommitMetadata"}
            }
        },
        "models.LocalRemote": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "urls": {"type": "array", "items": {"type": "string"}}
            }
        },
        "models.BranchStatus": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "is_active": {"type": "boolean"},
                "tracking": {"type": "string"},
                "ahead": {"type": "integer"},
                "behind": {"type": "integer"}
            }
        },
        "models.SyncRequest": {
            "type": "object",
            "properties": {
                "remote_url": {"type": "string"}
            }
        },
        "models.SyncResult": {
            "type": "object",
            "properties": {
                "path": {"type": "string"},
                "created": {"type": "boolean"},
                "updated": {"type": "boolean"},
                "default_branch": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "models.CheckoutRequest": {
            "type": "object",
            "properties": {
                "branch": {"type": "string"},
                "create": {"type": "boolean"}
            }
        },
        "models.GitStatusFile": {
            "type": "object",
            "properties": {
                "path": {"type": "string"},
                "status": {"type": "string"}
            }
        },
        "models.GitStatus": {
            "type": "object",
            "properties": {
                "branch": {"type": "string"},
                "files": {"type": "array", "items": {"$ref": "#/definitions/models.GitStatusFile"}}
            }
        },
        "models.GitLogEntry": {
            "type": "object",
            "properties": {
                "sha": {"type": "string"},
                "author": {"type": "string"},
                "message": {"type": "string"},
                "date": {"type": "string"}
            }
        },
        "models.GitLogResponse": {
            "type": "object",
            "properties": {
                "entries": {"type": "array", "items": {"$ref": "#/definitions/models.GitLogEntry"}}
            }
        },
        "models.GitDiffFile": {
            "type": "object",
            "properties": {
                "path": {"type": "string"},
                "status": {"type": "string"},
                "additions": {"type": "integer"},
                "deletions": {"type": "integer"}
            }
        },
        "models.GitDiffStats": {
            "type": "object",
            "properties": {
                "additions": {"type": "integer"},
                "deletions": {"type": "integer"}
            }
        },
        "models.GitDiffSummary": {
            "type": "object",
            "properties": {
                "files": {"type": "array", "items": {"$ref": "#/definitions/models.GitDiffFile"}},
                "stats": {"$ref": "#/definitions/models.GitDiffStats"},
                "mode": {"type": "string"},
                "patch": {"type": "string"}
            }
        },
        "models.GitFileResponse": {
            "type": "object",
            "properties": {
                "path": {"type": "string"},
                "ref": {"type": "string"},
                "content": {"type": "string"}
            }
        },
        "models.Note": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "content": {"type": "string"},
                "created_at": {"type": "string"}
            }
        },
        "models.NoteCreateRequest": {
            "type": "object",
            "properties": {
                "content": {"type": "string"}
            }
        },
        "models.Snippet": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "title": {"type": "string"},
                "language": {"type": "string"},
                "code": {"type": "string"},
                "created_at": {"type": "string"}
            }
        },
        "models.SnippetCreateRequest": {
            "type": "object",
            "properties": {
                "title": {"type": "string"},
                "language": {"type": "string"},
                "code": {"type": "string"}
            }
        },
        "models.RecurringTask": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "title": {"type": "string"},
                "cadence": {"type": "string"},
                "enabled": {"type": "boolean"},
                "created_at": {"type": "string"}
            }
        },
        "models.TaskCreateRequest": {
            "type": "object",
            "properties": {
                "title": {"type": "string"},
                "cadence": {"type": "string"}
            }
        },
        "models.TaskToggleResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "enabled": {"type": "boolean"}
            }
        },
        "models.HostedRepository": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "description": {"type": "string"},
                "visibility": {"type": "string"},
                "default_branch": {"type": "string"}
            }
        },
        "models.HostedRepositoryDetail": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "description": {"type": "string"},
                "visibility": {"type": "string"},
                "default_branch": {"type": "string"},
                "branches": {"type": "array", "items": {"type": "string"}},
                "last_commit": {"$ref": "#/definitions/models.CommitMetadata"},
                "contributors": {"type": "array", "items": {"type": "string"}},
                "html_url": {"type": "string"}
            }
        },
        "models.HostedBranch": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "default": {"type": "boolean"},
                "protected": {"type": "boolean"}
            }
        },
        "models.HostedIssue": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "number": {"type": "integer"},
                "title": {"type": "string"},
                "state": {"type": "string"},
                "labels": {"type": "array", "items": {"type": "string"}},
                "assignee": {"type": "string"},
                "url": {"type": "string"}
            }
        },
        "models.HostedPullRequest": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "number": {"type": "integer"},
                "title": {"type": "string"},
                "state": {"type": "string"},
                "head": {"type": "string"},
                "base": {"type": "string"},
                "url": {"type": "string"}
            }
        },
        "models.ReadmeResponse": {
            "type": "object",
            "properties": {
                "content": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "GitDash API",
	Description:      "Dashboard API over local git clones and their hosting service",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
