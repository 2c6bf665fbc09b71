package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterSwagger registers minimal Swagger/OpenAPI endpoints for the portal.
// - GET /swagger/index.html  -> a small HTML page that loads the OpenAPI JSON
// - GET /swagger/doc.json    -> machine-readable OpenAPI JSON
func RegisterSwagger(rg *gin.Engine) {
	rg.GET("/swagger/index.html", func(c *gin.Context) {
		c.Header("Content-Type", "text/html; charset=utf-8")
		c.String(http.StatusOK, swaggerHTML)
	})

	rg.GET("/swagger/doc.json", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json", []byte(swaggerJSON))
	})
}

const swaggerHTML = `<!doctype html>
<html>
  <head>
    <meta charset="utf-8" />
    <title>campusbridge — Swagger</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@4/swagger-ui.css" />
  </head>
  <body>
    <div id="swagger-ui"></div>
    <script src="https://unpkg.com/swagger-ui-dist@4/swagger-ui-bundle.js"></script>
    <script>
      window.ui = SwaggerUIBundle({
        url: '/swagger/doc.json',
        dom_id: '#swagger-ui',
      })
    </script>
  </body>
</html>`

// Minimal OpenAPI document describing the portal endpoints.
const swaggerJSON = `{
  "openapi": "3.0.0",
  "info": { "title": "campusbridge", "version": "v0.1.0" },
  "paths": {
    "/auth/login": {
      "post": {
        "summary": "Log in with email and password",
        "requestBody": { "content": { "application/json": { "schema": {"type":"object","properties":{"email":{"type":"string"},"password":{"type":"string"}}}}}},
        "responses": { "200": { "description": "access and refresh tokens" }, "401": { "description": "invalid credentials" } }
      }
    },
    "/auth/refresh": {
      "post": { "summary": "Refresh access token", "requestBody": { "content": { "application/json": { "schema": {"type":"object","properties":{"refreshToken":{"type":"string"}}}}}}, "responses": { "200": { "description": "new access token" }, "401": { "description": "invalid refresh" } } }
    },
    "/auth/logout": {
      "post": { "summary": "Logout and invalidate tokens", "requestBody": { "content": { "application/json": { "schema": {"type":"object","properties":{"refreshToken":{"type":"string"}}}}}}, "responses": { "200": { "description": "logged out" }, "401": { "description": "missing or invalid access token" } } }
    },
    "/api/v1/users/tnp-admin": {
      "post": { "summary": "Create a T&P admin (global admin only)", "responses": { "201": { "description": "admin created" }, "403": { "description": "insufficient role" } } }
    },
    "/api/v1/users/students": {
      "post": { "summary": "Register a student (T&P admin, active subscription required)", "responses": { "201": { "description": "student created" }, "403": { "description": "insufficient role or subscription expired" } } }
    },
    "/api/v1/users/students/{studentId}/profile": {
      "put": { "summary": "Update a student academic profile", "responses": { "200": { "description": "profile updated" }, "403": { "description": "not the owner or wrong college" } } }
    },
    "/api/v1/users/students/{studentId}": {
      "delete": { "summary": "Remove a student (T&P admin, own college)", "responses": { "200": { "description": "student removed" }, "404": { "description": "unknown student" } } }
    },
    "/api/v1/colleges": {
      "post": { "summary": "Onboard a college (global admin only)", "responses": { "201": { "description": "college created" }, "403": { "description": "insufficient role" } } }
    },
    "/api/v1/colleges/{collegeId}": {
      "get": { "summary": "Get a college and its subscription state", "responses": { "200": { "description": "college" }, "403": { "description": "wrong college" } } }
    },
    "/api/v1/colleges/{collegeId}/subscription": {
      "put": { "summary": "Set a college subscription term (global admin only)", "responses": { "200": { "description": "subscription updated" }, "404": { "description": "unknown college" } } }
    },
    "/api/v1/colleges/{collegeId}/users": {
      "get": { "summary": "List college users and student seat count", "responses": { "200": { "description": "users and seat count" } } }
    },
    "/api/v1/jobs": {
      "post": { "summary": "Create a job posting (T&P admin)", "responses": { "201": { "description": "job created" }, "400": { "description": "malformed eligibility criteria" } } },
      "get": { "summary": "List job postings for the caller college", "responses": { "200": { "description": "job list" } } }
    },
    "/api/v1/jobs/eligible": {
      "get": { "summary": "List jobs the calling student is eligible for", "responses": { "200": { "description": "eligible jobs, newest first" } } }
    },
    "/api/v1/jobs/{jobId}": {
      "get": { "summary": "Get a single job posting", "responses": { "200": { "description": "job" }, "404": { "description": "unknown job" } } }
    },
    "/api/v1/jobs/{jobId}/apply": {
      "post": { "summary": "Apply to a job (student, must be eligible)", "responses": { "200": { "description": "application recorded" }, "403": { "description": "not eligible" } } }
    },
    "/api/v1/jobs/{jobId}/logo": {
      "post": { "summary": "Upload a company logo (T&P admin)", "responses": { "200": { "description": "logo stored" }, "503": { "description": "object storage unavailable" } } }
    },
    "/health": { "get": { "summary": "Liveness check", "responses": { "200": { "description": "healthy" } } } },
    "/ready": { "get": { "summary": "Readiness check", "responses": { "200": { "description": "ready" }, "503": { "description": "not ready" } } } }
  }
}`
