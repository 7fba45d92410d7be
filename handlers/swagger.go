package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterSwagger registers minimal Swagger/OpenAPI endpoints for the site API.
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
    <title>mathsmania-backend — Swagger</title>
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

// Minimal OpenAPI document describing the site endpoints.
const swaggerJSON = `{
  "openapi": "3.0.0",
  "info": { "title": "mathsmania-backend", "version": "v0.1.0" },
  "paths": {
    "/api/inquiries": {
      "post": {
        "summary": "Submit a course inquiry",
        "requestBody": { "content": { "application/json": { "schema": {"type":"object","properties":{"name":{"type":"string"},"phone":{"type":"string"},"email":{"type":"string"},"course":{"type":"string"},"message":{"type":"string"}},"required":["name","phone","course"]}}}},
        "responses": { "200": { "description": "inquiry created" }, "400": { "description": "missing required field" } }
      }
    },
    "/api/users/register": {
      "post": { "summary": "Create an account", "requestBody": { "content": { "application/json": { "schema": {"type":"object","properties":{"name":{"type":"string"},"email":{"type":"string"},"phone":{"type":"string"},"password":{"type":"string"}},"required":["name","email","password"]}}}}, "responses": { "200": { "description": "reduced user view" }, "400": { "description": "missing field or email exists" } } }
    },
    "/api/users/login": {
      "post": { "summary": "Log in", "requestBody": { "content": { "application/json": { "schema": {"type":"object","properties":{"email":{"type":"string"},"password":{"type":"string"}}}}}}, "responses": { "200": { "description": "reduced user view" }, "401": { "description": "invalid credentials" } } }
    },
    "/api/vacancies": {
      "get": { "summary": "List/search vacancies", "parameters": [{"name":"q","in":"query","schema":{"type":"string"}}], "responses": { "200": { "description": "vacancy list" } } }
    },
    "/api/admin/inquiries": {
      "get": { "summary": "List inquiries, newest first (admin key required)", "responses": { "200": { "description": "inquiry list" }, "401": { "description": "unauthorized" } } }
    },
    "/api/admin/inquiry/{id}/status": {
      "post": { "summary": "Update inquiry status (admin key required)", "parameters": [{"name":"id","in":"path","required":true,"schema":{"type":"string"}}], "requestBody": { "content": { "application/json": { "schema": {"type":"object","properties":{"status":{"type":"string"}}}}}}, "responses": { "200": { "description": "updated inquiry" }, "401": { "description": "unauthorized" }, "404": { "description": "unknown inquiry" } } }
    },
    "/health": { "get": { "summary": "Liveness check", "responses": { "200": { "description": "healthy" } } } },
    "/ready": { "get": { "summary": "Readiness check", "responses": { "200": { "description": "ready" }, "503": { "description": "not ready" } } } }
  }
}`
