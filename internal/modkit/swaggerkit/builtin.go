package swaggerkit

// builtinDoc describes the public surface; decorate adds error responses
const builtinDoc = `{
  "openapi": "3.0.3",
  "info": {
    "title": "Showcase API",
    "version": "0.1.0",
    "description": "Project cards of a GitHub account, enriched from their deployed pages"
  },
  "paths": {
    "/api/v1/projects": {
      "get": {
        "tags": ["Showcase"],
        "summary": "Enriched project cards in listing order",
        "responses": {
          "200": {"description": "ok", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/ProjectsEnvelope"}}}},
          "429": {"description": "GitHub rate limit reached", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/ErrorResponse"}}}},
          "502": {"description": "Listing failed upstream", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/ErrorResponse"}}}}
        }
      }
    },
    "/api/v1/profile": {
      "get": {
        "tags": ["Showcase"],
        "summary": "Account profile",
        "responses": {
          "200": {"description": "ok", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/ProfileEnvelope"}}}}
        }
      }
    },
    "/api/v1/meta/health": {
      "get": {"tags": ["Meta"], "summary": "Liveness", "responses": {"200": {"description": "ok"}}}
    },
    "/api/v1/meta/version": {
      "get": {"tags": ["Meta"], "summary": "Build information", "responses": {"200": {"description": "ok"}}}
    },
    "/api/v1/meta/service": {
      "get": {"tags": ["Meta"], "summary": "Uptime and live sessions", "responses": {"200": {"description": "ok"}}}
    },
    "/relay": {
      "get": {
        "tags": ["Relay"],
        "summary": "Forward a GET to a public http(s) target with CORS headers",
        "parameters": [
          {"name": "target", "in": "query", "required": true, "schema": {"type": "string", "format": "uri"}}
        ],
        "responses": {
          "200": {"description": "Upstream body; images keep their type, everything else is text/plain"},
          "403": {"description": "Target resolves to a non-public address", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/ErrorResponse"}}}},
          "429": {"description": "Too many forwards in flight"},
          "503": {"description": "Target unreachable", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/ErrorResponse"}}}}
        }
      }
    }
  },
  "components": {
    "schemas": {
      "Link": {
        "type": "object",
        "properties": {"label": {"type": "string"}, "href": {"type": "string"}}
      },
      "Badge": {
        "type": "object",
        "properties": {"language": {"type": "string"}, "slug": {"type": "string"}, "url": {"type": "string"}}
      },
      "Card": {
        "type": "object",
        "properties": {
          "full_name": {"type": "string"},
          "title": {"type": "string"},
          "title_href": {"type": "string"},
          "subtitle": {"type": "string"},
          "description": {"type": "string"},
          "links": {"type": "array", "items": {"$ref": "#/components/schemas/Link"}},
          "image": {"type": "string"},
          "glyph": {"type": "boolean"},
          "languages": {"type": "array", "items": {"$ref": "#/components/schemas/Badge"}},
          "status": {"type": "string"}
        }
      },
      "Profile": {
        "type": "object",
        "properties": {
          "login": {"type": "string"},
          "name": {"type": "string"},
          "avatar_url": {"type": "string"},
          "html_url": {"type": "string"}
        }
      },
      "ProjectsEnvelope": {
        "type": "object",
        "properties": {
          "status_code": {"type": "integer"},
          "status": {"type": "string"},
          "request_id": {"type": "string"},
          "data": {"type": "array", "items": {"$ref": "#/components/schemas/Card"}}
        }
      },
      "ProfileEnvelope": {
        "type": "object",
        "properties": {
          "status_code": {"type": "integer"},
          "status": {"type": "string"},
          "request_id": {"type": "string"},
          "data": {"$ref": "#/components/schemas/Profile"}
        }
      }
    }
  }
}`
