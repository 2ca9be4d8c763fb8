//go:build swag

package swaggerkit

import (
	"showcase/internal/platform/logger"

	// generated by: swag init -g cmd/showcase/main.go --instanceName showcase -o internal/services/api/docs
	_ "showcase/internal/services/api/docs"

	"github.com/swaggo/swag/v2"
)

// InstanceName is the swag registry name of the generated document
const InstanceName = "showcase"

// docReader prefers the generated document and keeps the UI up when it is missing
var docReader = func() string {
	doc, err := swag.ReadDoc(InstanceName)
	if err != nil {
		logger.Get().Warn().Err(err).Str("component", "docs").Msg("generated openapi document missing, serving built-in")
		return builtinDoc
	}
	return doc
}
