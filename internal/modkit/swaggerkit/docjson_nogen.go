//go:build !swag

package swaggerkit

// InstanceName is the swag registry name of the generated document
const InstanceName = "showcase"

// without generated docs the hand-kept document is served
var docReader = func() string { return builtinDoc }
