// Package docs registers the API description served at /swagger/*.
//
// swagger.yaml is the source of truth; it is converted to JSON at startup and
// registered with swag so echo-swagger can serve it as doc.json.
package docs

import (
	_ "embed"
	"fmt"

	"github.com/ghodss/yaml"
	"github.com/swaggo/swag"
)

//go:embed swagger.yaml
var swaggerYAML []byte

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "Destination Catalog API",
	Description:      "Browse, filter and book travel destinations.",
	InfoInstanceName: swag.Name,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

// JSON returns the API description as JSON.
func JSON() ([]byte, error) {
	doc, err := yaml.YAMLToJSON(swaggerYAML)
	if err != nil {
		return nil, fmt.Errorf("convert swagger.yaml: %w", err)
	}
	return doc, nil
}

func init() {
	doc, err := JSON()
	if err != nil {
		panic(err)
	}
	SwaggerInfo.SwaggerTemplate = string(doc)
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
