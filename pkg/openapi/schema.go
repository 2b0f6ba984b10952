// Package openapi describes the connector's enumerations and classification
// results as OpenAPI 3 schemas so consumers can validate exported payloads.
package openapi

import (
	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-fieldconnector/pkg/fieldtype"
	"github.com/goliatone/go-fieldconnector/pkg/transfer"
)

// Component names under #/components/schemas.
const (
	FieldTypeSchemaName       = "FieldType"
	TransferTypeSchemaName    = "TransferType"
	StorageDurationSchemaName = "StorageDuration"
	ResultSchemaName          = "ClassificationResult"
	ReportSchemaName          = "ClassificationReport"
)

const componentsPrefix = "#/components/schemas/"

// FieldTypeSchema is a string enum holding every field type label.
func FieldTypeSchema() *openapi3.Schema {
	values := fieldtype.Values()
	enum := make([]any, len(values))
	for i, v := range values {
		enum[i] = v.String()
	}
	schema := openapi3.NewStringSchema().WithEnum(enum...)
	schema.Description = "Field type label assigned to a host field class."
	return schema
}

// TransferTypeSchema is a string enum of transfer types.
func TransferTypeSchema() *openapi3.Schema {
	values := transfer.TransferTypes()
	enum := make([]any, len(values))
	for i, v := range values {
		enum[i] = v.String()
	}
	schema := openapi3.NewStringSchema().WithEnum(enum...)
	schema.Description = "Where detail data travels: inside the event or via a bucket."
	return schema
}

// StorageDurationSchema is a string enum of storage durations.
func StorageDurationSchema() *openapi3.Schema {
	values := transfer.StorageDurations()
	enum := make([]any, len(values))
	for i, v := range values {
		enum[i] = v.String()
	}
	schema := openapi3.NewStringSchema().WithEnum(enum...)
	schema.Description = "Retention window for bucket-stored payloads."
	return schema
}

// ResultSchema describes a single classification result.
func ResultSchema() *openapi3.Schema {
	schema := openapi3.NewObjectSchema().
		WithProperty("handle", openapi3.NewStringSchema().WithMinLength(1)).
		WithProperty("name", openapi3.NewStringSchema()).
		WithProperty("class", openapi3.NewStringSchema().WithMinLength(1)).
		WithPropertyRef("type", openapi3.NewSchemaRef(componentsPrefix+FieldTypeSchemaName, FieldTypeSchema())).
		WithProperty("traits", openapi3.NewArraySchema().WithItems(
			openapi3.NewStringSchema().WithEnum("relational", "options", "multi", "text"),
		)).
		WithProperty("error", openapi3.NewStringSchema())
	schema.Required = []string{"handle", "class"}
	schema.Description = "Outcome of classifying one host field."
	return schema
}

// ReportSchema describes a full classification report.
func ReportSchema() *openapi3.Schema {
	items := openapi3.NewSchemaRef(componentsPrefix+ResultSchemaName, ResultSchema())
	results := openapi3.NewArraySchema()
	results.Items = items
	schema := openapi3.NewObjectSchema().WithProperty("results", results)
	schema.Required = []string{"results"}
	return schema
}

// Components returns every schema ready to merge into an OpenAPI document.
func Components() openapi3.Components {
	return openapi3.Components{
		Schemas: openapi3.Schemas{
			FieldTypeSchemaName:       openapi3.NewSchemaRef("", FieldTypeSchema()),
			TransferTypeSchemaName:    openapi3.NewSchemaRef("", TransferTypeSchema()),
			StorageDurationSchemaName: openapi3.NewSchemaRef("", StorageDurationSchema()),
			ResultSchemaName:          openapi3.NewSchemaRef("", ResultSchema()),
			ReportSchemaName:          openapi3.NewSchemaRef("", ReportSchema()),
		},
	}
}

// Document wraps Components in a minimal OpenAPI 3.0 document.
func Document(version string) *openapi3.T {
	if version == "" {
		version = "dev"
	}
	components := Components()
	return &openapi3.T{
		OpenAPI: "3.0.3",
		Info: &openapi3.Info{
			Title:   "Field Connector",
			Version: version,
		},
		Paths:      openapi3.NewPaths(),
		Components: &components,
	}
}
