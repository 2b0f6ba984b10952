// Package fieldtype defines the closed set of field type labels used by the
// connector, together with lookups from host field objects and from string
// identifiers.
//
// The set is fixed at build time. Match and MatchClass never guess: a field
// whose class is not part of the set yields ErrUnknownField so callers can
// decide whether to skip it, register an override, or fail the export.
//
// MissingField is part of the set. The host substitutes a MissingField
// placeholder when a field's plugin is uninstalled, and those placeholders
// are labelled missingField instead of failing, so exports keep a record of
// the field until the plugin returns.
//
//	ft, err := fieldtype.Match(&host.Assets{})
//	// ft == fieldtype.Assets
//
//	ft, ok := fieldtype.FromType("lightSwitch")
//	// ft == fieldtype.LightSwitch, ok == true
package fieldtype
