// Package projectconfig reads field definitions from the host's project
// config export and turns them into host.Field values.
//
// Two layouts are understood: one file per field under fields/ (named
// `<handle>--<uid>.yaml` by the host, JSON is accepted too) and the
// aggregate project.yaml whose `fields` map is keyed by uid. Every
// definition needs a handle and a type; handles must be unique across both
// layouts. Classes without a Go mirror load as host.Unsupported so the
// classifier can still report them.
package projectconfig
