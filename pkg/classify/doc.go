// Package classify resolves host fields to field type labels through a
// registry that layers class overrides and priority-ordered matchers on top
// of the built-in class table. Plugin classes the connector does not know
// about can be mapped onto an existing label without widening the label set.
package classify
