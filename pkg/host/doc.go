// Package host mirrors the field classes exposed by the host CMS framework.
// The framework owns the real classes; the types here carry just enough of
// their settings for the connector to classify and serialise field values.
// Every type reports its fully-qualified host class through Class(), and
// types that embed one of them inherit that class, so a plugin field built on
// top of a core field classifies the same way the core field does.
package host
