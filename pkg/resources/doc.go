// Package resources turns ordered item text into string resource documents.
//
// The output is the flat `<resources>` layout consumed by Android-style
// resource loaders. Only apostrophes are escaped; markup characters are
// emitted verbatim so existing resource bundles keep their current bytes.
package resources
