// Package internal contains logging infrastructure shared by the fragnav packages.
// Types and functions in this package are not part of the public API.
package internal
