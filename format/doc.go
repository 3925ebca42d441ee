// Package format enumerates the text formats consumed and produced by
// go-hydrate: JSON, TOML, and YAML.
//
// The order of AllFormats is the order in which input text is sniffed.
//
// # Related Packages
//
//   - github.com/hydrate-format/go-hydrate/parse - Sniffs and decodes text
//   - github.com/hydrate-format/go-hydrate/encode - Renders values to text
package format
