// Package report encodes run results and generated streams.
//
// Supported formats:
//   - json: github.com/bytedance/sonic
//   - yaml: github.com/goccy/go-yaml
//   - toml: github.com/pelletier/go-toml/v2
//
// Undefined statistics (NaN) are omitted from encoded output since none of
// the formats can carry them portably.
package report
