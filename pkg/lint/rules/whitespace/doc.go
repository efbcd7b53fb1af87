// Package whitespace provides lint rules about indentation and spacing.
//
// Rules in this package:
//   - no-blank-line-runs: collapse consecutive blank lines
//   - line-length: keep lines within the configured maximum
//   - no-space-indent: no spaces before tabs in indentation
//   - no-trailing-whitespace: no spaces or tabs at end of line
package whitespace
