// Package punctuation provides lint rules about punctuation characters.
//
// Rules in this package:
//   - no-semicolons: statements should not be terminated with semicolons
//   - no-forced-unwrap: optionals should be unwrapped safely
package punctuation
