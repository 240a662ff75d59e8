// Package diagnostic provides structured errors and warnings for inversion
// requests.
//
// Key capabilities:
//   - Stable codes for every inverter failure kind
//   - Manifest and directive problems tied to a request name and position
//   - "Did you mean" suggestions for misspelled identifiers
package diagnostic
