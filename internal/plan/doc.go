// Package plan provides the resolution pipeline that produces a final Plan
// consumed by code generation.
//
// Resolution pipeline:
//  1. Collect requests from a manifest, or from directives converted into one
//  2. Validate the manifest structurally (see package manifest)
//  3. Parse and invert every request; each request owns its own Inverter so
//     requests are solved concurrently
//  4. Emit diagnostics for failed requests, carrying the inverter error code
//     and identifier suggestions
package plan
