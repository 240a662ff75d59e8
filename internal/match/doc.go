// Package match ranks known identifiers by edit distance so that diagnostics
// can offer "did you mean" suggestions for misspelled variable names.
package match
