// Package pipeline provides concurrent batch validation of number lists.
//
// Validating one number is a pure function call; batching exists for the
// --list mode of the CLI, where files with many thousands of numbers are
// checked at once. The batch processor fans the list out over a bounded
// number of goroutines with errgroup and preserves input order in the
// results.
package pipeline
