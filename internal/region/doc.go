// Package region provides the read-only administrative-division registries
// used to decode Mainland China ID numbers.
//
// Two lookup tables exist:
//   - the province table: two-digit prefix to province name, fixed and
//     compiled in
//   - the region registry: six-digit division code to full place name, with
//     an embedded default table and an optional SQLite-backed table for the
//     complete county-level data set
//
// Design decision: the registry is exposed as a small Registry interface and
// injected into the code that needs it rather than accessed as ambient
// global state. Both implementations are populated once at startup and never
// mutated afterwards, so they are safe for unsynchronized concurrent reads.
package region
