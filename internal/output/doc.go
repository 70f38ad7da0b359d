// Package output assembles the final published output set: the default
// derivation and shell descriptor for every enumerated platform, plus the
// single platform-independent overlay entry. Per-platform resolution and
// overlay construction are independent pure functions combined by the
// caller.
package output
