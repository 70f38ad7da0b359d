// Package platform defines the target platform identifiers the
// configuration can be evaluated for, the restartable enumeration over
// them, and the mapping from the invoking host to its platform identifier.
package platform
