// Package app wires the forge together: it owns the application's
// configuration, logger, loaded model, resolved inputs, platform
// enumeration, and package index, and dispatches the user-facing
// operations (build, shell, eval) against them.
package app
