// Package inputs implements the input registry: the static mapping from
// symbolic names to external-source locators, plus the pin directives that
// force one input's transitive sub-dependency to resolve through another
// declared input. Resolution is pure and happens once at startup; the
// actual fetching of sources is delegated entirely to the external build
// engine.
package inputs
