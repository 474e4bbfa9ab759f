// Package cli holds the flag wiring and DIMACS-loading glue shared by the
// arb-clique and arb-colour command-line front-ends, so both binaries
// present the same -f/-m/-l surface and differ only in which solver they
// dispatch to.
package cli
