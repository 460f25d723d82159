// Package congress defines the core data types for the watchdog system:
// the raw shapes of the upstream legislator, committee, and membership
// datasets, and the resolved member and committee types the directory serves.
//
// Raw types mirror the YAML published by the unitedstates/congress-legislators
// project. Resolved types are produced by the reconcile package and are
// immutable once built.
package congress
