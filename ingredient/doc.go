// Package ingredient holds the fixed cosmetic-ingredient knowledge table
// shared by the estimation, reduction and optimization packages.
//
// The table is deliberately small and closed: per-jurisdiction regulatory
// ceilings, a closed set of function tags, pairwise incompatibility and
// synergy relations, relative unit costs and a "natural origin" flag. It is
// compiled into the binary — no loading, no persistence, no external
// knowledge base.
//
// Invariants:
//
//   - Lookups are case- and whitespace-insensitive (INCI names are
//     canonicalized to upper case).
//   - Incompatibility and synergy are symmetric relations.
//   - A missing ceiling entry means "no regulatory limit known", never zero.
//
// All functions are pure reads over immutable package-level data and are
// safe for concurrent use.
package ingredient
