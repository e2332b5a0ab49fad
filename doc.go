// Package ocskn is an in-memory engine for constrained, multi-objective
// cosmeceutical formulation design — from INCI-driven search-space reduction
// to attention-scheduled evolutionary optimization.
//
// 🚀 What is ocskn?
//
//	A deterministic, in-memory library that brings together:
//		• Ingredient knowledge: fixed regulatory ceilings, function tags,
//		  compatibility / synergy relations (ingredient)
//		• INCI intelligence: rank-based concentration estimation and
//		  jurisdictional compliance validation (inci)
//		• Search-space pruning: compatibility- and constraint-aware pool
//		  reduction with a combinatorial reduction report (reduce)
//		• Multiscale effect modeling: pure molecular / cellular / tissue /
//		  organ response models (bioscale)
//		• Adaptive scheduling: an attention allocator with decay,
//		  reinforcement and Hebbian edge learning (attention)
//		• Evolutionary search: elitist, tournament-driven multi-objective
//		  optimization of formulation candidates (evolve)
//
// ✨ Why choose ocskn?
//
//   - Deterministic by construction – one injectable, seedable RNG drives
//     every stochastic operator; same seed ⇒ same trajectory
//   - Pure call-and-return – no I/O, no network, no persistence
//   - Strict sentinels – every package validates input up-front and fails
//     with errors.Is-testable values
//   - Explicit wiring – reducer, effect model and allocator are constructed
//     by the caller and injected by reference; no shared globals
//
// Typical data flow:
//
//	inci.Estimate ─┬─► inci.Validate
//	               └─► reduce.Reduce ──► evolve.Optimize ◄── attention.Allocator
//	                                          │
//	                                     bioscale.Predict
//
// Dive into each package's doc.go for contracts, complexity notes and
// worked examples.
//
//	go get github.com/ReZonArc/ocskn
package ocskn
