// Package slotguard checks whether a new version of a Solidity contract's
// storage layout is safe to deploy over an existing, already-populated
// instance.
//
// Reordering fields, changing a field's encoded type, or removing an occupied
// slot silently corrupts data once the new code reads old bytes under a new
// interpretation. slotguard extracts an ordered layout from the compiler's
// AST output, aligns the old and new layouts, and classifies each change as
// safe or unsafe before anything is deployed.
//
// # Quick Start
//
//	def, err := output.FindContract("Token")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	layout, err := slotguard.ExtractLayout(def, solc.NewSrcDecoder(input, output))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	if err := slotguard.AssertCompatible(deployed, layout); err != nil {
//	    log.Fatal(err) // lists every unsafe change, not just the first
//	}
//
// # Safety Policy
//
// Appending new fields after an otherwise-unchanged layout is always safe.
// Renaming a field without changing its type (reported as typechange) keeps
// the slot's encoding and is safe. Everything else that touches an occupied
// slot is unsafe: a type change under a kept name (rename), a wholesale
// replacement, or a deletion. Two types are considered equal only when their
// rendered labels are textually identical; no structural comparison of
// composite types is attempted.
//
// # Lossless JSON (Forward Compatibility)
//
// Layout snapshots are JSON documents that outlive any one version of this
// package, and the compiler attaches fields (slot, offset, astId, ...) this
// package does not model. All document types preserve unknown JSON fields on
// unmarshal → marshal by storing:
//   - LosslessFields.Extensions for keys beginning with x-
//   - LosslessFields.Unknown for other unknown keys
//
// If a key exists both as a typed field and in Unknown/Extensions, the typed
// field wins during marshaling.
//
// # Concurrency
//
// Every entry point is a pure function of its inputs; there is no shared
// mutable state. Concurrent checks over independent layout pairs are safe.
//
// # Subpackages
//
//   - typeid: decode compiler-internal type identifiers into canonical keys
//   - align: generic minimum-cost sequence alignment
//   - solc: the compiler standard-JSON subset slotguard consumes
package slotguard
