package slotguard

import (
	"fmt"

	"github.com/slotguard/slotguard-go/solc"
	"github.com/slotguard/slotguard-go/typeid"
)

// ExtractLayout reads the storage layout of a single contract definition.
//
// Only the contract's direct member declarations are walked, in declaration
// order; inherited members are the caller's responsibility (resolve the
// linearized bases and extract each definition). Compile-time constants and
// immutables occupy no storage slot and are skipped.
//
// A declaration whose type metadata is missing either the type identifier or
// the type string indicates malformed compiler output and fails the whole
// extraction.
func ExtractLayout(contract *solc.ContractDefinition, decodeSrc solc.SrcDecoder) (*StorageLayout, error) {
	layout := &StorageLayout{Types: map[string]TypeItem{}}
	for i := range contract.Nodes {
		decl := &contract.Nodes[i]
		if !decl.IsStateVariable() {
			continue
		}
		if decl.Constant || decl.Mutability == solc.MutabilityImmutable {
			continue
		}
		td := decl.TypeDescriptions
		if td.TypeIdentifier == nil || td.TypeString == nil {
			return nil, fmt.Errorf("slotguard: variable %q in contract %q has incomplete type metadata", decl.Name, contract.Name)
		}
		key := typeid.Decode(*td.TypeIdentifier)
		layout.Storage = append(layout.Storage, StorageItem{
			Contract: contract.Name,
			Label:    decl.Name,
			Type:     key,
			Src:      decodeSrc(decl.Src),
		})
		// Last write wins when two fields share a canonical key; the label
		// is derived from the type alone, so the entries are identical.
		layout.Types[key] = TypeItem{Label: *td.TypeString}
	}
	return layout, nil
}
