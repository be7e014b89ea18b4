package slotguard_test

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/slotguard/slotguard-go"
	"github.com/slotguard/slotguard-go/solc"
)

func ExampleAssertCompatible() {
	deployed := &slotguard.StorageLayout{
		Storage: []slotguard.StorageItem{
			{Contract: "Token", Label: "owner", Type: "t_address", Src: "contracts/Token.sol:4"},
		},
		Types: map[string]slotguard.TypeItem{
			"t_address": {Label: "address"},
		},
	}

	// The new version appends a field after the existing layout.
	updated := &slotguard.StorageLayout{
		Storage: []slotguard.StorageItem{
			{Contract: "Token", Label: "owner", Type: "t_address", Src: "contracts/Token.sol:4"},
			{Contract: "Token", Label: "balance", Type: "t_uint256", Src: "contracts/Token.sol:5"},
		},
		Types: map[string]slotguard.TypeItem{
			"t_address": {Label: "address"},
			"t_uint256": {Label: "uint256"},
		},
	}

	if err := slotguard.AssertCompatible(deployed, updated); err != nil {
		fmt.Println("unsafe:", err)
	} else {
		fmt.Println("safe to upgrade")
	}
	// Output: safe to upgrade
}

func ExampleAssertCompatible_unsafe() {
	deployed := &slotguard.StorageLayout{
		Storage: []slotguard.StorageItem{
			{Contract: "Token", Label: "supply", Type: "t_uint256", Src: "contracts/Token.sol:4"},
		},
		Types: map[string]slotguard.TypeItem{
			"t_uint256": {Label: "uint256"},
		},
	}

	// Same field name, different type: old bytes would be reinterpreted.
	updated := &slotguard.StorageLayout{
		Storage: []slotguard.StorageItem{
			{Contract: "Token", Label: "supply", Type: "t_string_storage", Src: "contracts/Token.sol:4"},
		},
		Types: map[string]slotguard.TypeItem{
			"t_string_storage": {Label: "string"},
		},
	}

	err := slotguard.AssertCompatible(deployed, updated)
	fmt.Println(err)
	// Output: incompatible storage layout: contracts/Token.sol:4: rename of supply
}

func ExampleExtractLayout() {
	def := &solc.ContractDefinition{
		NodeType: solc.NodeTypeContractDefinition,
		Name:     "Vault",
		Nodes: []solc.VariableDeclaration{
			{
				NodeType:   solc.NodeTypeVariableDeclaration,
				Name:       "shares",
				Src:        "100:50:0",
				Mutability: solc.MutabilityMutable,
				TypeDescriptions: solc.TypeDescriptions{
					TypeIdentifier: ptr("t_mapping$_t_address_$_t_uint256_$"),
					TypeString:     ptr("mapping(address => uint256)"),
				},
			},
		},
	}

	layout, err := slotguard.ExtractLayout(def, func(src string) string { return src })
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(layout.Storage[0].Type)
	// Output: t_mapping(t_address,t_uint256)
}

func ExampleSnapshot() {
	data := []byte(`{
		"slotguard": "1.0.0",
		"contract": "Token",
		"storage": [
			{"contract": "Token", "label": "owner", "type": "t_address", "src": "contracts/Token.sol:4"}
		],
		"types": {"t_address": {"label": "address"}}
	}`)

	var snap slotguard.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		log.Fatal(err)
	}
	if err := snap.Validate(slotguard.WithRequireSupportedVersion()); err != nil {
		log.Fatal(err)
	}

	fmt.Println(snap.Contract, len(snap.Storage))
	// Output: Token 1
}

func ptr(s string) *string { return &s }
