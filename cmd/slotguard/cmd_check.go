package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/slotguard/slotguard-go"
)

var (
	checkOriginal string
	checkUpdated  string
	checkContract string
	checkManifest string
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Compare two storage layouts and fail on unsafe changes",
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().StringVar(&checkOriginal, "original", "", "deployed layout: build-info JSON or slotguard snapshot")
	checkCmd.Flags().StringVar(&checkUpdated, "updated", "", "candidate layout: build-info JSON or slotguard snapshot")
	checkCmd.Flags().StringVar(&checkContract, "contract", "", "contract name (required for build-info files)")
	checkCmd.Flags().StringVar(&checkManifest, "manifest", "", "YAML manifest listing contract pairs to check")
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	checks, err := collectChecks()
	if err != nil {
		return err
	}

	unsafe := 0
	for _, c := range checks {
		if err := checkPair(c); err != nil {
			var compatErr *slotguard.CompatibilityError
			if !errors.As(err, &compatErr) {
				return err
			}
			fmt.Fprint(os.Stdout, renderIncompatible(c.Contract, compatErr))
			unsafe++
			continue
		}
		fmt.Fprintln(os.Stdout, renderCompatible(c.Contract))
	}
	if unsafe > 0 {
		return fmt.Errorf("%d of %d contracts have incompatible storage layouts", unsafe, len(checks))
	}
	return nil
}

func collectChecks() ([]manifestCheck, error) {
	if checkManifest != "" {
		m, err := loadManifest(checkManifest)
		if err != nil {
			return nil, err
		}
		return m.Checks, nil
	}
	if checkOriginal == "" || checkUpdated == "" {
		return nil, errors.New("either --manifest or both --original and --updated are required")
	}
	return []manifestCheck{{
		Contract: checkContract,
		Original: checkOriginal,
		Updated:  checkUpdated,
	}}, nil
}

func checkPair(c manifestCheck) error {
	original, err := loadLayout(c.Original, c.Contract)
	if err != nil {
		return err
	}
	updated, err := loadLayout(c.Updated, c.Contract)
	if err != nil {
		return err
	}
	return slotguard.AssertCompatible(original, updated)
}
