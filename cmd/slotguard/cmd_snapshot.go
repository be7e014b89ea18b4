package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/slotguard/slotguard-go"
)

var (
	snapshotBuildInfo string
	snapshotContract  string
	snapshotOutput    string
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Extract a contract's layout and write a snapshot document",
	Long:  "Snapshots record the layout of the contract you are about to deploy,\nso later upgrades can be checked without keeping the old build artifacts around.",
	RunE:  runSnapshot,
}

func init() {
	snapshotCmd.Flags().StringVar(&snapshotBuildInfo, "build-info", "", "solc/framework build-info JSON file")
	snapshotCmd.Flags().StringVar(&snapshotContract, "contract", "", "contract name")
	snapshotCmd.Flags().StringVar(&snapshotOutput, "output", "", "snapshot file to write (default: stdout)")
	rootCmd.AddCommand(snapshotCmd)
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	if snapshotBuildInfo == "" || snapshotContract == "" {
		return errors.New("--build-info and --contract are required")
	}

	data, err := os.ReadFile(snapshotBuildInfo)
	if err != nil {
		return err
	}
	layout, err := layoutFromBuildInfo(data, snapshotBuildInfo, snapshotContract)
	if err != nil {
		return err
	}

	snap := slotguard.NewSnapshot(snapshotContract, layout)
	out, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return err
	}
	out = append(out, '\n')

	if snapshotOutput == "" {
		_, err = os.Stdout.Write(out)
		return err
	}
	if err := os.WriteFile(snapshotOutput, out, 0o644); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "wrote %s (%d fields)\n", snapshotOutput, len(snap.Storage))
	return nil
}
