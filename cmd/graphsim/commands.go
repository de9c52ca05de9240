// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"
)

// dbFlags is shared by every command that touches the snapshot store.
type dbFlags struct {
	dir  string
	save string
}

func (f *dbFlags) register(cmd *cobra.Command, withSave bool) {
	cmd.Flags().StringVar(&f.dir, "db", "", "snapshot database directory")
	if withSave {
		cmd.Flags().StringVar(&f.save, "save", "", "store the resulting state under this name (needs --db)")
	}
}

// viewFlags selects what is printed for a state.
type viewFlags struct {
	export      bool
	stabilizers bool
	adjacency   bool
	yaml        bool
}

func (f *viewFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.export, "export", false, "print the dense state vector")
	cmd.Flags().BoolVar(&f.stabilizers, "stabilizers", false, "print the stabilizer generators")
	cmd.Flags().BoolVar(&f.adjacency, "adjacency", false, "print the adjacency matrix in qubit order")
	cmd.Flags().BoolVar(&f.yaml, "yaml", false, "print the state as a YAML snapshot")
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "graphsim",
		Short: "Decorated graph-state stabilizer simulator",
		Long: `graphsim simulates stabilizer states as decorated graphs: H, S and Z
gates, local complementation, Pauli measurements and state-vector export.`,
		SilenceUsage: true,
	}

	root.AddCommand(
		newRunCmd(),
		newBuildCmd(),
		newShowCmd(),
		newListCmd(),
	)

	return root
}
