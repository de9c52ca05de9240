// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphsim/snapshot"
)

func openStore(dir string) (*snapshot.Store, error) {
	if dir == "" {
		return nil, errors.New("--db is required")
	}

	return snapshot.Open(snapshot.Options{Dir: dir})
}

func newShowCmd() *cobra.Command {
	var (
		db   dbFlags
		view viewFlags
	)
	cmd := &cobra.Command{
		Use:   "show NAME",
		Short: "Print a saved state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore(db.dir)
			if err != nil {
				return err
			}
			defer st.Close()

			snap, err := st.Get(args[0])
			if err != nil {
				return err
			}
			gs, err := snapshot.Restore(snap)
			if err != nil {
				return err
			}

			return printState(cmd.OutOrStdout(), gs, view)
		},
	}
	db.register(cmd, false)
	view.register(cmd)

	return cmd
}

func newListCmd() *cobra.Command {
	var db dbFlags
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List saved states",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			st, err := openStore(db.dir)
			if err != nil {
				return err
			}
			defer st.Close()

			names, err := st.List()
			if err != nil {
				return err
			}
			for _, name := range names {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}

			return nil
		},
	}
	db.register(cmd, false)

	return cmd
}
