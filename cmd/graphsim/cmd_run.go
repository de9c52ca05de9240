// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphsim/program"
)

func newRunCmd() *cobra.Command {
	var (
		db   dbFlags
		view viewFlags
	)
	cmd := &cobra.Command{
		Use:   "run FILE",
		Short: "Run a program file (.yaml/.yml or text form)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := program.Load(args[0])
			if err != nil {
				return err
			}
			res, err := program.Run(cmd.Context(), p)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, o := range res.Outcomes {
				fmt.Fprintf(out, "step %d: %s %d = %d\n", o.Step, o.Kind, o.Node, o.Value)
			}
			if err := printState(out, res.State, view); err != nil {
				return err
			}

			return saveState(db, res.State)
		},
	}
	db.register(cmd, true)
	view.register(cmd)

	return cmd
}
