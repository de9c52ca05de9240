// SPDX-License-Identifier: MIT

// Command graphsim runs graph-state programs and manages saved states.
//
//	graphsim run examples/cluster.gs --export
//	graphsim build grid --rows 2 --cols 3 --db ./states --save grid23
//	graphsim show grid23 --db ./states --stabilizers
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"

	"github.com/plan-systems/klog"
)

func main() {
	fset := flag.NewFlagSet("", flag.ContinueOnError)
	klog.InitFlags(fset)
	_ = fset.Set("logtostderr", "true")
	klog.SetFormatter(&klog.FmtConstWidth{
		FileNameCharWidth: 16,
		UseColor:          true,
	})

	root := newRootCmd()
	root.PersistentFlags().AddGoFlagSet(fset)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := root.ExecuteContext(ctx)
	stop()
	klog.Flush()
	if err != nil {
		os.Exit(1)
	}
}
