package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"go.quill.dev/pkg"
)

var irCmd = &cobra.Command{
	Use:   "ir file.ql",
	Short: "Print the LLVM IR for the numeric expressions of a quill source file",
	Args:  cobra.ExactArgs(1),
	RunE:  runIR,
}

func runIR(cmd *cobra.Command, args []string) error {
	_, logger, err := setup(cmd)
	if err != nil {
		return err
	}

	mod, err := quill.NewCompiler(logger).Compile(args[0])
	if err != nil {
		return err
	}

	_, err = fmt.Fprint(os.Stdout, mod)
	return err
}
