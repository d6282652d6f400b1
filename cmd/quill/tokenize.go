package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"go.quill.dev/pkg"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokens file.ql",
	Short: "Print the tokens of a quill source file",
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

var (
	keywordColor  = color.New(color.FgYellow, color.Bold)
	literalColor  = color.New(color.FgGreen)
	operatorColor = color.New(color.FgCyan)
	punctColor    = color.New(color.FgWhite)
)

func runTokenize(cmd *cobra.Command, args []string) error {
	cfg, logger, err := setup(cmd)
	if err != nil {
		return err
	}

	color.NoColor = !useColor(cfg, os.Stdout)

	tokens, err := quill.NewCompiler(logger).Tokenize(args[0])
	if err != nil {
		return err
	}

	for _, tok := range tokens {
		fmt.Fprintln(os.Stdout, colorFor(tok.Kind).Sprint(tok.String()))
	}

	return nil
}

func colorFor(kind quill.TokenKind) *color.Color {
	switch kind {
	case quill.TokenPrint, quill.TokenFunction, quill.TokenReturn, quill.TokenNull:
		return keywordColor
	case quill.TokenString, quill.TokenNumber:
		return literalColor
	case quill.TokenLeftParen, quill.TokenRightParen:
		return punctColor
	}

	return operatorColor
}
