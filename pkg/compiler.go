package quill

import (
	"io"
	"log/slog"
	"os"

	"github.com/pkg/errors"
)

type Compiler struct {
	logger *slog.Logger
}

// NewCompiler returns a compiler logging to logger; a nil logger discards.
func NewCompiler(logger *slog.Logger) *Compiler {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Compiler{logger: logger}
}

func (c *Compiler) Tokenize(filename string) ([]Token, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", filename)
	}
	defer f.Close()

	return c.TokenizeFromReader(f)
}

func (c *Compiler) TokenizeFromReader(reader io.Reader) ([]Token, error) {
	tokens, err := NewLexer(reader).RunBlocking()
	if err != nil {
		return nil, err
	}

	c.logger.Debug("lexed source", "tokens", len(tokens))
	return tokens, nil
}

func (c *Compiler) Compile(filename string) (IR, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", filename)
	}
	defer f.Close()

	return c.CompileFromReader(f)
}

func (c *Compiler) CompileFromReader(reader io.Reader) (IR, error) {
	tokens, err := c.TokenizeFromReader(reader)
	if err != nil {
		return nil, err
	}

	exprs, err := CollectExprs(tokens)
	if err != nil {
		return nil, err
	}
	c.logger.Debug("collected expressions", "exprs", len(exprs))

	mod, err := NewLLVMIRBuilder().Lower(exprs)
	if err != nil {
		return nil, err
	}

	c.logger.Debug("lowered module")
	return mod, nil
}
