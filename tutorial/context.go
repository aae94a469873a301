package tutorial

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/peterouob/gobasics/config"
)

// Vars holds the bindings that later lessons pick up from earlier ones.
//
// Every Run starts from the config seeds (X and Y), and lessons that are not
// selected do not update them. A lesson run on its own therefore sees the
// seeds rather than the values a full walkthrough would have reached: enums
// alone compares 5 with 1 and prints "more", the full run prints "less".
type Vars struct {
	X int
	Y int
	Z int
	B int
	C int
}

func newVars(cfg *config.Config) *Vars {
	return &Vars{X: cfg.X, Y: cfg.Y}
}

// Context is passed to every lesson handler.
type Context struct {
	context.Context

	Config *config.Config
	Log    *zap.Logger
	Vars   *Vars

	out io.Writer
}

// Println writes one line of narration.
func (c *Context) Println(a ...any) {
	_, _ = fmt.Fprintln(c.out, a...)
}

func (c *Context) Printf(format string, a ...any) {
	_, _ = fmt.Fprintf(c.out, format, a...)
}
