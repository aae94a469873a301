// Package tutorial runs lessons of the walkthrough in syllabus order.
package tutorial

import (
	"context"
	"io"

	"github.com/fatih/color"
	"github.com/go-faster/errors"
	"go.uber.org/zap"

	"github.com/peterouob/gobasics/config"
	"github.com/peterouob/gobasics/ordering"
	"github.com/peterouob/gobasics/sorted"
)

// ErrUnknownLesson is returned by Run for names that were never registered.
var ErrUnknownLesson = errors.New("unknown lesson")

type Handler func(c *Context) error

type Lesson struct {
	Name    string
	Title   string
	Handler Handler
}

type Runner struct {
	cfg     *config.Config
	out     io.Writer
	lg      *zap.Logger
	heading *color.Color

	lessons []Lesson
	// index maps lesson name to its position in lessons.
	index *sorted.Tree[string, int]
}

func New(cfg *config.Config, out io.Writer, lg *zap.Logger) *Runner {
	if lg == nil {
		lg = zap.NewNop()
	}
	heading := color.New(color.FgCyan, color.Bold)
	if cfg.Color {
		heading.EnableColor()
	} else {
		heading.DisableColor()
	}
	return &Runner{
		cfg:     cfg,
		out:     out,
		lg:      lg,
		heading: heading,
		index:   sorted.NewTree[string, int](&ordering.OrderComparator[string]{}),
	}
}

// Handle registers a lesson. Registering an empty or duplicate name panics.
func (r *Runner) Handle(name, title string, h Handler) {
	if name == "" {
		panic("tutorial: empty lesson name")
	}
	if h == nil {
		panic("tutorial: nil handler for lesson " + name)
	}
	if _, ok := r.index.Find(name); ok {
		panic("tutorial: lesson " + name + " registered twice")
	}
	r.index.Insert(name, len(r.lessons))
	r.lessons = append(r.lessons, Lesson{Name: name, Title: title, Handler: h})
}

// Lessons returns the registered lessons in syllabus order.
func (r *Runner) Lessons() []Lesson {
	return append([]Lesson(nil), r.lessons...)
}

// Sorted returns the registered lessons ordered by name.
func (r *Runner) Sorted() []Lesson {
	out := make([]Lesson, 0, r.index.Len())
	r.index.Ascend(func(_ string, i int) bool {
		out = append(out, r.lessons[i])
		return true
	})
	return out
}

func (r *Runner) Lookup(name string) (Lesson, bool) {
	i, ok := r.index.Find(name)
	if !ok {
		return Lesson{}, false
	}
	return r.lessons[i], true
}

// Run runs the named lessons, or all of them when names is empty. Selected
// lessons always run in syllabus order, and all names are checked before
// anything is printed.
func (r *Runner) Run(ctx context.Context, names ...string) error {
	if err := r.cfg.Validate(); err != nil {
		return errors.Wrap(err, "validate config")
	}

	selected, err := r.selection(names)
	if err != nil {
		return err
	}

	c := &Context{
		Context: ctx,
		Config:  r.cfg,
		Log:     r.lg,
		Vars:    newVars(r.cfg),
		out:     r.out,
	}
	for i, l := range r.lessons {
		if !selected[i] {
			continue
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		lg := r.lg.With(zap.String("lesson", l.Name))
		lg.Debug("Running lesson")
		if r.cfg.Headings {
			if _, err := r.heading.Fprintf(r.out, "━━━ %s ━━━\n", l.Title); err != nil {
				return errors.Wrap(err, "write heading")
			}
		}
		c.Log = lg
		if err := l.Handler(c); err != nil {
			return errors.Wrapf(err, "lesson %q", l.Name)
		}
		lg.Debug("Lesson done", zap.Any("vars", *c.Vars))
	}
	return nil
}

func (r *Runner) selection(names []string) ([]bool, error) {
	selected := make([]bool, len(r.lessons))
	if len(names) == 0 {
		for i := range selected {
			selected[i] = true
		}
		return selected, nil
	}
	for _, name := range names {
		i, ok := r.index.Find(name)
		if !ok {
			return nil, errors.Wrapf(ErrUnknownLesson, "%q", name)
		}
		selected[i] = true
	}
	return selected, nil
}
