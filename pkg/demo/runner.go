// Package demo runs the gruvcrisp demonstrations in a fixed order and reports
// what each one did.
package demo

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"slices"
	"time"

	"github.com/amirkhaki/gruvcrisp/pkg/config"
	"github.com/amirkhaki/gruvcrisp/pkg/records"
	"github.com/amirkhaki/gruvcrisp/pkg/theme"
	"github.com/amirkhaki/gruvcrisp/pkg/trace"
	"go.uber.org/zap"
)

// Options configure a Runner. Zero values fall back to stdout, stderr, a
// no-op logger, DefaultConfig and a clock-seeded generator.
type Options struct {
	Out      io.Writer
	Err      io.Writer
	Logger   *zap.Logger
	Config   *config.Config
	Observer trace.Observer
	Rand     *rand.Rand
}

// Runner executes demos. It is not safe for concurrent use.
type Runner struct {
	out   io.Writer
	err   io.Writer
	log   *zap.Logger
	cfg   *config.Config
	obs   trace.Observer
	rng   *rand.Rand
	theme *theme.Theme
}

// NewRunner creates a Runner from opts.
func NewRunner(opts Options) *Runner {
	r := &Runner{
		out: opts.Out,
		err: opts.Err,
		log: opts.Logger,
		cfg: opts.Config,
		obs: opts.Observer,
		rng: opts.Rand,
	}
	if r.out == nil {
		r.out = os.Stdout
	}
	if r.err == nil {
		r.err = os.Stderr
	}
	if r.log == nil {
		r.log = zap.NewNop()
	}
	if r.cfg == nil {
		r.cfg = config.DefaultConfig()
	}
	if r.obs == nil {
		r.obs = trace.Nop{}
	}
	if r.rng == nil {
		seed := r.cfg.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		r.log.Debug("seeding random generator", zap.Int64("seed", seed))
		r.rng = rand.New(rand.NewSource(seed))
	}
	r.theme = theme.New(r.out, r.cfg.Color)
	return r
}

// Demo is a named demonstration routine.
type Demo struct {
	Name  string
	Short string
	run   func(*Runner) error
}

var demos = []Demo{
	{Name: "pointers", Short: "array addresses, pointer arithmetic and a function value", run: (*Runner).Pointers},
	{Name: "memory", Short: "allocate, fill, grow and release a buffer", run: (*Runner).DynamicMemory},
	{Name: "bits", Short: "set, clear, toggle and count flag bits", run: (*Runner).Bits},
	{Name: "file", Short: "write, read back and delete a scratch file", run: (*Runner).FileOps},
	{Name: "records", Short: "records, tagged union, status switch and bounded retry", run: (*Runner).Records},
}

// Demos lists the available demos in run order.
func Demos() []Demo {
	return slices.Clone(demos)
}

// Main is the full program: header, argument echo, every demo, footer.
func (r *Runner) Main(args []string) error {
	fmt.Fprintln(r.out, r.theme.Paint(records.ColorGreen, "Gruvbox Crisp Theme - Go Language Demo"))
	fmt.Fprintf(r.out, "Version: %s, Platform: %s\n\n", r.cfg.Version, r.cfg.Platform)

	if len(args) > 0 {
		fmt.Fprintln(r.out, "Command line arguments:")
		for i, arg := range args {
			fmt.Fprintf(r.out, "  argv[%d]: %s\n", i+1, arg)
		}
		fmt.Fprintln(r.out)
	}

	err := r.Run()

	fmt.Fprintf(r.out, "\n%s\n", r.theme.Paint(records.ColorCyan, "Program completed successfully!"))
	return err
}

// Run executes the named demos, or all of them when names is empty, in the
// fixed demo order. A failing demo is logged and does not stop the others.
// The returned error is only about names and the observer.
func (r *Runner) Run(names ...string) error {
	for _, n := range names {
		if !slices.ContainsFunc(demos, func(d Demo) bool { return d.Name == n }) {
			return fmt.Errorf("unknown demo %q", n)
		}
	}

	for _, d := range demos {
		if len(names) > 0 && !slices.Contains(names, d.Name) {
			continue
		}
		r.obs.OnEvent(trace.Event{Demo: d.Name, Kind: trace.KindStart})
		if err := d.run(r); err != nil {
			r.log.Warn("demo failed", zap.String("demo", d.Name), zap.Error(err))
			r.obs.OnEvent(trace.Event{Demo: d.Name, Kind: trace.KindFail, Detail: err.Error()})
			continue
		}
		r.obs.OnEvent(trace.Event{Demo: d.Name, Kind: trace.KindFinish})
	}

	if err := r.obs.OnFinalize(); err != nil {
		return fmt.Errorf("failed to finalize trace: %w", err)
	}
	return nil
}

func (r *Runner) banner(text string) {
	fmt.Fprint(r.out, theme.Banner(text))
}
