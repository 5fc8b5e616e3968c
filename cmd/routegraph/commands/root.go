// Package commands implements the routegraph command line.
//
// The command takes only positional arguments; flag parsing is disabled so a
// node name that starts with '-' is still a node name.
//
//	args  input   output
//	0     stdin   whole graph
//	1     file    whole graph
//	2     stdin   route args[0] -> args[1]
//	3     file    route args[1] -> args[2]
//	>3    usage on stderr, exit status 1
package commands

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/routegraph/edgelist"
	"github.com/katalvlaran/routegraph/graph"
	"github.com/katalvlaran/routegraph/metrics"
	"github.com/katalvlaran/routegraph/render"
)

const maxArgs = 3

// errUsage marks an argument count the command does not accept.
var errUsage = errors.New("invalid arguments")

// Execute runs the command against the process arguments and standard
// streams and returns the exit status.
func Execute() int {
	return Run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
}

// Run executes the command with explicit arguments and streams and returns
// the exit status: 0 on success or on a failed route query (reported on
// stderr), 1 on a usage error or when the graph cannot be read.
func Run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if args == nil {
		args = []string{} // cobra falls back to os.Args on nil
	}

	cmd := NewRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.Execute()
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errUsage):
		writeUsage(stderr)
	default:
		fmt.Fprintln(stderr, "Error:", err)
	}

	return 1
}

// NewRootCmd builds the root command. Errors are returned, not printed.
func NewRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "routegraph [graph-file] [from to]",
		Short: "Shortest routes through a weighted directed graph",
		Long: `routegraph reads "from to weight" triples and keeps the shortest
route between every pair of nodes as each edge arrives.`,
		DisableFlagParsing: true,
		SilenceErrors:      true,
		SilenceUsage:       true,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) > maxArgs {
				return fmt.Errorf("%d arguments: %w", len(args), errUsage)
			}
			return nil
		},
		RunE: runRoot,
	}
}

// invocation is the parsed positional surface.
type invocation struct {
	path     string // "" reads stdin
	from, to string
	route    bool
}

func parseArgs(args []string) invocation {
	var inv invocation
	switch len(args) {
	case 1:
		inv.path = args[0]
	case 2:
		inv.from, inv.to, inv.route = args[0], args[1], true
	case 3:
		inv.path = args[0]
		inv.from, inv.to, inv.route = args[1], args[2], true
	}

	return inv
}

func runRoot(cmd *cobra.Command, args []string) error {
	cfg, err := LoadConfig()
	if err != nil {
		return err
	}
	log := cfg.NewLogger(cmd.ErrOrStderr())
	slog.SetDefault(log)

	inv := parseArgs(args)

	var opts []graph.Option
	reg := prometheus.NewRegistry()
	if cfg.Metrics {
		opts = append(opts, graph.WithObserver(metrics.New(reg)))
		defer logMetrics(log, reg)
	}
	s := graph.New(opts...)

	if err = load(cmd, inv.path, s, log); err != nil {
		return err
	}
	log.Info("graph loaded", "nodes", s.NodeCount(), "source", sourceName(inv.path))

	if !inv.route {
		return render.Graph(cmd.OutOrStdout(), s)
	}

	err = render.Route(cmd.OutOrStdout(), s, inv.from, inv.to)
	if msg := render.Message(err, inv.from, inv.to); msg != "" {
		// A failed query is reported, not fatal.
		fmt.Fprintln(cmd.ErrOrStderr(), msg)
		return nil
	}

	return err
}

// load decodes the edge list from path, or stdin when path is empty.
func load(cmd *cobra.Command, path string, s *graph.Store, log *slog.Logger) error {
	in := cmd.InOrStdin()
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("open graph: %w", err)
		}
		defer f.Close()
		in = f
	}

	n, err := edgelist.Decode(in, s, edgelist.WithLogger(log))
	if err != nil {
		return fmt.Errorf("parse graph %s: %w", sourceName(path), err)
	}
	log.Debug("edges decoded", "count", n)

	return nil
}

func sourceName(path string) string {
	if path == "" {
		return "<stdin>"
	}

	return path
}

// logMetrics writes every gathered sample at info level.
func logMetrics(log *slog.Logger, g prometheus.Gatherer) {
	families, err := g.Gather()
	if err != nil {
		log.Warn("gather metrics", "error", err)
		return
	}

	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			attrs := []any{"name", mf.GetName()}
			for _, lp := range m.GetLabel() {
				attrs = append(attrs, lp.GetName(), lp.GetValue())
			}
			switch {
			case m.GetCounter() != nil:
				attrs = append(attrs, "value", m.GetCounter().GetValue())
			case m.GetGauge() != nil:
				attrs = append(attrs, "value", m.GetGauge().GetValue())
			}
			log.Info("metric", attrs...)
		}
	}
}
