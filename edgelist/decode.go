package edgelist

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/routegraph/graph"
)

// errNotFinite is the cause recorded for weights such as "inf" or "nan",
// which strconv accepts but the graph rejects.
var errNotFinite = errors.New("weight is not finite")

// maxLineBytes bounds a single input line.
const maxLineBytes = 1 << 20

// Inserter receives decoded edges.
type Inserter interface {
	InsertEdge(from, to string, weight float64) (graph.Insertion, error)
}

// Option configures Decode.
type Option func(*decoder)

// WithLogger sets the logger used for per-edge debug output and warnings.
// Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(d *decoder) {
		if l != nil {
			d.log = l
		}
	}
}

type decoder struct {
	log *slog.Logger
}

// pending is a triple under construction.
type pending struct {
	tokens [3]string
	n      int
	line   int // line of the weight token once n == 3
}

// Decode reads triples from r until end of stream and inserts each into dst.
// It returns the number of edges inserted.
//
// Errors:
//   - *ParseError (ErrParse) for a malformed weight token.
//   - Errors from dst, wrapped with the edge's line.
//   - Read errors from r, wrapped.
func Decode(r io.Reader, dst Inserter, opts ...Option) (int, error) {
	d := decoder{log: slog.Default()}
	for _, opt := range opts {
		opt(&d)
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var (
		cur   pending
		count int
		line  int
	)
	for sc.Scan() {
		line++
		for _, tok := range strings.Fields(sc.Text()) {
			cur.tokens[cur.n] = tok
			cur.n++
			if cur.n < len(cur.tokens) {
				continue
			}
			cur.line = line

			if err := d.insert(dst, cur); err != nil {
				return count, err
			}
			count++
			cur = pending{}
		}
	}
	if err := sc.Err(); err != nil {
		return count, fmt.Errorf("edgelist: read after line %d: %w", line, err)
	}

	if cur.n > 0 {
		d.log.Warn("dropping incomplete trailing edge",
			"tokens", strings.Join(cur.tokens[:cur.n], " "),
			"line", line,
		)
	}

	return count, nil
}

// insert parses the weight of a complete triple and hands it to dst.
func (d *decoder) insert(dst Inserter, p pending) error {
	from, to, raw := p.tokens[0], p.tokens[1], p.tokens[2]

	w, err := strconv.ParseFloat(raw, 64)
	if err == nil && (math.IsInf(w, 0) || math.IsNaN(w)) {
		err = errNotFinite
	}
	if err != nil {
		return &ParseError{Line: p.line, Token: raw, Err: err}
	}

	ins, err := dst.InsertEdge(from, to, w)
	if err != nil {
		return fmt.Errorf("edgelist: line %d: %w", p.line, err)
	}

	d.log.Debug("edge",
		"from", from,
		"to", to,
		"weight", w,
		"applied", ins.Applied,
		"improved", ins.Improved,
	)

	return nil
}
