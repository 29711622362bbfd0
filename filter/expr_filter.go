package filter

import (
	"strings"
	"time"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/s0up4200/qbit-mover/qbittorrent"
)

// ExprFilter represents a compiled expr filter
type ExprFilter struct {
	program *vm.Program
	expr    string
}

// CompileExprFilter compiles an expr filter expression. Unknown identifiers and
// non-boolean results are rejected at compile time.
func CompileExprFilter(expression string) (*ExprFilter, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "empty expression",
		}
	}

	program, err := expr.Compile(expression,
		expr.Env(createEnvironment(&qbittorrent.TorrentInfo{})),
		expr.AsBool(),
	)
	if err != nil {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "failed to compile expression",
			Err:        err,
		}
	}

	return &ExprFilter{
		program: program,
		expr:    expression,
	}, nil
}

// Name implements Predicate.
func (f *ExprFilter) Name() string {
	return f.expr
}

// Match implements Predicate.
func (f *ExprFilter) Match(t *qbittorrent.TorrentInfo) (bool, error) {
	result, err := expr.Run(f.program, createEnvironment(t))
	if err != nil {
		return false, &EvaluationError{
			FilterName:  f.expr,
			TorrentName: t.Name,
			Reason:      "failed to evaluate expression",
			Err:         err,
		}
	}

	// AsBool guarantees the type
	return result.(bool), nil
}

// String returns the source expression
func (f *ExprFilter) String() string {
	return f.expr
}

// createEnvironment exposes torrent fields and helper functions to expressions.
func createEnvironment(t *qbittorrent.TorrentInfo) map[string]any {
	return map[string]any{
		// Torrent data
		"Torrent":     t,
		"Name":        t.Name,
		"Hash":        t.Hash,
		"Category":    t.Category,
		"Tags":        t.Tags,
		"State":       t.State,
		"ContentPath": t.ContentPath,
		"SavePath":    t.SavePath,
		"Size":        t.Size,
		"Progress":    t.Progress,
		"AddedOn":     t.AddedOn,

		// Torrent helpers
		"hasTag": func(tag string) bool {
			for _, existing := range t.Tags {
				if strings.EqualFold(existing, tag) {
					return true
				}
			}
			return false
		},
		"isSeeding": t.IsActivelySeeding,
		"isPaused":  t.IsPaused,

		// Date helpers
		"daysSince": func(at time.Time) int {
			return int(time.Since(at).Hours() / 24)
		},
		"daysAgo": func(days int) time.Time {
			return time.Now().AddDate(0, 0, -days)
		},

		// String helpers, case-insensitive. contains, startsWith and endsWith are
		// expr operators and cannot be used as function names.
		"containsFold": func(str, substr string) bool {
			return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
		},
		"hasPrefix": func(str, prefix string) bool {
			return strings.HasPrefix(strings.ToLower(str), strings.ToLower(prefix))
		},
		"hasSuffix": func(str, suffix string) bool {
			return strings.HasSuffix(strings.ToLower(str), strings.ToLower(suffix))
		},
		"lower": strings.ToLower,
		"upper": strings.ToUpper,

		// Current time
		"now": time.Now,
	}
}
