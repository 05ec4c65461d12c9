// Package expr implements a small, dependency-free arithmetic evaluator for
// deform and animate progress formulas: + - * / mod ^, unary minus,
// parentheses, and the standard transcendentals over named variables.
package expr

// Expr is a parsed, immutable formula. Parsing produces a read-only AST, so
// a single Expr may be evaluated concurrently from multiple goroutines with
// distinct variable maps.
type Expr struct {
	root node
}

// Parse compiles src into an Expr. Callers that only need a one-shot
// evaluation can use Eval instead.
func Parse(src string) (*Expr, error) {
	root, err := parseExpr(src)
	if err != nil {
		return nil, err
	}
	return &Expr{root: root}, nil
}

// Eval evaluates the compiled expression against the given variable
// bindings (typically "t", and for deform also "x"/"y").
func (e *Expr) Eval(vars map[string]float64) (float64, error) {
	return e.root.eval(vars)
}

// Eval parses and evaluates src in one step. Prefer Parse+(*Expr).Eval when
// the same formula is evaluated repeatedly (e.g. once per vertex).
func Eval(src string, vars map[string]float64) (float64, error) {
	e, err := Parse(src)
	if err != nil {
		return 0, err
	}
	return e.Eval(vars)
}
