package eval

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/expr-lang/expr"

	"github.com/sass-format/go-sass/debug"
)

// ErrEval is the failure kind of expression evaluation.  Callers wrap it
// into a syntax error at the offending line.
var ErrEval = errors.New("eval error")

var constRx = regexp.MustCompile(`!([a-zA-Z_][a-zA-Z0-9_-]*)`)

// operatorChars marks an expression as needing real evaluation; values
// without any of them (and without a spaced minus) are literal CSS.
const operatorChars = `"'()+*/%<>=&|`

// Evaluate resolves a script expression against the current constant
// table.  `!name` references substitute the named constant; an undefined
// reference is fatal.  line is the 1-based source line, used in errors.
func Evaluate(src string, consts *Constants, line int) (string, error) {
	src = strings.TrimSpace(src)
	env := map[string]any{}
	var missing string
	n := 0
	rewritten := constRx.ReplaceAllStringFunc(src, func(m string) string {
		name := m[1:]
		v, ok := consts.Get(name)
		if !ok {
			if missing == "" {
				missing = name
			}
			return m
		}
		key := "const_" + strconv.Itoa(n)
		n++
		env[key] = typedValue(v)
		return key
	})
	if missing != "" {
		return "", fmt.Errorf("%w: Undefined constant: !%s", ErrEval, missing)
	}
	if !needsExpr(src) {
		res := textSubstitute(src, consts)
		if debug.Eval() {
			debug.Logf("eval literal %q -> %q (line %d)\n", src, res, line)
		}
		return res, nil
	}
	prg, err := expr.Compile(rewritten, expr.Env(env))
	if err != nil {
		return "", fmt.Errorf("%w: invalid expression %q: %v", ErrEval, src, err)
	}
	res, err := expr.Run(prg, env)
	if err != nil {
		return "", fmt.Errorf("%w: evaluating %q: %v", ErrEval, src, err)
	}
	out := Stringify(res)
	if debug.Eval() {
		debug.Logf("eval %q -> %q (line %d)\n", src, out, line)
	}
	return out, nil
}

// needsExpr reports whether src contains operators that require the
// expression engine, as opposed to a literal value with optional constant
// references.
func needsExpr(src string) bool {
	if strings.ContainsAny(src, operatorChars) {
		return true
	}
	return strings.Contains(src, " - ")
}

// textSubstitute splices constant values into an operator-free value.
// Every reference is known to be defined by the time this runs.
func textSubstitute(src string, consts *Constants) string {
	return constRx.ReplaceAllStringFunc(src, func(m string) string {
		v, _ := consts.Get(m[1:])
		return v
	})
}

func typedValue(v string) any {
	if i, err := strconv.ParseInt(v, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(v, 64); err == nil {
		return f
	}
	return v
}

// Stringify renders an evaluation result as a CSS value string.
func Stringify(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		if x == float64(int64(x)) {
			return strconv.FormatInt(int64(x), 10)
		}
		return strconv.FormatFloat(x, 'g', -1, 64)
	default:
		return fmt.Sprintf("%v", x)
	}
}
