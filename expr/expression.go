package expr

import "fmt"

// Expression is an immutable AST node. A tree is built once and may be
// evaluated any number of times against different variable mappings,
// concurrently if the mappings are distinct.
type Expression interface {
	Evaluate(vars map[string]any) (any, error)
}

// EvaluationError reports a missing variable or an operand of an
// incompatible type.
type EvaluationError struct {
	Message string
}

func (e *EvaluationError) Error() string {
	return e.Message
}

func evalErrorf(format string, args ...any) error {
	return &EvaluationError{Message: fmt.Sprintf(format, args...)}
}

type constant struct {
	value any
}

func (c *constant) Evaluate(vars map[string]any) (any, error) {
	return c.value, nil
}

// True and False are the well-known constant singletons used for
// short-circuit folding during construction.
var (
	True  Expression = &constant{value: true}
	False Expression = &constant{value: false}
)

// ConstantExpression wraps a fixed value. Boolean values map to the True and
// False singletons.
func ConstantExpression(value any) Expression {
	switch value {
	case true:
		return True
	case false:
		return False
	}
	return &constant{value: value}
}

type variableRef struct {
	name string
}

func (v *variableRef) Evaluate(vars map[string]any) (any, error) {
	value, ok := vars[v.name]
	if !ok {
		return nil, evalErrorf("variable %q is not defined", v.name)
	}
	return value, nil
}

type concat struct {
	parts []Expression
}

func (c *concat) Evaluate(vars map[string]any) (any, error) {
	var sb []byte
	for _, part := range c.parts {
		value, err := part.Evaluate(vars)
		if err != nil {
			return nil, err
		}
		sb = append(sb, stringify(value)...)
	}
	return string(sb), nil
}

// LogicalAnd combines two expressions, folding when the left operand is a
// known constant: and(False, x) is False without retaining x, and(True, x)
// is x unchanged. The folded-away operand is never evaluated.
func LogicalAnd(left, right Expression) Expression {
	switch left {
	case False:
		return False
	case True:
		return right
	}
	return &binary{op: "&&", left: left, right: right}
}

// LogicalOr folds symmetrically to LogicalAnd.
func LogicalOr(left, right Expression) Expression {
	switch left {
	case True:
		return True
	case False:
		return right
	}
	return &binary{op: "||", left: left, right: right}
}

func stringify(value any) string {
	if value == nil {
		return ""
	}
	if s, ok := value.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", value)
}
