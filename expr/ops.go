package expr

type binary struct {
	op    string
	left  Expression
	right Expression
}

func (b *binary) Evaluate(vars map[string]any) (any, error) {
	switch b.op {
	case "&&", "||":
		return b.evaluateLogical(vars)
	}

	left, err := b.left.Evaluate(vars)
	if err != nil {
		return nil, err
	}
	right, err := b.right.Evaluate(vars)
	if err != nil {
		return nil, err
	}

	switch b.op {
	case "+":
		return add(left, right)
	case "-", "*", "/", "%":
		return arithmetic(b.op, left, right)
	case "==", "!=", "<", "<=", ">", ">=":
		return compare(b.op, left, right)
	}
	return nil, evalErrorf("unknown operator %q", b.op)
}

func (b *binary) evaluateLogical(vars map[string]any) (any, error) {
	left, err := b.left.Evaluate(vars)
	if err != nil {
		return nil, err
	}
	leftBool, err := truth(left)
	if err != nil {
		return nil, err
	}

	// Short circuit: the right operand is only evaluated when the left one
	// does not decide the result.
	if b.op == "&&" && !leftBool {
		return false, nil
	}
	if b.op == "||" && leftBool {
		return true, nil
	}

	right, err := b.right.Evaluate(vars)
	if err != nil {
		return nil, err
	}
	return truth(right)
}

type unary struct {
	op      string
	operand Expression
}

func (u *unary) Evaluate(vars map[string]any) (any, error) {
	value, err := u.operand.Evaluate(vars)
	if err != nil {
		return nil, err
	}
	switch u.op {
	case "-":
		i, f, isFloat, err := toNumber(value)
		if err != nil {
			return nil, err
		}
		if isFloat {
			return -f, nil
		}
		return -i, nil
	case "!":
		b, err := truth(value)
		if err != nil {
			return nil, err
		}
		return !b, nil
	}
	return nil, evalErrorf("unknown operator %q", u.op)
}

// toNumber coerces a value into either an int64 or a float64.
func toNumber(value any) (int64, float64, bool, error) {
	switch v := value.(type) {
	case int:
		return int64(v), 0, false, nil
	case int8:
		return int64(v), 0, false, nil
	case int16:
		return int64(v), 0, false, nil
	case int32:
		return int64(v), 0, false, nil
	case int64:
		return v, 0, false, nil
	case uint:
		return int64(v), 0, false, nil
	case uint8:
		return int64(v), 0, false, nil
	case uint16:
		return int64(v), 0, false, nil
	case uint32:
		return int64(v), 0, false, nil
	case uint64:
		return int64(v), 0, false, nil
	case float32:
		return 0, float64(v), true, nil
	case float64:
		return 0, v, true, nil
	}
	return 0, 0, false, evalErrorf("not a number: %v (%T)", value, value)
}

func truth(value any) (bool, error) {
	b, ok := value.(bool)
	if !ok {
		return false, evalErrorf("not a boolean: %v (%T)", value, value)
	}
	return b, nil
}

// add is "+": string concatenation when either operand is a string, numeric
// addition otherwise.
func add(left, right any) (any, error) {
	if s, ok := left.(string); ok {
		return s + stringify(right), nil
	}
	if s, ok := right.(string); ok {
		return stringify(left) + s, nil
	}
	return arithmetic("+", left, right)
}

func arithmetic(op string, left, right any) (any, error) {
	li, lf, lFloat, err := toNumber(left)
	if err != nil {
		return nil, err
	}
	ri, rf, rFloat, err := toNumber(right)
	if err != nil {
		return nil, err
	}

	if lFloat || rFloat {
		if !lFloat {
			lf = float64(li)
		}
		if !rFloat {
			rf = float64(ri)
		}
		switch op {
		case "+":
			return lf + rf, nil
		case "-":
			return lf - rf, nil
		case "*":
			return lf * rf, nil
		case "/":
			return lf / rf, nil
		case "%":
			return nil, evalErrorf("operator %% requires integer operands")
		}
	}

	switch op {
	case "+":
		return li + ri, nil
	case "-":
		return li - ri, nil
	case "*":
		return li * ri, nil
	case "/":
		if ri == 0 {
			return nil, evalErrorf("division by zero")
		}
		return li / ri, nil
	case "%":
		if ri == 0 {
			return nil, evalErrorf("division by zero")
		}
		return li % ri, nil
	}
	return nil, evalErrorf("unknown operator %q", op)
}

func compare(op string, left, right any) (any, error) {
	// Strings compare lexicographically when both sides are strings.
	if ls, ok := left.(string); ok {
		if rs, ok := right.(string); ok {
			return applyOrdering(op, compareStrings(ls, rs))
		}
	}

	if lb, ok := left.(bool); ok {
		if rb, ok := right.(bool); ok {
			switch op {
			case "==":
				return lb == rb, nil
			case "!=":
				return lb != rb, nil
			}
			return nil, evalErrorf("operator %q is not defined for booleans", op)
		}
	}

	li, lf, lFloat, err := toNumber(left)
	if err != nil {
		return nil, err
	}
	ri, rf, rFloat, err := toNumber(right)
	if err != nil {
		return nil, err
	}
	if lFloat || rFloat {
		if !lFloat {
			lf = float64(li)
		}
		if !rFloat {
			rf = float64(ri)
		}
		return applyOrdering(op, compareFloats(lf, rf))
	}
	return applyOrdering(op, compareInts(li, ri))
}

func compareStrings(a, b string) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func compareInts(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func compareFloats(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func applyOrdering(op string, ordering int) (any, error) {
	switch op {
	case "==":
		return ordering == 0, nil
	case "!=":
		return ordering != 0, nil
	case "<":
		return ordering < 0, nil
	case "<=":
		return ordering <= 0, nil
	case ">":
		return ordering > 0, nil
	case ">=":
		return ordering >= 0, nil
	}
	return nil, evalErrorf("unknown operator %q", op)
}
