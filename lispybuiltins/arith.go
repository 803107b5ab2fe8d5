// -----------------------------------------------------------------------------
// lispy is licensed under the MIT license. Please see the LICENSE file for
// your rights and obligations under this license.
// -----------------------------------------------------------------------------

package lispybuiltins

import (
	"github.com/lispyrun/lispy"
	"github.com/lispyrun/lispy/lispyeval"
)

// numericFold reduces args (at least one Number) left to right through op,
// the shared machinery behind +, -, *, /, % (§4.5 arithmetic). With a
// single argument, op is never applied — the lone value passes
// through unchanged — except that "-" negates, matching the original's
// special case for unary subtraction.
func numericFold(name string, args *lispy.SExpr, negateUnary bool, op func(a, b lispy.Number) (lispy.Number, *lispy.ErrorVal)) lispy.Value {
	nums := make([]lispy.Number, len(args.Cells))
	for i := range args.Cells {
		n, err := argNumber(name, args, i)
		if err != nil {
			return err
		}
		nums[i] = n
	}
	if len(nums) == 1 {
		if negateUnary {
			return -nums[0]
		}
		return nums[0]
	}
	acc := nums[0]
	for _, n := range nums[1:] {
		var err *lispy.ErrorVal
		acc, err = op(acc, n)
		if err != nil {
			return err
		}
	}
	return acc
}

func builtinAdd(_ *lispyeval.Environment, args *lispy.SExpr) lispy.Value {
	return numericFold("+", args, false, func(a, b lispy.Number) (lispy.Number, *lispy.ErrorVal) { return a + b, nil })
}

func builtinSub(_ *lispyeval.Environment, args *lispy.SExpr) lispy.Value {
	return numericFold("-", args, true, func(a, b lispy.Number) (lispy.Number, *lispy.ErrorVal) { return a - b, nil })
}

func builtinMul(_ *lispyeval.Environment, args *lispy.SExpr) lispy.Value {
	return numericFold("*", args, false, func(a, b lispy.Number) (lispy.Number, *lispy.ErrorVal) { return a * b, nil })
}

func builtinDiv(_ *lispyeval.Environment, args *lispy.SExpr) lispy.Value {
	return numericFold("/", args, false, func(a, b lispy.Number) (lispy.Number, *lispy.ErrorVal) {
		if b == 0 {
			return 0, lispy.ErrDivByZero()
		}
		return a / b, nil
	})
}

func builtinMod(_ *lispyeval.Environment, args *lispy.SExpr) lispy.Value {
	return numericFold("%", args, false, func(a, b lispy.Number) (lispy.Number, *lispy.ErrorVal) {
		if b == 0 {
			return 0, lispy.ErrDivByZero()
		}
		return a % b, nil
	})
}

// ordering implements <, >, <=, >= over exactly two Numbers (§4.5).
func ordering(name string, args *lispy.SExpr, cmp func(a, b lispy.Number) bool) lispy.Value {
	a, err := argNumber(name, args, 0)
	if err != nil {
		return err
	}
	b, err := argNumber(name, args, 1)
	if err != nil {
		return err
	}
	if cmp(a, b) {
		return lispy.Number(1)
	}
	return lispy.Number(0)
}

func builtinLT(_ *lispyeval.Environment, args *lispy.SExpr) lispy.Value {
	return ordering("<", args, func(a, b lispy.Number) bool { return a < b })
}

func builtinGT(_ *lispyeval.Environment, args *lispy.SExpr) lispy.Value {
	return ordering(">", args, func(a, b lispy.Number) bool { return a > b })
}

func builtinLE(_ *lispyeval.Environment, args *lispy.SExpr) lispy.Value {
	return ordering("<=", args, func(a, b lispy.Number) bool { return a <= b })
}

func builtinGE(_ *lispyeval.Environment, args *lispy.SExpr) lispy.Value {
	return ordering(">=", args, func(a, b lispy.Number) bool { return a >= b })
}

// builtinEq and builtinNe compare exactly two Values of any tag for
// structural equality (§4.5 `==`, `!=`).
func builtinEq(_ *lispyeval.Environment, args *lispy.SExpr) lispy.Value {
	if lispy.Equal(args.Cells[0], args.Cells[1]) {
		return lispy.Number(1)
	}
	return lispy.Number(0)
}

func builtinNe(_ *lispyeval.Environment, args *lispy.SExpr) lispy.Value {
	if !lispy.Equal(args.Cells[0], args.Cells[1]) {
		return lispy.Number(1)
	}
	return lispy.Number(0)
}
