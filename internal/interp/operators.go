package interp

import (
	"context"
	"math"

	"github.com/yona-lang/yona/internal/ast"
	"github.com/yona-lang/yona/internal/runtime"
	"github.com/yona-lang/yona/internal/symbol"
)

func typeErrorf(pos ast.Pos, op ast.BinOp, lhs, rhs runtime.Value) *runtime.Exception {
	return runtime.Raisef(symbol.TypeError, pos, "operator %s requires compatible operands, got %s and %s", op, lhs.Kind(), rhs.Kind())
}

// numericArith applies floatOp when either side is a Float, otherwise intOp
// -- Byte and Int share the integer path since both store their value in the
// same int64 field and promote identically.
func numericArith(pos ast.Pos, op ast.BinOp, lhs, rhs runtime.Value, floatOp func(a, b float64) float64, intOp func(a, b int64) int64) (runtime.Value, *runtime.Exception) {
	if !lhs.IsNumeric() || !rhs.IsNumeric() {
		return runtime.Value{}, typeErrorf(pos, op, lhs, rhs)
	}
	if lhs.Kind() == runtime.KindFloat || rhs.Kind() == runtime.KindFloat {
		return runtime.NewFloat(floatOp(lhs.AsFloat(), rhs.AsFloat())), nil
	}
	return runtime.NewInt(intOp(lhs.Int(), rhs.Int())), nil
}

func requireInts(pos ast.Pos, op ast.BinOp, lhs, rhs runtime.Value) (int64, int64, *runtime.Exception) {
	if (lhs.Kind() != runtime.KindInt && lhs.Kind() != runtime.KindByte) ||
		(rhs.Kind() != runtime.KindInt && rhs.Kind() != runtime.KindByte) {
		return 0, 0, typeErrorf(pos, op, lhs, rhs)
	}
	return lhs.Int(), rhs.Int(), nil
}

func numericCompare(pos ast.Pos, op ast.BinOp, lhs, rhs runtime.Value) (runtime.Value, *runtime.Exception) {
	if !lhs.IsNumeric() || !rhs.IsNumeric() {
		return runtime.Value{}, typeErrorf(pos, op, lhs, rhs)
	}
	a, b := lhs.AsFloat(), rhs.AsFloat()
	switch op {
	case ast.Lt:
		return runtime.NewBool(a < b), nil
	case ast.Le:
		return runtime.NewBool(a <= b), nil
	case ast.Gt:
		return runtime.NewBool(a > b), nil
	default: // ast.Ge
		return runtime.NewBool(a >= b), nil
	}
}

func (interp *Interpreter) evalBinary(n *ast.BinaryExpr, frame *runtime.Frame) (runtime.Value, *runtime.Exception) {
	lhs, exc := interp.Eval(n.LHS, frame)
	if exc != nil {
		return runtime.Value{}, exc
	}

	// Logical operators short-circuit: the right side is only evaluated when
	// it can affect the result.
	if n.Op == ast.And {
		if lhs.Kind() != runtime.KindBool {
			return runtime.Value{}, typeErrorf(n.Pos(), n.Op, lhs, lhs)
		}
		if !lhs.Bool() {
			return runtime.NewBool(false), nil
		}
		rhs, exc := interp.Eval(n.RHS, frame)
		if exc != nil {
			return runtime.Value{}, exc
		}
		if rhs.Kind() != runtime.KindBool {
			return runtime.Value{}, typeErrorf(n.Pos(), n.Op, lhs, rhs)
		}
		return rhs, nil
	}
	if n.Op == ast.Or {
		if lhs.Kind() != runtime.KindBool {
			return runtime.Value{}, typeErrorf(n.Pos(), n.Op, lhs, lhs)
		}
		if lhs.Bool() {
			return runtime.NewBool(true), nil
		}
		rhs, exc := interp.Eval(n.RHS, frame)
		if exc != nil {
			return runtime.Value{}, exc
		}
		if rhs.Kind() != runtime.KindBool {
			return runtime.Value{}, typeErrorf(n.Pos(), n.Op, lhs, rhs)
		}
		return rhs, nil
	}

	rhs, exc := interp.Eval(n.RHS, frame)
	if exc != nil {
		return runtime.Value{}, exc
	}

	switch n.Op {
	case ast.Add:
		if lhs.Kind() == runtime.KindString && rhs.Kind() == runtime.KindString {
			return runtime.NewString(lhs.Str() + rhs.Str()), nil
		}
		return numericArith(n.Pos(), n.Op, lhs, rhs, func(a, b float64) float64 { return a + b }, func(a, b int64) int64 { return a + b })
	case ast.Sub:
		return numericArith(n.Pos(), n.Op, lhs, rhs, func(a, b float64) float64 { return a - b }, func(a, b int64) int64 { return a - b })
	case ast.Mul:
		return numericArith(n.Pos(), n.Op, lhs, rhs, func(a, b float64) float64 { return a * b }, func(a, b int64) int64 { return a * b })
	case ast.Div:
		if !lhs.IsNumeric() || !rhs.IsNumeric() {
			return runtime.Value{}, typeErrorf(n.Pos(), n.Op, lhs, rhs)
		}
		if rhs.AsFloat() == 0 {
			return runtime.Value{}, runtime.Raisef(symbol.RuntimeError, n.Pos(), "division by zero")
		}
		return runtime.NewFloat(lhs.AsFloat() / rhs.AsFloat()), nil
	case ast.Pow:
		if !lhs.IsNumeric() || !rhs.IsNumeric() {
			return runtime.Value{}, typeErrorf(n.Pos(), n.Op, lhs, rhs)
		}
		return runtime.NewFloat(math.Pow(lhs.AsFloat(), rhs.AsFloat())), nil
	case ast.Mod:
		a, b, excI := requireInts(n.Pos(), n.Op, lhs, rhs)
		if excI != nil {
			return runtime.Value{}, excI
		}
		if b == 0 {
			return runtime.Value{}, runtime.Raisef(symbol.RuntimeError, n.Pos(), "division by zero")
		}
		return runtime.NewInt(a % b), nil
	case ast.BitAnd:
		a, b, excI := requireInts(n.Pos(), n.Op, lhs, rhs)
		if excI != nil {
			return runtime.Value{}, excI
		}
		return runtime.NewInt(a & b), nil
	case ast.BitOr:
		a, b, excI := requireInts(n.Pos(), n.Op, lhs, rhs)
		if excI != nil {
			return runtime.Value{}, excI
		}
		return runtime.NewInt(a | b), nil
	case ast.BitXor:
		a, b, excI := requireInts(n.Pos(), n.Op, lhs, rhs)
		if excI != nil {
			return runtime.Value{}, excI
		}
		return runtime.NewInt(a ^ b), nil
	case ast.Shl:
		a, b, excI := requireInts(n.Pos(), n.Op, lhs, rhs)
		if excI != nil {
			return runtime.Value{}, excI
		}
		return runtime.NewInt(a << uint(b)), nil
	case ast.Shr:
		a, b, excI := requireInts(n.Pos(), n.Op, lhs, rhs)
		if excI != nil {
			return runtime.Value{}, excI
		}
		return runtime.NewInt(a >> uint(b)), nil
	case ast.ShrZeroFill:
		a, b, excI := requireInts(n.Pos(), n.Op, lhs, rhs)
		if excI != nil {
			return runtime.Value{}, excI
		}
		return runtime.NewInt(int64(uint64(a) >> uint(b))), nil
	case ast.Eq:
		return runtime.NewBool(lhs.Equals(rhs)), nil
	case ast.Ne:
		return runtime.NewBool(!lhs.Equals(rhs)), nil
	case ast.Lt, ast.Le, ast.Gt, ast.Ge:
		return numericCompare(n.Pos(), n.Op, lhs, rhs)
	case ast.ConsLeft:
		if rhs.Kind() != runtime.KindSeq {
			return runtime.Value{}, typeErrorf(n.Pos(), n.Op, lhs, rhs)
		}
		return runtime.NewSeqValue(rhs.Seq().Cons(lhs)), nil
	case ast.ConsRight:
		if lhs.Kind() != runtime.KindSeq {
			return runtime.Value{}, typeErrorf(n.Pos(), n.Op, lhs, rhs)
		}
		return runtime.NewSeqValue(lhs.Seq().Append(rhs)), nil
	case ast.Join:
		return evalJoin(n.Pos(), lhs, rhs)
	case ast.In:
		return evalIn(n.Pos(), lhs, rhs)
	case ast.PipeRight:
		if rhs.Kind() != runtime.KindFunction {
			return runtime.Value{}, typeErrorf(n.Pos(), n.Op, lhs, rhs)
		}
		return interp.apply(context.Background(), rhs.Function(), []runtime.Value{lhs}, n.Pos())
	case ast.PipeLeft:
		if lhs.Kind() != runtime.KindFunction {
			return runtime.Value{}, typeErrorf(n.Pos(), n.Op, lhs, rhs)
		}
		return interp.apply(context.Background(), lhs.Function(), []runtime.Value{rhs}, n.Pos())
	}
	return runtime.Value{}, runtime.Raisef(symbol.RuntimeError, n.Pos(), "unhandled operator %s", n.Op)
}

func evalJoin(pos ast.Pos, lhs, rhs runtime.Value) (runtime.Value, *runtime.Exception) {
	if lhs.Kind() != rhs.Kind() {
		return runtime.Value{}, runtime.Raisef(symbol.TypeError, pos, "++ requires operands of the same collection kind, got %s and %s", lhs.Kind(), rhs.Kind())
	}
	switch lhs.Kind() {
	case runtime.KindSeq:
		return runtime.NewSeqValue(lhs.Seq().Concat(rhs.Seq())), nil
	case runtime.KindSet:
		out := lhs.Set()
		for _, e := range rhs.Set().Elements() {
			out = out.Add(e)
		}
		return runtime.NewSetValue(out), nil
	case runtime.KindDict:
		out := lhs.Dict()
		for _, e := range rhs.Dict().Entries() {
			out = out.Set(e.Key, e.Value)
		}
		return runtime.NewDictValue(out), nil
	case runtime.KindString:
		return runtime.NewString(lhs.Str() + rhs.Str()), nil
	default:
		return runtime.Value{}, runtime.Raisef(symbol.TypeError, pos, "++ is not defined for %s", lhs.Kind())
	}
}

func evalIn(pos ast.Pos, lhs, rhs runtime.Value) (runtime.Value, *runtime.Exception) {
	switch rhs.Kind() {
	case runtime.KindSeq:
		for _, e := range rhs.Seq().Elements() {
			if e.Equals(lhs) {
				return runtime.NewBool(true), nil
			}
		}
		return runtime.NewBool(false), nil
	case runtime.KindSet:
		return runtime.NewBool(rhs.Set().Contains(lhs)), nil
	case runtime.KindDict:
		_, ok := rhs.Dict().Get(lhs)
		return runtime.NewBool(ok), nil
	default:
		return runtime.Value{}, runtime.Raisef(symbol.TypeError, pos, "in requires a collection on the right, got %s", rhs.Kind())
	}
}

func (interp *Interpreter) evalUnary(n *ast.UnaryExpr, frame *runtime.Frame) (runtime.Value, *runtime.Exception) {
	v, exc := interp.Eval(n.Operand, frame)
	if exc != nil {
		return runtime.Value{}, exc
	}
	switch n.Op {
	case ast.Not:
		if v.Kind() != runtime.KindBool {
			return runtime.Value{}, runtime.Raisef(symbol.TypeError, n.Pos(), "! requires Bool, got %s", v.Kind())
		}
		return runtime.NewBool(!v.Bool()), nil
	case ast.BitNot:
		if v.Kind() != runtime.KindInt && v.Kind() != runtime.KindByte {
			return runtime.Value{}, runtime.Raisef(symbol.TypeError, n.Pos(), "~ requires an integer, got %s", v.Kind())
		}
		return runtime.NewInt(^v.Int()), nil
	case ast.Neg:
		if !v.IsNumeric() {
			return runtime.Value{}, runtime.Raisef(symbol.TypeError, n.Pos(), "unary - requires a numeric operand, got %s", v.Kind())
		}
		if v.Kind() == runtime.KindFloat {
			return runtime.NewFloat(-v.Float()), nil
		}
		return runtime.NewInt(-v.Int()), nil
	}
	return runtime.Value{}, runtime.Raisef(symbol.RuntimeError, n.Pos(), "unhandled unary operator %s", n.Op)
}
