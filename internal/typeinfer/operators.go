package typeinfer

import (
	"github.com/yona-lang/yona/internal/ast"
	"github.com/yona-lang/yona/internal/types"
)

func isNumericBuiltin(t *types.Type) bool {
	return t.Kind == types.KindBuiltin && t.Builtin.IsNumeric()
}

func isFloatBuiltin(t *types.Type) bool {
	return t.Kind == types.KindBuiltin && t.Builtin.IsFloat()
}

func isIntegerBuiltin(t *types.Type) bool {
	return t.Kind == types.KindBuiltin && t.Builtin.IsInteger()
}

// promoteNumeric implements Byte ⊂ Int ⊂ Float promotion: the wider kind
// wins whenever the two sides are not already identical.
func promoteNumeric(t1, t2 *types.Type) *types.Type {
	if t1.Builtin == t2.Builtin {
		return t1
	}
	if isFloatBuiltin(t1) || isFloatBuiltin(t2) {
		return types.NewBuiltin(types.Float64)
	}
	if isIntegerBuiltin(t1) || isIntegerBuiltin(t2) {
		return types.NewBuiltin(types.Int64)
	}
	return types.NewBuiltin(types.Byte)
}

// inferBinary type-checks a binary expression per the operator-family table
// (spec section 4.5): additive operators promote numerics or concatenate
// strings, `-` and `*` require numerics, `%`, shift and bitwise operators
// require integers, division and power always yield Float64, `==`/`!=`
// require unifiable operands and ordering comparisons require numerics,
// both yielding Bool, logical operators require Bool, cons/snoc/append
// combine an element and a sequence, `in` yields Bool, and pipes thread the
// callee's return type through.
func (inf *Inferencer) inferBinary(n *ast.BinaryExpr, env *Env) *types.Type {
	lhs := inf.Infer(n.LHS, env)
	rhs := inf.Infer(n.RHS, env)

	switch n.Op {
	case ast.Add:
		if lhs.Kind == types.KindBuiltin && lhs.Builtin == types.String &&
			rhs.Kind == types.KindBuiltin && rhs.Builtin == types.String {
			return types.NewBuiltin(types.String)
		}
		return inf.numericBinary(n, lhs, rhs)

	case ast.Sub, ast.Mul:
		return inf.numericBinary(n, lhs, rhs)

	case ast.Div, ast.Pow:
		inf.numericBinary(n, lhs, rhs)
		return types.NewBuiltin(types.Float64)

	case ast.Mod, ast.BitAnd, ast.BitOr, ast.BitXor, ast.Shl, ast.Shr, ast.ShrZeroFill:
		if !isIntegerBuiltin(lhs) || !isIntegerBuiltin(rhs) {
			inf.errors.Add(ErrMismatch, n.Pos(), "operator %s requires integer operands, got %s and %s", n.Op, lhs, rhs)
			return inf.vars.Fresh()
		}
		return promoteNumeric(lhs, rhs)

	case ast.Eq, ast.Ne:
		inf.unify(n.Pos(), lhs, rhs)
		return types.NewBuiltin(types.Bool)

	case ast.Lt, ast.Le, ast.Gt, ast.Ge:
		if !isNumericBuiltin(lhs) || !isNumericBuiltin(rhs) {
			inf.errors.Add(ErrMismatch, n.Pos(), "operator %s requires numeric operands, got %s and %s", n.Op, lhs, rhs)
			return types.NewBuiltin(types.Bool)
		}
		return types.NewBuiltin(types.Bool)

	case ast.And, ast.Or:
		inf.requireBool(n.Pos(), lhs)
		inf.requireBool(n.Pos(), rhs)
		return types.NewBuiltin(types.Bool)

	case ast.ConsLeft: // element :: seq
		elem := types.NewCollection(types.SeqKind, lhs)
		inf.unify(n.Pos(), elem, rhs)
		return inf.subst.Apply(rhs)

	case ast.ConsRight: // seq :> element
		elem := types.NewCollection(types.SeqKind, rhs)
		inf.unify(n.Pos(), elem, lhs)
		return inf.subst.Apply(lhs)

	case ast.Join: // seq ++ seq
		inf.unify(n.Pos(), lhs, rhs)
		return inf.subst.Apply(lhs)

	case ast.In:
		elem := types.NewCollection(types.SeqKind, lhs)
		inf.unify(n.Pos(), elem, rhs)
		return types.NewBuiltin(types.Bool)

	case ast.PipeRight: // value |> fn
		return inf.applyFunctionType(n.Pos(), rhs, []*types.Type{lhs})

	case ast.PipeLeft: // fn <| value
		return inf.applyFunctionType(n.Pos(), lhs, []*types.Type{rhs})

	default:
		inf.errors.Add(ErrMismatch, n.Pos(), "unsupported operator %s", n.Op)
		return inf.vars.Fresh()
	}
}

func (inf *Inferencer) numericBinary(n *ast.BinaryExpr, lhs, rhs *types.Type) *types.Type {
	lhs, rhs = inf.subst.Apply(lhs), inf.subst.Apply(rhs)
	if lhs.IsVar() || rhs.IsVar() {
		// An operand whose type is still a variable is unified with the
		// other operand, and the result has that shared type.
		inf.unify(n.Pos(), lhs, rhs)
		return inf.subst.Apply(lhs)
	}
	if !isNumericBuiltin(lhs) || !isNumericBuiltin(rhs) {
		inf.errors.Add(ErrMismatch, n.Pos(), "operator %s requires numeric operands, got %s and %s", n.Op, lhs, rhs)
		return inf.vars.Fresh()
	}
	return promoteNumeric(lhs, rhs)
}

func (inf *Inferencer) requireBool(pos ast.Pos, t *types.Type) {
	inf.unify(pos, t, types.NewBuiltin(types.Bool))
}

func (inf *Inferencer) inferUnary(n *ast.UnaryExpr, env *Env) *types.Type {
	t := inf.Infer(n.Operand, env)
	switch n.Op {
	case ast.Not:
		inf.requireBool(n.Pos(), t)
		return types.NewBuiltin(types.Bool)
	case ast.BitNot:
		if !isIntegerBuiltin(t) {
			inf.errors.Add(ErrMismatch, n.Pos(), "~ requires an integer operand, got %s", t)
		}
		return t
	case ast.Neg:
		if !isNumericBuiltin(t) {
			inf.errors.Add(ErrMismatch, n.Pos(), "unary - requires a numeric operand, got %s", t)
		}
		return t
	default:
		return inf.vars.Fresh()
	}
}
