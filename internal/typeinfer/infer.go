package typeinfer

import (
	"github.com/yona-lang/yona/internal/ast"
	"github.com/yona-lang/yona/internal/symbol"
	"github.com/yona-lang/yona/internal/types"
)

var moduleTypeName = "Module"

// Inferencer runs a single Hindley-Milner-style pass over a module's AST,
// producing a types.Type for every node it visits and accumulating errors in
// its Context rather than stopping at the first mismatch. Substitutions are
// composed into a single running Substitution as unification proceeds; a
// type returned by Infer may need an extra Apply against the current
// substitution if it is held onto across a later call (see unify).
type Inferencer struct {
	vars    *types.VarGen
	errors  *Context
	records *RecordRegistry

	userTypes map[symbol.ID]*ast.TypeDeclNode
	subst     types.Substitution
}

func NewInferencer() *Inferencer {
	return &Inferencer{
		vars:      &types.VarGen{},
		errors:    &Context{},
		records:   NewRecordRegistry(),
		userTypes: map[symbol.ID]*ast.TypeDeclNode{},
		subst:     types.Substitution{},
	}
}

func (inf *Inferencer) Errors() *Context                { return inf.errors }
func (inf *Inferencer) Records() *RecordRegistry        { return inf.records }
func (inf *Inferencer) Apply(t *types.Type) *types.Type { return inf.subst.Apply(t) }

// unify unifies t1 and t2 under the current substitution and composes the
// result into it. A failure is recorded as an error and otherwise ignored,
// so inference of the rest of the module can continue.
func (inf *Inferencer) unify(pos ast.Pos, t1, t2 *types.Type) {
	s, err := types.Unify(inf.subst.Apply(t1), inf.subst.Apply(t2))
	if err != nil {
		inf.errors.Add(ErrMismatch, pos, "%s", err)
		return
	}
	inf.subst = s.Compose(inf.subst)
}

// applyFunctionType unifies callee against a curried function built from
// args, one argument at a time, so a partial application (fewer args than
// the callee's arity) simply yields the remaining curried function type.
func (inf *Inferencer) applyFunctionType(pos ast.Pos, callee *types.Type, args []*types.Type) *types.Type {
	cur := inf.subst.Apply(callee)
	for _, a := range args {
		resultVar := inf.vars.Fresh()
		wanted := types.NewFunction(inf.subst.Apply(a), resultVar)
		inf.unify(pos, cur, wanted)
		cur = inf.subst.Apply(resultVar)
	}
	return cur
}

func (inf *Inferencer) inferArgs(args ast.CallArgs, env *Env) []*types.Type {
	out := make([]*types.Type, 0, len(args.Positional)+len(args.Named))
	for _, a := range args.Positional {
		out = append(out, inf.Infer(a, env))
	}
	for _, a := range args.Named {
		out = append(out, inf.Infer(a.Expr, env))
	}
	return out
}

// Infer dispatches over the closed AST node set, returning the type of n in
// env. Cross-module lookups (AliasCallExpr, ModuleCallExpr) cannot be
// checked here: the inferencer has no moduleloader dependency, by design, so
// it never needs to load a module to type one (see DESIGN.md); those calls
// only have their arguments checked, and are otherwise accepted with a fresh
// result type, leaving cross-module type/arity errors to the interpreter.
func (inf *Inferencer) Infer(n ast.Node, env *Env) *types.Type {
	switch node := n.(type) {
	case *ast.IntLit:
		return types.NewBuiltin(types.Int64)
	case *ast.FloatLit:
		return types.NewBuiltin(types.Float64)
	case *ast.ByteLit:
		return types.NewBuiltin(types.Byte)
	case *ast.CharLit:
		return types.NewBuiltin(types.Char)
	case *ast.StringLit:
		return types.NewBuiltin(types.String)
	case *ast.SymbolLit:
		return types.NewBuiltin(types.Symbol)
	case *ast.UnitLit:
		return types.NewBuiltin(types.Unit)
	case *ast.BoolLit:
		return types.NewBuiltin(types.Bool)

	case *ast.TupleExpr:
		elems := make([]*types.Type, len(node.Elements))
		for i, e := range node.Elements {
			elems[i] = inf.Infer(e, env)
		}
		return types.NewProduct(elems...)

	case *ast.SeqExpr:
		return inf.inferSeq(node, env)
	case *ast.SetExpr:
		return inf.inferSet(node, env)
	case *ast.DictExpr:
		return inf.inferDict(node, env)
	case *ast.RecordInstanceExpr:
		return inf.inferRecordInstance(node, env)

	case *ast.FQNExpr:
		return types.NewNamed(moduleTypeName, nil)
	case *ast.PackageNameExpr:
		return types.NewNamed(moduleTypeName, nil)

	case *ast.IdentifierExpr:
		sch, ok := env.Lookup(node.Name)
		if !ok {
			inf.errors.Add(ErrUndefined, node.Pos(), "undefined name %s", node.Name.Str())
			return inf.vars.Fresh()
		}
		return types.Instantiate(sch, inf.vars)

	case *ast.BinaryExpr:
		return inf.inferBinary(node, env)
	case *ast.UnaryExpr:
		return inf.inferUnary(node, env)

	case *ast.IfExpr:
		cond := inf.Infer(node.Cond, env)
		inf.unify(node.Cond.Pos(), cond, types.NewBuiltin(types.Bool))
		thenT := inf.Infer(node.Then, env)
		elseT := inf.Infer(node.Else, env)
		inf.unify(node.Pos(), thenT, elseT)
		return inf.subst.Apply(thenT)

	case *ast.LetExpr:
		return inf.inferLet(node, env)
	case *ast.DoExpr:
		return inf.inferDo(node, env)
	case *ast.CaseExpr:
		return inf.inferCase(node, env)
	case *ast.TryCatchExpr:
		return inf.inferTryCatch(node, env)

	case *ast.RaiseExpr:
		inf.unify(node.Message.Pos(), inf.Infer(node.Message, env), types.NewBuiltin(types.String))
		return inf.vars.Fresh()

	case *ast.WithExpr:
		rt := inf.Infer(node.Resource, env)
		child := env.Child()
		name := node.Name
		if name == symbol.Invalid {
			name = symbol.Self
		}
		child.Bind(name, types.Mono(rt))
		return inf.Infer(node.Body, child)

	case *ast.FieldAccessExpr:
		return inf.inferFieldAccess(node, env)
	case *ast.FieldUpdateExpr:
		return inf.inferFieldUpdate(node, env)

	case *ast.FunctionExpr:
		return inf.inferFunction(node, env)

	case *ast.ApplyExpr:
		callee := inf.Infer(node.Callee, env)
		return inf.applyFunctionType(node.Pos(), callee, inf.inferArgs(node.Args, env))

	case *ast.NameCallExpr:
		sch, ok := env.Lookup(node.Name)
		if !ok {
			inf.errors.Add(ErrUndefined, node.Pos(), "undefined function %s", node.Name.Str())
			return inf.applyFunctionType(node.Pos(), inf.vars.Fresh(), inf.inferArgs(node.Args, env))
		}
		callee := types.Instantiate(sch, inf.vars)
		return inf.applyFunctionType(node.Pos(), callee, inf.inferArgs(node.Args, env))

	case *ast.AliasCallExpr:
		return inf.applyFunctionType(node.Pos(), inf.vars.Fresh(), inf.inferArgs(node.Args, env))
	case *ast.ModuleCallExpr:
		return inf.applyFunctionType(node.Pos(), inf.vars.Fresh(), inf.inferArgs(node.Args, env))

	case *ast.ExprCallExpr:
		callee := inf.Infer(node.Expr, env)
		return inf.applyFunctionType(node.Pos(), callee, inf.inferArgs(node.Args, env))

	case *ast.ImportExpr:
		return inf.inferImport(node, env)
	case *ast.ModuleExpr:
		return inf.inferModule(node, env)

	case *ast.SeqComprehension:
		child := env.Child()
		inf.inferCompClauses(node.Clauses, child)
		elemT := inf.Infer(node.Expr, child)
		return types.NewCollection(types.SeqKind, elemT)

	case *ast.SetComprehension:
		child := env.Child()
		inf.inferCompClauses(node.Clauses, child)
		elemT := inf.Infer(node.Expr, child)
		return types.NewCollection(types.SetKind, elemT)

	case *ast.DictComprehension:
		child := env.Child()
		inf.inferCompClauses(node.Clauses, child)
		kt := inf.Infer(node.Key, child)
		vt := inf.Infer(node.Value, child)
		return types.NewDict(kt, vt)

	default:
		inf.errors.Add(ErrMismatch, n.Pos(), "cannot infer type of %s", n)
		return inf.vars.Fresh()
	}
}

func (inf *Inferencer) inferSeq(n *ast.SeqExpr, env *Env) *types.Type {
	if n.Range != nil {
		st := inf.Infer(n.Range.Start, env)
		en := inf.Infer(n.Range.End, env)
		inf.unify(n.Pos(), st, en)
		elem := inf.subst.Apply(st)
		if n.Range.Step != nil {
			stepT := inf.Infer(n.Range.Step, env)
			inf.unify(n.Pos(), stepT, elem)
			elem = inf.subst.Apply(elem)
		}
		if !isNumericBuiltin(elem) {
			inf.errors.Add(ErrMismatch, n.Pos(), "range bounds must be numeric, got %s", elem)
		}
		return types.NewCollection(types.SeqKind, elem)
	}
	if len(n.Elements) == 0 {
		return types.NewCollection(types.SeqKind, inf.vars.Fresh())
	}
	elem := inf.Infer(n.Elements[0], env)
	for _, e := range n.Elements[1:] {
		t := inf.Infer(e, env)
		inf.unify(e.Pos(), elem, t)
	}
	return types.NewCollection(types.SeqKind, inf.subst.Apply(elem))
}

func (inf *Inferencer) inferSet(n *ast.SetExpr, env *Env) *types.Type {
	if len(n.Elements) == 0 {
		return types.NewCollection(types.SetKind, inf.vars.Fresh())
	}
	elem := inf.Infer(n.Elements[0], env)
	for _, e := range n.Elements[1:] {
		t := inf.Infer(e, env)
		inf.unify(e.Pos(), elem, t)
	}
	return types.NewCollection(types.SetKind, inf.subst.Apply(elem))
}

func (inf *Inferencer) inferDict(n *ast.DictExpr, env *Env) *types.Type {
	if len(n.Entries) == 0 {
		return types.NewDict(inf.vars.Fresh(), inf.vars.Fresh())
	}
	kt := inf.Infer(n.Entries[0].Key, env)
	vt := inf.Infer(n.Entries[0].Value, env)
	for _, e := range n.Entries[1:] {
		k := inf.Infer(e.Key, env)
		v := inf.Infer(e.Value, env)
		inf.unify(e.Key.Pos(), kt, k)
		inf.unify(e.Value.Pos(), vt, v)
	}
	return types.NewDict(inf.subst.Apply(kt), inf.subst.Apply(vt))
}

// inferRecordInstance registers the record's shape the first time it is
// instantiated, structurally, from the field names and inferred types given
// at that call site; later instantiations of the same record name are
// checked against that registered schema. There is no separate record-field
// declaration node in this AST (TypeDeclNode only names a type and its type
// parameters), so the first literal use is the closest thing to a
// declaration available to a single-pass inferencer.
func (inf *Inferencer) inferRecordInstance(n *ast.RecordInstanceExpr, env *Env) *types.Type {
	fieldTypes := make(map[symbol.ID]*types.Type, len(n.Fields))
	order := make([]symbol.ID, len(n.Fields))
	for i, f := range n.Fields {
		fieldTypes[f.Name] = inf.Infer(f.Expr, env)
		order[i] = f.Name
	}
	schema, ok := inf.records.Lookup(n.RecordType)
	if !ok {
		schema = &RecordSchema{Name: n.RecordType, FieldOrder: order, FieldTypes: fieldTypes}
		inf.records.Register(schema)
		return inf.recordSchemaType(schema)
	}
	if len(schema.FieldOrder) != len(n.Fields) {
		inf.errors.Add(ErrArity, n.Pos(), "record %s expects %d fields, got %d",
			n.RecordType.Str(), len(schema.FieldOrder), len(n.Fields))
	}
	for name, t := range fieldTypes {
		want, ok := schema.FieldTypes[name]
		if !ok {
			inf.errors.Add(ErrMissingField, n.Pos(), "record %s has no field %s", n.RecordType.Str(), name.Str())
			continue
		}
		inf.unify(n.Pos(), t, want)
	}
	return inf.recordSchemaType(schema)
}

func (inf *Inferencer) recordSchemaType(s *RecordSchema) *types.Type {
	order := make([]string, len(s.FieldOrder))
	fields := make(map[string]*types.Type, len(s.FieldOrder))
	for i, f := range s.FieldOrder {
		order[i] = f.Str()
		fields[f.Str()] = s.FieldTypes[f]
	}
	return types.NewRecord(s.Name.Str(), order, fields)
}

func (inf *Inferencer) inferFieldAccess(n *ast.FieldAccessExpr, env *Env) *types.Type {
	rt := inf.subst.Apply(inf.Infer(n.Record, env))
	if rt.Kind != types.KindRecord {
		inf.errors.Add(ErrMismatch, n.Pos(), "field access on non-record type %s", rt)
		return inf.vars.Fresh()
	}
	ft, ok := rt.Fields[n.Field.Str()]
	if !ok {
		inf.errors.Add(ErrMissingField, n.Pos(), "record %s has no field %s", rt.RecordName, n.Field.Str())
		return inf.vars.Fresh()
	}
	return ft
}

func (inf *Inferencer) inferFieldUpdate(n *ast.FieldUpdateExpr, env *Env) *types.Type {
	rt := inf.subst.Apply(inf.Infer(n.Record, env))
	if rt.Kind != types.KindRecord {
		inf.errors.Add(ErrMismatch, n.Pos(), "update on non-record type %s", rt)
		return rt
	}
	for _, f := range n.Fields {
		ft, ok := rt.Fields[f.Field.Str()]
		if !ok {
			inf.errors.Add(ErrMissingField, n.Pos(), "record %s has no field %s", rt.RecordName, f.Field.Str())
			continue
		}
		vt := inf.Infer(f.Expr, env)
		inf.unify(f.Expr.Pos(), vt, ft)
	}
	return rt
}

func (inf *Inferencer) inferLet(n *ast.LetExpr, env *Env) *types.Type {
	child := env.Child()
	for _, a := range n.Aliases {
		inf.inferAlias(a, child)
	}
	return inf.Infer(n.Body, child)
}

func (inf *Inferencer) inferAlias(a ast.Alias, env *Env) {
	switch al := a.(type) {
	case *ast.ValueAlias:
		t := inf.Infer(al.Expr, env)
		env.Bind(al.Name, types.Generalize(inf.subst.Apply(t), env.FreeVars()))
	case *ast.LambdaAlias:
		t := inf.inferFunction(al.Lambda, env)
		env.Bind(al.Name, types.Generalize(inf.subst.Apply(t), env.FreeVars()))
	case *ast.PatternAlias:
		t := inf.Infer(al.Expr, env)
		inf.bindPattern(al.Pattern, inf.subst.Apply(t), env)
	case *ast.ModuleAlias:
		env.Bind(al.Name, types.Mono(types.NewNamed(moduleTypeName, nil)))
	case *ast.FQNAlias:
		env.Bind(al.Name, types.Mono(types.NewNamed(moduleTypeName, nil)))
	case *ast.FunctionAlias:
		if sch, ok := env.Lookup(al.Other); ok {
			env.Bind(al.Name, sch)
		} else {
			inf.errors.Add(ErrUndefined, al.Pos(), "undefined function %s", al.Other.Str())
		}
	}
}

func (inf *Inferencer) inferDo(n *ast.DoExpr, env *Env) *types.Type {
	child := env.Child()
	last := types.NewBuiltin(types.Unit)
	for _, step := range n.Steps {
		if step.Alias != nil {
			inf.inferAlias(step.Alias, child)
			last = types.NewBuiltin(types.Unit)
			continue
		}
		last = inf.Infer(step.Expr, child)
	}
	return last
}

func (inf *Inferencer) inferCase(n *ast.CaseExpr, env *Env) *types.Type {
	scrut := inf.Infer(n.Scrutinee, env)
	var result *types.Type
	for _, clause := range n.Clauses {
		child := env.Child()
		inf.bindPattern(clause.Pattern, inf.subst.Apply(scrut), child)
		for _, gb := range clause.Bodies {
			if gb.Guard != nil {
				inf.unify(gb.Guard.Pos(), inf.Infer(gb.Guard, child), types.NewBuiltin(types.Bool))
			}
			bt := inf.Infer(gb.Body, child)
			if result == nil {
				result = bt
				continue
			}
			inf.unify(gb.Body.Pos(), result, bt)
			result = inf.subst.Apply(result)
		}
	}
	if result == nil {
		return inf.vars.Fresh()
	}
	return result
}

func (inf *Inferencer) inferTryCatch(n *ast.TryCatchExpr, env *Env) *types.Type {
	result := inf.Infer(n.Body, env)
	excType := types.NewProduct(types.NewBuiltin(types.Symbol), inf.vars.Fresh())
	for _, c := range n.Catches {
		child := env.Child()
		inf.bindPattern(c.Pattern, excType, child)
		bt := inf.Infer(c.Body, child)
		inf.unify(c.Body.Pos(), result, bt)
		result = inf.subst.Apply(result)
	}
	return result
}

func (inf *Inferencer) inferFunction(n *ast.FunctionExpr, env *Env) *types.Type {
	child := env.Child()
	paramVars := make([]*types.Type, len(n.Params))
	for i, p := range n.Params {
		paramVars[i] = inf.vars.Fresh()
		inf.bindPattern(p, paramVars[i], child)
	}
	selfVar := inf.vars.Fresh()
	if n.Name != symbol.Invalid {
		child.Bind(n.Name, types.Mono(selfVar))
	}
	var bodyT *types.Type
	for _, gb := range n.Bodies {
		if gb.Guard != nil {
			inf.unify(gb.Guard.Pos(), inf.Infer(gb.Guard, child), types.NewBuiltin(types.Bool))
		}
		bt := inf.Infer(gb.Body, child)
		if bodyT == nil {
			bodyT = bt
			continue
		}
		inf.unify(gb.Body.Pos(), bodyT, bt)
		bodyT = inf.subst.Apply(bodyT)
	}
	if bodyT == nil {
		bodyT = types.NewBuiltin(types.Unit)
	}
	args := make([]*types.Type, len(paramVars)+1)
	for i, pv := range paramVars {
		args[i] = inf.subst.Apply(pv)
	}
	args[len(paramVars)] = bodyT
	fnType := types.NewFunction(args...)
	if n.Name != symbol.Invalid {
		inf.unify(n.Pos(), selfVar, fnType)
		fnType = inf.subst.Apply(fnType)
	}
	return fnType
}

// inferModule type-checks every function declared at module scope,
// mutually recursively: each function's name is pre-bound to a fresh
// variable so sibling functions can call one another regardless of
// declaration order, then each body is inferred and unified against either
// its standalone type signature (FuncDecls), if any, or its own inferred
// type, which is then generalized.
func (inf *Inferencer) inferModule(n *ast.ModuleExpr, env *Env) *types.Type {
	for _, r := range n.Records {
		inf.userTypes[r.Name] = r
	}
	declared := map[symbol.ID]*types.Type{}
	for _, d := range n.FuncDecls {
		declared[d.Name] = inf.elaborate(d.Signature)
	}
	child := env.Child()
	for name, t := range declared {
		child.Bind(name, types.Mono(t))
	}
	for _, fn := range n.Functions {
		if _, ok := declared[fn.Name]; !ok {
			child.Bind(fn.Name, types.Mono(inf.vars.Fresh()))
		}
	}
	for _, fn := range n.Functions {
		t := inf.inferFunction(fn, child)
		if want, ok := declared[fn.Name]; ok {
			inf.unify(fn.Pos(), want, t)
			continue
		}
		child.Bind(fn.Name, types.Generalize(inf.subst.Apply(t), env.FreeVars()))
	}
	return types.NewNamed(moduleTypeName, nil)
}

func (inf *Inferencer) inferImport(n *ast.ImportExpr, env *Env) *types.Type {
	child := env.Child()
	for _, c := range n.Clauses {
		switch cl := c.(type) {
		case *ast.ModuleImportClause:
			child.Bind(cl.Alias, types.Mono(types.NewNamed(moduleTypeName, nil)))
		case *ast.FunctionsImportClause:
			for _, fn := range cl.Functions {
				child.Bind(fn.LocalName, types.Mono(inf.vars.Fresh()))
			}
		}
	}
	return inf.Infer(n.Body, child)
}

func (inf *Inferencer) inferCompClauses(clauses []ast.CompClause, env *Env) {
	for _, c := range clauses {
		switch cl := c.(type) {
		case *ast.GeneratorClause:
			srcT := inf.subst.Apply(inf.Infer(cl.Source, env))
			switch srcT.Kind {
			case types.KindCollection:
				inf.bindPattern(cl.Pattern, inf.subst.Apply(srcT.Elem), env)
			case types.KindDict:
				inf.bindPattern(cl.Pattern, types.NewProduct(srcT.Key, srcT.Val), env)
			default:
				inf.errors.Add(ErrMismatch, cl.Pos(), "generator source must be a collection, got %s", srcT)
			}
		case *ast.ConditionClause:
			inf.unify(cl.Pos(), inf.Infer(cl.Condition, env), types.NewBuiltin(types.Bool))
		}
	}
}

// bindPattern destructures t according to pat, binding every identifier
// pat introduces into env at (a projection of) t. Shape mismatches between
// pat and t are reported as unify errors but never abort the pass; the
// identifiers pat introduces are still bound, defensively, to fresh
// variables so the rest of the clause can still be checked.
func (inf *Inferencer) bindPattern(pat ast.Pattern, t *types.Type, env *Env) {
	switch p := pat.(type) {
	case *ast.UnderscorePattern:
		// binds nothing

	case *ast.IdentifierPattern:
		env.Bind(p.Name, types.Mono(t))

	case *ast.LiteralPattern:
		lt := inf.Infer(p.Literal, env)
		inf.unify(p.Pos(), lt, t)

	case *ast.TuplePattern:
		elemVars := make([]*types.Type, len(p.Elements))
		for i := range elemVars {
			elemVars[i] = inf.vars.Fresh()
		}
		inf.unify(p.Pos(), types.NewProduct(elemVars...), t)
		for i, e := range p.Elements {
			inf.bindPattern(e, inf.subst.Apply(elemVars[i]), env)
		}

	case *ast.SequencePattern:
		elem := inf.vars.Fresh()
		inf.unify(p.Pos(), types.NewCollection(types.SeqKind, elem), t)
		for _, e := range p.Elements {
			inf.bindPattern(e, inf.subst.Apply(elem), env)
		}

	case *ast.HeadTailsPattern:
		elem := inf.vars.Fresh()
		seq := types.NewCollection(types.SeqKind, elem)
		inf.unify(p.Pos(), seq, t)
		inf.bindPattern(p.Head, inf.subst.Apply(elem), env)
		inf.bindPattern(p.Tails, inf.subst.Apply(seq), env)

	case *ast.TailsHeadPattern:
		elem := inf.vars.Fresh()
		seq := types.NewCollection(types.SeqKind, elem)
		inf.unify(p.Pos(), seq, t)
		inf.bindPattern(p.Tails, inf.subst.Apply(seq), env)
		inf.bindPattern(p.Head, inf.subst.Apply(elem), env)

	case *ast.HeadTailsHeadPattern:
		elem := inf.vars.Fresh()
		seq := types.NewCollection(types.SeqKind, elem)
		inf.unify(p.Pos(), seq, t)
		inf.bindPattern(p.Left, inf.subst.Apply(elem), env)
		inf.bindPattern(p.Tails, inf.subst.Apply(seq), env)
		inf.bindPattern(p.Right, inf.subst.Apply(elem), env)

	case *ast.DictPattern:
		keyVar, valVar := inf.vars.Fresh(), inf.vars.Fresh()
		inf.unify(p.Pos(), types.NewDict(keyVar, valVar), t)
		for _, entry := range p.Entries {
			kt := inf.Infer(entry.Key, env)
			inf.unify(entry.Key.Pos(), kt, inf.subst.Apply(keyVar))
			inf.bindPattern(entry.Value, inf.subst.Apply(valVar), env)
		}

	case *ast.RecordPattern:
		schema, ok := inf.records.Lookup(p.RecordType)
		if !ok {
			inf.errors.Add(ErrUnknownRecord, p.Pos(), "unknown record type %s", p.RecordType.Str())
			for _, f := range p.Fields {
				inf.bindPattern(f.Pattern, inf.vars.Fresh(), env)
			}
			return
		}
		inf.unify(p.Pos(), inf.recordSchemaType(schema), t)
		for _, f := range p.Fields {
			ft, ok := schema.FieldTypes[f.Field]
			if !ok {
				inf.errors.Add(ErrMissingField, p.Pos(), "record %s has no field %s", p.RecordType.Str(), f.Field.Str())
				inf.bindPattern(f.Pattern, inf.vars.Fresh(), env)
				continue
			}
			inf.bindPattern(f.Pattern, ft, env)
		}

	case *ast.AsPattern:
		inf.bindPattern(p.Pattern, t, env)
		env.Bind(p.Name, types.Mono(t))

	case *ast.OrPattern:
		for _, alt := range p.Alternatives {
			inf.bindPattern(alt, t, env)
		}
	}
}

// elaborate converts a surface-syntax TypeNode (what a FunctionDeclExpr
// signature is written in) into the inferencer's internal representation.
func (inf *Inferencer) elaborate(n ast.TypeNode) *types.Type {
	switch t := n.(type) {
	case *ast.BuiltinTypeNode:
		if t.Tag == ast.TagVar {
			return types.NewVar(t.VarName)
		}
		return types.NewBuiltin(builtinFromTag(t.Tag))

	case *ast.UserTypeNode:
		if _, ok := inf.userTypes[t.Name]; !ok {
			inf.errors.Add(ErrUnknownRecord, t.Pos(), "unknown type %s", t.Name.Str())
		}
		return types.NewNamed(t.Name.Str(), nil)

	case *ast.FunctionTypeNode:
		return types.NewFunction(inf.elaborate(t.Arg), inf.elaborate(t.Result))

	case *ast.TypeInstanceNode:
		var inner *types.Type
		if len(t.Args) > 0 {
			inner = inf.elaborate(t.Args[0])
		}
		return types.NewNamed(t.Constructor.Str(), inner)

	case *ast.TypeDefNode:
		alts := make([]*types.Type, len(t.Alternatives))
		for i, a := range t.Alternatives {
			alts[i] = inf.elaborate(a)
		}
		return types.NewSum(alts...)

	default:
		return inf.vars.Fresh()
	}
}

func builtinFromTag(tag ast.BuiltinTag) types.Builtin {
	mapping := [...]types.Builtin{
		types.Bool, types.Byte, types.Int16, types.Int32, types.Int64, types.Int128,
		types.UInt16, types.UInt32, types.UInt64, types.UInt128,
		types.Float32, types.Float64, types.Float128, types.Char, types.String, types.Symbol, types.Unit,
	}
	if int(tag) < len(mapping) {
		return mapping[tag]
	}
	return types.Unit
}
