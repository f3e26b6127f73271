package test

import (
	"math/rand"

	"go.arith.dev/pkg"
)

const maxLiteral = 100

// GetRandomExpr builds a closed expression of at most the given depth out of
// Num, Plus, Mult, Sub and IfThenElse nodes. It also returns the value the
// expression must evaluate to, computed directly on the tree.
func GetRandomExpr(r *rand.Rand, depth int) (arith.Expr, int64) {
	if depth <= 0 || r.Intn(4) == 0 {
		v := int64(r.Intn(2*maxLiteral+1) - maxLiteral)
		return &arith.Num{Value: v}, v
	}

	switch r.Intn(4) {
	case 0:
		l, lv := GetRandomExpr(r, depth-1)
		rt, rv := GetRandomExpr(r, depth-1)
		return &arith.Plus{Left: l, Right: rt}, lv + rv
	case 1:
		l, lv := GetRandomExpr(r, depth-1)
		rt, rv := GetRandomExpr(r, depth-1)
		return &arith.Mult{Left: l, Right: rt}, lv * rv
	case 2:
		l, lv := GetRandomExpr(r, depth-1)
		rt, rv := GetRandomExpr(r, depth-1)
		return &arith.Sub{Left: l, Right: rt}, lv - rv
	default:
		c, cv := GetRandomExpr(r, depth-1)
		t, tv := GetRandomExpr(r, depth-1)
		e, ev := GetRandomExpr(r, depth-1)
		if cv != 0 {
			return &arith.IfThenElse{Cond: c, Then: t, Else: e}, tv
		}

		return &arith.IfThenElse{Cond: c, Then: t, Else: e}, ev
	}
}

// ContainsSub reports whether a Sub node appears anywhere in expr.
func ContainsSub(expr arith.Expr) bool {
	switch e := expr.(type) {
	case *arith.Sub:
		return true
	case *arith.Plus:
		return ContainsSub(e.Left) || ContainsSub(e.Right)
	case *arith.Mult:
		return ContainsSub(e.Left) || ContainsSub(e.Right)
	case *arith.IfThenElse:
		return ContainsSub(e.Cond) || ContainsSub(e.Then) || ContainsSub(e.Else)
	case *arith.FunctionApp:
		for _, arg := range e.Args {
			if ContainsSub(arg) {
				return true
			}
		}
	case *arith.FunctionDef:
		return ContainsSub(e.Body)
	}

	return false
}
