// Package solver classifies the clusters of one subproblem as matched, new,
// or removed by solving a linear assignment problem.
//
// The before-side is augmented with one virtual empty cluster per
// after-cluster, so every after-cluster can always be assigned either a real
// predecessor (matched) or a virtual one (new). Real before-clusters left
// without an assignment are removed. The assignment is found through the LP
// relaxation of the problem: the constraint matrix is the incidence matrix
// of a bipartite assignment problem, so an optimal vertex of the relaxation
// is integral and no rounding step is needed.
package solver

import (
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"

	"github.com/CERNDocumentServer/cds-beard/pkg/errors"
	"github.com/CERNDocumentServer/cds-beard/pkg/subproblems"
)

// simplexTol is the pivot tolerance handed to lp.Simplex.
const simplexTol = 1e-10

// Pair records a before-cluster judged to continue as an after-cluster.
type Pair[B comparable, A comparable] struct {
	Before B `json:"before" yaml:"before"`
	After  A `json:"after" yaml:"after"`
}

// Outcome holds the classification of every cluster key of one subproblem.
// Each before-key lands in exactly one of Matched or Removed; each after-key
// in exactly one of Matched or New.
type Outcome[B comparable, A comparable] struct {
	Matched []Pair[B, A]
	New     []A
	Removed []B
}

// Solve classifies the clusters of one subproblem. The subproblem's
// partitions are not mutated.
//
// Degenerate subproblems resolve without invoking the LP: no after-clusters
// means every before-cluster is removed, no before-clusters means every
// after-cluster is new. Otherwise the assignment LP is solved with gonum's
// simplex; any solver breakdown is returned as a *errors.SolverError and no
// partial assignment is ever reported.
func Solve[B comparable, A comparable, I comparable](sub subproblems.Subproblem[B, A, I]) (*Outcome[B, A], error) {
	nReal := len(sub.BeforeKeys)
	na := len(sub.AfterKeys)

	switch {
	case nReal == 0 && na == 0:
		return &Outcome[B, A]{}, nil
	case na == 0:
		out := &Outcome[B, A]{Removed: make([]B, nReal)}
		copy(out.Removed, sub.BeforeKeys)
		return out, nil
	case nReal == 0:
		out := &Outcome[B, A]{New: make([]A, na)}
		copy(out.New, sub.AfterKeys)
		return out, nil
	}

	cost := costMatrix(sub)
	assignment, err := solveAssignment(cost)
	if err != nil {
		return nil, errors.NewSolverError(nReal, na, err)
	}

	return decode(sub, assignment), nil
}

// solveAssignment solves the LP relaxation of the assignment problem given
// by the cost matrix: minimize total cost subject to every row being
// assigned at most once and every column exactly once.
//
// gonum's simplex wants standard form (Ax = b, x >= 0), so each row's
// at-most-once constraint carries a slack variable. The returned slice is
// the edge variables in row-major order, integral at an optimal vertex.
func solveAssignment(cost *mat.Dense) ([]float64, error) {
	rows, cols := cost.Dims()
	edges := rows * cols
	vars := edges + rows // one slack per row constraint

	objective := make([]float64, vars)
	copy(objective, cost.RawMatrix().Data)

	constraints := mat.NewDense(rows+cols, vars, nil)
	rhs := make([]float64, rows+cols)

	// Each before-cluster (real or virtual) takes at most one after-cluster.
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			constraints.Set(i, i*cols+j, 1)
		}
		constraints.Set(i, edges+i, 1)
		rhs[i] = 1
	}

	// Each after-cluster is assigned to exactly one before-cluster.
	for j := 0; j < cols; j++ {
		for i := 0; i < rows; i++ {
			constraints.Set(rows+j, i*cols+j, 1)
		}
		rhs[rows+j] = 1
	}

	// Assignment instances are highly degenerate (many vertices share the
	// optimal value on chained components), and an exact-zero tolerance makes
	// Bland's rule reject every pivot on them. A small positive tolerance
	// keeps the pivot selection going without disturbing the integral optimum.
	_, solution, err := lp.Simplex(objective, constraints, rhs, simplexTol, nil)
	if err != nil {
		return nil, err
	}
	return solution[:edges], nil
}

// decode walks the subproblem's ordered key slices against the solved edge
// variables. An after-cluster assigned to a real row is matched, assigned to
// a virtual row it is new; a real row with no assignment is removed.
func decode[B comparable, A comparable, I comparable](
	sub subproblems.Subproblem[B, A, I],
	assignment []float64,
) *Outcome[B, A] {
	nReal := len(sub.BeforeKeys)
	na := len(sub.AfterKeys)

	out := &Outcome[B, A]{}
	for i := 0; i < nReal+na; i++ {
		assigned := -1
		for j := 0; j < na; j++ {
			// The LP optimum is integral; 0.5 guards against float noise.
			if assignment[i*na+j] > 0.5 {
				assigned = j
				break
			}
		}
		switch {
		case assigned >= 0 && i < nReal:
			out.Matched = append(out.Matched, Pair[B, A]{
				Before: sub.BeforeKeys[i],
				After:  sub.AfterKeys[assigned],
			})
		case assigned >= 0:
			out.New = append(out.New, sub.AfterKeys[assigned])
		case i < nReal:
			out.Removed = append(out.Removed, sub.BeforeKeys[i])
		}
	}
	return out
}
