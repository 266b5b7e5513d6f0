package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// txBeginner is satisfied by pgxpool.Pool. A query layer built on a plain
// connection or an existing transaction cannot open its own.
type txBeginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// InsertDsaProblemWithTestCases creates a problem and all of its test cases
// in one transaction. A failed insert rolls everything back, so a problem is
// never visible without its full case set.
func (q *Queries) InsertDsaProblemWithTestCases(
	ctx context.Context,
	problemArg InsertDsaProblemParams,
	testCaseArgs []InsertTestCaseParams,
) (DsaProblem, error) {
	beginner, ok := q.db.(txBeginner)
	if !ok {
		return DsaProblem{}, fmt.Errorf(
			"query layer backend %T cannot begin a transaction",
			q.db,
		)
	}

	tx, err := beginner.Begin(ctx)
	if err != nil {
		return DsaProblem{}, err
	}
	defer tx.Rollback(ctx)

	qtx := q.WithTx(tx)
	problem, err := qtx.InsertDsaProblem(ctx, problemArg)
	if err != nil {
		return DsaProblem{}, err
	}
	for _, arg := range testCaseArgs {
		arg.ProblemID = problem.ID
		if _, err = qtx.InsertTestCase(ctx, arg); err != nil {
			return DsaProblem{}, err
		}
	}

	if err = tx.Commit(ctx); err != nil {
		return DsaProblem{}, err
	}
	return problem, nil
}
