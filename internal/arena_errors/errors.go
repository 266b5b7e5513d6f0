package arena_errors

import (
	"database/sql"
	"errors"
	"fmt"
	"net"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	log "github.com/sirupsen/logrus"
)

const (
	CodeUniqueConstraint     = "23505"
	CodeForeignKeyConstraint = "23503"
)

var (
	ErrInternal                  = errors.New("internal service error. please try again later")
	ErrInvalidRequest            = errors.New("invalid request")
	ErrInvalidUserCredentials    = errors.New("invalid email and password")
	ErrInvalidRequestCredentials = errors.New("invalid request credentials")
	ErrUnAuthorized              = errors.New("user not allowed to perform this action")
	ErrNotFound                  = errors.New("entity not found")
	ErrContestNotFound           = errors.New("contest not found")
	ErrQuestionNotFound          = errors.New("question not found")
	ErrContestNotActive          = errors.New("contest is not active")
	ErrAlreadySubmitted          = errors.New("answer already submitted for this question")
	ErrUserAlreadyExists         = errors.New("user with that email already exist")
	ErrJudgeUnavailable          = errors.New("judge is unavailable currently")
)

// HandleDBErrors translates raw storage errors into the service error
// taxonomy. errMsgs maps a pg error code to a constraint-name keyed map of
// sentinel errors, so each call site decides what a given constraint
// violation means in its domain (a unique violation on the submissions
// ledger is an idempotency rejection, on users it is a duplicate signup).
func HandleDBErrors(
	err error,
	errMsgs map[string]map[string]error,
	contextMessage string,
) error {
	if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
		log.Error(fmt.Sprintf("%s, %v", contextMessage, ErrNotFound))
		return ErrNotFound
	}

	// assume its an internal error first
	err = fmt.Errorf(
		"%w, %s, %w",
		ErrInternal,
		contextMessage,
		err,
	)

	// check if its a pg error
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		log.Error(err)
		return err
	}

	if errMsgs == nil {
		log.Warnf("got null errMsgs")
		log.Error(err)
		return err
	}

	constraintErrs, ok := errMsgs[pgErr.Code]
	if !ok {
		// unknown error code for this call site
		log.Error(err)
		return err
	}

	sentinel, ok := constraintErrs[pgErr.ConstraintName]
	if !ok {
		log.Warnf(
			"no sentinel mapped for constraint %s with code %s",
			pgErr.ConstraintName,
			pgErr.Code,
		)
		return fmt.Errorf(
			"%w, %s",
			ErrInvalidRequest,
			pgErr.Detail,
		)
	}

	log.Warnf("%s, %v", contextMessage, sentinel)
	return sentinel
}

// handles inter process communication errors
func WrapIPCError(err error) error {
	var opError *net.OpError
	if errors.As(err, &opError) {
		err = fmt.Errorf(
			"%w, \"%s\" error occurred during \"%s\" operation, network: %s, dest: %s",
			ErrJudgeUnavailable,
			opError.Error(),
			opError.Op,
			opError.Net,
			opError.Addr,
		)
		return err
	}

	// unknown error
	err = fmt.Errorf(
		"%w, %w", ErrInternal, err,
	)
	return err
}
