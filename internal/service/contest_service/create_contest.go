package contest_service

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/tcp_snm/arena/internal/arena_errors"
	"github.com/tcp_snm/arena/internal/database"
	"github.com/tcp_snm/arena/internal/service"
	"github.com/tcp_snm/arena/internal/service/user_service"
)

func (c *ContestService) CreateContest(
	ctx context.Context,
	request CreateContestRequest,
) (Contest, error) {
	// get claims from context
	claims, err := service.GetClaimsFromContext(ctx)
	if err != nil {
		return Contest{}, err
	}

	// only creators can author contests
	if err = user_service.AuthorizeRole(
		claims,
		user_service.RoleCreator,
		fmt.Sprintf("user %s tried to create a contest without creator role", claims.UserID),
	); err != nil {
		return Contest{}, err
	}

	// validate
	if err = service.ValidateInput(request); err != nil {
		return Contest{}, err
	}

	// a contest window must be non empty
	if !request.StartTime.Before(request.EndTime) {
		return Contest{}, fmt.Errorf(
			"%w, start_time must be before end_time",
			arena_errors.ErrInvalidRequest,
		)
	}

	dbContest, err := c.DB.InsertContest(ctx, database.InsertContestParams{
		CreatorID:   claims.UserID,
		Title:       request.Title,
		Description: request.Description,
		StartTime:   request.StartTime,
		EndTime:     request.EndTime,
	})
	if err != nil {
		return Contest{}, arena_errors.HandleDBErrors(
			err,
			nil,
			fmt.Sprintf("cannot insert contest %q of user %s in db", request.Title, claims.UserID),
		)
	}

	log.WithFields(log.Fields{
		"contest_id": dbContest.ID,
		"creator_id": dbContest.CreatorID,
	}).Info("created contest")

	return Contest{
		ID:          dbContest.ID,
		CreatorID:   dbContest.CreatorID,
		Title:       dbContest.Title,
		Description: dbContest.Description,
		StartTime:   dbContest.StartTime,
		EndTime:     dbContest.EndTime,
	}, nil
}
