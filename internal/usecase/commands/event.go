package commands

import (
	"context"
	"time"

	"restaurant-api/internal/domain/event"
	reqdto "restaurant-api/internal/handler/dto/request"
	"restaurant-api/internal/infra"
	"restaurant-api/internal/pkg/clock"
	"restaurant-api/internal/pkg/errs"
	"restaurant-api/internal/pkg/patch"
	"restaurant-api/internal/usecase/queries"
	"restaurant-api/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrEventNotFound = errs.New("event not found")

type EventCommands interface {
	Create(ctx context.Context, req reqdto.CreateEventRequest) (*queries.EventView, error)
	Update(ctx context.Context, id uuid.UUID, req reqdto.UpdateEventRequest) (*queries.EventView, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type eventUseCaseImpl struct {
	uow          shared.UnitOfWork
	eventQueries queries.EventQueries
	clock        clock.Clock
}

func NewEventUseCase(uow shared.UnitOfWork, eventQueries queries.EventQueries, clk clock.Clock) EventCommands {
	return &eventUseCaseImpl{
		uow:          uow,
		eventQueries: eventQueries,
		clock:        clk,
	}
}

func (e *eventUseCaseImpl) Create(ctx context.Context, req reqdto.CreateEventRequest) (*queries.EventView, error) {
	title, err := event.NewTitle(req.Title)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}
	desc, err := event.NewDescription(req.Description)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	now := e.clock.Now()
	schedule, err := parseSchedule(req.StartDate, req.EndDate, now)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	ev := event.NewEvent(title, desc, schedule, req.ImageURL, now)

	var id uuid.UUID
	err = e.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, err = tx.Events().Create(ctx, tx.DB(), ev)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return e.eventQueries.GetByID(ctx, id)
}

func (e *eventUseCaseImpl) Update(ctx context.Context, id uuid.UUID, req reqdto.UpdateEventRequest) (*queries.EventView, error) {
	current, err := e.eventQueries.GetByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrEventNotFound)
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	title, err := event.NewTitle(patch.Coalesce(req.Title, current.Title))
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}
	desc, err := event.NewDescription(patch.Coalesce(req.Description, current.Description))
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	// An existing schedule stays valid even once its dates pass; only
	// rescheduling re-runs the future-date check.
	schedule, err := updatedSchedule(current, req, e.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	imageURL := current.ImageURL
	if req.ImageURL != nil {
		imageURL = req.ImageURL
	}

	ev := event.ReconstructEvent(
		id,
		title,
		desc,
		schedule,
		imageURL,
		patch.Coalesce(req.IsActive, current.IsActive),
		current.CreatedAt,
		e.clock.Now(),
	)

	err = e.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Events().Update(ctx, tx.DB(), ev); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrEventNotFound)
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return e.eventQueries.GetByID(ctx, id)
}

func (e *eventUseCaseImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return e.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Events().Delete(ctx, tx.DB(), id); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrEventNotFound)
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
}

func parseSchedule(startStr, endStr string, now time.Time) (event.Schedule, error) {
	start, err := time.ParseInLocation("2006-01-02", startStr, time.UTC)
	if err != nil {
		return event.Schedule{}, err
	}
	end, err := time.ParseInLocation("2006-01-02", endStr, time.UTC)
	if err != nil {
		return event.Schedule{}, err
	}
	return event.NewSchedule(start, end, now)
}

func updatedSchedule(current *queries.EventView, req reqdto.UpdateEventRequest, now time.Time) (event.Schedule, error) {
	if req.StartDate == nil && req.EndDate == nil {
		start, err := time.ParseInLocation("2006-01-02", current.StartDate, time.UTC)
		if err != nil {
			return event.Schedule{}, err
		}
		end, err := time.ParseInLocation("2006-01-02", current.EndDate, time.UTC)
		if err != nil {
			return event.Schedule{}, err
		}
		return event.ReconstructSchedule(start, end), nil
	}

	return parseSchedule(
		patch.Coalesce(req.StartDate, current.StartDate),
		patch.Coalesce(req.EndDate, current.EndDate),
		now,
	)
}
