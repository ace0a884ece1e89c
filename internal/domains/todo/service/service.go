package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Todo=MockTodoService

import (
	"chore/infras/otel"
	"chore/internal/domains/todo/model"
	"chore/internal/domains/todo/model/dto"
	"chore/internal/domains/todo/repository"
	"chore/shared"
	"chore/shared/constant"
	gDto "chore/shared/dto"
	"chore/shared/failure"
	"chore/shared/timezone"
	"chore/shared/validator"
	"context"
	"database/sql"
	"fmt"

	"github.com/rs/zerolog/log"
)

// Todo manages the todos of a single owner. Every operation is scoped to the
// owner passed in, so a todo that belongs to someone else is reported as not found.
type Todo interface {
	ListOpen(ctx context.Context, owner int64) ([]dto.TodoResponse, error)
	ListCompleted(ctx context.Context, owner int64) ([]dto.TodoResponse, error)
	Create(ctx context.Context, owner int64, req dto.CreateTodoRequest) (dto.TodoResponse, error)
	Get(ctx context.Context, owner, id int64) (dto.TodoResponse, error)
	Update(ctx context.Context, owner, id int64, req dto.UpdateTodoRequest) (dto.TodoResponse, error)
	Complete(ctx context.Context, owner, id int64) (dto.TodoResponse, error)
	Reopen(ctx context.Context, owner, id int64) (dto.TodoResponse, error)
	Delete(ctx context.Context, owner, id int64) error
}

type serviceImpl struct {
	repo repository.Todo
	otel otel.Otel
}

func New(repo repository.Todo, otel otel.Otel) Todo {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

func ownedBy(owner, id int64) gDto.FilterGroup {
	return shared.FilterByOwnerAndID(id, owner, model.FieldID, model.FieldUserID, model.TableName)
}

func (s *serviceImpl) ListOpen(ctx context.Context, owner int64) (res []dto.TodoResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListOpen")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := gDto.And(
		gDto.Eq(model.TableName, model.FieldUserID, owner),
		gDto.IsNull(model.TableName, model.FieldDateCompleted),
	)

	todos, err := s.repo.GetAll(ctx, gDto.OrderBy(model.TableName+"."+model.FieldID, gDto.SortDirAsc), filter)
	if err != nil {
		log.Error().Err(err).Int64("owner", owner).Msg("failed to list open todos")

		return nil, fmt.Errorf("failed to list open todos: %w", err)
	}

	return dto.FromModels(todos), nil
}

func (s *serviceImpl) ListCompleted(ctx context.Context, owner int64) (res []dto.TodoResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListCompleted")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := gDto.And(
		gDto.Eq(model.TableName, model.FieldUserID, owner),
		gDto.IsNotNull(model.TableName, model.FieldDateCompleted),
	)

	todos, err := s.repo.GetAll(ctx, gDto.OrderBy(model.TableName+"."+model.FieldDateCompleted, gDto.SortDirDesc), filter)
	if err != nil {
		log.Error().Err(err).Int64("owner", owner).Msg("failed to list completed todos")

		return nil, fmt.Errorf("failed to list completed todos: %w", err)
	}

	return dto.FromModels(todos), nil
}

func (s *serviceImpl) Create(ctx context.Context, owner int64, req dto.CreateTodoRequest) (res dto.TodoResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err
	}

	todo := req.ToModel(owner)

	todo.ID, err = s.repo.Insert(ctx, todo)
	if err != nil {
		log.Error().Err(err).Int64("owner", owner).Msg("failed to create todo")

		return res, fmt.Errorf("failed to create todo: %w", err)
	}

	res.FromModel(todo)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, owner, id int64) (res dto.TodoResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.get(ctx, owner, id)
}

func (s *serviceImpl) get(ctx context.Context, owner, id int64) (res dto.TodoResponse, err error) {
	todo, err := s.repo.Get(ctx, ownedBy(owner, id))
	if err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to get todo")

		return res, fmt.Errorf("failed to get todo: %w", err)
	}

	if todo.ID == 0 {
		return res, failure.NotFound(constant.MessageInvalidRecord) // nolint:wrapcheck
	}

	res.FromModel(todo)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, owner, id int64, req dto.UpdateTodoRequest) (res dto.TodoResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err
	}

	if err = s.update(ctx, owner, id, shared.TransformFields(req.Normalize())); err != nil {
		return res, err
	}

	return s.get(ctx, owner, id)
}

func (s *serviceImpl) Complete(ctx context.Context, owner, id int64) (res dto.TodoResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Complete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	now := timezone.Now()

	err = s.update(ctx, owner, id, map[string]any{
		model.FieldDateCompleted: sql.NullTime{Time: now, Valid: true},
		constant.FieldModifiedAt: now,
	})
	if err != nil {
		return res, err
	}

	return s.get(ctx, owner, id)
}

func (s *serviceImpl) Reopen(ctx context.Context, owner, id int64) (res dto.TodoResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Reopen")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	err = s.update(ctx, owner, id, map[string]any{
		model.FieldDateCompleted: sql.NullTime{},
		constant.FieldModifiedAt: timezone.Now(),
	})
	if err != nil {
		return res, err
	}

	return s.get(ctx, owner, id)
}

func (s *serviceImpl) update(ctx context.Context, owner, id int64, fields map[string]any) error {
	affected, err := s.repo.Update(ctx, fields, ownedBy(owner, id))
	if err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to update todo")

		return fmt.Errorf("failed to update todo: %w", err)
	}

	if affected == 0 {
		return failure.NotFound(constant.MessageInvalidRecord) // nolint:wrapcheck
	}

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, owner, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	affected, err := s.repo.Delete(ctx, ownedBy(owner, id))
	if err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to delete todo")

		return fmt.Errorf("failed to delete todo: %w", err)
	}

	if affected == 0 {
		return failure.NotFound(constant.MessageInvalidRecord) // nolint:wrapcheck
	}

	return nil
}
