package service

import (
	"context"
	"time"

	"panel-review-be/internal/constant"
	"panel-review-be/internal/dto"
	"panel-review-be/internal/entity"
	"panel-review-be/internal/pkg/apperror"
	"panel-review-be/internal/repository/specification"
	"panel-review-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IPanelService interface {
	Create(ctx context.Context, req *dto.CreatePanelRequest) (*dto.CreatePanelResponse, error)
	Show(ctx context.Context, id uuid.UUID) (*dto.ShowPanelResponse, error)
	// List returns panels visible to the caller's role: admins see everything,
	// everyone else only public panels. Internal panels stay reachable by id.
	List(ctx context.Context, role string) ([]*dto.PanelListItem, error)
}

type panelService struct {
	uowFactory   unitofwork.RepositoryFactory
	stageService IStageService
}

func NewPanelService(uowFactory unitofwork.RepositoryFactory, stageService IStageService) IPanelService {
	return &panelService{
		uowFactory:   uowFactory,
		stageService: stageService,
	}
}

func (s *panelService) Create(ctx context.Context, req *dto.CreatePanelRequest) (*dto.CreatePanelResponse, error) {
	if err := s.stageService.ValidateDeadlines(
		req.QuestionStageDeadline, req.TagStageDeadline, req.VoteStageDeadline, req.PanelStartTime,
	); err != nil {
		return nil, err
	}

	visibility := req.Visibility
	if visibility == "" {
		visibility = constant.VisibilityInternal
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	panel := entity.Panel{
		Id:                    uuid.New(),
		Name:                  req.Name,
		Description:           req.Description,
		Visibility:            visibility,
		VideoLink:             req.VideoLink,
		ExpectedQuestionCount: req.ExpectedQuestionCount,
		IntakeDeadline:        req.QuestionStageDeadline,
		TagDeadline:           req.TagStageDeadline,
		VoteDeadline:          req.VoteStageDeadline,
		PresentationDate:      req.PanelStartTime,
		CreatedAt:             time.Now(),
	}

	if err := uow.PanelRepository().Create(ctx, &panel); err != nil {
		return nil, apperror.Wrap(apperror.CodeUnavailable, "failed to create panel", err)
	}

	return &dto.CreatePanelResponse{Id: panel.Id}, nil
}

func (s *panelService) Show(ctx context.Context, id uuid.UUID) (*dto.ShowPanelResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	panel, err := uow.PanelRepository().Get(ctx, id)
	if err != nil {
		return nil, apperror.Wrap(apperror.CodeUnavailable, "failed to load panel", err)
	}
	if panel == nil {
		return nil, apperror.New(apperror.CodeNotFound, "panel not found")
	}

	return &dto.ShowPanelResponse{
		Id:                    panel.Id,
		Name:                  panel.Name,
		Description:           panel.Description,
		Visibility:            panel.Visibility,
		VideoLink:             panel.VideoLink,
		ExpectedQuestionCount: panel.ExpectedQuestionCount,
		QuestionStageDeadline: panel.IntakeDeadline,
		TagStageDeadline:      panel.TagDeadline,
		VoteStageDeadline:     panel.VoteDeadline,
		PanelStartTime:        panel.PresentationDate,
		Stage:                 s.stageService.Resolve(panel),
		CreatedAt:             panel.CreatedAt,
		UpdatedAt:             panel.UpdatedAt,
	}, nil
}

func (s *panelService) List(ctx context.Context, role string) ([]*dto.PanelListItem, error) {
	specs := []specification.Specification{specification.OrderBy{Field: "created_at", Desc: true}}
	if role != constant.RoleAdmin {
		specs = append(specs, specification.ByVisibility{Visibility: constant.VisibilityPublic})
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	panels, err := uow.PanelRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, apperror.Wrap(apperror.CodeUnavailable, "failed to list panels", err)
	}

	items := make([]*dto.PanelListItem, 0, len(panels))
	for _, p := range panels {
		items = append(items, &dto.PanelListItem{
			Id:         p.Id,
			Name:       p.Name,
			Visibility: p.Visibility,
			Stage:      s.stageService.Resolve(p),
		})
	}
	return items, nil
}
