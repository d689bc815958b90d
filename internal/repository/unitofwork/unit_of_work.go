package unitofwork

import (
	"context"

	"panel-review-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	PanelRepository() contract.PanelRepository
	QuestionRepository() contract.QuestionRepository
	ReactionRepository() contract.ReactionRepository
	SimilarityGroupRepository() contract.SimilarityGroupRepository
	VoteOrderRepository() contract.VoteOrderRepository
	MetricRepository() contract.MetricRepository
	TaggingAssignmentRepository() contract.TaggingAssignmentRepository
	UserRepository() contract.UserRepository
}
