package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ByPanelID scopes a query to one panel.
type ByPanelID struct {
	PanelID uuid.UUID
}

func (s ByPanelID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("panel_id = ?", s.PanelID)
}

// ByUserID scopes a query to one participant.
type ByUserID struct {
	UserID uuid.UUID
}

func (s ByUserID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("user_id = ?", s.UserID)
}

// NotByUserID excludes a participant's own rows. Used to build the tagging
// pool: students never react to their own questions.
type NotByUserID struct {
	UserID uuid.UUID
}

func (s NotByUserID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("user_id <> ?", s.UserID)
}

// ByQuestionID scopes reaction queries to one question.
type ByQuestionID struct {
	QuestionID uuid.UUID
}

func (s ByQuestionID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("question_id = ?", s.QuestionID)
}

// ByGroupID selects the members of one similarity group.
type ByGroupID struct {
	GroupID uuid.UUID
}

func (s ByGroupID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("group_id = ?", s.GroupID)
}

// UngroupedOnly selects questions that have not been merged into any group.
type UngroupedOnly struct{}

func (s UngroupedOnly) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("group_id IS NULL")
}

// ByRole filters users by role.
type ByRole struct {
	Role string
}

func (s ByRole) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("role = ?", s.Role)
}

// ByVisibility filters panels by visibility.
type ByVisibility struct {
	Visibility string
}

func (s ByVisibility) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("visibility = ?", s.Visibility)
}
