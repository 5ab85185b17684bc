package dto

import (
	"time"

	"github.com/somitihq/somiti-backend/internal/core/domain"
)

// --- Notice DTOs ---

// CreateNoticeRequest defines data for creating a notice. Status defaults to
// DRAFT; only admins may submit PUBLISHED.
type CreateNoticeRequest struct {
	Title     string `json:"title" binding:"required"`
	TitleBN   string `json:"titleBN"`
	Content   string `json:"content" binding:"required"`
	ContentBN string `json:"contentBN"`
	Status    string `json:"status" binding:"omitempty,oneof=DRAFT PUBLISHED"`
	IsPinned  bool   `json:"isPinned"`
}

// UpdateNoticeRequest defines data for updating a notice. Nil fields are left
// unchanged.
type UpdateNoticeRequest struct {
	Title     *string `json:"title"`
	TitleBN   *string `json:"titleBN"`
	Content   *string `json:"content"`
	ContentBN *string `json:"contentBN"`
	Status    *string `json:"status" binding:"omitempty,oneof=DRAFT PUBLISHED"`
	IsPinned  *bool   `json:"isPinned"`
}

// NoticeResponse defines data returned for a notice.
type NoticeResponse struct {
	NoticeID    string     `json:"noticeID"`
	TenantID    string     `json:"tenantID"`
	Title       string     `json:"title"`
	TitleBN     string     `json:"titleBN,omitempty"`
	Content     string     `json:"content"`
	ContentBN   string     `json:"contentBN,omitempty"`
	Status      string     `json:"status"`
	IsPinned    bool       `json:"isPinned"`
	PublishedAt *time.Time `json:"publishedAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	CreatedBy   string     `json:"createdBy"`
}

// ToNoticeResponse converts domain.Notice to DTO.
func ToNoticeResponse(n *domain.Notice) NoticeResponse {
	return NoticeResponse{
		NoticeID:    n.NoticeID,
		TenantID:    n.TenantID,
		Title:       n.Title,
		TitleBN:     n.TitleBN,
		Content:     n.Content,
		ContentBN:   n.ContentBN,
		Status:      string(n.Status),
		IsPinned:    n.IsPinned,
		PublishedAt: n.PublishedAt,
		CreatedAt:   n.CreatedAt,
		CreatedBy:   n.CreatedBy,
	}
}

// ListNoticesResponse wraps a list of notices.
type ListNoticesResponse struct {
	Notices []NoticeResponse `json:"notices"`
}

// ToListNoticesResponse converts a slice of domain.Notice to DTO.
func ToListNoticesResponse(ns []domain.Notice) ListNoticesResponse {
	list := make([]NoticeResponse, len(ns))
	for i, n := range ns {
		list[i] = ToNoticeResponse(&n)
	}
	return ListNoticesResponse{Notices: list}
}

// --- Decision DTOs ---

// SetDecisionRequest records (or overwrites) the decision for a notice.
type SetDecisionRequest struct {
	Status       string `json:"status" binding:"required,oneof=APPROVED REJECTED DEFERRED"`
	DecisionText string `json:"decisionText"`
}

// DecisionResponse defines data returned for a notice decision.
type DecisionResponse struct {
	DecisionID    string    `json:"decisionID"`
	NoticeID      string    `json:"noticeID"`
	Status        string    `json:"status"`
	DecisionText  string    `json:"decisionText,omitempty"`
	DecidedBy     string    `json:"decidedBy"`
	DecidedByName string    `json:"decidedByName"`
	DecidedAt     time.Time `json:"decidedAt"`
}

// ToDecisionResponse converts domain.NoticeDecision to DTO.
func ToDecisionResponse(d *domain.NoticeDecision) DecisionResponse {
	return DecisionResponse{
		DecisionID:    d.DecisionID,
		NoticeID:      d.NoticeID,
		Status:        string(d.Status),
		DecisionText:  d.DecisionText,
		DecidedBy:     d.DecidedBy,
		DecidedByName: d.DecidedByName,
		DecidedAt:     d.DecidedAt,
	}
}

// --- Comment DTOs ---

// AddCommentRequest adds a comment to a notice's discussion thread.
type AddCommentRequest struct {
	Comment string `json:"comment" binding:"required"`
}

// EditCommentRequest replaces a comment's text.
type EditCommentRequest struct {
	Comment string `json:"comment" binding:"required"`
}

// CommentResponse defines data returned for a discussion comment.
type CommentResponse struct {
	CommentID string     `json:"commentID"`
	NoticeID  string     `json:"noticeID"`
	UserID    string     `json:"userID"`
	UserName  string     `json:"userName"`
	UserRole  string     `json:"userRole"`
	Comment   string     `json:"comment"`
	CreatedAt time.Time  `json:"createdAt"`
	EditedAt  *time.Time `json:"editedAt,omitempty"`
}

// ToCommentResponse converts domain.NoticeComment to DTO.
func ToCommentResponse(c *domain.NoticeComment) CommentResponse {
	return CommentResponse{
		CommentID: c.CommentID,
		NoticeID:  c.NoticeID,
		UserID:    c.UserID,
		UserName:  c.UserName,
		UserRole:  string(c.UserRole),
		Comment:   c.Comment,
		CreatedAt: c.CreatedAt,
		EditedAt:  c.EditedAt,
	}
}

// ListCommentsResponse wraps a page of comments.
type ListCommentsResponse struct {
	Comments []CommentResponse `json:"comments"`
	Page     int               `json:"page"`
	PageSize int               `json:"pageSize"`
}

// ToListCommentsResponse converts a slice of domain.NoticeComment to DTO.
func ToListCommentsResponse(cs []domain.NoticeComment, page, pageSize int) ListCommentsResponse {
	list := make([]CommentResponse, len(cs))
	for i, c := range cs {
		list[i] = ToCommentResponse(&c)
	}
	return ListCommentsResponse{Comments: list, Page: page, PageSize: pageSize}
}
