package services

import (
	"context"

	"github.com/somitihq/somiti-backend/internal/core/domain"
	"github.com/somitihq/somiti-backend/internal/dto"
)

// NoticeSvcFacade covers the notice lifecycle, the per-notice decision record
// and the discussion thread.
type NoticeSvcFacade interface {
	// ListNotices returns notices visible to the actor: managers and admins
	// see drafts, members only published notices. Pinned notices sort first.
	ListNotices(ctx context.Context, actor domain.Actor, limit, offset int) ([]domain.Notice, error)

	// GetNotice fetches one notice; drafts are hidden from plain members.
	GetNotice(ctx context.Context, actor domain.Actor, noticeID string) (*domain.Notice, error)

	// CreateNotice creates a notice. Managers may only create drafts; setting
	// PUBLISHED requires the admin role and stamps PublishedAt.
	CreateNotice(ctx context.Context, actor domain.Actor, req dto.CreateNoticeRequest) (*domain.Notice, error)

	// UpdateNotice applies a partial update under the same publish rules.
	UpdateNotice(ctx context.Context, actor domain.Actor, noticeID string, req dto.UpdateNoticeRequest) (*domain.Notice, error)

	// DeleteNotice removes a notice. Admin only.
	DeleteNotice(ctx context.Context, actor domain.Actor, noticeID string) error

	// GetDecision returns the notice's single decision record, if any.
	GetDecision(ctx context.Context, actor domain.Actor, noticeID string) (*domain.NoticeDecision, error)

	// SetDecision records or overwrites the notice's decision. Admin only.
	SetDecision(ctx context.Context, actor domain.Actor, noticeID string, req dto.SetDecisionRequest) (*domain.NoticeDecision, error)

	// AddComment appends to the notice's discussion thread, snapshotting the
	// actor's name and role.
	AddComment(ctx context.Context, actor domain.Actor, noticeID string, req dto.AddCommentRequest) (*domain.NoticeComment, error)

	// ListComments returns one page of the thread, newest first.
	ListComments(ctx context.Context, actor domain.Actor, noticeID string, page, pageSize int) ([]domain.NoticeComment, error)

	// EditComment replaces a comment's text. Author only, within the edit
	// window; super admins bypass the window.
	EditComment(ctx context.Context, actor domain.Actor, commentID string, req dto.EditCommentRequest) (*domain.NoticeComment, error)

	// DeleteComment removes a comment regardless of age or author. Admin only.
	DeleteComment(ctx context.Context, actor domain.Actor, commentID string) error
}
