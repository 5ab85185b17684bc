package repositories

import (
	"context"

	"github.com/somitihq/somiti-backend/internal/core/domain"
)

// NoticeReader defines read operations for notices.
type NoticeReader interface {
	FindNoticeByID(ctx context.Context, tenantID, noticeID string) (*domain.Notice, error)

	// ListNotices returns the tenant's notices ordered pinned-first then by
	// recency. When publishedOnly is true drafts are excluded.
	ListNotices(ctx context.Context, tenantID string, publishedOnly bool, limit, offset int) ([]domain.Notice, error)
}

// NoticeWriter defines write operations for notices.
type NoticeWriter interface {
	SaveNotice(ctx context.Context, notice domain.Notice) error
	UpdateNotice(ctx context.Context, notice domain.Notice) error
	DeleteNotice(ctx context.Context, tenantID, noticeID string) error
}

// NoticeDecisionManager defines operations for the single active decision per notice.
type NoticeDecisionManager interface {
	FindDecisionByNoticeID(ctx context.Context, tenantID, noticeID string) (*domain.NoticeDecision, error)

	// UpsertDecision inserts the decision or overwrites the existing one for
	// the notice. At most one decision row per notice ever exists.
	UpsertDecision(ctx context.Context, decision domain.NoticeDecision) error
}

// NoticeCommentManager defines operations for the discussion thread.
type NoticeCommentManager interface {
	SaveComment(ctx context.Context, comment domain.NoticeComment) error
	FindCommentByID(ctx context.Context, tenantID, commentID string) (*domain.NoticeComment, error)
	ListComments(ctx context.Context, tenantID, noticeID string, limit, offset int) ([]domain.NoticeComment, error)
	UpdateCommentText(ctx context.Context, tenantID, commentID, text string) error
	DeleteComment(ctx context.Context, tenantID, commentID string) error
}

// NoticeRepositoryFacade combines all notice-related repository interfaces.
type NoticeRepositoryFacade interface {
	NoticeReader
	NoticeWriter
	NoticeDecisionManager
	NoticeCommentManager
}
