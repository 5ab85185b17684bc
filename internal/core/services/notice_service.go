package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/somitihq/somiti-backend/internal/apperrors"
	"github.com/somitihq/somiti-backend/internal/core/domain"
	"github.com/somitihq/somiti-backend/internal/core/ports/repositories"
	portssvc "github.com/somitihq/somiti-backend/internal/core/ports/services"
	"github.com/somitihq/somiti-backend/internal/dto"
)

type noticeService struct {
	BaseService
	noticeRepo repositories.NoticeRepositoryFacade
}

// NewNoticeService creates a new instance of noticeService.
func NewNoticeService(noticeRepo repositories.NoticeRepositoryFacade) portssvc.NoticeSvcFacade {
	return &noticeService{noticeRepo: noticeRepo}
}

// ListNotices returns notices visible to the actor. Managers and admins see
// drafts; plain members only published notices.
func (s *noticeService) ListNotices(ctx context.Context, actor domain.Actor, limit, offset int) ([]domain.Notice, error) {
	publishedOnly := !actor.CanManage(domain.RoleManager)
	return s.noticeRepo.ListNotices(ctx, actor.TenantID, publishedOnly, limit, offset)
}

// GetNotice fetches one notice. Drafts are indistinguishable from missing
// notices for plain members.
func (s *noticeService) GetNotice(ctx context.Context, actor domain.Actor, noticeID string) (*domain.Notice, error) {
	notice, err := s.noticeRepo.FindNoticeByID(ctx, actor.TenantID, noticeID)
	if err != nil {
		return nil, err
	}
	if notice.Status == domain.NoticeDraft && !actor.CanManage(domain.RoleManager) {
		return nil, apperrors.ErrNotFound
	}
	return notice, nil
}

// CreateNotice creates a notice. Managers may only create drafts; setting
// PUBLISHED requires the admin role and stamps PublishedAt.
func (s *noticeService) CreateNotice(ctx context.Context, actor domain.Actor, req dto.CreateNoticeRequest) (*domain.Notice, error) {
	if !actor.CanManage(domain.RoleManager) {
		return nil, apperrors.NewForbiddenError("only managers and admins may create notices")
	}

	status := domain.NoticeDraft
	if req.Status != "" {
		status = domain.NoticeStatus(req.Status)
	}
	now := time.Now()
	notice := domain.Notice{
		NoticeID:  uuid.NewString(),
		TenantID:  actor.TenantID,
		Title:     req.Title,
		TitleBN:   req.TitleBN,
		Content:   req.Content,
		ContentBN: req.ContentBN,
		Status:    status,
		IsPinned:  req.IsPinned,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: actor.UserID,
		},
	}
	if status == domain.NoticePublished {
		if !actor.CanManage(domain.RoleAdmin) {
			return nil, apperrors.NewForbiddenError("only admins may publish notices")
		}
		notice.PublishedAt = &now
	}

	if err := s.noticeRepo.SaveNotice(ctx, notice); err != nil {
		s.LogError(ctx, err, "failed to save notice", "tenantID", actor.TenantID)
		return nil, fmt.Errorf("failed to create notice: %w", err)
	}
	return &notice, nil
}

// UpdateNotice applies a partial update under the same publish rules as
// creation. Publishing stamps PublishedAt once; reverting to draft clears it.
func (s *noticeService) UpdateNotice(ctx context.Context, actor domain.Actor, noticeID string, req dto.UpdateNoticeRequest) (*domain.Notice, error) {
	if !actor.CanManage(domain.RoleManager) {
		return nil, apperrors.NewForbiddenError("only managers and admins may update notices")
	}

	notice, err := s.noticeRepo.FindNoticeByID(ctx, actor.TenantID, noticeID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		if *req.Title == "" {
			return nil, apperrors.NewValidationError("notice title cannot be empty")
		}
		notice.Title = *req.Title
	}
	if req.TitleBN != nil {
		notice.TitleBN = *req.TitleBN
	}
	if req.Content != nil {
		if *req.Content == "" {
			return nil, apperrors.NewValidationError("notice content cannot be empty")
		}
		notice.Content = *req.Content
	}
	if req.ContentBN != nil {
		notice.ContentBN = *req.ContentBN
	}
	if req.IsPinned != nil {
		notice.IsPinned = *req.IsPinned
	}
	if req.Status != nil {
		newStatus := domain.NoticeStatus(*req.Status)
		if newStatus != notice.Status {
			if !actor.CanManage(domain.RoleAdmin) {
				return nil, apperrors.NewForbiddenError("only admins may change publication status")
			}
			notice.Status = newStatus
			if newStatus == domain.NoticePublished {
				now := time.Now()
				notice.PublishedAt = &now
			} else {
				notice.PublishedAt = nil
			}
		}
	}

	notice.LastUpdatedAt = time.Now()
	notice.LastUpdatedBy = actor.UserID
	if err := s.noticeRepo.UpdateNotice(ctx, *notice); err != nil {
		return nil, fmt.Errorf("failed to update notice: %w", err)
	}
	return notice, nil
}

// DeleteNotice removes a notice with its decision and thread. Admin only.
func (s *noticeService) DeleteNotice(ctx context.Context, actor domain.Actor, noticeID string) error {
	if !actor.CanManage(domain.RoleAdmin) {
		return apperrors.NewForbiddenError("only admins may delete notices")
	}
	return s.noticeRepo.DeleteNotice(ctx, actor.TenantID, noticeID)
}

// GetDecision returns the notice's single decision record, if any.
func (s *noticeService) GetDecision(ctx context.Context, actor domain.Actor, noticeID string) (*domain.NoticeDecision, error) {
	if _, err := s.GetNotice(ctx, actor, noticeID); err != nil {
		return nil, err
	}
	return s.noticeRepo.FindDecisionByNoticeID(ctx, actor.TenantID, noticeID)
}

// SetDecision records or overwrites the notice's decision. Admin only; prior
// decisions are not retained.
func (s *noticeService) SetDecision(ctx context.Context, actor domain.Actor, noticeID string, req dto.SetDecisionRequest) (*domain.NoticeDecision, error) {
	if !actor.CanManage(domain.RoleAdmin) {
		return nil, apperrors.NewForbiddenError("only admins may record decisions")
	}
	if _, err := s.noticeRepo.FindNoticeByID(ctx, actor.TenantID, noticeID); err != nil {
		return nil, err
	}

	decision := domain.NoticeDecision{
		DecisionID:    uuid.NewString(),
		NoticeID:      noticeID,
		TenantID:      actor.TenantID,
		Status:        domain.DecisionStatus(req.Status),
		DecisionText:  req.DecisionText,
		DecidedBy:     actor.UserID,
		DecidedByName: actor.UserName,
		DecidedAt:     time.Now(),
	}
	if err := s.noticeRepo.UpsertDecision(ctx, decision); err != nil {
		s.LogError(ctx, err, "failed to upsert decision", "noticeID", noticeID)
		return nil, fmt.Errorf("failed to record decision: %w", err)
	}
	return &decision, nil
}

// AddComment appends to the notice's discussion thread, snapshotting the
// actor's name and role.
func (s *noticeService) AddComment(ctx context.Context, actor domain.Actor, noticeID string, req dto.AddCommentRequest) (*domain.NoticeComment, error) {
	if _, err := s.GetNotice(ctx, actor, noticeID); err != nil {
		return nil, err
	}

	comment := domain.NoticeComment{
		CommentID: uuid.NewString(),
		NoticeID:  noticeID,
		TenantID:  actor.TenantID,
		UserID:    actor.UserID,
		UserName:  actor.UserName,
		UserRole:  actor.Role,
		Comment:   req.Comment,
		CreatedAt: time.Now(),
	}
	if err := s.noticeRepo.SaveComment(ctx, comment); err != nil {
		s.LogError(ctx, err, "failed to save comment", "noticeID", noticeID)
		return nil, fmt.Errorf("failed to add comment: %w", err)
	}
	return &comment, nil
}

// ListComments returns one page of the thread, newest first.
func (s *noticeService) ListComments(ctx context.Context, actor domain.Actor, noticeID string, page, pageSize int) ([]domain.NoticeComment, error) {
	if _, err := s.GetNotice(ctx, actor, noticeID); err != nil {
		return nil, err
	}
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * pageSize
	return s.noticeRepo.ListComments(ctx, actor.TenantID, noticeID, pageSize, offset)
}

// EditComment replaces a comment's text. Author only, within the edit window;
// super admins bypass the window.
func (s *noticeService) EditComment(ctx context.Context, actor domain.Actor, commentID string, req dto.EditCommentRequest) (*domain.NoticeComment, error) {
	comment, err := s.noticeRepo.FindCommentByID(ctx, actor.TenantID, commentID)
	if err != nil {
		return nil, err
	}
	if !actor.IsSuperAdmin && !comment.EditableBy(actor.UserID, time.Now()) {
		return nil, apperrors.NewForbiddenError("comment may only be edited by its author within the edit window")
	}

	if err := s.noticeRepo.UpdateCommentText(ctx, actor.TenantID, commentID, req.Comment); err != nil {
		return nil, fmt.Errorf("failed to edit comment: %w", err)
	}
	comment.Comment = req.Comment
	now := time.Now()
	comment.EditedAt = &now
	return comment, nil
}

// DeleteComment removes a comment regardless of age or author. Admin only.
func (s *noticeService) DeleteComment(ctx context.Context, actor domain.Actor, commentID string) error {
	if !actor.CanManage(domain.RoleAdmin) {
		return apperrors.NewForbiddenError("only admins may delete comments")
	}
	return s.noticeRepo.DeleteComment(ctx, actor.TenantID, commentID)
}
