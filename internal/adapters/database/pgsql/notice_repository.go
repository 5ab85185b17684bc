package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/somitihq/somiti-backend/internal/apperrors"
	"github.com/somitihq/somiti-backend/internal/core/domain"
	portsrepo "github.com/somitihq/somiti-backend/internal/core/ports/repositories"
)

type noticeRepository struct {
	pool *pgxpool.Pool
}

// NewNoticeRepository creates a new repository for notices, decisions and
// discussion comments.
func NewNoticeRepository(pool *pgxpool.Pool) portsrepo.NoticeRepositoryFacade {
	return &noticeRepository{pool: pool}
}

var _ portsrepo.NoticeRepositoryFacade = (*noticeRepository)(nil)

const noticeColumns = `
	notice_id, tenant_id, title, title_bn, content, content_bn, status, is_pinned,
	published_at, created_at, created_by, last_updated_at, last_updated_by`

func scanNotice(row pgx.Row) (*domain.Notice, error) {
	var n domain.Notice
	err := row.Scan(
		&n.NoticeID,
		&n.TenantID,
		&n.Title,
		&n.TitleBN,
		&n.Content,
		&n.ContentBN,
		&n.Status,
		&n.IsPinned,
		&n.PublishedAt,
		&n.CreatedAt,
		&n.CreatedBy,
		&n.LastUpdatedAt,
		&n.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan notice: %w", err)
	}
	return &n, nil
}

func (r *noticeRepository) FindNoticeByID(ctx context.Context, tenantID, noticeID string) (*domain.Notice, error) {
	query := `SELECT ` + noticeColumns + ` FROM notices WHERE tenant_id = $1 AND notice_id = $2;`
	return scanNotice(db(ctx, r.pool).QueryRow(ctx, query, tenantID, noticeID))
}

func (r *noticeRepository) ListNotices(ctx context.Context, tenantID string, publishedOnly bool, limit, offset int) ([]domain.Notice, error) {
	query := `
		SELECT ` + noticeColumns + `
		FROM notices
		WHERE tenant_id = $1 AND ($2 = FALSE OR status = 'PUBLISHED')
		ORDER BY is_pinned DESC, coalesce(published_at, created_at) DESC
		LIMIT $3 OFFSET $4;
	`
	rows, err := db(ctx, r.pool).Query(ctx, query, tenantID, publishedOnly, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query notices: %w", err)
	}
	defer rows.Close()

	notices := []domain.Notice{}
	for rows.Next() {
		n, err := scanNotice(rows)
		if err != nil {
			return nil, err
		}
		notices = append(notices, *n)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating notice rows: %w", rows.Err())
	}
	return notices, nil
}

func (r *noticeRepository) SaveNotice(ctx context.Context, notice domain.Notice) error {
	query := `
		INSERT INTO notices (
			notice_id, tenant_id, title, title_bn, content, content_bn, status,
			is_pinned, published_at, created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err := db(ctx, r.pool).Exec(ctx, query,
		notice.NoticeID,
		notice.TenantID,
		notice.Title,
		notice.TitleBN,
		notice.Content,
		notice.ContentBN,
		notice.Status,
		notice.IsPinned,
		notice.PublishedAt,
		notice.CreatedAt,
		notice.CreatedBy,
		notice.LastUpdatedAt,
		notice.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to save notice: %w", err)
	}
	return nil
}

func (r *noticeRepository) UpdateNotice(ctx context.Context, notice domain.Notice) error {
	query := `
		UPDATE notices
		SET title = $1, title_bn = $2, content = $3, content_bn = $4, status = $5,
		    is_pinned = $6, published_at = $7, last_updated_at = $8, last_updated_by = $9
		WHERE tenant_id = $10 AND notice_id = $11;
	`
	cmdTag, err := db(ctx, r.pool).Exec(ctx, query,
		notice.Title,
		notice.TitleBN,
		notice.Content,
		notice.ContentBN,
		notice.Status,
		notice.IsPinned,
		notice.PublishedAt,
		notice.LastUpdatedAt,
		notice.LastUpdatedBy,
		notice.TenantID,
		notice.NoticeID,
	)
	if err != nil {
		return fmt.Errorf("failed to update notice: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *noticeRepository) DeleteNotice(ctx context.Context, tenantID, noticeID string) error {
	// Decisions and comments go with the notice via ON DELETE CASCADE.
	query := `DELETE FROM notices WHERE tenant_id = $1 AND notice_id = $2;`
	cmdTag, err := db(ctx, r.pool).Exec(ctx, query, tenantID, noticeID)
	if err != nil {
		return fmt.Errorf("failed to delete notice: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *noticeRepository) FindDecisionByNoticeID(ctx context.Context, tenantID, noticeID string) (*domain.NoticeDecision, error) {
	query := `
		SELECT decision_id, notice_id, tenant_id, status, decision_text,
		       decided_by, decided_by_name, decided_at
		FROM notice_decisions
		WHERE tenant_id = $1 AND notice_id = $2;
	`
	var d domain.NoticeDecision
	err := db(ctx, r.pool).QueryRow(ctx, query, tenantID, noticeID).Scan(
		&d.DecisionID,
		&d.NoticeID,
		&d.TenantID,
		&d.Status,
		&d.DecisionText,
		&d.DecidedBy,
		&d.DecidedByName,
		&d.DecidedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find notice decision: %w", err)
	}
	return &d, nil
}

func (r *noticeRepository) UpsertDecision(ctx context.Context, decision domain.NoticeDecision) error {
	// notice_id is UNIQUE so the conflict target overwrites the prior decision.
	query := `
		INSERT INTO notice_decisions (
			decision_id, notice_id, tenant_id, status, decision_text,
			decided_by, decided_by_name, decided_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (notice_id) DO UPDATE SET
			status = EXCLUDED.status,
			decision_text = EXCLUDED.decision_text,
			decided_by = EXCLUDED.decided_by,
			decided_by_name = EXCLUDED.decided_by_name,
			decided_at = EXCLUDED.decided_at;
	`
	_, err := db(ctx, r.pool).Exec(ctx, query,
		decision.DecisionID,
		decision.NoticeID,
		decision.TenantID,
		decision.Status,
		decision.DecisionText,
		decision.DecidedBy,
		decision.DecidedByName,
		decision.DecidedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert notice decision: %w", err)
	}
	return nil
}

const commentColumns = `
	comment_id, notice_id, tenant_id, user_id, user_name, user_role, comment,
	created_at, edited_at`

func scanComment(row pgx.Row) (*domain.NoticeComment, error) {
	var c domain.NoticeComment
	err := row.Scan(
		&c.CommentID,
		&c.NoticeID,
		&c.TenantID,
		&c.UserID,
		&c.UserName,
		&c.UserRole,
		&c.Comment,
		&c.CreatedAt,
		&c.EditedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan notice comment: %w", err)
	}
	return &c, nil
}

func (r *noticeRepository) SaveComment(ctx context.Context, comment domain.NoticeComment) error {
	query := `
		INSERT INTO notice_comments (
			comment_id, notice_id, tenant_id, user_id, user_name, user_role,
			comment, created_at, edited_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := db(ctx, r.pool).Exec(ctx, query,
		comment.CommentID,
		comment.NoticeID,
		comment.TenantID,
		comment.UserID,
		comment.UserName,
		comment.UserRole,
		comment.Comment,
		comment.CreatedAt,
		comment.EditedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save notice comment: %w", err)
	}
	return nil
}

func (r *noticeRepository) FindCommentByID(ctx context.Context, tenantID, commentID string) (*domain.NoticeComment, error) {
	query := `SELECT ` + commentColumns + ` FROM notice_comments WHERE tenant_id = $1 AND comment_id = $2;`
	return scanComment(db(ctx, r.pool).QueryRow(ctx, query, tenantID, commentID))
}

func (r *noticeRepository) ListComments(ctx context.Context, tenantID, noticeID string, limit, offset int) ([]domain.NoticeComment, error) {
	query := `
		SELECT ` + commentColumns + `
		FROM notice_comments
		WHERE tenant_id = $1 AND notice_id = $2
		ORDER BY created_at DESC
		LIMIT $3 OFFSET $4;
	`
	rows, err := db(ctx, r.pool).Query(ctx, query, tenantID, noticeID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query notice comments: %w", err)
	}
	defer rows.Close()

	comments := []domain.NoticeComment{}
	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			return nil, err
		}
		comments = append(comments, *c)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating comment rows: %w", rows.Err())
	}
	return comments, nil
}

func (r *noticeRepository) UpdateCommentText(ctx context.Context, tenantID, commentID, text string) error {
	query := `
		UPDATE notice_comments
		SET comment = $1, edited_at = now()
		WHERE tenant_id = $2 AND comment_id = $3;
	`
	cmdTag, err := db(ctx, r.pool).Exec(ctx, query, text, tenantID, commentID)
	if err != nil {
		return fmt.Errorf("failed to update notice comment: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *noticeRepository) DeleteComment(ctx context.Context, tenantID, commentID string) error {
	query := `DELETE FROM notice_comments WHERE tenant_id = $1 AND comment_id = $2;`
	cmdTag, err := db(ctx, r.pool).Exec(ctx, query, tenantID, commentID)
	if err != nil {
		return fmt.Errorf("failed to delete notice comment: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
