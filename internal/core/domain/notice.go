package domain

import "time"

// NoticeStatus is the publication state of a notice.
type NoticeStatus string

const (
	NoticeDraft     NoticeStatus = "DRAFT"
	NoticePublished NoticeStatus = "PUBLISHED"
)

// Notice is an announcement to the tenant's members. Managers draft notices;
// only admins publish or delete them. PublishedAt is set iff the status is
// PUBLISHED.
type Notice struct {
	NoticeID    string       `json:"noticeID"` // Primary Key (UUID)
	TenantID    string       `json:"tenantID"`
	Title       string       `json:"title"`
	TitleBN     string       `json:"titleBN"`
	Content     string       `json:"content"`
	ContentBN   string       `json:"contentBN"`
	Status      NoticeStatus `json:"status"`
	IsPinned    bool         `json:"isPinned"`
	PublishedAt *time.Time   `json:"publishedAt,omitempty"`
	AuditFields
}

// DecisionStatus is the outcome recorded against a notice.
type DecisionStatus string

const (
	DecisionApproved DecisionStatus = "APPROVED"
	DecisionRejected DecisionStatus = "REJECTED"
	DecisionDeferred DecisionStatus = "DEFERRED"
)

// NoticeDecision is the single active decision for a notice. Writes overwrite
// any prior decision; history is not retained.
type NoticeDecision struct {
	DecisionID    string         `json:"decisionID"` // Primary Key (UUID)
	NoticeID      string         `json:"noticeID"`   // UNIQUE: one decision per notice
	TenantID      string         `json:"tenantID"`
	Status        DecisionStatus `json:"status"`
	DecisionText  string         `json:"decisionText"`
	DecidedBy     string         `json:"decidedBy"` // UserID
	DecidedByName string         `json:"decidedByName"`
	DecidedAt     time.Time      `json:"decidedAt"`
}

// CommentEditWindow is how long the author of a comment may edit it.
const CommentEditWindow = 5 * time.Minute

// NoticeComment is a discussion entry under a notice. UserName and UserRole
// are snapshots taken at comment time, not live-joined.
type NoticeComment struct {
	CommentID string     `json:"commentID"` // Primary Key (UUID)
	NoticeID  string     `json:"noticeID"`
	TenantID  string     `json:"tenantID"`
	UserID    string     `json:"userID"`
	UserName  string     `json:"userName"`
	UserRole  TenantRole `json:"userRole"`
	Comment   string     `json:"comment"`
	CreatedAt time.Time  `json:"createdAt"`
	EditedAt  *time.Time `json:"editedAt,omitempty"`
}

// EditableBy reports whether userID may still edit the comment at time now.
// Only the author may edit, and only within CommentEditWindow of creation.
func (c *NoticeComment) EditableBy(userID string, now time.Time) bool {
	if c.UserID != userID {
		return false
	}
	return now.Sub(c.CreatedAt) < CommentEditWindow
}
