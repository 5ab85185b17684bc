package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/somitihq/somiti-backend/internal/apperrors"
	"github.com/somitihq/somiti-backend/internal/core/domain"
	portsrepo "github.com/somitihq/somiti-backend/internal/core/ports/repositories"
)

type memberRepository struct {
	pool *pgxpool.Pool
}

// NewMemberRepository creates a new repository for roster members.
func NewMemberRepository(pool *pgxpool.Pool) portsrepo.MemberRepositoryFacade {
	return &memberRepository{pool: pool}
}

var _ portsrepo.MemberRepositoryFacade = (*memberRepository)(nil)

const memberColumns = `
	member_id, tenant_id, name, name_bn, phone, email, advance_balance, is_active,
	created_at, created_by, last_updated_at, last_updated_by`

func scanMember(row pgx.Row) (*domain.Member, error) {
	var m domain.Member
	err := row.Scan(
		&m.MemberID,
		&m.TenantID,
		&m.Name,
		&m.NameBN,
		&m.Phone,
		&m.Email,
		&m.AdvanceBalance,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan member: %w", err)
	}
	return &m, nil
}

func (r *memberRepository) FindMemberByID(ctx context.Context, tenantID, memberID string) (*domain.Member, error) {
	query := `SELECT ` + memberColumns + ` FROM members WHERE tenant_id = $1 AND member_id = $2;`
	return scanMember(db(ctx, r.pool).QueryRow(ctx, query, tenantID, memberID))
}

func (r *memberRepository) ListMembers(ctx context.Context, tenantID string, limit, offset int) ([]domain.Member, error) {
	query := `
		SELECT ` + memberColumns + `
		FROM members
		WHERE tenant_id = $1
		ORDER BY name ASC
		LIMIT $2 OFFSET $3;
	`
	rows, err := db(ctx, r.pool).Query(ctx, query, tenantID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query members: %w", err)
	}
	defer rows.Close()

	members := []domain.Member{}
	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			return nil, err
		}
		members = append(members, *m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating member rows: %w", rows.Err())
	}
	return members, nil
}

func (r *memberRepository) CountActiveMembers(ctx context.Context, tenantID string) (int, error) {
	query := `SELECT count(*) FROM members WHERE tenant_id = $1 AND is_active;`
	var count int
	if err := db(ctx, r.pool).QueryRow(ctx, query, tenantID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count active members: %w", err)
	}
	return count, nil
}

func (r *memberRepository) SaveMember(ctx context.Context, member domain.Member) error {
	query := `
		INSERT INTO members (
			member_id, tenant_id, name, name_bn, phone, email, advance_balance,
			is_active, created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := db(ctx, r.pool).Exec(ctx, query,
		member.MemberID,
		member.TenantID,
		member.Name,
		member.NameBN,
		member.Phone,
		member.Email,
		member.AdvanceBalance,
		member.IsActive,
		member.CreatedAt,
		member.CreatedBy,
		member.LastUpdatedAt,
		member.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to save member: %w", err)
	}
	return nil
}

func (r *memberRepository) UpdateMember(ctx context.Context, member domain.Member) error {
	query := `
		UPDATE members
		SET name = $1, name_bn = $2, phone = $3, email = $4, is_active = $5,
		    last_updated_at = $6, last_updated_by = $7
		WHERE tenant_id = $8 AND member_id = $9;
	`
	cmdTag, err := db(ctx, r.pool).Exec(ctx, query,
		member.Name,
		member.NameBN,
		member.Phone,
		member.Email,
		member.IsActive,
		member.LastUpdatedAt,
		member.LastUpdatedBy,
		member.TenantID,
		member.MemberID,
	)
	if err != nil {
		return fmt.Errorf("failed to update member: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *memberRepository) DeactivateMember(ctx context.Context, tenantID, memberID, updatedBy string) error {
	query := `
		UPDATE members
		SET is_active = FALSE, last_updated_at = now(), last_updated_by = $1
		WHERE tenant_id = $2 AND member_id = $3 AND is_active;
	`
	cmdTag, err := db(ctx, r.pool).Exec(ctx, query, updatedBy, tenantID, memberID)
	if err != nil {
		return fmt.Errorf("failed to deactivate member: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *memberRepository) AdjustAdvanceBalance(ctx context.Context, tenantID, memberID string, delta decimal.Decimal, updatedBy string) error {
	query := `
		UPDATE members
		SET advance_balance = advance_balance + $1, last_updated_at = now(), last_updated_by = $2
		WHERE tenant_id = $3 AND member_id = $4;
	`
	cmdTag, err := db(ctx, r.pool).Exec(ctx, query, delta, updatedBy, tenantID, memberID)
	if err != nil {
		return fmt.Errorf("failed to adjust advance balance: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
