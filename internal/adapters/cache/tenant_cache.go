// Package cache holds the Redis-backed read-through cache for tenant
// resolution and plan info. The SPA polls both on a short interval, so the
// cache absorbs the bulk of that read traffic.
package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/somitihq/somiti-backend/internal/core/domain"
	portsrepo "github.com/somitihq/somiti-backend/internal/core/ports/repositories"
)

type redisTenantCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// NewRedisTenantCache creates a TenantCache backed by Redis. Cache failures
// are logged and treated as misses; the database stays authoritative.
func NewRedisTenantCache(client *redis.Client, ttl time.Duration, logger *slog.Logger) portsrepo.TenantCache {
	return &redisTenantCache{client: client, ttl: ttl, logger: logger}
}

var _ portsrepo.TenantCache = (*redisTenantCache)(nil)

func subdomainKey(subdomain string) string {
	return "tenant:subdomain:" + subdomain
}

func planInfoKey(tenantID string) string {
	return "planinfo:" + tenantID
}

func (c *redisTenantCache) GetTenantBySubdomain(ctx context.Context, subdomain string) (*domain.Tenant, bool) {
	payload, err := c.client.Get(ctx, subdomainKey(subdomain)).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("redis get failed", "key", subdomainKey(subdomain), "error", err)
		}
		return nil, false
	}
	var tenant domain.Tenant
	if err := json.Unmarshal(payload, &tenant); err != nil {
		c.logger.Warn("failed to decode cached tenant", "subdomain", subdomain, "error", err)
		return nil, false
	}
	return &tenant, true
}

func (c *redisTenantCache) SetTenantBySubdomain(ctx context.Context, tenant *domain.Tenant) {
	payload, err := json.Marshal(tenant)
	if err != nil {
		c.logger.Warn("failed to encode tenant for cache", "tenantID", tenant.TenantID, "error", err)
		return
	}
	if err := c.client.Set(ctx, subdomainKey(tenant.Subdomain), payload, c.ttl).Err(); err != nil {
		c.logger.Warn("redis set failed", "key", subdomainKey(tenant.Subdomain), "error", err)
	}
}

func (c *redisTenantCache) GetPlanInfo(ctx context.Context, tenantID string) (*domain.TenantPlanInfo, bool) {
	payload, err := c.client.Get(ctx, planInfoKey(tenantID)).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("redis get failed", "key", planInfoKey(tenantID), "error", err)
		}
		return nil, false
	}
	var info domain.TenantPlanInfo
	if err := json.Unmarshal(payload, &info); err != nil {
		c.logger.Warn("failed to decode cached plan info", "tenantID", tenantID, "error", err)
		return nil, false
	}
	return &info, true
}

func (c *redisTenantCache) SetPlanInfo(ctx context.Context, info *domain.TenantPlanInfo) {
	payload, err := json.Marshal(info)
	if err != nil {
		c.logger.Warn("failed to encode plan info for cache", "tenantID", info.TenantID, "error", err)
		return
	}
	if err := c.client.Set(ctx, planInfoKey(info.TenantID), payload, c.ttl).Err(); err != nil {
		c.logger.Warn("redis set failed", "key", planInfoKey(info.TenantID), "error", err)
	}
}

func (c *redisTenantCache) InvalidatePlanInfo(ctx context.Context, tenantID string) {
	if err := c.client.Del(ctx, planInfoKey(tenantID)).Err(); err != nil {
		c.logger.Warn("redis del failed", "key", planInfoKey(tenantID), "error", err)
	}
}
