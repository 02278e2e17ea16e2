package cache

import (
	"context"

	portsrepo "github.com/SscSPs/erp_ledger/internal/core/ports/repositories"
)

// NoopStatementCache never stores anything. It is used when no Redis URL is configured.
type NoopStatementCache struct{}

var _ portsrepo.StatementCache = NoopStatementCache{}

func (NoopStatementCache) Get(context.Context, string, any) bool { return false }

func (NoopStatementCache) Set(context.Context, string, any) {}

func (NoopStatementCache) Generation(context.Context) int64 { return 0 }

func (NoopStatementCache) Invalidate(context.Context) {}
