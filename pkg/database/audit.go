package database

import (
	"context"

	"gorm.io/gorm"
)

type actorKey struct{}

// WithActor returns a context carrying the acting user's identity. Repositories
// pass the request context into GORM, so any create/update issued under this
// context stamps the audit columns with the actor.
func WithActor(ctx context.Context, actor string) context.Context {
	return context.WithValue(ctx, actorKey{}, actor)
}

// ActorFromContext returns the acting user recorded in the context, or "".
func ActorFromContext(ctx context.Context) string {
	actor, _ := ctx.Value(actorKey{}).(string)
	return actor
}

// RegisterAuditCallbacks installs GORM callbacks that fill the CreatedBy and
// UpdatedBy columns from the statement context before each write.
func RegisterAuditCallbacks(db *gorm.DB) error {
	if err := db.Callback().Create().Before("gorm:create").Register("storeapi:audit_create", auditCreate); err != nil {
		return err
	}
	return db.Callback().Update().Before("gorm:update").Register("storeapi:audit_update", auditUpdate)
}

func auditCreate(tx *gorm.DB) {
	setAuditColumn(tx, "CreatedBy")
}

func auditUpdate(tx *gorm.DB) {
	setAuditColumn(tx, "UpdatedBy")
}

func setAuditColumn(tx *gorm.DB, field string) {
	if tx.Statement == nil || tx.Statement.Schema == nil {
		return
	}
	actor := ActorFromContext(tx.Statement.Context)
	if actor == "" {
		return
	}
	if f := tx.Statement.Schema.LookUpField(field); f != nil {
		tx.Statement.SetColumn(field, actor)
	}
}
