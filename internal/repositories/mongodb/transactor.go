package mongodb

import (
	"context"

	"github.com/ArowuTest/raffle-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SessionStarter is satisfied by *mongo.Client and pkg/mongodb.Client
type SessionStarter interface {
	StartSession(opts ...*options.SessionOptions) (mongo.Session, error)
}

var _ repositories.Transactor = (*Transactor)(nil)

// Transactor runs repository calls inside a multi-document transaction.
// Requires a replica set or sharded cluster.
type Transactor struct {
	sessions SessionStarter
}

// NewTransactor creates a transactor on top of the client's sessions
func NewTransactor(sessions SessionStarter) *Transactor {
	return &Transactor{sessions: sessions}
}

// WithTransaction runs fn in a transaction. The driver may call fn again on
// transient errors, so fn must not keep state between attempts.
func (t *Transactor) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	session, err := t.sessions.StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(context.WithoutCancel(ctx))

	_, err = session.WithTransaction(ctx, func(sessCtx mongo.SessionContext) (interface{}, error) {
		return nil, fn(sessCtx)
	})
	return err
}

// Atomic reports true: an aborted transaction leaves nothing behind
func (t *Transactor) Atomic() bool {
	return true
}
