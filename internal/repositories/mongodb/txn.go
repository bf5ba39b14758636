package mongodb

import (
	"context"

	"github.com/eventpix/luckydraw-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/mongo"
)

// TxnRunner implements repositories.TransactionRunner on a Mongo session.
// Repositories called with the context passed to fn join the transaction,
// so a failure anywhere inside fn rolls back every write made within it.
type TxnRunner struct {
	client *mongo.Client
}

// NewTxnRunner creates a new TxnRunner
func NewTxnRunner(client *mongo.Client) repositories.TransactionRunner {
	return &TxnRunner{client: client}
}

// RunInTransaction runs fn inside a single Mongo transaction
func (t *TxnRunner) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	session, err := t.client.StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		return nil, fn(sc)
	})
	return err
}
