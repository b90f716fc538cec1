package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// sessionStarter is the part of *mongo.Client the transaction manager needs.
type sessionStarter interface {
	StartSession(opts ...*options.SessionOptions) (mongo.Session, error)
}

// MongoTxManager runs callbacks inside a multi-document transaction. It needs
// a replica set or sharded cluster.
type MongoTxManager struct {
	client sessionStarter
}

// NewMongoTxManager returns a TxManager backed by client sessions.
func NewMongoTxManager(client *mongo.Client) TxManager {
	if client == nil {
		return NoopTxManager{}
	}
	return &MongoTxManager{client: client}
}

func (m *MongoTxManager) WithinTransaction(ctx context.Context, fn func(context.Context) error) error {
	if fn == nil {
		return fmt.Errorf("repository: transaction function is required")
	}

	// already inside a session: join it
	if mongo.SessionFromContext(ctx) != nil {
		return fn(ctx)
	}

	session, err := m.client.StartSession()
	if err != nil {
		return fmt.Errorf("repository: start session: %w", err)
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		return nil, fn(sc)
	})
	return err
}
