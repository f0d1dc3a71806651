package mongodb

import (
	"context"
	"fmt"

	"github.com/mikiasgoitom/portfolio/internal/domain/contract"
	"go.mongodb.org/mongo-driver/mongo"
)

// TxRunner groups a content write and its tag counter updates. Transactions
// need a replica set, so they are opt-in; when disabled fn runs directly and
// the writes are applied in order without atomicity.
type TxRunner struct {
	client  *mongo.Client
	enabled bool
}

var _ contract.ITxRunner = (*TxRunner)(nil)

func NewTxRunner(client *mongo.Client, enabled bool) *TxRunner {
	return &TxRunner{client: client, enabled: enabled}
}

func (t *TxRunner) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if !t.enabled || t.client == nil {
		return fn(ctx)
	}
	session, err := t.client.StartSession()
	if err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		return nil, fn(sc)
	})
	return err
}
