package saga

import (
	"context"
	"errors"
	"fmt"
	"ticketing/api"
	"ticketing/entities"

	"github.com/ThreeDotsLabs/go-event-driven/common/log"
)

// DefaultTransactionAttempts bounds the ID-collision retry loop when writing
// a ledger record. Collisions on fresh random IDs are vanishingly rare; a
// bound turns a pathological store into a terminal failure instead of a hang.
const DefaultTransactionAttempts = 5

// createLedgerRecord writes one transaction to the append-only ledger,
// generating a fresh transactionID per attempt. Only an ID collision is
// retried; any other store failure is final.
func createLedgerRecord(
	ctx context.Context,
	transactions TransactionService,
	maxAttempts int,
	record entities.Transaction,
) (string, error) {
	if maxAttempts <= 0 {
		maxAttempts = DefaultTransactionAttempts
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		record.TransactionID = newTransactionID()

		err := transactions.Create(ctx, record)
		if err == nil {
			return record.TransactionID, nil
		}
		if !errors.Is(err, api.ErrDuplicateTransactionID) {
			return "", err
		}

		log.FromContext(ctx).
			WithField("transaction_id", record.TransactionID).
			WithField("attempt", attempt).
			Warn("transaction ID collision, regenerating")
	}

	return "", fmt.Errorf("could not find an unused transaction ID after %d attempts", maxAttempts)
}
