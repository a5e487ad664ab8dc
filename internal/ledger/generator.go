package ledger

import (
	"github.com/google/uuid"
)

// JournalGenerator creates balanced journal batches from pool operations.
// It takes plain operation fields rather than event structs so the ledger
// stays below the event layer in the import graph.
type JournalGenerator struct {
	sequence int64
}

func NewJournalGenerator(startSequence int64) *JournalGenerator {
	return &JournalGenerator{
		sequence: startSequence,
	}
}

func (jg *JournalGenerator) newBatch(eventRef string, timestamp int64) *Batch {
	return &Batch{
		BatchID:   uuid.New(),
		EventRef:  eventRef,
		Sequence:  jg.sequence,
		Timestamp: timestamp,
		Journals:  make([]Journal, 0, 2),
	}
}

func (jg *JournalGenerator) append(b *Batch, debit, credit AccountKey, assetID AssetID, amount int64, jt JournalType) {
	b.Journals = append(b.Journals, Journal{
		JournalID:     uuid.New(),
		BatchID:       b.BatchID,
		EventRef:      b.EventRef,
		Sequence:      b.Sequence,
		DebitAccount:  debit,
		CreditAccount: credit,
		AssetID:       assetID,
		Amount:        amount,
		JournalType:   jt,
		Timestamp:     b.Timestamp,
	})
}

// GenerateEmpty creates a journal-less batch for state-only events
// (PoolBound produces no balance movement but still needs an envelope).
func (jg *JournalGenerator) GenerateEmpty(eventRef string, timestamp int64) *Batch {
	batch := jg.newBatch(eventRef, timestamp)
	jg.sequence++
	return batch
}

// GenerateFund books a contribution into engine custody.
// Moves funds: external:vault → depositor:claim
func (jg *JournalGenerator) GenerateFund(
	eventRef string,
	depositorID uuid.UUID,
	assetID AssetID,
	amount int64,
	timestamp int64,
) *Batch {
	batch := jg.newBatch(eventRef, timestamp)
	jg.append(batch,
		NewDepositorAccountKey(depositorID, assetID),
		NewExternalAccountKey(SubTypeExternalVault, assetID),
		assetID, amount, JournalTypeFund)
	jg.sequence++
	return batch
}

// GenerateDefund books a withdrawal back to the depositor.
// Moves funds: depositor:claim → external:vault
func (jg *JournalGenerator) GenerateDefund(
	eventRef string,
	depositorID uuid.UUID,
	assetID AssetID,
	amount int64,
	timestamp int64,
) *Batch {
	batch := jg.newBatch(eventRef, timestamp)
	jg.append(batch,
		NewExternalAccountKey(SubTypeExternalVault, assetID),
		NewDepositorAccountKey(depositorID, assetID),
		assetID, amount, JournalTypeDefund)
	jg.sequence++
	return batch
}

// GenerateMatch books a fronted single-sided match. fronted is the engine's
// (negative) correction delta; its magnitude moves from the pool's reservoir
// book into the pool's position-debt book, and the settlement leg records the
// physical payout from vault custody into the settlement authority.
func (jg *JournalGenerator) GenerateMatch(
	eventRef string,
	poolID uuid.UUID,
	assetID AssetID,
	fronted int64,
	timestamp int64,
) *Batch {
	batch := jg.newBatch(eventRef, timestamp)
	if fronted < 0 {
		amount := -fronted
		jg.append(batch,
			NewPoolAccountKey(poolID, SubTypePositionDebt, assetID),
			NewPoolAccountKey(poolID, SubTypeReservoir, assetID),
			assetID, amount, JournalTypeMatchFront)
		jg.append(batch,
			NewExternalAccountKey(SubTypeExternalSettlement, assetID),
			NewExternalAccountKey(SubTypeExternalVault, assetID),
			assetID, amount, JournalTypeMatchSettle)
	}
	jg.sequence++
	return batch
}

// GenerateUnwind books a reclaimed unwind: the reverse of GenerateMatch.
func (jg *JournalGenerator) GenerateUnwind(
	eventRef string,
	poolID uuid.UUID,
	assetID AssetID,
	reclaimed int64,
	timestamp int64,
) *Batch {
	batch := jg.newBatch(eventRef, timestamp)
	if reclaimed > 0 {
		jg.append(batch,
			NewPoolAccountKey(poolID, SubTypeReservoir, assetID),
			NewPoolAccountKey(poolID, SubTypePositionDebt, assetID),
			assetID, reclaimed, JournalTypeUnwindReclaim)
		jg.append(batch,
			NewExternalAccountKey(SubTypeExternalVault, assetID),
			NewExternalAccountKey(SubTypeExternalSettlement, assetID),
			assetID, reclaimed, JournalTypeUnwindTake)
	}
	jg.sequence++
	return batch
}

// SetSequence resets the generator sequence (recovery path)
func (jg *JournalGenerator) SetSequence(seq int64) {
	jg.sequence = seq
}
