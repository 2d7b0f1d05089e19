package wallet

import "github.com/charmbracelet/log"

// Operation is the kind of money movement reported to a Journal.
type Operation string

const (
	OpUse         Operation = "USE"
	OpLoad        Operation = "LOAD"
	OpTransferOut Operation = "TRANSFER_OUT"
	OpTransferIn  Operation = "TRANSFER_IN"
)

// Entry is one money movement on one card.
type Entry struct {
	Card      string
	Operation Operation
	Amount    Money
}

// Journal records money movements once they are durable.
// Entries passed in a single call belong to the same operation.
type Journal interface {
	Record(entries ...Entry) error
}

// Teller runs the wallet commands. Every method is a full transaction
// against the wallet file: load, check, mutate, save, then journal.
//
// Nothing is saved or journaled when a check fails.
type Teller struct {
	store   *Store
	journal Journal
	logger  *log.Logger
}

// NewTeller returns a Teller over store. A nil journal disables journaling.
func NewTeller(store *Store, journal Journal, logger *log.Logger) *Teller {
	if logger == nil {
		logger = log.Default()
	}
	return &Teller{store: store, journal: journal, logger: logger}
}

// AddCard appends a new empty card to the wallet file.
func (t *Teller) AddCard(name, number, owner, expiration string) (*Card, error) {
	if number == "" || owner == "" {
		return nil, ErrEmptyField
	}
	w, err := t.store.Load()
	if err != nil {
		return nil, err
	}
	c, err := w.AddCard(name, number, owner, expiration)
	if err != nil {
		return nil, err
	}
	if err := t.store.Save(w); err != nil {
		return nil, err
	}
	return c, nil
}

// RemoveCard deletes every card with this number from the wallet file.
func (t *Teller) RemoveCard(number string) (int, error) {
	w, err := t.store.Load()
	if err != nil {
		return 0, err
	}
	n, err := w.Remove(number)
	if err != nil {
		return 0, err
	}
	if err := t.store.Save(w); err != nil {
		return 0, err
	}
	return n, nil
}

// ViewCard counts a view on the card and persists the new view count.
func (t *Teller) ViewCard(number string) (*Card, error) {
	w, err := t.store.Load()
	if err != nil {
		return nil, err
	}
	if _, err := w.View(number); err != nil {
		return nil, err
	}
	if err := t.store.Save(w); err != nil {
		return nil, err
	}
	return w.Find(number), nil
}

// List returns all cards without modifying the wallet file.
func (t *Teller) List() ([]*Card, error) {
	w, err := t.store.Load()
	if err != nil {
		return nil, err
	}
	cards := make([]*Card, 0, w.Len())
	for c := range w.Cards() {
		cards = append(cards, c)
	}
	return cards, nil
}

// Wallet loads the wallet file without modifying it.
func (t *Teller) Wallet() (*Wallet, error) { return t.store.Load() }

// Save rewrites the wallet file in its canonical form.
func (t *Teller) Save() error {
	w, err := t.store.Load()
	if err != nil {
		return err
	}
	return t.store.Save(w)
}

// LoadMoney parses rawAmount and puts it on the card.
func (t *Teller) LoadMoney(number, rawAmount string) (*Card, error) {
	amount, err := ParseAmount(rawAmount)
	if err != nil {
		return nil, err
	}
	w, err := t.store.Load()
	if err != nil {
		return nil, err
	}
	c, err := w.Load(number, amount)
	if err != nil {
		return nil, err
	}
	if err := t.store.Save(w); err != nil {
		return nil, err
	}
	t.record(Entry{Card: number, Operation: OpLoad, Amount: amount})
	return c, nil
}

// Spend parses rawAmount and takes it from the card.
func (t *Teller) Spend(number, rawAmount string) (*Card, error) {
	amount, err := ParseAmount(rawAmount)
	if err != nil {
		return nil, err
	}
	w, err := t.store.Load()
	if err != nil {
		return nil, err
	}
	c, err := w.Spend(number, amount)
	if err != nil {
		return nil, err
	}
	if err := t.store.Save(w); err != nil {
		return nil, err
	}
	t.record(Entry{Card: number, Operation: OpUse, Amount: amount})
	return c, nil
}

// Transfer parses rawAmount and moves it from one card to another.
// Transferring to the same card is rejected before anything else.
func (t *Teller) Transfer(from, to, rawAmount string) error {
	if from == to {
		return ErrSameCard
	}
	amount, err := ParseAmount(rawAmount)
	if err != nil {
		return err
	}
	w, err := t.store.Load()
	if err != nil {
		return err
	}
	if err := w.Transfer(from, to, amount); err != nil {
		return err
	}
	if err := t.store.Save(w); err != nil {
		return err
	}
	t.record(
		Entry{Card: from, Operation: OpTransferOut, Amount: amount},
		Entry{Card: to, Operation: OpTransferIn, Amount: amount},
	)
	return nil
}

// record journals entries. The movement is already saved at this point so a
// journal failure is only reported.
func (t *Teller) record(entries ...Entry) {
	if t.journal == nil {
		return
	}
	if err := t.journal.Record(entries...); err != nil {
		t.logger.Warn("could not write to transaction log", "operation", entries[0].Operation, "err", err)
	}
}
