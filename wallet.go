package wallet

import (
	"iter"
	"slices"
)

// Wallet is the ordered collection of cards held in a wallet file.
//
// Insertion order is preserved and is the order cards are written back.
// Card numbers are not enforced unique: Find returns the first match while
// Remove deletes all of them.
type Wallet struct {
	cards []*Card
}

// NewWallet creates an empty wallet.
func NewWallet() *Wallet {
	return &Wallet{cards: make([]*Card, 0)}
}

// Len returns the number of cards.
func (w *Wallet) Len() int { return len(w.cards) }

// Cards iterates over the cards in store order.
func (w *Wallet) Cards() iter.Seq[*Card] {
	return slices.Values(w.cards)
}

// Add appends a card at the end of the wallet. No uniqueness check is made.
func (w *Wallet) Add(c *Card) {
	w.cards = append(w.cards, c)
}

// Remove deletes every card with this number and returns how many were
// removed, or ErrCardNotFound if none matched.
func (w *Wallet) Remove(number string) (int, error) {
	before := len(w.cards)
	w.cards = slices.DeleteFunc(w.cards, func(c *Card) bool { return c.number == number })
	removed := before - len(w.cards)
	if removed == 0 {
		return 0, ErrCardNotFound
	}
	return removed, nil
}

// Find returns the first card with this number, or nil if unknown.
func (w *Wallet) Find(number string) *Card {
	i := slices.IndexFunc(w.cards, func(c *Card) bool { return c.number == number })
	if i < 0 {
		return nil
	}
	return w.cards[i]
}

// List returns the display representation of every card, in store order.
func (w *Wallet) List() []string {
	out := make([]string, 0, len(w.cards))
	for _, c := range w.cards {
		out = append(out, c.String())
	}
	return out
}

// View counts one more view on the card and returns its display
// representation.
func (w *Wallet) View(number string) (string, error) {
	c := w.Find(number)
	if c == nil {
		return "", ErrCardNotFound
	}
	c.IncrementViewCount()
	return c.String(), nil
}
