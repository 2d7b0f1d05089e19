package wallet

import "fmt"

// Card is a stored-value record identified by its number.
//
// The balance is never negative: every method that takes money away refuses
// to do so when the balance cannot cover it.
type Card struct {
	name       string
	number     string
	owner      string
	expiration string // opaque, never parsed
	balance    Money
	views      int
}

// NewCard creates a card with a zero balance and no views.
func NewCard(name, number, owner, expiration string) *Card {
	return &Card{name: name, number: number, owner: owner, expiration: expiration}
}

// newCardWithState creates a card as read from a persisted row. Negative
// balance or views are clamped to zero.
func newCardWithState(name, number, owner, expiration string, balance Money, views int) *Card {
	if balance.IsNegative() {
		balance = Money{}
	}
	if views < 0 {
		views = 0
	}
	c := NewCard(name, number, owner, expiration)
	c.balance = balance
	c.views = views
	return c
}

func (c *Card) Name() string       { return c.name }
func (c *Card) Number() string     { return c.number }
func (c *Card) Owner() string      { return c.owner }
func (c *Card) Expiration() string { return c.expiration }
func (c *Card) Balance() Money     { return c.balance }
func (c *Card) Views() int         { return c.views }

// RemoveMoney takes amount from the card. It returns false, leaving the card
// untouched, if amount is not positive or exceeds the balance.
func (c *Card) RemoveMoney(amount Money) bool {
	if !amount.IsPositive() || c.balance.LessThan(amount) {
		return false
	}
	c.balance = c.balance.Sub(amount)
	return true
}

// AddMoney puts amount on the card. There is no upper bound; only a non
// positive amount is refused.
func (c *Card) AddMoney(amount Money) bool {
	if !amount.IsPositive() {
		return false
	}
	c.balance = c.balance.Add(amount)
	return true
}

// TransferTo moves amount from c to other in a single step. Nothing moves if
// the amount is not positive, other is c itself, or c cannot cover it.
func (c *Card) TransferTo(other *Card, amount Money) bool {
	if other == nil || other == c {
		return false
	}
	if !amount.IsPositive() || c.balance.LessThan(amount) {
		return false
	}
	c.balance, other.balance = c.balance.Sub(amount), other.balance.Add(amount)
	return true
}

// IncrementViewCount records one more view of the card.
func (c *Card) IncrementViewCount() { c.views++ }

// String returns the display representation of the card.
func (c *Card) String() string {
	return fmt.Sprintf("Card Name: %s, Number: %s, Owner: %s, Expires: %s, Balance: %s, Views: %d",
		c.name, c.number, c.owner, c.expiration, c.balance, c.views)
}

// MarshalJSON encodes the card with the column names of the wallet file.
func (c *Card) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("cardName", c.name)
	w.Append("cardNumber", c.number)
	w.Append("name", c.owner)
	w.Append("expirationDate", c.expiration)
	w.Append("moneyAmount", c.balance)
	w.Append("viewCount", c.views)
	return w.MarshalJSON()
}
