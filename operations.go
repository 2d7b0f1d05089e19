package wallet

// AddCard creates a card with a zero balance and appends it to the wallet.
// The number and the owner are required.
func (w *Wallet) AddCard(name, number, owner, expiration string) (*Card, error) {
	if number == "" || owner == "" {
		return nil, ErrEmptyField
	}
	c := NewCard(name, number, owner, expiration)
	w.Add(c)
	return c, nil
}

// Spend takes amount from the card with this number.
func (w *Wallet) Spend(number string, amount Money) (*Card, error) {
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}
	c := w.Find(number)
	if c == nil {
		return nil, ErrCardNotFound
	}
	if !c.RemoveMoney(amount) {
		return c, ErrInsufficientBalance
	}
	return c, nil
}

// Load puts amount on the card with this number.
func (w *Wallet) Load(number string, amount Money) (*Card, error) {
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}
	c := w.Find(number)
	if c == nil {
		return nil, ErrCardNotFound
	}
	c.AddMoney(amount)
	return c, nil
}

// Transfer moves amount between two distinct cards.
//
// The same number on both sides is rejected before any lookup. When cards
// are missing, the returned *MissingCardsError names every missing side.
func (w *Wallet) Transfer(from, to string, amount Money) error {
	if from == to {
		return ErrSameCard
	}
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}
	src, dst := w.Find(from), w.Find(to)
	if src == nil || dst == nil {
		missing := &MissingCardsError{}
		if src == nil {
			missing.Source = from
		}
		if dst == nil {
			missing.Target = to
		}
		return missing
	}
	if !src.TransferTo(dst, amount) {
		return ErrInsufficientBalance
	}
	return nil
}
