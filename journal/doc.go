// Package journal appends a human-readable record of every money movement
// made on a wallet.
//
// Each line reads:
//
//	Mon Jan  2 15:04:05 2006 : Card: 4111, Type: LOAD, Amount: 50, Ref: 6f1c...
//
// The entries of one operation, like the two sides of a transfer, share the
// same Ref. The file is for people: nothing in the wallet reads it back.
package journal
