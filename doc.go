// Package wallet manages a small set of stored-value cards kept in a flat
// CSV file.
//
// The core functionalities include:
//   - Card Management: adding, removing, finding and viewing cards held in a
//     Wallet, in insertion order.
//   - Money Movements: spending from, loading onto and transferring between
//     cards while keeping every balance non-negative.
//   - Data Persistence: encoding and decoding a Wallet to and from a
//     human-readable CSV file that tolerates malformed rows.
//
// A Teller ties these together for the command line tools: every operation
// loads the file, mutates the wallet, rewrites the file and reports money
// movements to a Journal.
//
// The file is not locked. Two processes running commands on the same file at
// the same time can lose updates; the last writer wins.
package wallet
