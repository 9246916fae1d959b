// Package hledger parses the amounts, tags and records of plain text
// accounting journals (the "ledger" family of file formats) and renders them
// back to canonical text.
//
// The core is the amount grammar. An amount mixes a number, an optional sign
// and a currency or commodity label that can come before or after the
// number:
//
//	100 EUR     -100 EUR     EUR 100     -EUR 100     EUR -100
//	1 000,50 EUR             "MY FUND 2" 10           $12.5
//
// Numbers are kept as exact decimals (shopspring/decimal), digits may be
// grouped by single spaces and the decimal separator is either '.' or ','.
// The suffix form ("100 EUR") is always tried before the prefix form
// ("EUR 100").
//
// On top of the amounts, the package provides:
//   - Tags: "name:" and "name:value" annotations found in comments.
//   - Postings and Price directives, and their canonical rendering.
//   - A small journal codec (DecodeJournal, EncodeJournal) that reads
//     transactions, price and include directives, and comments.
//
// Scan functions consume a prefix of their input and return the rest, Parse
// functions require the whole input. Failures are reported as *ParseError
// wrapping one of the package sentinel errors, at the offset where they
// occurred.
package hledger
