// Package tracker derives an investor's holdings and profit/loss from a flat
// log of equity trades made on two markets: the domestic exchange (TWD) and
// a foreign exchange (USD).
//
// The core functionalities include:
//   - Fee and Tax Calculation: Computing the brokerage fee, transaction tax,
//     and net settlement amount of a trade under each market's regime. The
//     domestic regime floors amounts to whole TWD; the foreign regime keeps
//     fractional USD.
//   - Ledger Management: Recording buy and sell transactions in chronological
//     order, deleting them individually or per ticker, and keeping manual
//     mark prices alongside.
//   - Accounting Engine: A pure replay of the full transaction log into open
//     positions with a moving weighted-average cost basis, and a per-ticker
//     realized-gain ledger.
//   - Data Persistence: Encoding and decoding the whole state (transactions,
//     settings, manual prices) to a single human-readable JSON document.
//
// This package serves as the foundational logic for the `trk` command-line
// tool, ensuring that all operations are consistent and based on a single
// source of truth.
package tracker
