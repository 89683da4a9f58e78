// Package pipeline streams sequence records through a Processor on a pool of
// workers and hands the results to a visit callback in input order.
//
// The only contract to implement is Processor (Process). This keeps the
// pipeline swappable and testable.
package pipeline
