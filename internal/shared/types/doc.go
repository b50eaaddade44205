// Package types provides shared data structures for the post office
// simulator.
//
// Core Types:
//   - Service: one of the three counter types the office offers
//
// Every actor package (office, journal, sim) speaks in these types, so the
// service index arithmetic lives in exactly one place.
package types
