// Package store defines the persistence interfaces for decks, categories
// and words, the errors they return, and a transaction helper shared by
// every implementation.
package store
