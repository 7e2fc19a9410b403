// Package service contains the library use cases: managing decks, the
// categories inside them and the words inside categories, including bulk
// import. Services validate input through the domain entities, call the
// store interfaces from internal/store and log with the request-scoped
// logger.
//
// Study sessions live in the study_session subpackage.
package service
