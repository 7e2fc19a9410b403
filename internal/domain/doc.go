// Package domain contains the core entities of the flashcard library:
// decks, the categories inside them, and the words inside categories.
// Entities normalize and validate their own fields; persistence and
// transport live elsewhere.
//
// The study session scheduler is in the study subpackage.
package domain
