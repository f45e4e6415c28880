// Package service implements the aid coordination use cases on top of the
// domain repositories. Every mutation is decided by domain.Lifecycle against
// the current row and then written as a conditional statement, so a decision
// made on stale data never reaches the database.
package service
