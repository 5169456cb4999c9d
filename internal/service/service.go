// Package service contains the business logic.
//
// It sits between the handler and repository layers: it receives
// validated data from the handler, applies the domain rules and calls
// the store.
package service
