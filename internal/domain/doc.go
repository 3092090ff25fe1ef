// Package domain contains the core entities and errors of the sign-in flow.
//
// This package is the innermost layer of the Clean Architecture. It has no
// dependencies on infrastructure concerns (HTTP, file system, logging).
//
// # Entities
//
//   - [AuthenticationParams]: the credentials submitted by the caller
//   - [AccountModel]: the session returned by a successful sign-in
//
// # Errors
//
// The remote endpoint's answer is classified into [ErrInvalidCredentials]
// and [ErrUnexpected]. Both are sentinels and should be checked with errors.Is.
package domain
