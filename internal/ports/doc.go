// Package ports defines the interfaces (ports) that connect the application
// layer to infrastructure adapters.
//
// In Clean Architecture / Hexagonal Architecture, ports are the boundaries
// between the application core and the outside world. They define what the
// application needs from external systems without specifying how those needs
// are fulfilled.
//
// # Port Interfaces
//
//   - [Authentication]: Signs a user in against the remote endpoint
//   - [HTTPPostClient]: Sends a POST request and returns status + body
//   - [CredentialsPrompter]: Asks the user for credentials
//   - [Logger]: Structured logging abstraction
//
// # Usage
//
// The application layer (internal/app) depends only on these interfaces.
// Infrastructure adapters (internal/adapters) implement them with resty,
// zerolog and the terminal.
package ports
