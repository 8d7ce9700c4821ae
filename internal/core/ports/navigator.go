package ports

// Navigator abstracts "send the user to a new path". The only destination
// this core ever forces is the login entry point, after a credential has
// been rejected; the attempted destination is deliberately discarded.
//
// Implementations must be idempotent: concurrent failing requests may each
// observe the same invalid credential and each call ToLogin.
type Navigator interface {
	ToLogin()
}
