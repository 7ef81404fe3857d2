// Package tool manages callable tools for one agent configuration.
//
// A [Registry] holds tool definitions alongside their handlers. The
// [Bridge] turns remote catalog entries into registrations whose handlers
// forward arguments to the OXP execution endpoint on behalf of a specific
// user, raising an authorization interruption when the remote call
// reports a missing credential.
package tool
