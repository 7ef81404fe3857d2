// Package oxp implements an HTTP client for an OXP tool-execution
// service: listing the available tools, executing a tool on behalf of a
// user, and checking service health.
//
// Credentials and the base URL come from the environment:
//
//	OXP_BEARER_TOKEN  primary bearer credential
//	OXP_API_KEY       fallback credential when no bearer token is set
//	OXP_BASE_URL      optional base URL override
//
// The client performs no retries; callers decide what to do with
// failures. Remote API errors are surfaced as [*StatusError] carrying the
// decoded error body, including any pending authorization requirements.
package oxp
