// Package api provides HTTP client functionality for communicating with the
// Help Scout Docs API. It handles Basic Authentication, request/response
// serialization, and translation of non-success HTTP statuses into typed
// errors.
//
// # Authentication
//
// The Docs API authenticates with HTTP Basic Auth where the API key occupies
// the username slot and a fixed placeholder ("X") occupies the password slot.
// Credentials are attached to every request.
//
// # Error Handling
//
// [Client.Do] never retries. A response outside the 2xx range is returned as
// an [*APIError] carrying the numeric status code and the raw response body.
// Transport-level failures (connection errors, timeouts) are wrapped in
// [*NetworkError] and otherwise surfaced unchanged.
//
// # Thread Safety
//
// The [Client] type holds no mutable state after construction and is safe
// for concurrent use.
package api
