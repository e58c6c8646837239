package common

// EmailHeaderName is the request header carrying the account email on
// profile updates.
const EmailHeaderName = "email"

// RequestIDHeaderName is echoed on every response so that log lines can be
// matched with client reports.
const RequestIDHeaderName = "X-Request-ID"
