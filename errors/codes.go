package errors

// Numeric codes of the built-in catalog.
const (
	CodeUnknown            = 1000
	CodeInvalidInput       = 1001
	CodeInvalidToken       = 1002
	CodeTokenExpired       = 1003
	CodeUnauthorized       = 1004
	CodeForbidden          = 1005
	CodeNotFound           = 1006
	CodeTimeout            = 1007
	CodeConnectionFailed   = 1008
	CodeServiceUnavailable = 1009
	CodeRateLimited        = 1010
	CodeExternalService    = 1011
	CodeDeserializeFailed  = 1012
	CodeInternal           = 1013
)

// Built-in catalog members.
var (
	Unknown            = Entry{Name: "Unknown", Code: CodeUnknown, Display: "unknown error"}
	InvalidInput       = Entry{Name: "InvalidInput", Code: CodeInvalidInput, Display: "invalid input"}
	InvalidToken       = Entry{Name: "InvalidToken", Code: CodeInvalidToken, Display: "token invalid"}
	TokenExpired       = Entry{Name: "TokenExpired", Code: CodeTokenExpired, Display: "token expired"}
	Unauthorized       = Entry{Name: "Unauthorized", Code: CodeUnauthorized, Display: "authentication required"}
	Forbidden          = Entry{Name: "Forbidden", Code: CodeForbidden, Display: "permission denied"}
	NotFound           = Entry{Name: "NotFound", Code: CodeNotFound, Display: "resource not found"}
	Timeout            = Entry{Name: "Timeout", Code: CodeTimeout, Display: "request timed out"}
	ConnectionFailed   = Entry{Name: "ConnectionFailed", Code: CodeConnectionFailed, Display: "connection failed"}
	ServiceUnavailable = Entry{Name: "ServiceUnavailable", Code: CodeServiceUnavailable, Display: "service unavailable"}
	RateLimited        = Entry{Name: "RateLimited", Code: CodeRateLimited, Display: "too many requests"}
	ExternalService    = Entry{Name: "ExternalService", Code: CodeExternalService, Display: "external service error"}
	DeserializeFailed  = Entry{Name: "DeserializeFailed", Code: CodeDeserializeFailed, Display: "response could not be deserialized"}
	Internal           = Entry{Name: "Internal", Code: CodeInternal, Display: "internal error"}
)

// Builtin is the catalog of error conditions raised by httpkit itself.
var Builtin = NewCatalog("builtin",
	Unknown,
	InvalidInput,
	InvalidToken,
	TokenExpired,
	Unauthorized,
	Forbidden,
	NotFound,
	Timeout,
	ConnectionFailed,
	ServiceUnavailable,
	RateLimited,
	ExternalService,
	DeserializeFailed,
	Internal,
)
