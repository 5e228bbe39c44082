// Package httpclient sends GET, POST, HEAD and file upload requests and
// decodes their responses.
//
// An Adapter owns the configuration shared by every request: timeout, the
// fixed legacy User-Agent, default headers, credentials and the text charset. Each send
// is traced as an "http.request" span and recorded on observability
// HTTPMetrics.
//
//	a, err := httpclient.New(httpclient.Config{Name: "orders", Timeout: 5 * time.Second})
//
// Free functions bind the URL per call. Raw parameters and query models use
// distinct entry points:
//
//	user, err := httpclient.GetJSON[User](ctx, a, "https://api.example.com/user",
//	    form.NewData().Set("id", 5))
//	user, err = httpclient.GetJSONModel[User](ctx, a, "https://api.example.com/user", query)
//
//	status := httpclient.HeadStatus(ctx, a, "https://api.example.com")
//	// http.StatusExpectationFailed when unreachable
//
// Per-request options attach a cookie jar, a Referer, extra headers or
// different credentials:
//
//	jar := httpclient.NewCookieJar()
//	text, err := httpclient.GetString(ctx, a, loginURL, nil,
//	    httpclient.WithCookies(jar), httpclient.WithReferer(homeURL))
//
// Decode turns response text into a typed value. Text that cannot be decoded,
// or that decodes to null, returns an *errors.ServiceError with code
// errors.CodeDeserializeFailed.
//
// The rest subpackage binds a client to one base URL.
package httpclient
