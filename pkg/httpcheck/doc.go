// Package httpcheck sends a single raw HTTP/1.1 request over TCP and returns
// the unparsed response.
//
// It is a diagnostic tool: the response is not parsed, chunked encoding and
// keep-alive are not handled, and there is no TLS, redirect following or
// retrying. The request always carries "Connection: close" so the response
// ends when the peer closes the socket.
//
// # Usage
//
//	req := httpcheck.NewRequest("example.com", 80)
//	req.Path = "/healthz"
//	req.Headers = []string{"Accept: */*"}
//
//	raw, err := httpcheck.Perform(ctx, req, 5*time.Second)
//	if errors.Is(err, httpcheck.ErrConnectionFailure) {
//	    // host unreachable, refused, timed out, ...
//	}
//
// Or with a configured client:
//
//	c := httpcheck.New(httpcheck.WithTimeout(2*time.Second), httpcheck.WithLogger(logger))
//	raw, err := c.Do(ctx, req)
//
// # Encoding
//
// The request is encoded as ASCII; characters outside ASCII are dropped. The
// response is decoded as UTF-8 with malformed bytes replaced by U+FFFD.
package httpcheck
