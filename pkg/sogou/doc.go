// Package sogou is a client for the Sogou machine-translation HTTP API.
//
// Each call is signed with the caller's pid and secret key: a fresh random
// salt is generated and the request carries md5(pid + text + salt + key).
// Error codes reported by the service are mapped to typed errors.
//
//	client, err := sogou.New(pid, secretKey, sogou.WithTimeout(5*time.Second))
//	if err != nil {
//	    return err
//	}
//	out, err := client.Translate(ctx, "Hello, world!", sogou.English, sogou.ChineseSimplified)
//
// Failures are one of ConfigurationError, ValidationError, TransportError,
// ParseError, RemoteServiceError or UnknownRemoteError; use errors.As to
// inspect them.
package sogou
