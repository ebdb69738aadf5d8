// Package api implements the HTTP dispatch layer for the Lettr API.
//
// It owns the single request path: building the full URL, attaching the
// bearer credential, serializing JSON bodies, performing exactly one
// network call per invocation, and decoding the {message, data} response
// envelope or the error body. There are no retries and no caching; every
// method issues one request and reports its outcome through the error
// types in the apierrors package.
package api
