// Package security holds the gin middleware protecting the web shell's forms:
// CSRF tokens via gorilla/csrf and a fixed set of response headers.
package security
