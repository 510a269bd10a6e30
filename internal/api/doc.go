// Package api implements the HTTP handlers for the flashcard generation
// service. Handlers validate input, call into the workflow layer, and map
// internal errors to HTTP status codes without leaking internal details
// to clients.
package api
