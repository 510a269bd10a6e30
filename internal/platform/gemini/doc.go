// Package gemini provides an implementation of the completion.Completer
// interface backed by Google's Gemini API.
//
// This package is an infrastructure adapter in the hexagonal architecture,
// connecting the workflow core to Google's external Gemini service without
// exposing the details of the external service to the core. It handles
// authentication, request formatting, retry of transient faults with
// exponential backoff, and translation of API errors into the completion
// package's error taxonomy.
package gemini
