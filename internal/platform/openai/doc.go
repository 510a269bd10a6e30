// Package openai provides an implementation of the completion.Completer
// interface using the OpenAI-compatible chat completions protocol.
// Works with any endpoint that supports it, including hosted OpenAI and a
// local Ollama server exposing its /v1 compatibility API.
package openai
