// Package completion defines the boundary between the workflow core and
// external text-generation services. It exposes a single-shot prompt
// completion interface, allowing the pipeline to stay agnostic to which
// LLM provider (Gemini, OpenAI-compatible, local Ollama) backs it.
package completion
