// Package logger configures structured logging for the application.
package logger
