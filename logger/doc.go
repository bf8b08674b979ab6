// Package logger provides structured logging built on zerolog.
//
// It exposes a thin Logger wrapper with component tagging, context field
// enrichment, and a named-logger registry so libraries can obtain a
// component-scoped logger without threading it through every call site.
package logger
