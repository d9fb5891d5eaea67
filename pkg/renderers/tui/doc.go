// Package tui runs an interactive terminal session that fills in a consent
// form. Prompts go through a PromptDriver; the default driver uses survey.
package tui
