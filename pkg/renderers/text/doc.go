// Package text renders consent documents as plain text for terminal previews.
package text
