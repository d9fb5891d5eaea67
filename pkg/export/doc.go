// Package export turns a filled-in form into a saved file. It enforces the
// project-title precondition, projects the form through its language
// template, encodes it with the renderer registered for the requested format
// and hands the bytes to a Saver.
package export
