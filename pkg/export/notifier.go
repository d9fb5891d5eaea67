package export

import (
	"fmt"
	"io"
)

// Notifier receives the user-facing outcome of an export.
type Notifier interface {
	Success(message string)
	Error(message string)
}

type nopNotifier struct{}

func (nopNotifier) Success(string) {}
func (nopNotifier) Error(string)   {}

// WriterNotifier prints notifications as single lines.
type WriterNotifier struct {
	Out io.Writer
	Err io.Writer
}

// Success prints message to Out.
func (n WriterNotifier) Success(message string) {
	if n.Out != nil {
		fmt.Fprintln(n.Out, message)
	}
}

// Error prints message to Err, falling back to Out.
func (n WriterNotifier) Error(message string) {
	w := n.Err
	if w == nil {
		w = n.Out
	}
	if w != nil {
		fmt.Fprintln(w, message)
	}
}

var successMessages = map[string]string{
	"pdf":  "PDF downloaded successfully!",
	"docx": "Word document downloaded successfully!",
	"html": "HTML preview saved successfully!",
	"text": "Text preview saved successfully!",
}

// SuccessMessage returns the notification shown after exporting format.
func SuccessMessage(format string) string {
	if msg, ok := successMessages[format]; ok {
		return msg
	}
	return fmt.Sprintf("%s file saved successfully!", format)
}
