package redmask

import (
	"io"

	"github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	// logger is for progress messages, stamped like "[Oct 19 09:41 AM] ..."
	logger = logging.MustGetLogger("redmask")

	logFormat = logging.MustStringFormatter(`[%{time:Jan 02 03:04 PM}] %{message}`)

	// commas formats integers with thousands separators (1,234,567)
	commas = message.NewPrinter(language.English)
)

// SetupLogging sends progress messages to w. Debug messages are only
// written if verbose is set.
func SetupLogging(w io.Writer, verbose bool) {
	backend := logging.NewBackendFormatter(logging.NewLogBackend(w, "", 0), logFormat)
	leveled := logging.AddModuleLevel(backend)
	if verbose {
		leveled.SetLevel(logging.DEBUG, "")
	} else {
		leveled.SetLevel(logging.INFO, "")
	}
	logging.SetBackend(leveled)
}
