package cli

import (
	"io"
	"os"

	"github.com/aretw0/ordercheck/internal/config"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// colorProfile resolves a color mode against the output writer.
// "auto" enables color only when w is a terminal.
func colorProfile(mode string, w io.Writer) termenv.Profile {
	switch mode {
	case config.ColorAlways:
		return termenv.ANSI
	case config.ColorAuto:
		if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
			return termenv.EnvColorProfile()
		}
	}
	return termenv.Ascii
}
