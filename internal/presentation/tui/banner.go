package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the Butterfly banner to w, tagged with version.
func PrintBanner(w io.Writer, version string) {
	p := termenv.ColorProfile()
	lines := []struct {
		text  string
		color string
	}{
		{` _           _   _             __ _       `, "#818cf8"},
		{`| |__  _   _| |_| |_ ___ _ __ / _| |_   _ `, "#a78bfa"},
		{`| '_ \| | | | __| __/ _ \ '__| |_| | | | |`, "#c084fc"},
		{`| |_) | |_| | |_| ||  __/ |  |  _| | |_| |`, "#e879f9"},
		{`|_.__/ \__,_|\__|\__\___|_|  |_| |_|\__, |`, "#f472b6"},
		{`                                    |___/ `, "#fb7185"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, termenv.String(l.text).Foreground(p.Color(l.color)))
	}
	fmt.Fprintf(w, "%s\n\n", termenv.String("v"+version).Faint())
}
