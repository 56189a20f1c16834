package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/andyrewlee/tint"
	"github.com/andyrewlee/tint/internal/logging"
	"github.com/andyrewlee/tint/theme"
)

// Version info set by GoReleaser via ldflags
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	showVersion := flag.Bool("version", false, "print version and exit")
	themePath := flag.String("theme", "", "path to a TOML theme file")
	logDir := flag.String("log", "", "directory for debug logs")
	flag.Parse()

	if *showVersion {
		fmt.Printf("tint %s (commit: %s, built: %s)\n", version, commit, date)
		return
	}

	if *logDir != "" {
		if err := logging.Initialize(*logDir, logging.LevelDebug); err != nil {
			fmt.Fprintf(os.Stderr, "tint: %v\n", err)
			os.Exit(1)
		}
	}

	err := run(os.Stdout, flag.Args(), *themePath)
	logging.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "tint: %v\n", err)
		os.Exit(1)
	}
}

func run(w io.Writer, args []string, themePath string) error {
	if themePath == "" {
		printSwatches(w)
		return nil
	}

	th, err := theme.Load(themePath)
	if err != nil {
		logging.WithError(err, "loading theme")
		return err
	}
	logging.Debug("loaded theme %s with %d styles", themePath, len(th.Names()))

	if len(args) == 0 {
		printTheme(w, th)
		return nil
	}

	name := args[0]
	st, ok := th.Style(name)
	if !ok {
		return fmt.Errorf("no style named %q in %s", name, themePath)
	}
	text := strings.Join(args[1:], " ")
	if text == "" {
		text = name
	}
	if _, err := st.Fprint(w, text); err != nil {
		return err
	}
	_, err = fmt.Fprintln(w)
	return err
}

// printSwatches shows every named color as foreground and background,
// plus one sample per effect.
func printSwatches(w io.Writer) {
	for c := tint.Black; c <= tint.BrightWhite; c++ {
		if c == tint.Default {
			// SGR 39/49 reset slots to the terminal's own colors; there is
			// nothing to show for them.
			continue
		}
		name := c.String()
		fg := tint.New().Color(c).Sprint(name)
		bg := tint.New().OnColor(c).Sprint(strings.Repeat(" ", 8))
		fmt.Fprintf(w, "%-16s %s %s\n", name, bg, fg)
	}
	fmt.Fprintln(w)
	for e := tint.Bold; e <= tint.Strikethrough; e++ {
		fmt.Fprintf(w, "%-16s %s\n", e.String(), tint.New().Effect(e).Sprint("sample"))
	}
}

// printTheme lists every theme style rendered in itself.
func printTheme(w io.Writer, th *theme.Theme) {
	for _, name := range th.Names() {
		st, _ := th.Style(name)
		fmt.Fprintf(w, "%-20s %s\n", name, st.Sprint(name))
	}
}
