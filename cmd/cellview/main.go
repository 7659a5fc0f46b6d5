// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/cellview/main.go
// Summary: Syntax-highlighting file viewer built on the cell model.
// Usage: Run `cellview file.go`; add -json to dump the cell grid instead.

package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/gdamore/tcell/v2"
	enry "github.com/go-enry/go-enry/v2"
	"golang.org/x/term"

	"github.com/framegrace/texelcell/cell"
	"github.com/framegrace/texelcell/color"
	"github.com/framegrace/texelcell/hyperlink"
	"github.com/framegrace/texelcell/render"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	fs := flag.NewFlagSet("cellview", flag.ContinueOnError)
	jsonOut := fs.Bool("json", false, "Dump the highlighted cell grid as JSON instead of rendering")
	langName := fs.String("lang", "", "Force a language instead of detecting one")
	themeName := fs.String("theme", "monokai", "Chroma style name")
	unicodeLevel := fs.Uint("unicode", 0, "Unicode width conformance level (0 = latest)")

	if err := fs.Parse(os.Args[1:]); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("usage: cellview [flags] <file>")
	}
	path := fs.Arg(0)

	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	version := cell.UnicodeVersion(*unicodeLevel)

	lang := *langName
	if lang == "" {
		lang = enry.GetLanguage(path, content)
	}
	lexer := lexers.Get(lang)
	if lexer == nil {
		lexer = lexers.Match(path)
	}
	if lexer == nil {
		lexer = lexers.Analyse(string(content))
	}
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	style := styles.Get(*themeName)
	if style == nil {
		style = styles.Fallback
	}

	rows, err := highlight(lexer, style, string(content), version)
	if err != nil {
		return err
	}
	if err := linkify(rows); err != nil {
		return err
	}

	if *jsonOut || !term.IsTerminal(int(os.Stdout.Fd())) {
		enc := json.NewEncoder(os.Stdout)
		return enc.Encode(rows)
	}
	return view(path, lang, rows)
}

// tokenChanges maps one chroma style entry onto attribute deltas.
func tokenChanges(entry chroma.StyleEntry) []cell.AttributeChange {
	var changes []cell.AttributeChange
	if entry.Colour.IsSet() {
		changes = append(changes, cell.ForegroundChange(
			color.FromRGB(entry.Colour.Red(), entry.Colour.Green(), entry.Colour.Blue())))
	}
	if entry.Background.IsSet() {
		changes = append(changes, cell.BackgroundChange(
			color.FromRGB(entry.Background.Red(), entry.Background.Green(), entry.Background.Blue())))
	}
	if entry.Bold == chroma.Yes {
		changes = append(changes, cell.IntensityChange(cell.IntensityBold))
	}
	if entry.Italic == chroma.Yes {
		changes = append(changes, cell.ItalicChange(true))
	}
	if entry.Underline == chroma.Yes {
		changes = append(changes, cell.UnderlineChange(cell.UnderlineSingle))
	}
	return changes
}

// highlight tokenizes the source and lays the tokens out as cell rows.
// Each token resets to blank attributes and replays its style deltas, so
// token boundaries can never leak styling into their neighbors.
func highlight(lexer chroma.Lexer, style *chroma.Style, source string, version cell.UnicodeVersion) ([][]cell.Cell, error) {
	it, err := lexer.Tokenise(nil, source)
	if err != nil {
		return nil, fmt.Errorf("tokenise: %w", err)
	}

	rows := [][]cell.Cell{nil}
	row := 0
	for token := it(); token != chroma.EOF; token = it() {
		attrs := cell.BlankAttributes()
		for _, change := range tokenChanges(style.Get(token.Type)) {
			attrs.Apply(change)
		}
		for _, line := range strings.SplitAfter(token.Value, "\n") {
			if line == "" {
				continue
			}
			text, newline := strings.CutSuffix(line, "\n")
			text = strings.ReplaceAll(text, "\t", "    ")
			for _, g := range cell.Graphemes(text) {
				rows[row] = append(rows[row], cell.NewGrapheme(g, attrs.Clone(), version))
			}
			if newline {
				rows = append(rows, nil)
				row++
			}
		}
	}
	return rows, nil
}

// linkify attaches implicit hyperlinks to cells covered by a URL match,
// so terminals that understand OSC 8 make them clickable.
func linkify(rows [][]cell.Cell) error {
	rule, err := hyperlink.NewRule(`https?://[^\s"'<>)]+`, "$0")
	if err != nil {
		return err
	}
	rules := []*hyperlink.Rule{rule}

	for _, row := range rows {
		var sb strings.Builder
		offsets := make([]int, len(row))
		for i := range row {
			offsets[i] = sb.Len()
			sb.WriteString(row[i].Str())
		}
		for _, m := range hyperlink.FindMatches(rules, sb.String()) {
			for i := range row {
				if offsets[i] >= m.Start && offsets[i] < m.End {
					row[i].Attrs().SetHyperlink(m.Link)
				}
			}
		}
	}
	return nil
}

// view renders the rows full screen with basic scrolling.
func view(path, lang string, rows [][]cell.Cell) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	top := 0
	for {
		w, h := screen.Size()
		body := h - 1
		maxTop := len(rows) - body
		if maxTop < 0 {
			maxTop = 0
		}
		if top > maxTop {
			top = maxTop
		}
		if top < 0 {
			top = 0
		}

		screen.Clear()
		header := cell.BlankAttributes()
		header.SetReverse(true)
		title := fmt.Sprintf(" %s  [%s]  %d/%d ", path, lang, top+1, len(rows))
		render.DrawLine(screen, 0, 0, render.Cells(render.FitString(title, w), header, cell.DefaultUnicodeVersion))
		for y := 0; y < body && top+y < len(rows); y++ {
			render.DrawLine(screen, 0, y+1, rows[top+y])
		}
		screen.Show()

		switch ev := screen.PollEvent().(type) {
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			switch {
			case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC, ev.Rune() == 'q':
				return nil
			case ev.Key() == tcell.KeyUp, ev.Rune() == 'k':
				top--
			case ev.Key() == tcell.KeyDown, ev.Rune() == 'j':
				top++
			case ev.Key() == tcell.KeyPgUp:
				top -= body
			case ev.Key() == tcell.KeyPgDn, ev.Rune() == ' ':
				top += body
			case ev.Rune() == 'g':
				top = 0
			case ev.Rune() == 'G':
				top = len(rows)
			}
		}
	}
}
