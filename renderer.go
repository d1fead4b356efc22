package argon

import (
	"strings"

	"github.com/charmbracelet/log"

	"github.com/napalu/argon/util"
)

// renderer performs one render pass. It holds only immutable views assembled
// at the start of the pass, so independent Help trees render safely in
// parallel and repeated passes over the same inputs are byte-identical.
type renderer struct {
	help   *Help
	cfg    Config
	reg    *PatternRegistry
	width  int
	logger *log.Logger
}

// renderRow is one label/body pair prepared for layout. The label arrives as
// pre-styled fragments; its plain text drives column-width computation.
type renderRow struct {
	label StyledLine
	body  string
	// seeds are pre-classified ranges of body (decorations, usage markup)
	// that participate in overlap resolution ahead of every rule.
	seeds []Span
	base  StyleCategory
	// flush rows render without the configured indent (usage, header,
	// description, epilog).
	flush bool
	// noWrap exempts the body from wrapping (the usage line contract).
	noWrap bool
	// hang indents continuation lines by a fixed amount instead of the
	// label column (usage smart breaks).
	hang int
}

type renderSection struct {
	title string
	rows  []renderRow
}

// Render lays out the complete help document: every section in canonical
// order, wrapped, aligned and tagged with style categories. It owns no state
// across calls.
func (h *Help) Render() (*LayoutResult, error) {
	cfg := h.effectiveConfig()
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	width := cfg.MaxWidth
	if width == 0 {
		width = util.TerminalWidth(defaultRenderWidth)
	}

	r := &renderer{
		help:   h,
		cfg:    cfg,
		reg:    buildPatternRegistry(h, cfg),
		width:  width,
		logger: h.effectiveLogger(),
	}

	result := &LayoutResult{gap: cfg.SectionGap}
	for _, section := range r.sections() {
		if len(section.rows) == 0 {
			continue
		}
		result.Sections = append(result.Sections, r.layoutSection(section))
	}
	return result, nil
}

// Format renders the help document as plain text. The returned string always
// ends with exactly one newline.
func (h *Help) Format() (string, error) {
	result, err := h.Render()
	if err != nil {
		return "", err
	}
	return result.Plain(), nil
}

// sections assembles the document in canonical order: header, usage,
// description, commands, positional arguments, options, user-defined groups,
// custom sections, epilog. Built-in sections always precede custom ones;
// custom sections keep registration order.
func (r *renderer) sections() []renderSection {
	var out []renderSection

	if r.help.header != "" {
		out = append(out, r.freeTextSection("", r.help.header, CategoryProg))
	}

	out = append(out, renderSection{rows: []renderRow{r.usageRow()}})

	if r.help.description != "" {
		out = append(out, r.freeTextSection("", r.help.description, CategoryText))
	}

	if r.help.commands.Len() > 0 {
		section := renderSection{title: "Commands"}
		for pair := r.help.commands.Oldest(); pair != nil; pair = pair.Next() {
			sub := pair.Value
			section.rows = append(section.rows, renderRow{
				label: StyledLine{{Text: sub.name, Category: CategoryArg}},
				body:  sub.description,
				base:  CategoryText,
			})
		}
		out = append(out, section)
	}

	positionals := renderSection{title: "Positional Arguments"}
	options := renderSection{title: "Options"}
	var userGroups []renderSection
	groupIndex := map[string]int{}
	for _, arg := range r.help.args {
		row := r.argumentRow(arg)
		switch {
		case arg.Group != "":
			i, ok := groupIndex[arg.Group]
			if !ok {
				i = len(userGroups)
				groupIndex[arg.Group] = i
				userGroups = append(userGroups, renderSection{title: arg.Group})
			}
			userGroups[i].rows = append(userGroups[i].rows, row)
		case arg.positional:
			positionals.rows = append(positionals.rows, row)
		default:
			options.rows = append(options.rows, row)
		}
	}
	out = append(out, positionals, options)
	out = append(out, userGroups...)

	for _, section := range r.help.effectiveSections() {
		custom := renderSection{title: section.Title}
		for _, row := range section.Rows {
			rr := renderRow{body: row.Body, base: CategoryText}
			if row.Label != "" {
				category := CategoryMetavar
				if strings.HasPrefix(row.Label, "-") {
					category = CategoryArg
				}
				rr.label = StyledLine{{Text: row.Label, Category: category}}
			}
			custom.rows = append(custom.rows, rr)
		}
		out = append(out, custom)
	}

	if r.help.epilog != "" {
		out = append(out, r.freeTextSection("", r.help.epilog, CategoryText))
	}

	return out
}

func (r *renderer) freeTextSection(title, body string, base StyleCategory) renderSection {
	return renderSection{
		title: title,
		rows:  []renderRow{{body: body, base: base, flush: true}},
	}
}

// argumentRow builds the label fragments and decorated body for one argument.
func (r *renderer) argumentRow(arg *Argument) renderRow {
	row := renderRow{base: CategoryHelp, body: arg.Help}

	if arg.positional {
		row.label = StyledLine{{Text: arg.metavar(), Category: CategoryMetavar}}
	} else {
		var label StyledLine
		if arg.Short != "" {
			label = append(label, Fragment{Text: "-" + arg.Short, Category: CategoryArg})
			if arg.Long != "" {
				label = append(label, Fragment{Text: ", ", Category: CategoryText})
			}
		} else {
			// Keep long names aligned with flags that carry a short form.
			label = append(label, Fragment{Text: "    ", Category: CategoryText})
		}
		if arg.Long != "" {
			label = append(label, Fragment{Text: "--" + arg.Long, Category: CategoryArg})
		}
		if mv := arg.metavar(); mv != "" {
			label = append(label,
				Fragment{Text: " ", Category: CategoryText},
				Fragment{Text: mv, Category: CategoryMetavar})
		}
		row.label = label
	}

	for _, deco := range arg.decorations() {
		start := len(row.body) + 1
		row.body += " " + deco.Text
		row.seeds = append(row.seeds, Span{Start: start, End: start + len(deco.Text), Category: deco.Category})
	}
	return row
}

// usageRow assembles the usage line from registered metadata:
// "Usage: prog [--flag METAVAR] ... POSITIONAL command ...". Continuation
// lines, when wrapping is allowed, hang under the end of the program name.
func (r *renderer) usageRow() renderRow {
	var sb strings.Builder
	var seeds []Span

	write := func(text string, category StyleCategory) {
		if category != CategoryText && text != "" {
			seeds = append(seeds, Span{Start: sb.Len(), End: sb.Len() + len(text), Category: category})
		}
		sb.WriteString(text)
	}

	write("Usage:", CategoryGroup)
	write(" ", CategoryText)
	prog := r.help.progPhrase()
	write(prog, CategoryText) // highlighted as prog by the registry
	hang := displayWidth("Usage: " + prog + " ")

	for _, arg := range r.help.args {
		if arg.positional {
			continue
		}
		write(" ", CategoryText)
		if !arg.Required {
			write("[", CategoryText)
		}
		token := "--" + arg.Long
		if arg.Long == "" {
			token = "-" + arg.Short
		}
		write(token, CategoryText) // option token, registry-highlighted
		if mv := arg.metavar(); mv != "" {
			write(" ", CategoryText)
			write(mv, CategoryMetavar)
		}
		if !arg.Required {
			write("]", CategoryText)
		}
	}
	for _, arg := range r.help.args {
		if !arg.positional {
			continue
		}
		write(" ", CategoryText)
		write(arg.metavar(), CategoryMetavar)
	}
	if r.help.commands.Len() > 0 {
		write(" ", CategoryText)
		write("command", CategoryArg)
		write(" ...", CategoryText)
	}

	return renderRow{
		body:   sb.String(),
		seeds:  seeds,
		base:   CategoryText,
		flush:  true,
		noWrap: r.cfg.NoWrapUsage,
		hang:   hang,
	}
}

// layoutSection renders one section: styled title, then every row padded to
// the section's shared label column and wrapped to the render width.
func (r *renderer) layoutSection(section renderSection) RenderedSection {
	rendered := RenderedSection{Title: section.title}
	if section.title != "" {
		rendered.Lines = append(rendered.Lines, StyledLine{
			{Text: section.title + ":", Category: CategoryGroup},
		})
	}

	var labels []string
	for _, row := range section.rows {
		if plain := row.label.Plain(); plain != "" {
			labels = append(labels, plain)
		}
	}
	col := columnWidth(labels, r.cfg.ArgColumnWidth)

	for _, row := range section.rows {
		rendered.Lines = append(rendered.Lines, r.layoutRow(row, col)...)
	}
	return rendered
}

// layoutRow wraps and aligns one row. The first output line carries the
// padded label; continuation lines indent to the label column's end (or to
// the row's hanging indent for the usage line). A label wider than a capped
// column is emitted on its own line with the body below it.
func (r *renderer) layoutRow(row renderRow, col int) []StyledLine {
	indent := r.cfg.Indent
	if row.flush {
		indent = 0
	}
	labelPlain := row.label.Plain()
	hasLabel := labelPlain != ""

	contIndent := indent
	bodyWidth := r.width - indent
	if col > 0 && hasLabel {
		contIndent = indent + col + gutterWidth
		bodyWidth = r.width - contIndent
	}
	if bodyWidth < 1 {
		bodyWidth = 1
	}

	var prefix StyledLine
	labelOverflow := false
	if hasLabel {
		overhang := displayWidth(labelPlain)
		if overhang > col {
			labelOverflow = true
		}
		prefix = append(StyledLine{{Text: pad(indent), Category: CategoryText}}, row.label...)
		if !labelOverflow {
			prefix = append(prefix, Fragment{Text: pad(col-overhang) + pad(gutterWidth), Category: CategoryText})
		}
	} else {
		prefix = StyledLine{{Text: pad(indent), Category: CategoryText}}
	}

	var out []StyledLine
	if labelOverflow {
		out = append(out, prefix)
		prefix = StyledLine{{Text: pad(contIndent), Category: CategoryText}}
	}

	offset := 0
	for _, bodyLine := range strings.Split(row.body, "\n") {
		seeds := projectSpans(row.seeds, lineRange{offset, offset + len(bodyLine)}, 0)
		out = append(out, r.layoutBodyLine(bodyLine, row, seeds, bodyWidth, prefix, contIndent)...)
		offset += len(bodyLine) + 1
		prefix = nil
	}
	if len(out) == 0 {
		out = append(out, prefix)
	}
	return out
}

// layoutBodyLine normalizes, highlights and wraps one logical body line,
// re-projecting highlight spans onto each wrapped output line.
func (r *renderer) layoutBodyLine(text string, row renderRow, seeds []Span, bodyWidth int, prefix StyledLine, contIndent int) []StyledLine {
	if r.cfg.NormalizeBullets {
		normalized := normalizeBullet(text, r.cfg.BulletChar, r.cfg.BulletSet)
		if delta := len(normalized) - len(text); delta != 0 {
			// The marker sits at the line head; every seed follows it.
			for i := range seeds {
				seeds[i].Start += delta
				seeds[i].End += delta
			}
		}
		text = normalized
	}

	var spans []Span
	if r.cfg.DynHighlight {
		text, spans = r.reg.highlight(text, seeds, r.logger)
	} else {
		spans = append(spans, seeds...)
	}

	var ranges []lineRange
	if row.noWrap {
		ranges = []lineRange{{0, len(text)}}
	} else {
		rest := bodyWidth
		if row.hang > 0 {
			rest = bodyWidth - row.hang
		}
		ranges = wrapRanges(text, bodyWidth, rest)
	}

	var out []StyledLine
	for i, lr := range ranges {
		lineText := text[lr.start:lr.end]
		lineSpans := projectSpans(spans, lr, 0)
		styled := styledFragments(lineText, lineSpans, row.base)

		var line StyledLine
		switch {
		case i == 0 && prefix != nil:
			line = append(line, prefix...)
		case row.hang > 0:
			line = append(line, Fragment{Text: pad(contIndent + row.hang), Category: CategoryText})
		default:
			line = append(line, Fragment{Text: pad(contIndent), Category: CategoryText})
		}
		line = append(line, styled...)
		out = append(out, line)
	}
	return out
}
