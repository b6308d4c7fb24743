package argparse

import (
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"text/template"

	"github.com/mitchellh/go-wordwrap"
)

// helpWrapWidth is the column at which option help text is wrapped.
const helpWrapWidth = 54

var helpTemplateString = `
{{- range $i, $u := .Usages}}
{{- if $i}}   or: {{else}}usage: {{end}}{{$u}}
{{end}}
{{- if .Description}}
{{.Description}}
{{end}}
{{- range .Groups}}
{{- if .Header}}

{{.Header}}
{{- end}}
{{- range .Options}}
{{- $inv := .Invocation}}
{{- range $j, $line := .HelpLines}}
\t    \t{{if not $j}}{{$inv}}{{end}}\t  {{$line}}
{{- end}}
{{- end}}
{{- end}}
{{- if .Epilog}}

{{.Epilog}}
{{- end}}
`

var helpTemplate = template.Must(template.New("help").Parse(helpTemplateString))

// HelpCallback renders the parser's full usage text to its HelpWriter and
// ends parsing with ErrHelp. It is bound to -h/--help by the built-in Help
// option, and may be attached to any option via WithCallback.
func HelpCallback(p *Parser, opt *Option) error {
	w := p.HelpWriter
	if w == nil {
		w = os.Stdout
	}
	p.WriteHelp(w)
	return ErrHelp
}

// HelpString renders the full usage text as a string.
func (p *Parser) HelpString() string {
	sb := strings.Builder{}
	p.WriteHelp(&sb)
	return sb.String()
}

// WriteHelp renders the usage lines, the description, every option in
// declaration order grouped at Group descriptors, and the epilog. It reads
// only the option table, never parse state.
func (p *Parser) WriteHelp(w io.Writer) {
	data := struct {
		Usages      []string
		Description string
		Groups      []helpGroup
		Epilog      string
	}{
		Usages:      p.usages,
		Description: p.description,
		Groups:      helpGroups(p.options),
		Epilog:      p.epilog,
	}

	tw := newEscapedTabWriter(w)
	if err := helpTemplate.Execute(tw, data); err != nil {
		panic(err)
	}
	tw.Flush()
}

type helpGroup struct {
	Header  string
	Options []helpOption
}

type helpOption struct {
	Invocation string
	HelpLines  []string
}

func helpGroups(opts Options) []helpGroup {
	groups := []helpGroup{{}}
	for i := range opts {
		o := &opts[i]
		switch o.Kind {
		case KindEnd:
			return groups
		case KindGroup:
			groups = append(groups, helpGroup{Header: o.Help})
		default:
			g := &groups[len(groups)-1]
			g.Options = append(g.Options, helpOption{
				Invocation: invocation(o),
				HelpLines:  strings.Split(wordwrap.WrapString(o.Help, helpWrapWidth), "\n"),
			})
		}
	}
	return groups
}

// invocation renders the left column for one option, e.g. "-n, --count=<int>".
func invocation(o *Option) string {
	sb := strings.Builder{}
	if o.Short != 0 {
		sb.WriteByte('-')
		sb.WriteRune(o.Short)
		if o.Long != "" {
			sb.WriteString(", ")
		}
	}
	if o.Long != "" {
		sb.WriteString("--")
		sb.WriteString(o.Long)
	}
	if placeholder := kindPlaceholder(o.Kind); placeholder != "" {
		if o.Long != "" {
			sb.WriteByte('=')
		} else {
			sb.WriteByte(' ')
		}
		sb.WriteString(placeholder)
	}
	return sb.String()
}

func kindPlaceholder(kind Kind) string {
	switch kind {
	case KindInteger:
		return "<int>"
	case KindString:
		return "<str>"
	}
	return ""
}

// escapedTabWriter lets templates emit literal \t and \f sequences that are
// translated to real tab and form-feed characters for the tabwriter, which
// would otherwise collide with tabs in template text.
type escapedTabWriter struct {
	replacer  *strings.Replacer
	tabWriter *tabwriter.Writer
}

func newEscapedTabWriter(w io.Writer) escapedTabWriter {
	return escapedTabWriter{
		replacer:  strings.NewReplacer(`\t`, "\t", `\f`, "\f"),
		tabWriter: tabwriter.NewWriter(w, 0, 0, 0, ' ', 0),
	}
}

func (w escapedTabWriter) Write(p []byte) (int, error) {
	return w.replacer.WriteString(w.tabWriter, string(p))
}

func (w escapedTabWriter) Flush() error {
	return w.tabWriter.Flush()
}
