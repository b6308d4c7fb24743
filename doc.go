/*
Package argparse parses command-line tokens against a declarative option
table, in the tradition of GNU getopt and git's parse-options.

An option table is an ordered slice of descriptors, each binding a short
name, a long name, and a typed destination cell, terminated by End():

	var force bool
	var count int
	var path string

	options := argparse.Options{
		argparse.Group("Basic options"),
		argparse.Boolean('f', "force", &force, "force do what it says"),
		argparse.Integer('n', "count", &count, "how many times"),
		argparse.String('p', "path", &path, "path to read"),
		argparse.Help(),
		argparse.End(),
	}

	p := argparse.NewParser(options, []string{"example [options] [--] args"}, 0)
	p.Describe("A demonstration program.", "")
	rest, err := p.Parse(os.Args[1:])
	if errors.Is(err, argparse.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

Parse mutates the bound destinations in place and returns the positional
tokens in input order. It recognizes the usual syntaxes:

	--force            long option
	--count=5          long option with inline value
	--count 5          long option, value in the next token
	--cou 5            unique prefix of a long option
	--no-force         negated boolean (or bit) option
	-f                 short option
	-n5                short option with inline value
	-fn5               short option cluster; a value-taking option ends it
	--                 ends option matching; the rest is positional
	-                  a positional (conventionally stdin)

Prefix matching is exact-first: a name that matches a long option exactly
is never treated as a prefix or a negation. A prefix matching two or more
options is an error naming the candidates.

Boolean and Bit options take no value; attaching one inline (as in
--force=true) is an error. Integer values accept base prefixes (0x, 0o,
0b, leading 0) and overflow is reported, never truncated. Parsing has no
rollback: destinations written before an error remain written.

Errors are returned as *ParseError with a Kind describing what went wrong.
ErrHelp is not an error but a cooperative-termination signal returned when
the built-in help option fires; callers should exit cleanly on it.

# Struct binding

Bind builds a table from a struct pointer instead of hand-written
descriptors, deriving kebab-case long names from field names:

	type Config struct {
		Force bool   `argparse:"short=f,help=force do what it says"`
		Count int    `argparse:"short=n,help=how many times"`
		Path  string `argparse:"group=Paths,help=path to read"`
	}

	cfg := Config{}
	options := append(argparse.MustBind(&cfg), argparse.Help(), argparse.End())

See Bind for the full tag syntax.

# Callbacks

Each descriptor may carry a callback, invoked after its value is stored.
A callback returning ErrStop ends parsing early with the remaining tokens
returned as positionals; HelpCallback renders usage text and returns
ErrHelp. Option.Data carries an opaque payload for callbacks (for Bit
options it holds the bit).
*/
package argparse
