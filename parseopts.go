package mathparse

// ParseOption is an option for parsing.
type ParseOption interface {
	parseOption(parsecfg) parsecfg
}

// parsecfg holds the recognizer registry a parse uses.
type parsecfg struct {
	// repl replaces the whole registry when non-nil.
	repl []Recognizer
	// extra is spliced in after the builtin functions.
	extra []Recognizer
}

func (c parsecfg) recognizers() []Recognizer {
	if c.repl != nil {
		return c.repl
	}
	if len(c.extra) == 0 {
		return DefaultRecognizers()
	}
	rs := make([]Recognizer, 0, len(baseRecognizers)+len(c.extra)+len(tailRecognizers))
	rs = append(rs, baseRecognizers...)
	rs = append(rs, c.extra...)
	return append(rs, tailRecognizers...)
}

type (
	recsopt  []Recognizer
	extraopt []Recognizer
)

// WithRecognizers replaces the entire recognizer registry for a parse. The
// list is tried in order; use DefaultRecognizers as a starting point when
// only reordering or removing vocabulary.
func WithRecognizers(rs ...Recognizer) ParseOption {
	return recsopt(rs)
}

func (o recsopt) parseOption(c parsecfg) parsecfg {
	c.repl = []Recognizer(o)
	return c
}

// Recognize registers additional recognizers for a parse. They are tried
// after the builtin operators and functions but before separators,
// constants, and variable names, so new vocabulary can shadow a variable
// spelling but not an operator.
func Recognize(rs ...Recognizer) ParseOption {
	return extraopt(rs)
}

func (o extraopt) parseOption(c parsecfg) parsecfg {
	c.extra = append(c.extra, o...)
	return c
}

// RecognizeFunc registers a custom function under the given spellings, each
// of which must include the trailing open bracket.
func RecognizeFunc(fn Func, spellings ...string) ParseOption {
	return extraopt{Function(fn, spellings...)}
}
