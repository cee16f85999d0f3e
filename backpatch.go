package mathparse

// session holds everything one parse owns: the token sequence and the pair
// cache mapping each pair token's position to its partner's position. The
// cache is filled once by backpatch and read by every later range split, so
// partitioning never re-scans for partners. A session is discarded when the
// parse completes; nothing is shared between parses.
type session struct {
	src   string
	toks  []Token
	pairs map[int]int
}

// maxNesting bounds bracket and function nesting so that pathological
// input fails instead of exhausting the stack.
const maxNesting = 4096

// next advances a scan position past the token at i. Pair tokens jump past
// their entire matched range; everything else advances one position.
func (s *session) next(i int) int {
	if needsPair(s.toks[i].Kind) {
		if j, ok := s.pairs[i]; ok {
			return j + 1
		}
	}
	return i + 1
}

// backpatch resolves the partner of every pair token reachable from the
// start of the sequence and then classifies subtraction tokens as unary or
// binary. It must run before partitioning.
func (s *session) backpatch() error {
	for i := 0; i < len(s.toks); {
		if needsPair(s.toks[i].Kind) {
			if _, ok := s.pairs[i]; !ok {
				if err := s.match(i, 0); err != nil {
					return err
				}
			}
		}
		i = s.next(i)
	}
	s.markUnary()
	return nil
}

// match scans forward from the pair token at i for its partner and caches
// the position found. Nested pairs encountered on the way are resolved
// recursively and skipped as whole units. Distinct pairs stop only on a
// closing token of the right family; modulus bars stop on the first
// unconsumed bar, which mispairs nested same-spelling bars. That first-match
// rule is kept as is.
func (s *session) match(i, depth int) error {
	if depth > maxNesting {
		return &MatchError{Col: s.toks[i].Pos, Text: s.toks[i].Text}
	}
	t := s.toks[i]
	for j := i + 1; j < len(s.toks); {
		u := s.toks[j]
		if partners(t, u) {
			s.pairs[i] = j
			return nil
		}
		if needsPair(u.Kind) {
			if _, ok := s.pairs[j]; !ok {
				if err := s.match(j, depth+1); err != nil {
					return err
				}
			}
		}
		j = s.next(j)
	}
	return &MatchError{Col: t.Pos, Text: t.Text}
}

// markUnary flags each subtraction token that has nothing evaluable on its
// left: the start of the input, or directly after an operator, a separator,
// a function head, or an opening bracket or bar. Such a token negates its
// single operand instead of subtracting. Bar orientation is only known once
// pairs are resolved, which is why this runs here and not in the tokenizer.
func (s *session) markUnary() {
	for i := range s.toks {
		if s.toks[i].Kind != KindSub {
			continue
		}
		if i == 0 {
			s.toks[i].unary = true
			continue
		}
		switch prev := s.toks[i-1]; prev.Kind {
		case KindAdd, KindSub, KindMul, KindDiv, KindPow, KindSep, KindOpen, KindFunc, KindArgFunc:
			s.toks[i].unary = true
		case KindMod:
			// An opening bar owns a pair cache entry; a closing bar was
			// consumed as someone's partner and owns none.
			if _, open := s.pairs[i-1]; open {
				s.toks[i].unary = true
			}
		}
	}
}
