package parser

// rawCommand is one grammar-level command before decoding: the tag,
// its argument tuple, and for the two composite forms the extra parts.
type rawCommand struct {
	tag       string
	args      []Arg
	arcTaps   []Arg        // arc only, timestamps of the arctap list
	groupTags []string     // timinggroup only
	group     []rawCommand // timinggroup only, body in source order
}

// parseSequence reads semicolon-delimited commands until the
// terminator byte (0 for end of input). A trailing semicolon before
// the terminator is allowed. Timing groups may not nest.
func (s *scanner) parseSequence(term byte, allowGroups bool) ([]rawCommand, error) {
	var cmds []rawCommand
	for {
		s.skipSpace()
		if s.done() || (term != 0 && s.peek() == term) {
			return cmds, nil
		}
		cmd, err := s.parseCommand(allowGroups)
		if nil != err {
			return nil, err
		}
		cmds = append(cmds, cmd)
		s.skipSpace()
		if s.eat(';') {
			continue
		}
		if s.done() || (term != 0 && s.peek() == term) {
			return cmds, nil
		}
		return nil, s.errf("expected \";\"")
	}
}

func (s *scanner) parseCommand(allowGroups bool) (rawCommand, error) {
	if s.peek() == '(' {
		args, err := s.parseTuple(false)
		return rawCommand{tag: tagTap, args: args}, err
	}
	word, err := s.ident()
	if nil != err {
		return rawCommand{}, err
	}
	switch word {
	case tagArc:
		return s.parseArc()
	case tagCamera, tagSceneControl:
		args, err := s.parseTuple(true)
		return rawCommand{tag: word, args: args}, err
	case tagFlick, tagHold, tagTiming:
		args, err := s.parseTuple(false)
		return rawCommand{tag: word, args: args}, err
	case tagTimingGroup:
		if !allowGroups {
			return rawCommand{}, s.errf("timinggroup may not nest")
		}
		return s.parseTimingGroup()
	}
	return rawCommand{}, s.errf("unknown command %q", word)
}

// parseTuple reads a parenthesised, comma-delimited argument list.
// Word arguments are only legal for the forms that carry enumerated
// tokens.
func (s *scanner) parseTuple(wordsAllowed bool) ([]Arg, error) {
	if err := s.expect('('); nil != err {
		return nil, err
	}
	var args []Arg
	for {
		s.skipSpace()
		if len(args) == 0 && s.eat(')') {
			return args, nil
		}
		arg, err := s.parseArg(wordsAllowed)
		if nil != err {
			return nil, err
		}
		args = append(args, arg)
		s.skipSpace()
		if s.eat(',') {
			continue
		}
		if err := s.expect(')'); nil != err {
			return nil, err
		}
		return args, nil
	}
}

func (s *scanner) parseArg(wordsAllowed bool) (Arg, error) {
	b := s.peek()
	if isDigit(b) || b == '-' || b == '+' || b == '.' {
		return s.number()
	}
	if !wordsAllowed {
		return Arg{}, s.errf("expected number")
	}
	word, err := s.word()
	if nil != err {
		return Arg{}, err
	}
	return Arg{Word: word}, nil
}

// parseArc reads the argument tuple and the optional arctap list.
func (s *scanner) parseArc() (rawCommand, error) {
	args, err := s.parseTuple(true)
	if nil != err {
		return rawCommand{}, err
	}
	cmd := rawCommand{tag: tagArc, args: args}
	s.skipSpace()
	if !s.eat('[') {
		return cmd, nil
	}
	for {
		s.skipSpace()
		word, err := s.ident()
		if nil != err || word != tagArcTap {
			return rawCommand{}, s.errf("expected %q", tagArcTap)
		}
		if err := s.expect('('); nil != err {
			return rawCommand{}, err
		}
		s.skipSpace()
		tn, err := s.number()
		if nil != err {
			return rawCommand{}, err
		}
		cmd.arcTaps = append(cmd.arcTaps, tn)
		s.skipSpace()
		if err := s.expect(')'); nil != err {
			return rawCommand{}, err
		}
		s.skipSpace()
		if s.eat(',') {
			continue
		}
		if err := s.expect(']'); nil != err {
			return rawCommand{}, err
		}
		return cmd, nil
	}
}

// parseTimingGroup reads the underscore-delimited tag list and the
// braced command body.
func (s *scanner) parseTimingGroup() (rawCommand, error) {
	if err := s.expect('('); nil != err {
		return rawCommand{}, err
	}
	cmd := rawCommand{tag: tagTimingGroup}
	s.skipSpace()
	if !s.eat(')') {
		for {
			tag, err := s.ident()
			if nil != err {
				return rawCommand{}, err
			}
			cmd.groupTags = append(cmd.groupTags, tag)
			if s.eat('_') {
				continue
			}
			break
		}
		s.skipSpace()
		if err := s.expect(')'); nil != err {
			return rawCommand{}, err
		}
	}
	s.skipSpace()
	if err := s.expect('{'); nil != err {
		return rawCommand{}, err
	}
	body, err := s.parseSequence('}', false)
	if nil != err {
		return rawCommand{}, err
	}
	cmd.group = body
	if err := s.expect('}'); nil != err {
		return rawCommand{}, err
	}
	return cmd, nil
}
