package surface

// parseItem dispatches on the current token to parse either an alias or a
// struct item. Returns nil (after recording a diagnostic) if neither
// keyword leads.
func (p *Parser) parseItem(doc string) Item {
	switch p.cur.Kind {
	case ALIAS:
		return p.parseAlias(doc)
	case STRUCT:
		return p.parseStruct(doc)
	default:
		p.errorf(p.cur, "expected 'alias' or 'struct', found %q", p.cur.Literal)
		return nil
	}
}

// parseAlias parses "alias Name [: Type] = Term ;".
func (p *Parser) parseAlias(doc string) Item {
	start := p.cur
	p.next() // consume 'alias'

	name, ok := p.expect(IDENT, "identifier")
	if !ok {
		return nil
	}

	var typeAnn Term
	if p.cur.Kind == COLON {
		p.next()
		typeAnn = p.parseTerm()
		if typeAnn == nil {
			return nil
		}
	}

	if _, ok := p.expect(ASSIGN, "'='"); !ok {
		return nil
	}

	body := p.parseTerm()
	if body == nil {
		return nil
	}

	if _, ok := p.expect(SEMI, "';'"); !ok {
		return nil
	}

	return &AliasItem{
		Name:     name.Literal,
		DocText:  doc,
		TypeAnn:  typeAnn,
		Body:     body,
		NodeSpan: p.spanFrom(start),
	}
}

// parseStruct parses "struct Name { field1 : Term, field2 : Term, ... }".
func (p *Parser) parseStruct(doc string) Item {
	start := p.cur
	p.next() // consume 'struct'

	name, ok := p.expect(IDENT, "identifier")
	if !ok {
		return nil
	}

	if _, ok := p.expect(LBRACE, "'{'"); !ok {
		return nil
	}

	var fields []StructField
	for p.cur.Kind != RBRACE && p.cur.Kind != EOF {
		fstart := p.cur
		label, ok := p.expect(IDENT, "field name")
		if !ok {
			return nil
		}
		if _, ok := p.expect(COLON, "':'"); !ok {
			return nil
		}
		typ := p.parseTerm()
		if typ == nil {
			return nil
		}
		fields = append(fields, StructField{
			Label:    label.Literal,
			Type:     typ,
			NodeSpan: p.spanFrom(fstart),
		})
		if p.cur.Kind == COMMA {
			p.next()
			continue
		}
		break
	}

	if _, ok := p.expect(RBRACE, "'}'"); !ok {
		return nil
	}

	return &StructItem{
		Name:     name.Literal,
		DocText:  doc,
		Fields:   fields,
		NodeSpan: p.spanFrom(start),
	}
}
