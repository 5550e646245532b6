package conform

// Union accepts a value matching any of its alternatives, tried in
// declaration order; the first success wins. When every alternative fails,
// the last alternative's failure is reported: later alternatives are assumed
// to be the more specific, more diagnostic ones. Each call costs up to
// len(alternatives) attempts; see TaggedUnion for O(1) dispatch.
func Union(alternatives ...*Validator) *Validator {
	if len(alternatives) == 0 {
		panic(newUsageError(ErrBadUnion, "union requires at least one alternative"))
	}
	pure := true
	for _, alt := range alternatives {
		pure = pure && alt.pure
	}
	return &Validator{kind: KindUnion, pure: pure, elems: append([]*Validator(nil), alternatives...)}
}

func (v *Validator) runUnion(value any) any {
	var last *Failure
	for _, alt := range v.elems {
		res := alt.run(value)
		f, ok := res.(*Failure)
		if !ok {
			return res
		}
		last = f
	}
	return last
}

// TaggedUnion accepts an object matching one of its alternatives, selected
// in O(1) by the literal value of the key field. Every alternative must be a
// record validator declaring a string or number Literal at key; anything
// else is a usage error. The dispatch table is built once at construction,
// so validation cost does not grow with the number of alternatives.
func TaggedUnion(key string, alternatives ...*Validator) *Validator {
	if len(alternatives) == 0 {
		panic(newUsageError(ErrBadDiscriminant, "tagged union requires at least one alternative"))
	}
	table := make(map[any]*Validator, len(alternatives))
	pure := true
	for _, alt := range alternatives {
		if alt.kind != KindRecord {
			panic(newUsageError(ErrBadDiscriminant, "alternative must be a record validator, got %s", alt.kind))
		}
		tag, ok := alt.fields[key]
		if !ok || tag.kind != KindLiteral {
			panic(newUsageError(ErrBadDiscriminant, "alternative does not declare a literal at key %q", key))
		}
		switch tag.literal.(type) {
		case string, float64:
		default:
			panic(newUsageError(ErrBadDiscriminant, "literal at key %q must be a string or number, got %T", key, tag.literal))
		}
		if _, dup := table[tag.literal]; dup {
			panic(newUsageError(ErrBadDiscriminant, "duplicate tag value %s at key %q", formatLiteral(tag.literal), key))
		}
		table[tag.literal] = alt
		pure = pure && alt.pure
	}
	return &Validator{
		kind:   KindTaggedUnion,
		pure:   pure,
		tagKey: key,
		table:  table,
		elems:  append([]*Validator(nil), alternatives...),
	}
}

func (v *Validator) runTaggedUnion(value any) any {
	in, ok := value.(map[string]any)
	if !ok {
		return newFailure("expected an object, got " + typeName(value))
	}
	raw, present := in[v.tagKey]
	if !present {
		return newFailure("missing required key").at(v.tagKey)
	}
	tag, ok := normalizeScalar(raw)
	if ok {
		if alt, found := v.table[tag]; found {
			return alt.run(value)
		}
	}
	return newFailuref("unexpected tag value %s for key %q", truncate(raw, 40), v.tagKey).at(v.tagKey)
}

// Intersection combines the acceptance of two validators.
//
// Two records merge field by field into a single new record validator:
// fields declared on one side keep that side's validator, fields declared on
// both are themselves recursively intersected, and excess-key rejection
// applies against the union of both field sets. A union intersected with a
// record distributes over the union's alternatives and re-unions the
// results, since the structural merge depends on which branch applies.
// Intersecting a record or union with any other base kind has no sensible
// structural meaning and is a usage error. For all remaining pairs both
// validators run against the value; the second result is authoritative, as
// it may narrow further.
func Intersection(a, b *Validator) *Validator {
	switch {
	case a.kind == KindRecord && b.kind == KindRecord:
		return mergeRecords(a, b)
	case a.kind == KindUnion && b.kind == KindRecord:
		return distribute(a, b, false)
	case a.kind == KindRecord && b.kind == KindUnion:
		return distribute(b, a, true)
	case a.kind == KindRecord || a.kind == KindUnion || b.kind == KindRecord || b.kind == KindUnion:
		panic(newUsageError(ErrBadIntersection, "cannot intersect %s with %s", a.kind, b.kind))
	}
	return &Validator{
		kind:  KindIntersection,
		pure:  a.pure && b.pure,
		elems: []*Validator{a, b},
	}
}

// mergeRecords builds one record validator accepting the union of both
// field sets, recursively intersecting fields declared on both sides.
func mergeRecords(a, b *Validator) *Validator {
	fields := make(map[string]*Validator, len(a.fields)+len(b.fields))
	for name, av := range a.fields {
		fields[name] = av
	}
	for name, bv := range b.fields {
		if av, ok := fields[name]; ok {
			fields[name] = Intersection(av, bv)
		} else {
			fields[name] = bv
		}
	}
	return Record(fields)
}

// distribute intersects rec with every alternative of u and re-unions the
// results, preserving operand order.
func distribute(u, rec *Validator, recordFirst bool) *Validator {
	alts := make([]*Validator, len(u.elems))
	for i, alt := range u.elems {
		if recordFirst {
			alts[i] = Intersection(rec, alt)
		} else {
			alts[i] = Intersection(alt, rec)
		}
	}
	return Union(alts...)
}

func (v *Validator) runIntersection(value any) any {
	if f, ok := v.elems[0].run(value).(*Failure); ok {
		return f
	}
	return v.elems[1].run(value)
}

// Pick builds a new record validator keeping only the named fields. It
// requires a record validator and every key to be declared; violating
// either is a usage error.
func Pick(v *Validator, keys ...string) *Validator {
	fields := recordFields(v, "Pick")
	out := make(map[string]*Validator, len(keys))
	for _, key := range keys {
		f, ok := fields[key]
		if !ok {
			panic(newUsageError(ErrUnknownField, "key %q is not declared on the record", key))
		}
		out[key] = f
	}
	return Record(out)
}

// Omit builds a new record validator dropping the named fields. It requires
// a record validator and every key to be declared; violating either is a
// usage error.
func Omit(v *Validator, keys ...string) *Validator {
	fields := recordFields(v, "Omit")
	drop := make(map[string]struct{}, len(keys))
	for _, key := range keys {
		if _, ok := fields[key]; !ok {
			panic(newUsageError(ErrUnknownField, "key %q is not declared on the record", key))
		}
		drop[key] = struct{}{}
	}
	out := make(map[string]*Validator, len(fields))
	for name, f := range fields {
		if _, dropped := drop[name]; !dropped {
			out[name] = f
		}
	}
	return Record(out)
}

// Partial builds a new record validator with every field wrapped in
// Optional. Fields that are already Optional are kept as-is rather than
// double-wrapped. The original validator is not modified.
func Partial(v *Validator) *Validator {
	fields := recordFields(v, "Partial")
	out := make(map[string]*Validator, len(fields))
	for name, f := range fields {
		if f.kind == KindOptional {
			out[name] = f
		} else {
			out[name] = Optional(f)
		}
	}
	return Record(out)
}

// recordFields returns the declared field map of a record validator and
// usage-errors for anything else. Record-ness is decided by the kind tag,
// never by probing for incidental metadata.
func recordFields(v *Validator, op string) map[string]*Validator {
	if v.kind != KindRecord {
		panic(newUsageError(ErrNotRecord, "%s requires a record validator, got %s", op, v.kind))
	}
	return v.fields
}
