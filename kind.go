package conform

// Kind identifies the structural variant of a validator. Combinators that
// need to know what they were given (Pick, Omit, Partial, Intersection,
// TaggedUnion) dispatch on the kind tag rather than probing for incidental
// metadata.
type Kind int

const (
	KindAny Kind = iota
	KindNull
	KindBoolean
	KindNumber
	KindInteger
	KindString
	KindLiteral
	KindEnum
	KindOptional
	KindNullable
	KindArray
	KindTuple
	KindRecord
	KindMap
	KindUnion
	KindTaggedUnion
	KindIntersection
	KindCustom
)

var kindNames = map[Kind]string{
	KindAny:          "any",
	KindNull:         "null",
	KindBoolean:      "boolean",
	KindNumber:       "number",
	KindInteger:      "integer",
	KindString:       "string",
	KindLiteral:      "literal",
	KindEnum:         "enum",
	KindOptional:     "optional",
	KindNullable:     "nullable",
	KindArray:        "array",
	KindTuple:        "tuple",
	KindRecord:       "record",
	KindMap:          "map",
	KindUnion:        "union",
	KindTaggedUnion:  "tagged union",
	KindIntersection: "intersection",
	KindCustom:       "custom",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Kind returns the structural variant of the validator.
func (v *Validator) Kind() Kind {
	return v.kind
}

// IsRecord reports whether the validator is a record validator and can be
// used with Pick, Omit, Partial, record Intersection, and TaggedUnion.
func (v *Validator) IsRecord() bool {
	return v.kind == KindRecord
}

// IsPure reports whether the validator returns every accepted input
// unchanged. Pure composites skip allocating output containers.
func (v *Validator) IsPure() bool {
	return v.pure
}
