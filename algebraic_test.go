package conform

import (
	"reflect"
	"testing"
)

func TestUnion(t *testing.T) {
	v := Union(String(), Number())

	if got, err := v.Validate("x"); err != nil || got != "x" {
		t.Errorf("Validate(x) = (%v, %v), want (x, nil)", got, err)
	}
	if got, err := v.Validate(1.0); err != nil || got != 1.0 {
		t.Errorf("Validate(1.0) = (%v, %v), want (1, nil)", got, err)
	}
	if _, err := v.Validate(true); err == nil {
		t.Error("Validate(true) should fail every alternative")
	}
}

func TestUnion_FirstSuccessWins(t *testing.T) {
	// Both alternatives accept the value; the first one's result is returned.
	v := Union(Number(), Integer())

	got, err := v.Validate(5.0)
	if err != nil {
		t.Fatalf("Validate() failed: %v", err)
	}
	if got != 5.0 {
		t.Errorf("Validate() = %v (%T), want float64(5) from the first alternative", got, got)
	}
}

func TestUnion_LastFailureReported(t *testing.T) {
	v := Union(Literal(1), Literal(2))

	_, err := v.Validate(3.0)
	if err == nil {
		t.Fatal("Validate() should fail")
	}
	if want := "expected the literal 2, got 3"; reasonOf(t, err) != want {
		t.Errorf("reason = %q, want %q", reasonOf(t, err), want)
	}
}

func TestUnion_EmptyPanics(t *testing.T) {
	mustPanicUsage(t, ErrBadUnion, func() {
		Union()
	})
}

func TestTaggedUnion(t *testing.T) {
	v := TaggedUnion("type",
		Record(map[string]*Validator{
			"type": Literal("circle"),
			"r":    Number(Min(0)),
		}),
		Record(map[string]*Validator{
			"type": Literal("rect"),
			"w":    Number(Min(0)),
			"h":    Number(Min(0)),
		}),
	)

	tests := []struct {
		name       string
		value      any
		wantErr    bool
		wantReason string
		wantPath   Path
	}{
		{
			name:  "circle dispatched",
			value: map[string]any{"type": "circle", "r": 2.0},
		},
		{
			name:  "rect dispatched",
			value: map[string]any{"type": "rect", "w": 1.0, "h": 2.0},
		},
		{
			name:       "not an object",
			value:      "circle",
			wantErr:    true,
			wantReason: "expected an object, got string",
		},
		{
			name:       "missing tag",
			value:      map[string]any{"r": 2.0},
			wantErr:    true,
			wantReason: "missing required key",
			wantPath:   Path{"type"},
		},
		{
			name:       "unknown tag",
			value:      map[string]any{"type": "triangle"},
			wantErr:    true,
			wantReason: `unexpected tag value triangle for key "type"`,
			wantPath:   Path{"type"},
		},
		{
			name:       "matched alternative validates fully",
			value:      map[string]any{"type": "circle", "r": -1.0},
			wantErr:    true,
			wantReason: "expected a number >= 0, got -1",
			wantPath:   Path{"r"},
		},
		{
			name:       "excess key in matched alternative",
			value:      map[string]any{"type": "circle", "r": 2.0, "w": 1.0},
			wantErr:    true,
			wantReason: "invalid keys in record: w",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := v.Validate(tt.value)
			if !tt.wantErr {
				if err != nil {
					t.Fatalf("Validate() failed: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("Validate() should fail")
			}
			verr := err.(*Error)
			if verr.Reason != tt.wantReason {
				t.Errorf("reason = %q, want %q", verr.Reason, tt.wantReason)
			}
			if len(tt.wantPath) > 0 && !reflect.DeepEqual(verr.Path, tt.wantPath) {
				t.Errorf("Path = %v, want %v", verr.Path, tt.wantPath)
			}
		})
	}
}

func TestTaggedUnion_NumericTags(t *testing.T) {
	v := TaggedUnion("v",
		Record(map[string]*Validator{"v": Literal(1), "a": String()}),
		Record(map[string]*Validator{"v": Literal(2), "b": String()}),
	)

	if _, err := v.Validate(map[string]any{"v": 2.0, "b": "x"}); err != nil {
		t.Errorf("Validate() failed for a numeric tag: %v", err)
	}
}

func TestTaggedUnion_UsageErrors(t *testing.T) {
	circle := Record(map[string]*Validator{"type": Literal("circle")})

	tests := []struct {
		name string
		fn   func()
	}{
		{
			name: "no alternatives",
			fn:   func() { TaggedUnion("type") },
		},
		{
			name: "non-record alternative",
			fn:   func() { TaggedUnion("type", String()) },
		},
		{
			name: "alternative without the key",
			fn: func() {
				TaggedUnion("type", Record(map[string]*Validator{"kind": Literal("a")}))
			},
		},
		{
			name: "non-literal at the key",
			fn: func() {
				TaggedUnion("type", Record(map[string]*Validator{"type": String()}))
			},
		},
		{
			name: "boolean tag literal",
			fn: func() {
				TaggedUnion("type", Record(map[string]*Validator{"type": Literal(true)}))
			},
		},
		{
			name: "duplicate tag value",
			fn: func() {
				TaggedUnion("type", circle, Record(map[string]*Validator{"type": Literal("circle")}))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mustPanicUsage(t, ErrBadDiscriminant, tt.fn)
		})
	}
}

func TestIntersection_Records(t *testing.T) {
	a := Record(map[string]*Validator{"id": String()})
	b := Record(map[string]*Validator{"name": String()})
	v := Intersection(a, b)

	if _, err := v.Validate(map[string]any{"id": "1", "name": "a"}); err != nil {
		t.Fatalf("Validate() failed for the merged field set: %v", err)
	}
	if _, err := v.Validate(map[string]any{"id": "1"}); err == nil {
		t.Error("Validate() should require fields from both sides")
	}
	_, err := v.Validate(map[string]any{"id": "1", "name": "a", "extra": true})
	if err == nil {
		t.Fatal("Validate() should reject keys outside the merged field set")
	}
	if want := "invalid keys in record: extra"; reasonOf(t, err) != want {
		t.Errorf("reason = %q, want %q", reasonOf(t, err), want)
	}
}

func TestIntersection_OverlappingField(t *testing.T) {
	a := Record(map[string]*Validator{"n": Number(Min(0))})
	b := Record(map[string]*Validator{"n": Number(Max(10))})
	v := Intersection(a, b)

	if _, err := v.Validate(map[string]any{"n": 5.0}); err != nil {
		t.Fatalf("Validate() failed inside both bounds: %v", err)
	}
	if _, err := v.Validate(map[string]any{"n": -1.0}); err == nil {
		t.Error("Validate() should enforce the first side's bound")
	}
	if _, err := v.Validate(map[string]any{"n": 11.0}); err == nil {
		t.Error("Validate() should enforce the second side's bound")
	}
}

func TestIntersection_UnionDistributes(t *testing.T) {
	u := Union(
		Record(map[string]*Validator{"kind": Literal("a")}),
		Record(map[string]*Validator{"kind": Literal("b"), "extra": Boolean()}),
	)
	rec := Record(map[string]*Validator{"id": String()})
	v := Intersection(u, rec)

	if _, err := v.Validate(map[string]any{"kind": "a", "id": "1"}); err != nil {
		t.Errorf("Validate() failed for the first branch: %v", err)
	}
	if _, err := v.Validate(map[string]any{"kind": "b", "extra": true, "id": "1"}); err != nil {
		t.Errorf("Validate() failed for the second branch: %v", err)
	}
	if _, err := v.Validate(map[string]any{"kind": "a"}); err == nil {
		t.Error("Validate() should require the record's fields in every branch")
	}
}

func TestIntersection_NonStructural(t *testing.T) {
	v := Intersection(String(MinLen(2)), String(MaxLen(4)))

	if got, err := v.Validate("abc"); err != nil || got != "abc" {
		t.Errorf("Validate(abc) = (%v, %v), want (abc, nil)", got, err)
	}
	if _, err := v.Validate("a"); err == nil {
		t.Error("Validate() should enforce the first validator")
	}
	if _, err := v.Validate("abcde"); err == nil {
		t.Error("Validate() should enforce the second validator")
	}
}

func TestIntersection_SecondResultAuthoritative(t *testing.T) {
	v := Intersection(Number(), Integer())

	got, err := v.Validate(5.0)
	if err != nil {
		t.Fatalf("Validate() failed: %v", err)
	}
	if got != int64(5) {
		t.Errorf("Validate() = %v (%T), want the second validator's int64(5)", got, got)
	}
}

func TestIntersection_MixedKindsPanic(t *testing.T) {
	rec := Record(map[string]*Validator{"a": Any()})

	mustPanicUsage(t, ErrBadIntersection, func() {
		Intersection(rec, String())
	})
	mustPanicUsage(t, ErrBadIntersection, func() {
		Intersection(Number(), rec)
	})
	mustPanicUsage(t, ErrBadIntersection, func() {
		Intersection(Union(String(), Number()), Boolean())
	})
}

func TestPick(t *testing.T) {
	base := Record(map[string]*Validator{
		"id":   String(),
		"name": String(),
		"age":  Number(),
	})
	v := Pick(base, "id", "name")

	if _, err := v.Validate(map[string]any{"id": "1", "name": "a"}); err != nil {
		t.Fatalf("Validate() failed: %v", err)
	}
	_, err := v.Validate(map[string]any{"id": "1", "name": "a", "age": 3.0})
	if err == nil {
		t.Error("Validate() should reject fields dropped by Pick")
	}

	// The base validator still accepts all three fields.
	if _, err := base.Validate(map[string]any{"id": "1", "name": "a", "age": 3.0}); err != nil {
		t.Errorf("Pick should not modify the base validator: %v", err)
	}
}

func TestOmit(t *testing.T) {
	base := Record(map[string]*Validator{
		"id":     String(),
		"secret": String(),
	})
	v := Omit(base, "secret")

	if _, err := v.Validate(map[string]any{"id": "1"}); err != nil {
		t.Fatalf("Validate() failed: %v", err)
	}
	if _, err := v.Validate(map[string]any{"id": "1", "secret": "x"}); err == nil {
		t.Error("Validate() should reject omitted fields")
	}
}

func TestPartial(t *testing.T) {
	base := Record(map[string]*Validator{
		"id":  String(),
		"age": Optional(Number()),
	})
	v := Partial(base)

	if _, err := v.Validate(map[string]any{}); err != nil {
		t.Fatalf("Validate() should accept an empty object: %v", err)
	}
	if _, err := v.Validate(map[string]any{"id": "1"}); err != nil {
		t.Fatalf("Validate() failed: %v", err)
	}
	if _, err := v.Validate(map[string]any{"id": 1.0}); err == nil {
		t.Error("a present field must still satisfy its validator")
	}
	if _, err := v.Validate(map[string]any{"other": true}); err == nil {
		t.Error("Partial should keep excess-key rejection")
	}
}

func TestFieldOps_UsageErrors(t *testing.T) {
	rec := Record(map[string]*Validator{"a": Any()})

	mustPanicUsage(t, ErrNotRecord, func() { Pick(String(), "a") })
	mustPanicUsage(t, ErrNotRecord, func() { Omit(String(), "a") })
	mustPanicUsage(t, ErrNotRecord, func() { Partial(Union(rec, rec)) })
	mustPanicUsage(t, ErrUnknownField, func() { Pick(rec, "missing") })
	mustPanicUsage(t, ErrUnknownField, func() { Omit(rec, "missing") })
}
