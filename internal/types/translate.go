package types

// Translate rebuilds t with every R-typed child replaced by whatever conv
// returns, producing the analogous Ty[To]. This is how the library builder
// re-levels a Draft's unbounded nesting into the fixed reference-form
// ladder one rung at a time: conv for a given rung recurses into the next
// rung's own Translate call when it meets an inlined child.
//
// Map's key is KeyTy regardless of R, so it passes through unchanged;
// every other shape's sole R-bearing positions (fields, element, value)
// go through conv.
func Translate[From Ref, To Ref](t Ty[From], conv func(From) (To, error)) (Ty[To], error) {
	switch t.kind {
	case KindPrimitive:
		return Ty[To]{kind: KindPrimitive, primitive: t.primitive}, nil
	case KindUnicode:
		return Ty[To]{kind: KindUnicode, sizing: t.sizing}, nil
	case KindEnum:
		variants := make([]EnumVariant, len(t.variants))
		copy(variants, t.variants)
		return Ty[To]{kind: KindEnum, variants: variants}, nil
	case KindStruct, KindUnion:
		fields := make([]Field[To], len(t.fields))
		for i, f := range t.fields {
			converted, err := conv(f.Type)
			if err != nil {
				return Ty[To]{}, err
			}
			fields[i] = Field[To]{Ord: f.Ord, Name: f.Name, Type: converted}
		}
		return Ty[To]{kind: t.kind, fields: fields}, nil
	case KindArray:
		elem, err := conv(t.elem)
		if err != nil {
			return Ty[To]{}, err
		}
		return Ty[To]{kind: KindArray, elem: elem, arrayLen: t.arrayLen}, nil
	case KindList, KindSet:
		elem, err := conv(t.elem)
		if err != nil {
			return Ty[To]{}, err
		}
		return Ty[To]{kind: t.kind, elem: elem, sizing: t.sizing}, nil
	case KindMap:
		elem, err := conv(t.elem)
		if err != nil {
			return Ty[To]{}, err
		}
		return Ty[To]{kind: KindMap, key: t.key, elem: elem, sizing: t.sizing}, nil
	default:
		return Ty[To]{}, nil
	}
}
