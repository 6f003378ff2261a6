package rules

type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Min fails for values below min.
func Min[T Numeric](min T, opts ...Option) Rule[T] {
	o := newOptions(opts)
	return Rule[T]{
		Check: func(v T) bool {
			return v >= min
		},
		Message:        o.render("validation.min", "must be at least %v", min),
		TranslationKey: "validation.min",
	}
}

// Max fails for values above max.
func Max[T Numeric](max T, opts ...Option) Rule[T] {
	o := newOptions(opts)
	return Rule[T]{
		Check: func(v T) bool {
			return v <= max
		},
		Message:        o.render("validation.max", "must be at most %v", max),
		TranslationKey: "validation.max",
	}
}

// Between fails for values outside [min, max].
func Between[T Numeric](min, max T, opts ...Option) Rule[T] {
	o := newOptions(opts)
	return Rule[T]{
		Check: func(v T) bool {
			return v >= min && v <= max
		},
		Message:        o.render("validation.between", "must be between %v and %v", min, max),
		TranslationKey: "validation.between",
	}
}

// Positive fails for zero and negative values.
func Positive[T Numeric](opts ...Option) Rule[T] {
	o := newOptions(opts)
	return Rule[T]{
		Check: func(v T) bool {
			return v > 0
		},
		Message:        o.render("validation.positive", "must be positive"),
		TranslationKey: "validation.positive",
	}
}
