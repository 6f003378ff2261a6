package rules

import (
	"net/mail"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Required fails for strings that are empty after trimming whitespace.
func Required(opts ...Option) Rule[string] {
	o := newOptions(opts)
	return Rule[string]{
		Check: func(v string) bool {
			return strings.TrimSpace(v) != ""
		},
		Message:        o.render("validation.required", "field is required"),
		TranslationKey: "validation.required",
	}
}

// MinLen fails for strings shorter than min characters.
func MinLen(min int, opts ...Option) Rule[string] {
	o := newOptions(opts)
	return Rule[string]{
		Check: func(v string) bool {
			return utf8.RuneCountInString(v) >= min
		},
		Message:        o.render("validation.min_length", "must be at least %d characters long", min),
		TranslationKey: "validation.min_length",
	}
}

// MaxLen fails for strings longer than max characters.
func MaxLen(max int, opts ...Option) Rule[string] {
	o := newOptions(opts)
	return Rule[string]{
		Check: func(v string) bool {
			return utf8.RuneCountInString(v) <= max
		},
		Message:        o.render("validation.max_length", "must be at most %d characters long", max),
		TranslationKey: "validation.max_length",
	}
}

// LenBetween fails for strings outside [min, max] characters.
func LenBetween(min, max int, opts ...Option) Rule[string] {
	o := newOptions(opts)
	return Rule[string]{
		Check: func(v string) bool {
			n := utf8.RuneCountInString(v)
			return n >= min && n <= max
		},
		Message:        o.render("validation.length_between", "must be between %d and %d characters long", min, max),
		TranslationKey: "validation.length_between",
	}
}

// Matches fails for strings that do not match re.
func Matches(re *regexp.Regexp, opts ...Option) Rule[string] {
	o := newOptions(opts)
	return Rule[string]{
		Check: func(v string) bool {
			return re.MatchString(v)
		},
		Message:        o.render("validation.pattern", "has an invalid format"),
		TranslationKey: "validation.pattern",
	}
}

// Email fails for strings that are not a plain email address with a dotted
// domain.
func Email(opts ...Option) Rule[string] {
	o := newOptions(opts)
	return Rule[string]{
		Check:          isEmail,
		Message:        o.render("validation.email", "must be a valid email address"),
		TranslationKey: "validation.email",
	}
}

func isEmail(v string) bool {
	if strings.TrimSpace(v) == "" {
		return false
	}
	addr, err := mail.ParseAddress(v)
	if err != nil || addr.Address != v {
		return false
	}

	local, domain, ok := strings.Cut(addr.Address, "@")
	if !ok || local == "" {
		return false
	}
	if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return false
	}
	for part := range strings.SplitSeq(domain, ".") {
		if part == "" {
			return false
		}
	}
	return true
}
