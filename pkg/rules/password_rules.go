package rules

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// commonPasswords is a short list of frequently compromised passwords.
var commonPasswords = map[string]bool{
	"password":    true,
	"123456":      true,
	"12345678":    true,
	"123456789":   true,
	"password1":   true,
	"password123": true,
	"qwerty":      true,
	"qwerty123":   true,
	"abc123":      true,
	"letmein":     true,
	"welcome":     true,
	"admin":       true,
	"admin123":    true,
	"iloveyou":    true,
	"monkey":      true,
	"dragon":      true,
	"111111":      true,
	"000000":      true,
}

// PasswordStrength describes a password policy.
type PasswordStrength struct {
	MinLength        int
	MaxLength        int
	RequireUppercase bool
	RequireLowercase bool
	RequireDigits    bool
	RequireSpecial   bool
	MinCharClasses   int // of upper, lower, digit and special
}

// DefaultPasswordStrength requires 8-128 characters and every character class.
func DefaultPasswordStrength() PasswordStrength {
	return PasswordStrength{
		MinLength:        8,
		MaxLength:        128,
		RequireUppercase: true,
		RequireLowercase: true,
		RequireDigits:    true,
		RequireSpecial:   true,
		MinCharClasses:   3,
	}
}

// StrongPassword fails for passwords that do not satisfy policy.
func StrongPassword(policy PasswordStrength, opts ...Option) Rule[string] {
	o := newOptions(opts)
	return Rule[string]{
		Check: func(v string) bool {
			return policy.satisfiedBy(v)
		},
		Message:        o.render("validation.password_strength", "password must be %d-%d characters with required character types", policy.MinLength, policy.MaxLength),
		TranslationKey: "validation.password_strength",
	}
}

// NotCommonPassword fails for well-known weak passwords, ignoring case.
func NotCommonPassword(opts ...Option) Rule[string] {
	o := newOptions(opts)
	return Rule[string]{
		Check: func(v string) bool {
			return !commonPasswords[strings.ToLower(v)]
		},
		Message:        o.render("validation.password_common", "password is too common"),
		TranslationKey: "validation.password_common",
	}
}

func (p PasswordStrength) satisfiedBy(v string) bool {
	n := utf8.RuneCountInString(v)
	if n < p.MinLength || (p.MaxLength > 0 && n > p.MaxLength) {
		return false
	}

	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, r := range v {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			hasSpecial = true
		}
	}

	if p.RequireUppercase && !hasUpper {
		return false
	}
	if p.RequireLowercase && !hasLower {
		return false
	}
	if p.RequireDigits && !hasDigit {
		return false
	}
	if p.RequireSpecial && !hasSpecial {
		return false
	}

	classes := 0
	for _, has := range []bool{hasUpper, hasLower, hasDigit, hasSpecial} {
		if has {
			classes++
		}
	}
	return classes >= p.MinCharClasses
}
