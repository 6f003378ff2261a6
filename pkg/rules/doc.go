// Package rules provides ready-made predicate and message pairs for the
// validation package: required and length checks, email and UUID format,
// allowed-value lists, numeric bounds and password policy.
//
// A Rule is inert data. Turn it into a live validator with Validator, or
// register several on a host at once with Apply, which keeps their
// messages in registration order:
//
//	password, _ := validation.NewField("Password", form.Password)
//	_, err := rules.Apply(form, password,
//	    rules.Required(rules.WithMessage("Password is required.")),
//	    rules.MinLen(3, rules.WithMessage("Password should be longer.")),
//	)
//
// Default messages are rendered with golang.org/x/text/message, so numbers
// follow the conventions of the language set with WithLanguage. Every rule
// carries a TranslationKey; with WithCatalog the message template is looked
// up under that key in an i18n.Catalog before falling back to the built-in
// English text.
package rules
