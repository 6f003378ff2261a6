// Package i18n loads localized validation message templates.
//
// Catalogs are read from a Source: an in-memory MapSource, a single JSON or
// YAML file (FileSource) or a directory of such files in any fs.FS, such as
// an embed.FS (FSSource). Files map language tags to message keys; nested
// groups are flattened with dots:
//
//	en:
//	  validation:
//	    required: "This field is required."
//	    min_length: "Must be at least %d characters long."
//	de:
//	  validation:
//	    min_length: "Muss mindestens %d Zeichen lang sein."
//
// Templates use fmt verbs and are rendered with golang.org/x/text/message,
// so "%d" with 1000 renders "1,000" in English and "1.000" in German.
//
// # Usage
//
//	cat, err := i18n.Load(ctx, i18n.FileSource{Path: "messages.yaml"})
//	if err != nil {
//		return err
//	}
//	rule := rules.MinLen(8, rules.WithCatalog(cat), rules.WithLanguage(language.German))
//
// Lookups fall back from a regional tag to its parent language and then to
// the catalog's default language. When no template exists the caller's
// fallback text is used.
package i18n
