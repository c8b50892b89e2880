package gen

import (
	"go/token"
	"strings"
	"unicode"

	"github.com/go-openapi/inflect"
)

var (
	rules    = ruleset()
	acronyms = make(map[string]struct{})
)

func ruleset() *inflect.Ruleset {
	rules := inflect.NewDefaultRuleset()
	// Add common initialisms, copied from golint.
	for _, w := range []string{
		"ACL", "API", "ASCII", "AWS", "CPU", "CSS", "DNS", "EOF", "GB", "GUID",
		"HTML", "HTTP", "HTTPS", "ID", "IP", "JSON", "KB", "LHS", "MAC", "MB",
		"QPS", "RAM", "RHS", "RPC", "SLA", "SMTP", "SQL", "SSH", "SSO", "TCP",
		"TLS", "TTL", "UDP", "UI", "UID", "URI", "URL", "UTF8", "UUID", "VM",
		"XML", "XMPP", "XSRF", "XSS",
	} {
		acronyms[w] = struct{}{}
		rules.AddAcronym(w)
	}
	return rules
}

// AddAcronym adds an initialism to the naming rules, so the pascal and
// camel helpers keep it upper-cased.
func AddAcronym(word string) {
	acronyms[word] = struct{}{}
	rules.AddAcronym(word)
}

// snake converts the given declaration or field name into snake_case.
//
//	PublicKey => public_key
//	HTTPCode  => http_code
//	UserID    => user_id
func snake(s string) string {
	var (
		j int
		b strings.Builder
	)
	for i := 0; i < len(s); i++ {
		r := rune(s[i])
		// Put '_' if it is not a start or end of a word, the current letter
		// is uppercase, and the previous is lowercase (as in "UserInfo"), or
		// the next is lowercase (as in "HTTPCode").
		if i > 0 && i < len(s)-1 && unicode.IsUpper(r) {
			if unicode.IsLower(rune(s[i-1])) ||
				j != i-1 && unicode.IsLower(rune(s[i+1])) && unicode.IsLetter(rune(s[i-1])) {
				j = i
				b.WriteString("_")
			}
		}
		b.WriteString(strings.ToLower(string(r)))
	}
	return b.String()
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || unicode.IsSpace(r)
}

func pascalWords(words []string) string {
	for i, w := range words {
		upper := strings.ToUpper(w)
		if _, ok := acronyms[upper]; ok {
			words[i] = upper
		} else {
			words[i] = rules.Capitalize(w)
		}
	}
	return strings.Join(words, "")
}

// pascal converts the given name into PascalCase.
//
//	user_info => UserInfo
//	full_name => FullName
//	user_id   => UserID
func pascal(s string) string {
	words := strings.FieldsFunc(s, isSeparator)
	return pascalWords(words)
}

// camel converts the given name into camelCase.
//
//	user_info => userInfo
//	full_name => fullName
//	user_id   => userID
func camel(s string) string {
	words := strings.FieldsFunc(s, isSeparator)
	if len(words) == 1 {
		return strings.ToLower(words[0])
	}
	return strings.ToLower(words[0]) + pascalWords(words[1:])
}

// receiver returns the receiver name of the given type name.
//
//	Agent        => a
//	AgentBuilder => ab
//	[]Agent      => a
func receiver(s string) (r string) {
	// Trim invalid tokens for an identifier prefix.
	s = strings.Trim(s, "[]*&0123456789")
	parts := strings.Split(snake(s), "_")
	minLen := len(parts[0])
	for _, w := range parts[1:] {
		if len(w) < minLen {
			minLen = len(w)
		}
	}
	for i := 1; i <= minLen; i++ {
		r := parts[0][:i]
		for _, w := range parts[1:] {
			r += w[:i]
		}
		if !token.Lookup(r).IsKeyword() {
			return r
		}
	}
	return strings.ToLower(s)
}

// builderField returns the struct-field name used for a field inside the
// generated structs, escaping Go keywords and predeclared conflicts.
func builderField(name string) string {
	f := camel(name)
	if token.Lookup(f).IsKeyword() || f == "config" {
		return "_" + f
	}
	return f
}
