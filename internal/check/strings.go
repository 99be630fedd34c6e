// Package check holds the value-level predicates behind the fluent rule sets.
// Every function is pure and safe for concurrent use.
package check

import (
	"fmt"
	"regexp"
	"strings"
	"sync"
	"unicode"

	"github.com/Masterminds/semver/v3"
)

var (
	reLowercase    = regexp.MustCompile(`^[a-z]+$`)
	reUppercase    = regexp.MustCompile(`^[A-Z]+$`)
	reNumeric      = regexp.MustCompile(`^\d+$`)
	reAlpha        = regexp.MustCompile(`^[a-zA-Z]+$`)
	reAlphaNumeric = regexp.MustCompile(`^[a-zA-Z0-9]+$`)
	reGUID         = regexp.MustCompile(`(?i)^[0-9a-f]{8}-[0-9a-f]{4}-[1-5][0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`)
	reBase64       = regexp.MustCompile(`^(?:[A-Za-z0-9+/]{4})*(?:[A-Za-z0-9+/]{2}==|[A-Za-z0-9+/]{3}=)?$`)
	reURL          = regexp.MustCompile(`((([A-Za-z]{3,9}:(?:\/\/)?)(?:[\-;:&=\+\$,\w]+@)?[A-Za-z0-9\.\-]+|(?:www\.|[\-;:&=\+\$,\w]+@)[A-Za-z0-9\.\-]+)((?:\/[\+~%\/\.\w\-_]*)?\??(?:[\-\+=&;%@\.\w_]*)#?(?:[\.\!\/\\\w]*))?)`)
	reCreditCard   = regexp.MustCompile(`^(?:4[0-9]{12}(?:[0-9]{3})?|[25][1-7][0-9]{14}|6(?:011|5[0-9][0-9])[0-9]{12}|3[47][0-9]{13}|3(?:0[0-5]|[68][0-9])[0-9]{11}|(?:2131|1800|35\d{3})\d{11})$`)
	reCountryCode  = regexp.MustCompile(`^(` + strings.Join(countryCodes, "|") + `)$`)

	// RFC 5322 addresses, case-insensitive. The local-part class contains a
	// backtick, hence the concatenation.
	reEmail = regexp.MustCompile(`(?i)(?:[a-z0-9!#$%&'*+/=?^_` + "`" + `{|}~-]+(?:\.[a-z0-9!#$%&'*+/=?^_` + "`" +
		`{|}~-]+)*|"(?:[\x01-\x08\x0b\x0c\x0e-\x1f\x21\x23-\x5b\x5d-\x7f]|\\[\x01-\x09\x0b\x0c\x0e-\x7f])*")@` +
		`(?:(?:[a-z0-9](?:[a-z0-9-]*[a-z0-9])?\.)+[a-z0-9](?:[a-z0-9-]*[a-z0-9])?|\[(?:(?:25[0-5]|2[0-4][0-9]|[01]?[0-9][0-9]?)\.){3}` +
		`(?:25[0-5]|2[0-4][0-9]|[01]?[0-9][0-9]?|[a-z0-9-]*[a-z0-9]:(?:[\x01-\x08\x0b\x0c\x0e-\x1f\x21-\x5a\x53-\x7f]|\\[\x01-\x09\x0b\x0c\x0e-\x7f])+)\])`)
)

// ISO 3166-1 alpha-2.
var countryCodes = []string{
	"AF", "AX", "AL", "DZ", "AS", "AD", "AO", "AI", "AQ", "AG", "AR", "AM", "AW", "AU", "AT", "AZ",
	"BS", "BH", "BD", "BB", "BY", "BE", "BZ", "BJ", "BM", "BT", "BO", "BQ", "BA", "BW", "BV", "BR",
	"IO", "BN", "BG", "BF", "BI", "KH", "CM", "CA", "CV", "KY", "CF", "TD", "CL", "CN", "CX", "CC",
	"CO", "KM", "CG", "CD", "CK", "CR", "CI", "HR", "CU", "CW", "CY", "CZ", "DK", "DJ", "DM", "DO",
	"EC", "EG", "SV", "GQ", "ER", "EE", "ET", "FK", "FO", "FJ", "FI", "FR", "GF", "PF", "TF", "GA",
	"GM", "GE", "DE", "GH", "GI", "GR", "GL", "GD", "GP", "GU", "GT", "GG", "GN", "GW", "GY", "HT",
	"HM", "VA", "HN", "HK", "HU", "IS", "IN", "ID", "IR", "IQ", "IE", "IM", "IL", "IT", "JM", "JP",
	"JE", "JO", "KZ", "KE", "KI", "KP", "KR", "KW", "KG", "LA", "LV", "LB", "LS", "LR", "LY", "LI",
	"LT", "LU", "MO", "MK", "MG", "MW", "MY", "MV", "ML", "MT", "MH", "MQ", "MR", "MU", "YT", "MX",
	"FM", "MD", "MC", "MN", "ME", "MS", "MA", "MZ", "MM", "NA", "NR", "NP", "NL", "NC", "NZ", "NI",
	"NE", "NG", "NU", "NF", "MP", "NO", "OM", "PK", "PW", "PS", "PA", "PG", "PY", "PE", "PH", "PN",
	"PL", "PT", "PR", "QA", "RE", "RO", "RU", "RW", "BL", "SH", "KN", "LC", "MF", "PM", "VC", "WS",
	"SM", "ST", "SA", "SN", "RS", "SC", "SL", "SG", "SX", "SK", "SI", "SB", "SO", "ZA", "GS", "SS",
	"ES", "LK", "SD", "SR", "SJ", "SZ", "SE", "CH", "SY", "TW", "TJ", "TZ", "TH", "TL", "TG", "TK",
	"TO", "TT", "TN", "TR", "TM", "TC", "TV", "UG", "UA", "AE", "GB", "US", "UM", "UY", "UZ", "VU",
	"VE", "VN", "VG", "VI", "WF", "EH", "YE", "ZM", "ZW",
}

// Blank reports whether s is empty or consists only of white space.
func Blank(s string) bool { return strings.TrimSpace(s) == "" }

func Lowercase(s string) bool    { return reLowercase.MatchString(s) }
func Uppercase(s string) bool    { return reUppercase.MatchString(s) }
func Numeric(s string) bool      { return reNumeric.MatchString(s) }
func Alpha(s string) bool        { return reAlpha.MatchString(s) }
func AlphaNumeric(s string) bool { return reAlphaNumeric.MatchString(s) }
func GUID(s string) bool         { return reGUID.MatchString(s) }
func Base64(s string) bool       { return reBase64.MatchString(s) }
func URL(s string) bool          { return reURL.MatchString(s) }
func CountryCode(s string) bool  { return reCountryCode.MatchString(s) }
func Email(s string) bool        { return reEmail.MatchString(s) }
func CreditCard(s string) bool   { return reCreditCard.MatchString(s) }

// Mixedcase reports whether s is made of ASCII letters only and contains at least
// one lowercase and one uppercase letter.
func Mixedcase(s string) bool {
	if !reAlpha.MatchString(s) {
		return false
	}
	var lower, upper bool
	for _, r := range s {
		lower = lower || unicode.IsLower(r)
		upper = upper || unicode.IsUpper(r)
	}
	return lower && upper
}

// LengthBetween reports whether the rune count of s lies in [lo, hi].
func LengthBetween(s string, lo, hi int) bool {
	n := len([]rune(s))
	return n >= lo && n <= hi
}

// SemVer reports whether s is a strict semantic version (no "v" prefix, all three
// components present).
func SemVer(s string) bool {
	_, err := semver.StrictNewVersion(s)
	return err == nil
}

var patterns sync.Map // string -> *regexp.Regexp

// Pattern returns the compiled form of expr, compiling it once per process.
// An invalid expression panics.
func Pattern(expr string) *regexp.Regexp {
	if re, ok := patterns.Load(expr); ok {
		return re.(*regexp.Regexp)
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		panic(fmt.Sprintf("fluentval: invalid pattern %q: %v", expr, err))
	}
	actual, _ := patterns.LoadOrStore(expr, re)
	return actual.(*regexp.Regexp)
}
