package formrules

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate is shared by every rule. A *validator.Validate is safe for
// concurrent use once its custom validations are registered, which
// happens here and nowhere else.
var validate = newValidate()

func newValidate() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("digits", validateDigitCount); err != nil {
		panic(fmt.Sprintf("formrules: register digits: %v", err))
	}
	if err := v.RegisterValidation("emaildomain", validateEmailDomain); err != nil {
		panic(fmt.Sprintf("formrules: register emaildomain: %v", err))
	}
	return v
}

// validateDigitCount implements `digits=n`: the value holds exactly n
// characters in 0-9, whatever else surrounds them.
func validateDigitCount(fl validator.FieldLevel) bool {
	n, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}
	return CountDigits(fl.Field().String()) == n
}

// validateEmailDomain requires a dotted domain after the last '@'.
func validateEmailDomain(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	at := strings.LastIndex(s, "@")
	if at < 0 {
		return false
	}
	domain := s[at+1:]
	return strings.Index(domain, ".") > 0 && !strings.HasSuffix(domain, ".")
}

// Rule classifies a raw value as accepted or rejected. Message is what the
// user sees when the rule rejects.
type Rule struct {
	Name    string
	Message string
	check   func(string) bool
}

// Check reports whether value passes the rule.
func (r Rule) Check(value string) bool {
	if r.check == nil {
		return true
	}
	return r.check(value)
}

// tagRule builds a rule from a validator tag expression.
func tagRule(name, tag, msg string, prepare func(string) string) Rule {
	return Rule{
		Name:    name,
		Message: msg,
		check: func(value string) bool {
			if prepare != nil {
				value = prepare(value)
			}
			return validate.Var(value, tag) == nil
		},
	}
}

// Required rejects values that are empty after trimming.
func Required(msg string) Rule {
	return tagRule("required", "required", msg, strings.TrimSpace)
}

// LengthExact rejects values whose character count is not n.
func LengthExact(n int, msg string) Rule {
	return tagRule("len", fmt.Sprintf("len=%d", n), msg, nil)
}

// LengthRange rejects values whose character count falls outside [min, max].
func LengthRange(min, max int, msg string) Rule {
	return tagRule("range", fmt.Sprintf("min=%d,max=%d", min, max), msg, nil)
}

// EmailShape rejects values that are not local-part@domain.tld.
func EmailShape(msg string) Rule {
	return tagRule("email", "email,emaildomain", msg, strings.TrimSpace)
}

// DigitCount rejects values that do not hold exactly n digits once every
// other character is ignored, so masked input like 123.456.789-09 counts
// as 11.
func DigitCount(n int, msg string) Rule {
	return tagRule("digits", fmt.Sprintf("digits=%d", n), msg, nil)
}

// MinEnumLength rejects select values shorter than n. Placeholder options
// ("pad", "padrao") are shorter than every real option.
func MinEnumLength(n int, msg string) Rule {
	return tagRule("min", fmt.Sprintf("min=%d", n), msg, nil)
}

// OneOf rejects values outside the closed list.
func OneOf(options []string, msg string) Rule {
	set := make(map[string]struct{}, len(options))
	for _, o := range options {
		set[o] = struct{}{}
	}
	return Rule{
		Name:    "option",
		Message: msg,
		check: func(value string) bool {
			_, ok := set[value]
			return ok
		},
	}
}
