package account

import (
	"fmt"
	"strings"
)

const (
	accountNameMinLength = 3
	accountNameMaxLength = 24
)

// deniedAccountNameChars is the character set rejected in storage account names.  Note this
// is an explicit deny-list rather than an alphanumeric allow-list: characters outside the
// set, including non-ASCII letters, pass through unchecked.
const deniedAccountNameChars = " \t!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// ReasonCode identifies which naming rule a candidate account name violated.
type ReasonCode string

const (
	// ReasonTooShort - the name is shorter than the 3 character minimum
	ReasonTooShort ReasonCode = "TooShort"

	// ReasonTooLong - the name is longer than the 24 character maximum
	ReasonTooLong ReasonCode = "TooLong"

	// ReasonUppercase - the name contains uppercase characters
	ReasonUppercase ReasonCode = "Uppercase"

	// ReasonIllegalChar - the name contains a deny-listed punctuation or whitespace character
	ReasonIllegalChar ReasonCode = "IllegalChar"
)

// Reason pairs a machine-readable rule code with a human-readable message so callers can
// branch on the failure kind without parsing text.
type Reason struct {
	Code    ReasonCode
	Message string
}

// Verdict is the result of validating a candidate storage account name.  Valid is true iff
// Reasons is empty.  Verdicts are immutable values created fresh per validation call.
type Verdict struct {
	Valid   bool
	Reasons []Reason
}

// String renders the verdict as a single human-readable line.
func (v Verdict) String() string {
	if v.Valid {
		return "valid"
	}
	msgs := make([]string, len(v.Reasons))
	for i, r := range v.Reasons {
		msgs[i] = r.Message
	}
	return strings.Join(msgs, "; ")
}

// ValidateAccountName checks a candidate storage account name against the provider naming
// rules: 3-24 characters, no uppercase, none of the deny-listed punctuation/whitespace
// characters.  Every rule is evaluated independently so a single pass reports all
// violations.  Pure and deterministic; never returns an error.
func ValidateAccountName(name string) Verdict {
	var reasons []Reason

	if len(name) < accountNameMinLength {
		reasons = append(reasons, Reason{
			Code:    ReasonTooShort,
			Message: fmt.Sprintf("name must be at least %d characters, got %d", accountNameMinLength, len(name)),
		})
	}

	if len(name) > accountNameMaxLength {
		reasons = append(reasons, Reason{
			Code:    ReasonTooLong,
			Message: fmt.Sprintf("name must be at most %d characters, got %d", accountNameMaxLength, len(name)),
		})
	}

	if name != strings.ToLower(name) {
		reasons = append(reasons, Reason{
			Code:    ReasonUppercase,
			Message: "name must not contain uppercase characters",
		})
	}

	// One reason per distinct offending character, in first-occurrence order.
	seen := make(map[rune]bool)
	for _, r := range name {
		if strings.ContainsRune(deniedAccountNameChars, r) && !seen[r] {
			seen[r] = true
			reasons = append(reasons, Reason{
				Code:    ReasonIllegalChar,
				Message: fmt.Sprintf("name must not contain %q", r),
			})
		}
	}

	return Verdict{Valid: len(reasons) == 0, Reasons: reasons}
}
