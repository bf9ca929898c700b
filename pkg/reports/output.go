package reports

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// ParseLanguage reads a BCP 47 tag such as "en" or "de-CH". The empty string
// selects English.
func ParseLanguage(tag string) (language.Tag, error) {
	if tag == "" {
		return language.English, nil
	}
	t, err := language.Parse(tag)
	if err != nil {
		return language.Und, fmt.Errorf("cannot parse language %q: %w", tag, err)
	}
	return t, nil
}

// Summary renders the report counters with digit grouping for lang.
func (r *PostorderReport) Summary(lang language.Tag) string {
	p := message.NewPrinter(lang)
	s := p.Sprintf("%d nodes visited, %d threads installed (peak %d live), %d chain links reversed",
		r.Stats.Visits, r.Stats.Threads, r.Stats.PeakThreads, r.Stats.ChainLinks)
	if r.Verified {
		if r.Restored {
			s += ", tree restored"
		} else {
			s += ", tree NOT restored"
		}
	}
	return s
}
