package ideas

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// DefaultMaxKeywords is used when ExtractKeywords is given a non-positive limit.
const DefaultMaxKeywords = 15

var stopWords = map[string]struct{}{}

func init() {
	for _, w := range strings.Fields(`
		the and for are but not you all any can had her was one our out day get
		has him his how man new now old see two way who did its let put say she
		too use this that with have from they will would there their what about
		which when make like time just know take into year your some could them
		than then also been more most only other over such very where while these
		those through many well each here within were being does doing because
		should after before under again further once both few own same
		off until above below between during visit visitors offers famous located
	`) {
		stopWords[w] = struct{}{}
	}
}

// IsStopWord reports whether w is filtered out by ExtractKeywords.
func IsStopWord(w string) bool {
	_, ok := stopWords[strings.ToLower(w)]
	return ok
}

// ExtractKeywords returns up to maxKeywords lowercase tokens from text, most
// frequent first. Tokens of two characters or fewer and stop words are
// dropped. Tokens with equal frequency keep the order they first appeared in.
func ExtractKeywords(text string, maxKeywords int) []string {
	if maxKeywords <= 0 {
		maxKeywords = DefaultMaxKeywords
	}

	tokens := tokenize(text)
	if len(tokens) == 0 {
		return []string{}
	}

	counts := make(map[string]int, len(tokens))
	order := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if utf8.RuneCountInString(tok) <= 2 {
			continue
		}
		if _, stop := stopWords[tok]; stop {
			continue
		}
		if counts[tok] == 0 {
			order = append(order, tok)
		}
		counts[tok]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	if len(order) > maxKeywords {
		order = order[:maxKeywords]
	}
	return order
}

func tokenize(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return unicode.ToLower(r)
		}
		return ' '
	}, text)
	return strings.Fields(cleaned)
}
