// Package bot answers one line of free text with one line of text, it tells
// greetings from price questions and looks prices up when asked.
package bot

import (
	"strings"
	"unicode/utf8"

	"github.com/polyrabbit/coin-chat/price"
	"github.com/sirupsen/logrus"
)

var coinAliases = price.Aliases()

type Options struct {
	// Match canned triggers and coin names on whole words, not substrings
	WholeWord bool
}

// A rule is one step of the dispatch, match reports whether the rule applies
// and what it captured (a trigger or a coin token), reply builds the answer.
type rule struct {
	name  string
	match func(input string) (string, bool)
	reply func(input, matched string) string
}

type Bot struct {
	looker  price.Looker
	matcher matcher
	rules   []rule
}

func New(looker price.Looker, opts Options) *Bot {
	b := &Bot{looker: looker, matcher: substringMatcher{}}
	if opts.WholeWord {
		b.matcher = wholeWordMatcher{}
	}

	// Canned replies go first, "thanks, what's btc worth" is a thank you
	for _, canned := range cannedReplies {
		canned := canned
		b.rules = append(b.rules, rule{
			name: "canned:" + canned.Trigger,
			match: func(input string) (string, bool) {
				return canned.Trigger, b.matcher.contains(input, canned.Trigger)
			},
			reply: func(string, string) string { return canned.Reply },
		})
	}
	b.rules = append(b.rules,
		rule{name: "price-intent", match: b.matchPriceIntent, reply: b.replyPriceIntent},
		rule{name: "mention", match: b.matchMention, reply: b.replyPrice},
		rule{name: "fallback", match: matchAnything, reply: replyFallback},
	)
	return b
}

// Respond never fails, every input gets a non-empty reply.
func (b *Bot) Respond(input string) string {
	if strings.TrimSpace(input) == "" {
		return EmptyInputReply
	}
	normalized := strings.ToLower(strings.TrimSpace(input))

	for _, r := range b.rules {
		if matched, ok := r.match(normalized); ok {
			logrus.WithField("rule", r.name).Debugf("Replying to %q", normalized)
			return r.reply(normalized, matched)
		}
	}
	return CapabilitiesReply
}

func (b *Bot) matchPriceIntent(input string) (string, bool) {
	for _, word := range priceWords {
		if b.matcher.contains(input, word) {
			return b.findCoin(input), true
		}
	}
	return "", false
}

func (b *Bot) replyPriceIntent(input, coin string) string {
	if coin == "" {
		return WhichCoinReply
	}
	return b.replyPrice(input, coin)
}

func (b *Bot) matchMention(input string) (string, bool) {
	coin := b.firstCoinWord(input)
	return coin, coin != ""
}

func (b *Bot) replyPrice(_, coin string) string {
	return FormatResult(b.looker.Lookup(coin))
}

// findCoin prefers a word that is a coin name, then any coin name contained
// in the input, "bitcoin's" still finds bitcoin.
func (b *Bot) findCoin(input string) string {
	if coin := b.firstCoinWord(input); coin != "" {
		return coin
	}
	for _, a := range coinAliases {
		if b.matcher.contains(input, a.Name) {
			return a.Name
		}
	}
	return ""
}

func (b *Bot) firstCoinWord(input string) string {
	for _, word := range b.matcher.words(input) {
		if price.IsAlias(word) {
			return word
		}
	}
	return ""
}

func matchAnything(string) (string, bool) {
	return "", true
}

func replyFallback(input, _ string) string {
	if utf8.RuneCountInString(input) < minSpecificInputLen {
		return TooShortReply
	}
	return CapabilitiesReply
}
