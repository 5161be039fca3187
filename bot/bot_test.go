package bot

import (
	"testing"

	"github.com/polyrabbit/coin-chat/price"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeLooker quotes every coin at the same price and remembers what was asked
type fakeLooker struct {
	tokens []string
	ids    []string
}

func (f *fakeLooker) Lookup(token string) price.Result {
	id := price.Resolve(token)
	f.tokens = append(f.tokens, token)
	f.ids = append(f.ids, id)
	return price.Result{
		Token:  token,
		ID:     id,
		Status: price.StatusOK,
		Quote:  &price.Quote{Token: token, ID: id, Price: 67187.339, Change24h: 2.3456},
	}
}

func newTestBot(opts Options) (*Bot, *fakeLooker) {
	looker := &fakeLooker{}
	return New(looker, opts), looker
}

func TestRespond_EmptyInput(t *testing.T) {
	b, looker := newTestBot(Options{})
	assert.Equal(t, EmptyInputReply, b.Respond(""))
	assert.Equal(t, EmptyInputReply, b.Respond("   "))
	assert.Equal(t, EmptyInputReply, b.Respond("\t\n"))
	assert.Empty(t, looker.tokens)
}

// Canned replies win even when the input names a coin or asks for a price
func TestRespond_CannedPrecedence(t *testing.T) {
	b, looker := newTestBot(Options{})
	for _, canned := range CannedReplies() {
		assert.Equal(t, canned.Reply, b.Respond(canned.Trigger))
		assert.Equal(t, canned.Reply, b.Respond(canned.Trigger+" what's the bitcoin price"))
		assert.Equal(t, canned.Reply, b.Respond("BTC worth? "+canned.Trigger))
	}
	assert.Equal(t, "You're welcome! Ask me about more crypto prices anytime!", b.Respond("thanks, what's bitcoin worth"))
	assert.Equal(t, "Hey! I'm your crypto bot. Ask me about cryptocurrency prices!", b.Respond("Hello!"))
	assert.Empty(t, looker.tokens)
}

func TestRespond_PriceIntent(t *testing.T) {

	t.Run("name and ticker resolve to one id", func(t *testing.T) {
		b, looker := newTestBot(Options{})
		assert.Equal(t, "💰 BITCOIN: $67,187.34 📈 (+2.35% 24h)", b.Respond("bitcoin price"))
		assert.Equal(t, "💰 BTC: $67,187.34 📈 (+2.35% 24h)", b.Respond("btc price"))
		assert.Equal(t, []string{"bitcoin", "btc"}, looker.tokens)
		assert.Equal(t, []string{"bitcoin", "bitcoin"}, looker.ids)
	})

	t.Run("coin found by substring", func(t *testing.T) {
		b, looker := newTestBot(Options{})
		b.Respond("What's Bitcoin's price?")
		b.Respond("How much is ETH?")
		b.Respond("What's the cost of Cardano?")
		assert.Equal(t, []string{"bitcoin", "eth", "cardano"}, looker.tokens)
	})

	t.Run("word match beats table order", func(t *testing.T) {
		b, looker := newTestBot(Options{})
		b.Respond("is sol trading above bitcoin's value")
		assert.Equal(t, []string{"sol"}, looker.tokens)
	})

	t.Run("no coin asks which one", func(t *testing.T) {
		b, looker := newTestBot(Options{})
		assert.Equal(t, WhichCoinReply, b.Respond("what is the price"))
		assert.Equal(t, WhichCoinReply, b.Respond("How much for a pizza?"))
		assert.Empty(t, looker.tokens)
	})
}

func TestRespond_Mention(t *testing.T) {
	b, looker := newTestBot(Options{})
	assert.Equal(t, "💰 DOGECOIN: $67,187.34 📈 (+2.35% 24h)", b.Respond("show me dogecoin"))
	b.Respond("Solana")
	b.Respond("I like MATIC")
	assert.Equal(t, []string{"dogecoin", "solana", "matic"}, looker.tokens)
	assert.Equal(t, "matic-network", looker.ids[2])

	// Without price words only whole words count as a mention
	assert.Equal(t, CapabilitiesReply, b.Respond("solana?"))
	assert.Len(t, looker.tokens, 3)
}

func TestRespond_Fallback(t *testing.T) {
	b, looker := newTestBot(Options{})
	assert.Equal(t, TooShortReply, b.Respond("xy"))
	assert.Equal(t, TooShortReply, b.Respond(" ?"))
	assert.Equal(t, CapabilitiesReply, b.Respond("xyz"))
	assert.Equal(t, CapabilitiesReply, b.Respond("tell me a joke"))

	// Same input, same answer
	for i := 0; i < 3; i++ {
		assert.Equal(t, CapabilitiesReply, b.Respond("tell me a joke"))
		assert.Equal(t, TooShortReply, b.Respond("ok"))
	}
	assert.Empty(t, looker.tokens)
}

func TestRespond_SubstringQuirk(t *testing.T) {
	b, looker := newTestBot(Options{})
	assert.Equal(t, "Hello! Ready to check some crypto prices?", b.Respond("tell me the history of ada"))
	assert.Empty(t, looker.tokens)
}

func TestRespond_WholeWord(t *testing.T) {
	b, looker := newTestBot(Options{WholeWord: true})

	assert.Equal(t, "Hello! Ready to check some crypto prices?", b.Respond("Hi!"))
	assert.Equal(t, CapabilitiesReply, b.Respond("tell me the history"))
	assert.Equal(t, "💰 ADA: $67,187.34 📈 (+2.35% 24h)", b.Respond("the history of ada"))
	assert.Equal(t, WhichCoinReply, b.Respond("is cardanocoin worth it"))

	b.Respond("what's btc? worth")
	b.Respond("solana?")
	assert.Equal(t, []string{"ada", "btc", "solana"}, looker.tokens)
}

func TestNew_RuleOrder(t *testing.T) {
	b, _ := newTestBot(Options{})
	var names []string
	for _, r := range b.rules {
		names = append(names, r.name)
	}
	require.Len(t, names, len(cannedReplies)+3)
	assert.Equal(t, []string{
		"canned:hello", "canned:hi", "canned:help", "canned:thanks", "canned:bye",
		"price-intent", "mention", "fallback",
	}, names)
}
