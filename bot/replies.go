package bot

const (
	EmptyInputReply     = "Please enter a message!"
	WhichCoinReply      = "Which cryptocurrency price would you like to check? (e.g., Bitcoin, Ethereum, Solana)"
	TooShortReply       = "Could you be more specific? Ask me about crypto prices!"
	CapabilitiesReply   = "I specialize in cryptocurrency prices! Try asking: 'What's Bitcoin's price?' or 'How much is Ethereum worth?'"
	UpstreamFailReply   = "⚠️ API request failed. Please try again in a moment."
	NetworkFailReply    = "❌ Error fetching price: Network issue. Please check your connection."
	notFoundReplyFmt    = "❌ Sorry, couldn't find price for '%s'. Try: bitcoin, ethereum, solana, cardano, dogecoin"
	FarewellReply       = "See you later! Keep hodling! 🚀"
	minSpecificInputLen = 3
)

type CannedReply struct {
	Trigger string
	Reply   string
}

// Checked top down before anything else, the first contained trigger wins
var cannedReplies = []CannedReply{
	{"hello", "Hey! I'm your crypto bot. Ask me about cryptocurrency prices!"},
	{"hi", "Hello! Ready to check some crypto prices?"},
	{"help", "I can help you check cryptocurrency prices. Try asking: 'What's the price of Bitcoin?' or 'How much is ETH?'"},
	{"thanks", "You're welcome! Ask me about more crypto prices anytime!"},
	{"bye", FarewellReply},
}

var priceWords = []string{"price", "cost", "worth", "value", "much", "trading"}

// CannedReplies returns a copy of the canned reply table in matching order.
func CannedReplies() []CannedReply {
	return append([]CannedReply(nil), cannedReplies...)
}
