package price

import "strings"

type Alias struct {
	Name string // lowercase coin name or ticker
	ID   string // CoinGecko id
}

// Order matters, substring scans walk the table top down
var aliases = []Alias{
	{"bitcoin", "bitcoin"}, {"btc", "bitcoin"},
	{"ethereum", "ethereum"}, {"eth", "ethereum"},
	{"cardano", "cardano"}, {"ada", "cardano"},
	{"solana", "solana"}, {"sol", "solana"},
	{"dogecoin", "dogecoin"}, {"doge", "dogecoin"},
	{"litecoin", "litecoin"}, {"ltc", "litecoin"},
	{"chainlink", "chainlink"}, {"link", "chainlink"},
	{"polygon", "matic-network"}, {"matic", "matic-network"},
}

var aliasIndex = make(map[string]string, len(aliases))

func init() {
	for _, a := range aliases {
		if _, exist := aliasIndex[a.Name]; exist {
			panic("duplicated coin alias " + a.Name)
		}
		aliasIndex[a.Name] = a.ID
	}
}

// Aliases returns a copy of the alias table in definition order.
func Aliases() []Alias {
	return append([]Alias(nil), aliases...)
}

func IsAlias(word string) bool {
	_, ok := aliasIndex[strings.ToLower(word)]
	return ok
}

// Resolve maps a coin name or ticker to its CoinGecko id, unknown tokens
// are passed through lowercased on the chance they already are ids.
func Resolve(token string) string {
	token = strings.ToLower(strings.TrimSpace(token))
	if id, ok := aliasIndex[token]; ok {
		return id
	}
	return token
}
