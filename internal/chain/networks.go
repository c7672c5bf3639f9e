package chain

// Network is a named blockchain context with its own address shape and
// decimal precision.
type Network string

const (
	Solana    Network = "solana"
	Ethereum  Network = "ethereum"
	Bitcoin   Network = "bitcoin"
	TeosToken Network = "teos-token"
)

// Descriptor holds the static parameters of a supported network. The
// table below is fixed at process start and never mutated.
type Descriptor struct {
	Name     string  `json:"name"`
	Symbol   string  `json:"symbol"`
	RPCURL   string  `json:"rpc_url"`
	Explorer string  `json:"explorer"`
	Decimals int     `json:"decimals"`
	Contract *string `json:"contract,omitempty"`
}

var teosContract = "AhXBUQmbhv9dNoZCiMYmXF4Gyi1cjQthWHFhTL2CJaSo"

var networks = map[Network]Descriptor{
	Solana: {
		Name:     "Solana",
		Symbol:   "SOL",
		RPCURL:   "https://api.mainnet-beta.solana.com",
		Explorer: "https://explorer.solana.com",
		Decimals: 9,
	},
	Ethereum: {
		Name:     "Ethereum",
		Symbol:   "ETH",
		RPCURL:   "https://mainnet.infura.io/v3/YOUR_PROJECT_ID",
		Explorer: "https://etherscan.io",
		Decimals: 18,
	},
	Bitcoin: {
		Name:     "Bitcoin",
		Symbol:   "BTC",
		RPCURL:   "https://blockstream.info/api",
		Explorer: "https://blockstream.info",
		Decimals: 8,
	},
	TeosToken: {
		Name:     "TEOS",
		Symbol:   "TEOS",
		RPCURL:   "https://api.mainnet-beta.solana.com",
		Explorer: "https://explorer.solana.com",
		Decimals: 6,
		Contract: &teosContract,
	},
}

// Supported reports whether the network is one the wallet backend tracks.
func Supported(network Network) bool {
	_, ok := networks[network]
	return ok
}

// Get returns the descriptor for the given network.
func Get(network Network) (Descriptor, bool) {
	desc, ok := networks[network]
	return desc, ok
}

// Descriptors returns a copy of the full network table.
func Descriptors() map[Network]Descriptor {
	out := make(map[Network]Descriptor, len(networks))
	for name, desc := range networks {
		out[name] = desc
	}
	return out
}

// Names returns the supported network names.
func Names() []Network {
	out := make([]Network, 0, len(networks))
	for name := range networks {
		out = append(out, name)
	}
	return out
}

// ForSymbol maps an asset symbol to the network that carries it.
func ForSymbol(symbol string) (Network, bool) {
	for name, desc := range networks {
		if desc.Symbol == symbol {
			return name, true
		}
	}
	return "", false
}
