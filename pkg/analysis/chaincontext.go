package analysis

import "fmt"

// chainContexts holds background blocks for chains we know well. Anything
// else gets the generic Cosmos SDK context.
var chainContexts = map[string]string{
	"cosmoshub-4": `Cosmos Hub is the first blockchain in the Cosmos Network, serving as the central hub for IBC transfers.
Key characteristics: ATOM token, validator-based PoS, IBC hub, minimal smart contract functionality.
Governance focus: network security, IBC protocol upgrades, validator set management, ATOM economics.
Risk considerations: central hub status means high security requirements, IBC stability critical.`,

	"osmosis-1": `Osmosis is the premier DEX and AMM protocol in the Cosmos ecosystem.
Key characteristics: OSMO token, superfluid staking, AMM pools, governance-driven tokenomics.
Governance focus: DEX parameters, liquidity incentives, tokenomics, superfluid staking.
Risk considerations: DeFi protocol risks, MEV considerations, liquidity management.`,

	"juno-1": `Juno is a smart contract platform focused on CosmWasm and decentralized applications.
Key characteristics: JUNO token, CosmWasm smart contracts, developer-focused ecosystem.
Governance focus: smart contract parameters, developer incentives, network upgrades.
Risk considerations: smart contract security, developer ecosystem growth, competition.`,
}

// ChainContext returns the chain-specific background block for the prompt.
func ChainContext(chainID, chainName string) string {
	if ctx, ok := chainContexts[chainID]; ok {
		return ctx
	}
	return fmt.Sprintf(`%s is a Cosmos SDK-based blockchain with its own governance mechanisms.
Key characteristics: Cosmos SDK framework, Tendermint consensus, IBC compatibility.
Governance focus: network parameters, validator management, protocol upgrades.
Risk considerations: standard Cosmos SDK risks, validator centralization, upgrade coordination.`, chainName)
}
