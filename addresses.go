package usdc

import "github.com/stablekit/usdc/chains"

// USDC contract addresses, one constant per supported network.  The
// linked explorer pages are the source for each value.
const (
	// ArbitrumUSDC is the native (Circle-issued) deployment, not the
	// bridged USDC.e contract.
	//
	// https://arbiscan.io/token/0xaf88d065e77c8cC2239327C5EDb3A432268e5831
	ArbitrumUSDC = "0xaf88d065e77c8cC2239327C5EDb3A432268e5831"

	// https://sepolia.arbiscan.io/token/0x75faf114eafb1BDbe2F0316DF893fd58CE46AA4d
	ArbitrumSepoliaUSDC = "0x75faf114eafb1BDbe2F0316DF893fd58CE46AA4d"

	// https://debank.com/token/avax/0xb97ef9ef8734c71904d8002f8b6bc66dd9c48a6e/overview
	AvalancheUSDC = "0xb97ef9ef8734c71904d8002f8b6bc66dd9c48a6e"

	// https://basescan.org/token/0x833589fCD6eDb6E08f4c7C32D4f71b54bdA02913
	BaseUSDC = "0x833589fCD6eDb6E08f4c7C32D4f71b54bdA02913"

	// https://base-sepolia.blockscout.com/address/0x036CbD53842c5426634e7929541eC2318f3dCF7e
	BaseSepoliaUSDC = "0x036CbD53842c5426634e7929541eC2318f3dCF7e"

	// BSCUSDC is the Binance-Peg USD Coin contract.
	BSCUSDC = "0x8AC76a51cc950d9822D68b83fE1Ad97B32Cd580d"

	// https://etherscan.io/token/0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48
	EthereumUSDC = "0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48"

	// https://sepolia.etherscan.io/address/0x1c7D4B196Cb0C7B01d743Fbc6116a902379C7238
	EthereumSepoliaUSDC = "0x1c7D4B196Cb0C7B01d743Fbc6116a902379C7238"

	// https://www.oklink.com/fantom/token/0x04068da6c83afcfa0e13ba15a6696662335d5b75
	FantomUSDC = "0x04068da6c83afcfa0e13ba15a6696662335d5b75"

	FraxtalUSDC = "0xDcc0F2D8F90FDe85b10aC1c8Ab57dc0AE946A543"

	LineaUSDC = "0x176211869cA2b568f2A7D4EE941E073a821EE1ff"

	// https://mantlescan.xyz/token/0x09bc4e0d864854c6afb6eb9a9cdf58ac190d0df9
	MantleUSDC = "0x09Bc4E0D864854c6aFB6eB9A9cdF58aC190D0dF9"

	ModeUSDC = "0xd988097fb8612cc24eeC14542bC03424c656005f"

	// OptimismUSDC is the native deployment, not the bridged USDC.e
	// contract.
	OptimismUSDC = "0x0b2C639c533813f4Aa9D7837CAf62653d097Ff85"

	// https://polygonscan.com/token/0x3c499c542cef5e3811e1192ce70d8cc03d5c3359
	PolygonUSDC = "0x3c499c542cEF5E3811e1192ce70d8cC03d5c3359"

	ScrollUSDC = "0x06eFdBFf2a14a7c8E15944D1F4A48F9F95F663A4"

	SonicUSDC = "0x29219dd400f2Bf60E5a23d13Be72B486D4038894"

	ZkSyncUSDC = "0x1d17CBcF0D6D143135aE902365D2E5e2A16538D4"
)

var addressTable = map[chains.NamedChain]string{
	chains.Arbitrum:          ArbitrumUSDC,
	chains.ArbitrumSepolia:   ArbitrumSepoliaUSDC,
	chains.Avalanche:         AvalancheUSDC,
	chains.Base:              BaseUSDC,
	chains.BaseSepolia:       BaseSepoliaUSDC,
	chains.BinanceSmartChain: BSCUSDC,
	chains.Fantom:            FantomUSDC,
	chains.Fraxtal:           FraxtalUSDC,
	chains.Linea:             LineaUSDC,
	chains.Mainnet:           EthereumUSDC,
	chains.Mantle:            MantleUSDC,
	chains.Mode:              ModeUSDC,
	chains.Optimism:          OptimismUSDC,
	chains.Polygon:           PolygonUSDC,
	chains.Scroll:            ScrollUSDC,
	chains.Sepolia:           EthereumSepoliaUSDC,
	chains.Sonic:             SonicUSDC,
	chains.ZkSync:            ZkSyncUSDC,
}
