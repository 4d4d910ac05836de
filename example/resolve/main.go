package main

import (
	"log/slog"
	"os"

	"github.com/lmittmann/tint"

	"github.com/stablekit/usdc"
	"github.com/stablekit/usdc/chains"
)

func main() {
	log := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level: slog.LevelDebug,
	}))

	reg, err := usdc.NewRegistry(usdc.WithLogger(log))
	if err != nil {
		log.Error("failed to create registry", tint.Err(err))
		os.Exit(1)
	}

	for _, chain := range []chains.NamedChain{
		chains.Mainnet,
		chains.Base,
		chains.Polygon,
		chains.Gnosis, // no USDC deployment, resolves to an error
	} {
		addr, err := reg.AddressFor(chain)
		if err != nil {
			log.Warn("no USDC deployment", slog.String("chain", chain.String()), tint.Err(err))

			continue
		}

		log.Info("USDC deployment", slog.String("chain", chain.String()), slog.String("address", addr.Hex()))
	}
}
