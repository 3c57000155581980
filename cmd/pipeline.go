package cmd

import (
	"github.com/rs/zerolog/log"
	config "github.com/thirdweb-dev/blocklinks/configs"
	"github.com/thirdweb-dev/blocklinks/internal/fetcher"
	"github.com/thirdweb-dev/blocklinks/internal/rpc"
	"github.com/thirdweb-dev/blocklinks/internal/storage"
)

// newBlockFetcher wires the configured store and RPC client. The returned func
// releases both.
func newBlockFetcher() (*fetcher.BlockFetcher, func()) {
	if err := config.Cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}

	rpcClient, err := rpc.Initialize(&config.Cfg.RPC)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize RPC")
	}

	store, err := storage.NewBlockStore(&config.Cfg.Storage)
	if err != nil {
		rpcClient.Close()
		log.Fatal().Err(err).Msg("Failed to initialize block store")
	}

	closer := func() {
		if err := store.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close block store")
		}
		rpcClient.Close()
	}
	return fetcher.NewBlockFetcher(store, rpcClient), closer
}
