// Command walletengine is a small CLI harness around the rpc package's
// HandleRequest entry point, for exercising the engine from a shell
// instead of embedding it. It is not part of the engine's public API.
package main

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"

	"github.com/vaultkit/walletengine/internal/config"
	"github.com/vaultkit/walletengine/internal/rpc"
	"github.com/vaultkit/walletengine/internal/storage"
)

func main() {
	cfg := config.FromEnv()
	logger := slog.Default().With("component", "cmd")
	logger.Info("starting walletengine", "scrypt_n", cfg.ScryptN, "scrypt_p", cfg.ScryptP)

	handler := rpc.Handler{Store: storage.NewMemoryStoredKeyStore()}

	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), cfg.MaxRequestFrameBytes)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		out := handler.HandleRequest(line)
		fmt.Println(string(out))
	}
	if err := scanner.Err(); err != nil {
		logger.Error("reading requests", "error", err)
		os.Exit(1)
	}
}
