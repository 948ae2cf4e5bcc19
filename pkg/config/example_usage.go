package config

// Example usage of the configuration system:
//
// 1. Load configuration with all sources:
//
//     cfg, err := config.Load("", nil)
//     if err != nil {
//         log.Fatal(err)
//     }
//
// 2. Load with a custom config file:
//
//     cfg, err := config.Load("/path/to/config.yaml", nil)
//     if err != nil {
//         log.Fatal(err)
//     }
//
// 3. Load with command line flags (from cobra):
//
//     flags := map[string]interface{}{
//         "items-per-page": itemsPerPage,
//         "listings": listings,
//         "output": "./my-scans",
//         "log-level": "debug",
//     }
//     cfg, err := config.Load("", flags)
//     if err != nil {
//         log.Fatal(err)
//     }
//
// 4. Programmatic configuration:
//
//     cfg := config.DefaultConfig()
//     cfg.Scan.ItemsPerPage = 25
//     cfg.Simulator.Listings = 500
//
//     if err := cfg.Validate(); err != nil {
//         log.Fatal(err)
//     }
//
// 5. Save configuration to file:
//
//     if err := cfg.Save(".auctionscan.yaml"); err != nil {
//         log.Fatal(err)
//     }
//
// 6. Environment variables:
//
//     export AUCTIONSCAN_ITEMS_PER_PAGE="25"
//     export AUCTIONSCAN_POLL_INTERVAL="100ms"
//     export AUCTIONSCAN_HISTORY_PATH="/var/lib/auctionscan/history.json"
//     export AUCTIONSCAN_LISTINGS="500"
//     export AUCTIONSCAN_SEED="42"
//     export AUCTIONSCAN_OUTPUT_DIR="./scans"
//     export AUCTIONSCAN_NOTIFICATIONS_ENABLED="false"
//     export AUCTIONSCAN_LOG_LEVEL="debug"
//
// 7. Using configuration in your application:
//
//     // Build the simulated venue from config
//     venue := simulator.New(&cfg.Simulator, cfg.Scan.ItemsPerPage, nil)
//
//     // Open the persistent key-value store
//     kv, err := store.NewFileKV(cfg.History.Path)
//
//     // Wire the controller
//     ctrl := scanner.New(venue, kv, scanner.Options{
//         ItemsPerPage:    cfg.Scan.ItemsPerPage,
//         HistoryCapacity: cfg.History.Capacity,
//     })
