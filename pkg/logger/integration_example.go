package logger

// This file shows how to integrate the logger into the main application

/*
Example integration in a cobra command:

func runScan(cmd *cobra.Command, args []string) error {
	// Load configuration
	cfg, err := config.Load(configFile, flags)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize the logger before any component starts
	if err := logger.Initialize(&cfg.Logging); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log := logger.GetLogger()
	log.InfoWithFields("starting scan", map[string]interface{}{
		"items_per_page": cfg.Scan.ItemsPerPage,
		"poll_interval":  cfg.Scan.PollInterval,
	})

	// Components pick up the global logger when none is injected
	ctrl := scanner.New(venue, kv, scanner.Options{
		ItemsPerPage: cfg.Scan.ItemsPerPage,
	})

	// ... drive the scan ...
	return nil
}

For tests, inject a silent or capturing logger instead:

	ctrl := scanner.New(venue, kv, scanner.Options{
		Logger: logger.NewNopLogger(),
	})

	tl := logger.NewTestLogger()
	ctrl = scanner.New(venue, kv, scanner.Options{Logger: tl})
	// ... assert on tl.GetMessages() ...
*/
