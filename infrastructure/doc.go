// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package.
//
// The infrastructure package is organized by technical concern:
//
// - http/standard: net/http client with a per-call timeout
// - logger: backend selection and rotated file output
// - logger/logruslogger: logrus backend (default)
// - logger/zaplogger: zap backend
//
// # HTTP Client
//
//	client := standard.NewStandardHTTPClient(10*time.Second, nil)
//	resp, err := client.Get(ctx, "http://search.example.com/blog/api/v1/elastic/42")
//	if err != nil {
//	    // Handle error
//	}
//	defer resp.Body().Close()
//
// # Logger
//
//	log, closer, err := logger.New(config.LoggingConfig{Backend: "zap", Level: "info", Format: "json"})
//	defer closer.Close()
//	log.Info("Processing request", map[string]interface{}{
//	    "intent": "find_single_post",
//	})
package infrastructure
