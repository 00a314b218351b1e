package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"pathx/internal/app"
	"pathx/internal/llm"
	"pathx/internal/report"
	"pathx/internal/session"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()

	st, err := openStore(cmd)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	manager := session.NewManager(st.Records())
	manager.Initialize()

	// A missing credential is surfaced at generation time as a config
	// error; the app itself still starts.
	cfg := resolveLLMConfig()
	var provider llm.Provider
	if cfgErr := cfg.Validate(); cfgErr != nil {
		provider = llm.NewUnconfiguredProvider(cfgErr.Error())
	} else {
		provider, err = llm.NewProvider(ctx, cfg, st.RequestLog())
		if err != nil {
			return fmt.Errorf("build LLM provider: %w", err)
		}
	}

	orch := report.NewOrchestrator(st.Records(), provider)

	return app.Run(app.Deps{
		Manager:      manager,
		Orchestrator: orch,
	})
}

// resolveLLMConfig prefers explicit PATHX_ variables, then falls back to
// probing the providers' standard key variables.
func resolveLLMConfig() llm.Config {
	cfg := llm.ConfigFromEnv()
	if cfg.Validate() == nil {
		return cfg
	}
	if discovered, ok := llm.DiscoverConfig(); ok {
		return discovered
	}
	return cfg
}
