package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/abhisek/preptalk/internal/llm"
	"github.com/abhisek/preptalk/internal/logger"
)

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Inspect LLM provider configuration",
}

var llmStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show which provider and model would be used",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, ok := llm.DiscoverConfig()
		if !ok {
			fmt.Println("No LLM provider configured. Interviews will run offline.")
			fmt.Println("Set GEMINI_API_KEY, OPENAI_API_KEY, ANTHROPIC_API_KEY, or OPENROUTER_API_KEY.")
			return nil
		}

		fmt.Printf("Provider:  %s\n", cfg.Provider)
		fmt.Printf("Model:     %s\n", cfg.ModelFor(cfg.Provider))
		fmt.Printf("Timeout:   %s\n", cfg.Timeout)
		fmt.Printf("Retries:   %d\n", cfg.Retry.MaxAttempts)
		return nil
	},
}

var llmPingCmd = &cobra.Command{
	Use:   "ping",
	Short: "Send a minimal request to the configured provider",
	RunE: func(cmd *cobra.Command, args []string) error {
		log, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
		if err != nil {
			return err
		}
		defer func() { _ = log.Sync() }()

		provider, err := llm.NewProviderFromEnv(cmd.Context(), log)
		if err != nil {
			return fmt.Errorf("no provider configured: %w", err)
		}

		resp, err := provider.Generate(llm.WithPurpose(cmd.Context(), "ping"), llm.Request{
			Messages:  []llm.Message{{Role: llm.RoleUser, Content: "Reply with the single word: pong"}},
			MaxTokens: 16,
		})
		if err != nil {
			return fmt.Errorf("provider unreachable: %w", err)
		}

		log.Info("provider responded",
			zap.String("model", resp.Model),
			zap.Int("output_tokens", resp.Usage.OutputTokens))
		fmt.Printf("%s is reachable (%s)\n", provider.ModelID(), string(resp.Content))
		return nil
	},
}

func init() {
	llmCmd.AddCommand(llmStatusCmd)
	llmCmd.AddCommand(llmPingCmd)
}
