package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ngthanh/engmaster/internal/app"
	"github.com/ngthanh/engmaster/internal/culture"
	"github.com/ngthanh/engmaster/internal/gateway"
	"github.com/ngthanh/engmaster/internal/grader"
	"github.com/ngthanh/engmaster/internal/identity"
	"github.com/ngthanh/engmaster/internal/llm"
	"github.com/ngthanh/engmaster/internal/progress"
	"github.com/ngthanh/engmaster/internal/quizgen"
	"github.com/ngthanh/engmaster/internal/speech"
	"github.com/ngthanh/engmaster/internal/store"
)

// runApp opens the store, builds dependencies, and launches the TUI.
// An empty role goes through the login screen (or a saved profile).
func runApp(cmd *cobra.Command, role identity.Role) error {
	ctx := cmd.Context()
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	eventRepo := st.EventRepo()
	topic, _ := cmd.Flags().GetString("topic")

	syncer := progress.NewSyncer(os.Getenv("ENGMASTER_SHEET_URL"), eventRepo)
	defer syncer.Close()

	opts := app.Options{
		Events:   eventRepo,
		Profiles: st.ProfileRepo(),
		Syncer:   syncer,
		Topic:    topic,
		Role:     role,
	}

	var generator quizgen.Generator
	var answerGrader grader.Grader
	var tips culture.Fetcher

	// The speech primary path needs the raw Gemini client for the audio
	// modality; other setups degrade to a local TTS command.
	var synth speech.Synthesizer

	provider, err := llm.NewProviderFromEnv(ctx, eventRepo)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Running with the built-in fallback worksheet.")
	} else {
		generator = quizgen.New(provider, quizgen.DefaultConfig())
		answerGrader = grader.New(provider, grader.DefaultConfig())
		tips = culture.New(provider, culture.DefaultConfig())
		if gp, ok := llm.Base(provider).(*llm.GeminiProvider); ok {
			synth = speech.NewGeminiSynthesizer(gp.Client())
		}
	}

	svc := speech.NewService(synth, speech.NewCommandPlayer(), speech.NewCommandSpeaker(), eventRepo)
	defer svc.Close()

	opts.Gateway = gateway.New(generator, answerGrader, tips, svc)

	return app.Run(opts)
}
