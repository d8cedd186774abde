package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/ekaya/pdfasistan/internal/assistant"
	"github.com/ekaya/pdfasistan/internal/config"
	"github.com/ekaya/pdfasistan/internal/state"

	"github.com/fatih/color"
)

// ask is a terminal shortcut around the same hosted assistant the web UI
// uses. It needs an existing index; run the server and index the PDFs first.
func main() {
	model := flag.String("model", "", "model to use (defaults to OPENAI_MODEL)")
	timeout := flag.Duration("timeout", 2*time.Minute, "how long to wait for an answer")
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		fmt.Fprintf(os.Stderr, "Usage: ask [options] <question>\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		os.Exit(1)
	}
	question := strings.Join(args, " ")

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	st, err := state.NewStore(cfg.App.StatePath).Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading state: %v\n", err)
		os.Exit(1)
	}
	if !st.Indexed() {
		fmt.Fprintf(os.Stderr, "Error: no index found in %s\n", cfg.App.StatePath)
		fmt.Fprintf(os.Stderr, "Start the server and index the PDFs first\n")
		os.Exit(1)
	}

	backend, err := assistant.NewOpenAIBackend(cfg.OpenAI.APIKey, cfg.OpenAI.DefaultModel, cfg.OpenAI.PollInterval)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing OpenAI backend: %v\n", err)
		os.Exit(1)
	}

	chosen := *model
	if chosen == "" {
		chosen = cfg.OpenAI.DefaultModel
	}
	if !cfg.OpenAI.ModelAllowed(chosen) {
		fmt.Fprintf(os.Stderr, "Error: model %q is not in the allow-list (%s)\n",
			chosen, strings.Join(cfg.OpenAI.AllowedModels, ", "))
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	boldGreen := color.New(color.FgGreen, color.Bold).SprintFunc()
	boldCyan := color.New(color.FgCyan, color.Bold).SprintFunc()

	fmt.Printf("%s %s\n", boldGreen("Soru:"), question)

	idx := &assistant.Index{VectorStoreID: st.VectorStoreID, AssistantID: st.AssistantID}
	answer, err := backend.Ask(ctx, idx, question, chosen)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("\n%s\n%s\n", boldCyan("Cevap:"), answer)
}
