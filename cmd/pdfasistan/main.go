package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ekaya/pdfasistan/internal/assistant"
	"github.com/ekaya/pdfasistan/internal/config"
	"github.com/ekaya/pdfasistan/internal/controller"
	"github.com/ekaya/pdfasistan/internal/library"
	"github.com/ekaya/pdfasistan/internal/pkg/logger"
	"github.com/ekaya/pdfasistan/internal/server"
	"github.com/ekaya/pdfasistan/internal/service"
	"github.com/ekaya/pdfasistan/internal/state"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")
	defer log.Sync()

	if err := library.EnsureDir(cfg.App.DataDir); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating data dir: %v\n", err)
		os.Exit(1)
	}

	questions, err := config.LoadQuestions(cfg.App.QuestionsPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading questions: %v\n", err)
		os.Exit(1)
	}

	backend, err := assistant.NewOpenAIBackend(cfg.OpenAI.APIKey, cfg.OpenAI.DefaultModel, cfg.OpenAI.PollInterval)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing OpenAI backend: %v\n", err)
		os.Exit(1)
	}

	store := state.NewStore(cfg.App.StatePath)
	ragService := service.NewRagService(cfg, backend, store, log, questions)
	ragController := controller.NewRagController(ragService)
	srv := server.New(cfg, ragController)

	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		<-sig
		log.Info("main", "shutting down", nil)
		_ = srv.Shutdown()
	}()

	log.Info("main", "server starting", map[string]interface{}{
		"port":     cfg.App.Port,
		"data_dir": cfg.App.DataDir,
		"model":    cfg.OpenAI.DefaultModel,
	})
	if err := srv.Run(); err != nil {
		log.Error("main", "server stopped", map[string]interface{}{"error": err.Error()})
		os.Exit(1)
	}
}
