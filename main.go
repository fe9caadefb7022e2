package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"ProjectAdminAI/app/clients"
	"ProjectAdminAI/app/configs"
	"ProjectAdminAI/app/handlers"
	"ProjectAdminAI/app/models"
	"ProjectAdminAI/app/restclient"
	"ProjectAdminAI/app/retrieval"
	"ProjectAdminAI/app/runtime"
	"ProjectAdminAI/app/search"
	"ProjectAdminAI/app/store"
	"ProjectAdminAI/app/utils"
)

func main() {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config.yaml"
	}

	cfg, err := configs.LoadConfig(configPath)
	if err != nil {
		log.Fatalf("❌ Error loading configs: %v", err)
	}
	if err = cfg.Validate(); err != nil {
		log.Fatalf("❌ Invalid configs: %v", err)
	}
	applyEnv(cfg)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	contextStore := store.NewContextStore()

	var cache store.SnapshotCache
	if cfg.Assistant.DBPath != "" {
		cache = store.NewSQLiteSnapshotCache()
	}

	rest := restclient.NewRestClient(cfg.Assistant.SitesAPI, nil)
	retriever := retrieval.NewService(rest, contextStore, cache, cfg.Assistant.ClientID, cfg.Assistant.PortalURL)
	retriever.WarmFromCache(ctx)

	model := models.NewLLMClient(cfg.Assistant.Model, cfg.Assistant.EmbModel)

	var searcher search.Interface
	if cfg.Search.Enabled {
		searcher = search.NewClient(model, contextStore)
	} else {
		searcher = search.NewClientWithVectors(nil, model, contextStore)
	}

	consumers := handlers.NewRegistry(model, contextStore, searcher)
	rt := runtime.NewRuntime(contextStore, retriever, consumers, searcher)

	if transcript, terr := utils.NewTranscriptLogger("assistant", 200); terr != nil {
		log.Printf("⚠️ Transcript disabled: %v", terr)
	} else {
		rt.WithTranscript(transcript)
		defer transcript.Close()
	}

	clientRegistry := clients.NewRegistry()
	if err = cfg.InitializeClients(clientRegistry, rt); err != nil {
		log.Fatalf("❌ Error initializing clients: %v", err)
	}
	defer clientRegistry.CloseAll()

	go rt.Start(ctx)
	log.Println("✅ Assistant started. Waiting for messages...")

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	log.Println("🔄 Shutting down...")
}

// applyEnv pushes config values into the env vars the components read,
// without clobbering anything already set by the operator.
func applyEnv(cfg *configs.Config) {
	setIfEmpty := func(key, value string) {
		if value != "" && os.Getenv(key) == "" {
			os.Setenv(key, value)
		}
	}
	setIfEmpty("DB_PATH", cfg.Assistant.DBPath)
	setIfEmpty("QDRANT_URL", cfg.Search.Host)
	if cfg.Search.Port != 0 {
		setIfEmpty("QDRANT_PORT", strconv.Itoa(cfg.Search.Port))
	}
}
