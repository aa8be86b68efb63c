package main

import (
	stdctx "context"
	"fmt"
	"log"
	"net/http"

	"github.com/asynkron/protoactor-go/actor"

	"eventrix/internal/config"
	"eventrix/internal/content"
	"eventrix/internal/engine"
	"eventrix/internal/handlers"
	"eventrix/internal/middleware"
	"eventrix/internal/store"
	"eventrix/internal/utils"
	"eventrix/internal/websocket"
)

func openStore(cfg *config.StoreConfig) (store.Store, error) {
	switch cfg.Backend {
	case "memory":
		return store.NewMemoryStore(), nil
	case "badger":
		return store.NewBadgerStore(cfg.BadgerPath)
	case "mongo":
		return store.NewMongoStore(cfg.MongoURI)
	}
	return nil, fmt.Errorf("unsupported store backend: %s", cfg.Backend)
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	metrics := utils.NewMetricsCollector()

	s, err := openStore(cfg.Store)
	if err != nil {
		log.Fatalf("Failed to open %s store: %v", cfg.Store.Backend, err)
	}
	defer s.Close(stdctx.Background())
	log.Printf("Using %s store backend", cfg.Store.Backend)

	catalog := content.NewCatalog(s, &cfg.Reference)
	log.Printf("Distances measured from reference point (%.4f, %.4f)", cfg.Reference.Lat, cfg.Reference.Lng)

	system := actor.NewActorSystem()
	eventrixEngine := engine.NewEngine(system, metrics, s, catalog)

	hub := websocket.NewHub()
	go hub.Run()

	server := handlers.NewServer(system, system.Root, eventrixEngine, metrics, hub)

	mux := http.NewServeMux()
	mux.HandleFunc("/health", server.HandleHealth())
	mux.HandleFunc("/content", server.HandleContent())
	mux.HandleFunc("/content/draft", server.HandleDraft())
	mux.HandleFunc("/content/vote", server.HandleVote())
	mux.HandleFunc("/content/like", server.HandleLike())
	mux.HandleFunc("/content/track", server.HandleTrack())
	mux.HandleFunc("/content/liked", server.HandleLikedContent())
	mux.HandleFunc("/content/interactions", server.HandleInteractionLists())
	mux.HandleFunc("/ws", server.HandleWebSocket())

	corsConfig := middleware.DefaultCORSConfig(cfg.AllowedOrigins)
	handler := middleware.CORSMiddleware(corsConfig)(mux)

	serverAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Printf("Starting server on %s", serverAddr)
	if err := http.ListenAndServe(serverAddr, handler); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
