package simulator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"math/rand"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"

	"eventrix/internal/models"
)

type SimConfig struct {
	NumClients      int
	SimulationTime  time.Duration
	BrowseFrequency float64 // browses per client per hour
	CreateFrequency float64 // creations per client per hour
	VoteFrequency   float64 // votes per client per hour
	LikeFrequency   float64 // likes per client per hour
	ZipfS           float64
	EngineURL       string
}

type SimulationStats struct {
	mu               sync.RWMutex
	StartTime        time.Time
	TotalRequests    int64
	SuccessRequests  int64
	FailedRequests   int64
	AverageLatency   time.Duration
	TotalBrowses     int
	TotalCreated     int
	TotalVotes       int
	DuplicateVotes   int
	TotalLikes       int
	RequestLatencies []time.Duration
}

// SimulatedClient mirrors one browser session: which items it has
// voted on and liked locally, and what it has published.
type SimulatedClient struct {
	ID           uuid.UUID
	VotedItems   map[string]bool
	LikedItems   map[string]bool
	CreatedItems []string
}

type Simulator struct {
	config  SimConfig
	stats   *SimulationStats
	clients []*SimulatedClient

	// Known content ids per kind, refreshed from the engine. Votes and
	// likes pick from these with a Zipf skew so a few items get most
	// of the attention.
	knownIDs map[string][]string

	client *http.Client
	mu     sync.RWMutex
}

func NewSimulator(config SimConfig) *Simulator {
	return &Simulator{
		config: config,
		stats: &SimulationStats{
			StartTime:        time.Now(),
			RequestLatencies: make([]time.Duration, 0),
		},
		knownIDs: make(map[string][]string),
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (s *Simulator) Run(ctx context.Context) error {
	log.Printf("Starting simulation...")

	if err := s.initialize(ctx); err != nil {
		return fmt.Errorf("initialization failed: %v", err)
	}

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := s.SimulateActivities(ctx); err != nil {
			log.Printf("Activities simulation error: %v", err)
		}
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		s.refreshCatalog(ctx)
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		s.collectMetrics(ctx)
	}()

	wg.Wait()
	return nil
}

func (s *Simulator) initialize(ctx context.Context) error {
	log.Printf("Phase 1: Creating %d simulated clients...", s.config.NumClients)
	s.clients = make([]*SimulatedClient, 0, s.config.NumClients)
	for i := 0; i < s.config.NumClients; i++ {
		s.clients = append(s.clients, &SimulatedClient{
			ID:         uuid.New(),
			VotedItems: make(map[string]bool),
			LikedItems: make(map[string]bool),
		})
	}

	log.Printf("Phase 2: Loading the content catalog...")
	for _, kind := range []string{models.KindEvent, models.KindIssue} {
		if err := s.loadCatalog(kind); err != nil {
			return fmt.Errorf("failed to load %s catalog: %v", kind, err)
		}
	}

	log.Printf("Initialization completed: %d events, %d issues known",
		len(s.knownIDs[models.KindEvent]), len(s.knownIDs[models.KindIssue]))
	return nil
}

func (s *Simulator) loadCatalog(kind string) error {
	resp, err := s.makeRequest("GET", "/content?kind="+kind, nil)
	if err != nil {
		return err
	}

	var items []models.ContentItem
	if err := json.Unmarshal(resp, &items); err != nil {
		return fmt.Errorf("failed to parse catalog response: %v", err)
	}

	ids := make([]string, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ID)
	}

	s.mu.Lock()
	s.knownIDs[kind] = ids
	s.mu.Unlock()
	return nil
}

// refreshCatalog re-reads the catalog periodically so freshly created
// items become vote and like targets.
func (s *Simulator) refreshCatalog(ctx context.Context) {
	ticker := time.NewTicker(15 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			for _, kind := range []string{models.KindEvent, models.KindIssue} {
				if err := s.loadCatalog(kind); err != nil {
					log.Printf("Catalog refresh failed for %s: %v", kind, err)
				}
			}
		}
	}
}

// pickZipfTarget selects a known id with a Zipf skew: low ranks (the
// first ids in the catalog) are picked far more often.
func (s *Simulator) pickZipfTarget(kind string) (string, bool) {
	s.mu.RLock()
	ids := s.knownIDs[kind]
	s.mu.RUnlock()
	if len(ids) == 0 {
		return "", false
	}
	zipf := rand.NewZipf(rand.New(rand.NewSource(time.Now().UnixNano())),
		s.config.ZipfS, 1, uint64(len(ids)-1))
	return ids[int(zipf.Uint64())], true
}

func randomKind() string {
	if rand.Float64() < 0.5 {
		return models.KindIssue
	}
	return models.KindEvent
}

// Helper method to make HTTP requests
func (s *Simulator) makeRequest(method, endpoint string, data interface{}) ([]byte, error) {
	var body []byte
	var err error

	if data != nil {
		body, err = json.Marshal(data)
		if err != nil {
			return nil, err
		}
	}

	req, err := http.NewRequest(method, s.config.EngineURL+endpoint, bytes.NewBuffer(body))
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := s.client.Do(req)
	s.recordRequestMetrics(start, err)

	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, readErr := io.ReadAll(resp.Body)
	if readErr != nil {
		return nil, readErr
	}
	if resp.StatusCode >= 400 {
		return raw, fmt.Errorf("request failed with status: %d", resp.StatusCode)
	}
	return raw, nil
}

func (s *Simulator) recordRequestMetrics(start time.Time, err error) {
	s.stats.mu.Lock()
	defer s.stats.mu.Unlock()

	latency := time.Since(start)
	s.stats.TotalRequests++
	s.stats.RequestLatencies = append(s.stats.RequestLatencies, latency)

	if err != nil {
		s.stats.FailedRequests++
	} else {
		s.stats.SuccessRequests++
	}

	totalLatency := s.stats.AverageLatency * time.Duration(s.stats.TotalRequests-1)
	s.stats.AverageLatency = (totalLatency + latency) / time.Duration(s.stats.TotalRequests)
}

func (s *Simulator) collectMetrics(ctx context.Context) {
	log.Printf("Starting metrics collection...")
	ticker := time.NewTicker(10 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.stats.mu.RLock()
			elapsed := time.Since(s.stats.StartTime)
			requestRate := float64(s.stats.TotalRequests) / elapsed.Seconds()
			successRate := 0.0
			if s.stats.TotalRequests > 0 {
				successRate = float64(s.stats.SuccessRequests) / float64(s.stats.TotalRequests) * 100
			}

			log.Printf("\nSimulation Metrics (%.1f seconds elapsed):", elapsed.Seconds())
			log.Printf("- Request Rate: %.2f req/sec", requestRate)
			log.Printf("- Success Rate: %.1f%%", successRate)
			log.Printf("- Average Latency: %v", s.stats.AverageLatency)
			log.Printf("- Total Browses: %d", s.stats.TotalBrowses)
			log.Printf("- Total Created: %d", s.stats.TotalCreated)
			log.Printf("- Total Votes: %d (Duplicates: %d)", s.stats.TotalVotes, s.stats.DuplicateVotes)
			log.Printf("- Total Likes: %d", s.stats.TotalLikes)
			log.Printf("- Failed Requests: %d", s.stats.FailedRequests)
			s.stats.mu.RUnlock()
		}
	}
}

// SimulationMetrics holds the metrics of the simulation
type SimulationMetrics struct {
	TotalClients      int
	TotalBrowses      int
	TotalCreated      int
	TotalVotes        int
	DuplicateVotes    int
	TotalLikes        int
	AverageLatency    time.Duration
	ErrorCount        int
	RequestsPerSecond float64
}

// GetMetrics returns the current simulation metrics
func (s *Simulator) GetMetrics() SimulationMetrics {
	s.stats.mu.RLock()
	defer s.stats.mu.RUnlock()

	elapsed := time.Since(s.stats.StartTime)
	requestRate := float64(s.stats.TotalRequests) / elapsed.Seconds()

	return SimulationMetrics{
		TotalClients:      len(s.clients),
		TotalBrowses:      s.stats.TotalBrowses,
		TotalCreated:      s.stats.TotalCreated,
		TotalVotes:        s.stats.TotalVotes,
		DuplicateVotes:    s.stats.DuplicateVotes,
		TotalLikes:        s.stats.TotalLikes,
		AverageLatency:    s.stats.AverageLatency,
		ErrorCount:        int(s.stats.FailedRequests),
		RequestsPerSecond: requestRate,
	}
}
