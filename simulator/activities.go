package simulator

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"net/url"
	"sync"
	"time"

	"eventrix/internal/models"
)

var browseCategories = []string{
	"all", "tech", "music", "cultural", "sports", "wellness", "education",
	"road", "water", "electricity", "garbage", "infrastructure", "other",
}

var browseSorts = []string{"recent", "upvoted", "distance"}

var browseDates = []string{"all", "today", "tomorrow", "this-week"}

var searchTerms = []string{
	"music", "hackathon", "water", "road", "chennai", "urgent", "workshop",
}

var issueTitles = []string{
	"Leaking water pipe", "Fallen tree blocking lane", "Overflowing trash bin",
	"Flickering streetlight", "Cracked pavement slab", "Blocked storm drain",
}

var eventTitles = []string{
	"Weekend Coding Jam", "Open Mic Evening", "Neighborhood Cleanup Drive",
	"Beach Volleyball Meetup", "Photography Walk", "Book Exchange Fair",
}

func (s *Simulator) SimulateActivities(ctx context.Context) error {
	log.Printf("Starting activities simulation...")

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		s.simulateBrowsing(ctx)
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		s.simulateCreation(ctx)
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		s.simulateVotes(ctx)
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		s.simulateLikes(ctx)
	}()

	wg.Wait()
	return nil
}

// perTickChance converts a per-client-per-hour frequency into a
// probability for one 500ms tick.
func (s *Simulator) perTickChance(hourlyFrequency float64) float64 {
	return hourlyFrequency / 3600.0 / 2.0
}

func (s *Simulator) simulateBrowsing(ctx context.Context) {
	ticker := time.NewTicker(500 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			for range s.clients {
				if rand.Float64() >= s.perTickChance(s.config.BrowseFrequency) {
					continue
				}

				query := url.Values{}
				query.Set("kind", randomKind())
				query.Set("category", browseCategories[rand.Intn(len(browseCategories))])
				query.Set("sort", browseSorts[rand.Intn(len(browseSorts))])
				if rand.Float64() < 0.3 {
					query.Set("date", browseDates[rand.Intn(len(browseDates))])
				}
				if rand.Float64() < 0.3 {
					query.Set("q", searchTerms[rand.Intn(len(searchTerms))])
				}
				if rand.Float64() < 0.2 {
					query.Set("maxDistanceKm", fmt.Sprintf("%d", 1+rand.Intn(20)))
				}

				if _, err := s.makeRequest("GET", "/content?"+query.Encode(), nil); err != nil {
					log.Printf("Browse failed: %v", err)
					continue
				}

				s.stats.mu.Lock()
				s.stats.TotalBrowses++
				s.stats.mu.Unlock()
			}
		}
	}
}

func (s *Simulator) simulateCreation(ctx context.Context) {
	ticker := time.NewTicker(500 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			for _, client := range s.clients {
				if rand.Float64() >= s.perTickChance(s.config.CreateFrequency) {
					continue
				}

				kind := randomKind()
				data := map[string]interface{}{
					"kind":        kind,
					"description": fmt.Sprintf("Reported by simulated client %s", client.ID),
					"coordinates": map[string]float64{
						// Scatter around the reference point.
						"lat": 12.9915 + (rand.Float64()-0.5)*0.1,
						"lng": 80.2336 + (rand.Float64()-0.5)*0.1,
					},
				}
				if kind == models.KindIssue {
					data["title"] = issueTitles[rand.Intn(len(issueTitles))]
					data["category"] = browseCategories[7+rand.Intn(len(browseCategories)-7)]
				} else {
					data["title"] = eventTitles[rand.Intn(len(eventTitles))]
					data["category"] = browseCategories[1+rand.Intn(6)]
				}

				resp, err := s.makeRequest("POST", "/content", data)
				if err != nil {
					log.Printf("Create failed: %v", err)
					continue
				}

				var created models.ContentItem
				if err := json.Unmarshal(resp, &created); err != nil {
					log.Printf("Failed to parse create response: %v", err)
					continue
				}
				client.CreatedItems = append(client.CreatedItems, created.ID)

				s.stats.mu.Lock()
				s.stats.TotalCreated++
				total := s.stats.TotalCreated
				s.stats.mu.Unlock()
				log.Printf("Created %s %s (Total: %d)", kind, created.ID, total)
			}
		}
	}
}

func (s *Simulator) simulateVotes(ctx context.Context) {
	ticker := time.NewTicker(500 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			for _, client := range s.clients {
				if rand.Float64() >= s.perTickChance(s.config.VoteFrequency) {
					continue
				}

				kind := randomKind()
				target, ok := s.pickZipfTarget(kind)
				if !ok {
					continue
				}

				duplicate := client.VotedItems[target]
				_, err := s.makeRequest("POST", "/content/vote", map[string]interface{}{
					"kind": kind,
					"id":   target,
				})

				s.stats.mu.Lock()
				if duplicate {
					// The engine answers 409 and leaves the count alone.
					s.stats.DuplicateVotes++
				} else if err == nil {
					s.stats.TotalVotes++
				}
				s.stats.mu.Unlock()

				if err != nil && !duplicate {
					log.Printf("Vote failed for %s: %v", target, err)
					continue
				}
				client.VotedItems[target] = true
			}
		}
	}
}

func (s *Simulator) simulateLikes(ctx context.Context) {
	ticker := time.NewTicker(500 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			for _, client := range s.clients {
				if rand.Float64() >= s.perTickChance(s.config.LikeFrequency) {
					continue
				}

				kind := randomKind()
				target, ok := s.pickZipfTarget(kind)
				if !ok {
					continue
				}

				if _, err := s.makeRequest("POST", "/content/like", map[string]interface{}{
					"kind": kind,
					"id":   target,
				}); err != nil {
					log.Printf("Like failed for %s: %v", target, err)
					continue
				}
				client.LikedItems[target] = !client.LikedItems[target]

				s.stats.mu.Lock()
				s.stats.TotalLikes++
				s.stats.mu.Unlock()
			}
		}
	}
}
