package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"eventrix/internal/engine/actors"
	"eventrix/internal/models"
	"eventrix/internal/utils"
)

// CreateContentRequest represents a request to create an event or issue
type CreateContentRequest struct {
	Kind        string              `json:"kind"`
	ID          string              `json:"id"`
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Category    string              `json:"category"`
	Status      string              `json:"status"`
	Priority    string              `json:"priority"`
	Location    string              `json:"location"`
	Coordinates *models.Coordinates `json:"coordinates"`
	Tags        []string            `json:"tags"`
	Organizer   string              `json:"organizer"`
	ReportedBy  string              `json:"reportedBy"`
	StartTime   time.Time           `json:"startTime"`
	EndTime     time.Time           `json:"endTime"`
}

func (req *CreateContentRequest) toItem() models.ContentItem {
	return models.ContentItem{
		ID:          req.ID,
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Status:      req.Status,
		Priority:    req.Priority,
		Location:    req.Location,
		Coordinates: req.Coordinates,
		Tags:        req.Tags,
		Organizer:   req.Organizer,
		ReportedBy:  req.ReportedBy,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
	}
}

// contentKind validates the kind query parameter, defaulting to event.
func contentKind(r *http.Request) (string, bool) {
	kind := r.URL.Query().Get("kind")
	switch kind {
	case "":
		return models.KindEvent, true
	case models.KindEvent, models.KindIssue:
		return kind, true
	}
	return "", false
}

func requestKind(kind string) (string, bool) {
	switch kind {
	case "", models.KindEvent:
		return models.KindEvent, true
	case models.KindIssue:
		return models.KindIssue, true
	}
	return "", false
}

func (s *Server) respondAppError(w http.ResponseWriter, appErr *utils.AppError) {
	s.Metrics.IncrementErrors()
	http.Error(w, appErr.Error(), utils.AppErrorToHTTPStatus(appErr.Code))
}

// HandleContent handles browsing, fetching, and creating content
func (s *Server) HandleContent() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.Metrics.IncrementRequests()
		switch r.Method {
		case http.MethodGet:
			kind, ok := contentKind(r)
			if !ok {
				http.Error(w, "Invalid kind, expected event or issue", http.StatusBadRequest)
				return
			}

			// Single item lookup
			if id := r.URL.Query().Get("id"); id != "" {
				future := s.Context.RequestFuture(s.Engine.GetContentActor(),
					&actors.GetItemMsg{Kind: kind, ID: id},
					s.RequestTimeout)
				result, err := future.Result()
				if err != nil {
					http.Error(w, "Failed to get content", http.StatusInternalServerError)
					return
				}
				if appErr, ok := result.(*utils.AppError); ok {
					s.respondAppError(w, appErr)
					return
				}
				w.Header().Set("Content-Type", "application/json")
				json.NewEncoder(w).Encode(result)
				return
			}

			future := s.Context.RequestFuture(s.Engine.GetContentActor(),
				&actors.BrowseMsg{Kind: kind, Options: filterOptionsFromQuery(r)},
				s.RequestTimeout)
			result, err := future.Result()
			if err != nil {
				http.Error(w, "Failed to browse content", http.StatusInternalServerError)
				return
			}
			if appErr, ok := result.(*utils.AppError); ok {
				s.respondAppError(w, appErr)
				return
			}
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(result)

		case http.MethodPost:
			var req CreateContentRequest
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				http.Error(w, "Invalid request", http.StatusBadRequest)
				return
			}
			kind, ok := requestKind(req.Kind)
			if !ok {
				http.Error(w, "Invalid kind, expected event or issue", http.StatusBadRequest)
				return
			}

			future := s.Context.RequestFuture(s.Engine.GetContentActor(), &actors.CreateItemMsg{
				Kind: kind,
				Item: req.toItem(),
			}, s.RequestTimeout)
			result, err := future.Result()
			if err != nil {
				http.Error(w, fmt.Sprintf("Failed to create content: %v", err), http.StatusInternalServerError)
				return
			}
			if appErr, ok := result.(*utils.AppError); ok {
				s.respondAppError(w, appErr)
				return
			}

			if created, ok := result.(*models.ContentItem); ok && s.Hub != nil {
				go s.Hub.NotifyContentChange("created", created.Kind, created.ID)
			}

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(result)

		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	}
}

// HandleDraft saves an unpublished item
func (s *Server) HandleDraft() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.Metrics.IncrementRequests()
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		var req CreateContentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid request", http.StatusBadRequest)
			return
		}
		kind, ok := requestKind(req.Kind)
		if !ok {
			http.Error(w, "Invalid kind, expected event or issue", http.StatusBadRequest)
			return
		}

		future := s.Context.RequestFuture(s.Engine.GetContentActor(), &actors.SaveDraftMsg{
			Kind: kind,
			Item: req.toItem(),
		}, s.RequestTimeout)
		result, err := future.Result()
		if err != nil {
			http.Error(w, fmt.Sprintf("Failed to save draft: %v", err), http.StatusInternalServerError)
			return
		}
		if appErr, ok := result.(*utils.AppError); ok {
			s.respondAppError(w, appErr)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(result)
	}
}

// filterOptionsFromQuery builds FilterOptions out of the browse query
// parameters. Filter values never fail the request: enum-style values
// pass through and unknown ones behave as "all" downstream, and a
// maxDistanceKm that is "all", negative, or not a number means no
// distance constraint.
func filterOptionsFromQuery(r *http.Request) models.FilterOptions {
	query := r.URL.Query()
	opts := models.FilterOptions{
		Category:  query.Get("category"),
		Status:    query.Get("status"),
		Search:    query.Get("q"),
		DateRange: query.Get("date"),
		View:      query.Get("view"),
		SortBy:    query.Get("sort"),
	}
	if raw := query.Get("maxDistanceKm"); raw != "" && raw != models.FilterAll {
		if km, err := strconv.ParseFloat(raw, 64); err == nil && km >= 0 {
			opts.MaxDistanceKm = &km
		}
	}
	return opts
}

// HandleHealth handles health check requests
func (s *Server) HandleHealth() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		futureEvents := s.Context.RequestFuture(s.Engine.GetContentActor(), &actors.GetCountsMsg{Kind: models.KindEvent}, s.RequestTimeout)
		eventResult, err := futureEvents.Result()
		if err != nil {
			http.Error(w, "Failed to get event count", http.StatusInternalServerError)
			return
		}
		eventCount := eventResult.(int)

		futureIssues := s.Context.RequestFuture(s.Engine.GetContentActor(), &actors.GetCountsMsg{Kind: models.KindIssue}, s.RequestTimeout)
		issueResult, err := futureIssues.Result()
		if err != nil {
			http.Error(w, "Failed to get issue count", http.StatusInternalServerError)
			return
		}
		issueCount := issueResult.(int)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"status":      "healthy",
			"event_count": eventCount,
			"issue_count": issueCount,
			"server_time": time.Now(),
			"metrics":     s.Metrics.Summary(),
		})
	}
}
