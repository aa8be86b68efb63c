package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"eventrix/internal/engine/actors"
	"eventrix/internal/models"
	"eventrix/internal/store"
	"eventrix/internal/utils"
)

// VoteRequest represents a request to vote on content
type VoteRequest struct {
	Kind   string `json:"kind"`
	ID     string `json:"id"`
	Remove bool   `json:"remove"`
}

// LikeRequest represents a request to toggle a like
type LikeRequest struct {
	Kind string `json:"kind"`
	ID   string `json:"id"`
}

// TrackRequest represents a request to toggle event tracking
type TrackRequest struct {
	List string `json:"list"` // "registered" or "attended"
	ID   string `json:"id"`
}

// HandleVote handles content voting
func (s *Server) HandleVote() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.Metrics.IncrementRequests()
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		var req VoteRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid request", http.StatusBadRequest)
			return
		}
		kind, ok := requestKind(req.Kind)
		if !ok || req.ID == "" {
			http.Error(w, "Vote requires a kind and an id", http.StatusBadRequest)
			return
		}

		future := s.Context.RequestFuture(s.Engine.GetInteractionActor(), &actors.VoteMsg{
			Kind:   kind,
			ID:     req.ID,
			Remove: req.Remove,
		}, s.RequestTimeout)
		result, err := future.Result()
		if err != nil {
			http.Error(w, fmt.Sprintf("Failed to process vote: %v", err), http.StatusInternalServerError)
			return
		}
		if appErr, ok := result.(*utils.AppError); ok {
			s.respondAppError(w, appErr)
			return
		}

		vote, ok := result.(*actors.VoteResult)
		if !ok {
			http.Error(w, "Unexpected vote response", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if vote.AlreadyVoted {
			// A repeat vote is reported, not failed: the list stays as
			// it was and the caller learns why.
			w.WriteHeader(http.StatusConflict)
		} else if s.Hub != nil {
			go s.Hub.NotifyContentChange("voted", kind, req.ID)
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"alreadyVoted": vote.AlreadyVoted,
			"voted":        vote.Voted,
			"votedIds":     vote.IDs,
		})
	}
}

// HandleLike toggles a like on content
func (s *Server) HandleLike() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.Metrics.IncrementRequests()
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		var req LikeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid request", http.StatusBadRequest)
			return
		}
		kind, ok := requestKind(req.Kind)
		if !ok || req.ID == "" {
			http.Error(w, "Like requires a kind and an id", http.StatusBadRequest)
			return
		}

		future := s.Context.RequestFuture(s.Engine.GetInteractionActor(), &actors.ToggleLikeMsg{
			Kind: kind,
			ID:   req.ID,
		}, s.RequestTimeout)
		result, err := future.Result()
		if err != nil {
			http.Error(w, fmt.Sprintf("Failed to toggle like: %v", err), http.StatusInternalServerError)
			return
		}
		if appErr, ok := result.(*utils.AppError); ok {
			s.respondAppError(w, appErr)
			return
		}

		toggle, ok := result.(*actors.ToggleResult)
		if !ok {
			http.Error(w, "Unexpected like response", http.StatusInternalServerError)
			return
		}
		if s.Hub != nil {
			go s.Hub.NotifyContentChange("liked", kind, req.ID)
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"liked":    toggle.Active,
			"likedIds": toggle.IDs,
		})
	}
}

// HandleTrack toggles event registration and attendance tracking
func (s *Server) HandleTrack() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.Metrics.IncrementRequests()
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		var req TrackRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid request", http.StatusBadRequest)
			return
		}
		if req.ID == "" {
			http.Error(w, "Tracking requires an id", http.StatusBadRequest)
			return
		}

		future := s.Context.RequestFuture(s.Engine.GetInteractionActor(), &actors.ToggleTrackMsg{
			List: req.List,
			ID:   req.ID,
		}, s.RequestTimeout)
		result, err := future.Result()
		if err != nil {
			http.Error(w, fmt.Sprintf("Failed to toggle tracking: %v", err), http.StatusInternalServerError)
			return
		}
		if appErr, ok := result.(*utils.AppError); ok {
			s.respondAppError(w, appErr)
			return
		}

		toggle, ok := result.(*actors.ToggleResult)
		if !ok {
			http.Error(w, "Unexpected tracking response", http.StatusInternalServerError)
			return
		}
		if s.Hub != nil {
			go s.Hub.NotifyContentChange("tracked", models.KindEvent, req.ID)
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"active": toggle.Active,
			"ids":    toggle.IDs,
		})
	}
}

// HandleLikedContent returns the liked items for a kind, most recently
// liked first
func (s *Server) HandleLikedContent() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.Metrics.IncrementRequests()
		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		kind, ok := contentKind(r)
		if !ok {
			http.Error(w, "Invalid kind, expected event or issue", http.StatusBadRequest)
			return
		}

		future := s.Context.RequestFuture(s.Engine.GetContentActor(), &actors.BrowseMsg{
			Kind:    kind,
			Options: models.FilterOptions{View: models.ViewLiked},
		}, s.RequestTimeout)
		result, err := future.Result()
		if err != nil {
			http.Error(w, "Failed to get liked content", http.StatusInternalServerError)
			return
		}
		if appErr, ok := result.(*utils.AppError); ok {
			s.respondAppError(w, appErr)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(result)
	}
}

// HandleInteractionLists returns the raw interaction id lists, useful
// for clients restoring local state
func (s *Server) HandleInteractionLists() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.Metrics.IncrementRequests()
		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		kind, ok := contentKind(r)
		if !ok {
			http.Error(w, "Invalid kind, expected event or issue", http.StatusBadRequest)
			return
		}

		lists := map[string]string{
			"liked":      store.LikedKey(kind),
			"voted":      store.VotedKey(kind),
			"registered": store.KeyRegisteredEvents,
			"attended":   store.KeyAttendedEvents,
		}
		response := make(map[string][]string, len(lists))
		for name, key := range lists {
			future := s.Context.RequestFuture(s.Engine.GetInteractionActor(),
				&actors.GetListMsg{Kind: kind, Key: key},
				s.RequestTimeout)
			result, err := future.Result()
			if err != nil {
				http.Error(w, "Failed to get interaction lists", http.StatusInternalServerError)
				return
			}
			if appErr, ok := result.(*utils.AppError); ok {
				s.respondAppError(w, appErr)
				return
			}
			ids, _ := result.([]string)
			if ids == nil {
				ids = []string{}
			}
			response[name] = ids
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(response)
	}
}
