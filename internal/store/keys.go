package store

import "eventrix/internal/models"

// Per-kind key lookups. Unknown kinds fall back to the event keys;
// handlers validate kind before anything reaches here.

func UserKey(kind string) string {
	if kind == models.KindIssue {
		return KeyUserIssues
	}
	return KeyUserEvents
}

func LikedKey(kind string) string {
	if kind == models.KindIssue {
		return KeyLikedIssues
	}
	return KeyLikedEvents
}

func VotedKey(kind string) string {
	if kind == models.KindIssue {
		return KeyVotedIssues
	}
	return KeyVotedEvents
}

func DraftKey(kind string) string {
	if kind == models.KindIssue {
		return KeyDraftIssues
	}
	return KeyDraftEvents
}
