// Package content owns the canonical content collection: tolerant
// normalization of stored records, the baseline seed data, and the
// merged (baseline + user-created) catalog.
package content

import (
	"encoding/json"
	"log"
	"time"

	"eventrix/internal/geo"
	"eventrix/internal/models"
)

// Normalize validates and coerces one raw stored record into a
// ContentItem. It never panics on missing or mistyped fields: a
// non-string where a string is expected counts as absent, a missing or
// mistyped tag list becomes empty. Records missing id, title, or
// category are rejected; ok is false and the record is skipped.
func Normalize(kind string, raw map[string]interface{}, ref *models.Coordinates) (models.ContentItem, bool) {
	item := models.ContentItem{Kind: kind, Tags: []string{}}

	item.ID = stringField(raw, "id")
	item.Title = stringField(raw, "title")
	if item.Title == "" {
		// Event records from older clients use "name".
		item.Title = stringField(raw, "name")
	}
	item.Category = stringField(raw, "category")

	if item.ID == "" || item.Title == "" || item.Category == "" {
		return models.ContentItem{}, false
	}

	item.Description = stringField(raw, "description")
	item.Status = stringField(raw, "status")
	item.Priority = stringField(raw, "priority")
	item.Location = stringField(raw, "location")
	item.Organizer = organizerField(raw)
	item.ReportedBy = reportedByField(raw)
	item.Tags = tagsField(raw)
	item.Votes = intField(raw, "votes")
	if item.Votes < 0 {
		item.Votes = 0
	}

	item.CreatedAt = timeField(raw, "createdAt")
	if item.CreatedAt.IsZero() {
		item.CreatedAt = timeField(raw, "reportedDate")
	}
	item.UpdatedAt = timeField(raw, "updatedAt")
	if item.UpdatedAt.IsZero() {
		item.UpdatedAt = timeField(raw, "updatedDate")
	}
	item.StartTime = timeField(raw, "startTime")
	item.EndTime = timeField(raw, "endTime")
	if item.CreatedAt.IsZero() {
		item.CreatedAt = item.StartTime
	}

	if coords := coordinatesField(raw); coords != nil {
		item.Coordinates = coords
		if ref != nil {
			d := geo.DistanceKm(*coords, *ref)
			item.DistanceKm = &d
			item.DistanceLabel = geo.Label(d)
		}
	}

	return item, true
}

// NormalizeAll decodes a stored JSON array and normalizes each record.
// One malformed record never blocks the rest: undecodable entries and
// rejected records are dropped with a log line.
func NormalizeAll(kind string, raw []byte, ref *models.Coordinates) []models.ContentItem {
	var entries []json.RawMessage
	if err := json.Unmarshal(raw, &entries); err != nil {
		log.Printf("Normalizer: %s collection is not an array, dropping: %v", kind, err)
		return nil
	}

	items := make([]models.ContentItem, 0, len(entries))
	for _, entry := range entries {
		var fields map[string]interface{}
		if err := json.Unmarshal(entry, &fields); err != nil {
			log.Printf("Normalizer: dropping undecodable %s record: %v", kind, err)
			continue
		}
		item, ok := Normalize(kind, fields, ref)
		if !ok {
			log.Printf("Normalizer: dropping malformed %s record (missing id/title/category)", kind)
			continue
		}
		items = append(items, item)
	}
	return items
}

func stringField(raw map[string]interface{}, key string) string {
	s, _ := raw[key].(string)
	return s
}

func intField(raw map[string]interface{}, key string) int {
	// JSON numbers decode as float64.
	if f, ok := raw[key].(float64); ok {
		return int(f)
	}
	return 0
}

func timeField(raw map[string]interface{}, key string) time.Time {
	s, ok := raw[key].(string)
	if !ok {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

func tagsField(raw map[string]interface{}) []string {
	list, ok := raw["tags"].([]interface{})
	if !ok {
		return []string{}
	}
	tags := make([]string, 0, len(list))
	for _, entry := range list {
		if tag, ok := entry.(string); ok {
			tags = append(tags, tag)
		}
	}
	return tags
}

// organizerField accepts both the flat string form and the structured
// {name, email, ...} form.
func organizerField(raw map[string]interface{}) string {
	switch v := raw["organizer"].(type) {
	case string:
		return v
	case map[string]interface{}:
		name, _ := v["name"].(string)
		return name
	}
	return ""
}

func reportedByField(raw map[string]interface{}) string {
	switch v := raw["reportedBy"].(type) {
	case string:
		return v
	case map[string]interface{}:
		name, _ := v["name"].(string)
		return name
	}
	return ""
}

func coordinatesField(raw map[string]interface{}) *models.Coordinates {
	m, ok := raw["coordinates"].(map[string]interface{})
	if !ok {
		return nil
	}
	lat, latOK := m["lat"].(float64)
	lng, lngOK := m["lng"].(float64)
	if !latOK || !lngOK {
		return nil
	}
	return &models.Coordinates{Lat: lat, Lng: lng}
}
