package content

import (
	"time"

	"eventrix/internal/models"
)

// ReferencePoint is the default coordinate distances are measured
// from: the IIT Madras campus, Chennai.
var ReferencePoint = models.Coordinates{Lat: 12.9915, Lng: 80.2336}

func mustTime(value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic(err)
	}
	return t
}

func coords(lat, lng float64) *models.Coordinates {
	return &models.Coordinates{Lat: lat, Lng: lng}
}

// BaselineEvents returns the read-only seed events. Times are anchored
// to now so that date-window views stay meaningful: some events are
// upcoming, some span multiple days, some have already ended.
func BaselineEvents(now time.Time) []models.ContentItem {
	day := 24 * time.Hour
	return []models.ContentItem{
		{
			ID: "1", Kind: models.KindEvent,
			Title:       "Tech Conference 2024",
			Description: "Annual technology conference featuring the latest in AI, blockchain, and web development.",
			Category:    "tech",
			Location:    "Convention Center, Nungambakkam",
			Coordinates: coords(13.0604, 80.2496),
			Tags:        []string{"technology", "conference", "AI", "blockchain"},
			Organizer:   "Tech Events Chennai",
			CreatedAt:   now.Add(-30 * day),
			StartTime:   now.Add(5 * day),
			EndTime:     now.Add(6 * day),
			Votes:       42,
		},
		{
			ID: "2", Kind: models.KindEvent,
			Title:       "Summer Music Festival",
			Description: "Three-day music festival featuring local and international artists.",
			Category:    "music",
			Location:    "Marina Beach Grounds",
			Coordinates: coords(13.0500, 80.2824),
			Tags:        []string{"music", "festival", "entertainment"},
			Organizer:   "Cultural Connect",
			CreatedAt:   now.Add(-25 * day),
			StartTime:   now.Add(8 * day),
			EndTime:     now.Add(10 * day),
			Votes:       67,
		},
		{
			ID: "3", Kind: models.KindEvent,
			Title:       "Startup Networking Mixer",
			Description: "Network with fellow entrepreneurs and investors in a casual setting.",
			Category:    "tech",
			Location:    "Innovation Hub, Taramani",
			Coordinates: coords(12.9550, 80.2350),
			Tags:        []string{"startup", "networking", "entrepreneurs"},
			Organizer:   "Startup Hub Chennai",
			CreatedAt:   now.Add(-20 * day),
			StartTime:   now.Add(3 * day),
			EndTime:     now.Add(3*day + 4*time.Hour),
			Votes:       28,
		},
		{
			ID: "4", Kind: models.KindEvent,
			Title:       "Morning Yoga by the Shore",
			Description: "Guided sunrise yoga session open to all experience levels. Mats provided.",
			Category:    "wellness",
			Location:    "Besant Nagar Beach",
			Coordinates: coords(12.9988, 80.2666),
			Tags:        []string{"yoga", "wellness", "morning"},
			Organizer:   "Wellness Warriors",
			CreatedAt:   now.Add(-15 * day),
			StartTime:   now.Add(6 * time.Hour),
			EndTime:     now.Add(8 * time.Hour),
			Votes:       15,
		},
		{
			ID: "5", Kind: models.KindEvent,
			Title:       "Classical Dance Showcase",
			Description: "An evening of Bharatanatyam performances by leading artists of the city.",
			Category:    "cultural",
			Location:    "Music Academy, TTK Road",
			Coordinates: coords(13.0346, 80.2550),
			Tags:        []string{"dance", "classical", "cultural"},
			Organizer:   "Cultural Connect",
			CreatedAt:   now.Add(-12 * day),
			StartTime:   now.Add(1*day + 18*time.Hour),
			EndTime:     now.Add(1*day + 21*time.Hour),
			Votes:       33,
		},
		{
			ID: "6", Kind: models.KindEvent,
			Title:       "AI Innovation Hackathon",
			Description: "Build the next generation of AI-powered applications. 48 hours of coding, learning, and innovation.",
			Category:    "tech",
			Location:    "Research Park, IIT Madras",
			Coordinates: coords(12.9908, 80.2417),
			Tags:        []string{"hackathon", "AI", "coding", "innovation"},
			Organizer:   "Tech Events Chennai",
			CreatedAt:   now.Add(-10 * day),
			StartTime:   now.Add(3 * day),
			EndTime:     now.Add(5 * day),
			Votes:       54,
		},
		{
			ID: "7", Kind: models.KindEvent,
			Title:       "Inter-College Football Cup",
			Description: "Knockout tournament between sixteen college teams. Spectators welcome.",
			Category:    "sports",
			Location:    "Nehru Stadium",
			Coordinates: coords(13.0694, 80.2610),
			Tags:        []string{"football", "tournament", "sports"},
			Organizer:   "Chennai Sports Council",
			CreatedAt:   now.Add(-8 * day),
			StartTime:   now.Add(-2 * day),
			EndTime:     now.Add(-1 * day),
			Votes:       21,
		},
		{
			ID: "8", Kind: models.KindEvent,
			Title:       "Blood Donation Drive - Critical Need",
			Description: "URGENT: Critical shortage of O- blood type. Immediate donations needed for emergency surgeries.",
			Category:    "emergency",
			Location:    "City Hospital, Emergency Wing",
			Coordinates: coords(13.0102, 80.2295),
			Tags:        []string{"urgent", "blood-donation", "healthcare", "emergency"},
			Organizer:   "City Hospital",
			CreatedAt:   now.Add(-1 * day),
			StartTime:   now.Add(2 * time.Hour),
			EndTime:     now.Add(8 * time.Hour),
			Votes:       88,
		},
		{
			ID: "9", Kind: models.KindEvent,
			Title:       "Lost Golden Retriever - Max",
			Description: "Lost golden retriever named Max. Last seen near the campus main gate. Wearing blue collar with tag. Very friendly, please call if found!",
			Category:    "lost & found",
			Location:    "IIT Madras Main Gate",
			Coordinates: coords(12.9916, 80.2335),
			Tags:        []string{"lost-pet", "dog", "urgent"},
			Organizer:   "Pet Owner",
			CreatedAt:   now.Add(-2 * time.Hour),
			StartTime:   now.Add(-2 * time.Hour),
			EndTime:     now.Add(22 * time.Hour),
			Votes:       5,
		},
		{
			ID: "10", Kind: models.KindEvent,
			Title:       "Career Guidance Workshop",
			Description: "Resume reviews, mock interviews, and guidance sessions with industry mentors.",
			Category:    "education",
			Location:    "Anna University Auditorium",
			Coordinates: coords(13.0118, 80.2335),
			Tags:        []string{"career", "workshop", "students"},
			Organizer:   "Startup Hub Chennai",
			CreatedAt:   now.Add(-5 * day),
			StartTime:   now.Add(12 * day),
			EndTime:     now.Add(12*day + 6*time.Hour),
			Votes:       19,
		},
	}
}

// BaselineIssues returns the read-only seed issues reported around the
// reference point.
func BaselineIssues() []models.ContentItem {
	return []models.ContentItem{
		{
			ID: "issue_1", Kind: models.KindIssue,
			Title:       "Streetlight not working",
			Description: "Multiple streetlights are not functioning on the main road, making it dangerous for evening commuters and students.",
			Category:    "electricity",
			Status:      models.StatusInProgress,
			Priority:    "high",
			Location:    "Sardar Patel Road, Adyar",
			Coordinates: coords(12.9923, 80.2356),
			ReportedBy:  "Rajesh Kumar",
			CreatedAt:   mustTime("2024-08-14T10:30:00Z"),
			UpdatedAt:   mustTime("2024-08-15T09:20:00Z"),
			Votes:       36,
			Tags:        []string{"streetlights", "safety", "electricity"},
		},
		{
			ID: "issue_2", Kind: models.KindIssue,
			Title:       "Pothole on main road",
			Description: "The main gate road is riddled with potholes, making it dangerous and difficult to travel on.",
			Category:    "road",
			Status:      models.StatusReported,
			Priority:    "urgent",
			Location:    "IIT Madras Main Gate Road",
			Coordinates: coords(12.9916, 80.2335),
			ReportedBy:  "Priya Sharma",
			CreatedAt:   mustTime("2024-06-02T10:34:00Z"),
			UpdatedAt:   mustTime("2024-06-02T10:34:00Z"),
			Votes:       27,
			Tags:        []string{"pothole", "road", "safety"},
		},
		{
			ID: "issue_3", Kind: models.KindIssue,
			Title:       "Garbage not collected",
			Description: "Garbage has been accumulating in the residential area for over a week without collection.",
			Category:    "garbage",
			Status:      models.StatusReported,
			Priority:    "medium",
			Location:    "Gandhi Nagar, Adyar",
			Coordinates: coords(12.9890, 80.2370),
			ReportedBy:  "Anonymous",
			CreatedAt:   mustTime("2024-06-25T08:15:00Z"),
			UpdatedAt:   mustTime("2024-06-25T08:15:00Z"),
			Votes:       11,
			Tags:        []string{"garbage", "collection", "hygiene"},
		},
		{
			ID: "issue_4", Kind: models.KindIssue,
			Title:       "Water supply disruption",
			Description: "No water supply in the area for the past 3 days. Residents are facing severe inconvenience.",
			Category:    "water",
			Status:      models.StatusInProgress,
			Priority:    "urgent",
			Location:    "Velachery Main Road",
			Coordinates: coords(12.9875, 80.2200),
			ReportedBy:  "Suresh Menon",
			CreatedAt:   mustTime("2024-06-20T06:45:00Z"),
			UpdatedAt:   mustTime("2024-06-21T14:30:00Z"),
			Votes:       45,
			Tags:        []string{"water", "supply", "shortage"},
		},
		{
			ID: "issue_5", Kind: models.KindIssue,
			Title:       "Broken drainage system",
			Description: "Open drainage near residential complex is causing foul smell and health hazards.",
			Category:    "infrastructure",
			Status:      models.StatusReported,
			Priority:    "high",
			Location:    "Thiruvanmiyur East Coast Road",
			Coordinates: coords(12.9820, 80.2590),
			ReportedBy:  "Lakshmi Iyer",
			CreatedAt:   mustTime("2024-06-18T11:20:00Z"),
			UpdatedAt:   mustTime("2024-06-18T11:20:00Z"),
			Votes:       23,
			Tags:        []string{"drainage", "health", "infrastructure"},
		},
		{
			ID: "issue_6", Kind: models.KindIssue,
			Title:       "Traffic signal malfunction",
			Description: "Traffic signal at busy intersection not working properly, causing traffic jams.",
			Category:    "infrastructure",
			Status:      models.StatusResolved,
			Priority:    "high",
			Location:    "Adyar Signal Junction",
			Coordinates: coords(12.9965, 80.2378),
			ReportedBy:  "Arjun Reddy",
			CreatedAt:   mustTime("2024-06-10T07:30:00Z"),
			UpdatedAt:   mustTime("2024-06-15T16:45:00Z"),
			Votes:       38,
			Tags:        []string{"traffic", "signal", "junction"},
		},
		{
			ID: "issue_7", Kind: models.KindIssue,
			Title:       "Stray dog menace",
			Description: "Aggressive stray dogs in the area posing threat to children and elderly.",
			Category:    "other",
			Status:      models.StatusReported,
			Priority:    "medium",
			Location:    "Kotturpuram Housing Board",
			Coordinates: coords(12.9950, 80.2280),
			ReportedBy:  "Meera Nair",
			CreatedAt:   mustTime("2024-06-22T15:10:00Z"),
			UpdatedAt:   mustTime("2024-06-22T15:10:00Z"),
			Votes:       16,
			Tags:        []string{"stray", "animals", "safety"},
		},
		{
			ID: "issue_8", Kind: models.KindIssue,
			Title:       "Bus stop shelter damaged",
			Description: "Bus stop shelter roof collapsed during recent rains, no protection for commuters.",
			Category:    "infrastructure",
			Status:      models.StatusInProgress,
			Priority:    "medium",
			Location:    "CEG Bus Stop, Guindy",
			Coordinates: coords(13.0067, 80.2206),
			ReportedBy:  "Karthik Subramanian",
			CreatedAt:   mustTime("2024-06-16T12:40:00Z"),
			UpdatedAt:   mustTime("2024-06-20T10:15:00Z"),
			Votes:       22,
			Tags:        []string{"bus-stop", "shelter", "public-transport"},
		},
		{
			ID: "issue_9", Kind: models.KindIssue,
			Title:       "Illegal parking blocking road",
			Description: "Vehicles parked illegally on narrow road causing traffic congestion and blocking emergency access.",
			Category:    "road",
			Status:      models.StatusReported,
			Priority:    "low",
			Location:    "Besant Nagar 2nd Avenue",
			Coordinates: coords(12.9990, 80.2665),
			ReportedBy:  "Deepak Agarwal",
			CreatedAt:   mustTime("2024-06-24T09:25:00Z"),
			UpdatedAt:   mustTime("2024-06-24T09:25:00Z"),
			Votes:       8,
			Tags:        []string{"parking", "traffic", "congestion"},
		},
		{
			ID: "issue_10", Kind: models.KindIssue,
			Title:       "Power outage frequent",
			Description: "Frequent power cuts in the residential area affecting daily life and work from home.",
			Category:    "electricity",
			Status:      models.StatusReported,
			Priority:    "high",
			Location:    "Indira Nagar, Adyar",
			Coordinates: coords(12.9885, 80.2415),
			ReportedBy:  "Rohit Patel",
			CreatedAt:   mustTime("2024-06-19T14:55:00Z"),
			UpdatedAt:   mustTime("2024-06-19T14:55:00Z"),
			Votes:       31,
			Tags:        []string{"power", "outage", "electricity"},
		},
		{
			ID: "issue_11", Kind: models.KindIssue,
			Title:       "Mosquito breeding in stagnant water",
			Description: "Stagnant water collected near construction site leading to mosquito breeding and health concerns.",
			Category:    "other",
			Status:      models.StatusReported,
			Priority:    "medium",
			Location:    "Taramani IT Corridor",
			Coordinates: coords(12.9550, 80.2350),
			ReportedBy:  "Sunita Joshi",
			CreatedAt:   mustTime("2024-06-21T16:30:00Z"),
			UpdatedAt:   mustTime("2024-06-21T16:30:00Z"),
			Votes:       19,
			Tags:        []string{"mosquito", "health", "stagnant-water"},
		},
		{
			ID: "issue_12", Kind: models.KindIssue,
			Title:       "Broken footpath",
			Description: "Footpath tiles are broken and uneven, causing difficulty for pedestrians and wheelchair users.",
			Category:    "infrastructure",
			Status:      models.StatusClosed,
			Priority:    "medium",
			Location:    "Anna University Main Road",
			Coordinates: coords(13.0118, 80.2335),
			ReportedBy:  "Vinod Kumar",
			CreatedAt:   mustTime("2024-05-28T08:15:00Z"),
			UpdatedAt:   mustTime("2024-06-10T17:20:00Z"),
			Votes:       14,
			Tags:        []string{"footpath", "accessibility", "pedestrian"},
		},
		{
			ID: "issue_13", Kind: models.KindIssue,
			Title:       "Noise pollution from construction",
			Description: "Construction work starting very early morning causing noise pollution and disturbing residents.",
			Category:    "other",
			Status:      models.StatusInProgress,
			Priority:    "low",
			Location:    "RA Puram 1st Street",
			Coordinates: coords(13.0045, 80.2458),
			ReportedBy:  "Kavitha Raman",
			CreatedAt:   mustTime("2024-06-23T05:45:00Z"),
			UpdatedAt:   mustTime("2024-06-24T11:30:00Z"),
			Votes:       7,
			Tags:        []string{"noise", "construction", "pollution"},
		},
	}
}
