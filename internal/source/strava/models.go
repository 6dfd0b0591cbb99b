package strava

// Activity is one entry of the athlete activities endpoint.
type Activity struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Type        string   `json:"type"`
	StartDate   string   `json:"start_date"`
	ElapsedTime float64  `json:"elapsed_time"` // seconds
	Distance    float64  `json:"distance"`     // meters
	Calories    *float64 `json:"calories"`
}
