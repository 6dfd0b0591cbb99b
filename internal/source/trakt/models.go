package trakt

// HistoryItem is one entry of the Trakt /sync/history response.
type HistoryItem struct {
	ID        int64    `json:"id"`
	WatchedAt string   `json:"watched_at"`
	Type      string   `json:"type"`
	Show      *Show    `json:"show"`
	Episode   *Episode `json:"episode"`
	Movie     *Movie   `json:"movie"`
}

type Show struct {
	Title string `json:"title"`
}

type Episode struct {
	Season int `json:"season"`
	Number int `json:"number"`
}

type Movie struct {
	Title string `json:"title"`
}
