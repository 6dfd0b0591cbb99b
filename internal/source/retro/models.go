package retro

// RecentGame is one entry of the RetroAchievements recently-played window.
type RecentGame struct {
	GameID      int64  `json:"GameID"`
	Title       string `json:"Title"`
	ConsoleName string `json:"ConsoleName"`
	LastPlayed  string `json:"LastPlayed"`
}

// GameInfo is the subset of the game metadata endpoint used for thumbnails.
type GameInfo struct {
	ImageIcon string `json:"ImageIcon"`
}
