package domain

var (
	MessageSuccessGetLeaderboard = "leaderboard retrieved successfully"
	MessageFailedGetLeaderboard  = "failed to retrieve leaderboard"
)

const (
	TierGold      = "Gold"
	TierSilver    = "Silver"
	TierBronze    = "Bronze"
	TierSupporter = "Supporter"
)

type LeaderboardEntry struct {
	UserID    string  `json:"user_id"`
	Name      string  `json:"name"`
	Avatar    string  `json:"avatar,omitempty"`
	Level     string  `json:"level"`
	Donations int64   `json:"donations"`
	Impact    float64 `json:"impact"`
	Progress  float64 `json:"progress"`
}
