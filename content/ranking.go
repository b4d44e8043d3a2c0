package content

// RankingEntry is one row of the fake leaderboard
// Position 0 renders as an ellipsis row
type RankingEntry struct {
	Position int
	Name     string
	Points   int
}

// PlayerName labels the pinned last row
const PlayerName = "Você"

// PlayerPosition is the player's permanent rank
const PlayerPosition = 999999

var rankingTop = []RankingEntry{
	{1, "ProGamer2024", 999999},
	{2, "MLGMaster", 888888},
	{3, "GameLord", 777777},
	{4, "SkillGod", 666666},
	{5, "ElitePlayer", 555555},
	{},
}

// Ranking returns the leaderboard with the player pinned in last place
func Ranking(score int) []RankingEntry {
	rows := make([]RankingEntry, 0, len(rankingTop)+1)
	rows = append(rows, rankingTop...)
	return append(rows, RankingEntry{Position: PlayerPosition, Name: PlayerName, Points: score})
}
