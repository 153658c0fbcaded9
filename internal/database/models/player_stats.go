package models

// PlayerStatsRow is the scan target of the win/loss aggregate query
type PlayerStatsRow struct {
	PlayerID    uint
	PlayerName  string
	PlayerEmail string
	Wins        int64
	Losses      int64
}
