package builder

import "github.com/enescakir/emoji"

var (
	textChooseTeam       = emoji.VideoGame.String() + " Choose your team"
	textChooseDifficulty = emoji.GameDie.String() + " Choose the difficulty"
	textChooseOvers      = "How many overs per side? (%d-%d, enter for %d)"
	textReady            = emoji.ChequeredFlag.String() + " Ready, press enter to start the match"
	textComingSoon       = "(coming soon)"
	textDifficultyOption = "%s - bowler %s, batsman %s"
	textOversOption      = "%d over(s), about %d-%d min"
)
