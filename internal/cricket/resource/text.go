package resource

import "github.com/enescakir/emoji"

var (
	// scoreboard
	TextTarget   = "Target"
	TextNeed     = "need"
	TextFrom     = "from"
	TextYou      = "You"
	TextComputer = emoji.Robot.String() + " Computer"

	// delivery
	TextNoBall     = emoji.Stopwatch.String() + " No-ball! The bowler got it wrong, the batter cannot be out this ball"
	TextRestricted = "Wrong answer at the crease, only 0 or 1 this ball"
	TextPickBat    = "Pick your shot:"
	TextPickBowl   = "Pick your delivery:"

	// ball result
	TextWicket      = "WICKET!"
	TextNoBallSaved = emoji.FourLeafClover.String() + " Numbers matched on a no-ball, not out"
	TextSix         = "SIX!"
	TextFour        = "FOUR!"
	TextDot         = "Dot ball"
	TextInningsOver = "Innings over"

	// summary
	TextMatchOver = emoji.ChequeredFlag.String() + " Match over, press enter for the result"
	TextWonBy     = "won by"
	TextTie       = "It's a tie!"

	// manager
	TextWelcome    = emoji.Rocket.String() + " Quiz Cricket! Answer the question, then pick a number."
	TextHelp       = "Commands: a number to pick, enter to continue, back, restart, reload, quit"
	TextAnswer     = "Answer with 1-4"
	TextContinue   = "Press enter to continue"
	TextPlayAgain  = emoji.VideoGame.String() + " Type restart to play again or quit to leave"
	TextBye        = "Bye!"
	TextBadInput   = emoji.CrossMark.String() + " %s"
	TextInningsTwo = emoji.Star.String() + " Second innings"
)

const (
	ProjectName = "quizcricket"
	GreetingCLI = "%s %s\n\n"
)
