// Package render turns match snapshots into terminal text.
package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bloops-games/quizcricket/internal/cricket/catalog"
	"github.com/bloops-games/quizcricket/internal/cricket/match"
	"github.com/bloops-games/quizcricket/internal/cricket/resource"
	"github.com/bloops-games/quizcricket/internal/strpool"
	"github.com/bloops-games/quizcricket/internal/util"
	"github.com/enescakir/emoji"
)

// DotsShown is the default number of recent balls on the scoreboard.
const DotsShown = 6

var sparks = []rune("▁▂▃▄▅▆▇█")

// TeamName falls back to the id for teams missing from the catalog.
func TeamName(cat *catalog.Catalog, id string) string {
	if t, ok := cat.Teams[id]; ok {
		return t.Name
	}

	return id
}

// Scoreboard is the one-line state of the current innings followed by the last dots balls.
func Scoreboard(snap match.Snapshot, cat *catalog.Catalog, dots int) string {
	buf := strpool.Get()
	defer strpool.Put(buf)

	fmt.Fprintf(buf, "%s %d/%d (%s ov)", TeamName(cat, snap.BattingTeam()), snap.Runs, snap.Wickets, snap.Overs())
	if snap.Innings == 2 {
		need := snap.Target - snap.Runs
		if need > 0 {
			fmt.Fprintf(buf, " | %s %d | %s %s from %s",
				resource.TextTarget, snap.Target, resource.TextNeed,
				util.Plural(need, "run", "runs"), util.Plural(snap.BallsRemaining(), "ball", "balls"))
		} else {
			fmt.Fprintf(buf, " | %s %d", resource.TextTarget, snap.Target)
		}
	}

	if dots <= 0 {
		dots = DotsShown
	}
	if recent := BallDots(snap.History, dots); recent != "" {
		buf.WriteString(" | ")
		buf.WriteString(recent)
	}

	return buf.String()
}

// BallDots lists the last n balls oldest first. Only the display is truncated.
func BallDots(history []match.BallRecord, n int) string {
	if n > 0 && len(history) > n {
		history = history[len(history)-n:]
	}

	parts := make([]string, 0, len(history))
	for _, b := range history {
		parts = append(parts, ballDot(b))
	}

	return strings.Join(parts, " ")
}

func ballDot(b match.BallRecord) string {
	switch {
	case b.Wicket:
		return "W"
	case b.NoBall && b.Runs == 0:
		return "nb"
	case b.Runs == 0:
		return "."
	default:
		return strconv.Itoa(b.Runs)
	}
}

// Question prints the pending question with 1-based options.
func Question(snap match.Snapshot) string {
	if snap.Question == nil {
		return ""
	}

	buf := strpool.Get()
	defer strpool.Put(buf)

	buf.WriteString(emoji.Bookmark.String())
	buf.WriteString(" ")
	buf.WriteString(snap.Question.Text)
	for i, o := range snap.Question.Options {
		fmt.Fprintf(buf, "\n  %d) %s", i+1, o)
	}

	return buf.String()
}

// DeliveryStatus explains what the question round allowed for the coming ball.
func DeliveryStatus(snap match.Snapshot) string {
	buf := strpool.Get()
	defer strpool.Put(buf)

	fmt.Fprintf(buf, "%s %s | %s %s", resource.TextYou, mark(snap.PlayerCorrect),
		resource.TextComputer, mark(snap.ComputerCorrect))
	if !snap.ComputerCorrect && snap.Question != nil {
		fmt.Fprintf(buf, " (%s)", snap.Question.Options[snap.ComputerAnswer])
	}

	switch {
	case snap.NoBall:
		buf.WriteString("\n")
		buf.WriteString(resource.TextNoBall)
	case len(snap.Available) == len(catalog.RestrictedOptions):
		buf.WriteString("\n")
		buf.WriteString(resource.TextRestricted)
	}

	buf.WriteString("\n")
	if snap.PlayerBatting {
		buf.WriteString(resource.TextPickBat)
	} else {
		buf.WriteString(resource.TextPickBowl)
	}
	buf.WriteString(" ")
	buf.WriteString(Numbers(snap.Available))

	return buf.String()
}

// Numbers lays the permitted numbers out in button order.
func Numbers(available []int) string {
	var parts []string
	for _, n := range resource.DisplayOrder {
		for _, a := range available {
			if a == n {
				parts = append(parts, "["+strconv.Itoa(n)+"]")
				break
			}
		}
	}

	return strings.Join(parts, " ")
}

func mark(ok bool) string {
	if ok {
		return emoji.CheckMarkButton.String()
	}

	return emoji.CrossMark.String()
}

// BallResult describes the last resolved ball.
func BallResult(snap match.Snapshot) string {
	o := snap.LastBall
	if o == nil {
		return ""
	}

	buf := strpool.Get()
	defer strpool.Put(buf)

	fmt.Fprintf(buf, "%s %d vs %s %d: ", resource.TextYou, snap.PlayerNumber, snap.ComputerPersona, snap.ComputerNumber)

	switch {
	case o.Wicket:
		fmt.Fprintf(buf, "%s %s", emoji.Bomb.String(), resource.TextWicket)
		if o.RunsDelta < 0 {
			fmt.Fprintf(buf, " (%d)", o.RunsDelta)
		}
	case o.NoBallSurvived:
		buf.WriteString(resource.TextNoBallSaved)
	case o.Six():
		fmt.Fprintf(buf, "%s %s", emoji.Fire.String(), resource.TextSix)
	case o.Scored == 4:
		fmt.Fprintf(buf, "%s %s", emoji.ClappingHands.String(), resource.TextFour)
	case o.Scored == 0:
		buf.WriteString(resource.TextDot)
	default:
		buf.WriteString(util.Plural(o.Scored, "run", "runs"))
	}

	if snap.InningsOver {
		buf.WriteString("\n")
		buf.WriteString(emoji.ChequeredFlag.String())
		buf.WriteString(" ")
		buf.WriteString(resource.TextInningsOver)
	}

	return buf.String()
}

// InningsBreak announces the first innings score and the chase.
func InningsBreak(snap match.Snapshot, cat *catalog.Catalog) string {
	if snap.Innings1 == nil {
		return ""
	}

	if snap.Innings == 2 {
		return resource.TextMatchOver
	}

	return fmt.Sprintf("%s %d/%d. %s %s %d %s %s.",
		TeamName(cat, snap.BattingTeam()), snap.Innings1.Runs, snap.Innings1.Wickets,
		TeamName(cat, snap.BowlingTeam()), resource.TextNeed, snap.Target,
		resource.TextFrom, util.Plural(snap.TotalBalls, "ball", "balls"))
}

// Worm draws a sparkline per innings scaled to the highest score of the match, with a
// marker row underneath: W for a wicket, 6 for a six.
func Worm(snap match.Snapshot, cat *catalog.Catalog) string {
	top := 1
	for _, w := range append(append([]match.WormPoint(nil), snap.Worm1...), snap.Worm2...) {
		if w.Runs > top {
			top = w.Runs
		}
	}

	first := snap.Setup.PlayerTeam
	second := snap.Setup.OpponentTeam
	if snap.Setup.PlayerBowlsFirst {
		first, second = second, first
	}

	buf := strpool.Get()
	defer strpool.Put(buf)

	for i, worm := range [][]match.WormPoint{snap.Worm1, snap.Worm2} {
		if len(worm) == 0 {
			continue
		}
		name := first
		if i == 1 {
			name = second
		}

		if buf.Len() > 0 {
			buf.WriteString("\n")
		}
		fmt.Fprintf(buf, "%-12s ", TeamName(cat, name))
		for _, w := range worm {
			buf.WriteRune(sparks[w.Runs*(len(sparks)-1)/top])
		}
		fmt.Fprintf(buf, " %d\n%-12s ", worm[len(worm)-1].Runs, "")
		for _, w := range worm {
			switch {
			case w.Wicket:
				buf.WriteString("W")
			case w.Six:
				buf.WriteString("6")
			default:
				buf.WriteString(" ")
			}
		}
	}

	return buf.String()
}

// Summary is the final result with both recorded innings.
func Summary(snap match.Snapshot, cat *catalog.Catalog) string {
	if snap.Result == nil {
		return ""
	}

	buf := strpool.Get()
	defer strpool.Put(buf)

	switch snap.Result.Outcome {
	case match.OutcomeWin:
		fmt.Fprintf(buf, "%s %s %s %s", emoji.Trophy.String(), TeamName(cat, snap.Result.Winner),
			resource.TextWonBy, util.Plural(snap.Result.Margin, "run", "runs"))
	case match.OutcomeLose:
		fmt.Fprintf(buf, "%s %s %s %s", emoji.LoudlyCryingFace.String(), TeamName(cat, snap.Result.Winner),
			resource.TextWonBy, util.Plural(snap.Result.Margin, "run", "runs"))
	default:
		fmt.Fprintf(buf, "%s %s", emoji.HundredPoints.String(), resource.TextTie)
	}

	first, second := snap.Setup.PlayerTeam, snap.Setup.OpponentTeam
	if snap.Setup.PlayerBowlsFirst {
		first, second = second, first
	}
	if snap.Innings1 != nil {
		fmt.Fprintf(buf, "\n%s %d/%d", TeamName(cat, first), snap.Innings1.Runs, snap.Innings1.Wickets)
	}
	if snap.Innings2 != nil {
		fmt.Fprintf(buf, "\n%s %d/%d", TeamName(cat, second), snap.Innings2.Runs, snap.Innings2.Wickets)
	}

	if worm := Worm(snap, cat); worm != "" {
		buf.WriteString("\n\n")
		buf.WriteString(worm)
	}

	return buf.String()
}
