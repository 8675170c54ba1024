package session

import (
	"fmt"
	"slices"
	"strings"
)

// Standing is the result of one board at the end of a run.
type Standing struct {
	ID    BoardID
	Slot  int
	Name  string
	Lines int
}

// Ranking returns the standings ordered by lines, best first. Boards with
// equal lines keep their slot order.
func (s *Session) Ranking() []Standing {
	standings := make([]Standing, len(s.boards))
	for slot, b := range s.boards {
		standings[slot] = Standing{
			ID:    s.ids[slot],
			Slot:  slot,
			Name:  DisplayName(b.Name, slot),
			Lines: b.Lines,
		}
	}
	slices.SortStableFunc(standings, func(a, b Standing) int {
		return b.Lines - a.Lines
	})
	return standings
}

// Winners returns every standing tied for the most lines.
func Winners(ranking []Standing) []Standing {
	if len(ranking) == 0 {
		return nil
	}
	n := 1
	for n < len(ranking) && ranking[n].Lines == ranking[0].Lines {
		n++
	}
	return ranking[:n]
}

// Announcement formats the winner line for a ranking, such as
// "THE WINNER IS ADA" or "THE WINNERS ARE ADA AND BOB".
func Announcement(ranking []Standing) string {
	winners := Winners(ranking)
	names := make([]string, len(winners))
	for i, w := range winners {
		names[i] = w.Name
	}

	switch len(names) {
	case 0:
		return ""
	case 1:
		return "THE WINNER IS " + names[0]
	}
	last := len(names) - 1
	return fmt.Sprintf("THE WINNERS ARE %s AND %s", strings.Join(names[:last], ", "), names[last])
}

// Announce writes the winner announcement of a multiplayer session and
// returns it. Single player sessions have no winner and return "".
func (s *Session) Announce() string {
	if len(s.boards) < 2 {
		return ""
	}
	msg := Announcement(s.Ranking())
	fmt.Fprintln(s.out, msg)
	s.log.WithField("announcement", msg).Info("session finished")
	return msg
}
