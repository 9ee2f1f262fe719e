package formatting

import (
	"fmt"
	"strings"

	"sf-recruiter/internal/core/domain"
)

const (
	MsgUsageMailer  = "usage: sf-mailer <recipient> <message words...>"
	MsgNoCharacters = "no characters found on this S&F account"
)

// RecruitmentMessage builds the in-game mail sent to a drawn winner.
func RecruitmentMessage(name, guildName string) string {
	var b strings.Builder

	b.WriteString("Guild invitation\n")
	fmt.Fprintf(&b, "Greetings %s.\n\n", name)
	b.WriteString("I am contacting you because your level and activity speak for themselves.\n")
	fmt.Fprintf(&b, "Our guild %s is recruiting only strong, dedicated players who want real progress.\n\n", guildName)
	b.WriteString("We are ambitious, disciplined and active every day.\n")
	b.WriteString("We win attacks, we win defenses, and we rise steadily through the rankings.\n")
	b.WriteString("Members who join us grow fast, because everyone contributes and everyone plays.\n\n")
	b.WriteString("If you want a guild that does not waste time, that expects effort and rewards commitment, then you will fit in perfectly with us.\n\n")
	fmt.Fprintf(&b, "Should you choose to join, you must send a message to any of the officers in %s, and they will add you to the guild.\n", guildName)
	b.WriteString("If not, I respect your decision.\n\n")
	b.WriteString("The invitation is open.\n\n")

	return b.String()
}

// MsgWinnersAnnouncement summarizes a round's draw for the Discord channel.
func MsgWinnersAnnouncement(assignments []domain.Assignment) string {
	if len(assignments) == 0 {
		return "Recruitment round finished: no winners drawn."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Recruitment round: %d winners drawn\n", len(assignments))
	for _, a := range assignments {
		fmt.Fprintf(&b, "- %s %d→%d (+%d), mail at %s\n",
			a.Player.Name, a.Player.From, a.Player.To, a.Player.Delta,
			a.SendAt.Format("15:04"))
	}
	return b.String()
}

func MsgPlannedSend(a domain.Assignment) string {
	return fmt.Sprintf("%s %d→%d (+%d) at %s", a.Player.Name, a.Player.From, a.Player.To, a.Player.Delta, a.SendAt.Format("15:04"))
}
