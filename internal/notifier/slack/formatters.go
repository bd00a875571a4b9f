package slack

import (
	"fmt"
	"strings"

	"github.com/Ware71/CIAGA-sub001/internal/round"
	"github.com/Ware71/CIAGA-sub001/internal/scoring"
	"github.com/slack-go/slack"
)

var medals = []string{":first_place_medal:", ":second_place_medal:", ":third_place_medal:"}

func (s *Notifier) formatRoundResult(r *round.Round, board *scoring.DisplayData, ranked []scoring.Summary) slack.Message {
	label := "Net"
	if board != nil {
		label = board.Label
	}

	headerText := slack.NewTextBlockObject(slack.PlainTextType,
		fmt.Sprintf(":golf: %s — final standings", r.Name), true, false)
	header := slack.NewHeaderBlock(headerText)

	contextText := slack.NewTextBlockObject(slack.MarkdownType,
		fmt.Sprintf("%s · %s", r.CourseName, label), false, false)
	contextBlock := slack.NewContextBlock("", contextText)

	var sb strings.Builder
	for i, row := range ranked {
		rank := fmt.Sprintf("%d.", i+1)
		if i < len(medals) {
			rank = medals[i]
		}
		fmt.Fprintf(&sb, "%s *%s* — %s\n", rank, row.Name, row.Total)
	}
	if sb.Len() == 0 {
		sb.WriteString("No scores were recorded.")
	}
	body := slack.NewSectionBlock(
		slack.NewTextBlockObject(slack.MarkdownType, sb.String(), false, false), nil, nil)

	return slack.NewBlockMessage(header, contextBlock, body)
}
