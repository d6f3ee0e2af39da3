package adapter

import (
	"github.com/miruku-dev/clow-discord-bot-go/internal/domain"
	"github.com/miruku-dev/clow-discord-bot-go/internal/util"
)

// aliasTable maps command tokens to canonical kinds. Matching is
// case-sensitive; the first alias is also the registered slash-command name.
var aliasTable = []struct {
	aliases []string
	kind    domain.CommandType
}{
	{aliases: []string{"pick", "choose"}, kind: domain.CommandRandomPick},
	{aliases: []string{"drawclow", "dc"}, kind: domain.CommandDrawClowcard},
	{aliases: []string{"relacalc", "lc"}, kind: domain.CommandRelationship},
	{aliases: []string{"dice"}, kind: domain.CommandDice},
	{aliases: []string{"bookofanswers", "boa"}, kind: domain.CommandBookAnswers},
	{aliases: []string{"about"}, kind: domain.CommandAbout},
}

// ResolveCommand maps a command token to its canonical kind.
func ResolveCommand(token string) (domain.CommandType, bool) {
	for _, entry := range aliasTable {
		if util.Contains(entry.aliases, token) {
			return entry.kind, true
		}
	}
	return domain.CommandNone, false
}
