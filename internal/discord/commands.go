package discord

import (
	"fmt"

	"github.com/miruku-dev/clow-discord-bot-go/internal/constants"
)

const commandTypeChatInput = 1

// interaction contexts: guild, bot DM, private channel
var commandContexts = []int{0, 1, 2}

// integration types: guild install, user install
var commandIntegrationTypes = []int{0, 1}

func intPtr(v int64) *int64 { return &v }

// BuildGlobalCommands assembles the slash-command catalogue. Option names
// and ranges here are the structured surface's contract; the parsers
// re-validate everything after the fact anyway.
func BuildGlobalCommands() []CommandDefinition {
	drawclow := CommandDefinition{
		Name:        "drawclow",
		Description: "xem vận mệnh với thẻ bài Clow",
		Type:        commandTypeChatInput,
		Options: []CommandOptionDefinition{
			{Type: OptionTypeString, Name: "prompt", Description: "nội dung"},
			{
				Type: OptionTypeInteger, Name: "amount", Description: "số lượng",
				MinValue: intPtr(1), MaxValue: intPtr(int64(constants.Limit.MaxClow)),
			},
		},
	}

	pick := CommandDefinition{
		Name:        "pick",
		Description: "hỗ trợ bạn quyết định giữa muôn vàn sự lựa chọn",
		Type:        commandTypeChatInput,
	}
	for idx := range 25 {
		pick.Options = append(pick.Options, CommandOptionDefinition{
			Type:        OptionTypeString,
			Name:        fmt.Sprintf("opt-%d", idx+1),
			Description: "thêm một lựa chọn",
			Required:    idx < 2,
		})
	}

	boa := CommandDefinition{
		Name:        "bookofanswers",
		Description: "hãy để cuốn sách này trả lời trăn trở của bạn",
		Type:        commandTypeChatInput,
		Options: []CommandOptionDefinition{
			{Type: OptionTypeString, Name: "prompt", Description: "nội dung"},
		},
	}

	dice := CommandDefinition{
		Name:        "dice",
		Description: "tung xúc sắc",
		Type:        commandTypeChatInput,
		Options: []CommandOptionDefinition{
			{
				Type: OptionTypeInteger, Name: "amount", Description: "số lượng",
				MinValue: intPtr(1), MaxValue: intPtr(constants.Limit.MaxDiceCmd),
			},
		},
	}

	relacalc := CommandDefinition{
		Name:        "relacalc",
		Description: "kiểm tra sự kết nối giữa 2 users",
		Type:        commandTypeChatInput,
		Options: []CommandOptionDefinition{
			{Type: OptionTypeUser, Name: "user", Description: "user", Required: true},
			{Type: OptionTypeUser, Name: "another_user", Description: "another_user"},
		},
	}

	about := CommandDefinition{
		Name:        "about",
		Description: "thông tin về bot",
		Type:        commandTypeChatInput,
	}

	commands := []CommandDefinition{about, boa, dice, drawclow, pick, relacalc}
	for i := range commands {
		commands[i].Contexts = commandContexts
		commands[i].IntegrationTypes = commandIntegrationTypes
	}
	return commands
}
