package domain

// CommandType identifies a canonical, surface-independent command.
type CommandType string

const (
	CommandRandomPick   CommandType = "random_pick"
	CommandBookAnswers  CommandType = "book_of_answers"
	CommandDrawClowcard CommandType = "draw_clowcard"
	CommandClowCardInfo CommandType = "clowcard_info"
	CommandDice         CommandType = "dice"
	CommandRelationship CommandType = "relationship_calc"
	CommandAbout        CommandType = "about"
	CommandNone         CommandType = "none"
	CommandError        CommandType = "error"
)

func (c CommandType) String() string {
	return string(c)
}

// CommandData is the closed set of command payloads. Both input surfaces
// normalize into these; handlers type-switch on the concrete type.
type CommandData interface {
	isCommandData()
}

// Parsed couples a resolved command type with its extracted payload.
type Parsed struct {
	Type CommandType
	Data CommandData
}

// RandomPick holds the candidate choices in the order they were supplied.
// Parsing guarantees at least 2 entries.
type RandomPick struct {
	Choices    []string
	ShowPrompt bool
}

// BookOfAnswers asks the answer book a question. An empty Prompt means the
// caller asked nothing in particular and gets a fresh random answer.
type BookOfAnswers struct {
	Prompt     string
	Author     uint64
	ShowPrompt bool
}

// DrawClowcard draws cards for Author. Amount 0 means "not given"; parsing
// clamps any present amount to the card limit.
type DrawClowcard struct {
	Prompt     string
	Author     uint64
	Amount     int
	ShowPrompt bool
}

// ClowCardInfo requests the full reading of a single card. Only produced by
// decoding a component token, never by either argument surface.
type ClowCardInfo struct {
	Name string
}

// Dice rolls Amount dice. Parsing guarantees 1..100.
type Dice struct {
	Amount int
}

// Relationship pairs two users. Targets is sorted ascending so the outcome
// is independent of argument order; a user may be paired with themself.
type Relationship struct {
	Targets [2]uint64
}

// About carries no arguments.
type About struct{}

// ErrorData is the terminal payload for requests that cannot be served.
type ErrorData struct {
	Message string
}

func (RandomPick) isCommandData()    {}
func (BookOfAnswers) isCommandData() {}
func (DrawClowcard) isCommandData()  {}
func (ClowCardInfo) isCommandData()  {}
func (Dice) isCommandData()          {}
func (Relationship) isCommandData()  {}
func (About) isCommandData()         {}
func (ErrorData) isCommandData()     {}

// ParsedNone is the silent terminal result used when a message does not
// resolve into any command.
func ParsedNone() Parsed {
	return Parsed{Type: CommandNone}
}

// ParsedError is the terminal result rendered as a generic ephemeral error.
func ParsedError(message string) Parsed {
	return Parsed{Type: CommandError, Data: ErrorData{Message: message}}
}
