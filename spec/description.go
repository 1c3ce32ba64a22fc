package spec

// Report is the serialized result of a full grammar analysis. The rendering
// layer consumes it as-is; the core never formats anything itself.
type Report struct {
	Start        string           `json:"start"`
	Grammar      string           `json:"grammar"`
	Terminals    []string         `json:"terminals"`
	NonTerminals []string         `json:"non_terminals"`
	First        []*FirstEntry    `json:"first"`
	Follow       []*FollowEntry   `json:"follow"`
	Table        []*TableEntry    `json:"table"`
	Conflicts    []*ConflictEntry `json:"conflicts"`
	LL1          bool             `json:"ll1"`
	Validation   *ValidationEntry `json:"validation"`
	SkippedLines []*SkippedLine   `json:"skipped_lines,omitempty"`
}

type FirstEntry struct {
	NonTerminal string   `json:"non_terminal"`
	Symbols     []string `json:"symbols"`
	Empty       bool     `json:"empty"`
}

type FollowEntry struct {
	NonTerminal string   `json:"non_terminal"`
	Symbols     []string `json:"symbols"`
	EOF         bool     `json:"eof"`
}

type TableEntry struct {
	NonTerminal  string   `json:"non_terminal"`
	LookAhead    string   `json:"look_ahead"`
	Alternatives []string `json:"alternatives"`
}

type ConflictEntry struct {
	NonTerminal  string   `json:"non_terminal"`
	LookAhead    string   `json:"look_ahead"`
	Alternatives []string `json:"alternatives"`
}

type ValidationEntry struct {
	Undefined     []string `json:"undefined"`
	Unreachable   []string `json:"unreachable"`
	NeverUsed     []string `json:"never_used"`
	NonProductive []string `json:"non_productive"`
	Reachable     []string `json:"reachable"`
	Productive    []string `json:"productive"`
}

type SkippedLine struct {
	Row  int    `json:"row"`
	Text string `json:"text"`
}

// AutomatonDescription is the serialized form of a finite automaton,
// written by the nfa2dfa command.
type AutomatonDescription struct {
	States      []string          `json:"states"`
	Alphabet    []string          `json:"alphabet"`
	Start       string            `json:"start"`
	Accepting   []string          `json:"accepting"`
	Transitions []*TransitionDesc `json:"transitions"`
}

type TransitionDesc struct {
	From   string   `json:"from"`
	Symbol string   `json:"symbol"`
	To     []string `json:"to"`
}
