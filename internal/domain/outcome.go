package domain

import "fmt"

// OutcomeKind - итог тика ночи
type OutcomeKind uint8

const (
	OutcomeContinuing OutcomeKind = iota
	OutcomeLost
	OutcomeWon
)

var outcomeKindToString = map[OutcomeKind]string{
	OutcomeContinuing: "CONTINUING",
	OutcomeLost:       "LOST",
	OutcomeWon:        "WON",
}

func (k OutcomeKind) String() string {
	if val, ok := outcomeKindToString[k]; ok {
		return val
	}
	return "UNKNOWN"
}

// MarshalText - в JSON итог пишется именем, как и в снимке для клиента
func (k OutcomeKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *OutcomeKind) UnmarshalText(text []byte) error {
	for kind, name := range outcomeKindToString {
		if name == string(text) {
			*k = kind
			return nil
		}
	}
	return fmt.Errorf("unknown outcome kind %q", text)
}

// Outcome - результат тика. Entity заполнен только для Lost.
type Outcome struct {
	Kind   OutcomeKind `json:"kind"`
	Entity string      `json:"entity,omitempty"`
}

func Continuing() Outcome { return Outcome{Kind: OutcomeContinuing} }

func Won() Outcome { return Outcome{Kind: OutcomeWon} }

// LostTo - игрок пойман указанным аниматроником
func LostTo(entity string) Outcome {
	return Outcome{Kind: OutcomeLost, Entity: entity}
}

// IsTerminal - после Lost/Won ночь закончена до сброса
func (o Outcome) IsTerminal() bool {
	return o.Kind == OutcomeLost || o.Kind == OutcomeWon
}

func (o Outcome) String() string {
	if o.Kind == OutcomeLost {
		return "LOST(" + o.Entity + ")"
	}
	return o.Kind.String()
}
