package threshold

import (
	"encoding/json"

	"github.com/frameloss/threshold/host"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Mode is the comparison a rule applies to a value.
type Mode uint8

const (
	ModeUnknown Mode = iota
	ModeGE
	ModeGT
	ModeLT
	ModeLE
)

// Bound says which side of the threshold a rule colors.
type Bound uint8

const (
	NoBound Bound = iota
	LowerBound
	UpperBound
)

// ParseMode accepts exactly ge, gt, lt and le. Anything else, including other
// spellings such as "GE" or " lt", is ModeUnknown and ok is false.
func ParseMode(s string) (m Mode, ok bool) {
	switch s {
	case "ge":
		return ModeGE, true
	case "gt":
		return ModeGT, true
	case "lt":
		return ModeLT, true
	case "le":
		return ModeLE, true
	}
	return ModeUnknown, false
}

func (m Mode) String() string {
	switch m {
	case ModeGE:
		return "ge"
	case ModeGT:
		return "gt"
	case ModeLT:
		return "lt"
	case ModeLE:
		return "le"
	}
	return "unknown"
}

// Bound reports LowerBound for lt/le, UpperBound for gt/ge.
func (m Mode) Bound() Bound {
	switch m {
	case ModeLT, ModeLE:
		return LowerBound
	case ModeGT, ModeGE:
		return UpperBound
	}
	return NoBound
}

func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText never fails, unrecognized modes decode to ModeUnknown and simply never match.
func (m *Mode) UnmarshalText(b []byte) error {
	*m, _ = ParseMode(string(b))
	return nil
}

// Rule is a single threshold condition.
type Rule struct {
	Mode  Mode
	Value float64
	Color drawing.Color
}

// Evaluate reports whether value satisfies the rule's comparison against its threshold.
func Evaluate(value float64, rule Rule) bool {
	switch rule.Mode {
	case ModeGE:
		return value >= rule.Value
	case ModeGT:
		return value > rule.Value
	case ModeLT:
		return value < rule.Value
	case ModeLE:
		return value <= rule.Value
	}
	return false
}

func (r Rule) Matches(value float64) bool {
	return Evaluate(value, r)
}

type ruleJSON struct {
	Mode  Mode    `json:"mode"`
	Value float64 `json:"value"`
	Color string  `json:"color"`
}

func (r Rule) MarshalJSON() ([]byte, error) {
	return json.Marshal(ruleJSON{Mode: r.Mode, Value: r.Value, Color: host.Hex(r.Color)})
}

func (r *Rule) UnmarshalJSON(b []byte) error {
	var raw ruleJSON
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	c, err := host.ParseColor(raw.Color)
	if err != nil {
		return err
	}
	*r = Rule{Mode: raw.Mode, Value: raw.Value, Color: c}
	return nil
}
