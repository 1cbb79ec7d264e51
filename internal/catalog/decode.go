package catalog

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/KirkDiggler/talent-traits/internal/domain/talents"
	"github.com/KirkDiggler/talent-traits/internal/domain/traits"
)

// Record is one designer-entered rule before validation
type Record map[string]any

// RecordSet holds raw records per category, in configured order
type RecordSet map[traits.Category][]Record

// SkipReason explains why a record did not become a rule
type SkipReason string

const (
	ReasonNone             SkipReason = ""
	ReasonMalformedRecord  SkipReason = "malformed_record"
	ReasonMissingTalentKey SkipReason = "missing_talent_key"
	ReasonInvalidStartRank SkipReason = "invalid_start_rank"
	ReasonInvalidEndRank   SkipReason = "invalid_end_rank"
)

// Field names accepted for the common rule fields. The first spelling is
// the label designers see, the rest are catalog file keys.
var (
	fieldDescription = []string{"Description", "description"}
	fieldDisplayName = []string{"Name", "name", "display_name"}
	fieldTalentKey   = []string{"Talent Abbr", "talent_abbr", "talent_key", "talent"}
	fieldStartRank   = []string{"Start Rank", "start_rank"}
	fieldEndRank     = []string{"End Rank", "end_rank"}
)

// Outcome is the result of decoding one record: either a rule or the
// reason it was skipped
type Outcome struct {
	Rule   *Rule
	Reason SkipReason
}

// OK reports whether the record produced a rule
func (o Outcome) OK() bool {
	return o.Rule != nil
}

// Decode validates a record against its category's field set
func Decode(category traits.Category, record Record) Outcome {
	if record == nil {
		return Outcome{Reason: ReasonMalformedRecord}
	}

	key := talents.NormalizeKey(stringField(record, fieldTalentKey...))
	if key == "" {
		return Outcome{Reason: ReasonMissingTalentKey}
	}

	start, ok := intField(record, fieldStartRank...)
	if !ok {
		return Outcome{Reason: ReasonInvalidStartRank}
	}
	end, ok := intField(record, fieldEndRank...)
	if !ok {
		return Outcome{Reason: ReasonInvalidEndRank}
	}

	rule := &Rule{
		Category:    category,
		Description: stringField(record, fieldDescription...),
		DisplayName: stringField(record, fieldDisplayName...),
		TalentKey:   key,
		StartRank:   start,
		EndRank:     end,
	}

	if category.HasData() {
		if v, ok := intField(record, slotNames(category.Data)...); ok {
			rule.Data = v
		}
	}
	if category.HasValue() {
		if v, ok := intField(record, slotNames(category.Value)...); ok {
			rule.Value = &v
		}
	}

	return Outcome{Rule: rule}
}

func slotNames(s traits.Slot) []string {
	return []string{s.Label(), s.Key()}
}

func lookup(record Record, names ...string) (any, bool) {
	for _, name := range names {
		if v, ok := record[name]; ok && v != nil {
			return v, true
		}
	}
	return nil, false
}

func stringField(record Record, names ...string) string {
	v, ok := lookup(record, names...)
	if !ok {
		return ""
	}
	switch s := v.(type) {
	case string:
		return s
	case map[string]any, []any:
		return ""
	default:
		return fmt.Sprint(s)
	}
}

func intField(record Record, names ...string) (int, bool) {
	v, ok := lookup(record, names...)
	if !ok {
		return 0, false
	}
	return toInt(v)
}

// toInt coerces a configured number. Fractions truncate toward zero;
// anything non-numeric is treated as absent.
func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int8:
		return int(n), true
	case int16:
		return int(n), true
	case int32:
		return int(n), true
	case int64:
		if n < math.MinInt || n > math.MaxInt {
			return 0, false
		}
		return int(n), true
	case uint:
		return uintToInt(uint64(n))
	case uint8:
		return int(n), true
	case uint16:
		return int(n), true
	case uint32:
		return uintToInt(uint64(n))
	case uint64:
		return uintToInt(n)
	case float32:
		return floatToInt(float64(n))
	case float64:
		return floatToInt(n)
	case json.Number:
		return parseNumber(n.String())
	case string:
		return parseNumber(n)
	default:
		return 0, false
	}
}

func parseNumber(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	if i, err := strconv.Atoi(s); err == nil {
		return i, true
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return floatToInt(f)
}

// floatToInt truncates toward zero. Values outside the int range are
// rejected rather than wrapped.
func floatToInt(f float64) (int, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	t := math.Trunc(f)
	if t < math.MinInt || t >= -float64(math.MinInt) {
		return 0, false
	}
	return int(t), true
}

func uintToInt(n uint64) (int, bool) {
	if n > math.MaxInt {
		return 0, false
	}
	return int(n), true
}
