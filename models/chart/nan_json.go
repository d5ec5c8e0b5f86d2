package chart

import (
	"encoding/json"
	"math"
)

// encoding/json rejects NaN, so undefined statistics are written as null.

// Nullable maps NaN and infinities to nil.
func Nullable(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

// FromNullable reads nil back as NaN.
func FromNullable(p *float64) float64 {
	if p == nil {
		return math.NaN()
	}
	return *p
}

type pointJSON struct {
	X     *float64        `json:"x"`
	Y     *float64        `json:"y"`
	Shade json.RawMessage `json:"shade,omitempty"`
	Label string          `json:"label,omitempty"`
}

func (p Point) MarshalJSON() ([]byte, error) {
	out := pointJSON{X: Nullable(p.X), Y: Nullable(p.Y), Label: p.Label}
	// unshaded points omit the field; a missing shade value is an explicit null
	if p.Shade != 0 {
		shade, err := json.Marshal(Nullable(p.Shade))
		if err != nil {
			return nil, err
		}
		out.Shade = shade
	}
	return json.Marshal(out)
}

func (p *Point) UnmarshalJSON(data []byte) error {
	var in pointJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	p.X = FromNullable(in.X)
	p.Y = FromNullable(in.Y)
	p.Shade = 0
	if len(in.Shade) > 0 {
		var shade *float64
		if err := json.Unmarshal(in.Shade, &shade); err != nil {
			return err
		}
		p.Shade = FromNullable(shade)
	}
	p.Label = in.Label
	return nil
}

type boxSummaryJSON struct {
	Count        int       `json:"count"`
	Min          *float64  `json:"min"`
	Q1           *float64  `json:"q1"`
	Median       *float64  `json:"median"`
	Q3           *float64  `json:"q3"`
	Max          *float64  `json:"max"`
	LowerWhisker *float64  `json:"lower_whisker"`
	UpperWhisker *float64  `json:"upper_whisker"`
	Outliers     []float64 `json:"outliers"`
}

func (b BoxSummary) MarshalJSON() ([]byte, error) {
	outliers := b.Outliers
	if outliers == nil {
		outliers = []float64{}
	}
	return json.Marshal(boxSummaryJSON{
		Count:        b.Count,
		Min:          Nullable(b.Min),
		Q1:           Nullable(b.Q1),
		Median:       Nullable(b.Median),
		Q3:           Nullable(b.Q3),
		Max:          Nullable(b.Max),
		LowerWhisker: Nullable(b.LowerWhisker),
		UpperWhisker: Nullable(b.UpperWhisker),
		Outliers:     outliers,
	})
}

func (b *BoxSummary) UnmarshalJSON(data []byte) error {
	var in boxSummaryJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	*b = BoxSummary{
		Count:        in.Count,
		Min:          FromNullable(in.Min),
		Q1:           FromNullable(in.Q1),
		Median:       FromNullable(in.Median),
		Q3:           FromNullable(in.Q3),
		Max:          FromNullable(in.Max),
		LowerWhisker: FromNullable(in.LowerWhisker),
		UpperWhisker: FromNullable(in.UpperWhisker),
		Outliers:     in.Outliers,
	}
	return nil
}
