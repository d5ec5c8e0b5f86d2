package chart

// Kind selects how a Description is drawn.
type Kind string

const (
	KindScatter Kind = "scatter"
	KindBox     Kind = "box"
	KindLine    Kind = "line"
	KindPolar   Kind = "polar"
)

// Point is one plotted mark. Shade carries the colour dimension when the chart has one.
type Point struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Shade float64 `json:"shade,omitempty"`
	Label string  `json:"label,omitempty"`
}

type Series struct {
	Name   string  `json:"name"`
	Points []Point `json:"points"`
}

// BoxSummary is the five-number summary plus outliers of one distribution.
// Every statistic is NaN when Count is zero.
type BoxSummary struct {
	Count        int       `json:"count"`
	Min          float64   `json:"min"`
	Q1           float64   `json:"q1"`
	Median       float64   `json:"median"`
	Q3           float64   `json:"q3"`
	Max          float64   `json:"max"`
	LowerWhisker float64   `json:"lower_whisker"`
	UpperWhisker float64   `json:"upper_whisker"`
	Outliers     []float64 `json:"outliers"`
}

// Empty reports whether the summary was built from zero values.
func (b BoxSummary) Empty() bool {
	return b.Count == 0
}

// Axis describes one axis; Min/Max are optional bounds.
type Axis struct {
	Name string   `json:"name"`
	Type string   `json:"type,omitempty"`
	Min  *float64 `json:"min,omitempty"`
	Max  *float64 `json:"max,omitempty"`
}

// Description is a renderer-agnostic chart built from a (sub)table.
// It is never mutated once returned; recomputation builds a new one.
type Description struct {
	Kind         Kind        `json:"kind"`
	Title        string      `json:"title"`
	XAxis        Axis        `json:"x_axis"`
	YAxis        Axis        `json:"y_axis"`
	ShadeLabel   string      `json:"shade_label,omitempty"`
	ShadeMin     float64     `json:"shade_min,omitempty"`
	ShadeMax     float64     `json:"shade_max,omitempty"`
	Categories   []string    `json:"categories,omitempty"`
	Series       []Series    `json:"series"`
	Box          *BoxSummary `json:"box,omitempty"`
	TransitionMs int         `json:"transition_ms,omitempty"`
}

// PointCount is the total number of points over all series.
func (d Description) PointCount() int {
	n := 0
	for _, s := range d.Series {
		n += len(s.Points)
	}
	return n
}
