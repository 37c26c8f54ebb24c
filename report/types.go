// SPDX-License-Identifier: MIT

package report

// Fixed display texts.
const (
	WarningRank       = "⚠️ Warning: X is not full column rank! (XᵀX is singular or nearly singular)."
	WarningDegenerate = "⚠️ Warning: X has no columns; rank diagnostics are not applicable."

	TitleDesign       = "Design matrix X"
	TitleCrossProduct = "Cross-product XᵀX"
	TitleInverse      = "Inverse (XᵀX)⁻¹"

	// Undefined replaces a non-finite condition number.
	Undefined = "undefined"

	// MsgNotComputed stands in for the inverse of a report with no inverse outcome.
	MsgNotComputed = "Inverse not computed."
)

// Display precision per panel.
const (
	PrecisionDesign       = 0
	PrecisionCrossProduct = 2
	PrecisionInverse      = 6
)

// PanelKind tells a renderer whether Body is a matrix block or a message.
type PanelKind string

const (
	PanelMatrix  PanelKind = "matrix"
	PanelMessage PanelKind = "message"
)

// Warning is the gated message block above the summary.
type Warning struct {
	Text string `json:"text"`
}

// Line is one labeled summary fact. Label is empty for free-text lines.
type Line struct {
	Label string `json:"label,omitempty"`
	Value string `json:"value"`
}

// String renders "label: value", or just the value for free-text lines.
func (l Line) String() string {
	if l.Label == "" {
		return l.Value
	}

	return l.Label + ": " + l.Value
}

// Panel is one titled display block.
type Panel struct {
	Title string    `json:"title"`
	Kind  PanelKind `json:"kind"`
	Body  string    `json:"body"`
}

// View is everything a display surface needs for one render.
type View struct {
	Warning *Warning `json:"warning,omitempty"`
	Summary []Line   `json:"summary"`
	Panels  []Panel  `json:"panels"`
}
