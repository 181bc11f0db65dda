package models

// AnswerKind tells which branch produced a query answer.
type AnswerKind string

const (
	AnswerGuidance      AnswerKind = "guidance"
	AnswerColumn        AnswerKind = "column"
	AnswerVisualization AnswerKind = "visualization"
)

// Answer is the outcome of a visualizer query. Visualization is nil unless
// Kind is AnswerVisualization.
type Answer struct {
	Kind          AnswerKind
	Visualization *string
	Description   string
}
