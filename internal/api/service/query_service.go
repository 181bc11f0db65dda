package service

import (
	"context"
	"datachat"
	"datachat/internal/api/models"
	"datachat/internal/api/repo"
	"datachat/pkg"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

const (
	SampleValueLimit = 25
	GuidanceMessage  = "Please upload a dataset for me to work with."
)

type QueryService struct {
	chat      pkg.ChatCompleter
	store     repo.TableStore
	publisher pkg.EventPublisher
	logger    zerolog.Logger
}

func NewQueryService(chat pkg.ChatCompleter, store repo.TableStore, publisher pkg.EventPublisher) *QueryService {
	if publisher == nil {
		publisher = pkg.NopPublisher{}
	}
	return &QueryService{
		chat:      chat,
		store:     store,
		publisher: publisher,
		logger:    datachat.Logger,
	}
}

// QueryAnsweredEvent is published after every answered query.
type QueryAnsweredEvent struct {
	SessionID string            `json:"sessionId"`
	TableID   string            `json:"tableId,omitempty"`
	Kind      models.AnswerKind `json:"kind"`
}

// Respond answers prompt against the session's table.
/* Without a table the static guidance is returned. A prompt naming a column
exactly (after trimming) lists up to 25 of its non-missing values without
calling the model. Anything else costs two model calls: one for the
Vega-Lite specification, one for a short description of that specification. */
func (s *QueryService) Respond(ctx context.Context, sessionID, prompt string) (models.Answer, error) {
	table, err := s.store.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, repo.ErrTableNotFound) {
			answer := models.Answer{Kind: models.AnswerGuidance, Description: GuidanceMessage}
			s.publishAnswered(ctx, sessionID, "", answer.Kind)
			return answer, nil
		}
		s.logger.Error().Err(err).Str("session", sessionID).Msg("Failed to load table")
		return models.Answer{}, newError(KindInternal, err)
	}

	if idx, ok := table.ColumnIndex(strings.TrimSpace(prompt)); ok {
		values := table.NonMissing(idx, SampleValueLimit)
		answer := models.Answer{
			Kind:        models.AnswerColumn,
			Description: ColumnListing(table.Columns[idx], values),
		}
		s.publishAnswered(ctx, sessionID, table.ID, answer.Kind)
		return answer, nil
	}

	spec, err := s.chat.Complete(ctx, VisualizationPrompt(table.Describe(SampleValueLimit), prompt))
	if err != nil {
		s.logger.Error().Err(err).Str("session", sessionID).Msg("Visualization request failed")
		return models.Answer{}, newError(KindUpstream, err)
	}

	description, err := s.chat.Complete(ctx, DescriptionPrompt(spec))
	if err != nil {
		s.logger.Error().Err(err).Str("session", sessionID).Msg("Description request failed")
		return models.Answer{}, newError(KindUpstream, err)
	}

	answer := models.Answer{
		Kind:          models.AnswerVisualization,
		Visualization: pkg.ToPtr(spec),
		Description:   description,
	}
	s.publishAnswered(ctx, sessionID, table.ID, answer.Kind)
	return answer, nil
}

func (s *QueryService) publishAnswered(ctx context.Context, sessionID, tableID string, kind models.AnswerKind) {
	if err := s.publisher.Publish(ctx, pkg.SubjectQueryAnswered, QueryAnsweredEvent{
		SessionID: sessionID,
		TableID:   tableID,
		Kind:      kind,
	}); err != nil {
		s.logger.Warn().Err(err).Str("session", sessionID).Msg("Failed to publish query event")
	}
}

// ColumnListing renders the values of a column for the shortcut answer.
func ColumnListing(column string, values []string) string {
	if len(values) == 0 {
		return fmt.Sprintf("Column '%s' has no non-missing values.", column)
	}
	return fmt.Sprintf("Values in column '%s': %s", column, strings.Join(values, ", "))
}

// DescribeColumns renders the descriptors the way they are embedded in the
// prompt.
func DescribeColumns(descriptors []models.ColumnDescriptor) string {
	data, err := json.MarshalIndent(descriptors, "", "  ")
	if err != nil {
		return fmt.Sprintf("error marshaling: %v", err)
	}
	return string(data)
}

func VisualizationPrompt(descriptors []models.ColumnDescriptor, userInput string) string {
	return fmt.Sprintf(`You are a data visualization expert. Your goal is to write a Vega-Lite JSON specification that answers the user's request, based on the dataset described below.

### DATASET COLUMNS (name, type, sample values)
%s

### USER REQUEST:
%s

### INSTRUCTIONS:
- Use only the columns listed above, with the Vega-Lite field type given for each.
- Answer with the Vega-Lite JSON specification only: no explanation, no markdown fences.
`, DescribeColumns(descriptors), userInput)
}

func DescriptionPrompt(spec string) string {
	return fmt.Sprintf(`Describe in one or two short sentences, for a non-technical reader, what the following Vega-Lite chart shows. Answer with the description only.

%s
`, spec)
}
