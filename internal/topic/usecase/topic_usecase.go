package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/contenthub/backend/internal/database"
	apperrors "github.com/contenthub/backend/internal/errors"
	materialDomain "github.com/contenthub/backend/internal/material/domain"
	"github.com/contenthub/backend/internal/refiner"
	topicDomain "github.com/contenthub/backend/internal/topic/domain"
	customValidation "github.com/contenthub/backend/internal/validation"
)

// manualPromptName marks topics written by hand instead of by the refiner.
const manualPromptName = "manual"

// defaultPromptName selects the refinement prompt used when the caller does
// not name one.
const defaultPromptName = "default"

// refinementPrompts maps prompt names to the system instruction sent to the
// refiner. Responses must be a JSON object with title, content and tags.
var refinementPrompts = map[string]string{
	"default": "You are a content curator. Distill the material into a " +
		"concise topic. Respond with a JSON object containing \"title\" " +
		"(a short headline), \"content\" (the refined text in the " +
		"material's language) and \"tags\" (up to five short labels).",
	"summary": "You are a content curator. Summarize the material in a few " +
		"short paragraphs. Respond with a JSON object containing " +
		"\"title\", \"content\" and \"tags\" (up to five short labels).",
	"key_points": "You are a content curator. Extract the key points of the " +
		"material as a bullet list. Respond with a JSON object containing " +
		"\"title\", \"content\" and \"tags\" (up to five short labels).",
}

// inspirationPromptSetting names the setting that overrides the built-in
// topic discovery prompt.
const inspirationPromptSetting = "topic_inspiration_prompt"

// discoveryPrompt instructs the refiner to propose topic ideas from a digest
// of the material library.
const discoveryPrompt = "You are a content strategist. From the digest of a " +
	"personal material library, propose up to ten topic ideas worth writing " +
	"about. Respond with a JSON object containing \"title\" (a short name " +
	"for the idea set), \"content\" (a numbered list of ideas with a " +
	"one-line rationale each, in the materials' language) and \"tags\" (up " +
	"to five themes)."

// Discovery digests cover the newest materials, truncated per material.
const (
	discoverDigestMaterials = 50
	discoverDigestRunes     = 500
)

// topicUseCase implements the TopicUseCase interface.
type topicUseCase struct {
	topicRepo     TopicRepository
	materials     MaterialReader
	settings      SettingReader
	usage         UsageRecorder
	refiner       refiner.Refiner
	txManager     database.TxManager
	apiKeySetting string
}

// Create stores a hand-written topic for an active material.
func (t *topicUseCase) Create(
	ctx context.Context,
	input *topicDomain.CreateTopicInput,
) (*topicDomain.Topic, error) {
	if err := input.Validate(); err != nil {
		return nil, customValidation.WrapValidationError(err)
	}

	material, err := t.activeMaterial(ctx, input.MaterialID)
	if err != nil {
		return nil, err
	}

	topic := newTopic(
		input.MaterialID,
		input.Title,
		input.Content,
		manualPromptName,
		input.Tags,
		material.SourceType,
	)
	if err := t.topicRepo.Create(ctx, topic); err != nil {
		return nil, err
	}
	return topic, nil
}

// Refine runs a material through the content refiner. The produced topic and
// its token usage are persisted inside a single transaction.
func (t *topicUseCase) Refine(
	ctx context.Context,
	input *topicDomain.RefineTopicInput,
) (*topicDomain.Topic, error) {
	promptName := input.PromptName
	if promptName == "" {
		promptName = defaultPromptName
	}
	prompt, ok := refinementPrompts[promptName]
	if !ok {
		return nil, apperrors.Wrapf(apperrors.ErrInvalidInput, "unknown prompt %q", promptName)
	}

	material, err := t.activeMaterial(ctx, input.MaterialID)
	if err != nil {
		return nil, err
	}

	apiKey, err := t.resolveAPIKey(ctx)
	if err != nil {
		return nil, err
	}

	result, err := t.refiner.Refine(ctx, &refiner.RefineRequest{
		APIKey:  apiKey,
		Prompt:  prompt,
		Content: material.Content,
	})
	if err != nil {
		return nil, err
	}

	topic := newTopic(
		material.ID,
		result.Title,
		result.Content,
		promptName,
		result.Tags,
		material.SourceType,
	)
	err = t.txManager.WithTx(ctx, func(ctx context.Context) error {
		if err := t.topicRepo.Create(ctx, topic); err != nil {
			return err
		}
		return t.usage.Record(ctx, result.Model, result.Usage.TotalTokens)
	})
	if err != nil {
		return nil, err
	}
	return topic, nil
}

// Discover runs a digest of the newest materials through the refiner and
// returns topic ideas. An empty library short-circuits without a refiner
// call; token usage of real calls is recorded.
func (t *topicUseCase) Discover(ctx context.Context) (*topicDomain.Inspiration, error) {
	materials, err := t.materials.List(ctx, "", 0, discoverDigestMaterials)
	if err != nil {
		return nil, err
	}
	if len(materials) == 0 {
		return &topicDomain.Inspiration{Tags: []string{}}, nil
	}

	apiKey, err := t.resolveAPIKey(ctx)
	if err != nil {
		return nil, err
	}

	prompt, err := t.resolveDiscoveryPrompt(ctx)
	if err != nil {
		return nil, err
	}

	result, err := t.refiner.Refine(ctx, &refiner.RefineRequest{
		APIKey:  apiKey,
		Prompt:  prompt,
		Content: buildDigest(materials),
	})
	if err != nil {
		return nil, err
	}

	if err := t.usage.Record(ctx, result.Model, result.Usage.TotalTokens); err != nil {
		return nil, err
	}

	return &topicDomain.Inspiration{
		Title:   result.Title,
		Content: result.Content,
		Tags:    normalizeTags(result.Tags),
		Model:   result.Model,
	}, nil
}

// List returns topics, newest first, optionally filtered by material.
func (t *topicUseCase) List(
	ctx context.Context,
	materialID *uuid.UUID,
	offset, limit int,
) ([]*topicDomain.Topic, error) {
	return t.topicRepo.List(ctx, materialID, offset, limit)
}

// Get returns a topic by id.
func (t *topicUseCase) Get(ctx context.Context, topicID uuid.UUID) (*topicDomain.Topic, error) {
	return t.topicRepo.GetByID(ctx, topicID)
}

// Update rewrites a topic's title, content and tags.
func (t *topicUseCase) Update(
	ctx context.Context,
	topicID uuid.UUID,
	input *topicDomain.UpdateTopicInput,
) (*topicDomain.Topic, error) {
	if err := input.Validate(); err != nil {
		return nil, customValidation.WrapValidationError(err)
	}

	topic, err := t.topicRepo.GetByID(ctx, topicID)
	if err != nil {
		return nil, err
	}

	topic.Title = input.Title
	topic.Content = input.Content
	topic.Tags = normalizeTags(input.Tags)
	topic.UpdatedAt = time.Now().UTC()

	if err := t.topicRepo.Update(ctx, topic); err != nil {
		return nil, err
	}
	return topic, nil
}

// Delete removes a topic.
func (t *topicUseCase) Delete(ctx context.Context, topicID uuid.UUID) error {
	return t.topicRepo.Delete(ctx, topicID)
}

// activeMaterial loads a material and rejects recycle-bin entries.
func (t *topicUseCase) activeMaterial(
	ctx context.Context,
	materialID uuid.UUID,
) (*materialDomain.Material, error) {
	material, err := t.materials.GetByID(ctx, materialID)
	if err != nil {
		return nil, err
	}
	if material.DeletedAt != nil {
		return nil, materialDomain.ErrMaterialNotFound
	}
	return material, nil
}

// resolveAPIKey reads the decrypted refiner credential from settings.
func (t *topicUseCase) resolveAPIKey(ctx context.Context) (string, error) {
	setting, err := t.settings.Get(ctx, t.apiKeySetting)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrNotFound) {
			return "", apperrors.Wrap(apperrors.ErrInvalidInput, "refiner API key is not configured")
		}
		return "", err
	}
	if strings.TrimSpace(setting.Value) == "" {
		return "", apperrors.Wrap(apperrors.ErrInvalidInput, "refiner API key is not configured")
	}
	return setting.Value, nil
}

// resolveDiscoveryPrompt returns the discovery prompt, preferring a non-blank
// setting override.
func (t *topicUseCase) resolveDiscoveryPrompt(ctx context.Context) (string, error) {
	setting, err := t.settings.Get(ctx, inspirationPromptSetting)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrNotFound) {
			return discoveryPrompt, nil
		}
		return "", err
	}
	if strings.TrimSpace(setting.Value) == "" {
		return discoveryPrompt, nil
	}
	return setting.Value, nil
}

// buildDigest concatenates material excerpts into a single refiner payload.
func buildDigest(materials []*materialDomain.Material) string {
	var b strings.Builder
	for i, m := range materials {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString("## ")
		b.WriteString(m.Title)
		b.WriteString("\n")
		b.WriteString(truncateRunes(m.Content, discoverDigestRunes))
	}
	return b.String()
}

// truncateRunes shortens s to at most n runes.
func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

// newTopic builds a topic with a fresh UUIDv7 id and UTC timestamps.
func newTopic(
	materialID uuid.UUID,
	title, content, promptName string,
	tags []string,
	sourceType materialDomain.SourceType,
) *topicDomain.Topic {
	now := time.Now().UTC()
	return &topicDomain.Topic{
		ID:         uuid.Must(uuid.NewV7()),
		MaterialID: materialID,
		Title:      title,
		Content:    content,
		PromptName: promptName,
		Tags:       normalizeTags(tags),
		SourceType: sourceType,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// normalizeTags replaces a nil tag slice with an empty one.
func normalizeTags(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}

// NewTopicUseCase creates a new TopicUseCase instance. apiKeySetting names
// the setting that holds the refiner credential.
func NewTopicUseCase(
	topicRepo TopicRepository,
	materials MaterialReader,
	settings SettingReader,
	usage UsageRecorder,
	contentRefiner refiner.Refiner,
	txManager database.TxManager,
	apiKeySetting string,
) TopicUseCase {
	return &topicUseCase{
		topicRepo:     topicRepo,
		materials:     materials,
		settings:      settings,
		usage:         usage,
		refiner:       contentRefiner,
		txManager:     txManager,
		apiKeySetting: apiKeySetting,
	}
}
