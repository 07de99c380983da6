package mcpserver

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"conferenceassistant/internal/domain"
	"conferenceassistant/internal/services"
)

// ConferenceDetailsInput takes no arguments.
type ConferenceDetailsInput struct{}

// SubmitTalkInput is the argument object of the submit-talk tool.
type SubmitTalkInput struct {
	SpeakerName     string   `json:"speakerName" jsonschema:"Full name of the speaker"`
	Email           string   `json:"email" jsonschema:"Email address of the speaker. If you dont know the exact email, you must ask for it before using this tool."`
	TalkTitle       string   `json:"talkTitle" jsonschema:"Title of the proposed talk (can be changed later)"`
	Abstract        string   `json:"abstract" jsonschema:"Abstract of the proposed talk - markdown is allowed. (can be changed later)"`
	Tracks          []string `json:"tracks" jsonschema:"Possible track categories for the talk (can select up to 3)"`
	SpeakerTitle    *string  `json:"speakerTitle,omitempty" jsonschema:"Speaker's professional title (e.g. CTO, AI Engineer)"`
	SpeakerCompany  *string  `json:"speakerCompany,omitempty" jsonschema:"Speaker's company or organization"`
	SpeakerPhotoURL *string  `json:"speakerPhotoUrl,omitempty" jsonschema:"URL to speaker's photo (must be a valid URL)"`
	SpeakerBio      *string  `json:"speakerBio,omitempty" jsonschema:"Speaker's bio - markdown is allowed"`
	ReviewComments  *string  `json:"reviewComments,omitempty" jsonschema:"Comments for the review committee on why they should consider this talk"`
}

// EditTalkInput is the argument object of the edit-talk tool. Either SubmissionID or
// SecretHash identifies the submission.
type EditTalkInput struct {
	SubmissionID    string   `json:"submissionId,omitempty" jsonschema:"The unique submission ID"`
	SecretHash      string   `json:"secretHash,omitempty" jsonschema:"The email hash (alternative to submissionId)"`
	SpeakerName     *string  `json:"speakerName,omitempty" jsonschema:"Updated full name of the speaker"`
	Email           *string  `json:"email,omitempty" jsonschema:"Updated email address of the speaker"`
	TalkTitle       *string  `json:"talkTitle,omitempty" jsonschema:"Updated title of the proposed talk"`
	Abstract        *string  `json:"abstract,omitempty" jsonschema:"Updated abstract of the proposed talk"`
	Tracks          []string `json:"tracks,omitempty" jsonschema:"Updated track categories for the talk"`
	SpeakerTitle    *string  `json:"speakerTitle,omitempty" jsonschema:"Updated speaker's professional title"`
	SpeakerCompany  *string  `json:"speakerCompany,omitempty" jsonschema:"Updated speaker's company or organization"`
	SpeakerPhotoURL *string  `json:"speakerPhotoUrl,omitempty" jsonschema:"Updated URL to speaker's photo"`
	SpeakerBio      *string  `json:"speakerBio,omitempty" jsonschema:"Updated speaker's bio - markdown is allowed"`
	ReviewComments  *string  `json:"reviewComments,omitempty" jsonschema:"Updated comments for the review committee"`
}

// ListSubmissionsInput is the argument object of the list-submissions tool.
type ListSubmissionsInput struct {
	SecretHash string `json:"secretHash,omitempty" jsonschema:"Secret hash to filter submissions"`
}

func (in SubmitTalkInput) toDomain() domain.SubmitInput {
	return domain.SubmitInput{
		SpeakerName:     in.SpeakerName,
		Email:           in.Email,
		TalkTitle:       in.TalkTitle,
		Abstract:        in.Abstract,
		Tracks:          in.Tracks,
		SpeakerTitle:    in.SpeakerTitle,
		SpeakerCompany:  in.SpeakerCompany,
		SpeakerPhotoURL: in.SpeakerPhotoURL,
		SpeakerBio:      in.SpeakerBio,
		ReviewComments:  in.ReviewComments,
	}
}

func (in EditTalkInput) toDomain() domain.EditInput {
	return domain.EditInput{
		SubmissionID:    in.SubmissionID,
		SecretHash:      in.SecretHash,
		SpeakerName:     in.SpeakerName,
		Email:           in.Email,
		TalkTitle:       in.TalkTitle,
		Abstract:        in.Abstract,
		Tracks:          in.Tracks,
		SpeakerTitle:    in.SpeakerTitle,
		SpeakerCompany:  in.SpeakerCompany,
		SpeakerPhotoURL: in.SpeakerPhotoURL,
		SpeakerBio:      in.SpeakerBio,
		ReviewComments:  in.ReviewComments,
	}
}

func (h *handlers) registerTools(server *mcp.Server) error {
	tracks := h.catalog.TrackNames()

	submitSchema, err := inputSchema[SubmitTalkInput](tracks)
	if err != nil {
		return fmt.Errorf("submit-talk schema: %w", err)
	}
	editSchema, err := inputSchema[EditTalkInput](tracks)
	if err != nil {
		return fmt.Errorf("edit-talk schema: %w", err)
	}

	mcp.AddTool(server, &mcp.Tool{
		Name: "conference-details",
		Description: "Get detailed information about the conference, including dates, venue, submission " +
			"guidelines, and other important details for speakers and attendees, straight from the conference's llms.txt",
	}, h.conferenceDetails)

	mcp.AddTool(server, &mcp.Tool{
		Name: "submit-talk",
		Description: "Submit a talk proposal for the conference - make sure all fields are confirmed by the speaker " +
			"before submitting - do not hallucinate any fields. If you dont know the exact email, you must ask for it " +
			"before using this tool.",
		InputSchema: submitSchema,
	}, h.submitTalk)

	mcp.AddTool(server, &mcp.Tool{
		Name: "edit-talk",
		Description: "Edit an existing talk submission. You must provide either the submission ID or email hash " +
			"to identify your submission. Only the fields you provide are changed.",
		InputSchema: editSchema,
	}, h.editTalk)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list-submissions",
		Description: "List talk submissions. Pass the email hash to see only the submissions made with that email.",
	}, h.listSubmissions)

	return nil
}

// inputSchema infers the schema of T and restricts its "tracks" items to the catalog.
func inputSchema[T any](tracks []string) (*jsonschema.Schema, error) {
	schema, err := jsonschema.For[T](nil)
	if err != nil {
		return nil, err
	}
	prop, ok := schema.Properties["tracks"]
	if !ok || prop.Items == nil {
		return nil, fmt.Errorf("schema has no tracks array")
	}
	enum := make([]any, len(tracks))
	for i, t := range tracks {
		enum[i] = t
	}
	prop.Items.Enum = enum
	return schema, nil
}

func (h *handlers) conferenceDetails(ctx context.Context, _ *mcp.CallToolRequest, _ ConferenceDetailsInput) (*mcp.CallToolResult, any, error) {
	text, err := h.details.Fetch(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "conference details fetch failed", "err", err)
		return nil, nil, err
	}
	return textResult(text), nil, nil
}

func (h *handlers) submitTalk(ctx context.Context, _ *mcp.CallToolRequest, in SubmitTalkInput) (*mcp.CallToolResult, any, error) {
	sub, err := h.submissions.Submit(ctx, in.toDomain())
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			return textResult(formatValidation("Your talk could not be submitted.", verr)), nil, nil
		}
		h.logger.ErrorContext(ctx, "submit-talk failed", "err", err)
		return nil, nil, err
	}
	return textResult(formatSubmitted(sub)), nil, nil
}

func (h *handlers) editTalk(ctx context.Context, _ *mcp.CallToolRequest, in EditTalkInput) (*mcp.CallToolResult, any, error) {
	updated, hashChanged, err := h.submissions.Edit(ctx, in.toDomain())
	if err != nil {
		var verr *domain.ValidationError
		switch {
		case errors.Is(err, services.ErrMissingIdentifier):
			return textResult(msgMissingIdentifier), nil, nil
		case errors.Is(err, domain.ErrNotFound) && in.SubmissionID != "":
			return textResult(msgNoSubmissionForID), nil, nil
		case errors.Is(err, domain.ErrNotFound):
			return textResult(msgNoSubmissionForHash), nil, nil
		case errors.As(err, &verr):
			return textResult(formatValidation("Your submission could not be updated.", verr)), nil, nil
		}
		h.logger.ErrorContext(ctx, "edit-talk failed", "err", err)
		return nil, nil, err
	}
	return textResult(formatEdited(updated, hashChanged)), nil, nil
}

func (h *handlers) listSubmissions(ctx context.Context, _ *mcp.CallToolRequest, in ListSubmissionsInput) (*mcp.CallToolResult, any, error) {
	subs, err := h.submissions.List(ctx, in.SecretHash)
	if err != nil {
		h.logger.ErrorContext(ctx, "list-submissions failed", "err", err)
		return nil, nil, err
	}
	return textResult(formatList(subs, in.SecretHash != "")), nil, nil
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}
