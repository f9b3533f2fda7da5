package engine

// --- Enumerations ---

// Summary tones.
const (
	ToneEducational    = "educational"
	ToneInspirational  = "inspirational"
	ToneProfessional   = "professional"
	ToneConversational = "conversational"
)

// Summary audiences.
const (
	AudienceGeneral   = "general"
	AudienceTechnical = "technical"
	AudienceBusiness  = "business"
	AudienceAcademic  = "academic"
)

// Post tones.
const (
	PostToneFirstPerson   = "first-person"
	PostToneThirdPerson   = "third-person"
	PostToneThoughtLeader = "thought-leader"
)

var (
	SummaryTones = []string{ToneEducational, ToneInspirational, ToneProfessional, ToneConversational}
	Audiences    = []string{AudienceGeneral, AudienceTechnical, AudienceBusiness, AudienceAcademic}
	PostTones    = []string{PostToneFirstPerson, PostToneThirdPerson, PostToneThoughtLeader}
)

// Word-count bounds for summarize_transcript.
const (
	MinWordCount     = 100
	MaxWordCount     = 300
	DefaultWordCount = 200
)

// --- Tool inputs ---

type SetCredentialsInput struct {
	CompletionAPIKey string `json:"completionApiKey" jsonschema:"API key for the completion provider (OpenAI-compatible or Anthropic)"`
	TranscriptAPIKey string `json:"transcriptApiKey,omitempty" jsonschema:"YouTube Data API key (optional)"`
}

type CheckCredentialsInput struct{}

type ExtractTranscriptInput struct {
	VideoURL string `json:"videoUrl" jsonschema:"YouTube video URL (youtube.com/watch?v=ID or youtu.be/ID)"`
}

type SummarizeInput struct {
	Transcript string `json:"transcript" jsonschema:"Video transcript text"`
	Tone       string `json:"tone,omitempty" jsonschema:"Tone of the summary: educational, inspirational, professional (default), conversational"`
	Audience   string `json:"audience,omitempty" jsonschema:"Target audience: general (default), technical, business, academic"`
	WordCount  *int   `json:"wordCount,omitempty" jsonschema:"Approximate word count for the summary, 100-300 (default: 200)"`
}

type GeneratePostInput struct {
	Summary             string   `json:"summary" jsonschema:"Summary of the video content"`
	VideoTitle          string   `json:"videoTitle" jsonschema:"Title of the YouTube video"`
	SpeakerName         string   `json:"speakerName,omitempty" jsonschema:"Name of the speaker in the video (optional)"`
	Hashtags            []string `json:"hashtags,omitempty" jsonschema:"Relevant hashtags, with or without # (optional)"`
	Tone                string   `json:"tone,omitempty" jsonschema:"Tone of the post: first-person (default), third-person, thought-leader"`
	IncludeCallToAction *bool    `json:"includeCallToAction,omitempty" jsonschema:"Whether to include a call to action (default: true)"`
}

type VideoToPostInput struct {
	VideoURL            string   `json:"videoUrl" jsonschema:"YouTube video URL"`
	Tone                string   `json:"tone,omitempty" jsonschema:"Tone of the post: first-person (default), third-person, thought-leader"`
	SummaryTone         string   `json:"summaryTone,omitempty" jsonschema:"Tone of the summary: educational, inspirational, professional (default), conversational"`
	Audience            string   `json:"audience,omitempty" jsonschema:"Target audience: general (default), technical, business, academic"`
	Hashtags            []string `json:"hashtags,omitempty" jsonschema:"Relevant hashtags (optional)"`
	IncludeCallToAction *bool    `json:"includeCallToAction,omitempty" jsonschema:"Whether to include a call to action (default: true)"`
}
