package engine

// LLM prompt templates. Data only, no logic.

// SummarySystemPrompt instructs the summarizer.
// Args: tone, audience, word count.
const SummarySystemPrompt = `You are a professional content summarizer. Summarize the provided transcript in a %s tone for a %s audience.
The summary should be approximately %d words and capture the key points, insights, and valuable information from the transcript.
Focus on making the summary concise, informative, and engaging.`

// SummaryUserPrompt carries the (possibly truncated) transcript.
// Args: transcript.
const SummaryUserPrompt = `Please summarize the following video transcript:

%s`

// PostSystemPrompt describes the required post structure.
// Args: tone, optional call-to-action line.
const PostSystemPrompt = `You are a professional LinkedIn content creator.
Create a compelling LinkedIn post in a %s tone based on the provided video summary.
The post should be between 500-1200 characters (not including hashtags).

Structure the post with:
1. An attention-grabbing hook
2. 2-3 key insights from the video
3. A personal reflection or takeaway
%s
The post should feel authentic, professional, and valuable to LinkedIn readers.
Avoid clickbait or overly promotional language.`

// PostCallToActionLine is inserted into PostSystemPrompt when requested.
const PostCallToActionLine = "4. A soft call to action (e.g., asking a question, inviting comments)\n"

// PostUserPrompt embeds the video details.
// Args: title, speaker clause, summary, suggested-hashtags line.
const PostUserPrompt = `Create a LinkedIn post based on this YouTube video:

Title: %s%s

Summary:
%s
%s
Please format the post ready to copy and paste to LinkedIn.`
