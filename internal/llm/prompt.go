package llm

// systemPrompt frames the probe. The questions themselves come from the
// task_param column untouched; the system prompt only asks for a direct
// answer so the downstream extractors have clean text to work with.
const systemPrompt = `You are answering questions about physics researchers and their publications.
Answer directly and concretely. When asked about time periods, state explicit years.
If you do not know, say so plainly instead of guessing.`
