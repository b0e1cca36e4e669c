package prompts

import (
	"fmt"
	"strings"

	"github.com/shahparacha/timeprint-gpt/internal/models"
)

// NoDocumentsMarker is emitted in place of citations when retrieval came
// back empty.
const NoDocumentsMarker = "No relevant documents found."

const SystemInstruction = `You are an AI assistant that helps users with their queries about their documents.

When answering, follow these guidelines:
1. Use the provided user-specific documents as context for your answers when relevant.
2. If the documents provide a direct answer to the query, highlight this information.
3. If you don't find relevant information in the documents, clearly state that and provide a more general response.
4. Always cite your sources when using information from the documents.
5. Keep responses concise and focused on answering the user's question.`

// ContextBlock formats retrieved documents for the system prompt. The
// output is deterministic for a given result list.
func ContextBlock(docs []models.DocumentSearchResult) string {
	if len(docs) == 0 {
		return NoDocumentsMarker
	}
	formatted := make([]string, len(docs))
	for i, doc := range docs {
		formatted[i] = fmt.Sprintf("Title: %s\nContent: %s\nURL: %s\n---", doc.Title, doc.Content, doc.URL)
	}
	return "Relevant documents:\n" + strings.Join(formatted, "\n")
}

// SystemPrompt is the full system message: fixed instructions followed by
// the document context block.
func SystemPrompt(docs []models.DocumentSearchResult) string {
	return SystemInstruction + "\n\n" + ContextBlock(docs)
}
