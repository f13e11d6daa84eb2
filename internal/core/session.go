// ABOUTME: Session owns the per-document state and drives each chat turn
// ABOUTME: Load replaces chunks, vocabulary and embedding index as one unit
package core

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/harper/docchat/internal/models"
)

const (
	typingPlaceholder = "Typing..."

	// historyWindow caps how many prior turns the completion capability sees.
	historyWindow = 8

	// completionTemperature keeps answers close to the retrieved context.
	completionTemperature = 0.2

	findResultCap    = 8
	generalResultCap = 12

	systemInstruction = "You are a helpful assistant. Answer using ONLY the provided CONTEXT. If not found, say you don't know."

	failureMessage = "Something went wrong while processing the document. Try re-loading or ask a shorter question."

	greetingMessage = "Load a PDF, a Word file or a website and ask me a question. (Type 'help' for commands)"
)

// Completer is the external text-completion capability.
type Completer interface {
	Complete(ctx context.Context, messages []models.ChatTurn, temperature float32) (string, error)
}

// DocumentReader turns a path or URL into ordered page chunks.
type DocumentReader interface {
	Read(ctx context.Context, pathOrURL string) ([]models.Chunk, error)
}

// SessionDeps are the external capabilities a session consumes. Any of
// them may be nil; the session degrades to the paths that remain.
type SessionDeps struct {
	Embedder  Embedder
	Completer Completer
	Synonyms  SynonymProvider
	Spell     SpellChecker
	Readers   map[models.SourceKind]DocumentReader
	TopK      int
	Logger    zerolog.Logger
}

// Session is a single chat session over one loaded document at a time.
// All state is session-scoped; there are no process-wide singletons.
type Session struct {
	mu sync.Mutex

	deps     SessionDeps
	expander *SynonymExpander

	activeSource models.SourceKind
	sourceRefs   map[models.SourceKind]string

	chunks []models.Chunk
	vocab  *Vocabulary
	index  *VectorIndex

	messages     []models.ChatMessage
	history      []models.ChatTurn
	lastQuestion string
}

// NewSession creates a session with empty indexes and a greeting message.
func NewSession(deps SessionDeps) *Session {
	if deps.TopK <= 0 {
		deps.TopK = DefaultTopK
	}
	s := &Session{
		deps:         deps,
		expander:     NewSynonymExpander(deps.Synonyms),
		activeSource: models.SourcePDF,
		sourceRefs:   make(map[models.SourceKind]string),
		vocab:        NewVocabulary(),
		index:        NewVectorIndex(deps.Embedder),
	}
	s.messages = append(s.messages, models.NewChatMessage(models.RoleAssistant, greetingMessage))
	return s
}

// Messages returns a copy of the rendered transcript.
func (s *Session) Messages() []models.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.ChatMessage, len(s.messages))
	copy(out, s.messages)
	return out
}

// ChunkCount returns how many chunks the current load produced.
func (s *Session) ChunkCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.chunks)
}

// NewChat clears the transcript and the follow-up anchor, keeping the
// loaded document and its indexes.
func (s *Session) NewChat() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = []models.ChatMessage{models.NewChatMessage(models.RoleAssistant, greetingMessage)}
	s.history = nil
	s.lastQuestion = ""
}

// Load reads the source and atomically replaces chunks, vocabulary and
// embedding index. On failure all three are cleared and a user-facing
// message is appended to the transcript.
func (s *Session) Load(ctx context.Context, kind models.SourceKind, ref string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.activeSource = kind
	s.sourceRefs[kind] = ref

	reader, ok := s.deps.Readers[kind]
	if !ok {
		err := fmt.Errorf("no reader for source %q", kind)
		s.clearContentLocked()
		s.appendMessageLocked(models.RoleAssistant, s.loadFailureText(kind))
		return err
	}

	chunks, err := reader.Read(ctx, ref)
	if err != nil || len(chunks) == 0 {
		if err == nil {
			err = fmt.Errorf("no extractable text in %q", ref)
		}
		s.deps.Logger.Warn().Err(err).Str("source", string(kind)).Str("ref", ref).Msg("load failed")
		s.clearContentLocked()
		s.appendMessageLocked(models.RoleAssistant, s.loadFailureText(kind))
		return err
	}

	s.chunks = chunks
	s.vocab = BuildVocabulary(chunks)

	// Embedding build is best effort: a partial index simply leaves the
	// vector retriever unready and keyword answers take over.
	if s.deps.Embedder != nil {
		if err := s.index.Build(ctx, chunks); err != nil {
			s.deps.Logger.Warn().Err(err).Int("indexed", s.index.Len()).Msg("embedding index incomplete")
		}
	} else {
		s.index.Clear()
	}

	s.deps.Logger.Info().Str("source", string(kind)).Str("ref", ref).
		Int("chunks", len(s.chunks)).Int("vocab", s.vocab.Len()).
		Bool("vector_index", s.index.HasIndex()).Msg("document loaded")

	s.appendMessageLocked(models.RoleAssistant, s.loadedText(kind, len(chunks)))
	return nil
}

func (s *Session) clearContentLocked() {
	s.chunks = nil
	s.vocab = NewVocabulary()
	s.index.Clear()
}

func (s *Session) loadedText(kind models.SourceKind, n int) string {
	switch kind {
	case models.SourcePDF:
		return fmt.Sprintf("PDF loaded. Chunks: %d", n)
	case models.SourceWord:
		return fmt.Sprintf("Word loaded. Sections: %d", n)
	default:
		return fmt.Sprintf("Website loaded. Chunks: %d", n)
	}
}

func (s *Session) loadFailureText(kind models.SourceKind) string {
	switch kind {
	case models.SourcePDF:
		return "PDF selected, but I couldn't extract text. If it's scanned, you'll need OCR."
	case models.SourceWord:
		return "Word selected, but I couldn't read it. Make sure it's .docx (not .doc)."
	default:
		return "Couldn't load the website. Try another URL or check internet access."
	}
}

// Send runs one full turn: follow-up rewrite, intent classification,
// dispatch, and answer rendering. Every failure path ends in a rendered
// message; Send never returns an error or panics out.
func (s *Session) Send(ctx context.Context, input string) string {
	text := strings.TrimSpace(input)
	if text == "" {
		return ""
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.appendMessageLocked(models.RoleUser, text)
	typing := s.appendMessageLocked(models.RoleAssistant, typingPlaceholder)

	answer := s.processTurnLocked(ctx, text)

	s.removeMessageLocked(typing.ID)
	s.appendMessageLocked(models.RoleAssistant, answer)
	return answer
}

func (s *Session) processTurnLocked(ctx context.Context, text string) (answer string) {
	defer func() {
		if r := recover(); r != nil {
			s.deps.Logger.Error().Interface("panic", r).Msg("turn processing failed")
			answer = failureMessage
		}
	}()

	// Follow-up phrases reuse the previous question as the anchor.
	if IsFollowUp(strings.ToLower(text)) && strings.TrimSpace(s.lastQuestion) != "" {
		text = s.lastQuestion + " (follow-up: " + text + ")"
	} else {
		s.lastQuestion = text
	}

	intent := DetectIntent(text)

	// Help works without any source loaded.
	if intent.Kind == models.IntentHelp {
		return helpText()
	}

	if notReady := s.notReadyTextLocked(); notReady != "" {
		return notReady
	}

	var err error
	switch intent.Kind {
	case models.IntentFind:
		answer, err = s.answerFindLocked(ctx, intent.FindKeyword)
	case models.IntentSummarizePage:
		answer = s.answerSummarizePageLocked(intent.PageNumber)
	case models.IntentSummarizeDocument:
		answer = s.answerSummarizeDocumentLocked()
	case models.IntentExtractPage:
		answer = s.answerExtractPageLocked(intent.PageNumber)
	default:
		answer, err = s.answerGeneralLocked(ctx, text)
	}

	if err != nil {
		s.deps.Logger.Warn().Err(err).Str("intent", string(intent.Kind)).Msg("answer failed")
		return failureMessage
	}

	s.history = append(s.history,
		models.ChatTurn{Role: models.RoleUser, Content: text},
		models.ChatTurn{Role: models.RoleAssistant, Content: answer},
	)
	return answer
}

// notReadyTextLocked returns a source-specific message when nothing is
// loaded for the active source, distinguishing "never selected" from
// "selected but load produced nothing".
func (s *Session) notReadyTextLocked() string {
	if len(s.chunks) > 0 {
		return ""
	}

	ref := strings.TrimSpace(s.sourceRefs[s.activeSource])
	switch s.activeSource {
	case models.SourcePDF:
		if ref == "" {
			return "Pick a PDF first and try again."
		}
		return "PDF is selected but no text is loaded. Try another PDF (or OCR if scanned)."
	case models.SourceWord:
		if ref == "" {
			return "Pick a Word file first and try again."
		}
		return "Word is selected but no text is loaded."
	case models.SourceWeb:
		if ref == "" {
			return "Paste a URL first, then load the website."
		}
		return "Website URL is set but content not loaded. Load the website again."
	}
	return "Load a document first."
}

func (s *Session) answerFindLocked(ctx context.Context, keyword string) (string, error) {
	if len(strings.TrimSpace(keyword)) < 2 {
		return "Type like this: find: payment terms", nil
	}

	enriched := s.enrichLocked(ctx, strings.TrimSpace(keyword))

	hits := SearchChunks(s.chunks, enriched.Expanded, findResultCap)
	if len(hits) == 0 {
		hits = SearchChunks(s.chunks, enriched.Corrected, findResultCap)
	}
	if len(hits) == 0 {
		return "No matches found for: " + enriched.Corrected, nil
	}

	var sb strings.Builder
	sb.WriteString("Top matches for: " + enriched.Corrected + "\n\n")
	for _, h := range hits {
		fmt.Fprintf(&sb, "Page %d\n%s\n\n", h.PageNumber, h.Snippet)
	}
	fmt.Fprintf(&sb, "Try: summary page %d", hits[0].PageNumber)

	return strings.TrimSpace(sb.String()), nil
}

// answerGeneralLocked answers a free-text question. With a ready vector
// index and a completion capability it runs the RAG path; otherwise it
// composes an answer from keyword-ranked key sentences.
func (s *Session) answerGeneralLocked(ctx context.Context, question string) (string, error) {
	if s.index.HasIndex() && s.deps.Completer != nil {
		return s.answerWithCompletionLocked(ctx, question)
	}
	return s.answerWithKeywordsLocked(ctx, question)
}

func (s *Session) answerWithCompletionLocked(ctx context.Context, question string) (string, error) {
	top, err := s.index.TopK(ctx, question, s.deps.TopK)
	if err != nil {
		return "", err
	}

	messages := []models.ChatTurn{
		{Role: models.RoleSystem, Content: systemInstruction},
		{Role: models.RoleSystem, Content: BuildContext(top)},
	}
	start := len(s.history) - historyWindow
	if start < 0 {
		start = 0
	}
	messages = append(messages, s.history[start:]...)
	messages = append(messages, models.ChatTurn{Role: models.RoleUser, Content: question})

	answer, err := s.deps.Completer.Complete(ctx, messages, completionTemperature)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(answer), nil
}

func (s *Session) answerWithKeywordsLocked(ctx context.Context, question string) (string, error) {
	enriched := s.enrichLocked(ctx, question)

	hits := SearchChunks(s.chunks, enriched.Expanded, generalResultCap)
	if len(hits) == 0 {
		hits = SearchChunks(s.chunks, enriched.Corrected, generalResultCap)
	}
	if len(hits) == 0 {
		return "I couldn't find anything relevant.\nTry \"find: <keyword>\" or \"summary page X\".", nil
	}

	var pages []int
	seen := make(map[int]struct{})
	for _, h := range hits {
		if _, ok := seen[h.PageNumber]; ok {
			continue
		}
		seen[h.PageNumber] = struct{}{}
		pages = append(pages, h.PageNumber)
	}
	sort.Ints(pages)

	var sb strings.Builder
	if !strings.EqualFold(enriched.Corrected, question) {
		sb.WriteString("I searched for: " + enriched.Corrected + "\n\n")
	}

	sb.WriteString("Answer (based on closest matches):\n\n")

	used := 0
	for _, page := range pages {
		if used >= 2 {
			break
		}
		chunk := s.chunkByPageLocked(page)
		if chunk == nil {
			continue
		}
		key := ExtractKeySentences(chunk.Text, 3)
		if len(key) == 0 {
			continue
		}
		for _, sentence := range key {
			sb.WriteString("• " + sentence + "\n")
		}
		sb.WriteString("\n")
		used++
	}

	sb.WriteString("Evidence pages: ")
	for i, page := range pages {
		if i >= 5 {
			break
		}
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%d", page)
	}
	sb.WriteString("\n\nTry: find: <keyword>  |  summary  |  summary page 5  |  page 5")

	return strings.TrimSpace(sb.String()), nil
}

func (s *Session) answerSummarizeDocumentLocked() string {
	var sb strings.Builder
	sb.WriteString("Document overview (quick summary):\n\n")

	take := len(s.chunks)
	if take > 3 {
		take = 3
	}

	found := false
	for i := 0; i < take; i++ {
		c := s.chunks[i]
		bullets := ExtractBulletLines(c.Text, 4)
		if len(bullets) == 0 {
			continue
		}
		found = true
		fmt.Fprintf(&sb, "Page %d:\n", c.PageNumber)
		for _, b := range bullets {
			sb.WriteString("• " + b + "\n")
		}
		sb.WriteString("\n")
	}

	if !found {
		sb.WriteString("I couldn't detect clean headings/bullets. Ask: \"summary page 1\" or use \"find: <keyword>\".\n")
	}
	sb.WriteString("Tell me your angle (scope, risks, timeline, cost) and I'll summarize that.")

	return strings.TrimSpace(sb.String())
}

func (s *Session) answerSummarizePageLocked(page int) string {
	c := s.chunkByPageLocked(page)
	if c == nil {
		return s.missingPageText(page)
	}

	bullets := ExtractBulletLines(c.Text, 7)
	if len(bullets) == 0 {
		bullets = ExtractKeySentences(c.Text, 5)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Summary of page %d:\n\n", page)
	for _, b := range bullets {
		sb.WriteString("• " + b + "\n")
	}
	return strings.TrimSpace(sb.String())
}

func (s *Session) answerExtractPageLocked(page int) string {
	c := s.chunkByPageLocked(page)
	if c == nil {
		return s.missingPageText(page)
	}

	excerpt := PageExcerpt(c.Text, pageExcerptMaxLen)
	if excerpt == "" {
		excerpt = "(No extractable text found on this page.)"
	}
	return fmt.Sprintf("Page %d (excerpt):\n\n%s", page, excerpt)
}

func (s *Session) missingPageText(page int) string {
	return fmt.Sprintf("I can't find page %d. This document has %d pages/chunks.", page, len(s.chunks))
}

func (s *Session) chunkByPageLocked(page int) *models.Chunk {
	for i := range s.chunks {
		if s.chunks[i].PageNumber == page {
			return &s.chunks[i]
		}
	}
	return nil
}

func (s *Session) enrichLocked(ctx context.Context, query string) EnrichedQuery {
	enricher := NewEnricher(s.vocab, s.expander, s.deps.Spell)
	return enricher.Enrich(ctx, query)
}

func (s *Session) appendMessageLocked(role, text string) models.ChatMessage {
	msg := models.NewChatMessage(role, text)
	s.messages = append(s.messages, msg)
	return msg
}

func (s *Session) removeMessageLocked(id string) {
	for i := range s.messages {
		if s.messages[i].ID == id {
			s.messages = append(s.messages[:i], s.messages[i+1:]...)
			return
		}
	}
}

func helpText() string {
	return `Commands you can use:

• help
• summary
• summary page 7
• page 7
• find: payment terms
• find: refund policy

Tip:
- If you type with small typos, I try to fix them.
- I also expand synonyms to improve search.`
}
