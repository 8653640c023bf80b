package prompt

import (
	"strings"

	"github.com/seniorworks/chatbot-backend/internal/entity"
)

// maxHistoryTurns bounds how much prior dialogue enters the prompt. Older
// turns are dropped, not summarized.
const maxHistoryTurns = 3

const preamble = `당신은 노인 일자리 상담 전문가입니다. 친절하고 정확한 정보를 제공해주세요.
아래 '관련 정보'를 바탕으로 사용자의 질문에 답변해주세요.
특히 사용자가 '다리 아파'와 같이 신체적 부담을 언급하며 직업을 추천해달라고 할 경우,
제공된 '관련 정보'에서 '신체활동수준'이 '낮음'이거나, '업무내용'을 보았을 때 주로 앉아서 하거나
신체적 움직임이 적은 직업들을 우선적으로 추천해주세요.
추천할 직업이 여러 개라면 2~3가지 정도를 예시로 들어 설명해주세요.
만약 주어진 '관련 정보'에서 답을 찾을 수 없다면, 모른다고 답하고 추가 정보를 요청하거나, 다른 질문을 하도록 안내해주세요.
불필요한 정보를 추가하지 마세요. 답변은 한국어로 제공해주세요. 이모지를 적절히 사용하여 친근감 표현해주세요.`

// Assembler merges retrieved chunks, recent dialogue and the current query
// into a single generation prompt. It enforces no length cap; truncation
// safety is the generation client's concern.
type Assembler struct{}

func NewAssembler() *Assembler {
	return &Assembler{}
}

// Assemble renders, in fixed order: the persona preamble, the retrieved
// context (omitted entirely when retrieval is empty), the most recent
// three turns oldest-first (omitted when there is no history), and the
// current user query. History is expected most-recent-first, as the
// conversation store returns it.
func (a *Assembler) Assemble(results []entity.SearchResult, history []*entity.Conversation, userQuery string) string {
	var b strings.Builder
	b.WriteString(preamble)
	b.WriteString("\n")

	if len(results) > 0 {
		b.WriteString("\n관련 정보:\n")
		for _, r := range results {
			b.WriteString(renderChunk(r.Chunk))
			b.WriteString("\n")
		}
	}

	if turns := lastTurnsChronological(history); len(turns) > 0 {
		b.WriteString("\n이전 대화:\n")
		for _, t := range turns {
			b.WriteString("사용자: ")
			b.WriteString(t.UserMessage)
			b.WriteString("\n챗봇: ")
			b.WriteString(t.BotResponse)
			b.WriteString("\n")
		}
	}

	b.WriteString("\n사용자 질문: ")
	b.WriteString(userQuery)

	return b.String()
}

// renderChunk annotates a chunk with the metadata the biasing rules refer
// to, so the generation step can apply them.
func renderChunk(c entity.Chunk) string {
	jobName := c.Metadata.JobName
	if jobName == "" {
		jobName = "알 수 없음"
	}
	activity := c.Metadata.ActivityLevel
	if activity == "" {
		activity = "알 수 없음"
	}
	return "직업명: " + jobName + ", 신체활동수준: " + activity + ", 업무내용: " + c.Text
}

// lastTurnsChronological takes the newest maxHistoryTurns turns from a
// most-recent-first history and returns them oldest first.
func lastTurnsChronological(history []*entity.Conversation) []*entity.Conversation {
	n := len(history)
	if n > maxHistoryTurns {
		n = maxHistoryTurns
	}
	out := make([]*entity.Conversation, 0, n)
	for i := n - 1; i >= 0; i-- {
		out = append(out, history[i])
	}
	return out
}
