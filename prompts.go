package orchestrator

import "strings"

// System prompts used for the fixed (non-stage) calls.
const (
	SynthSystem = "You are Synthesizer. Produce a single final answer that addresses critiques. " +
		"Be actionable. Mention uncertainty if needed. Always reply in the same language as the question."

	QualityRefineSystem = "You are Quality Refiner. Improve answer quality using this matrix: " +
		"accuracy, completeness, consistency, format. Keep the answer concise, faithful, and actionable. " +
		"Always reply in the same language as the question."

	GateSystem = "You are a cost-aware router. Decide whether this needs multi-model debate."
)

// stageBlocks renders each stage result as a "name:\ntext" block.
func stageBlocks(results []StageResult) []string {
	blocks := make([]string, len(results))
	for i, r := range results {
		blocks[i] = r.Name + ":\n" + r.Text
	}
	return blocks
}

// buildStageUserPrompt assembles the user message for a non-synth stage.
// When prevResults is empty, it is the first call in the chain and gets the
// thread-summary header; otherwise it carries the dependency outputs, each
// block separated by a blank line.
func buildStageUserPrompt(question, threadSummary string, prevResults []StageResult) string {
	if len(prevResults) == 0 {
		var b strings.Builder
		if threadSummary != "" {
			b.WriteString("Thread context:\n")
			b.WriteString(threadSummary)
			b.WriteString("\n\n")
		}
		b.WriteString("Question: ")
		b.WriteString(question)
		return b.String()
	}

	parts := append([]string{"Question: " + question}, stageBlocks(prevResults)...)
	return strings.Join(parts, "\n\n")
}

// buildSynthUserPrompt assembles the synth-stage user message from every
// emitted stage result, in ascending index order, each block and the final
// "Final answer:" prompt separated by a blank line.
func buildSynthUserPrompt(question string, stageResults []StageResult) string {
	parts := append([]string{"Q: " + question}, stageBlocks(stageResults)...)
	parts = append(parts, "Final answer:")
	return strings.Join(parts, "\n\n")
}

// gateUserPrompt assembles the LLM-gate user message.
func gateUserPrompt(summary, question string) string {
	return "Thread summary:\n" + summary + "\n\n" +
		"Decide whether this needs multi-model debate.\n" +
		"Return only one word: SIMPLE or MULTI.\n\n" +
		"Question: " + question + "\n"
}
