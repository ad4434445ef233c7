package orchestrator

import (
	"errors"
	"fmt"
)

// Configuration-error sentinels. These never leave Run as a Go error.
// validateStages wraps ErrDuplicateStageName and ErrReservedStageName, and
// Run embeds that error's text in the localized invalid-stages message; the
// no-stages and missing-key messages are chosen by Run directly, without
// matching a sentinel.
var (
	ErrNoStages           = errors.New("pipeline has no stages configured")
	ErrMissingAPIKey      = errors.New("missing API key for first stage's provider")
	ErrDuplicateStageName = errors.New("duplicate stage name")
	ErrReservedStageName  = errors.New("stage name collides with a reserved usage key")
)

// CodedError attaches a stable machine-readable code to an error produced
// inside the resilience wrapper. Runtime.Error stores its rendered text
// ("[CODE] message: cause"), so callers inspecting Runtime.Error can match
// on the bracketed code.
type CodedError struct {
	Code    string
	Message string
	Err     error
}

func (e *CodedError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *CodedError) Unwrap() error { return e.Err }

// Error codes for CodedError. The resilience wrapper emits
// ErrCodeProviderTimeout and ErrCodeRateLimited.
const (
	ErrCodeProviderTimeout = "PROVIDER_TIMEOUT"
	ErrCodeProviderFailed  = "PROVIDER_FAILED"
	ErrCodeRateLimited     = "RATE_LIMITED"
	ErrCodeBudgetExceeded  = "BUDGET_EXCEEDED"
)

// messages holds the localizable placeholder strings returned in
// Result.Final when processing cannot continue. The originating
// application hard-coded these in Korean; this table makes them
// localizable instead.
var messages = map[string]map[string]string{
	"ko": {
		"no_stages":    "파이프라인 스테이지가 없습니다. Settings에서 스테이지를 추가해주세요.",
		"missing_key":  "API Key가 없습니다: %s. Settings에서 등록해주세요.",
		"stage_failed":   "%s 실행 실패: %s",
		"synth_failed":   "Synth 실행 실패: %s",
		"invalid_stages": "스테이지 설정이 올바르지 않습니다: %s",
	},
	"en": {
		"no_stages":      "No pipeline stages are configured. Add at least one stage in Settings.",
		"missing_key":    "Missing API key for provider: %s. Register it in Settings.",
		"stage_failed":   "%s failed: %s",
		"synth_failed":   "Synthesis failed: %s",
		"invalid_stages": "Invalid stage configuration: %s",
	},
}

func localized(locale string) map[string]string {
	if m, ok := messages[locale]; ok {
		return m
	}
	return messages["ko"]
}

func msgNoStages(locale string) string {
	return localized(locale)["no_stages"]
}

func msgMissingKey(locale, provider string) string {
	return fmt.Sprintf(localized(locale)["missing_key"], provider)
}

func msgStageFailed(locale, stageName, reason string) string {
	return fmt.Sprintf(localized(locale)["stage_failed"], stageName, reason)
}

func msgSynthFailed(locale, reason string) string {
	return fmt.Sprintf(localized(locale)["synth_failed"], reason)
}

func msgInvalidStages(locale, reason string) string {
	return fmt.Sprintf(localized(locale)["invalid_stages"], reason)
}
