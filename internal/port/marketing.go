package port

import "context"

// ScriptRequest selects a composition template and optional angle for the
// script generator.
type ScriptRequest struct {
	Template       string `json:"template" validate:"required"`
	Topic          string `json:"topic"`
	Tone           string `json:"tone"`
	TargetAudience string `json:"target_audience"`
}

// Script is a ready-to-voice marketing script plus the render props derived
// from it.
type Script struct {
	Hook              string         `json:"hook"`
	Problem           string         `json:"problem"`
	Solution          string         `json:"solution"`
	CTA               string         `json:"cta"`
	EstimatedDuration int            `json:"estimated_duration"`
	VoiceoverText     string         `json:"voiceover_text"`
	SubtitleChunks    []string       `json:"subtitle_chunks"`
	Props             map[string]any `json:"props"`
}

// ScriptTemplate describes one selectable composition template.
type ScriptTemplate struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Duration string `json:"duration"`
}

// ScriptGenerator produces marketing scripts for the video compositions.
type ScriptGenerator interface {
	Generate(ctx context.Context, req ScriptRequest) (*Script, error)
	GenerateVariants(ctx context.Context, req ScriptRequest, count int) ([]*Script, error)
	Templates() []ScriptTemplate
}
